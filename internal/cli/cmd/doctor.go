package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ytpick/internal/config"
	"ytpick/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (yt-dlp, ffmpeg, thumbnail helper)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dl, derr := deps.FindDownloader(viper.GetString(config.KeyDLBinary))
			if derr != nil {
				return &ExitError{Code: ExitMissingDep, Err: derr}
			}
			ff, ferr := deps.FindFFmpeg()
			if ferr != nil {
				return &ExitError{Code: ExitMissingDep, Err: ferr}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloader: %s\n", dl)
			fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:     %s\n", ff)

			helper := viper.GetString(config.KeyThumbnailHelper)
			if th, err := deps.FindThumbnailHelper(helper); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Thumbnails: %s\n", th)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Thumbnails: %s not found (embed-thumbnail defaults to no)\n", helper)
			}
			return nil
		},
	}
}
