package cmd

import (
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plan [flags] <url> [-- yt-dlp args...]",
		Short:         "Run the selection and print the yt-dlp command without downloading",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          urlArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(cmd, args, runMode{DryRunOnly: true})
		},
	}
	bindRunFlags(cmd.Flags())
	if f := cmd.Flags().Lookup("dry-run"); f != nil {
		f.Hidden = true
	}
	return cmd
}
