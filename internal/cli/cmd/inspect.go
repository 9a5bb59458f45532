package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ytpick/internal/catalog"
	"ytpick/internal/model"
	"ytpick/internal/preset"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inspect <info.json>",
		Short:         "Show what ytpick would offer for a saved info-json sidecar",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := catalog.Load(args[0])
			if err != nil {
				return exitFor(err)
			}
			loose, _ := cmd.Flags().GetBool("loose")
			policy := catalog.PickerPolicy
			if loose {
				policy = catalog.PolicyLoose
			}
			printInspection(cmd.OutOrStdout(), d, policy)
			return nil
		},
	}
	cmd.Flags().Bool("loose", false, "List muxed formats in both pickers")
	return cmd
}

func printInspection(out io.Writer, d model.MediaDescriptor, policy catalog.Policy) {
	flags := preset.FlagsFor(d)
	presets, def := preset.Resolve(flags)

	fmt.Fprintf(out, "Title:      %s\n", d.Title)
	fmt.Fprintf(out, "ID:         %s\n", d.ID)
	if d.ExtractorKey != "" {
		fmt.Fprintf(out, "Extractor:  %s\n", d.ExtractorKey)
	}
	fmt.Fprintf(out, "Formats:    %d\n", len(d.Formats))
	fmt.Fprintf(out, "Music-like: %v\n", flags.MusicLike)

	fmt.Fprintln(out, "\nPresets:")
	for i, p := range presets {
		marker := " "
		if i == def {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %s\n", marker, p.Label())
	}

	fmt.Fprintf(out, "\nVideo formats (%s):\n", policy)
	printFormats(out, catalog.VideoCandidates(d.Formats, policy), catalog.VideoLabel)

	fmt.Fprintf(out, "\nAudio formats (%s):\n", policy)
	printFormats(out, catalog.AudioCandidates(d.Formats, policy), catalog.AudioLabel)

	if tracks := catalog.SubtitleTracks(d); len(tracks) > 0 {
		var langs []string
		for _, t := range tracks {
			if t.Name != t.Lang {
				langs = append(langs, fmt.Sprintf("%s (%s)", t.Lang, t.Name))
			} else {
				langs = append(langs, t.Lang)
			}
		}
		fmt.Fprintf(out, "\nSubtitles:  %s\n", strings.Join(langs, ", "))
	}
}

func printFormats(out io.Writer, fs []model.FormatRecord, label func(model.FormatRecord) string) {
	if len(fs) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, f := range fs {
		kind := ""
		if catalog.IsMuxed(f) {
			kind = "muxed"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", f.ID, f.Ext, label(f), kind)
	}
	_ = tw.Flush()
}
