package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ytpick/internal/config"
)

const (
	ExitOK            = 0
	ExitCLIError      = 1
	ExitMissingDep    = 2
	ExitProbeError    = 3
	ExitSchemaError   = 4
	ExitDownloadError = 5
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ytpick [flags] <url> [-- yt-dlp args...]",
		Short: "Pick yt-dlp formats interactively",
		Long: "ytpick probes a URL with yt-dlp, lets you choose a preset or exact formats and a few " +
			"post-processing options, then runs the matching yt-dlp download. Arguments after -- are " +
			"passed to both yt-dlp invocations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          urlArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(cmd.Root()); err != nil {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("config: %w", err)}
			}
			config.BindRunFlags(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(cmd, args, runMode{DryRunOnly: false})
		},
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics and echo yt-dlp commands")
	root.PersistentFlags().Bool("quiet", false, "Pass --quiet to yt-dlp")
	root.PersistentFlags().String("dl-binary", "", "Path to yt-dlp")

	bindRunFlags(root.Flags())

	// Subcommands
	root.AddCommand(newPlanCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindRunFlags(fs *pflag.FlagSet) {
	fs.StringP("preset", "p", "", "Skip the preset prompt: custom, best, best-audio, best-video")
	fs.BoolP("dirs", "d", false, "Save into your music (best audio) or videos directory")
	fs.Bool("dry-run", false, "Print the download command instead of running it")
}

// urlArgs accepts exactly one URL before an optional "--".
func urlArgs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if d := cmd.ArgsLenAtDash(); d >= 0 {
		n = d
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one URL, got %d", n)
	}
	return nil
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}
