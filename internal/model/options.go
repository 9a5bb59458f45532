package model

// CLIOptions holds user-configurable runtime options as parsed from flags,
// environment and config file.
type CLIOptions struct {
	Preset   *Preset // nil: ask interactively
	UseDirs  bool    // write into the user's music/video directory
	Quiet    bool    // pass --quiet to yt-dlp
	Verbose  bool
	DryRun   bool   // print the download command instead of running it
	DLBinary string // optional explicit path to yt-dlp
	Extras   []string

	ThumbnailHelper string // thumbnail-tagging helper binary name or path
}
