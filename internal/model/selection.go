package model

// PostOptions are the post-selection answers of the flow.
type PostOptions struct {
	// OutputTemplate is "<title>.%(ext)s"; the template syntax belongs to yt-dlp.
	OutputTemplate        string
	EmbedThumbnail        bool
	EmbedChapters         bool
	EmbedSubtitles        []string // language codes; empty means no embedding
	RemoveSponsorSegments bool
}

// SelectionResult is the immutable outcome of a completed selection flow.
type SelectionResult struct {
	Preset    Preset
	FormatIDs []string // one or two entries
	Options   PostOptions
}
