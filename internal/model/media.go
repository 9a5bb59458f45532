// Package model holds the data types shared by the catalog, flow and command packages.
package model

// FormatRecord is one encoded variant reported by the probe.
// Optional fields are nil when the sidecar omits them; codec and resolution
// fields are never the literal "none".
type FormatRecord struct {
	ID       string
	Ext      string
	Protocol string

	AudioCodec *string
	VideoCodec *string
	Resolution *string

	Width           *int
	Height          *int
	FrameRate       *float64
	AudioSampleRate *int64

	FileSize       *uint64
	FileSizeApprox bool // FileSize came from filesize_approx

	Note      *string
	Container *string
}

// Catalog is the probe-ordered list of formats. Order carries preference;
// callers sort copies, never the catalog itself.
type Catalog []FormatRecord

// SubtitleVariant is one downloadable rendition of a subtitle track.
type SubtitleVariant struct {
	Ext      string
	URL      string
	Name     string
	Protocol string
}

// MediaDescriptor is the typed view of an info-json sidecar. It is built once
// by the catalog package and treated as read-only afterwards.
type MediaDescriptor struct {
	ID           string
	Title        string
	Duration     float64
	Categories   []string // nil when the sidecar has no categories
	Subtitles    map[string][]SubtitleVariant
	ExtractorKey string
	WebpageURL   string
	Formats      Catalog
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// Deref returns *p, or "" for nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
