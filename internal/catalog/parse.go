// Package catalog turns a yt-dlp info-json sidecar into typed records and
// classifies the formats it lists.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"ytpick/internal/model"
)

// NoneSentinel is how yt-dlp spells "no codec" / "no resolution".
const NoneSentinel = "none"

// RawFormat mirrors one entry of the sidecar's "formats" array.
type RawFormat struct {
	FormatID       *string  `json:"format_id"`
	Ext            *string  `json:"ext"`
	Protocol       *string  `json:"protocol"`
	ACodec         *string  `json:"acodec"`
	VCodec         *string  `json:"vcodec"`
	Resolution     *string  `json:"resolution"`
	Width          *int     `json:"width"`
	Height         *int     `json:"height"`
	FPS            *float64 `json:"fps"`
	ASR            *int64   `json:"asr"`
	FileSize       *uint64  `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
	FormatNote     *string  `json:"format_note"`
	Container      *string  `json:"container"`
}

type rawSubtitle struct {
	Ext      string `json:"ext"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	Protocol string `json:"protocol"`
}

type rawInfo struct {
	ID           *string                  `json:"id"`
	Title        *string                  `json:"title"`
	Duration     *float64                 `json:"duration"`
	Categories   []string                 `json:"categories"`
	Subtitles    map[string][]rawSubtitle `json:"subtitles"`
	ExtractorKey string                   `json:"extractor_key"`
	WebpageURL   string                   `json:"webpage_url"`
	Formats      []json.RawMessage        `json:"formats"`
}

// Load reads and parses the sidecar at path.
func Load(path string) (model.MediaDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.MediaDescriptor{}, fmt.Errorf("open info json: %w", err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return model.MediaDescriptor{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a sidecar document. Shape problems are reported as
// *SchemaError; a document with an empty format list yields ErrEmptyCatalog.
func Parse(r io.Reader) (model.MediaDescriptor, error) {
	var raw rawInfo
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return model.MediaDescriptor{}, decodeError(err)
	}

	switch {
	case raw.ID == nil:
		return model.MediaDescriptor{}, missing("id")
	case raw.Title == nil:
		return model.MediaDescriptor{}, missing("title")
	case raw.Formats == nil:
		return model.MediaDescriptor{}, missing("formats")
	case len(raw.Formats) == 0:
		return model.MediaDescriptor{}, ErrEmptyCatalog
	}

	formats := make(model.Catalog, 0, len(raw.Formats))
	for i, msg := range raw.Formats {
		path := fmt.Sprintf("formats[%d]", i)
		var rf RawFormat
		if err := json.Unmarshal(msg, &rf); err != nil {
			return model.MediaDescriptor{}, decodeErrorAt(path, err)
		}
		rec, err := Normalize(rf, path)
		if err != nil {
			return model.MediaDescriptor{}, err
		}
		formats = append(formats, rec)
	}

	d := model.MediaDescriptor{
		ID:           *raw.ID,
		Title:        *raw.Title,
		Categories:   raw.Categories,
		ExtractorKey: raw.ExtractorKey,
		WebpageURL:   raw.WebpageURL,
		Formats:      formats,
	}
	if raw.Duration != nil {
		d.Duration = *raw.Duration
	}
	if len(raw.Subtitles) > 0 {
		d.Subtitles = make(map[string][]model.SubtitleVariant, len(raw.Subtitles))
		for lang, vs := range raw.Subtitles {
			out := make([]model.SubtitleVariant, 0, len(vs))
			for _, v := range vs {
				out = append(out, model.SubtitleVariant{Ext: v.Ext, URL: v.URL, Name: v.Name, Protocol: v.Protocol})
			}
			d.Subtitles[lang] = out
		}
	}
	return d, nil
}

// Normalize validates a raw format entry and converts it to a FormatRecord.
// path prefixes field names in errors.
func Normalize(raw RawFormat, path string) (model.FormatRecord, error) {
	switch {
	case raw.FormatID == nil:
		return model.FormatRecord{}, missing(path + ".format_id")
	case raw.Ext == nil:
		return model.FormatRecord{}, missing(path + ".ext")
	case raw.Protocol == nil:
		return model.FormatRecord{}, missing(path + ".protocol")
	}

	rec := model.FormatRecord{
		ID:              *raw.FormatID,
		Ext:             *raw.Ext,
		Protocol:        *raw.Protocol,
		AudioCodec:      dropNone(raw.ACodec),
		VideoCodec:      dropNone(raw.VCodec),
		Resolution:      dropNone(raw.Resolution),
		Width:           raw.Width,
		Height:          raw.Height,
		FrameRate:       raw.FPS,
		AudioSampleRate: raw.ASR,
		Note:            raw.FormatNote,
		Container:       raw.Container,
	}
	switch {
	case raw.FileSize != nil:
		rec.FileSize = raw.FileSize
	case raw.FileSizeApprox != nil && *raw.FileSizeApprox >= 0:
		approx := uint64(*raw.FileSizeApprox)
		rec.FileSize = &approx
		rec.FileSizeApprox = true
	}
	return rec, nil
}

// NormalizeRecord re-applies sentinel normalization to a typed record.
// It is idempotent.
func NormalizeRecord(f model.FormatRecord) model.FormatRecord {
	f.AudioCodec = dropNone(f.AudioCodec)
	f.VideoCodec = dropNone(f.VideoCodec)
	f.Resolution = dropNone(f.Resolution)
	return f
}

func dropNone(s *string) *string {
	if s == nil || *s == NoneSentinel {
		return nil
	}
	v := *s
	return &v
}

func decodeError(err error) error {
	return decodeErrorAt("", err)
}

// decodeErrorAt is decodeError for a value nested at prefix.
func decodeErrorAt(prefix string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		switch {
		case prefix != "" && path != "":
			path = prefix + "." + path
		case prefix != "":
			path = prefix
		case path == "":
			path = "$"
		}
		return &SchemaError{
			Path: path,
			Err:  fmt.Errorf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &SchemaError{Path: fmt.Sprintf("$ (offset %d)", syntaxErr.Offset), Err: err}
	}
	return &SchemaError{Path: "$", Err: err}
}
