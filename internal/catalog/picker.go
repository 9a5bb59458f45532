package catalog

import (
	"fmt"
	"sort"
	"strings"

	"ytpick/internal/model"
	"ytpick/internal/util/format"
)

// Policy decides which records the manual pickers offer.
type Policy int

const (
	// PolicyStrict offers only video-only records to the video picker and
	// only audio-only records to the audio picker.
	PolicyStrict Policy = iota
	// PolicyLoose offers every record carrying the stream, muxed included.
	PolicyLoose
)

// PickerPolicy is the policy this build uses.
const PickerPolicy = PolicyStrict

func (p Policy) String() string {
	if p == PolicyLoose {
		return "loose"
	}
	return "strict"
}

// VideoCandidates returns a copy of the video-bearing records under policy,
// sorted by descending width. Records without a width sort last; ties keep
// catalog order.
func VideoCandidates(c model.Catalog, policy Policy) []model.FormatRecord {
	keep := IsVideoOnly
	if policy == PolicyLoose {
		keep = HasVideo
	}
	return sortedDesc(filter(c, keep), func(f model.FormatRecord) int64 {
		if f.Width == nil {
			return -1
		}
		return int64(*f.Width)
	})
}

// AudioCandidates returns a copy of the audio-bearing records under policy,
// sorted by descending sample rate with the same tie rules as VideoCandidates.
func AudioCandidates(c model.Catalog, policy Policy) []model.FormatRecord {
	keep := IsAudioOnly
	if policy == PolicyLoose {
		keep = HasAudio
	}
	return sortedDesc(filter(c, keep), func(f model.FormatRecord) int64 {
		if f.AudioSampleRate == nil {
			return -1
		}
		return *f.AudioSampleRate
	})
}

func filter(c model.Catalog, keep func(model.FormatRecord) bool) []model.FormatRecord {
	out := make([]model.FormatRecord, 0, len(c))
	for _, f := range c {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func sortedDesc(fs []model.FormatRecord, key func(model.FormatRecord) int64) []model.FormatRecord {
	sort.SliceStable(fs, func(i, j int) bool {
		return key(fs[i]) > key(fs[j])
	})
	return fs
}

// VideoLabel renders a video picker line: codec, resolution, size, note, protocol.
func VideoLabel(f model.FormatRecord) string {
	parts := []string{codecCell(f.VideoCodec)}
	if f.Resolution != nil {
		parts = append(parts, *f.Resolution)
	}
	if s := sizeCell(f); s != "" {
		parts = append(parts, s)
	}
	if f.Note != nil && *f.Note != "" {
		parts = append(parts, *f.Note)
	}
	if f.Protocol != "" {
		parts = append(parts, f.Protocol)
	}
	return strings.TrimLeft(strings.Join(parts, " "), " ")
}

// AudioLabel renders an audio picker line: codec, sample rate in kHz, size, note.
func AudioLabel(f model.FormatRecord) string {
	parts := []string{codecCell(f.AudioCodec)}
	if f.AudioSampleRate != nil {
		parts = append(parts, format.KHz(*f.AudioSampleRate))
	}
	if s := sizeCell(f); s != "" {
		parts = append(parts, s)
	}
	if f.Note != nil && *f.Note != "" {
		parts = append(parts, *f.Note)
	}
	return strings.TrimLeft(strings.Join(parts, " "), " ")
}

// AnswerLabel is echoed after a pick: "<id> - <codec>".
func AnswerLabel(f model.FormatRecord, video bool) string {
	codec := f.AudioCodec
	if video {
		codec = f.VideoCodec
	}
	if codec == nil {
		return f.ID
	}
	return f.ID + " - " + *codec
}

// codecCell pads or truncates the codec to four columns so labels line up.
func codecCell(codec *string) string {
	if codec == nil {
		return ""
	}
	return fmt.Sprintf("%-4.4s", *codec)
}

func sizeCell(f model.FormatRecord) string {
	if f.FileSize == nil {
		return ""
	}
	s := format.HumanizeBytes(*f.FileSize)
	if f.FileSizeApprox {
		return "~" + s
	}
	return s
}
