package catalog

import (
	"strings"

	"ytpick/internal/model"
)

// HasAudio reports whether the record carries an audio stream.
func HasAudio(f model.FormatRecord) bool { return f.AudioCodec != nil }

// HasVideo reports whether the record carries a video stream.
func HasVideo(f model.FormatRecord) bool { return f.VideoCodec != nil }

// IsAudioOnly is true iff the record has audio and no video.
func IsAudioOnly(f model.FormatRecord) bool { return HasAudio(f) && !HasVideo(f) }

// IsVideoOnly is true iff the record has video and no audio.
func IsVideoOnly(f model.FormatRecord) bool { return HasVideo(f) && !HasAudio(f) }

// IsMuxed is true when the record carries both streams.
func IsMuxed(f model.FormatRecord) bool { return HasAudio(f) && HasVideo(f) }

// HasAudioOnlyVariant reports whether any record is audio-only.
func HasAudioOnlyVariant(c model.Catalog) bool {
	for _, f := range c {
		if IsAudioOnly(f) {
			return true
		}
	}
	return false
}

// HasVideoOnlyVariant reports whether any record is video-only.
func HasVideoOnlyVariant(c model.Catalog) bool {
	for _, f := range c {
		if IsVideoOnly(f) {
			return true
		}
	}
	return false
}

// IsMusicLike reports whether any category equals "music", ignoring case.
func IsMusicLike(d model.MediaDescriptor) bool {
	for _, cat := range d.Categories {
		if strings.EqualFold(cat, "music") {
			return true
		}
	}
	return false
}
