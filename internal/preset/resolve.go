// Package preset computes which presets a media item can offer and in what
// order the prompt lists them.
package preset

import (
	"ytpick/internal/catalog"
	"ytpick/internal/model"
)

// Flags are the classifier facts the resolver depends on.
type Flags struct {
	HasAudioOnly bool
	HasVideoOnly bool
	MusicLike    bool
}

// FlagsFor classifies a descriptor.
func FlagsFor(d model.MediaDescriptor) Flags {
	return Flags{
		HasAudioOnly: catalog.HasAudioOnlyVariant(d.Formats),
		HasVideoOnly: catalog.HasVideoOnlyVariant(d.Formats),
		MusicLike:    catalog.IsMusicLike(d),
	}
}

var (
	musicOrder = []model.Preset{
		model.PresetBestAudio,
		model.PresetCustom,
		model.PresetBest,
		model.PresetBestVideo,
		model.PresetManual,
	}
	videoOrder = []model.Preset{
		model.PresetCustom,
		model.PresetBest,
		model.PresetBestVideo,
		model.PresetBestAudio,
		model.PresetManual,
	}
)

// Offerable reports whether p can be offered under f.
func Offerable(p model.Preset, f Flags) bool {
	switch p {
	case model.PresetBestAudio:
		return f.HasAudioOnly
	case model.PresetBestVideo:
		return f.HasVideoOnly
	case model.PresetManual, model.PresetCustom, model.PresetBest:
		return true
	default:
		return false
	}
}

// Resolve returns the offerable presets in display order and the index the
// prompt should start on.
func Resolve(f Flags) ([]model.Preset, int) {
	order := videoOrder
	if f.MusicLike {
		order = musicOrder
	}

	presets := make([]model.Preset, 0, len(order))
	for _, p := range order {
		if Offerable(p, f) {
			presets = append(presets, p)
		}
	}

	want := model.PresetBest
	if f.MusicLike && f.HasAudioOnly {
		want = model.PresetBestAudio
	}
	def := 0
	for i, p := range presets {
		if p == want {
			def = i
			break
		}
	}
	return presets, def
}
