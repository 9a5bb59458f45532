package catalog

import (
	"sort"
	"strings"

	"ytpick/internal/model"
)

const liveChat = "live_chat"

// SubtitleTrack is an embeddable subtitle language.
type SubtitleTrack struct {
	Lang string
	Name string // human-readable name, falls back to Lang
}

// SubtitleTracks lists the subtitle languages that are not live-chat
// replays, sorted by language code.
func SubtitleTracks(d model.MediaDescriptor) []SubtitleTrack {
	var out []SubtitleTrack
	for lang, variants := range d.Subtitles {
		if isLiveCaption(lang, variants) || len(variants) == 0 {
			continue
		}
		name := lang
		for _, v := range variants {
			if v.Name != "" {
				name = v.Name
				break
			}
		}
		out = append(out, SubtitleTrack{Lang: lang, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lang < out[j].Lang })
	return out
}

func isLiveCaption(lang string, variants []model.SubtitleVariant) bool {
	if lang == liveChat {
		return true
	}
	for _, v := range variants {
		if strings.Contains(v.Protocol, liveChat) {
			return true
		}
	}
	return false
}
