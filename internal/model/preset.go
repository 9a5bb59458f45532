package model

import (
	"fmt"
	"strings"
)

// Preset is a named strategy for choosing formats.
type Preset int

const (
	PresetManual Preset = iota
	PresetCustom
	PresetBest
	PresetBestAudio
	PresetBestVideo
)

// String returns the flag spelling of the preset.
func (p Preset) String() string {
	switch p {
	case PresetManual:
		return "manual"
	case PresetCustom:
		return "custom"
	case PresetBest:
		return "best"
	case PresetBestAudio:
		return "best-audio"
	case PresetBestVideo:
		return "best-video"
	default:
		return fmt.Sprintf("preset(%d)", int(p))
	}
}

// Label is the text shown in the preset prompt.
func (p Preset) Label() string {
	switch p {
	case PresetBestAudio:
		return "best audio"
	case PresetBestVideo:
		return "best video"
	default:
		return p.String()
	}
}

// AudioOriented reports whether the preset favours audio output.
func (p Preset) AudioOriented() bool { return p == PresetBestAudio }

// VideoOriented reports whether the preset favours video output.
func (p Preset) VideoOriented() bool { return p == PresetBest || p == PresetBestVideo }

// ParsePreset parses a preset given on the command line or in config.
// Manual is interactive-only and is rejected here.
func ParsePreset(s string) (Preset, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	switch norm {
	case "custom":
		return PresetCustom, nil
	case "best":
		return PresetBest, nil
	case "best-audio", "bestaudio":
		return PresetBestAudio, nil
	case "best-video", "bestvideo":
		return PresetBestVideo, nil
	default:
		return 0, fmt.Errorf("invalid preset: %q (valid: custom|best|best-audio|best-video)", s)
	}
}
