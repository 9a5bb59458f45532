// Package command turns a completed selection into yt-dlp arguments.
package command

import (
	"errors"
	"strings"

	"ytpick/internal/model"
)

// ErrEmptySelection means the selection carried no format ids.
var ErrEmptySelection = errors.New("empty format selection")

// Flag is one yt-dlp option, with or without a value.
type Flag struct {
	Name  string
	Value string
}

// Args renders the flag as argv entries.
func (f Flag) Args() []string {
	if f.Value == "" {
		return []string{f.Name}
	}
	return []string{f.Name, f.Value}
}

// Spec is the download-specific part of a yt-dlp invocation. Binary path,
// working directory and passthrough arguments are added by the caller.
type Spec struct {
	Selector       string
	OutputTemplate string
	Flags          []Flag
}

// Args renders the command in the order yt-dlp receives it.
func (s Spec) Args() []string {
	var args []string
	for _, f := range s.Flags {
		args = append(args, f.Args()...)
	}
	return append(args, "-o", s.OutputTemplate, "-f", s.Selector)
}

// BuildSelector joins format ids with "+".
func BuildSelector(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrEmptySelection
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return "", ErrEmptySelection
		}
	}
	return strings.Join(ids, "+"), nil
}

// BuildOptionFlags maps post options to flags. Every boolean produces one of
// a mutually exclusive pair so yt-dlp config files cannot flip it.
func BuildOptionFlags(p model.Preset, o model.PostOptions) []Flag {
	var flags []Flag
	if p == model.PresetBestAudio {
		flags = append(flags, Flag{Name: "-x"})
	}
	flags = append(flags, pair(o.EmbedThumbnail, "--embed-thumbnail", "--no-embed-thumbnail"))
	flags = append(flags, pair(o.EmbedChapters, "--embed-chapters", "--no-embed-chapters"))
	if len(o.EmbedSubtitles) > 0 {
		flags = append(flags,
			Flag{Name: "--embed-subs"},
			Flag{Name: "--sub-langs", Value: strings.Join(o.EmbedSubtitles, ",")},
		)
	} else {
		flags = append(flags, Flag{Name: "--no-embed-subs"})
	}
	if o.RemoveSponsorSegments {
		flags = append(flags, Flag{Name: "--sponsorblock-remove", Value: "default"})
	} else {
		flags = append(flags, Flag{Name: "--no-sponsorblock"})
	}
	return flags
}

func pair(on bool, yes, no string) Flag {
	if on {
		return Flag{Name: yes}
	}
	return Flag{Name: no}
}

// Assemble builds the Spec for a completed selection.
func Assemble(r model.SelectionResult) (Spec, error) {
	sel, err := BuildSelector(r.FormatIDs)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Selector:       sel,
		OutputTemplate: r.Options.OutputTemplate,
		Flags:          BuildOptionFlags(r.Preset, r.Options),
	}, nil
}
