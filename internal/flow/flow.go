// Package flow drives the interactive selection: preset, optional manual
// format picks, then post-processing options.
package flow

import (
	"errors"
	"fmt"
	"strings"

	"ytpick/internal/catalog"
	"ytpick/internal/model"
	"ytpick/internal/preset"
	"ytpick/internal/prompt"
	"ytpick/internal/util/media"
)

// State is a step of the selection flow.
type State int

const (
	StateResolvePreset State = iota
	StateSelectManual
	StateSelectVideo
	StateSelectAudio
	StateConfigureOptions
	StateComplete
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateResolvePreset:
		return "resolve preset"
	case StateSelectManual:
		return "select manual"
	case StateSelectVideo:
		return "select video"
	case StateSelectAudio:
		return "select audio"
	case StateConfigureOptions:
		return "configure options"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Selectors used for presets that defer the format choice to yt-dlp.
const (
	SelectorBest      = "bv*+ba/b"
	SelectorBestAudio = "bestaudio"
	SelectorBestVideo = "bestvideo"
)

const (
	sponsorExtractor = "Youtube"
	sponsorWarning   = "removing segments forces a re-encode and can take a while"
)

// Flow holds the state of one selection. It is single use.
type Flow struct {
	desc        model.MediaDescriptor
	prompter    prompt.Prompter
	override    *model.Preset
	thumbHelper bool
	policy      catalog.Policy

	state   State
	preset  model.Preset
	ids     []string
	video   *model.FormatRecord
	options model.PostOptions
}

// Option configures a Flow.
type Option func(*Flow)

// WithPresetOverride skips the preset prompt.
func WithPresetOverride(p model.Preset) Option {
	return func(f *Flow) { f.override = &p }
}

// WithPrompter sets the prompt renderer.
func WithPrompter(p prompt.Prompter) Option {
	return func(f *Flow) { f.prompter = p }
}

// WithThumbnailHelper tells the flow whether the thumbnail helper is
// installed. It only changes a prompt default.
func WithThumbnailHelper(present bool) Option {
	return func(f *Flow) { f.thumbHelper = present }
}

// WithPolicy overrides the picker policy.
func WithPolicy(p catalog.Policy) Option {
	return func(f *Flow) { f.policy = p }
}

// New creates a flow over d. Without WithPrompter every default is accepted.
func New(d model.MediaDescriptor, opts ...Option) *Flow {
	f := &Flow{
		desc:     d,
		prompter: prompt.Defaults{},
		policy:   catalog.PickerPolicy,
		state:    StateResolvePreset,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// Run walks the flow to a terminal state. It returns ErrAborted if the user
// cancels at any prompt; partial answers are discarded.
func (f *Flow) Run() (model.SelectionResult, error) {
	for {
		var (
			next State
			err  error
		)
		switch f.state {
		case StateResolvePreset:
			next, err = f.resolvePreset()
		case StateSelectManual:
			next, err = f.selectManual()
		case StateSelectVideo:
			next, err = f.selectVideo()
		case StateSelectAudio:
			next, err = f.selectAudio()
		case StateConfigureOptions:
			next, err = f.configureOptions()
		case StateComplete:
			return model.SelectionResult{
				Preset:    f.preset,
				FormatIDs: append([]string(nil), f.ids...),
				Options:   f.options,
			}, nil
		case StateAborted:
			f.ids, f.video, f.options = nil, nil, model.PostOptions{}
			return model.SelectionResult{}, ErrAborted
		default:
			return model.SelectionResult{}, fmt.Errorf("flow: unknown state %d", int(f.state))
		}
		if err != nil {
			var selErr *SelectionError
			if errors.As(err, &selErr) {
				return model.SelectionResult{}, err
			}
			return model.SelectionResult{}, fmt.Errorf("%s: %w", f.state, err)
		}
		f.state = next
	}
}

func (f *Flow) resolvePreset() (State, error) {
	if f.override != nil {
		f.preset = *f.override
	} else {
		presets, def := preset.Resolve(preset.FlagsFor(f.desc))
		opts := make([]prompt.Option, len(presets))
		for i, p := range presets {
			opts[i] = prompt.Option{Label: p.Label()}
		}
		ans, err := f.prompter.Select(prompt.Select{
			Message: "Preset",
			Options: opts,
			Default: def,
		})
		if err != nil {
			return 0, err
		}
		if ans.Cancelled {
			return StateAborted, nil
		}
		if ans.Value < 0 || ans.Value >= len(presets) {
			return 0, fmt.Errorf("preset index %d out of range", ans.Value)
		}
		f.preset = presets[ans.Value]
	}

	switch f.preset {
	case model.PresetManual:
		return StateSelectManual, nil
	case model.PresetCustom:
		return StateSelectVideo, nil
	case model.PresetBest:
		f.ids = []string{SelectorBest}
	case model.PresetBestAudio:
		f.ids = []string{SelectorBestAudio}
	case model.PresetBestVideo:
		f.ids = []string{SelectorBestVideo}
	default:
		return 0, fmt.Errorf("unsupported preset %v", f.preset)
	}
	return StateConfigureOptions, nil
}

func (f *Flow) selectManual() (State, error) {
	ans, err := f.prompter.Text(prompt.Text{
		Message: "Format selector",
		Help:    "passed to yt-dlp -f as is, e.g. 137+140",
	})
	if err != nil {
		return 0, err
	}
	if ans.Cancelled {
		return StateAborted, nil
	}
	sel := strings.TrimSpace(ans.Value)
	if sel == "" {
		return 0, &SelectionError{State: StateSelectManual, Reason: "empty format selector"}
	}
	f.ids = []string{sel}
	return StateConfigureOptions, nil
}

func (f *Flow) selectVideo() (State, error) {
	candidates := catalog.VideoCandidates(f.desc.Formats, f.policy)
	if len(candidates) == 0 {
		return 0, &SelectionError{State: StateSelectVideo, Reason: "no video formats to choose from"}
	}
	idx, cancelled, err := f.pick("Video format", candidates, true)
	if err != nil || cancelled {
		return abortOr(cancelled), err
	}
	chosen := candidates[idx]
	f.video = &chosen
	f.ids = []string{chosen.ID}
	if catalog.HasAudio(chosen) {
		return StateConfigureOptions, nil
	}
	return StateSelectAudio, nil
}

func (f *Flow) selectAudio() (State, error) {
	candidates := catalog.AudioCandidates(f.desc.Formats, f.policy)
	if len(candidates) == 0 {
		return 0, &SelectionError{State: StateSelectAudio, Reason: "no audio formats to choose from"}
	}
	idx, cancelled, err := f.pick("Audio format", candidates, false)
	if err != nil || cancelled {
		return abortOr(cancelled), err
	}
	f.ids = append(f.ids, candidates[idx].ID)
	return StateConfigureOptions, nil
}

func (f *Flow) pick(msg string, candidates []model.FormatRecord, video bool) (int, bool, error) {
	opts := make([]prompt.Option, len(candidates))
	for i, c := range candidates {
		label := catalog.AudioLabel(c)
		if video {
			label = catalog.VideoLabel(c)
		}
		opts[i] = prompt.Option{Label: label, Answer: catalog.AnswerLabel(c, video)}
	}
	ans, err := f.prompter.Select(prompt.Select{Message: msg, Options: opts})
	if err != nil {
		return 0, false, err
	}
	if ans.Cancelled {
		return 0, true, nil
	}
	if ans.Value < 0 || ans.Value >= len(candidates) {
		return 0, false, fmt.Errorf("format index %d out of range", ans.Value)
	}
	return ans.Value, false, nil
}

func abortOr(cancelled bool) State {
	if cancelled {
		return StateAborted
	}
	return 0
}

func (f *Flow) configureOptions() (State, error) {
	var opts model.PostOptions

	title, err := f.prompter.Text(prompt.Text{Message: "Title", Default: f.desc.Title})
	if err != nil {
		return 0, err
	}
	if title.Cancelled {
		return StateAborted, nil
	}
	name := strings.TrimSpace(title.Value)
	if name == "" {
		name = f.desc.Title
	}
	opts.OutputTemplate = media.OutputTemplate(name, f.desc.ID)

	thumb, err := f.prompter.Confirm(prompt.Confirm{
		Message: "Embed thumbnail?",
		Default: (f.preset == model.PresetBestAudio || f.preset == model.PresetBestVideo) && f.thumbHelper,
	})
	if err != nil {
		return 0, err
	}
	if thumb.Cancelled {
		return StateAborted, nil
	}
	opts.EmbedThumbnail = thumb.Value

	if f.preset != model.PresetBestAudio {
		chapters, err := f.prompter.Confirm(prompt.Confirm{
			Message: "Embed chapters?",
			Default: f.preset.VideoOriented(),
		})
		if err != nil {
			return 0, err
		}
		if chapters.Cancelled {
			return StateAborted, nil
		}
		opts.EmbedChapters = chapters.Value
	}

	if tracks := catalog.SubtitleTracks(f.desc); f.preset != model.PresetBestAudio && len(tracks) > 0 {
		choices := make([]prompt.Option, len(tracks))
		for i, t := range tracks {
			choices[i] = prompt.Option{Label: t.Name, Answer: t.Lang}
		}
		subs, err := f.prompter.MultiSelect(prompt.MultiSelect{
			Message: "Embed subtitles",
			Options: choices,
			Help:    "select none to skip",
		})
		if err != nil {
			return 0, err
		}
		if subs.Cancelled {
			return StateAborted, nil
		}
		for _, i := range subs.Value {
			if i < 0 || i >= len(tracks) {
				return 0, fmt.Errorf("subtitle index %d out of range", i)
			}
			opts.EmbedSubtitles = append(opts.EmbedSubtitles, tracks[i].Lang)
		}
	}

	if f.desc.ExtractorKey == sponsorExtractor && f.preset != model.PresetBestAudio {
		sponsor, err := f.prompter.Confirm(prompt.Confirm{
			Message: "Remove sponsor segments?",
			Help:    sponsorWarning,
		})
		if err != nil {
			return 0, err
		}
		if sponsor.Cancelled {
			return StateAborted, nil
		}
		opts.RemoveSponsorSegments = sponsor.Value
	}

	f.options = opts
	return StateComplete, nil
}
