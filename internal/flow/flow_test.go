package flow

import (
	"errors"
	"reflect"
	"testing"

	"ytpick/internal/catalog"
	"ytpick/internal/model"
	"ytpick/internal/prompt"
)

func ptr[T any](v T) *T { return &v }

func musicDescriptor() model.MediaDescriptor {
	return model.MediaDescriptor{
		ID:           "dQw4w9WgXcQ",
		Title:        "Never Gonna Give You Up",
		Categories:   []string{"Music"},
		ExtractorKey: "Youtube",
		Subtitles: map[string][]model.SubtitleVariant{
			"en":        {{Ext: "vtt", Name: "English"}},
			"live_chat": {{Ext: "json", Protocol: "youtube_live_chat_replay"}},
		},
		Formats: model.Catalog{
			{ID: "140", Ext: "m4a", Protocol: "https", AudioCodec: ptr("mp4a.40.2"), AudioSampleRate: ptr(int64(44100))},
			{ID: "251", Ext: "webm", Protocol: "https", AudioCodec: ptr("opus"), AudioSampleRate: ptr(int64(48000))},
			{ID: "137", Ext: "mp4", Protocol: "https", VideoCodec: ptr("avc1.640028"), Width: ptr(1920)},
			{ID: "248", Ext: "webm", Protocol: "https", VideoCodec: ptr("vp9"), Width: ptr(1920)},
			{ID: "18", Ext: "mp4", Protocol: "https", AudioCodec: ptr("mp4a.40.2"), VideoCodec: ptr("avc1.42001E"), Width: ptr(640)},
		},
	}
}

func TestRun_CancelAtPreset(t *testing.T) {
	script := prompt.NewScript(prompt.Cancel[int]())
	f := New(musicDescriptor(), WithPrompter(script))

	res, err := f.Run()
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Run() err = %v, want ErrAborted", err)
	}
	if f.State() != StateAborted {
		t.Errorf("State() = %v, want aborted", f.State())
	}
	if !reflect.DeepEqual(res, model.SelectionResult{}) {
		t.Errorf("Run() result = %+v, want zero value", res)
	}
}

func TestRun_PresetPromptOrderAndDefault(t *testing.T) {
	script := prompt.NewScript(prompt.Cancel[int]())
	_, _ = New(musicDescriptor(), WithPrompter(script)).Run()

	q, ok := script.Asked[0].(prompt.Select)
	if !ok {
		t.Fatalf("first prompt = %T, want prompt.Select", script.Asked[0])
	}
	var labels []string
	for _, o := range q.Options {
		labels = append(labels, o.Label)
	}
	want := []string{"best audio", "custom", "best", "best video", "manual"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("preset labels = %v, want %v", labels, want)
	}
	if q.Default != 0 {
		t.Errorf("preset default = %d, want 0", q.Default)
	}
}

func TestRun_Custom(t *testing.T) {
	script := prompt.NewScript(
		prompt.Choice(1),        // custom
		prompt.Choice(0),        // 137
		prompt.Choice(0),        // 251
		prompt.Choice(""),       // keep title
		prompt.Choice(false),    // thumbnail
		prompt.Choice(true),     // chapters
		prompt.Choice([]int{0}), // en
		prompt.Choice(true),     // sponsor
	)
	res, err := New(musicDescriptor(), WithPrompter(script)).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := model.SelectionResult{
		Preset:    model.PresetCustom,
		FormatIDs: []string{"137", "251"},
		Options: model.PostOptions{
			OutputTemplate:        "Never Gonna Give You Up.%(ext)s",
			EmbedChapters:         true,
			EmbedSubtitles:        []string{"en"},
			RemoveSponsorSegments: true,
		},
	}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("Run() = %+v\nwant %+v", res, want)
	}
	if script.Remaining() != 0 {
		t.Errorf("%d answers left unused", script.Remaining())
	}

	video := script.Asked[1].(prompt.Select)
	if got := video.Options[0].Echo(); got != "137 - avc1.640028" {
		t.Errorf("video echo = %q", got)
	}
	subs := script.Asked[6].(prompt.MultiSelect)
	if len(subs.Options) != 1 || subs.Options[0].Label != "English" {
		t.Errorf("subtitle options = %+v, want only English", subs.Options)
	}
}

func TestRun_BestAudioOverride(t *testing.T) {
	script := prompt.NewScript(
		prompt.Choice("Rick"),
		prompt.Choice(true),
	)
	res, err := New(musicDescriptor(),
		WithPrompter(script),
		WithPresetOverride(model.PresetBestAudio),
		WithThumbnailHelper(true),
	).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(res.FormatIDs, []string{"bestaudio"}) {
		t.Errorf("FormatIDs = %v", res.FormatIDs)
	}
	if res.Options.OutputTemplate != "Rick.%(ext)s" || !res.Options.EmbedThumbnail || res.Options.EmbedChapters {
		t.Errorf("Options = %+v", res.Options)
	}
	if len(script.Asked) != 2 {
		t.Fatalf("asked %d prompts, want title and thumbnail only", len(script.Asked))
	}
	if thumb := script.Asked[1].(prompt.Confirm); !thumb.Default {
		t.Error("thumbnail default should be true for best audio with helper present")
	}
}

func TestRun_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		preset       model.Preset
		helper       bool
		wantIDs      []string
		wantThumb    bool
		wantChapters bool
	}{
		{"best", model.PresetBest, true, []string{"bv*+ba/b"}, false, true},
		{"best video with helper", model.PresetBestVideo, true, []string{"bestvideo"}, true, true},
		{"best video without helper", model.PresetBestVideo, false, []string{"bestvideo"}, false, true},
		{"best audio without helper", model.PresetBestAudio, false, []string{"bestaudio"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(musicDescriptor(),
				WithPresetOverride(tt.preset),
				WithThumbnailHelper(tt.helper),
			).Run()
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !reflect.DeepEqual(res.FormatIDs, tt.wantIDs) {
				t.Errorf("FormatIDs = %v, want %v", res.FormatIDs, tt.wantIDs)
			}
			if res.Options.EmbedThumbnail != tt.wantThumb {
				t.Errorf("EmbedThumbnail = %v, want %v", res.Options.EmbedThumbnail, tt.wantThumb)
			}
			if res.Options.EmbedChapters != tt.wantChapters {
				t.Errorf("EmbedChapters = %v, want %v", res.Options.EmbedChapters, tt.wantChapters)
			}
			if res.Options.EmbedSubtitles != nil || res.Options.RemoveSponsorSegments {
				t.Errorf("unexpected options %+v", res.Options)
			}
		})
	}
}

func TestRun_Manual(t *testing.T) {
	script := prompt.NewScript(
		prompt.Choice(4), // manual
		prompt.Choice(" 137+140 "),
		prompt.Choice(""),
		prompt.Choice(false),
		prompt.Choice(false),
		prompt.Choice([]int{}),
		prompt.Choice(false),
	)
	res, err := New(musicDescriptor(), WithPrompter(script)).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Preset != model.PresetManual || !reflect.DeepEqual(res.FormatIDs, []string{"137+140"}) {
		t.Errorf("Run() = %+v", res)
	}
	if res.Options.EmbedSubtitles != nil {
		t.Errorf("empty subtitle selection should embed nothing, got %v", res.Options.EmbedSubtitles)
	}
}

func TestRun_ManualEmpty(t *testing.T) {
	script := prompt.NewScript(prompt.Choice(4), prompt.Choice("   "))
	_, err := New(musicDescriptor(), WithPrompter(script)).Run()
	var selErr *SelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("Run() err = %v, want *SelectionError", err)
	}
	if selErr.State != StateSelectManual {
		t.Errorf("SelectionError.State = %v", selErr.State)
	}
}

func TestRun_NoVideoCandidates(t *testing.T) {
	d := musicDescriptor()
	d.Formats = model.Catalog{d.Formats[4]} // muxed only
	_, err := New(d, WithPresetOverride(model.PresetCustom)).Run()
	var selErr *SelectionError
	if !errors.As(err, &selErr) || selErr.State != StateSelectVideo {
		t.Fatalf("Run() err = %v, want SelectionError in select video", err)
	}
}

func TestRun_LooseMuxedSkipsAudio(t *testing.T) {
	script := prompt.NewScript(
		prompt.Choice(2), // 137, 248, 18 by width
		prompt.Choice(""),
		prompt.Choice(false),
		prompt.Choice(false),
		prompt.Choice([]int{}),
		prompt.Choice(false),
	)
	res, err := New(musicDescriptor(),
		WithPrompter(script),
		WithPresetOverride(model.PresetCustom),
		WithPolicy(catalog.PolicyLoose),
	).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(res.FormatIDs, []string{"18"}) {
		t.Errorf("FormatIDs = %v, want [18]", res.FormatIDs)
	}
}

func TestRun_CancelLate(t *testing.T) {
	script := prompt.NewScript(
		prompt.Choice(""),
		prompt.Choice(false),
		prompt.Choice(true),
		prompt.Choice([]int{0}),
		prompt.Cancel[bool](),
	)
	f := New(musicDescriptor(), WithPrompter(script), WithPresetOverride(model.PresetBest))
	if _, err := f.Run(); !errors.Is(err, ErrAborted) {
		t.Fatalf("Run() err = %v, want ErrAborted", err)
	}
}

func TestRun_SponsorOnlyForYoutube(t *testing.T) {
	d := musicDescriptor()
	d.ExtractorKey = "Vimeo"
	d.Subtitles = nil
	script := prompt.NewScript(prompt.Choice(""), prompt.Choice(false), prompt.Choice(false))
	res, err := New(d, WithPrompter(script), WithPresetOverride(model.PresetBest)).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(script.Asked) != 3 || res.Options.RemoveSponsorSegments {
		t.Errorf("asked %d prompts, options %+v", len(script.Asked), res.Options)
	}
}

func TestRun_PromptErrorIsWrapped(t *testing.T) {
	_, err := New(musicDescriptor(), WithPrompter(prompt.NewScript())).Run()
	if err == nil || errors.Is(err, ErrAborted) {
		t.Fatalf("Run() err = %v, want I/O error", err)
	}
}
