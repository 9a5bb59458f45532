package preset

import (
	"reflect"
	"testing"

	"ytpick/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		want    []model.Preset
		wantDef int
	}{
		{
			name:    "muxed only",
			flags:   Flags{},
			want:    []model.Preset{model.PresetCustom, model.PresetBest, model.PresetManual},
			wantDef: 1,
		},
		{
			name:    "split streams, not music",
			flags:   Flags{HasAudioOnly: true, HasVideoOnly: true},
			want:    []model.Preset{model.PresetCustom, model.PresetBest, model.PresetBestVideo, model.PresetBestAudio, model.PresetManual},
			wantDef: 1,
		},
		{
			name:    "split streams, music",
			flags:   Flags{HasAudioOnly: true, HasVideoOnly: true, MusicLike: true},
			want:    []model.Preset{model.PresetBestAudio, model.PresetCustom, model.PresetBest, model.PresetBestVideo, model.PresetManual},
			wantDef: 0,
		},
		{
			name:    "music without audio-only variant",
			flags:   Flags{HasVideoOnly: true, MusicLike: true},
			want:    []model.Preset{model.PresetCustom, model.PresetBest, model.PresetBestVideo, model.PresetManual},
			wantDef: 1,
		},
		{
			name:    "audio only, not music",
			flags:   Flags{HasAudioOnly: true},
			want:    []model.Preset{model.PresetCustom, model.PresetBest, model.PresetBestAudio, model.PresetManual},
			wantDef: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, def := Resolve(tt.flags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() presets = %v, want %v", got, tt.want)
			}
			if def != tt.wantDef {
				t.Errorf("Resolve() default = %d, want %d", def, tt.wantDef)
			}
			if got[def] != model.PresetBest && got[def] != model.PresetBestAudio {
				t.Errorf("default points at %v", got[def])
			}
		})
	}
}

func TestResolve_AudioBeforeVideoWhenMusic(t *testing.T) {
	for _, music := range []bool{true, false} {
		presets, _ := Resolve(Flags{HasAudioOnly: true, HasVideoOnly: true, MusicLike: music})
		audioIdx, videoIdx := -1, -1
		for i, p := range presets {
			if p == model.PresetBestAudio {
				audioIdx = i
			}
			if p == model.PresetBestVideo {
				videoIdx = i
			}
		}
		if music && audioIdx > videoIdx {
			t.Errorf("music: best audio (%d) should precede best video (%d)", audioIdx, videoIdx)
		}
		if !music && audioIdx < videoIdx {
			t.Errorf("non-music: best video (%d) should precede best audio (%d)", videoIdx, audioIdx)
		}
	}
}

// Adding a split-stream variant can only grow the offerable set.
func TestResolve_Monotonic(t *testing.T) {
	all := []Flags{}
	for mask := 0; mask < 8; mask++ {
		all = append(all, Flags{
			HasAudioOnly: mask&1 != 0,
			HasVideoOnly: mask&2 != 0,
			MusicLike:    mask&4 != 0,
		})
	}
	for _, base := range all {
		before, _ := Resolve(base)
		for _, richer := range []Flags{
			{HasAudioOnly: true, HasVideoOnly: base.HasVideoOnly, MusicLike: base.MusicLike},
			{HasAudioOnly: base.HasAudioOnly, HasVideoOnly: true, MusicLike: base.MusicLike},
		} {
			after, _ := Resolve(richer)
			set := make(map[model.Preset]bool, len(after))
			for _, p := range after {
				set[p] = true
			}
			for _, p := range before {
				if !set[p] {
					t.Errorf("%+v -> %+v dropped preset %v", base, richer, p)
				}
			}
		}
	}
}

func TestFlagsFor(t *testing.T) {
	d := model.MediaDescriptor{
		Categories: []string{"music"},
		Formats: model.Catalog{
			{ID: "audioOnly1", AudioCodec: model.StringPtr("opus")},
			{ID: "videoOnly1", VideoCodec: model.StringPtr("avc1")},
		},
	}
	got := FlagsFor(d)
	want := Flags{HasAudioOnly: true, HasVideoOnly: true, MusicLike: true}
	if got != want {
		t.Errorf("FlagsFor() = %+v, want %+v", got, want)
	}

	presets, _ := Resolve(got)
	has := map[model.Preset]bool{}
	for _, p := range presets {
		has[p] = true
	}
	if !has[model.PresetBestAudio] || !has[model.PresetBestVideo] {
		t.Errorf("Resolve() = %v, want best-audio and best-video offered", presets)
	}
}
