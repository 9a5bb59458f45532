package downloader

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoSidecar means the probe finished without writing an info-json.
var ErrNoSidecar = errors.New("no info-json sidecar found")

const sidecarSuffix = ".info.json"

// SelectSidecarFile finds the sidecar the probe wrote into workdir.
// It prefers *.info.json and falls back to any regular file.
func SelectSidecarFile(workdir string) (string, error) {
	entries, err := os.ReadDir(workdir)
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			candidates = append(candidates, e.Name())
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoSidecar
	}

	// Sort by suffix priority, then name
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := sidecarPriority(candidates[i]), sidecarPriority(candidates[j])
		if pi == pj {
			return candidates[i] < candidates[j]
		}
		return pi < pj
	})

	return filepath.Join(workdir, candidates[0]), nil
}

// sidecarPriority returns a priority score for file names (lower = better).
func sidecarPriority(name string) int {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, sidecarSuffix):
		return 0
	case strings.HasSuffix(name, ".json"):
		return 1
	case strings.HasSuffix(name, ".part"), strings.HasSuffix(name, ".tmp"):
		return 100
	default:
		return 10
	}
}
