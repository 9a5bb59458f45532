package deps

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// DefaultThumbnailHelper is the mutagen tool whose presence means embedded
// thumbnails can be written into audio containers.
const DefaultThumbnailHelper = "mutagen-inspect"

// FindDownloader returns the path to yt-dlp.
// If customPath is non-empty, it tries that path or looks it up in PATH.
func FindDownloader(customPath string) (string, error) {
	if customPath != "" {
		return lookup(customPath)
	}
	if p, err := exec.LookPath("yt-dlp"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find yt-dlp in PATH. %s", installHint("yt-dlp"))
}

// FindFFmpeg returns the path to the ffmpeg binary in PATH.
// yt-dlp needs it for merging selections and embedding metadata.
func FindFFmpeg() (string, error) {
	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find ffmpeg in PATH. %s", installHint("ffmpeg"))
}

// FindThumbnailHelper locates the thumbnail-tagging helper.
func FindThumbnailHelper(name string) (string, error) {
	if name == "" {
		name = DefaultThumbnailHelper
	}
	return lookup(name)
}

// HasThumbnailHelper reports whether the helper is installed. It only feeds
// a prompt default.
func HasThumbnailHelper(name string) bool {
	_, err := FindThumbnailHelper(name)
	return err == nil
}

func lookup(nameOrPath string) (string, error) {
	if fi, err := os.Stat(nameOrPath); err == nil && !fi.IsDir() {
		return nameOrPath, nil
	}
	if p, err := exec.LookPath(nameOrPath); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find %q", nameOrPath)
}

func installHint(tool string) string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install " + tool
	case "windows":
		return "Install with: winget install " + tool
	default:
		if tool == "yt-dlp" {
			return "Install with: pipx install yt-dlp (or your distribution's package)"
		}
		return "Install with your distribution's package manager (e.g. apt-get install " + tool + ")"
	}
}
