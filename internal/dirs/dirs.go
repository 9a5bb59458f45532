package dirs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"ytpick/internal/model"
)

const appName = "ytpick"

// AppName returns the canonical application name for directory paths.
func AppName() string {
	return appName
}

// ConfigDir returns the app's configuration directory.
// - Linux: $XDG_CONFIG_HOME/ytpick or ~/.config/ytpick
// - macOS: ~/Library/Application Support/ytpick
// - Windows: %AppData%/ytpick (fallback to os.UserConfigDir)
func ConfigDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName()), nil
	case "linux":
		xdg := os.Getenv("XDG_CONFIG_HOME")
		if xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName()), nil
	default:
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, AppName()), nil
	}
}

// CacheDir returns the app's cache directory.
// - Linux: $XDG_CACHE_HOME/ytpick or ~/.cache/ytpick
// - macOS: ~/Library/Caches/ytpick
// - Windows: %LocalAppData%/ytpick (fallback to os.UserCacheDir)
func CacheDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Caches", AppName()), nil
	case "linux":
		xdg := os.Getenv("XDG_CACHE_HOME")
		if xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".cache", AppName()), nil
	default:
		c, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(c, AppName()), nil
	}
}

// TempBaseDir returns the base directory for probe workdirs under cache.
func TempBaseDir() (string, error) {
	c, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(c, "temp"), nil
}

// AudioDir returns the user's music directory.
// - $XDG_MUSIC_DIR when set
// - otherwise ~/Music
func AudioDir() (string, error) {
	return userMediaDir("XDG_MUSIC_DIR", "Music")
}

// VideoDir returns the user's video directory.
// - $XDG_VIDEOS_DIR when set
// - macOS: ~/Movies
// - otherwise ~/Videos
func VideoDir() (string, error) {
	name := "Videos"
	if runtime.GOOS == "darwin" {
		name = "Movies"
	}
	return userMediaDir("XDG_VIDEOS_DIR", name)
}

// OutputDirFor picks the media directory for p: audio for best audio,
// video otherwise.
func OutputDirFor(p model.Preset) (string, error) {
	if p.AudioOriented() {
		return AudioDir()
	}
	return VideoDir()
}

func userMediaDir(env, name string) (string, error) {
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, name), nil
}

// Ensure creates the directory if it doesn't exist.
func Ensure(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}

// EnsureAll ensures config and cache dirs exist.
func EnsureAll() error {
	if p, err := ConfigDir(); err == nil {
		if err := Ensure(p); err != nil {
			return err
		}
	}
	if p, err := CacheDir(); err == nil {
		if err := Ensure(p); err != nil {
			return err
		}
	}
	return nil
}
