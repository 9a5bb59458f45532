package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Workdir is a scoped temporary directory. Release is safe to call more
// than once and on a zero Workdir.
type Workdir struct {
	Path string
}

// MakeTempWorkdir creates a unique directory under base (os.TempDir()/ytpick
// when base is empty).
func MakeTempWorkdir(base, prefix string) (*Workdir, error) {
	if base == "" {
		base = filepath.Join(os.TempDir(), "ytpick")
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create temp base: %w", err)
	}
	dir, err := os.MkdirTemp(base, prefix+"-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	return &Workdir{Path: dir}, nil
}

// Release removes the directory and everything in it.
func (w *Workdir) Release() error {
	if w == nil || w.Path == "" {
		return nil
	}
	err := os.RemoveAll(w.Path)
	w.Path = ""
	return err
}

// EnsureDir creates the directory path if it does not exist.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}
