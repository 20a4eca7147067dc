// Package workspace scopes a pipeline run's working files to a private
// temporary directory. The artifact names inside a workspace are fixed and
// each stage overwrites its own artifact; isolation between runs comes from
// never sharing a directory, so concurrent runs cannot corrupt each other.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	inputName    = "input.mp4"
	repairedName = "repaired.mp4"
	frameName    = "first_frame.png"
	clipName     = "clip.mp4"
)

type Workspace struct {
	dir string
}

// New creates a fresh run directory under parent. An empty parent uses the
// system temp dir.
func New(parent string) (*Workspace, error) {
	if parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("create workspace parent: %w", err)
		}
	}
	dir, err := os.MkdirTemp(parent, "stampcut-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

func (w *Workspace) Dir() string      { return w.dir }
func (w *Workspace) Input() string    { return filepath.Join(w.dir, inputName) }
func (w *Workspace) Repaired() string { return filepath.Join(w.dir, repairedName) }
func (w *Workspace) Frame() string    { return filepath.Join(w.dir, frameName) }
func (w *Workspace) Clip() string     { return filepath.Join(w.dir, clipName) }

// Cleanup removes the run directory and everything in it.
func (w *Workspace) Cleanup() error {
	return os.RemoveAll(w.dir)
}
