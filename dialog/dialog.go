// Package dialog defines the file-dialog collaborator used by the effect
// flows. Implementations may block for as long as the user keeps a dialog
// open; a cancelled dialog yields a nil handle or target, never an error.
package dialog

import (
	"context"
	"os"
	"path/filepath"
)

// FileHandle is a picked file. Its contents are read once and treated as
// immutable afterwards.
type FileHandle interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
}

// SaveTarget is a confirmed save destination.
type SaveTarget interface {
	Name() string
	Write(ctx context.Context, data []byte) error
}

// Service is the dialog collaborator. The interactive implementation lives in
// the tui package; tests substitute fakes.
type Service interface {
	PickFile(ctx context.Context) (FileHandle, error)
	SaveFile(ctx context.Context, suggested, filter string) (SaveTarget, error)
}

// PathHandle is a FileHandle backed by a filesystem path.
type PathHandle struct {
	path string
}

func NewPathHandle(path string) *PathHandle {
	return &PathHandle{path: path}
}

func (h *PathHandle) Name() string {
	return filepath.Base(h.path)
}

func (h *PathHandle) Path() string {
	return h.path
}

func (h *PathHandle) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(h.path)
}

// PathTarget is a SaveTarget backed by a filesystem path.
type PathTarget struct {
	path string
}

func NewPathTarget(path string) *PathTarget {
	return &PathTarget{path: path}
}

func (t *PathTarget) Name() string {
	return t.path
}

func (t *PathTarget) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(t.path, data, 0600)
}
