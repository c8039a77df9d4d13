package dialog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPathHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	if err := os.WriteFile(path, []byte("the keys"), 0600); err != nil {
		t.Fatal(err)
	}

	h := NewPathHandle(path)
	if h.Name() != "keys.txt" {
		t.Errorf("Name = %q, want the base name", h.Name())
	}
	data, err := h.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(data, []byte("the keys")) {
		t.Errorf("Read = %q", data)
	}
}

func TestPathHandleMissingFile(t *testing.T) {
	h := NewPathHandle(filepath.Join(t.TempDir(), "nope.txt"))
	if _, err := h.Read(context.Background()); err == nil {
		t.Fatal("missing file read without error")
	}
}

func TestPathHandleCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := NewPathHandle("irrelevant")
	if _, err := h.Read(ctx); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPathTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	tgt := NewPathTarget(path)
	if tgt.Name() != path {
		t.Errorf("Name = %q, want the full path", tgt.Name())
	}
	if err := tgt.Write(context.Background(), []byte("%PDF")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte("%PDF")) {
		t.Errorf("wrote %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestPathTargetBadDirectory(t *testing.T) {
	tgt := NewPathTarget(filepath.Join(t.TempDir(), "missing", "out.pdf"))
	if err := tgt.Write(context.Background(), []byte("x")); err == nil {
		t.Fatal("write into a missing directory succeeded")
	}
}
