package tui

import (
	"context"
	"testing"
	"time"

	"github.com/electr1fy0/paperfold/config"
	"github.com/electr1fy0/paperfold/dialog"
	"github.com/electr1fy0/paperfold/paper"
)

func TestNewModelSeedsStateFromConfig(t *testing.T) {
	m := NewModel(config.Config{
		Title:      "My Vault",
		NotesLabel: "Hint:",
		PageSize:   "letter",
		OutputName: "vault.pdf",
	})

	if m.state.Title != "My Vault" || m.state.NotesLabel != "Hint:" {
		t.Errorf("state = %+v", m.state)
	}
	if m.state.PageSize != paper.Letter {
		t.Errorf("PageSize = %v", m.state.PageSize)
	}
	if m.orc.SuggestedName != "vault.pdf" {
		t.Errorf("SuggestedName = %q", m.orc.SuggestedName)
	}
	if m.titleInput.Value() != "My Vault" || m.notesInput.Value() != "Hint:" {
		t.Error("inputs not seeded from config")
	}
}

func TestNewModelUnknownPageSizeFallsBack(t *testing.T) {
	m := NewModel(config.Config{PageSize: "legal"})
	if m.state.PageSize != paper.A4 {
		t.Errorf("PageSize = %v, want A4", m.state.PageSize)
	}
}

func TestNextPageSize(t *testing.T) {
	if nextPageSize(paper.A4) != paper.Letter {
		t.Error("A4 should cycle to Letter")
	}
	if nextPageSize(paper.Letter) != paper.A4 {
		t.Error("Letter should cycle to A4")
	}
}

func TestZonesFollowAdvancedToggle(t *testing.T) {
	m := NewModel(config.Default())
	if got := len(m.zones()); got != 3 {
		t.Errorf("collapsed zones = %d, want 3", got)
	}
	m.state.ShowAdvanced = true
	if got := len(m.zones()); got != 6 {
		t.Errorf("expanded zones = %d, want 6", got)
	}
}

func TestOverlayDialogPickBridge(t *testing.T) {
	d := NewOverlayDialog()

	type result struct {
		h   dialog.FileHandle
		err error
	}
	done := make(chan result, 1)
	go func() {
		h, err := d.PickFile(context.Background())
		done <- result{h, err}
	}()

	msg, ok := d.wait()().(dialogRequestMsg)
	if !ok || msg.pick == nil {
		t.Fatalf("request = %#v, want a pick", msg)
	}
	want := dialog.NewPathHandle("/tmp/keys.txt")
	msg.pick.reply <- want

	select {
	case res := <-done:
		if res.err != nil || res.h != want {
			t.Errorf("PickFile = (%v, %v)", res.h, res.err)
		}
	case <-time.After(time.Second):
		t.Fatal("PickFile never returned")
	}
}

func TestOverlayDialogSaveBridge(t *testing.T) {
	d := NewOverlayDialog()

	type result struct {
		tgt dialog.SaveTarget
		err error
	}
	done := make(chan result, 1)
	go func() {
		tgt, err := d.SaveFile(context.Background(), "secret.pdf", "*.pdf")
		done <- result{tgt, err}
	}()

	msg := d.wait()().(dialogRequestMsg)
	if msg.save == nil {
		t.Fatalf("request = %#v, want a save", msg)
	}
	if msg.save.suggested != "secret.pdf" || msg.save.filter != "*.pdf" {
		t.Errorf("save request = (%q, %q)", msg.save.suggested, msg.save.filter)
	}

	// a dismissed overlay replies nil; the flow maps it to SaveDone{}
	msg.save.reply <- nil
	select {
	case res := <-done:
		if res.err != nil || res.tgt != nil {
			t.Errorf("SaveFile = (%v, %v)", res.tgt, res.err)
		}
	case <-time.After(time.Second):
		t.Fatal("SaveFile never returned")
	}
}

func TestOverlayDialogCancelledContext(t *testing.T) {
	d := NewOverlayDialog()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.PickFile(ctx); err != context.Canceled {
		t.Errorf("PickFile err = %v, want context.Canceled", err)
	}
	if _, err := d.SaveFile(ctx, "x", "*"); err != context.Canceled {
		t.Errorf("SaveFile err = %v, want context.Canceled", err)
	}
}
