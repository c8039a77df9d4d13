package form

import (
	"strings"

	"github.com/electr1fy0/paperfold/dialog"
	"github.com/electr1fy0/paperfold/paper"
)

// Effect describes an asynchronous operation for the Orchestrator to run.
// Update only ever returns effect descriptions; it performs no I/O itself.
type Effect interface{ isEffect() }

type PickFileEffect struct{}

type ReadFileEffect struct{ Handle dialog.FileHandle }

type GenerateEffect struct{ Req Snapshot }

type SaveEffect struct{ Data []byte }

func (PickFileEffect) isEffect() {}
func (ReadFileEffect) isEffect() {}
func (GenerateEffect) isEffect() {}
func (SaveEffect) isEffect()     {}

// Snapshot freezes the generation inputs at the moment the request was
// accepted, so later edits cannot race the in-flight flow. HasSecret is false
// only when the file source is active and no file has been loaded yet.
type Snapshot struct {
	Title      string
	NotesLabel string
	PageSize   paper.PageSize
	Secret     []byte
	HasSecret  bool
	Passphrase string
}

func (s State) snapshot() Snapshot {
	snap := Snapshot{
		Title:      s.Title,
		NotesLabel: s.NotesLabel,
		PageSize:   s.PageSize,
		Passphrase: s.Passphrase,
	}
	if s.Source == SourceFile {
		snap.Secret = s.SecretFileData
		snap.HasSecret = s.SecretFileData != nil
	} else {
		snap.Secret = []byte(strings.TrimSpace(s.SecretText))
		snap.HasSecret = true
	}
	return snap
}
