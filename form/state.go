// Package form is the reactive core of paperfold: a single State record, a
// closed set of Events, a pure Update function mapping (State, Event) to
// (State, Effects), and an Orchestrator that runs the effects and feeds their
// outcomes back in as Events. All I/O happens inside effects; Update itself
// never blocks. Rendering layers read State and translate user input into
// Events, nothing more.
package form

import "github.com/electr1fy0/paperfold/paper"

// SecretSource says which secret buffer is authoritative at generation time.
// Switching sources never discards the other buffer.
type SecretSource int

const (
	SourceInline SecretSource = iota
	SourceFile
)

// State is the whole interaction. It is mutated only by Update; everything
// else gets a copy. Passphrase is sensitive and must never appear in logs,
// warnings or serialized output.
type State struct {
	Title      string
	Passphrase string

	SecretText     string
	SecretFileName string
	SecretFileData []byte
	Source         SecretSource

	NotesLabel string
	PageSize   paper.PageSize

	ShowAdvanced bool
	Picking      bool
	Generating   bool

	SecretWarning     string
	PassphraseWarning string
	GenerateWarning   string

	// SavedTo is set after a successful save so the UI can confirm it.
	SavedTo string
}

func NewState() State {
	return State{PageSize: paper.A4}
}
