package form

import (
	"github.com/electr1fy0/paperfold/dialog"
	"github.com/electr1fy0/paperfold/paper"
)

// Event is the closed set of inputs that can change State. User actions and
// asynchronous completions are deliberately the same kind of thing: both go
// through Update, the single mutation point.
type Event interface{ isEvent() }

// Field edits.

type TitleEdited struct{ Value string }

type PassphraseEdited struct{ Value string }

type SecretEdited struct{ Value string }

type NotesLabelEdited struct{ Value string }

type PageSizeChanged struct{ Size paper.PageSize }

// Toggles and presses.

// SourceToggled selects the file buffer when File is true, the inline text
// buffer otherwise.
type SourceToggled struct{ File bool }

type AdvancedToggled struct{}

type GeneratePressed struct{}

type PickPressed struct{}

// Asynchronous completions.

// FilePicked reports the outcome of the file dialog. A nil Handle means the
// dialog was dismissed.
type FilePicked struct{ Handle dialog.FileHandle }

type FileLoaded struct{ Data []byte }

// WarningsCleared resets all three warning slots. It is the first event of
// every accepted generation attempt.
type WarningsCleared struct{}

type SecretRejected struct{ Reason string }

type PassphraseRejected struct{ Reason string }

type GenerateFailed struct{ Reason string }

// ArtifactReady carries the finished document bytes into the save flow.
type ArtifactReady struct{ Data []byte }

// GenerateDone is the terminal event of every accepted generation attempt,
// on every branch. It is what clears the busy guard.
type GenerateDone struct{}

// SaveDone reports the save flow outcome. Both fields empty means the save
// dialog was dismissed.
type SaveDone struct {
	Path string
	Err  string
}

func (TitleEdited) isEvent()        {}
func (PassphraseEdited) isEvent()   {}
func (SecretEdited) isEvent()       {}
func (NotesLabelEdited) isEvent()   {}
func (PageSizeChanged) isEvent()    {}
func (SourceToggled) isEvent()      {}
func (AdvancedToggled) isEvent()    {}
func (GeneratePressed) isEvent()    {}
func (PickPressed) isEvent()        {}
func (FilePicked) isEvent()         {}
func (FileLoaded) isEvent()         {}
func (WarningsCleared) isEvent()    {}
func (SecretRejected) isEvent()     {}
func (PassphraseRejected) isEvent() {}
func (GenerateFailed) isEvent()     {}
func (ArtifactReady) isEvent()      {}
func (GenerateDone) isEvent()       {}
func (SaveDone) isEvent()           {}
