package form

import (
	"context"
	"fmt"

	"github.com/electr1fy0/paperfold/dialog"
	"github.com/electr1fy0/paperfold/paper"
)

// Warning texts shown under the form fields.
const (
	msgSelectFile      = "Select file"
	msgSecretEmpty     = "Secret is empty"
	msgPassphraseEmpty = "Passphrase is empty"
)

// Generator is the document-producing collaborator. paper.Generator is the
// real one; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, req paper.Request) ([]byte, error)
}

// Orchestrator executes effects. Each flow runs to completion and returns its
// follow-up events in order; the driver delivers them one at a time back into
// Update. Flows never fail out: every collaborator error is converted into an
// event.
type Orchestrator struct {
	Dialog    dialog.Service
	Generator Generator

	// SuggestedName seeds the save dialog; empty means paper.DefaultFileName.
	SuggestedName string
}

func (o *Orchestrator) Run(ctx context.Context, eff Effect) []Event {
	switch eff := eff.(type) {
	case PickFileEffect:
		return o.pickFlow(ctx)
	case ReadFileEffect:
		return o.readFlow(ctx, eff.Handle)
	case GenerateEffect:
		return o.generateFlow(ctx, eff.Req)
	case SaveEffect:
		return o.saveFlow(ctx, eff.Data)
	}
	return nil
}

// pickFlow asks the dialog for a file. Dismissal and dialog failure both
// resolve to "nothing chosen"; reading the contents happens in a separate
// effect so the name shows up as soon as the dialog closes.
func (o *Orchestrator) pickFlow(ctx context.Context) []Event {
	h, err := o.Dialog.PickFile(ctx)
	if err != nil || h == nil {
		return []Event{FilePicked{}}
	}
	return []Event{FilePicked{Handle: h}}
}

func (o *Orchestrator) readFlow(ctx context.Context, h dialog.FileHandle) []Event {
	data, err := h.Read(ctx)
	if err != nil {
		return []Event{SecretRejected{Reason: fmt.Sprintf("Error reading %s: %v", h.Name(), err)}}
	}
	return []Event{FileLoaded{Data: data}}
}

// generateFlow is the full validate-and-generate chain. The two validations
// are independent: both run, and both warnings surface together when both
// fail. Whatever branch is taken, the last event is always GenerateDone.
func (o *Orchestrator) generateFlow(ctx context.Context, snap Snapshot) []Event {
	evs := []Event{WarningsCleared{}}

	switch {
	case !snap.HasSecret:
		evs = append(evs, SecretRejected{Reason: msgSelectFile})
	case len(snap.Secret) == 0:
		evs = append(evs, SecretRejected{Reason: msgSecretEmpty})
	}
	if snap.Passphrase == "" {
		evs = append(evs, PassphraseRejected{Reason: msgPassphraseEmpty})
	}
	if len(evs) > 1 {
		return append(evs, GenerateDone{})
	}

	req := paper.Request{
		Title:      snap.Title,
		Secret:     snap.Secret,
		Passphrase: snap.Passphrase,
		NotesLabel: snap.NotesLabel,
		PageSize:   snap.PageSize,
	}
	if req.Title == "" {
		req.Title = paper.DefaultTitle
	}
	if req.NotesLabel == "" {
		req.NotesLabel = paper.DefaultNotesLabel
	}

	data, err := o.Generator.Generate(ctx, req)
	if err != nil {
		evs = append(evs, GenerateFailed{Reason: fmt.Sprintf("Error: %v", err)})
	} else {
		evs = append(evs, ArtifactReady{Data: data})
	}
	return append(evs, GenerateDone{})
}

func (o *Orchestrator) saveFlow(ctx context.Context, data []byte) []Event {
	name := o.SuggestedName
	if name == "" {
		name = paper.DefaultFileName
	}
	target, err := o.Dialog.SaveFile(ctx, name, "*.pdf")
	if err != nil || target == nil {
		return []Event{SaveDone{}}
	}
	if err := target.Write(ctx, data); err != nil {
		return []Event{SaveDone{Err: err.Error()}}
	}
	return []Event{SaveDone{Path: target.Name()}}
}
