package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/electr1fy0/paperfold/dialog"
)

// OverlayDialog implements dialog.Service on top of the TUI itself: a flow
// goroutine calling PickFile or SaveFile blocks on a reply channel while the
// model shows the matching overlay, exactly like a native async file dialog
// would. Requests reach the model through the subscription returned by wait.
type OverlayDialog struct {
	requests chan dialogRequestMsg
}

type pickRequest struct {
	reply chan dialog.FileHandle
}

type saveRequest struct {
	suggested string
	filter    string
	reply     chan dialog.SaveTarget
}

// dialogRequestMsg is delivered to the model; exactly one field is set.
type dialogRequestMsg struct {
	pick *pickRequest
	save *saveRequest
}

func NewOverlayDialog() *OverlayDialog {
	return &OverlayDialog{requests: make(chan dialogRequestMsg)}
}

func (d *OverlayDialog) PickFile(ctx context.Context) (dialog.FileHandle, error) {
	req := &pickRequest{reply: make(chan dialog.FileHandle, 1)}
	select {
	case d.requests <- dialogRequestMsg{pick: req}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case h := <-req.reply:
		return h, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (d *OverlayDialog) SaveFile(ctx context.Context, suggested, filter string) (dialog.SaveTarget, error) {
	req := &saveRequest{suggested: suggested, filter: filter, reply: make(chan dialog.SaveTarget, 1)}
	select {
	case d.requests <- dialogRequestMsg{save: req}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case t := <-req.reply:
		return t, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// wait re-arms the request subscription; the model batches it back in after
// every delivery.
func (d *OverlayDialog) wait() tea.Cmd {
	return func() tea.Msg {
		return <-d.requests
	}
}
