// Package tui renders the paperfold form and translates terminal input into
// form events. State changes happen only through form.Update; effects run as
// commands and come back as event batches.
package tui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/electr1fy0/paperfold/config"
	"github.com/electr1fy0/paperfold/dialog"
	"github.com/electr1fy0/paperfold/form"
	"github.com/electr1fy0/paperfold/paper"
	"github.com/electr1fy0/paperfold/utils"
)

type mode int

const (
	modeForm mode = iota
	modePick
	modeSave
)

type zone int

const (
	zoneSecret zone = iota
	zonePassphrase
	zoneTitle
	zoneNotes
	zonePageSize
	zoneGenerate
)

// eventsMsg is an ordered batch of core events produced by one effect.
type eventsMsg []form.Event

type editorFinishedMsg struct {
	path string
	err  error
}

type Model struct {
	state form.State
	orc   *form.Orchestrator
	dlg   *OverlayDialog

	mode  mode
	focus zone

	secretInput textarea.Model
	passInput   textinput.Model
	titleInput  textinput.Model
	notesInput  textinput.Model
	saveInput   textinput.Model
	picker      filepicker.Model
	spin        spinner.Model

	pendingPick *pickRequest
	pendingSave *saveRequest
	queued      []dialogRequestMsg

	width  int
	height int

	lastError string
}

func NewModel(cfg config.Config) Model {
	st := form.NewState()
	st.Title = cfg.Title
	st.NotesLabel = cfg.NotesLabel
	if size, err := paper.ParsePageSize(cfg.PageSize); err == nil {
		st.PageSize = size
	}

	dlg := NewOverlayDialog()
	orc := &form.Orchestrator{
		Dialog:        dlg,
		Generator:     paper.Generator{},
		SuggestedName: cfg.OutputName,
	}

	ta := textarea.New()
	ta.Placeholder = "Type the secret to protect..."
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Focus()

	pw := textinput.New()
	pw.Placeholder = "Passphrase"
	pw.CharLimit = 128
	pw.Width = 40
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'

	ti := textinput.New()
	ti.Placeholder = paper.DefaultTitle
	ti.CharLimit = 80
	ti.Width = 40
	ti.SetValue(st.Title)

	ni := textinput.New()
	ni.Placeholder = paper.DefaultNotesLabel
	ni.CharLimit = 80
	ni.Width = 40
	ni.SetValue(st.NotesLabel)

	si := textinput.New()
	si.CharLimit = 255
	si.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = warningStyle

	return Model{
		state:       st,
		orc:         orc,
		dlg:         dlg,
		focus:       zoneSecret,
		secretInput: ta,
		passInput:   pw,
		titleInput:  ti,
		notesInput:  ni,
		saveInput:   si,
		spin:        sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.dlg.wait())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.secretInput.SetWidth(min(msg.Width-6, 64))
		m.picker.Height = max(msg.Height-8, 5)
		return m, nil

	case eventsMsg:
		mm, cmd := m.apply(msg...)
		return mm, cmd

	case dialogRequestMsg:
		mm, cmd := m.serveDialog(msg)
		return mm, tea.Batch(cmd, mm.dlg.wait())

	case spinner.TickMsg:
		if m.state.Generating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			_ = os.Remove(msg.path)
			m.lastError = "Editor failed: " + msg.err.Error()
			return m, nil
		}
		data, err := os.ReadFile(msg.path)
		_ = os.Remove(msg.path)
		if err != nil {
			m.lastError = "Editor failed: " + err.Error()
			return m, nil
		}
		text := strings.TrimRight(string(data), "\n")
		m.secretInput.SetValue(text)
		mm, cmd := m.apply(form.SecretEdited{Value: text})
		return mm, cmd
	}

	switch m.mode {
	case modePick:
		return m.updatePick(msg)
	case modeSave:
		return m.updateSave(msg)
	}
	return m.updateForm(msg)
}

// apply feeds events through the transition function in order and turns the
// returned effects into commands.
func (m Model) apply(events ...form.Event) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range events {
		wasGenerating := m.state.Generating
		var effects []form.Effect
		m.state, effects = form.Update(m.state, ev)
		for _, eff := range effects {
			cmds = append(cmds, m.runEffect(eff))
		}
		if m.state.Generating && !wasGenerating {
			cmds = append(cmds, m.spin.Tick)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) runEffect(eff form.Effect) tea.Cmd {
	orc := m.orc
	return func() tea.Msg {
		return eventsMsg(orc.Run(context.Background(), eff))
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			mm, cmd := m.moveFocus(1)
			return mm, cmd
		case "shift+tab":
			mm, cmd := m.moveFocus(-1)
			return mm, cmd
		case "ctrl+s":
			mm, cmd := m.apply(form.SourceToggled{File: m.state.Source == form.SourceInline})
			cmd = tea.Batch(cmd, mm.syncFocus())
			return mm, cmd
		case "ctrl+x":
			mm, cmd := m.apply(form.AdvancedToggled{})
			if !mm.state.ShowAdvanced {
				switch mm.focus {
				case zoneTitle, zoneNotes, zonePageSize:
					mm.focus = zoneGenerate
					cmd = tea.Batch(cmd, mm.syncFocus())
				}
			}
			return mm, cmd
		case "ctrl+g":
			mm, cmd := m.apply(form.GeneratePressed{})
			return mm, cmd
		case "ctrl+o":
			if m.state.Source == form.SourceFile {
				mm, cmd := m.apply(form.PickPressed{})
				return mm, cmd
			}
		case "ctrl+e":
			if m.state.Source == form.SourceInline {
				mm, cmd := m.openEditor()
				return mm, cmd
			}
		case "enter":
			switch m.focus {
			case zoneGenerate:
				mm, cmd := m.apply(form.GeneratePressed{})
				return mm, cmd
			case zonePageSize:
				mm, cmd := m.apply(form.PageSizeChanged{Size: nextPageSize(m.state.PageSize)})
				return mm, cmd
			case zoneSecret:
				if m.state.Source == form.SourceFile {
					mm, cmd := m.apply(form.PickPressed{})
					return mm, cmd
				}
				// inline: the textarea takes the newline
			default:
				mm, cmd := m.moveFocus(1)
				return mm, cmd
			}
		case "left", "right":
			if m.focus == zonePageSize {
				mm, cmd := m.apply(form.PageSizeChanged{Size: nextPageSize(m.state.PageSize)})
				return mm, cmd
			}
		}
	}
	return m.updateFocused(msg)
}

// updateFocused forwards the message to the focused component and mirrors the
// edited value into the core as an event.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case zoneSecret:
		if m.state.Source == form.SourceInline {
			m.secretInput, cmd = m.secretInput.Update(msg)
			if v := m.secretInput.Value(); v != m.state.SecretText {
				mm, ecmd := m.apply(form.SecretEdited{Value: v})
				return mm, tea.Batch(cmd, ecmd)
			}
		}
	case zonePassphrase:
		m.passInput, cmd = m.passInput.Update(msg)
		if v := m.passInput.Value(); v != m.state.Passphrase {
			mm, ecmd := m.apply(form.PassphraseEdited{Value: v})
			return mm, tea.Batch(cmd, ecmd)
		}
	case zoneTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		if v := m.titleInput.Value(); v != m.state.Title {
			mm, ecmd := m.apply(form.TitleEdited{Value: v})
			return mm, tea.Batch(cmd, ecmd)
		}
	case zoneNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
		if v := m.notesInput.Value(); v != m.state.NotesLabel {
			mm, ecmd := m.apply(form.NotesLabelEdited{Value: v})
			return mm, tea.Batch(cmd, ecmd)
		}
	}
	return m, cmd
}

func (m Model) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.resolvePick(nil)
			return m, tea.Quit
		case "esc":
			m.resolvePick(nil)
			mm, cmd := m.closeOverlay()
			return mm, cmd
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.resolvePick(dialog.NewPathHandle(path))
		mm, cmd2 := m.closeOverlay()
		return mm, tea.Batch(cmd, cmd2)
	}
	return m, cmd
}

func (m Model) updateSave(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.resolveSave(nil)
			return m, tea.Quit
		case "esc":
			m.resolveSave(nil)
			mm, cmd := m.closeOverlay()
			return mm, cmd
		case "enter":
			path := strings.TrimSpace(m.saveInput.Value())
			if path == "" {
				return m, nil
			}
			m.resolveSave(dialog.NewPathTarget(path))
			mm, cmd := m.closeOverlay()
			return mm, cmd
		}
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

func (m *Model) resolvePick(h dialog.FileHandle) {
	if m.pendingPick != nil {
		m.pendingPick.reply <- h
		m.pendingPick = nil
	}
}

func (m *Model) resolveSave(t dialog.SaveTarget) {
	if m.pendingSave != nil {
		m.pendingSave.reply <- t
		m.pendingSave = nil
	}
}

// serveDialog opens the overlay for a dialog request, or queues it when
// another overlay is already up.
func (m Model) serveDialog(req dialogRequestMsg) (Model, tea.Cmd) {
	if m.mode != modeForm {
		m.queued = append(m.queued, req)
		return m, nil
	}
	if req.pick != nil {
		m.pendingPick = req.pick
		m.mode = modePick
		fp := filepicker.New()
		if home, err := os.UserHomeDir(); err == nil {
			fp.CurrentDirectory = home
		}
		fp.AutoHeight = false
		fp.Height = max(m.height-8, 5)
		m.picker = fp
		return m, m.picker.Init()
	}
	m.pendingSave = req.save
	m.mode = modeSave
	m.saveInput.SetValue(req.save.suggested)
	m.saveInput.CursorEnd()
	cmd := m.saveInput.Focus()
	return m, cmd
}

func (m Model) closeOverlay() (Model, tea.Cmd) {
	m.mode = modeForm
	m.saveInput.Blur()
	cmd := m.syncFocus()
	if len(m.queued) > 0 {
		next := m.queued[0]
		m.queued = m.queued[1:]
		mm, cmd2 := m.serveDialog(next)
		return mm, tea.Batch(cmd, cmd2)
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	zs := m.zones()
	idx := 0
	for i, z := range zs {
		if z == m.focus {
			idx = i
			break
		}
	}
	m.focus = zs[(idx+delta+len(zs))%len(zs)]
	cmd := m.syncFocus()
	return m, cmd
}

func (m Model) zones() []zone {
	zs := []zone{zoneSecret, zonePassphrase}
	if m.state.ShowAdvanced {
		zs = append(zs, zoneTitle, zoneNotes, zonePageSize)
	}
	return append(zs, zoneGenerate)
}

func (m *Model) syncFocus() tea.Cmd {
	m.secretInput.Blur()
	m.passInput.Blur()
	m.titleInput.Blur()
	m.notesInput.Blur()
	switch m.focus {
	case zoneSecret:
		if m.state.Source == form.SourceInline {
			return m.secretInput.Focus()
		}
	case zonePassphrase:
		return m.passInput.Focus()
	case zoneTitle:
		return m.titleInput.Focus()
	case zoneNotes:
		return m.notesInput.Focus()
	}
	return nil
}

func (m Model) openEditor() (Model, tea.Cmd) {
	path, err := utils.WriteTemp(m.state.SecretText)
	if err != nil {
		m.lastError = "Editor failed: " + err.Error()
		return m, nil
	}
	return m, tea.ExecProcess(utils.EditorCommand(path), func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func nextPageSize(p paper.PageSize) paper.PageSize {
	if p == paper.A4 {
		return paper.Letter
	}
	return paper.A4
}
