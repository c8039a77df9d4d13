package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/electr1fy0/paperfold/assets"
	"github.com/electr1fy0/paperfold/form"
)

func (m Model) View() string {
	var s strings.Builder

	switch m.mode {
	case modePick:
		s.WriteString(titleStyle.Render("Choose a secret file"))
		s.WriteString("\n\n")
		s.WriteString(m.picker.View())
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("enter: choose  esc: cancel"))
		return s.String()

	case modeSave:
		s.WriteString(titleStyle.Render("Save document as"))
		s.WriteString("\n\n")
		s.WriteString(m.saveInput.View())
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("enter: save  esc: cancel"))
		return s.String()
	}

	if m.width >= 44 && m.height >= 24 {
		s.WriteString(helpStyle.Render(strings.TrimRight(assets.Banner(), "\n")))
		s.WriteString("\n")
	}
	s.WriteString(titleStyle.Render("paperfold: paper backups for secrets"))
	s.WriteString("\n\n")

	srcHint := "[text] file"
	if m.state.Source == form.SourceFile {
		srcHint = "text [file]"
	}
	s.WriteString(m.zoneLabel(zoneSecret, "Secret"))
	s.WriteString("  ")
	s.WriteString(helpStyle.Render(srcHint + " (ctrl+s)"))
	s.WriteString("\n")
	if m.state.Source == form.SourceInline {
		s.WriteString(m.secretInput.View())
		s.WriteString("\n")
	} else {
		name := m.state.SecretFileName
		if name == "" {
			name = "no file selected"
		}
		s.WriteString("  ")
		s.WriteString(buttonStyle.Render("Open"))
		s.WriteString("  ")
		s.WriteString(name)
		if m.state.SecretFileName != "" && m.state.SecretFileData == nil {
			s.WriteString(helpStyle.Render("  loading..."))
		}
		s.WriteString("\n")
	}
	m.warning(&s, m.state.SecretWarning)

	s.WriteString("\n")
	s.WriteString(m.zoneLabel(zonePassphrase, "Passphrase"))
	s.WriteString("\n")
	s.WriteString(m.passInput.View())
	s.WriteString("\n")
	m.warning(&s, m.state.PassphraseWarning)

	s.WriteString("\n")
	if m.state.ShowAdvanced {
		s.WriteString(helpStyle.Render("▾ Extra (ctrl+x)"))
		s.WriteString("\n")
		s.WriteString(m.zoneLabel(zoneTitle, "Title"))
		s.WriteString("\n")
		s.WriteString(m.titleInput.View())
		s.WriteString("\n")
		s.WriteString(m.zoneLabel(zoneNotes, "Notes label"))
		s.WriteString("\n")
		s.WriteString(m.notesInput.View())
		s.WriteString("\n")
		s.WriteString(m.zoneLabel(zonePageSize, "Page size"))
		s.WriteString(" ")
		s.WriteString(m.state.PageSize.String())
		if m.focus == zonePageSize {
			s.WriteString(helpStyle.Render("  ◂ ▸"))
		}
		s.WriteString("\n")
	} else {
		s.WriteString(helpStyle.Render("▸ Extra (ctrl+x)"))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.state.Generating {
		s.WriteString(busyStyle.Render(m.spin.View() + "Generating..."))
	} else if m.focus == zoneGenerate {
		s.WriteString(focusStyle.Render("▸ "))
		s.WriteString(buttonStyle.Render("Generate PDF"))
	} else {
		s.WriteString("  ")
		s.WriteString(buttonStyle.Render("Generate PDF"))
	}
	s.WriteString("\n")
	m.warning(&s, m.state.GenerateWarning)
	if m.state.SavedTo != "" {
		s.WriteString(successStyle.Render("Saved " + m.state.SavedTo))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("tab: next field  ctrl+s: text/file  ctrl+o: open  ctrl+e: editor  ctrl+g: generate  ctrl+c: quit"))
	if m.lastError != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.lastError))
	}

	return s.String()
}

func (m Model) zoneLabel(z zone, text string) string {
	if m.focus == z {
		return focusStyle.Render("▸ " + text + ":")
	}
	return labelStyle.Render("  " + text + ":")
}

func (m Model) warning(s *strings.Builder, text string) {
	if text == "" {
		return
	}
	width := m.width - 4
	if width < 20 {
		width = 60
	}
	s.WriteString(errorStyle.Render(wordwrap.String(text, width)))
	s.WriteString("\n")
}
