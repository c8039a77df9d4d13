package utils

import (
	"os"
	"os/exec"
)

// EditorCommand builds the command to open path in the user's editor. The
// caller decides how to run it (the TUI hands it to tea.ExecProcess so the
// terminal is released while the editor owns it).
func EditorCommand(path string) *exec.Cmd {
	ed := os.Getenv("EDITOR")
	if ed == "" {
		if p, err := exec.LookPath("nvim"); err == nil {
			ed = p
		} else if p, err := exec.LookPath("vi"); err == nil {
			ed = p
		} else {
			ed = "ed"
		}
	}
	return exec.Command(ed, path)
}

// WriteTemp puts initial into a fresh temp file and returns its path. The
// caller removes the file once it has read the result back; secrets should
// not outlive the edit.
func WriteTemp(initial string) (string, error) {
	tmp, err := os.CreateTemp("", "paperfold-secret-*.txt")
	if err != nil {
		return "", err
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(initial); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
