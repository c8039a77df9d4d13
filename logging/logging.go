// Package logging provides the leveled CLI logger. Output goes to stderr so
// it never mixes with generated artifacts on stdout.
//
//	--verbose shows info and warnings
//	--debug additionally shows debug details
//
// Errors are always shown.
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintln(os.Stderr, color.CyanString("[info] ")+fmt.Sprintf(msg, args...))
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintln(os.Stderr, color.MagentaString("[debug] ")+fmt.Sprintf(msg, args...))
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintln(os.Stderr, color.YellowString("[warn] ")+fmt.Sprintf(msg, args...))
	}
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintln(os.Stderr, color.RedString("[error] ")+fmt.Sprintf(msg, args...))
}

func (l Logger) Successf(msg string, args ...any) {
	fmt.Fprintln(os.Stderr, color.GreenString("[ok] ")+fmt.Sprintf(msg, args...))
}
