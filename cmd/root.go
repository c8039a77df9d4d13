package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/electr1fy0/paperfold/config"
	"github.com/electr1fy0/paperfold/logging"
	"github.com/electr1fy0/paperfold/tui"
)

var (
	verboseFlag bool
	debugFlag   bool
	logger      logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paperfold",
	Short: "Create printable, passphrase-protected paper backups of secrets",
	Long: `Paperfold seals a secret (typed text or a file) with a passphrase and turns
it into a printable PDF: the encrypted payload as a QR code and as armored
text, with room to write the passphrase next to it.

Run without arguments for the interactive form, or use 'paperfold generate'
for scripted use. 'paperfold decrypt' recovers a secret from a scanned or
retyped payload.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Logger{Verbose: verboseFlag, Debug: debugFlag}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			logger.Warnf("config: %v (using defaults)", err)
		}
		if os.Getenv("PAPERFOLD_DEBUG") != "" {
			f, err := tea.LogToFile("paperfold-debug.log", "debug")
			if err == nil {
				defer f.Close()
			}
		}
		p := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("could not start the UI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "show progress details")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "show debug output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
