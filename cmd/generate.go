package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/paperfold/config"
	"github.com/electr1fy0/paperfold/paper"
)

var (
	generateText      string
	generateInput     string
	generateOutput    string
	generateTitle     string
	generateNotes     string
	generatePage      string
	generatePlaintext bool
	generatePassFile  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a paper backup PDF without the interactive form",
	Long: `Seals the secret with the given passphrase and writes the PDF document.
The passphrase is prompted for unless --passphrase-file is given.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateText, "text", "t", "", "secret text")
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "file containing the secret")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", paper.DefaultFileName, "output PDF path")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "document title")
	generateCmd.Flags().StringVar(&generateNotes, "notes-label", "", "label next to the write-in area")
	generateCmd.Flags().StringVar(&generatePage, "page-size", "", "A4 or Letter")
	generateCmd.Flags().BoolVar(&generatePlaintext, "plaintext", false, "skip encryption, embed the raw secret")
	generateCmd.Flags().StringVar(&generatePassFile, "passphrase-file", "", "read the passphrase from a file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if (generateText == "") == (generateInput == "") {
		return fmt.Errorf("provide exactly one of --text or --input")
	}
	secret := []byte(generateText)
	if generateInput != "" {
		data, err := os.ReadFile(generateInput)
		if err != nil {
			return fmt.Errorf("reading secret: %w", err)
		}
		secret = data
	}
	if len(secret) == 0 {
		return fmt.Errorf("secret is empty")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warnf("config: %v (using defaults)", err)
	}
	pageName := generatePage
	if pageName == "" {
		pageName = cfg.PageSize
	}
	size, err := paper.ParsePageSize(pageName)
	if err != nil {
		return err
	}

	var passphrase string
	switch {
	case generatePassFile != "":
		passphrase, err = passphraseFromFile(generatePassFile)
	case generatePlaintext:
		// nothing to protect with
	default:
		passphrase, err = readPassphrase(true)
	}
	if err != nil {
		return err
	}
	if !generatePlaintext && passphrase == "" {
		return fmt.Errorf("passphrase is empty")
	}

	title := generateTitle
	if title == "" {
		title = cfg.Title
	}
	if title == "" {
		title = paper.DefaultTitle
	}
	notes := generateNotes
	if notes == "" {
		notes = cfg.NotesLabel
	}
	if notes == "" {
		notes = paper.DefaultNotesLabel
	}

	logger.Infof("generating %s document", size)
	data, err := paper.Generator{}.Generate(cmd.Context(), paper.Request{
		Title:      title,
		Secret:     secret,
		Passphrase: passphrase,
		NotesLabel: notes,
		PageSize:   size,
		Verbose:    debugFlag,
		Plaintext:  generatePlaintext,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(generateOutput, data, 0600); err != nil {
		return err
	}
	logger.Successf("wrote %s (%d bytes)", generateOutput, len(data))
	return nil
}
