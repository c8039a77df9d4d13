package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/electr1fy0/paperfold/paper"
)

var (
	decryptOutput   string
	decryptPassFile string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Recover a secret from a scanned or retyped payload",
	Long: `Reads an age payload, either the armored text printed on the document or the
binary result of scanning the QR code, and writes the decrypted secret.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "-", "destination file, - for stdout")
	decryptCmd.Flags().StringVar(&decryptPassFile, "passphrase-file", "", "read the passphrase from a file")
	rootCmd.AddCommand(decryptCmd)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var passphrase string
	if decryptPassFile != "" {
		passphrase, err = passphraseFromFile(decryptPassFile)
	} else {
		passphrase, err = readPassphrase(false)
	}
	if err != nil {
		return err
	}

	secret, err := paper.Unseal(payload, passphrase)
	if err != nil {
		return err
	}

	if decryptOutput == "-" || decryptOutput == "" {
		_, err = os.Stdout.Write(secret)
		return err
	}
	if err := os.WriteFile(decryptOutput, secret, 0600); err != nil {
		return err
	}
	logger.Successf("wrote %s (%d bytes)", decryptOutput, len(secret))
	return nil
}
