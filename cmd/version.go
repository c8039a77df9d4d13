package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is set during build with -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the paperfold version",
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("paperfold", "small", true).Print()
		fmt.Printf("version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
