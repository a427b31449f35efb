package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio serves the portfolio site and its admin editor",
	Long: `Folio is the backend for a personal portfolio site: it serves the public
content document and a hidden editor flow where the administrator logs in
with a one-time emailed code.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
