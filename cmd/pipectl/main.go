// Pipectl is a command-line tool for working with recorded synchronization
// command traces: it can run a canned barrier scenario through a chosen
// hardware generation, dump a recorded trace, and decode flag words.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipectl",
	Short: "Inspect and replay GPU synchronization command traces.",
	Long: `Pipectl runs barrier scenarios through the synchronization ` +
		`policy layer, records the resolved commands to SQLite, and ` +
		`decodes recorded traces and raw flag words.`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
