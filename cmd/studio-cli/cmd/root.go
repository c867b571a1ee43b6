package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio-cli",
	Short: "Studio site maintenance tool",
	Long: `studio-cli inspects the studio website's content and contact inbox.

Available commands:
  content   List or validate the site content file
  inbox     Read archived contact messages
  events    List the events published on the site's event bus
  version   Print the version

Use "studio-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
