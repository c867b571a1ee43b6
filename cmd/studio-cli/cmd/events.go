package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/pubsub"
	"github.com/spf13/cobra"
)

// The contact package declares its events at init; referencing one keeps the import.
var _ = contact.SubmittedEvent

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events published on the site's event bus",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "NAME\tPAYLOAD\tFIELDS\tDESCRIPTION")
		fmt.Fprintln(w, "----\t-------\t------\t-----------")
		for _, e := range pubsub.Events() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.TypeName, strings.Join(e.PayloadFields, ", "), e.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
