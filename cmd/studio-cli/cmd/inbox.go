package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nfrund/studiosite/internal/archive"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/spf13/cobra"
)

var (
	inboxDB     string
	inboxLimit  int
	inboxFormat string
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Read archived contact messages",
}

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the newest archived contact messages",
	Long: `List contact messages stored by the sqlite archive backend
(ARCHIVE_BACKEND=sqlite), newest first.

Examples:
  studio-cli inbox list
  studio-cli inbox list --db data/inbox.db --limit 5
  studio-cli inbox list --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.OpenSQLite(inboxDB)
		if err != nil {
			return fmt.Errorf("open inbox: %w", err)
		}
		defer store.Close()

		subs, err := store.List(context.Background(), inboxLimit)
		if err != nil {
			return err
		}

		switch inboxFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(subs)
		case "table":
			printInbox(cmd.OutOrStdout(), subs, time.Now())
			return nil
		default:
			return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", inboxFormat)
		}
	},
}

func printInbox(out io.Writer, subs []domain.Submission, now time.Time) {
	if len(subs) == 0 {
		fmt.Fprintln(out, "Inbox is empty")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "RECEIVED\tFROM\tEMAIL\tSUBJECT\tMESSAGE")
	fmt.Fprintln(w, "--------\t----\t-----\t-------\t-------")
	for _, s := range subs {
		subject := s.Fields.Subject
		if subject == "" {
			subject = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			humanize.RelTime(s.SubmittedAt, now, "ago", "from now"),
			s.Fields.FullName,
			s.Fields.Email,
			truncateString(subject, 30),
			truncateString(s.Fields.Content, 40),
		)
	}
}

// truncateString shortens s to at most n runes, marking the cut with "...".
func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	rootCmd.AddCommand(inboxCmd)
	inboxCmd.AddCommand(inboxListCmd)

	inboxListCmd.Flags().StringVar(&inboxDB, "db", "data/inbox.db", "Path of the sqlite archive")
	inboxListCmd.Flags().IntVarP(&inboxLimit, "limit", "n", 20, "Maximum number of messages (0 for all)")
	inboxListCmd.Flags().StringVarP(&inboxFormat, "format", "f", "table", "Output format (table, json)")
}
