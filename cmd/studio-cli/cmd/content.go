package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var contentDir string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the site content",
	Long: `The content command reads the YAML document the site is rendered from.
Without --dir the built-in document is used.

Examples:
  studio-cli content list
  studio-cli content list --dir ./content
  studio-cli content validate ./content`,
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games grouped by genre, and the team",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(afero.NewOsFs(), contentDir)
		if err != nil {
			return err
		}
		printDocument(cmd.OutOrStdout(), doc)
		return nil
	},
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a content directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := contentDir
		if len(args) == 1 {
			dir = args[0]
		}
		doc, err := loadDocument(afero.NewOsFs(), dir)
		if err != nil {
			return fmt.Errorf("content is invalid: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %d games, %d team members, %d pillars\n",
			doc.Studio.Name, len(doc.Games), len(doc.Team), len(doc.Pillars))
		return nil
	},
}

func loadDocument(fs afero.Fs, dir string) (*content.Document, error) {
	if dir == "" {
		return content.Default(), nil
	}
	return content.Load(fs, dir)
}

func printDocument(out io.Writer, doc *content.Document) {
	title := cases.Title(language.English)
	byGenre := map[string][]domain.Game{}
	for _, g := range doc.Games {
		genre := title.String(strings.TrimSpace(g.Genre))
		byGenre[genre] = append(byGenre[genre], g)
	}
	genres := make([]string, 0, len(byGenre))
	for genre := range byGenre {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	fmt.Fprintf(out, "%s\n\n", doc.Studio.Name)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GENRE\tSLUG\tTITLE\tYEAR\tPLATFORMS\tFEATURED")
	fmt.Fprintln(w, "-----\t----\t-----\t----\t---------\t--------")
	for _, genre := range genres {
		for _, g := range byGenre[genre] {
			featured := ""
			if g.Featured {
				featured = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				genre, g.Slug, g.Title, g.Year, strings.Join(g.Platforms, ", "), featured)
		}
	}
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE")
	fmt.Fprintln(w, "----\t----")
	for _, m := range doc.Team {
		fmt.Fprintf(w, "%s\t%s\n", m.Name, m.Role)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentValidateCmd)

	contentCmd.PersistentFlags().StringVarP(&contentDir, "dir", "d", "", "Directory holding content.yaml (default: built-in content)")
}
