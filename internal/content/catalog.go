// Package content loads the studio's static site content: team members,
// games and mission pillars. The content is read-only at runtime; a reload
// swaps the whole catalogue atomically.
package content

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/nfrund/studiosite/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the content document inside a content directory.
const FileName = "content.yaml"

//go:embed default.yaml
var defaultDocument []byte

// Studio is the studio's own profile.
type Studio struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	About   string `yaml:"about"`
}

// Document is the decoded content file.
type Document struct {
	Studio  Studio              `yaml:"studio"`
	Pillars []domain.Pillar     `yaml:"pillars"`
	Team    []domain.TeamMember `yaml:"team"`
	Games   []domain.Game       `yaml:"games"`
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the invariants the pages rely on.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Studio.Name) == "" {
		return fmt.Errorf("studio name is required")
	}
	seen := make(map[string]bool, len(d.Games))
	for i, g := range d.Games {
		if strings.TrimSpace(g.Slug) == "" {
			return fmt.Errorf("game %d: slug is required", i)
		}
		if seen[g.Slug] {
			return fmt.Errorf("game %q: duplicate slug", g.Slug)
		}
		seen[g.Slug] = true
		if strings.TrimSpace(g.Title) == "" {
			return fmt.Errorf("game %q: title is required", g.Slug)
		}
	}
	for i, p := range d.Pillars {
		if !p.Icon.Valid() {
			return fmt.Errorf("pillar %d: icon is required", i)
		}
	}
	for _, m := range d.Team {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("team member without a name")
		}
	}
	return nil
}

// Default returns the built-in content.
func Default() *Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("built-in content is invalid: %v", err))
	}
	return doc
}

// Load reads dir/content.yaml from fs.
func Load(fs afero.Fs, dir string) (*Document, error) {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Catalog serves the current content document to concurrent readers.
type Catalog struct {
	doc atomic.Pointer[Document]
}

// NewCatalog creates a catalogue holding doc.
func NewCatalog(doc *Document) *Catalog {
	c := &Catalog{}
	c.doc.Store(doc)
	return c
}

// Replace swaps in a new document.
func (c *Catalog) Replace(doc *Document) {
	c.doc.Store(doc)
}

// Document returns the current document. Callers must not modify it.
func (c *Catalog) Document() *Document {
	return c.doc.Load()
}

func (c *Catalog) Studio() Studio            { return c.Document().Studio }
func (c *Catalog) Pillars() []domain.Pillar  { return c.Document().Pillars }
func (c *Catalog) Team() []domain.TeamMember { return c.Document().Team }
func (c *Catalog) AllGames() []domain.Game   { return c.Document().Games }

// Games returns the games matching filter, in catalogue order.
func (c *Catalog) Games(filter domain.GameFilter) []domain.Game {
	var out []domain.Game
	for _, g := range c.Document().Games {
		if filter.Genre != "" && !strings.EqualFold(g.Genre, filter.Genre) {
			continue
		}
		if filter.Platform != "" && !hasPlatform(g, filter.Platform) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Featured returns the games flagged for the home page carousel.
func (c *Catalog) Featured() []domain.Game {
	var out []domain.Game
	for _, g := range c.Document().Games {
		if g.Featured {
			out = append(out, g)
		}
	}
	return out
}

// Game looks a game up by slug.
func (c *Catalog) Game(slug string) (domain.Game, error) {
	for _, g := range c.Document().Games {
		if g.Slug == slug {
			return g, nil
		}
	}
	return domain.Game{}, fmt.Errorf("game %q: %w", slug, domain.ErrNotFound)
}

// Genres returns the distinct genres, sorted, for the filter dropdown.
func (c *Catalog) Genres() []string {
	return distinct(c.Document().Games, func(g domain.Game) []string { return []string{g.Genre} })
}

// Platforms returns the distinct platforms, sorted.
func (c *Catalog) Platforms() []string {
	return distinct(c.Document().Games, func(g domain.Game) []string { return g.Platforms })
}

func distinct(games []domain.Game, values func(domain.Game) []string) []string {
	set := make(map[string]struct{})
	for _, g := range games {
		for _, v := range values(g) {
			if v != "" {
				set[v] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func hasPlatform(g domain.Game, platform string) bool {
	for _, p := range g.Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}
	return false
}
