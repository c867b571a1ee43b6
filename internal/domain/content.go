package domain

import "github.com/nfrund/studiosite/internal/glyph"

// TeamMember is a person shown on the about page.
type TeamMember struct {
	Name   string    `yaml:"name" json:"name"`
	Role   string    `yaml:"role" json:"role"`
	Bio    string    `yaml:"bio" json:"bio"`
	Avatar string    `yaml:"avatar" json:"avatar"`
	Links  []Link    `yaml:"links" json:"links,omitempty"`
	Icon   glyph.Tag `yaml:"icon" json:"icon"`
}

// Link is an outbound profile link rendered with a glyph.
type Link struct {
	Label string    `yaml:"label" json:"label"`
	URL   string    `yaml:"url" json:"url"`
	Icon  glyph.Tag `yaml:"icon" json:"icon"`
}

// Game is one entry of the studio catalogue.
type Game struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	Description string   `yaml:"description" json:"description"`
	Genre       string   `yaml:"genre" json:"genre"`
	Platforms   []string `yaml:"platforms" json:"platforms"`
	Cover       string   `yaml:"cover" json:"cover"`
	Year        int      `yaml:"year" json:"year"`
	Featured    bool     `yaml:"featured" json:"featured"`
	StoreURL    string   `yaml:"store_url" json:"store_url,omitempty"`
}

// Pillar is one of the studio's mission statements.
type Pillar struct {
	Title string    `yaml:"title" json:"title"`
	Body  string    `yaml:"body" json:"body"`
	Icon  glyph.Tag `yaml:"icon" json:"icon"`
}

// GameFilter narrows the catalogue for the games dropdown. Empty fields match all.
type GameFilter struct {
	Genre    string
	Platform string
}
