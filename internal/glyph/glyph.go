// Package glyph maps the closed set of icon tags used by the site content to
// inline SVG renderers. Content files name icons by tag; unknown tags are
// rejected when the content is decoded, so rendering never looks up an
// arbitrary string.
package glyph

import (
	"fmt"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Tag identifies one icon.
type Tag string

const (
	Sword      Tag = "sword"
	Shield     Tag = "shield"
	Spark      Tag = "spark"
	Heart      Tag = "heart"
	Controller Tag = "controller"
	Mail       Tag = "mail"
	GitHub     Tag = "github"
	Twitter    Tag = "twitter"
	Globe      Tag = "globe"
)

// RenderFunc draws an icon with the given CSS classes.
type RenderFunc func(class string) g.Node

var renderers = map[Tag]RenderFunc{
	Sword:      path("M14.5 17.5 3 6V3h3l11.5 11.5M13 19l6-6M16 16l4 4M19 21l2-2"),
	Shield:     path("M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"),
	Spark:      path("M12 2v4M12 18v4M4.93 4.93l2.83 2.83M16.24 16.24l2.83 2.83M2 12h4M18 12h4M4.93 19.07l2.83-2.83M16.24 7.76l2.83-2.83"),
	Heart:      path("M20.84 4.61a5.5 5.5 0 0 0-7.78 0L12 5.67l-1.06-1.06a5.5 5.5 0 0 0-7.78 7.78L12 21.23l8.84-8.84a5.5 5.5 0 0 0 0-7.78z"),
	Controller: path("M6 12h4M8 10v4M15 13h.01M18 11h.01M17.32 5H6.68a4 4 0 0 0-3.98 3.59L2 15a3 3 0 0 0 5.2 2L9 15h6l1.8 2a3 3 0 0 0 5.2-2l-.7-6.41A4 4 0 0 0 17.32 5z"),
	Mail:       path("M4 4h16v16H4zM22 6l-10 7L2 6"),
	GitHub:     path("M9 19c-5 1.5-5-2.5-7-3m14 6v-3.87a3.37 3.37 0 0 0-.94-2.61c3.14-.35 6.44-1.54 6.44-7A5.44 5.44 0 0 0 20 4.77 5.07 5.07 0 0 0 19.91 1S18.73.65 16 2.48a13.38 13.38 0 0 0-7 0C6.27.65 5.09 1 5.09 1A5.07 5.07 0 0 0 5 4.77a5.44 5.44 0 0 0-1.5 3.78c0 5.42 3.3 6.61 6.44 7A3.37 3.37 0 0 0 9 18.13V22"),
	Twitter:    path("M23 3a10.9 10.9 0 0 1-3.14 1.53 4.48 4.48 0 0 0-7.86 3v1A10.66 10.66 0 0 1 3 4s-4 9 5 13a11.64 11.64 0 0 1-7 2c9 5 20 0 20-11.5a4.5 4.5 0 0 0-.08-.83A7.72 7.72 0 0 0 23 3z"),
	Globe:      path("M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20zM2 12h20M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"),
}

func path(d string) RenderFunc {
	return func(class string) g.Node {
		return g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("viewBox", "0 0 24 24"),
			g.Attr("fill", "none"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("aria-hidden", "true"),
			Class(class),
			g.El("path", g.Attr("d", d)),
		)
	}
}

// Parse converts a content string into a Tag.
func Parse(s string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := renderers[t]; !ok {
		return "", fmt.Errorf("unknown glyph %q", s)
	}
	return t, nil
}

// Valid reports whether t belongs to the known set.
func (t Tag) Valid() bool {
	_, ok := renderers[t]
	return ok
}

// UnmarshalText rejects tags outside the known set while decoding content.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Render draws the icon. The zero Tag renders nothing.
func (t Tag) Render(class string) g.Node {
	fn, ok := renderers[t]
	if !ok {
		return nil
	}
	return fn(class)
}

// All returns every known tag, sorted.
func All() []Tag {
	tags := make([]Tag, 0, len(renderers))
	for t := range renderers {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
