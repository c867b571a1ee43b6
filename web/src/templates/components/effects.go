package components

import (
	"fmt"

	"github.com/nfrund/studiosite/internal/effects"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoadingScreen renders the intro overlay. Each phase becomes a layer whose
// animation starts at the phase's offset, so the sequence plays without script.
func LoadingScreen(timeline []effects.LoadingStep) g.Node {
	layers := make([]g.Node, 0, len(timeline))
	for _, step := range timeline {
		layers = append(layers, Div(
			Class("loading-phase phase-"+step.Phase.String()),
			Style(fmt.Sprintf("--phase-at:%dms", step.At.Milliseconds())),
		))
	}
	return Div(ID("loading-screen"), Class("loading-screen"), Aria("hidden", "true"),
		g.Group(layers),
		Div(Class("loading-mark")),
	)
}

// CursorTrail renders the dots that follow the pointer.
func CursorTrail(dots []effects.TrailDot) g.Node {
	nodes := make([]g.Node, 0, len(dots))
	for i, d := range dots {
		nodes = append(nodes, Span(Class("trail-dot"), Data("index", fmt.Sprint(i)), Style(d.Style())))
	}
	return Div(ID("cursor-trail"), Class("cursor-trail"), Aria("hidden", "true"), g.Group(nodes))
}

// ParallaxLayer wraps children in a layer scrolled at depth; 0 is pinned, 1 scrolls with the page.
func ParallaxLayer(depth float64, children ...g.Node) g.Node {
	return Div(Class("parallax-layer"), Data("depth", fmt.Sprintf("%g", depth)), g.Group(children))
}
