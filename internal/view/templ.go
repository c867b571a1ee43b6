package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode lets a templ.Component sit inside a gomponents tree.
type templNode struct {
	component templ.Component
}

// Render renders the component without a request context. Components that
// need one should be rendered through the renderer instead.
func (n templNode) Render(w io.Writer) error {
	return n.component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return templNode{component: component}
}

// JSONScript renders v as a <script type="application/json"> element that
// page scripts read their settings from.
func JSONScript(id string, v any) gomponents.Node {
	return AdaptTemplToGomponent(templ.JSONScript(id, v))
}
