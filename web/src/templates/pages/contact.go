package pages

import (
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/web/src/templates/components"
	"github.com/nfrund/studiosite/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Contact hosts the contact form.
func Contact(studio content.Studio, props components.ContactProps) g.Node {
	return layouts.Layout(layouts.Page{
		Studio:      studio.Name,
		Title:       "Contact",
		Description: "Write to " + studio.Name,
		Active:      "/contact",
	},
		Section(Class("contact"),
			H1(g.Text("Say hello")),
			P(Class("lead"), g.Text("Questions, press, or just want to share your run? Drop us a line.")),
			components.ContactPanel(props),
		),
	)
}

// NotFound is shown for unknown paths and games.
func NotFound(studio content.Studio) g.Node {
	return layouts.Layout(layouts.Page{Studio: studio.Name, Title: "Not found"},
		Section(Class("not-found"),
			H1(g.Text("Lost in the embers")),
			P(g.Text("The page you were looking for does not exist.")),
			A(Class("button primary"), Href("/"), g.Text("Back home")),
		),
	)
}
