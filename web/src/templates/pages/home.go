package pages

import (
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/web/src/templates/components"
	"github.com/nfrund/studiosite/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// CarouselSocketPath is where pages with a carousel connect.
const CarouselSocketPath = "/ws/carousel"

// Home is the landing page.
func Home(studio content.Studio, doc *content.Document, carousel components.CarouselState) g.Node {
	return layouts.Layout(layouts.Page{
		Studio:      studio.Name,
		Description: studio.Tagline,
		Active:      "/",
	},
		components.Hero(studio.Name, studio.Tagline),
		liveRegion(
			Section(Class("featured"),
				H2(g.Text("Featured games")),
				components.Carousel(carousel),
			),
		),
		components.PillarGrid(doc.Pillars),
		components.TeamGrid(doc.Team, 3),
	)
}

// liveRegion opens the carousel socket for its children and hosts the game modal.
func liveRegion(children ...g.Node) g.Node {
	return liveRegionWithModal(nil, children...)
}

func liveRegionWithModal(modal g.Node, children ...g.Node) g.Node {
	return Div(Class("live-region"), hx.Ext("ws"), g.Attr("ws-connect", CarouselSocketPath),
		g.Group(children),
		Div(ID("modal"), modal),
	)
}
