package components

import (
	"github.com/nfrund/studiosite/internal/effects"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// NavItem is one entry of the site navigation.
type NavItem struct {
	Label string
	Href  string
}

// NavItems lists the site's pages in display order.
var NavItems = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
	{Label: "Games", Href: "/games"},
	{Label: "Contact", Href: "/contact"},
}

// SiteNav renders the gooey navigation. Every entry carries a precomputed
// particle burst that the stylesheet plays when the entry becomes active.
func SiteNav(studio, active string) g.Node {
	items := make([]g.Node, 0, len(NavItems))
	for i, item := range NavItems {
		items = append(items, navEntry(i, item, item.Href == active))
	}

	return Header(Class("site-header"),
		A(Class("brand"), Href("/"), g.Text(studio)),
		Nav(Class("gooey-nav"), Aria("label", "Main"),
			Ul(items...),
			Span(Class("gooey-filter"), Aria("hidden", "true")),
		),
	)
}

func navEntry(index int, item NavItem, active bool) g.Node {
	return Li(
		c.Classes{"nav-item": true, "active": active},
		A(Href(item.Href), g.If(active, Aria("current", "page")), g.Text(item.Label)),
		ParticleBurst(uint64(index+1)),
	)
}

// ParticleBurst renders one burst of gooey particles for seed.
func ParticleBurst(seed uint64) g.Node {
	particles := effects.Burst(seed, effects.DefaultBurst)
	nodes := make([]g.Node, 0, len(particles))
	for i, p := range particles {
		nodes = append(nodes, Span(Class("particle"), Style(p.Style(effects.ScheduleFor(i, p)))))
	}
	return Span(Class("particles"), Aria("hidden", "true"), g.Group(nodes))
}
