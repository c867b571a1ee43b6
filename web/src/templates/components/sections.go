package components

import (
	"fmt"
	"time"

	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/glyph"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero is the landing banner.
func Hero(studio, tagline string) g.Node {
	return Section(Class("hero"),
		ParallaxLayer(0.3, Div(Class("hero-embers"))),
		ParallaxLayer(1,
			H1(Class("hero-title"), g.Text(studio)),
			P(Class("hero-tagline"), g.Text(tagline)),
			Div(Class("hero-actions"),
				A(Class("button primary"), Href("/games"), g.Text("See our games")),
				A(Class("button ghost"), Href("/contact"), g.Text("Get in touch")),
			),
		),
	)
}

// PillarGrid renders the mission statements.
func PillarGrid(pillars []domain.Pillar) g.Node {
	return Section(Class("pillars"),
		H2(g.Text("What drives us")),
		Div(Class("pillar-grid"),
			g.Map(pillars, func(p domain.Pillar) g.Node {
				return Article(Class("pillar"),
					p.Icon.Render("pillar-icon"),
					H3(g.Text(p.Title)),
					P(g.Text(p.Body)),
				)
			}),
		),
	)
}

// TeamGrid renders the team members. A limit above zero shows only the first entries.
func TeamGrid(team []domain.TeamMember, limit int) g.Node {
	if limit > 0 && limit < len(team) {
		team = team[:limit]
	}
	return Section(Class("team"),
		H2(g.Text("The team")),
		Div(Class("team-grid"),
			g.Map(team, teamCard),
		),
	)
}

func teamCard(m domain.TeamMember) g.Node {
	return Article(Class("team-card"),
		g.If(m.Avatar != "", Img(Class("avatar"), Src(m.Avatar), Alt(m.Name), Loading("lazy"))),
		g.If(m.Avatar == "", Div(Class("avatar placeholder"), m.Icon.Render("avatar-icon"))),
		H3(g.Text(m.Name)),
		P(Class("role"), g.Text(m.Role)),
		P(Class("bio"), g.Text(m.Bio)),
		g.If(len(m.Links) > 0, Ul(Class("links"),
			g.Map(m.Links, func(l domain.Link) g.Node {
				return Li(A(Href(l.URL), Rel("noopener"), Target("_blank"), Aria("label", l.Label),
					l.Icon.Render("link-icon"),
				))
			}),
		)),
	)
}

// SiteFooter renders the page footer.
func SiteFooter(studio string) g.Node {
	return Footer(Class("site-footer"),
		P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), studio))),
		A(Href("/contact"), glyph.Mail.Render("footer-icon"), g.Text(" Contact")),
	)
}
