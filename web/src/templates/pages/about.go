package pages

import (
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/web/src/templates/components"
	"github.com/nfrund/studiosite/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// About presents the studio's mission and the full team.
func About(doc *content.Document) g.Node {
	return layouts.Layout(layouts.Page{
		Studio:      doc.Studio.Name,
		Title:       "About",
		Description: doc.Studio.About,
		Active:      "/about",
	},
		Section(Class("mission"),
			H1(g.Text("About "+doc.Studio.Name)),
			P(Class("lead"), g.Text(doc.Studio.About)),
		),
		components.PillarGrid(doc.Pillars),
		components.TeamGrid(doc.Team, 0),
	)
}
