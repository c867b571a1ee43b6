package pages

import (
	"github.com/nfrund/studiosite/internal/content"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/web/src/templates/components"
	"github.com/nfrund/studiosite/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// GamesProps holds the catalogue view state.
type GamesProps struct {
	Studio    content.Studio
	Genres    []string
	Platforms []string
	Filter    domain.GameFilter
	Games     []domain.Game
	Carousel  components.CarouselState
	// Modal is pre-rendered into the dialog slot when a game is opened by URL.
	Modal g.Node
}

// Games is the catalogue page: featured carousel, filter and grid.
func Games(p GamesProps) g.Node {
	return layouts.Layout(layouts.Page{
		Studio:      p.Studio.Name,
		Title:       "Games",
		Description: "Games by " + p.Studio.Name,
		Active:      "/games",
	},
		liveRegionWithModal(p.Modal,
			Section(Class("catalogue-carousel"),
				H1(g.Text("Our games")),
				components.Carousel(p.Carousel),
			),
			Section(Class("catalogue"),
				components.GameFilterForm(p.Genres, p.Platforms, p.Filter),
				components.GameGrid(p.Games),
			),
		),
	)
}
