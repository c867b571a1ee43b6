package components

import (
	"strconv"
	"strings"

	"github.com/nfrund/studiosite/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// GameFilterForm renders the genre and platform dropdowns. Changing either
// one swaps the grid in place.
func GameFilterForm(genres, platforms []string, current domain.GameFilter) g.Node {
	return Form(ID("game-filter"), Class("game-filter"), Method("get"), Action("/games"),
		hx.Get("/games/filter"), hx.Trigger("change"), hx.Target("#game-grid"), hx.Swap("outerHTML"),
		Label(For("filter-genre"), g.Text("Genre")),
		filterSelect("filter-genre", "genre", "All genres", genres, current.Genre),
		Label(For("filter-platform"), g.Text("Platform")),
		filterSelect("filter-platform", "platform", "All platforms", platforms, current.Platform),
		NoScript(Button(Type("submit"), g.Text("Filter"))),
	)
}

func filterSelect(id, name, allLabel string, values []string, current string) g.Node {
	options := []g.Node{Option(Value(""), g.Text(allLabel))}
	for _, v := range values {
		options = append(options, Option(Value(v), g.If(strings.EqualFold(v, current), Selected()), g.Text(v)))
	}
	return Select(ID(id), Name(name), g.Group(options))
}

// GameGrid renders the catalogue cards.
func GameGrid(games []domain.Game) g.Node {
	if len(games) == 0 {
		return Div(ID("game-grid"), Class("game-grid empty"), P(g.Text("No games match that filter.")))
	}
	return Div(ID("game-grid"), Class("game-grid"),
		g.Map(games, gameCard),
	)
}

func gameCard(game domain.Game) g.Node {
	return Article(Class("game-card"),
		Img(Src(game.Cover), Alt(game.Title), Loading("lazy")),
		H3(g.Text(game.Title)),
		P(Class("genre"), g.Text(game.Genre)),
		P(Class("tagline"), g.Text(game.Tagline)),
		A(Href("/games/"+game.Slug), hx.Get("/games/"+game.Slug), hx.Target("#modal"), hx.Swap("innerHTML"),
			g.Text("More"),
		),
	)
}

// GameModal is the detail dialog for one game. Loading it tells the carousel
// to pause and closing it resumes auto-advance.
func GameModal(game domain.Game) g.Node {
	return Div(Class("modal-backdrop"), Role("dialog"), Aria("modal", "true"), Aria("labelledby", "modal-title"),
		Span(g.Attr("ws-send"), hx.Trigger("load"), hx.Vals(`{"action":"modal","on":true}`)),
		Div(Class("modal"),
			Button(Type("button"), Class("modal-close"), Aria("label", "Close"),
				g.Attr("ws-send"), hx.Vals(`{"action":"modal","on":false}`),
				g.Attr("hx-on:click", "document.getElementById('modal').replaceChildren()"),
				g.Text("×"),
			),
			Img(Src(game.Cover), Alt(game.Title)),
			H2(ID("modal-title"), g.Text(game.Title)),
			P(Class("meta"), g.Text(game.Genre+" · "+strconv.Itoa(game.Year))),
			P(g.Text(game.Description)),
			Ul(Class("platforms"), g.Map(game.Platforms, func(p string) g.Node { return Li(g.Text(p)) })),
			g.If(game.StoreURL != "", A(Class("button primary"), Href(game.StoreURL), Rel("noopener"), Target("_blank"), g.Text("Get it"))),
		),
	)
}
