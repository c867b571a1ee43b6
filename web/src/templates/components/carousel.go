package components

import (
	"fmt"
	"strconv"

	"github.com/nfrund/studiosite/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// CarouselState is what the carousel needs to draw one frame.
type CarouselState struct {
	Games   []domain.Game
	Index   int
	Offset  int
	Enabled bool
	Paused  bool
}

// Carousel renders the featured games slider. The enclosing page opens the
// WebSocket; the controls send actions over it and the server answers with
// CarouselFrame fragments.
func Carousel(s CarouselState) g.Node {
	if len(s.Games) == 0 {
		return Section(ID("carousel"), Class("carousel empty"), P(g.Text("No games to show yet.")))
	}

	return Section(ID("carousel"), Class("carousel"), Aria("roledescription", "carousel"),
		// Hover is reported on enter by the inner element and on leave by the outer one.
		Div(Class("carousel-hover-out"), g.Attr("ws-send"), hx.Trigger("mouseleave"), hx.Vals(`{"action":"hover","on":false}`),
			Div(Class("carousel-hover-in"), g.Attr("ws-send"), hx.Trigger("mouseenter"), hx.Vals(`{"action":"hover","on":true}`),
				Div(Class("carousel-viewport"),
					CarouselTrack(s, false),
				),
			),
		),
		g.If(s.Enabled, Div(Class("carousel-controls"),
			Button(Type("button"), Class("carousel-prev"), Aria("label", "Previous game"),
				g.Attr("ws-send"), hx.Vals(`{"action":"prev"}`), g.Text("‹")),
			CarouselDots(s, false),
			Button(Type("button"), Class("carousel-next"), Aria("label", "Next game"),
				g.Attr("ws-send"), hx.Vals(`{"action":"next"}`), g.Text("›")),
		)),
	)
}

// CarouselFrame is the out-of-band update pushed after every index change.
func CarouselFrame(s CarouselState) g.Node {
	return g.Group{
		CarouselTrack(s, true),
		g.If(s.Enabled, CarouselDots(s, true)),
	}
}

// CarouselTrack renders the sliding strip of slides.
func CarouselTrack(s CarouselState, oob bool) g.Node {
	slides := make([]g.Node, 0, len(s.Games))
	for i, game := range s.Games {
		slides = append(slides, carouselSlide(game, i == s.Index))
	}
	return Div(ID("carousel-track"),
		c.Classes{"carousel-track": true, "paused": s.Paused},
		Style(fmt.Sprintf("transform:translateX(%d%%)", s.Offset)),
		Data("index", strconv.Itoa(s.Index)),
		g.If(oob, hx.SwapOOB("true")),
		g.Group(slides),
	)
}

// CarouselDots renders one button per slide for direct navigation.
func CarouselDots(s CarouselState, oob bool) g.Node {
	dots := make([]g.Node, 0, len(s.Games))
	for i, game := range s.Games {
		dots = append(dots, Button(Type("button"),
			c.Classes{"dot": true, "active": i == s.Index},
			Aria("label", "Show "+game.Title),
			g.If(i == s.Index, Aria("current", "true")),
			g.Attr("ws-send"),
			hx.Vals(fmt.Sprintf(`{"action":"goto","index":%d}`, i)),
		))
	}
	return Div(ID("carousel-dots"), Class("carousel-dots"),
		g.If(oob, hx.SwapOOB("true")),
		g.Group(dots),
	)
}

func carouselSlide(game domain.Game, current bool) g.Node {
	return Article(
		c.Classes{"carousel-slide": true, "current": current},
		g.If(!current, Aria("hidden", "true")),
		Img(Src(game.Cover), Alt(game.Title), Loading("lazy")),
		Div(Class("slide-caption"),
			H3(g.Text(game.Title)),
			P(g.Text(game.Tagline)),
			Button(Type("button"), Class("button ghost"),
				hx.Get("/games/"+game.Slug), hx.Target("#modal"), hx.Swap("innerHTML"),
				g.Text("Details"),
			),
		),
	)
}
