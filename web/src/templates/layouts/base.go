package layouts

import (
	"time"

	"github.com/nfrund/studiosite/internal/effects"
	"github.com/nfrund/studiosite/internal/view"
	"github.com/nfrund/studiosite/web/src/templates/components"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	htmxSrc   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc = "https://unpkg.com/htmx-ext-ws@2.0.2"

	introDuration  = 900 * time.Millisecond
	revealDuration = 600 * time.Millisecond
	trailLength    = 12
)

// Page carries what the layout needs besides the body.
type Page struct {
	Studio      string
	Title       string
	Description string
	// Active is the path of the current navigation entry.
	Active string
}

// siteConfig is exposed to site.js as a JSON script element.
type siteConfig struct {
	LoadingMs int `json:"loadingMs"`
	Trail     int `json:"trail"`
}

// Layout wraps body in the document shell shared by every page.
func Layout(p Page, body ...g.Node) g.Node {
	timeline := effects.LoadingTimeline(introDuration, revealDuration)
	done := timeline[len(timeline)-1].At

	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(p.Studio, p.Title),
		Description: p.Description,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("stylesheet"), Href("/static/site.css")),
			Script(Src(htmxSrc), Defer()),
			Script(Src(htmxWSSrc), Defer()),
			Script(Src("/static/site.js"), Defer()),
		},
		Body: []g.Node{
			components.LoadingScreen(timeline),
			components.CursorTrail(effects.Trail(trailLength)),
			components.SiteNav(p.Studio, p.Active),
			Main(ID("content"), g.Group(body)),
			components.SiteFooter(p.Studio),
			view.JSONScript("site-config", siteConfig{
				LoadingMs: int(done.Milliseconds()),
				Trail:     trailLength,
			}),
		},
	})
}
