package components

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/effects"
	"github.com/nfrund/studiosite/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

// attr is how a JSON value appears inside a rendered attribute.
func attr(s string) string {
	return html.EscapeString(s)
}

func TestContactPanel(t *testing.T) {
	t.Run("strict variant has subject and honeypot", func(t *testing.T) {
		out := render(t, ContactPanel(ContactProps{
			Snapshot:   contact.Snapshot{Variant: domain.VariantStrict},
			StatusPoll: 5100,
		}))
		assert.Contains(t, out, `name="subject"`)
		assert.Contains(t, out, `name="website"`)
		assert.Contains(t, out, `tabindex="-1"`)
		assert.Contains(t, out, `hx-post="/contact"`)
		assert.NotContains(t, out, " disabled ", "button starts enabled until the first check")
	})

	t.Run("basic variant drops subject", func(t *testing.T) {
		out := render(t, ContactPanel(ContactProps{Snapshot: contact.Snapshot{Variant: domain.VariantBasic}}))
		assert.NotContains(t, out, `name="subject"`)
	})

	t.Run("keeps fields and shows flash", func(t *testing.T) {
		out := render(t, ContactPanel(ContactProps{
			Snapshot: contact.Snapshot{
				Variant: domain.VariantStrict,
				Form:    domain.FormState{FullName: "Ada", Content: "Hi <there>"},
			},
			Flash: view.FlashData{Error: []string{"Failed to send message"}},
		}))
		assert.Contains(t, out, `value="Ada"`)
		assert.Contains(t, out, "Hi &lt;there&gt;")
		assert.Contains(t, out, `class="flash-error"`)
	})
}

func TestContactStatus(t *testing.T) {
	hidden := render(t, ContactStatus(contact.Status{}, 5100))
	assert.NotContains(t, hidden, "hx-get")

	shown := render(t, ContactStatus(contact.Status{Kind: contact.Failed, Message: "Please wait 5 seconds"}, 5100))
	assert.Contains(t, shown, `hx-trigger="load delay:5100ms"`)
	assert.Contains(t, shown, "status-failed")
	assert.Contains(t, shown, "Please wait 5 seconds")
}

func TestContactButton(t *testing.T) {
	cooling := render(t, ContactButton(ButtonState{Cooldown: 12}, false))
	assert.Contains(t, cooling, "disabled")
	assert.Contains(t, cooling, "Wait 12s")
	assert.Contains(t, cooling, `hx-trigger="load delay:1s"`)

	ready := render(t, ContactButton(ButtonState{Enabled: true}, false))
	assert.NotContains(t, ready, "disabled")
	assert.Contains(t, ready, `hx-trigger="input delay:250ms from:#contact-form"`)

	initial := render(t, ContactButton(ButtonState{Enabled: true}, true))
	assert.Contains(t, initial, `hx-trigger="load, input delay:250ms from:#contact-form"`)

	sending := render(t, ContactButton(ButtonState{Submitting: true}, false))
	assert.Contains(t, sending, "Sending...")
}

func testGames() []domain.Game {
	return []domain.Game{
		{Slug: "a", Title: "Ashfall"},
		{Slug: "b", Title: "Brightwood"},
		{Slug: "c", Title: "Cinder"},
	}
}

func TestCarousel(t *testing.T) {
	state := CarouselState{Games: testGames(), Index: 1, Offset: -100, Enabled: true}

	out := render(t, Carousel(state))
	assert.Contains(t, out, "translateX(-100%)")
	assert.Contains(t, out, attr(`{"action":"next"}`))
	assert.Contains(t, out, attr(`{"action":"goto","index":2}`))
	assert.NotContains(t, out, "hx-swap-oob")

	frame := render(t, CarouselFrame(state))
	assert.Equal(t, 2, strings.Count(frame, `hx-swap-oob="true"`))
	assert.Contains(t, frame, `id="carousel-track"`)
	assert.Contains(t, frame, `id="carousel-dots"`)

	single := render(t, Carousel(CarouselState{Games: testGames()[:1]}))
	assert.NotContains(t, single, attr(`"action":"next"`), "one slide has no controls")

	empty := render(t, Carousel(CarouselState{}))
	assert.Contains(t, empty, "No games")
}

func TestGameGridAndModal(t *testing.T) {
	assert.Contains(t, render(t, GameGrid(nil)), "No games match")

	grid := render(t, GameGrid(testGames()))
	assert.Equal(t, 3, strings.Count(grid, `class="game-card"`))

	modal := render(t, GameModal(domain.Game{Slug: "a", Title: "Ashfall", Year: 2024, Platforms: []string{"PC"}}))
	assert.Contains(t, modal, attr(`{"action":"modal","on":true}`))
	assert.Contains(t, modal, attr(`{"action":"modal","on":false}`))
	assert.Contains(t, modal, "2024")
}

func TestGameFilterForm(t *testing.T) {
	out := render(t, GameFilterForm([]string{"Action RPG", "Survival"}, []string{"PC"}, domain.GameFilter{Genre: "survival"}))
	assert.Contains(t, out, `<option value="Survival" selected>Survival</option>`)
	assert.Contains(t, out, `hx-get="/games/filter"`)
}

func TestSiteNavParticles(t *testing.T) {
	out := render(t, SiteNav("Emberlight", "/games"))
	assert.Equal(t, len(NavItems)*effects.DefaultBurst.Count, strings.Count(out, `class="particle"`))
	assert.Contains(t, out, `aria-current="page"`)
	assert.Equal(t, out, render(t, SiteNav("Emberlight", "/games")), "bursts are deterministic")
}

func TestEffectsMarkup(t *testing.T) {
	out := render(t, CursorTrail(effects.Trail(4)))
	assert.Equal(t, 4, strings.Count(out, "trail-dot"))

	loading := render(t, LoadingScreen(effects.LoadingTimeline(900e6, 600e6)))
	assert.Contains(t, loading, "--phase-at:900ms")
	assert.Contains(t, loading, "--phase-at:1500ms")
}
