package layouts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestLayout(t *testing.T) {
	var buf bytes.Buffer
	page := Layout(Page{Studio: "Nightjar", Title: "Games", Active: "/games"}, P(g.Text("body text")))
	require.NoError(t, page.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Games - Nightjar</title>")
	assert.Contains(t, out, `<main id="content"><p>body text</p></main>`)
	assert.Contains(t, out, `id="site-config"`)
	assert.Contains(t, out, "/static/site.js")
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "About - Nightjar", CalculateTitle("Nightjar", "About"))
	assert.Equal(t, "Nightjar", CalculateTitle("Nightjar", ""))
}
