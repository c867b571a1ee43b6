package components

import (
	"fmt"

	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// ContactProps is everything the contact panel draws from.
type ContactProps struct {
	Snapshot contact.Snapshot
	Flash    view.FlashData
	// StatusPoll is how long the browser waits before asking whether the status cleared.
	StatusPoll int64
}

// ContactPanel renders the form, its status line and the submit button. The
// whole panel is the swap target of a submission.
func ContactPanel(p ContactProps) g.Node {
	s := p.Snapshot
	form := s.Form

	return Div(ID("contact-panel"), Class("contact-panel"),
		flashMessages(p.Flash),
		Form(ID("contact-form"), Class("contact-form"), Method("post"), Action("/contact"),
			hx.Post("/contact"), hx.Target("#contact-panel"), hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "#contact-submit"),
			field("full_name", "Name", Input(ID("full_name"), Name("full_name"), Type("text"), Value(form.FullName), Required(), AutoComplete("name"))),
			field("email", "Email", Input(ID("email"), Name("email"), Type("email"), Value(form.Email), Required(), AutoComplete("email"))),
			g.If(s.Variant == domain.VariantStrict,
				field("subject", "Subject", Input(ID("subject"), Name("subject"), Type("text"), Value(form.Subject), Placeholder("Optional"))),
			),
			field("content", "Message", Textarea(ID("content"), Name("content"), Rows("6"), Required(), g.Text(form.Content))),
			honeypot(),
			ContactStatus(s.Status, p.StatusPoll),
			ContactButton(ButtonState{Cooldown: s.Cooldown, Submitting: s.Submitting, Enabled: s.Cooldown == 0 && !s.Submitting}, true),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(Class("field"),
		Label(For(id), g.Text(label)),
		control,
	)
}

// honeypot is invisible to people and tempting to bots. Anything typed into it blocks the submission.
func honeypot() g.Node {
	return Div(Class("hp-field"), Aria("hidden", "true"),
		Label(For("website"), g.Text("Website")),
		Input(ID("website"), Name("website"), Type("text"), TabIndex("-1"), AutoComplete("off")),
	)
}

func flashMessages(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return Div(Class("flash"),
		g.Map(f.Success, func(m string) g.Node { return P(Class("flash-success"), g.Text(m)) }),
		g.Map(f.Error, func(m string) g.Node { return P(Class("flash-error"), g.Text(m)) }),
	)
}

// ContactStatus renders the status line. A visible message asks to be
// refreshed once its display time has passed.
func ContactStatus(s contact.Status, pollMs int64) g.Node {
	return Div(ID("contact-status"),
		c.Classes{"contact-status": true, "status-" + s.Kind.String(): true},
		Role("status"), Aria("live", "polite"),
		g.If(s.Visible(), g.Group{
			hx.Get("/contact/status"),
			hx.Trigger(fmt.Sprintf("load delay:%dms", pollMs)),
			hx.Swap("outerHTML"),
			g.Text(s.Message),
		}),
	)
}

// ButtonState drives the submit button.
type ButtonState struct {
	Cooldown   int
	Submitting bool
	Enabled    bool
}

// ContactButton renders the submit button. While cooling down it refreshes
// itself every second; otherwise it re-checks the form as the visitor types.
// initial adds a one-off check when the page loads.
func ContactButton(b ButtonState, initial bool) g.Node {
	label := "Send message"
	switch {
	case b.Submitting:
		label = "Sending..."
	case b.Cooldown > 0:
		label = fmt.Sprintf("Wait %ds", b.Cooldown)
	}

	trigger := "input delay:250ms from:#contact-form"
	if b.Cooldown > 0 {
		trigger = "load delay:1s"
	} else if initial {
		trigger = "load, " + trigger
	}

	return Button(ID("contact-submit"), Type("submit"), Class("button primary"),
		g.If(!b.Enabled, Disabled()),
		hx.Get("/contact/button"), hx.Trigger(trigger), hx.Include("#contact-form"),
		hx.Swap("outerHTML"), hx.Target("this"),
		Data("cooldown", fmt.Sprint(b.Cooldown)),
		g.Text(label),
	)
}
