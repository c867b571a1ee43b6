package effects

import (
	"fmt"
	"math"
	"time"
)

// Phase is a step of the loading screen.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseReveal
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseReveal:
		return "reveal"
	default:
		return "done"
	}
}

// LoadingStep pairs a phase with when it begins.
type LoadingStep struct {
	Phase Phase
	At    time.Duration
}

// LoadingTimeline lists the loading screen phases in order. Each phase starts
// when the previous one ends.
func LoadingTimeline(intro, reveal time.Duration) []LoadingStep {
	return []LoadingStep{
		{Phase: PhaseIntro, At: 0},
		{Phase: PhaseReveal, At: intro},
		{Phase: PhaseDone, At: intro + reveal},
	}
}

// PhaseAt returns the phase active after elapsed time.
func PhaseAt(steps []LoadingStep, elapsed time.Duration) Phase {
	current := PhaseIntro
	for _, s := range steps {
		if elapsed >= s.At {
			current = s.Phase
		}
	}
	return current
}

// TrailDot is one element of the cursor trail.
type TrailDot struct {
	Scale   float64
	Opacity float64
	LagMs   int
}

// Trail returns n dots whose size and opacity decay geometrically and whose
// follow delay grows linearly.
func Trail(n int) []TrailDot {
	dots := make([]TrailDot, n)
	for i := range dots {
		decay := math.Pow(0.85, float64(i))
		dots[i] = TrailDot{
			Scale:   round2(decay),
			Opacity: round2(0.8 * decay),
			LagMs:   i * 16,
		}
	}
	return dots
}

// Style renders a trail dot as CSS custom properties.
func (d TrailDot) Style() string {
	return fmt.Sprintf("--scale:%g;--opacity:%g;--lag:%dms", d.Scale, d.Opacity, d.LagMs)
}

// Parallax returns the translate offset, in pixels, of a layer scrolled by
// scrollY at the given depth. Depth 0 is pinned; depth 1 scrolls with the page.
func Parallax(scrollY, depth float64) float64 {
	return round2(-scrollY * (1 - depth))
}
