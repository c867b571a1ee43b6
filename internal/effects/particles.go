// Package effects computes the parameters of the site's decorative
// animations. Everything here is a pure function of its inputs; the browser
// plays the result back through CSS custom properties.
package effects

import (
	"fmt"
	"math"
	"strings"
)

// Point is a 2D offset in pixels.
type Point struct {
	X, Y float64
}

// Particle is one blob of the gooey navigation burst.
type Particle struct {
	StartOffset Point
	EndOffset   Point
	LifetimeMs  int
	Scale       float64
	Rotation    float64
}

// BurstConfig shapes a particle burst.
type BurstConfig struct {
	Count         int
	Distance      [2]float64 // start and end radius
	Spread        float64    // angular spread in degrees
	BaseLifetime  int        // milliseconds
	LifetimeRange int        // milliseconds of random extension
}

// DefaultBurst matches the navigation hover effect.
var DefaultBurst = BurstConfig{
	Count:         15,
	Distance:      [2]float64{90, 10},
	Spread:        100,
	BaseLifetime:  600,
	LifetimeRange: 300,
}

// noise returns a deterministic value in [0, 1) for (index, seed, channel).
func noise(index int, seed uint64, channel uint64) float64 {
	x := seed ^ (uint64(index+1) * 0x9E3779B97F4A7C15) ^ (channel * 0xBF58476D1CE4E5B9)
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return float64(x>>11) / float64(uint64(1)<<53)
}

// Generate produces particle index of a burst. The same index, seed and
// config always yield the same particle.
func Generate(index int, seed uint64, cfg BurstConfig) Particle {
	count := cfg.Count
	if count <= 0 {
		count = 1
	}

	lifetime := cfg.BaseLifetime + int(noise(index, seed, 0)*float64(cfg.LifetimeRange))
	rotation := (noise(index, seed, 1)*2 - 1) * cfg.Spread

	// Distribute evenly around the circle, jittered by the noise.
	angle := (360.0/float64(count))*float64(index) + rotation/10
	rad := angle * math.Pi / 180

	start := cfg.Distance[0] + (noise(index, seed, 2)-0.5)*cfg.Distance[0]/5
	end := cfg.Distance[1] + (noise(index, seed, 3)-0.5)*cfg.Distance[1]/5

	return Particle{
		StartOffset: Point{X: round2(start * math.Cos(rad)), Y: round2(start * math.Sin(rad))},
		EndOffset:   Point{X: round2(end * math.Cos(rad)), Y: round2(end * math.Sin(rad))},
		LifetimeMs:  lifetime,
		Scale:       round2(1 + noise(index, seed, 4)*0.4),
		Rotation:    round2(rotation),
	}
}

// Burst generates all particles of one burst.
func Burst(seed uint64, cfg BurstConfig) []Particle {
	particles := make([]Particle, cfg.Count)
	for i := range particles {
		particles[i] = Generate(i, seed, cfg)
	}
	return particles
}

// Schedule is the pair of timers that create and remove one particle,
// expressed as offsets from the start of the burst.
type Schedule struct {
	CreateAfterMs int
	RemoveAfterMs int
}

// ScheduleFor staggers particle creation by a fixed step and removes each
// particle once its lifetime has elapsed.
func ScheduleFor(index int, p Particle) Schedule {
	const stagger = 30
	create := index * stagger
	return Schedule{CreateAfterMs: create, RemoveAfterMs: create + p.LifetimeMs}
}

// Style renders a particle as inline CSS custom properties.
func (p Particle) Style(s Schedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--start-x:%gpx;--start-y:%gpx;", p.StartOffset.X, p.StartOffset.Y)
	fmt.Fprintf(&b, "--end-x:%gpx;--end-y:%gpx;", p.EndOffset.X, p.EndOffset.Y)
	fmt.Fprintf(&b, "--time:%dms;--delay:%dms;", p.LifetimeMs, s.CreateAfterMs)
	fmt.Fprintf(&b, "--scale:%g;--rotate:%gdeg", p.Scale, p.Rotation)
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
