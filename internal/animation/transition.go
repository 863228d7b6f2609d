// Package animation drives enter and leave transitions for list rows and
// side panels with critically damped springs.
package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultFPS       = 60
	DefaultFrequency = 6.0
	DefaultDamping   = 0.8

	settleDistance = 0.01
	settleVelocity = 0.01
)

// Config describes the spring shared by every transition
type Config struct {
	Enabled   bool
	FPS       int
	Frequency float64
	Damping   float64
}

func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		FPS:       DefaultFPS,
		Frequency: DefaultFrequency,
		Damping:   DefaultDamping,
	}
}

// Interval is the time between two animation frames
func (c Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

func (c Config) spring() harmonica.Spring {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return harmonica.NewSpring(harmonica.FPS(fps), c.Frequency, c.Damping)
}

// Transition animates a value between 0 (hidden) and 1 (shown)
type Transition struct {
	spring   harmonica.Spring
	enabled  bool
	pos      float64
	velocity float64
	target   float64
}

// NewTransition returns a hidden transition
func NewTransition(cfg Config) *Transition {
	return &Transition{
		spring:  cfg.spring(),
		enabled: cfg.Enabled,
	}
}

// Enter starts moving towards fully shown
func (t *Transition) Enter() {
	t.setTarget(1)
}

// Leave starts moving towards fully hidden
func (t *Transition) Leave() {
	t.setTarget(0)
}

func (t *Transition) setTarget(target float64) {
	t.target = target
	if !t.enabled {
		t.pos = target
		t.velocity = 0
	}
}

// Tick advances the transition by one frame
func (t *Transition) Tick() {
	if t.Done() {
		return
	}

	t.pos, t.velocity = t.spring.Update(t.pos, t.velocity, t.target)
	if math.Abs(t.target-t.pos) < settleDistance && math.Abs(t.velocity) < settleVelocity {
		t.pos = t.target
		t.velocity = 0
	}
}

func (t *Transition) Done() bool {
	return t.pos == t.target && t.velocity == 0
}

// Entering reports whether the transition is heading to (or at) shown
func (t *Transition) Entering() bool {
	return t.target == 1
}

// Visible reports whether any part of the element should be drawn
func (t *Transition) Visible() bool {
	return t.target == 1 || !t.Done()
}

// Progress is the clamped position; springs may overshoot
func (t *Transition) Progress() float64 {
	return math.Max(0, math.Min(1, t.pos))
}
