// Package burst implements a transient 2D particle explosion used for the
// celebration and tease effects. An emitter is self-terminating: it reports
// empty as soon as its last particle dies.
package burst

import (
	"math"

	"github.com/er601/valentine-surprise/internal/core"
)

// Config holds the spawn bands for burst particles.
type Config struct {
	SpeedMin, SpeedMax     float64
	RiseMin, RiseMax       float64 // upward launch bias
	GravityMin, GravityMax float64
	LifeMin, LifeMax       float64 // seconds
	SizeMin, SizeMax       float64
	SpinMax                float64 // angular velocity bound, rad/s

	// Margin is the generous off-screen band outside which a live particle
	// is culled anyway. Extreme launch velocities would otherwise keep a
	// particle "alive" by age far off-canvas.
	Margin float64

	// BurstCount is the celebration preset size, TeaseCount the contact
	// tease preset size.
	BurstCount int
	TeaseCount int
}

// DefaultConfig returns the standard emitter configuration.
func DefaultConfig() Config {
	return Config{
		SpeedMin:   260,
		SpeedMax:   820,
		RiseMin:    80,
		RiseMax:    250,
		GravityMin: 520,
		GravityMax: 920,
		LifeMin:    0.9,
		LifeMax:    1.35,
		SizeMin:    2.5,
		SizeMax:    6.5,
		SpinMax:    9,
		Margin:     240,
		BurstCount: 170,
		TeaseCount: 14,
	}
}

// Particle is one burst fragment in screen space.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Gravity float64
	Size    float64
	Rot     float64
	Spin    float64
	Age     float64
	Life    float64
	Color   core.RGB
}

// Fade returns the remaining opacity in [0, 1].
func (p *Particle) Fade() float64 {
	f := 1 - p.Age/p.Life
	if f < 0 {
		return 0
	}
	return f
}

// Emitter owns a set of live burst particles.
type Emitter struct {
	cfg       Config
	rng       *core.RNG
	view      core.Viewport
	palette   []core.RGB
	particles []Particle
	destroyed bool
}

// NewEmitter constructs an idle emitter for the given viewport.
func NewEmitter(cfg Config, rng *core.RNG, view core.Viewport) *Emitter {
	return &Emitter{
		cfg:  cfg,
		rng:  rng,
		view: view,
		palette: []core.RGB{
			{R: 0.96, G: 0.26, B: 0.41},
			{R: 1.0, G: 0.71, B: 0.81},
			{R: 1.0, G: 0.85, B: 0.35},
			{R: 0.55, G: 0.83, B: 1.0},
			{R: 0.78, G: 0.62, B: 1.0},
		},
	}
}

// Name identifies the effect.
func (e *Emitter) Name() string { return "burst" }

// SetViewport updates the culling bounds.
func (e *Emitter) SetViewport(view core.Viewport) { e.view = view }

// Particles exposes the live set for rendering.
func (e *Emitter) Particles() []Particle { return e.particles }

// Empty reports whether the emitter has no live particles.
func (e *Emitter) Empty() bool { return len(e.particles) == 0 }

// Done is Empty under the effect contract.
func (e *Emitter) Done() bool { return e.Empty() }

// Destroy drops the live set and makes every further spawn a no-op. Safe
// to call at any point, including mid-flight.
func (e *Emitter) Destroy() {
	e.destroyed = true
	e.particles = nil
}

// Spawn adds count particles exploding radially from center. Both presets
// route through here.
func (e *Emitter) Spawn(center core.Vec2, count int) {
	if e.destroyed {
		return
	}
	for i := 0; i < count; i++ {
		angle := e.rng.Angle()
		speed := e.rng.Range(e.cfg.SpeedMin, e.cfg.SpeedMax)
		rise := e.rng.Range(e.cfg.RiseMin, e.cfg.RiseMax)
		e.particles = append(e.particles, Particle{
			Pos: center,
			Vel: core.Vec2{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle)*speed - rise,
			},
			Gravity: e.rng.Range(e.cfg.GravityMin, e.cfg.GravityMax),
			Size:    e.rng.Range(e.cfg.SizeMin, e.cfg.SizeMax),
			Rot:     e.rng.Angle(),
			Spin:    e.rng.Range(-e.cfg.SpinMax, e.cfg.SpinMax),
			Life:    e.rng.Range(e.cfg.LifeMin, e.cfg.LifeMax),
			Color:   e.palette[e.rng.IntN(len(e.palette))],
		})
	}
}

// SpawnCelebration fires the large preset across the full viewport width,
// originating in the upper third.
func (e *Emitter) SpawnCelebration() {
	for i := 0; i < e.cfg.BurstCount; i++ {
		center := core.Vec2{
			X: e.rng.Range(0, e.view.W),
			Y: e.rng.Range(e.view.H*0.12, e.view.H*0.38),
		}
		e.Spawn(center, 1)
	}
}

// SpawnTease fires the small preset at the interaction point.
func (e *Emitter) SpawnTease(at core.Vec2) {
	e.Spawn(at, e.cfg.TeaseCount)
}

// Step advances every particle by dt with semi-implicit Euler and removes
// the dead. Removal happens when the fade reaches zero or the particle
// leaves the viewport by more than the configured margin.
func (e *Emitter) Step(dt float64) {
	if dt <= 0 || len(e.particles) == 0 {
		return
	}
	for i := 0; i < len(e.particles); {
		p := &e.particles[i]
		p.Vel.Y += p.Gravity * dt
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		p.Rot += p.Spin * dt
		p.Age += dt

		if p.Fade() <= 0 || e.offscreen(p.Pos) {
			last := len(e.particles) - 1
			e.particles[i] = e.particles[last]
			e.particles = e.particles[:last]
			continue
		}
		i++
	}
}

func (e *Emitter) offscreen(pos core.Vec2) bool {
	m := e.cfg.Margin
	return pos.X < -m || pos.X > e.view.W+m || pos.Y < -m || pos.Y > e.view.H+m
}
