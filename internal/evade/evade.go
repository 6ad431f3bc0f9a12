// Package evade implements the pursuit-avoidance state machine for a single
// screen-space object. The shell wires pointer events to OnThreat and
// resize events to Reclamp; the controller knows nothing about rendering
// beyond the footprint callback it is given.
package evade

import (
	"math"
	"time"

	"github.com/er601/valentine-surprise/internal/core"
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// RectFunc reports the object's current on-screen rectangle. While the
// controller is idle the shell derives it from normal layout; once pinned
// only the size portion is consulted.
type RectFunc func() Rect

// Controller tracks the evading object through the Idle, Pinned and Hidden
// states. All methods are synchronous and must be called from the single
// event/frame thread.
type Controller struct {
	cfg  Config
	rng  *core.RNG
	view core.Viewport
	rect RectFunc

	pos      core.Vec2 // top-left placement, valid while pinned
	pinned   bool
	hidden   bool
	scale    float64
	lastMove time.Time

	now func() time.Time
}

// NewController constructs an idle controller.
func NewController(cfg Config, rng *core.RNG, view core.Viewport, rect RectFunc) *Controller {
	return &Controller{
		cfg:   cfg,
		rng:   rng,
		view:  view,
		rect:  rect,
		scale: 1,
		now:   time.Now,
	}
}

// Pinned reports whether the object has left layout flow.
func (c *Controller) Pinned() bool { return c.pinned }

// Hidden reports whether evasion is suspended.
func (c *Controller) Hidden() bool { return c.hidden }

// Scale returns the accumulated shrink factor in [MinScale, 1].
func (c *Controller) Scale() float64 { return c.scale }

// Placement returns the pinned top-left position. The position is only
// meaningful when the second return value is true.
func (c *Controller) Placement() (core.Vec2, bool) {
	return c.pos, c.pinned
}

// SetViewport updates the clamping bounds. Callers should follow with
// Reclamp when the viewport shrank.
func (c *Controller) SetViewport(view core.Viewport) { c.view = view }

// OnThreat reacts to a pointer threat. Unforced events are throttled and
// ignored outside the danger radius; forced events (direct contact) always
// produce a move.
func (c *Controller) OnThreat(threat core.Vec2, forced bool) {
	if c.hidden {
		return
	}
	r := c.rect()
	if !c.pinned {
		// Capture the natural resting place so the first move starts
		// there, not from a jump.
		c.pos = core.Vec2{X: r.X, Y: r.Y}
		c.pinned = true
	}

	now := c.now()
	if !forced && now.Sub(c.lastMove) < c.cfg.Cooldown {
		return
	}

	center := core.Vec2{X: c.pos.X + r.W/2, Y: c.pos.Y + r.H/2}
	esc := center.Sub(threat)

	if math.Abs(esc.X) < c.cfg.StuckEpsilon && math.Abs(esc.Y) < c.cfg.StuckEpsilon {
		// Threat sits on the object center; a directional step would be
		// zero-length forever. Relocate instead.
		c.pos = c.randomPlacement(r)
		c.lastMove = now
		return
	}

	if !forced {
		danger := core.Clamp(math.Max(r.W, r.H)*c.cfg.DangerScale, c.cfg.DangerMin, c.cfg.DangerMax)
		if esc.Len() > danger {
			return
		}
	}

	dir := esc.Normalize()
	j := c.cfg.JitterFrac
	dir = core.Vec2{
		X: dir.X + c.rng.Range(-j, j),
		Y: dir.Y + c.rng.Range(-j, j),
	}.Normalize()

	step := core.Clamp(c.view.W*c.cfg.StepWidthFrac, c.cfg.StepMin, c.cfg.StepMax)
	c.pos = c.clampPos(c.pos.Add(dir.Scale(step)), r)
	c.lastMove = now
}

// Reclamp re-applies the bounds clamp with the latest footprint. Idempotent
// and safe on resize or scroll with no threat event; a no-op while idle or
// hidden.
func (c *Controller) Reclamp() {
	if !c.pinned || c.hidden {
		return
	}
	c.pos = c.clampPos(c.pos, c.rect())
}

// Hide suspends evasion. While hidden every evasion and shrink request is
// ignored.
func (c *Controller) Hide() { c.hidden = true }

// Show resumes evasion with the prior pinned placement intact.
func (c *Controller) Show() { c.hidden = false }

// OnHoverAttempt shrinks the object for a pointer-over on the affordance.
func (c *Controller) OnHoverAttempt() { c.shrink(c.cfg.HoverShrink) }

// OnPressAttempt shrinks the object for a press on the affordance.
func (c *Controller) OnPressAttempt() { c.shrink(c.cfg.PressShrink) }

func (c *Controller) shrink(factor float64) {
	if c.hidden {
		return
	}
	c.scale = math.Max(c.cfg.MinScale, c.scale*factor)
}

// Restore returns the object to layout flow with full scale. Visibility is
// not touched; pair with Show when needed.
func (c *Controller) Restore() {
	c.pinned = false
	c.pos = core.Vec2{}
	c.scale = 1
}

func (c *Controller) clampPos(pos core.Vec2, r Rect) core.Vec2 {
	maxX := c.view.W - c.cfg.Padding - r.W
	maxY := c.view.H - c.cfg.Padding - r.H
	if maxX < c.cfg.Padding {
		maxX = c.cfg.Padding
	}
	if maxY < c.cfg.Padding {
		maxY = c.cfg.Padding
	}
	return core.Vec2{
		X: core.Clamp(pos.X, c.cfg.Padding, maxX),
		Y: core.Clamp(pos.Y, c.cfg.Padding, maxY),
	}
}

func (c *Controller) randomPlacement(r Rect) core.Vec2 {
	maxX := math.Max(c.cfg.Padding, c.view.W-c.cfg.Padding-r.W)
	maxY := math.Max(c.cfg.Padding, c.view.H-c.cfg.Padding-r.H)
	return core.Vec2{
		X: c.rng.Range(c.cfg.Padding, maxX),
		Y: c.rng.Range(c.cfg.Padding, maxY),
	}
}
