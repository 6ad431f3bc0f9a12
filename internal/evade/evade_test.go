package evade

import (
	"testing"
	"time"

	"github.com/er601/valentine-surprise/internal/core"
)

var testView = core.Viewport{W: 800, H: 600}

// newTestController returns a controller over a 120x48 object resting at
// (300, 200), with a controllable clock.
func newTestController(seed int64) (*Controller, *time.Time) {
	c := NewController(DefaultConfig(), core.NewRNG(seed), testView, func() Rect {
		return Rect{X: 300, Y: 200, W: 120, H: 48}
	})
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }
	return c, &now
}

func restCenter() core.Vec2 { return core.Vec2{X: 360, Y: 224} }

func TestFirstThreatPinsAndMoves(t *testing.T) {
	c, _ := newTestController(42)

	if _, pinned := c.Placement(); pinned {
		t.Fatal("controller must start idle")
	}

	// A nearby unforced threat pins the object and displaces it.
	c.OnThreat(core.Vec2{X: 380, Y: 224}, false)

	pos, pinned := c.Placement()
	if !pinned {
		t.Fatal("threat must pin the object")
	}
	if pos == (core.Vec2{X: 300, Y: 200}) {
		t.Fatal("nearby threat must displace the object from rest")
	}
	assertInBounds(t, c, pos)
}

func TestThrottleDiscardsRapidEvents(t *testing.T) {
	c, now := newTestController(7)

	c.OnThreat(core.Vec2{X: 380, Y: 224}, false)
	first, _ := c.Placement()

	*now = now.Add(50 * time.Millisecond)
	c.OnThreat(first.Add(core.Vec2{X: 40, Y: 10}), false)
	second, _ := c.Placement()
	if second != first {
		t.Fatal("event inside the cooldown window must be discarded")
	}

	*now = now.Add(200 * time.Millisecond)
	c.OnThreat(first.Add(core.Vec2{X: 40, Y: 10}), false)
	third, _ := c.Placement()
	if third == first {
		t.Fatal("event after the cooldown window must be accepted")
	}

	// Forced events bypass the throttle.
	*now = now.Add(10 * time.Millisecond)
	c.OnThreat(third.Add(core.Vec2{X: 30, Y: 5}), true)
	fourth, _ := c.Placement()
	if fourth == third {
		t.Fatal("forced event must bypass the throttle")
	}
}

func TestForcedThreatAtCenterTeleports(t *testing.T) {
	c, _ := newTestController(11)

	c.OnThreat(restCenter(), true)

	pos, pinned := c.Placement()
	if !pinned {
		t.Fatal("forced threat must pin the object")
	}
	if pos == (core.Vec2{X: 300, Y: 200}) {
		t.Fatal("degenerate escape vector must relocate, not produce a zero-length move")
	}
	assertInBounds(t, c, pos)
}

func TestFarThreatIgnored(t *testing.T) {
	c, _ := newTestController(13)

	// 500 units away, beyond any clamped danger radius.
	c.OnThreat(core.Vec2{X: 860, Y: 224}, false)

	pos, pinned := c.Placement()
	if !pinned {
		t.Fatal("even an ignored threat pins the object at rest")
	}
	if pos != (core.Vec2{X: 300, Y: 200}) {
		t.Fatalf("far unforced threat moved the object to %v", pos)
	}
}

func TestReclampIdempotent(t *testing.T) {
	c, now := newTestController(17)

	c.OnThreat(core.Vec2{X: 380, Y: 224}, true)
	for i := 0; i < 5; i++ {
		*now = now.Add(200 * time.Millisecond)
		pos, _ := c.Placement()
		c.OnThreat(pos.Add(core.Vec2{X: 10, Y: 10}), true)
	}

	c.SetViewport(core.Viewport{W: 500, H: 400})
	c.Reclamp()
	first, _ := c.Placement()
	c.Reclamp()
	second, _ := c.Placement()
	if first != second {
		t.Fatalf("reclamp not idempotent: %v then %v", first, second)
	}
	assertInBounds(t, c, second)
}

func TestReclampNoOpWhenIdleOrHidden(t *testing.T) {
	c, _ := newTestController(19)

	c.Reclamp() // idle: must not pin or panic
	if _, pinned := c.Placement(); pinned {
		t.Fatal("reclamp must not pin an idle object")
	}

	c.OnThreat(core.Vec2{X: 380, Y: 224}, true)
	before, _ := c.Placement()
	c.Hide()
	c.SetViewport(core.Viewport{W: 100, H: 100})
	c.Reclamp()
	after, _ := c.Placement()
	if before != after {
		t.Fatal("reclamp must be a no-op while hidden")
	}
}

func TestHiddenSuspendsEverything(t *testing.T) {
	c, _ := newTestController(23)
	c.Hide()

	c.OnThreat(restCenter(), true)
	if _, pinned := c.Placement(); pinned {
		t.Fatal("hidden controller must ignore threats")
	}
	c.OnHoverAttempt()
	c.OnPressAttempt()
	if c.Scale() != 1 {
		t.Fatalf("hidden controller must ignore shrink, scale=%v", c.Scale())
	}

	c.Show()
	c.OnThreat(restCenter(), true)
	if _, pinned := c.Placement(); !pinned {
		t.Fatal("controller must react again after show")
	}
}

func TestShrinkMonotoneWithFloor(t *testing.T) {
	cfg := DefaultConfig()
	c, _ := newTestController(29)

	c.OnHoverAttempt()
	if c.Scale() != cfg.HoverShrink {
		t.Fatalf("hover shrink gave scale %v, want %v", c.Scale(), cfg.HoverShrink)
	}
	c.OnPressAttempt()
	want := cfg.HoverShrink * cfg.PressShrink
	if c.Scale() != want {
		t.Fatalf("press shrink gave scale %v, want %v", c.Scale(), want)
	}

	prev := c.Scale()
	for i := 0; i < 50; i++ {
		c.OnPressAttempt()
		if c.Scale() > prev {
			t.Fatal("scale must be monotone non-increasing")
		}
		prev = c.Scale()
	}
	if c.Scale() != cfg.MinScale {
		t.Fatalf("scale %v did not floor at %v", c.Scale(), cfg.MinScale)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	c, _ := newTestController(31)

	c.OnThreat(core.Vec2{X: 380, Y: 224}, true)
	c.OnHoverAttempt()

	c.Hide()
	pinnedBefore := c.Pinned()
	scaleBefore := c.Scale()
	c.Show()
	if c.Pinned() != pinnedBefore || c.Scale() != scaleBefore {
		t.Fatal("hide/show round trip must preserve pin state and scale")
	}

	c.Restore()
	if pos, pinned := c.Placement(); pinned || pos != (core.Vec2{}) {
		t.Fatal("restore must return to idle with no residual positioning")
	}
	if c.Scale() != 1 {
		t.Fatalf("restore must reset scale, got %v", c.Scale())
	}
}

func TestRepeatedEvasionStaysInBounds(t *testing.T) {
	c, now := newTestController(37)

	for i := 0; i < 200; i++ {
		*now = now.Add(200 * time.Millisecond)
		pos, pinned := c.Placement()
		threat := restCenter()
		if pinned {
			threat = pos.Add(core.Vec2{X: 30, Y: 12})
		}
		c.OnThreat(threat, true)
		pos, _ = c.Placement()
		assertInBounds(t, c, pos)
	}
}

func assertInBounds(t *testing.T, c *Controller, pos core.Vec2) {
	t.Helper()
	cfg := DefaultConfig()
	r := c.rect()
	if pos.X < cfg.Padding || pos.X > c.view.W-cfg.Padding-r.W {
		t.Fatalf("x=%v outside clamp bounds", pos.X)
	}
	if pos.Y < cfg.Padding || pos.Y > c.view.H-cfg.Padding-r.H {
		t.Fatalf("y=%v outside clamp bounds", pos.Y)
	}
}
