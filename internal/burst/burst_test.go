package burst

import (
	"math"
	"testing"

	"github.com/er601/valentine-surprise/internal/core"
)

const testDt = 1.0 / 60.0

func newTestEmitter(seed int64) *Emitter {
	return NewEmitter(DefaultConfig(), core.NewRNG(seed), core.Viewport{W: 800, H: 600})
}

func TestSpawnBands(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEmitter(42)
	e.Spawn(core.Vec2{X: 400, Y: 300}, 200)

	if len(e.Particles()) != 200 {
		t.Fatalf("spawned %d particles, want 200", len(e.Particles()))
	}
	for i, p := range e.Particles() {
		if p.Pos != (core.Vec2{X: 400, Y: 300}) {
			t.Fatalf("particle %d spawned away from center: %v", i, p.Pos)
		}
		// The radial speed and the upward bias are drawn independently,
		// so only their combined envelope is checkable after the fact.
		if speed := math.Hypot(p.Vel.X, p.Vel.Y); speed > cfg.SpeedMax+cfg.RiseMax+1e-6 {
			t.Fatalf("particle %d launch speed %v above envelope", i, speed)
		}
		if p.Vel.Y > cfg.SpeedMax-cfg.RiseMin+1e-6 {
			t.Fatalf("particle %d downward velocity %v missing upward bias", i, p.Vel.Y)
		}
		if p.Gravity < cfg.GravityMin || p.Gravity > cfg.GravityMax {
			t.Fatalf("particle %d gravity %v outside band", i, p.Gravity)
		}
		if p.Life < cfg.LifeMin || p.Life > cfg.LifeMax {
			t.Fatalf("particle %d lifetime %v outside band", i, p.Life)
		}
		if p.Age != 0 {
			t.Fatalf("particle %d born with age %v", i, p.Age)
		}
	}
}

func TestEmptiesAfterMaxLifetime(t *testing.T) {
	e := newTestEmitter(7)
	e.Spawn(core.Vec2{X: 400, Y: 300}, 100)

	cfg := DefaultConfig()
	steps := int(cfg.LifeMax/testDt) + 2
	for i := 0; i < steps; i++ {
		e.Step(testDt)
	}
	if !e.Empty() {
		t.Fatalf("emitter still holds %d particles after max lifetime", len(e.Particles()))
	}
	if !e.Done() {
		t.Fatal("empty emitter must report done")
	}
}

func TestAgeMonotoneAndFadeLinear(t *testing.T) {
	e := newTestEmitter(3)
	e.Spawn(core.Vec2{X: 400, Y: 300}, 50)

	// 20 steps is a third of a second: young enough that no particle dies
	// or leaves the margin, so indices stay stable under swap-removal.
	prevAges := make(map[int]float64)
	for step := 0; step < 20; step++ {
		e.Step(testDt)
		for i := range e.Particles() {
			p := &e.Particles()[i]
			if prev, ok := prevAges[i]; ok && p.Age < prev {
				t.Fatalf("particle %d age decreased: %v -> %v", i, prev, p.Age)
			}
			prevAges[i] = p.Age
			want := 1 - p.Age/p.Life
			if math.Abs(p.Fade()-want) > 1e-12 {
				t.Fatalf("particle %d fade %v, want %v", i, p.Fade(), want)
			}
		}
	}
}

func TestOffscreenCulling(t *testing.T) {
	e := newTestEmitter(11)
	e.Spawn(core.Vec2{X: 400, Y: 300}, 30)

	// Drive one particle far off-canvas while keeping it young.
	p := &e.Particles()[0]
	p.Vel = core.Vec2{X: 1e6}
	e.Step(testDt)

	for i := range e.Particles() {
		pos := e.Particles()[i].Pos
		if pos.X > 800+DefaultConfig().Margin {
			t.Fatalf("off-screen particle at %v survived culling", pos)
		}
	}
}

func TestPresetsRouteThroughSpawn(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEmitter(13)

	e.SpawnTease(core.Vec2{X: 100, Y: 100})
	if len(e.Particles()) != cfg.TeaseCount {
		t.Fatalf("tease spawned %d, want %d", len(e.Particles()), cfg.TeaseCount)
	}
	for _, p := range e.Particles() {
		if p.Pos != (core.Vec2{X: 100, Y: 100}) {
			t.Fatalf("tease particle origin %v, want interaction point", p.Pos)
		}
	}

	e2 := newTestEmitter(14)
	e2.SpawnCelebration()
	if len(e2.Particles()) != cfg.BurstCount {
		t.Fatalf("celebration spawned %d, want %d", len(e2.Particles()), cfg.BurstCount)
	}
	for _, p := range e2.Particles() {
		if p.Pos.X < 0 || p.Pos.X > 800 {
			t.Fatalf("celebration origin x=%v outside full width", p.Pos.X)
		}
	}
}

func TestDestroyReleasesParticles(t *testing.T) {
	e := newTestEmitter(17)
	e.Spawn(core.Vec2{X: 400, Y: 300}, 40)

	e.Destroy()
	if !e.Empty() || !e.Done() {
		t.Fatal("destroy must drop the live set")
	}
	e.Spawn(core.Vec2{X: 400, Y: 300}, 40)
	if !e.Empty() {
		t.Fatal("destroyed emitter must ignore spawns")
	}
	e.Step(testDt) // must not panic
}

func TestStepNoOpWhenIdle(t *testing.T) {
	e := newTestEmitter(1)
	e.Step(testDt)
	if !e.Empty() {
		t.Fatal("idle emitter must stay empty")
	}
	e.Spawn(core.Vec2{X: 1, Y: 1}, 5)
	e.Step(0)
	for _, p := range e.Particles() {
		if p.Age != 0 {
			t.Fatal("zero dt must not advance particle age")
		}
	}
}
