//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/er601/valentine-surprise/internal/assembly"
	"github.com/er601/valentine-surprise/internal/audio"
	"github.com/er601/valentine-surprise/internal/burst"
	"github.com/er601/valentine-surprise/internal/core"
	"github.com/er601/valentine-surprise/internal/evade"
	"github.com/er601/valentine-surprise/internal/heart"
	"github.com/er601/valentine-surprise/internal/render"
)

const (
	rotationSpeed = 0.35 // rad/s about the vertical axis

	buttonW   = 150.0
	buttonH   = 52.0
	buttonGap = 60.0

	bgWrapMargin = 12.0
)

// bgStar is one background drift particle.
type bgStar struct {
	pos   core.Vec2
	vel   core.Vec2
	size  float32
	shade float32
}

// Game wires the animation core to ebiten: it owns the frame loop, routes
// pointer events into the evasion controller and draws everything.
type Game struct {
	cfg   *Config
	rng   *core.RNG
	clock *core.Clock
	view  core.Viewport

	tiers   []heart.Tier
	tier    heart.Tier
	params  heart.Params
	field   *assembly.Field
	emitter *burst.Emitter
	noBtn   *evade.Controller
	player  *audio.Player // nil when the track failed to open

	effects    []core.Effect
	camera     render.Camera
	points     []render.Point
	background []bgStar
	angle      float64

	answered bool
}

// New constructs the game for the configured window size.
func New(cfg *Config) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    core.NewRNG(cfg.Seed),
		clock:  core.NewClock(),
		view:   core.Viewport{W: float64(cfg.Width), H: float64(cfg.Height)},
		tiers:  heart.DefaultTiers(),
		params: heart.DefaultParams(),
	}
	g.camera = render.DefaultCamera(g.view)
	g.field = assembly.New(assembly.DefaultConfig(), g.rng)
	g.emitter = burst.NewEmitter(burst.DefaultConfig(), g.rng, g.view)
	g.noBtn = evade.NewController(evade.DefaultConfig(), g.rng, g.view, g.noFootprint)
	g.effects = []core.Effect{g.field, g.emitter}

	g.applyTier(heart.TierFor(g.tiers, g.view.W))

	if cfg.Audio != "" {
		player, err := audio.Open(cfg.Audio)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.player = player
		}
	}
	return g
}

// applyTier rebuilds the particle field and the background set for a new
// quality tier.
func (g *Game) applyTier(tier heart.Tier) {
	g.tier = tier
	targets, colors := heart.Generate(tier.Particles, g.params, g.rng)
	g.field.Rebuild(targets, colors)

	g.background = make([]bgStar, tier.Background)
	for i := range g.background {
		g.background[i] = bgStar{
			pos: core.Vec2{
				X: g.rng.Range(0, g.view.W),
				Y: g.rng.Range(0, g.view.H),
			},
			vel: core.Vec2{
				X: g.rng.Range(-8, 8),
				Y: g.rng.Range(-5, 5),
			},
			size:  float32(g.rng.Range(0.8, 2.2)),
			shade: float32(g.rng.Range(0.25, 0.75)),
		}
	}
}

// Update advances every active effect by one frame and routes input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.player != nil {
		g.player.Toggle()
	}

	dt := g.clock.Tick()

	mx, my := ebiten.CursorPosition()
	pointer := core.Vec2{X: float64(mx), Y: float64(my)}
	if !g.answered {
		g.routePointer(pointer)
	}

	for _, e := range g.effects {
		e.Step(dt)
	}
	g.stepBackground(dt)
	g.angle += rotationSpeed * dt * (1 + 0.6*g.field.PulseEnergy())
	return nil
}

// routePointer translates cursor position and clicks into controller calls.
func (g *Game) routePointer(pointer core.Vec2) {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if contains(g.yesRect(), pointer) && clicked {
		g.affirm()
		return
	}

	nr := g.noRect()
	if contains(nr, pointer) {
		// Direct contact: shrink and force a move regardless of throttle
		// and danger radius.
		if clicked {
			g.noBtn.OnPressAttempt()
			g.emitter.SpawnTease(pointer)
		} else {
			g.noBtn.OnHoverAttempt()
		}
		g.noBtn.OnThreat(pointer, true)
		return
	}
	g.noBtn.OnThreat(pointer, false)
}

// affirm fires the celebration chain for the affirmative answer.
func (g *Game) affirm() {
	g.answered = true
	g.noBtn.Hide()
	g.emitter.SpawnCelebration()
	g.field.Pulse()
	if g.player != nil {
		g.player.Play()
	}
	message := g.cfg.Message
	// Best-effort reveal; the dialog blocks its own goroutine only.
	go func() {
		if err := zenity.Info(message, zenity.Title("A little surprise")); err != nil {
			log.Printf("message dialog: %v", err)
		}
	}()
}

func (g *Game) stepBackground(dt float64) {
	for i := range g.background {
		s := &g.background[i]
		s.pos.X += s.vel.X * dt
		s.pos.Y += s.vel.Y * dt
		if s.pos.X < -bgWrapMargin {
			s.pos.X += g.view.W + 2*bgWrapMargin
		}
		if s.pos.X > g.view.W+bgWrapMargin {
			s.pos.X -= g.view.W + 2*bgWrapMargin
		}
		if s.pos.Y < -bgWrapMargin {
			s.pos.Y += g.view.H + 2*bgWrapMargin
		}
		if s.pos.Y > g.view.H+bgWrapMargin {
			s.pos.Y -= g.view.H + 2*bgWrapMargin
		}
	}
}

// yesRect places the affirmative button left of center under the heart.
func (g *Game) yesRect() evade.Rect {
	return evade.Rect{
		X: g.view.W/2 - buttonW - buttonGap/2,
		Y: g.view.H - buttonH - 70,
		W: buttonW,
		H: buttonH,
	}
}

// noRect mirrors yesRect until the controller pins the button, after which
// the controller placement wins. Size always tracks the shrink scale.
func (g *Game) noRect() evade.Rect {
	scale := g.noBtn.Scale()
	w := buttonW * scale
	h := buttonH * scale
	if pos, pinned := g.noBtn.Placement(); pinned {
		return evade.Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	}
	return evade.Rect{
		X: g.view.W/2 + buttonGap/2,
		Y: g.view.H - buttonH - 70,
		W: w,
		H: h,
	}
}

// noFootprint is the rect provider handed to the evasion controller.
func (g *Game) noFootprint() evade.Rect { return g.noRect() }

// Draw renders the scene back to front: background, heart, burst, buttons.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x08, B: 0x12, A: 0xff})

	for i := range g.background {
		s := &g.background[i]
		shade := uint8(s.shade * 255)
		vector.DrawFilledCircle(screen, float32(s.pos.X), float32(s.pos.Y), s.size,
			color.RGBA{R: shade, G: shade / 2, B: shade, A: shade}, true)
	}

	// The heartbeat breathes the whole heart through the camera scale.
	cam := g.camera
	beat := g.field.BeatScale()
	cam.PixelsPerUnit *= beat
	cam.PointSize *= beat
	g.points = render.Project(g.points, g.field.Particles(), g.angle, cam)
	render.DrawPoints(screen, g.points)
	render.DrawBurst(screen, g.emitter.Particles())

	if !g.answered {
		g.drawButton(screen, g.yesRect(), "Yes", color.RGBA{R: 0xd6, G: 0x2b, B: 0x52, A: 0xff})
		if !g.noBtn.Hidden() {
			g.drawButton(screen, g.noRect(), "No", color.RGBA{R: 0x3a, G: 0x2a, B: 0x3a, A: 0xff})
		}
	}

	status := fmt.Sprintf("%s progress %.2f", g.field.Name(), g.field.Progress())
	if g.field.Converged() {
		status = g.field.Name() + " settled"
	}
	if !g.emitter.Empty() {
		status += fmt.Sprintf(" | %s %d", g.emitter.Name(), len(g.emitter.Particles()))
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) drawButton(screen *ebiten.Image, r evade.Rect, label string, fill color.RGBA) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, true)
	ebitenutil.DebugPrintAt(screen, label, int(r.X+r.W/2)-len(label)*3, int(r.Y+r.H/2)-8)
}

// Layout adopts the outside size and reacts to resizes: tier reselection,
// camera refit and boundary reclamping.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.view.W || h != g.view.H {
		g.view = core.Viewport{W: w, H: h}
		g.camera = render.DefaultCamera(g.view)
		g.emitter.SetViewport(g.view)
		g.noBtn.SetViewport(g.view)
		g.noBtn.Reclamp()
		if tier := heart.TierFor(g.tiers, w); tier != g.tier {
			g.applyTier(tier)
		}
	}
	return outsideWidth, outsideHeight
}

// Close releases the audio resources.
func (g *Game) Close() {
	if g.player != nil {
		_ = g.player.Close()
	}
	g.field.Destroy()
}

func contains(r evade.Rect, p core.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
