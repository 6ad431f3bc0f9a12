//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/er601/valentine-surprise/internal/burst"
	"github.com/er601/valentine-surprise/internal/core"
)

// DrawPoints paints projected particles back to front.
func DrawPoints(screen *ebiten.Image, pts []Point) {
	for i := range pts {
		p := &pts[i]
		vector.DrawFilledCircle(screen, p.X, p.Y, p.Size, rgba(p.Color, p.Alpha), true)
	}
}

// DrawBurst paints burst fragments as spinning confetti. The spin is faked
// by collapsing the rectangle width with the rotation phase.
func DrawBurst(screen *ebiten.Image, particles []burst.Particle) {
	for i := range particles {
		p := &particles[i]
		fade := float32(p.Fade())
		w := float32(p.Size * 2 * math.Abs(math.Cos(p.Rot)))
		h := float32(p.Size * 2)
		vector.DrawFilledRect(
			screen,
			float32(p.Pos.X)-w/2,
			float32(p.Pos.Y)-h/2,
			w, h,
			rgba(p.Color, fade),
			true,
		)
	}
}

// rgba converts a core color plus alpha into premultiplied RGBA.
func rgba(c core.RGB, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(c.R * alpha * 255),
		G: uint8(c.G * alpha * 255),
		B: uint8(c.B * alpha * 255),
		A: uint8(alpha * 255),
	}
}
