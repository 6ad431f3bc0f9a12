// Package heart produces the destination positions and colors for a particle
// assembly from the classic parametric heart curve.
package heart

import (
	"math"

	"github.com/er601/valentine-surprise/internal/core"
)

// Curve extents in curve units, used to normalize the gradient key and to
// scale jitter.
const (
	curveExtentX = 16.0
	curveYMin    = -17.0
	curveYMax    = 13.0
)

// Curve evaluates the parametric heart outline at t.
//
//	x = 16 sin³t
//	y = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
func Curve(t float64) (x, y float64) {
	s := math.Sin(t)
	x = 16 * s * s * s
	y = 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
	return x, y
}

// Generate samples count targets on and inside the heart volume, returning
// parallel position and color slices. Output is deterministic for a given
// RNG seed.
func Generate(count int, p Params, rng *core.RNG) ([]core.Vec3, []core.RGB) {
	if count <= 0 {
		return nil, nil
	}
	positions := make([]core.Vec3, count)
	colors := make([]core.RGB, count)

	jitter := p.Jitter * curveExtentX * p.Scale
	for i := 0; i < count; i++ {
		t := rng.Float64() * 2 * math.Pi
		cx, cy := Curve(t)

		// Radial fill bias: concentrate density near the outline while
		// still filling the interior.
		r := math.Pow(rng.Float64(), p.FillBias)
		x := cx * r * p.Scale
		y := cy * r * p.Scale

		// Depth axis, squeezed toward the mid-plane near the outline.
		depth := math.Pow(1-r, p.ThicknessBias) * p.Thickness * p.Scale
		z := rng.Range(-1, 1) * depth

		positions[i] = core.Vec3{
			X: x + rng.Range(-jitter, jitter),
			Y: y + rng.Range(-jitter, jitter),
			Z: z + rng.Range(-jitter, jitter),
		}

		// Vertical gradient with a small random perturbation so the bands
		// are not perfectly laminar.
		key := (cy*r - curveYMin) / (curveYMax - curveYMin)
		key += float64(p.ColorNoise) * rng.Range(-1, 1)
		key = core.Clamp(key, 0, 1)
		colors[i] = p.BottomColor.Lerp(p.TopColor, float32(key))
	}
	return positions, colors
}
