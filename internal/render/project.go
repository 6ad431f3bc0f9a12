// Package render turns particle state into drawable screen-space points.
// The projection math carries no rendering dependency so it stays testable
// headless; the actual drawing lives behind the ebiten build tag.
package render

import (
	"math"
	"sort"

	"github.com/er601/valentine-surprise/internal/assembly"
	"github.com/er601/valentine-surprise/internal/core"
)

// Point is one projected particle ready for drawing.
type Point struct {
	X, Y  float32
	Size  float32
	Color core.RGB
	Alpha float32
	depth float64
}

// Camera maps scene space onto the viewport with a simple perspective
// divide and a rotation about the vertical axis.
type Camera struct {
	Viewport core.Viewport
	// Distance is the eye distance along the depth axis; larger values
	// flatten the perspective.
	Distance float64
	// PixelsPerUnit scales scene units to pixels at zero depth.
	PixelsPerUnit float64
	// PointSize is the base particle radius in pixels at zero depth.
	PointSize float64
}

// DefaultCamera frames the heart curve extents into the given viewport.
func DefaultCamera(view core.Viewport) Camera {
	// The curve spans ~36 units vertically with the depth axis added;
	// leave headroom for the idle float.
	fit := math.Min(view.W, view.H) / 46
	return Camera{
		Viewport:      view,
		Distance:      120,
		PixelsPerUnit: fit,
		PointSize:     math.Max(1.4, fit*0.16),
	}
}

// Project appends the field's particles to dst as screen points, rotated by
// angle about the vertical axis and sorted back to front. Particles behind
// the eye are dropped. dst is reused across frames to stay allocation-flat.
func Project(dst []Point, particles []assembly.Particle, angle float64, cam Camera) []Point {
	dst = dst[:0]
	sinA, cosA := math.Sincos(angle)
	cx := cam.Viewport.W / 2
	cy := cam.Viewport.H / 2

	for i := range particles {
		p := &particles[i]
		// Rotate about Y.
		rx := p.Pos.X*cosA + p.Pos.Z*sinA
		rz := -p.Pos.X*sinA + p.Pos.Z*cosA

		denom := cam.Distance + rz
		if denom <= 1 {
			continue
		}
		f := cam.Distance / denom
		dst = append(dst, Point{
			X:     float32(cx + rx*cam.PixelsPerUnit*f),
			Y:     float32(cy - p.Pos.Y*cam.PixelsPerUnit*f),
			Size:  float32(cam.PointSize * f),
			Color: p.Color,
			Alpha: 1,
			depth: rz,
		})
	}

	sort.Slice(dst, func(i, j int) bool { return dst[i].depth > dst[j].depth })
	return dst
}
