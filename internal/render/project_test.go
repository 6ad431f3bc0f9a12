package render

import (
	"math"
	"testing"

	"github.com/er601/valentine-surprise/internal/assembly"
	"github.com/er601/valentine-surprise/internal/core"
)

func testCamera() Camera {
	return Camera{
		Viewport:      core.Viewport{W: 800, H: 600},
		Distance:      100,
		PixelsPerUnit: 10,
		PointSize:     2,
	}
}

func TestProjectCentersOrigin(t *testing.T) {
	pts := Project(nil, []assembly.Particle{{}}, 0, testCamera())
	if len(pts) != 1 {
		t.Fatalf("projected %d points, want 1", len(pts))
	}
	if pts[0].X != 400 || pts[0].Y != 300 {
		t.Fatalf("origin projected to (%v, %v), want viewport center", pts[0].X, pts[0].Y)
	}
}

func TestProjectPerspective(t *testing.T) {
	cam := testCamera()
	near := assembly.Particle{Pos: core.Vec3{X: 5, Z: -20}}
	far := assembly.Particle{Pos: core.Vec3{X: 5, Z: 20}}

	pts := Project(nil, []assembly.Particle{near, far}, 0, cam)
	if len(pts) != 2 {
		t.Fatalf("projected %d points, want 2", len(pts))
	}
	// Back-to-front ordering puts the far particle first.
	if pts[0].Size >= pts[1].Size {
		t.Fatalf("far point size %v not smaller than near %v", pts[0].Size, pts[1].Size)
	}
	if pts[0].X >= pts[1].X {
		t.Fatal("perspective must pull the far point toward center")
	}
}

func TestProjectRotationHalfTurn(t *testing.T) {
	cam := testCamera()
	p := []assembly.Particle{{Pos: core.Vec3{X: 8}}}

	at0 := Project(nil, p, 0, cam)
	atPi := Project(nil, p, math.Pi, cam)
	if len(at0) != 1 || len(atPi) != 1 {
		t.Fatal("rotation dropped a visible point")
	}
	// Half a turn mirrors X across the center.
	if math.Abs(float64(at0[0].X-400)+float64(atPi[0].X-400)) > 1e-3 {
		t.Fatalf("half turn projected x=%v, want mirror of %v", atPi[0].X, at0[0].X)
	}
}

func TestProjectDropsBehindEye(t *testing.T) {
	cam := testCamera()
	pts := Project(nil, []assembly.Particle{{Pos: core.Vec3{Z: -200}}}, 0, cam)
	if len(pts) != 0 {
		t.Fatal("point behind the eye must be dropped")
	}
}

func TestProjectReusesBuffer(t *testing.T) {
	cam := testCamera()
	particles := []assembly.Particle{{}, {Pos: core.Vec3{X: 1}}}

	buf := Project(nil, particles, 0, cam)
	again := Project(buf, particles, 0.1, cam)
	if cap(again) != cap(buf) {
		t.Fatal("projection must reuse the destination buffer")
	}
}
