// Package assembly animates a fixed set of particles from a scattered
// nebula into target positions with a damped-spring attraction law.
package assembly

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/er601/valentine-surprise/internal/core"
)

// noise field shape for the idle float.
const (
	noiseAlpha       = 2.0
	noiseBeta        = 2.0
	noiseOctaves     = 2
	noiseSpatialFreq = 0.08
)

// Particle is one element of the field. Target is assigned at rebuild time
// and never changes for the life of one assembly.
type Particle struct {
	Pos    core.Vec3
	Vel    core.Vec3
	Target core.Vec3
	Color  core.RGB
}

// Field owns the particle buffer and the assembly state for one heart
// instance. All mutation happens through Step and Rebuild on the frame
// thread; the zero field is empty and immediately converged.
type Field struct {
	cfg       Config
	rng       *core.RNG
	noise     *perlin.Perlin
	particles []Particle

	progress  float64
	converged bool
	pulse     float64
	floatTime float64
	beatTime  float64
	destroyed bool
}

// New constructs an empty Field. Call Rebuild to populate it.
func New(cfg Config, rng *core.RNG) *Field {
	if cfg.MaxDt <= 0 {
		cfg.MaxDt = core.DefaultMaxDt
	}
	return &Field{
		cfg:       cfg,
		rng:       rng,
		noise:     perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, rng.Source().Int64()),
		converged: true,
	}
}

// Name identifies the effect.
func (f *Field) Name() string { return "assembly" }

// Particles exposes the live particle buffer for rendering.
func (f *Field) Particles() []Particle { return f.particles }

// Progress reports the assembly ease-in scalar in [0, 1].
func (f *Field) Progress() float64 { return f.progress }

// Converged reports whether the shape has settled. It never reverts to
// false without a rebuild.
func (f *Field) Converged() bool { return f.converged }

// Done reports whether the field has been destroyed and should stop being
// driven.
func (f *Field) Done() bool { return f.destroyed }

// Rebuild discards all particle state and scatters a fresh field, one
// particle per target. The targets and colors slices are parallel; targets
// are write-once from here until the next rebuild. An empty target set
// degrades to an immediately converged no-op field.
func (f *Field) Rebuild(targets []core.Vec3, colors []core.RGB) {
	if f.destroyed {
		return
	}
	count := len(targets)
	if len(colors) < count {
		count = len(colors)
	}
	f.progress = 0
	f.floatTime = 0
	f.beatTime = 0
	f.pulse = 0
	if count == 0 {
		f.particles = nil
		f.converged = true
		return
	}
	f.converged = false
	f.particles = make([]Particle, count)
	for i := range f.particles {
		dir := f.rng.UnitVec3()
		radius := math.Pow(f.rng.Float64(), f.cfg.SpreadBias) * f.cfg.SpreadRadius
		f.particles[i] = Particle{
			Pos:    dir.Scale(radius),
			Target: targets[i],
			Color:  colors[i],
		}
	}
}

// Step advances the field by dt seconds. Before convergence it integrates
// the damped spring toward the targets; after convergence per-particle
// physics stops and only the cheap idle float runs.
func (f *Field) Step(dt float64) {
	if f.destroyed || len(f.particles) == 0 || dt <= 0 {
		return
	}
	if dt > f.cfg.MaxDt {
		dt = f.cfg.MaxDt
	}
	if f.pulse > 0 {
		f.pulse = math.Max(0, f.pulse-f.cfg.PulseDecay*dt)
	}
	if f.converged {
		f.beatTime += dt
		f.idleFloat(dt)
		return
	}

	f.progress = math.Min(1, f.progress+f.cfg.ProgressRate*dt)
	strength := f.cfg.StrengthBase + f.progress*f.cfg.StrengthGain
	snap := f.cfg.SnapFactor * f.progress

	var errSum float64
	for i := range f.particles {
		p := &f.particles[i]
		d := p.Target.Sub(p.Pos)
		vel := p.Vel.Add(d.Scale(strength * dt)).Scale(f.cfg.Damping)
		pos := p.Pos.Add(vel).Add(d.Scale(snap))
		if !pos.Finite() || !vel.Finite() {
			pos = p.Target
			vel = core.Vec3{}
		}
		p.Vel = vel
		p.Pos = pos
		errSum += math.Abs(p.Target.X-pos.X) + math.Abs(p.Target.Y-pos.Y) + math.Abs(p.Target.Z-pos.Z)
	}
	mean := errSum / float64(3*len(f.particles))
	if f.progress >= f.cfg.ProgressFloor && mean < f.cfg.ConvergeError {
		f.converged = true
	}
}

// MeanError returns the mean absolute per-axis distance to target.
func (f *Field) MeanError() float64 {
	if len(f.particles) == 0 {
		return 0
	}
	var sum float64
	for i := range f.particles {
		p := &f.particles[i]
		sum += math.Abs(p.Target.X-p.Pos.X) + math.Abs(p.Target.Y-p.Pos.Y) + math.Abs(p.Target.Z-p.Pos.Z)
	}
	return sum / float64(3*len(f.particles))
}

// Pulse injects a one-shot impulse into the idle float. Amplitude and
// speed rise immediately and decay linearly back to baseline.
func (f *Field) Pulse() {
	if f.destroyed {
		return
	}
	f.pulse = f.cfg.PulseBoost
}

// PulseEnergy reports the current extra float energy, zero at baseline.
func (f *Field) PulseEnergy() float64 { return f.pulse }

// BeatScale returns the heartbeat's global scale factor. Before convergence
// the heart holds steady at 1; afterwards the scale oscillates around 1
// with an amplitude that Pulse temporarily raises.
func (f *Field) BeatScale() float64 {
	if !f.converged || f.destroyed {
		return 1
	}
	amp := f.cfg.BeatAmplitude * (1 + f.pulse)
	return 1 + amp*math.Sin(2*math.Pi*f.cfg.BeatRate*f.beatTime)
}

// Destroy releases the particle buffer and makes every further call a
// no-op. Safe to call at any point, including mid-assembly.
func (f *Field) Destroy() {
	f.destroyed = true
	f.particles = nil
}

// idleFloat drifts each settled particle around its target with a smooth
// noise field. Keyed on the target position so the motion is stable per
// particle across frames.
func (f *Field) idleFloat(dt float64) {
	amp := f.cfg.FloatAmplitude * (1 + f.pulse)
	f.floatTime += dt * f.cfg.FloatSpeed * (1 + f.pulse)
	for i := range f.particles {
		p := &f.particles[i]
		nx := p.Target.X * noiseSpatialFreq
		ny := p.Target.Y * noiseSpatialFreq
		nz := p.Target.Z * noiseSpatialFreq
		p.Pos = core.Vec3{
			X: p.Target.X + f.noise.Noise3D(nx, ny, f.floatTime)*amp,
			Y: p.Target.Y + f.noise.Noise3D(ny+31.7, nz, f.floatTime)*amp,
			Z: p.Target.Z + f.noise.Noise3D(nz+63.1, nx, f.floatTime)*amp,
		}
	}
}
