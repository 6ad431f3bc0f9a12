package assembly

import "github.com/er601/valentine-surprise/internal/core"

// Config holds the integrator tunables. The defaults are calibrated for
// targets in heart-curve units (roughly ±16 on the wide axis).
type Config struct {
	// SpreadRadius is the scatter sphere radius for the initial nebula.
	SpreadRadius float64
	// SpreadBias is the exponent on the radius draw. Values below 1 push
	// mass outward, the opposite bias from the target fill.
	SpreadBias float64

	// StrengthBase and StrengthGain set the spring stiffness ramp:
	// strength = base + progress*gain.
	StrengthBase float64
	StrengthGain float64
	// Damping scales velocity each tick; must stay below 1.
	Damping float64
	// SnapFactor pulls the residual error to zero once progress is high.
	// The damped spring alone only approaches the target asymptotically.
	SnapFactor float64

	// ProgressRate advances progress per second; progress clamps to 1.
	ProgressRate float64
	// ProgressFloor is the progress gate for convergence.
	ProgressFloor float64
	// ConvergeError is the mean absolute per-axis error gate, in the same
	// units as the targets.
	ConvergeError float64

	// FloatAmplitude and FloatSpeed shape the post-convergence idle drift.
	FloatAmplitude float64
	FloatSpeed     float64
	// BeatAmplitude and BeatRate shape the post-convergence heartbeat:
	// a gentle global scale oscillation at BeatRate hertz.
	BeatAmplitude float64
	BeatRate      float64
	// PulseBoost is the extra float energy injected by Pulse; it decays
	// back to zero at PulseDecay per second.
	PulseBoost float64
	PulseDecay float64

	// MaxDt caps a single integration step.
	MaxDt float64
}

// DefaultConfig returns the standard integrator configuration.
func DefaultConfig() Config {
	return Config{
		SpreadRadius:   40,
		SpreadBias:     0.35,
		StrengthBase:   4.2,
		StrengthGain:   10.0,
		Damping:        0.86,
		SnapFactor:     0.0022,
		ProgressRate:   0.22,
		ProgressFloor:  0.98,
		ConvergeError:  0.09,
		FloatAmplitude: 0.55,
		FloatSpeed:     0.6,
		BeatAmplitude:  0.018,
		BeatRate:       1.15,
		PulseBoost:     2.4,
		PulseDecay:     1.6,
		MaxDt:          core.DefaultMaxDt,
	}
}
