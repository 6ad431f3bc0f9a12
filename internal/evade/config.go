package evade

import "time"

// Config holds the evasion tunables.
type Config struct {
	// Cooldown throttles unforced threat events.
	Cooldown time.Duration

	// DangerMin and DangerMax bound the dynamic danger radius derived from
	// the object footprint. Unforced threats beyond the radius are ignored.
	DangerMin float64
	DangerMax float64
	// DangerScale multiplies the larger footprint dimension to obtain the
	// radius before clamping.
	DangerScale float64

	// JitterFrac is the maximum per-axis perturbation of the unit escape
	// direction.
	JitterFrac float64

	// StepWidthFrac scales the escape step with the viewport width; the
	// result clamps to [StepMin, StepMax].
	StepWidthFrac float64
	StepMin       float64
	StepMax       float64

	// Padding keeps the clamped placement away from the viewport edge.
	Padding float64

	// HoverShrink and PressShrink are the multiplicative scale factors for
	// the two shrink call sites; scale floors at MinScale.
	HoverShrink float64
	PressShrink float64
	MinScale    float64

	// StuckEpsilon is the per-axis threshold below which the raw escape
	// vector counts as degenerate and triggers a random relocation.
	StuckEpsilon float64
}

// DefaultConfig returns the standard evasion configuration.
func DefaultConfig() Config {
	return Config{
		Cooldown:      120 * time.Millisecond,
		DangerMin:     90,
		DangerMax:     220,
		DangerScale:   1.6,
		JitterFrac:    0.35,
		StepWidthFrac: 0.18,
		StepMin:       160,
		StepMax:       280,
		Padding:       12,
		HoverShrink:   0.92,
		PressShrink:   0.86,
		MinScale:      0.4,
		StuckEpsilon:  1.0,
	}
}
