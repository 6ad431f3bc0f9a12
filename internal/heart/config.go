package heart

import "github.com/er601/valentine-surprise/internal/core"

// Params holds the tunables for target generation.
type Params struct {
	// Scale multiplies the raw curve coordinates. The classic heart curve
	// spans roughly x ∈ [-16, 16], y ∈ [-17, 13] in curve units.
	Scale float64

	// FillBias is the exponent applied to the uniform radius draw. Lower
	// values hug the outline, higher values dilute the interior fill.
	FillBias float64

	// Thickness is the maximum extent of the depth axis, in scaled units.
	Thickness float64

	// ThicknessBias shapes the depth distribution toward the mid-plane for
	// points near the outline.
	ThicknessBias float64

	// Jitter is the per-axis uniform jitter amplitude as a fraction of the
	// curve extent. Breaks up the banding the pure curve sampling leaves.
	Jitter float64

	// ColorNoise is the maximum random perturbation of the gradient key.
	ColorNoise float32

	// BottomColor and TopColor anchor the vertical gradient.
	BottomColor core.RGB
	TopColor    core.RGB
}

// DefaultParams returns the standard generator configuration.
func DefaultParams() Params {
	return Params{
		Scale:         1.0,
		FillBias:      0.55,
		Thickness:     4.0,
		ThicknessBias: 1.4,
		Jitter:        0.05,
		ColorNoise:    0.15,
		BottomColor:   core.RGB{R: 0.86, G: 0.08, B: 0.24}, // crimson
		TopColor:      core.RGB{R: 1.0, G: 0.66, B: 0.79},  // pink
	}
}

// Tier is one quality/density level. Tiers are selected by viewport width;
// the particle field is rebuilt whole on a tier change, never resized
// incrementally.
type Tier struct {
	Name       string
	MinWidth   float64
	Particles  int
	Background int
}

// DefaultTiers returns the quality ladder ordered from narrowest to widest
// viewport. MinWidth values are thresholds, not ranges: the widest tier
// whose MinWidth fits is chosen.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "mobile", MinWidth: 0, Particles: 3800, Background: 90},
		{Name: "tablet", MinWidth: 560, Particles: 6200, Background: 140},
		{Name: "laptop", MinWidth: 900, Particles: 8800, Background: 200},
		{Name: "desktop", MinWidth: 1120, Particles: 12000, Background: 260},
	}
}

// TierFor selects the tier for the given viewport width. Tiers must be
// ordered by ascending MinWidth; an empty slice yields a zero Tier.
func TierFor(tiers []Tier, width float64) Tier {
	var sel Tier
	for _, t := range tiers {
		if width >= t.MinWidth {
			sel = t
		}
	}
	return sel
}
