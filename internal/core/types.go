package core

// Viewport describes the drawable area in screen units.
type Viewport struct {
	W float64
	H float64
}

// Effect is the minimal contract a frame-driven animation subsystem must
// implement. The shell calls Step once per rendered frame; Done reports
// whether the effect has burned out and can stop being driven. Long-lived
// effects simply never report done.
type Effect interface {
	Name() string
	Step(dt float64)
	Done() bool
}
