package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Seed    int64
	TPS     int
	Width   int
	Height  int
	Audio   string
	Message string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:    42,
		TPS:     60,
		Width:   1280,
		Height:  800,
		Audio:   "assets/track.mp3",
		Message: "Happy Valentine's Day! You just made someone very happy.",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.Audio, "audio", c.Audio, "music track (.mp3/.wav/.flac); missing file plays silence")
	fs.StringVar(&c.Message, "message", c.Message, "message revealed on the affirmative answer")
}
