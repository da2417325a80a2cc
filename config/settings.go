package config

import (
	"time"

	"github.com/philipp01105/drushlog/env"
)

// Settings returns the console settings. detected supplies the terminal
// width and colour support; flags set in the config take precedence.
func (c *Config) Settings(detected env.Settings) env.Settings {
	s := detected
	s.Verbose = c.Console.Verbose
	s.Debug = c.Console.Debug
	s.Quiet = c.Console.Quiet
	s.Backend = c.Console.Backend
	s.NoColor = detected.NoColor || c.Console.NoColor
	if c.Console.Columns > 0 {
		s.Columns = c.Console.Columns
	}
	if s.Start.IsZero() {
		s.Start = time.Now()
	}
	return s
}
