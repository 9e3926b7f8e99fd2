package animation

import "time"

// DefaultConfig returns the running-indicator pulse timing.
func DefaultConfig() Config {
	return Config{
		BrightDuration: Range{
			Min: 700 * time.Millisecond,
			Max: 800 * time.Millisecond,
		},
		DimDuration: Range{
			Min: 500 * time.Millisecond,
			Max: 600 * time.Millisecond,
		},
	}
}
