package core

// RuntimeConfig carries the platform parameters handed to a game session:
// terminal dimensions, tick cadence, and the RNG seed for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means derive from current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults for an
// 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
