package rubiks

// TrackerOption configures Tracker behavior.
type TrackerOption func(*trackerConfig)

type trackerConfig struct {
	history         bool
	solvedDetection bool
}

func defaultTrackerConfig() *trackerConfig {
	return &trackerConfig{
		history:         true,
		solvedDetection: true,
	}
}

// WithHistory enables or disables move history tracking.
// When enabled (default), all operations are stored and accessible via
// History(), and Undo works. Disable for long sessions to reduce memory use.
func WithHistory(enabled bool) TrackerOption {
	return func(c *trackerConfig) {
		c.history = enabled
	}
}

// WithSolvedDetection enables or disables automatic solved detection.
// When enabled (default), the solved callback fires when a move returns the
// cube to a solved position.
func WithSolvedDetection(enabled bool) TrackerOption {
	return func(c *trackerConfig) {
		c.solvedDetection = enabled
	}
}
