package render

// Option configures rendering.
type Option func(*config)

type config struct {
	tileWidth int
	labels    bool
	ascii     bool
}

func newConfig(opts []Option) *config {
	cfg := &config{tileWidth: 2}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tileWidth < 1 {
		cfg.tileWidth = 1
	}
	return cfg
}

// WithTileWidth sets the printed width of each tile cell.
func WithTileWidth(width int) Option {
	return func(cfg *config) {
		cfg.tileWidth = width
	}
}

// WithLabels marks each face's center tile with its face letter.
func WithLabels(enabled bool) Option {
	return func(cfg *config) {
		cfg.labels = enabled
	}
}

// WithASCII renders plain color letters with no styling.
func WithASCII(enabled bool) Option {
	return func(cfg *config) {
		cfg.ascii = enabled
	}
}
