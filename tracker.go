package rubiks

// Tracker wraps a cube state with move history, undo and solved-state
// detection. It is the convenience layer the interactive tools build on; the
// underlying state and permutations stay immutable.
type Tracker struct {
	n              int
	scheme         Scheme
	state          *CubeState
	history        []Operation
	solvedCallback func()
	wasSolved      bool
	cfg            *trackerConfig
}

// NewTracker creates a tracker holding the solved n×n×n cube in the given
// scheme.
func NewTracker(n int, scheme Scheme, opts ...TrackerOption) *Tracker {
	cfg := defaultTrackerConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		n:         n,
		scheme:    scheme,
		state:     NewSolved(n, scheme),
		wasSolved: true,
		cfg:       cfg,
	}
}

// SetSolvedCallback sets a callback that fires when a move returns the cube
// to a solved position. Rotating a solved cube does not fire it again.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.solvedCallback = cb
}

// Apply performs one operation on the tracked state.
func (t *Tracker) Apply(op Operation) {
	t.state = t.state.Apply(op)
	if t.cfg.history {
		t.history = append(t.history, op)
	}
	t.checkSolved()
}

// ApplyAll performs a sequence of operations in order.
func (t *Tracker) ApplyAll(ops ...Operation) {
	for _, op := range ops {
		t.Apply(op)
	}
}

// Undo reverts the most recent operation and reports whether there was one
// to revert. Undo needs history tracking enabled.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	op := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.state = t.state.Apply(op.TilePerm(t.n).Inverse())
	t.checkSolved()
	return true
}

// Reset returns the tracker to the solved state and clears the history.
func (t *Tracker) Reset() {
	t.state = NewSolved(t.n, t.scheme)
	t.history = nil
	t.wasSolved = true
}

func (t *Tracker) checkSolved() {
	if !t.cfg.solvedDetection {
		return
	}
	solved := t.IsSolved()
	if solved && !t.wasSolved && t.solvedCallback != nil {
		t.solvedCallback()
	}
	t.wasSolved = solved
}

// IsSolved reports whether the cube is solved up to a whole-cube rotation,
// so turning the cube over in your hands never counts as scrambling it.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolvedUpToRotationIn(t.scheme)
}

// State returns the current cube state.
func (t *Tracker) State() *CubeState {
	return t.state
}

// Scheme returns the color scheme the tracker was built with.
func (t *Tracker) Scheme() Scheme {
	return t.scheme
}

// Dimension returns the cube size n.
func (t *Tracker) Dimension() int {
	return t.n
}

// History returns a copy of the applied operations, oldest first.
func (t *Tracker) History() []Operation {
	return append([]Operation(nil), t.history...)
}

// Progress measures the state against the tracker's scheme.
func (t *Tracker) Progress() Progress {
	return MeasureProgress(t.state, t.scheme)
}
