package journal

import (
	"fmt"
	"sync"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

// RecorderState represents the lifecycle of a recording.
type RecorderState int

const (
	StateIdle RecorderState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the recorder state.
func (s RecorderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Recorder couples a cube tracker with the journal: every recorded operation
// is applied to the tracked state and appended to the session in one step, so
// the stored move list always replays to the live state.
type Recorder struct {
	db *DB

	mu        sync.RWMutex
	state     RecorderState
	sessionID string
	moveIndex int
	tracker   *rubiks.Tracker

	sessions *SessionRepository
	moves    *MoveRepository

	onMove func(rubiks.Operation)
}

// NewRecorder creates a recorder over an open journal database.
func NewRecorder(db *DB) *Recorder {
	return &Recorder{
		db:       db,
		state:    StateIdle,
		sessions: NewSessionRepository(db),
		moves:    NewMoveRepository(db),
	}
}

// SetMoveCallback sets a callback invoked after each recorded operation.
func (r *Recorder) SetMoveCallback(cb func(rubiks.Operation)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onMove = cb
}

// State returns the recorder state.
func (r *Recorder) State() RecorderState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// SessionID returns the active session's ID.
func (r *Recorder) SessionID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessionID
}

// MoveCount returns the number of journaled moves so far.
func (r *Recorder) MoveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.moveIndex
}

// Cube returns the current tracked state.
func (r *Recorder) Cube() *rubiks.CubeState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tracker.State()
}

// IsSolved reports whether the tracked cube is solved up to rotation.
func (r *Recorder) IsSolved() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tracker.IsSolved()
}

// Start opens a new session for a solved n×n×n cube in the given scheme.
func (r *Recorder) Start(n int, scheme rubiks.Scheme) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := r.sessions.Create(n, scheme)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.sessionID = sessionID
	r.moveIndex = 0
	r.tracker = rubiks.NewTracker(n, scheme)
	r.state = StateRecording

	return sessionID, nil
}

// Record applies one operation to the tracked cube and journals it.
func (r *Recorder) Record(op rubiks.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if _, err := r.moves.Append(r.sessionID, r.moveIndex, op); err != nil {
		return err
	}
	r.tracker.Apply(op)
	r.moveIndex++

	if r.onMove != nil {
		r.onMove(op)
	}

	return nil
}

// RecordAll records a sequence of operations in order.
func (r *Recorder) RecordAll(ops ...rubiks.Operation) error {
	for _, op := range ops {
		if err := r.Record(op); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverts the most recent tracked move and journals its inverse, keeping
// the stored move list an append-only replayable log.
func (r *Recorder) Undo() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	history := r.tracker.History()
	if len(history) == 0 {
		return fmt.Errorf("nothing to undo")
	}

	inv, err := inverseOperation(history[len(history)-1])
	if err != nil {
		return err
	}
	if _, err := r.moves.Append(r.sessionID, r.moveIndex, inv); err != nil {
		return err
	}
	r.tracker.Undo()
	r.moveIndex++

	return nil
}

// Finish ends the session, stamping the final move count and whether the cube
// ended solved.
func (r *Recorder) Finish() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := r.sessions.Finish(r.sessionID, r.tracker.IsSolved()); err != nil {
		return err
	}
	r.state = StateEnded

	return nil
}
