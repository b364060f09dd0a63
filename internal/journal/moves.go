package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

// Kind names the stored form of an operation in the kind column.
type Kind string

const (
	KindBasic    Kind = "basic"
	KindWide     Kind = "wide"
	KindSlice    Kind = "slice"
	KindRange    Kind = "range"
	KindMiddle   Kind = "middle"
	KindRotation Kind = "rotation"
)

var (
	// ErrUnknownMoveKind reports a row whose stored columns do not rebuild
	// into an operation.
	ErrUnknownMoveKind = errors.New("journal: unknown move kind")

	// ErrUnsupportedOperation reports an operation with no stored form, such
	// as a bare tile permutation.
	ErrUnsupportedOperation = errors.New("journal: operation has no stored form")
)

// MoveRow is one journaled operation.
type MoveRow struct {
	MoveID       int64
	SessionID    string
	MoveIndex    int
	Kind         Kind
	Face         string
	QuarterTurns int
	Depth        int
	Layer        int
	EndLayer     int
	Notation     string
	AppliedAt    time.Time
}

// Operation rebuilds the journaled operation from its stored columns.
func (m MoveRow) Operation() (rubiks.Operation, error) {
	turns := ((m.QuarterTurns % 4) + 4) % 4
	angle := rubiks.Angle(turns)

	switch m.Kind {
	case KindBasic, KindWide, KindSlice, KindRange:
		f, ok := faceFromLetter(m.Face)
		if !ok {
			return nil, fmt.Errorf("%w: bad face %q", ErrUnknownMoveKind, m.Face)
		}
		switch m.Kind {
		case KindBasic:
			return rubiks.BasicMove{Face: f, Angle: angle}, nil
		case KindWide:
			return rubiks.WideMove{Face: f, Angle: angle, Depth: m.Depth}, nil
		case KindSlice:
			return rubiks.SliceMove{Face: f, Angle: angle, Layer: m.Layer}, nil
		default:
			return rubiks.RangeMove{Face: f, Angle: angle, StartLayer: m.Layer, EndLayer: m.EndLayer}, nil
		}
	case KindMiddle:
		s, ok := middleFromLetter(m.Face)
		if !ok {
			return nil, fmt.Errorf("%w: bad middle slice %q", ErrUnknownMoveKind, m.Face)
		}
		return rubiks.MiddleMove{Slice: s, Angle: angle}, nil
	case KindRotation:
		g, ok := generatorFromAxis(m.Face)
		if !ok {
			return nil, fmt.Errorf("%w: bad axis %q", ErrUnknownMoveKind, m.Face)
		}
		out := rubiks.IdentityRotation
		for i := 0; i < turns; i++ {
			out = out.Compose(g)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMoveKind, m.Kind)
	}
}

// moveColumns is the flattened, replayable form of an operation.
type moveColumns struct {
	kind     Kind
	face     string
	turns    int
	depth    int
	layer    int
	endLayer int
	notation string
}

func encodeOperation(op rubiks.Operation) (moveColumns, error) {
	switch m := op.(type) {
	case rubiks.BasicMove:
		return moveColumns{kind: KindBasic, face: m.Face.String(), turns: int(m.Angle), notation: m.String()}, nil
	case rubiks.WideMove:
		return moveColumns{kind: KindWide, face: m.Face.String(), turns: int(m.Angle), depth: m.Depth, notation: m.String()}, nil
	case rubiks.SliceMove:
		return moveColumns{kind: KindSlice, face: m.Face.String(), turns: int(m.Angle), layer: m.Layer, notation: m.String()}, nil
	case rubiks.RangeMove:
		return moveColumns{kind: KindRange, face: m.Face.String(), turns: int(m.Angle), layer: m.StartLayer, endLayer: m.EndLayer, notation: m.String()}, nil
	case rubiks.MiddleMove:
		return moveColumns{kind: KindMiddle, face: m.Slice.String(), turns: int(m.Angle), notation: m.String()}, nil
	case rubiks.CubeRotation:
		axis, turns, ok := rotationAxis(m)
		if !ok {
			return moveColumns{}, fmt.Errorf("%w: rotation %v is not an axis power", ErrUnsupportedOperation, m)
		}
		return moveColumns{kind: KindRotation, face: axis, turns: turns, notation: m.String()}, nil
	default:
		return moveColumns{}, fmt.Errorf("%w: %T", ErrUnsupportedOperation, op)
	}
}

// inverseOperation returns the inverse of a journalable operation.
func inverseOperation(op rubiks.Operation) (rubiks.Operation, error) {
	switch m := op.(type) {
	case rubiks.BasicMove:
		return m.Inverse(), nil
	case rubiks.WideMove:
		return m.Inverse(), nil
	case rubiks.SliceMove:
		return m.Inverse(), nil
	case rubiks.RangeMove:
		return m.Inverse(), nil
	case rubiks.MiddleMove:
		return m.Inverse(), nil
	case rubiks.CubeRotation:
		return m.Inverse(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedOperation, op)
	}
}

// rotationAxis names a rotation as a power of one generator, when it is one.
func rotationAxis(r rubiks.CubeRotation) (string, int, bool) {
	switch r {
	case rubiks.X:
		return "x", 1, true
	case rubiks.X2:
		return "x", 2, true
	case rubiks.XPrime:
		return "x", 3, true
	case rubiks.Y:
		return "y", 1, true
	case rubiks.Y2:
		return "y", 2, true
	case rubiks.YPrime:
		return "y", 3, true
	case rubiks.Z:
		return "z", 1, true
	case rubiks.Z2:
		return "z", 2, true
	case rubiks.ZPrime:
		return "z", 3, true
	}
	return "", 0, false
}

func generatorFromAxis(axis string) (rubiks.CubeRotation, bool) {
	switch axis {
	case "x":
		return rubiks.X, true
	case "y":
		return rubiks.Y, true
	case "z":
		return rubiks.Z, true
	}
	return rubiks.IdentityRotation, false
}

func faceFromLetter(letter string) (rubiks.Face, bool) {
	for _, f := range rubiks.Faces {
		if f.String() == letter {
			return f, true
		}
	}
	return 0, false
}

func middleFromLetter(letter string) (rubiks.MiddleSlice, bool) {
	for _, s := range []rubiks.MiddleSlice{rubiks.MiddleM, rubiks.MiddleE, rubiks.MiddleS} {
		if s.String() == letter {
			return s, true
		}
	}
	return 0, false
}

// MoveRepository provides append and read operations for journaled moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append journals one operation and returns its row ID.
func (r *MoveRepository) Append(sessionID string, moveIndex int, op rubiks.Operation) (int64, error) {
	cols, err := encodeOperation(op)
	if err != nil {
		return 0, err
	}

	appliedAt := time.Now().UTC()
	result, err := r.db.Exec(`
		INSERT INTO session_moves (session_id, move_index, kind, face, quarter_turns, depth, layer, end_layer, notation, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, cols.kind, cols.face, cols.turns, cols.depth, cols.layer, cols.endLayer, cols.notation, appliedAt.Format(time.RFC3339))

	if err != nil {
		return 0, fmt.Errorf("failed to append move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// AppendBatch journals a sequence of operations in a single transaction,
// numbering them from startIndex.
func (r *MoveRepository) AppendBatch(sessionID string, startIndex int, ops []rubiks.Operation) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		appliedAt := time.Now().UTC().Format(time.RFC3339)
		for i, op := range ops {
			cols, err := encodeOperation(op)
			if err != nil {
				return err
			}
			_, err = tx.Exec(`
				INSERT INTO session_moves (session_id, move_index, kind, face, quarter_turns, depth, layer, end_layer, notation, applied_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, cols.kind, cols.face, cols.turns, cols.depth, cols.layer, cols.endLayer, cols.notation, appliedAt)
			if err != nil {
				return fmt.Errorf("failed to append move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// ListBySession retrieves all moves for a session in applied order.
func (r *MoveRepository) ListBySession(sessionID string) ([]MoveRow, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, kind, face, quarter_turns, depth, layer, end_layer, notation, applied_at
		FROM session_moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRow
	for rows.Next() {
		var m MoveRow
		var appliedAtStr string

		err := rows.Scan(
			&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Kind, &m.Face,
			&m.QuarterTurns, &m.Depth, &m.Layer, &m.EndLayer, &m.Notation, &appliedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}

		m.AppliedAt, _ = time.Parse(time.RFC3339, appliedAtStr)
		moves = append(moves, m)
	}

	return moves, nil
}

// CountBySession returns the number of journaled moves for a session.
func (r *MoveRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM session_moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// NextIndex returns the next move index for a session.
func (r *MoveRepository) NextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM session_moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}
