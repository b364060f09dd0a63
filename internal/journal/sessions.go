package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

// ErrBadScheme reports a scheme column that does not decode to six colors.
var ErrBadScheme = errors.New("journal: malformed scheme encoding")

// EncodeScheme packs a scheme into the six-letter form stored in the sessions
// table, one color letter per face in U D L R F B order.
func EncodeScheme(s rubiks.Scheme) string {
	var b strings.Builder
	for _, f := range rubiks.Faces {
		b.WriteString(s.At(f).String())
	}
	return b.String()
}

// DecodeScheme unpacks a six-letter scheme encoding.
func DecodeScheme(enc string) (rubiks.Scheme, error) {
	var s rubiks.Scheme
	if len(enc) != len(rubiks.Faces) {
		return s, ErrBadScheme
	}
	for i, f := range rubiks.Faces {
		c, ok := colorFromLetter(enc[i : i+1])
		if !ok {
			return s, ErrBadScheme
		}
		s[f] = c
	}
	return s, nil
}

func colorFromLetter(letter string) (rubiks.Color, bool) {
	for _, c := range rubiks.Colors {
		if c.String() == letter {
			return c, true
		}
	}
	return 0, false
}

// Session represents a recorded session in the database.
type Session struct {
	SessionID string
	Dimension int
	Scheme    string
	CreatedAt time.Time
	EndedAt   *time.Time
	MoveCount int
	Solved    bool
}

// ColorScheme decodes the stored scheme column.
func (s *Session) ColorScheme() (rubiks.Scheme, error) {
	return DecodeScheme(s.Scheme)
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session and returns its ID.
func (r *SessionRepository) Create(dimension int, scheme rubiks.Scheme) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, dimension, scheme, created_at)
		VALUES (?, ?, ?, ?)
	`, id, dimension, EncodeScheme(scheme), createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID, nil when absent.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var createdAtStr string
	var endedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT session_id, dimension, scheme, created_at, ended_at, move_count, solved
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&s.SessionID, &s.Dimension, &s.Scheme,
		&createdAtStr, &endedAtStr, &s.MoveCount, &s.Solved,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

// GetLast retrieves the most recently created session.
func (r *SessionRepository) GetLast() (*Session, error) {
	var sessionID string
	err := r.db.QueryRow(`
		SELECT session_id FROM sessions
		ORDER BY created_at DESC, session_id DESC
		LIMIT 1
	`).Scan(&sessionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return r.Get(sessionID)
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, dimension, scheme, created_at, ended_at, move_count, solved
		FROM sessions
		ORDER BY created_at DESC, session_id DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var createdAtStr string
		var endedAtStr sql.NullString

		err := rows.Scan(
			&s.SessionID, &s.Dimension, &s.Scheme,
			&createdAtStr, &endedAtStr, &s.MoveCount, &s.Solved,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		if endedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, endedAtStr.String)
			s.EndedAt = &t
		}

		sessions = append(sessions, s)
	}

	return sessions, nil
}

// Finish stamps the session's end time, final move count and solved flag.
func (r *SessionRepository) Finish(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	res, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solved = ?,
		    move_count = (SELECT COUNT(*) FROM session_moves WHERE session_id = ?)
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), solved, sessionID, sessionID)

	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check finished session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	return nil
}

// Delete deletes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM session_moves WHERE session_id = ?", sessionID); err != nil {
			return fmt.Errorf("failed to delete session moves: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}
