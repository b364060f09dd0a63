// Package analysis derives statistics and repeated patterns from
// journaled move sequences.
package analysis

import (
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
)

// SessionSummary contains aggregate statistics for one session's moves.
type SessionSummary struct {
	SessionID      string               `json:"session_id,omitempty"`
	TotalMoves     int                  `json:"total_moves"`
	QuarterTurns   int                  `json:"quarter_turns"`
	Rotations      int                  `json:"rotations"`
	OptimizedMoves int                  `json:"optimized_moves"`
	Efficiency     float64              `json:"efficiency"`
	FaceCounts     map[string]int       `json:"face_counts"`
	KindCounts     map[journal.Kind]int `json:"kind_counts"`
	MostUsedFace   string               `json:"most_used_face,omitempty"`
}

// Summarize computes aggregate statistics over a session's rows.
func Summarize(rows []journal.MoveRow) *SessionSummary {
	s := &SessionSummary{
		FaceCounts: make(map[string]int),
		KindCounts: make(map[journal.Kind]int),
	}
	if len(rows) > 0 {
		s.SessionID = rows[0].SessionID
	}

	for _, row := range rows {
		s.TotalMoves++
		s.KindCounts[row.Kind]++

		if row.Kind == journal.KindRotation {
			s.Rotations++
			continue
		}

		s.FaceCounts[row.Face]++
		s.QuarterTurns += quarterTurnMetric(row.QuarterTurns)
	}

	for face, count := range s.FaceCounts {
		best := s.FaceCounts[s.MostUsedFace]
		if count > best || (count == best && (s.MostUsedFace == "" || face < s.MostUsedFace)) {
			s.MostUsedFace = face
		}
	}

	s.OptimizedMoves = OptimizedLength(rows)
	if s.TotalMoves > 0 {
		s.Efficiency = float64(s.OptimizedMoves) / float64(s.TotalMoves)
	}

	return s
}

// OptimizedLength returns the move count after merging adjacent turns
// of the same layer set and dropping full cancellations. A merge can
// expose a new adjacent pair, so the pass cascades.
func OptimizedLength(rows []journal.MoveRow) int {
	var stack []journal.MoveRow

	for _, row := range rows {
		if len(stack) == 0 || !sameLayers(stack[len(stack)-1], row) {
			stack = append(stack, row)
			continue
		}

		top := &stack[len(stack)-1]
		turns := (normTurns(top.QuarterTurns) + normTurns(row.QuarterTurns)) % 4
		if turns == 0 {
			stack = stack[:len(stack)-1]
		} else {
			top.QuarterTurns = turns
		}
	}

	return len(stack)
}
