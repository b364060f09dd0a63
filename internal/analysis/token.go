package analysis

import (
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
)

// Token encoding for n-gram mining. A journal row folds into a single
// byte; distinct moves may collide, so candidates are verified against
// the underlying rows before they are counted together.

var kindOrder = []journal.Kind{
	journal.KindBasic,
	journal.KindWide,
	journal.KindSlice,
	journal.KindRange,
	journal.KindMiddle,
	journal.KindRotation,
}

func kindIndex(k journal.Kind) int {
	for i, kind := range kindOrder {
		if kind == k {
			return i
		}
	}
	return len(kindOrder)
}

// moveToken folds a row's identifying columns into a byte.
func moveToken(row journal.MoveRow) uint8 {
	var face byte
	if row.Face != "" {
		face = row.Face[0]
	}

	v := kindIndex(row.Kind)*131 + int(face)*31 + normTurns(row.QuarterTurns)
	v += row.Depth*53 + row.Layer*59 + row.EndLayer*61
	return uint8(v)
}

// normTurns maps a signed quarter-turn count into [0, 3].
func normTurns(q int) int {
	return ((q % 4) + 4) % 4
}

// quarterTurnMetric weighs a move in the quarter-turn metric: a half
// turn counts twice, either quarter turn counts once.
func quarterTurnMetric(q int) int {
	switch normTurns(q) {
	case 2:
		return 2
	case 0:
		return 0
	default:
		return 1
	}
}

// sameMove reports whether two rows denote the same move.
func sameMove(a, b journal.MoveRow) bool {
	return sameLayers(a, b) && normTurns(a.QuarterTurns) == normTurns(b.QuarterTurns)
}

// sameLayers reports whether two rows turn the same set of layers,
// ignoring the amount turned.
func sameLayers(a, b journal.MoveRow) bool {
	return a.Kind == b.Kind &&
		a.Face == b.Face &&
		a.Depth == b.Depth &&
		a.Layer == b.Layer &&
		a.EndLayer == b.EndLayer
}
