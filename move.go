package rubiks

import "fmt"

// Operation is anything realizable as a tile permutation of an n×n×n cube:
// the face-turn moves, whole-cube rotations, and tile permutations
// themselves. Composition, application to cube states and history tracking
// are all written once against this interface.
type Operation interface {
	// TilePerm returns the operation's effect on an n×n×n cube.
	TilePerm(n int) TilePerm
}

// BasicMove turns the outer layer of a single face.
type BasicMove struct {
	Face  Face
	Angle Angle
}

// String returns the move in standard notation: R, R', R2.
func (m BasicMove) String() string {
	return m.Face.String() + m.Angle.notationSuffix()
}

// Inverse returns the move undoing m.
func (m BasicMove) Inverse() BasicMove {
	return BasicMove{Face: m.Face, Angle: m.Angle.Negate()}
}

// WideMove turns the outermost Depth layers of a face together. Depth 1 is
// the plain face move; Depth n turns the whole cube.
type WideMove struct {
	Face  Face
	Angle Angle
	Depth int
}

// String returns the move in standard notation: Rw for two layers, 3Rw for
// three, and so on. Depth 1 prints as the plain face move.
func (m WideMove) String() string {
	suffix := m.Angle.notationSuffix()
	switch {
	case m.Depth <= 1:
		return m.Face.String() + suffix
	case m.Depth == 2:
		return m.Face.String() + "w" + suffix
	default:
		return fmt.Sprintf("%d%sw%s", m.Depth, m.Face, suffix)
	}
}

// Inverse returns the move undoing m.
func (m WideMove) Inverse() WideMove {
	return WideMove{Face: m.Face, Angle: m.Angle.Negate(), Depth: m.Depth}
}

// SliceMove turns a single layer counted from a face. Layers are 1-indexed:
// layer 1 is the face's own outer layer.
type SliceMove struct {
	Face  Face
	Angle Angle
	Layer int
}

// String returns the move in standard notation: 3R is the third layer in
// from the right face. Layer 1 prints as the plain face move.
func (m SliceMove) String() string {
	if m.Layer <= 1 {
		return m.Face.String() + m.Angle.notationSuffix()
	}
	return fmt.Sprintf("%d%s%s", m.Layer, m.Face, m.Angle.notationSuffix())
}

// Inverse returns the move undoing m.
func (m SliceMove) Inverse() SliceMove {
	return SliceMove{Face: m.Face, Angle: m.Angle.Negate(), Layer: m.Layer}
}

// RangeMove turns the block of layers StartLayer through EndLayer together,
// 1-indexed and inclusive. StartLayer 1 with EndLayer d is the same move as
// a WideMove of depth d.
type RangeMove struct {
	Face       Face
	Angle      Angle
	StartLayer int
	EndLayer   int
}

// String returns the move in standard notation: 2-3Rw turns the second and
// third layers in from the right face.
func (m RangeMove) String() string {
	return fmt.Sprintf("%d-%d%sw%s", m.StartLayer, m.EndLayer, m.Face, m.Angle.notationSuffix())
}

// Inverse returns the move undoing m.
func (m RangeMove) Inverse() RangeMove {
	return RangeMove{Face: m.Face, Angle: m.Angle.Negate(), StartLayer: m.StartLayer, EndLayer: m.EndLayer}
}

// MiddleSlice selects one of the classic middle-layer moves of an odd cube.
type MiddleSlice int

const (
	MiddleM MiddleSlice = iota // between L and R, turning with L
	MiddleE                    // between U and D, turning with D
	MiddleS                    // between F and B, turning with F
)

// String returns the slice letter: M, E or S.
func (m MiddleSlice) String() string {
	switch m {
	case MiddleM:
		return "M"
	case MiddleE:
		return "E"
	case MiddleS:
		return "S"
	default:
		return "?"
	}
}

// face returns the face whose turning sense the slice follows.
func (m MiddleSlice) face() Face {
	switch m {
	case MiddleM:
		return FaceLeft
	case MiddleE:
		return FaceDown
	case MiddleS:
		return FaceFront
	}
	panic("rubiks: invalid middle slice")
}

// MiddleMove turns the central layer of an odd-dimension cube. The layer
// follows the turning sense of the L face for M, the D face for E and the F
// face for S, and no outer face moves.
type MiddleMove struct {
	Slice MiddleSlice
	Angle Angle
}

// String returns the move in standard notation: M, M', E2.
func (m MiddleMove) String() string {
	return m.Slice.String() + m.Angle.notationSuffix()
}

// Inverse returns the move undoing m.
func (m MiddleMove) Inverse() MiddleMove {
	return MiddleMove{Slice: m.Slice, Angle: m.Angle.Negate()}
}
