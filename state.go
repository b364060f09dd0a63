package rubiks

import "strings"

// CubeState is the color grid of an n×n×n cube, one n×n grid per face.
// States are immutable: Apply returns a new state and never writes the
// receiver.
type CubeState struct {
	n     int
	faces [6][][]Color
}

// NewSolved returns the solved state of an n×n×n cube in the given scheme.
func NewSolved(n int, scheme Scheme) *CubeState {
	s := &CubeState{n: n}
	for _, f := range Faces {
		g := make([][]Color, n)
		for r := 0; r < n; r++ {
			g[r] = make([]Color, n)
			for c := 0; c < n; c++ {
				g[r][c] = scheme.At(f)
			}
		}
		s.faces[f] = g
	}
	return s
}

// Dimension returns the cube size n.
func (s *CubeState) Dimension() int {
	return s.n
}

// At returns the color at a tile position.
func (s *CubeState) At(pos TilePos) Color {
	return s.faces[pos.Face][pos.Row][pos.Col]
}

// Apply returns the state after performing the operation. The color arriving
// at each position is pulled from the position that the permutation carries
// there, so composing operations first and applying once gives the same
// state as applying each operation in turn.
func (s *CubeState) Apply(op Operation) *CubeState {
	inv := op.TilePerm(s.n).Inverse()
	out := &CubeState{n: s.n}
	for _, f := range Faces {
		g := make([][]Color, s.n)
		for r := 0; r < s.n; r++ {
			g[r] = make([]Color, s.n)
			for c := 0; c < s.n; c++ {
				src := inv.At(TilePos{Face: f, Row: r, Col: c})
				g[r][c] = s.faces[src.Face][src.Row][src.Col]
			}
		}
		out.faces[f] = g
	}
	return out
}

// IsSolvedIn reports whether every face uniformly shows the scheme's color
// for that face.
func (s *CubeState) IsSolvedIn(scheme Scheme) bool {
	for _, f := range Faces {
		want := scheme.At(f)
		for r := 0; r < s.n; r++ {
			for c := 0; c < s.n; c++ {
				if s.faces[f][r][c] != want {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved reports whether every face is uniform, whatever scheme the cube
// was built with.
func (s *CubeState) IsSolved() bool {
	if s.n == 0 {
		return true
	}
	var candidate Scheme
	for _, f := range Faces {
		candidate[f] = s.faces[f][0][0]
	}
	return s.IsSolvedIn(candidate)
}

// IsSolvedUpToRotationIn reports whether some whole-cube rotation carries
// the state to the scheme's solved state. The rotation is found directly
// rather than by trying all 24: the color showing up selects the rotation
// bringing its scheme face up, then the color showing front selects the turn
// about the vertical axis.
func (s *CubeState) IsSolvedUpToRotationIn(scheme Scheme) bool {
	if s.n == 0 {
		return true
	}

	upFace, ok := scheme.FaceOf(s.faces[FaceUp][0][0])
	if !ok {
		return false
	}
	first := IdentityRotation
	switch upFace {
	case FaceDown:
		first = X2
	case FaceLeft:
		first = Z
	case FaceRight:
		first = ZPrime
	case FaceFront:
		first = X
	case FaceBack:
		first = XPrime
	}
	tilted := scheme.Rotated(first)

	frontFace, ok := tilted.FaceOf(s.faces[FaceFront][0][0])
	if !ok {
		return false
	}
	second := IdentityRotation
	switch frontFace {
	case FaceFront:
	case FaceBack:
		second = Y2
	case FaceLeft:
		second = YPrime
	case FaceRight:
		second = Y
	default:
		return false
	}
	return s.IsSolvedIn(tilted.Rotated(second))
}

// String renders the state as a text net: the up face on top, the left,
// front, right and back faces side by side, and the down face below.
func (s *CubeState) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", s.n)
	for r := 0; r < s.n; r++ {
		b.WriteString(indent)
		for c := 0; c < s.n; c++ {
			b.WriteString(s.faces[FaceUp][r][c].String() + " ")
		}
		b.WriteString("\n")
	}
	for r := 0; r < s.n; r++ {
		for _, f := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			for c := 0; c < s.n; c++ {
				b.WriteString(s.faces[f][r][c].String() + " ")
			}
		}
		b.WriteString("\n")
	}
	for r := 0; r < s.n; r++ {
		b.WriteString(indent)
		for c := 0; c < s.n; c++ {
			b.WriteString(s.faces[FaceDown][r][c].String() + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
