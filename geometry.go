package rubiks

// Face identifies one of the six faces of the cube.
type Face int

const (
	FaceUp Face = iota
	FaceDown
	FaceLeft
	FaceRight
	FaceFront
	FaceBack
)

// Faces lists all six faces in canonical order.
var Faces = []Face{FaceUp, FaceDown, FaceLeft, FaceRight, FaceFront, FaceBack}

// String returns the standard single-letter name of the face.
func (f Face) String() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceLeft:
		return "L"
	case FaceRight:
		return "R"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceUp:
		return FaceDown
	case FaceDown:
		return FaceUp
	case FaceLeft:
		return FaceRight
	case FaceRight:
		return FaceLeft
	case FaceFront:
		return FaceBack
	default:
		return FaceFront
	}
}

// FaceSide is a cardinal direction in a face's own grid frame. North is the
// top edge of the grid (row 0), East the right edge, and so on. The four
// sides advance clockwise: North, East, South, West.
type FaceSide int

const (
	SideNorth FaceSide = iota
	SideEast
	SideSouth
	SideWest
)

// Sides lists the four sides in clockwise order.
var Sides = []FaceSide{SideNorth, SideEast, SideSouth, SideWest}

// String returns the single-letter name of the side.
func (s FaceSide) String() string {
	switch s {
	case SideNorth:
		return "N"
	case SideEast:
		return "E"
	case SideSouth:
		return "S"
	case SideWest:
		return "W"
	default:
		return "?"
	}
}

// Plus advances the side clockwise by the given angle: a quarter turn takes
// North to East, East to South, and so on around.
func (s FaceSide) Plus(a Angle) FaceSide {
	return FaceSide((int(s) + int(a)) % 4)
}

// positionAt returns the (row, col) of the i-th tile along this side of an
// n-grid at the given depth from the edge. The four sides are parameterized
// clockwise in the grid's own frame, so at depth 0 each side's last position
// is the first position of the next side around.
func (s FaceSide) positionAt(n, depth, i int) (int, int) {
	switch s {
	case SideNorth:
		return depth, i
	case SideEast:
		return i, n - 1 - depth
	case SideSouth:
		return n - 1 - depth, n - 1 - i
	default: // SideWest
		return n - 1 - i, depth
	}
}

// neighbor pairs an adjacent face with the side of that face along the
// shared edge.
type neighbor struct {
	face Face
	side FaceSide
}

// faceNeighbors records, for each side of each face, which face lies across
// that edge and which of the neighbor's own sides is shared. The table is
// symmetric: if A's side s touches B's side t, then B's side t touches A's
// side s.
var faceNeighbors = [6][4]neighbor{
	FaceUp: {
		SideNorth: {FaceBack, SideSouth},
		SideEast:  {FaceRight, SideNorth},
		SideSouth: {FaceFront, SideNorth},
		SideWest:  {FaceLeft, SideNorth},
	},
	FaceDown: {
		SideNorth: {FaceFront, SideSouth},
		SideEast:  {FaceRight, SideSouth},
		SideSouth: {FaceBack, SideNorth},
		SideWest:  {FaceLeft, SideSouth},
	},
	FaceLeft: {
		SideNorth: {FaceUp, SideWest},
		SideEast:  {FaceFront, SideWest},
		SideSouth: {FaceDown, SideWest},
		SideWest:  {FaceBack, SideWest},
	},
	FaceRight: {
		SideNorth: {FaceUp, SideEast},
		SideEast:  {FaceBack, SideEast},
		SideSouth: {FaceDown, SideEast},
		SideWest:  {FaceFront, SideEast},
	},
	FaceFront: {
		SideNorth: {FaceUp, SideSouth},
		SideEast:  {FaceRight, SideWest},
		SideSouth: {FaceDown, SideNorth},
		SideWest:  {FaceLeft, SideEast},
	},
	FaceBack: {
		SideNorth: {FaceDown, SideSouth},
		SideEast:  {FaceRight, SideEast},
		SideSouth: {FaceUp, SideNorth},
		SideWest:  {FaceLeft, SideWest},
	},
}

// Neighbor returns the face across the given side, together with the side of
// that face along the shared edge.
func (f Face) Neighbor(s FaceSide) (Face, FaceSide) {
	nb := faceNeighbors[f][s]
	return nb.face, nb.side
}

// sideTile resolves the i-th tile along side s of face f at the given depth.
// The tile lives on the neighboring face, addressed in that face's own frame.
func sideTile(n int, f Face, s FaceSide, depth, i int) TilePos {
	nb, shared := f.Neighbor(s)
	row, col := shared.positionAt(n, depth, i)
	return TilePos{Face: nb, Row: row, Col: col}
}

// CubeCorner names one of the eight vertices of the cube by half-space
// membership: Up selects the upper half, Left the left half, Front the
// front half.
type CubeCorner struct {
	Up    bool
	Left  bool
	Front bool
}

// Diagonal returns the main diagonal through this corner. A corner and its
// antipode lie on the same diagonal, so the corner is first normalized to
// its upper representative by flipping Left and Front when Up is unset.
func (c CubeCorner) Diagonal() CubeDiag {
	front, left := c.Front, c.Left
	if !c.Up {
		front = !front
		left = !left
	}
	switch {
	case front && left:
		return DiagUFL
	case front && !left:
		return DiagUFR
	case !front && left:
		return DiagUBL
	default:
		return DiagUBR
	}
}

// OnFace reports whether the corner is one of the four vertices of the face.
func (c CubeCorner) OnFace(f Face) bool {
	switch f {
	case FaceUp:
		return c.Up
	case FaceDown:
		return !c.Up
	case FaceLeft:
		return c.Left
	case FaceRight:
		return !c.Left
	case FaceFront:
		return c.Front
	default:
		return !c.Front
	}
}

// CubeDiag identifies one of the four main diagonals of the cube, named by
// its upper corner.
type CubeDiag int

const (
	DiagUFR CubeDiag = iota
	DiagUFL
	DiagUBR
	DiagUBL
)

// Each diagonal can also be named by its lower corner.
const (
	DiagDBL = DiagUFR
	DiagDBR = DiagUFL
	DiagDFL = DiagUBR
	DiagDFR = DiagUBL
)

// Diagonals lists all four main diagonals.
var Diagonals = []CubeDiag{DiagUFR, DiagUFL, DiagUBR, DiagUBL}

// String returns the name of the diagonal's upper corner.
func (d CubeDiag) String() string {
	switch d {
	case DiagUFR:
		return "UFR"
	case DiagUFL:
		return "UFL"
	case DiagUBR:
		return "UBR"
	case DiagUBL:
		return "UBL"
	default:
		return "?"
	}
}

// faceDiagonalCycle records, for each face, the diagonals met at its four
// corners traversed clockwise as seen from outside the face, normalized to
// start at the UFL diagonal. A face touches each diagonal exactly once, and
// the six trailing triples are the six distinct permutations of the
// remaining three diagonals, which is what makes face identification in the
// rotation-to-FacePerm derivation unambiguous.
var faceDiagonalCycle = [6][4]CubeDiag{
	FaceUp:    {DiagUFL, DiagUBL, DiagUBR, DiagUFR},
	FaceDown:  {DiagUFL, DiagUFR, DiagUBR, DiagUBL},
	FaceLeft:  {DiagUFL, DiagUBR, DiagUFR, DiagUBL},
	FaceRight: {DiagUFL, DiagUBL, DiagUFR, DiagUBR},
	FaceFront: {DiagUFL, DiagUFR, DiagUBL, DiagUBR},
	FaceBack:  {DiagUFL, DiagUBR, DiagUBL, DiagUFR},
}

// DiagonalCycle returns the face's four corner diagonals in clockwise order
// as seen from outside, starting from the UFL diagonal.
func (f Face) DiagonalCycle() [4]CubeDiag {
	return faceDiagonalCycle[f]
}

// facePrincipalCorner records each face's grid-origin corner, the vertex at
// (row 0, col 0) of the face's frame.
var facePrincipalCorner = [6]CubeCorner{
	FaceUp:    {Up: true, Left: true, Front: false},  // UBL
	FaceDown:  {Up: false, Left: true, Front: true},  // DFL
	FaceLeft:  {Up: true, Left: true, Front: false},  // UBL
	FaceRight: {Up: true, Left: false, Front: true},  // UFR
	FaceFront: {Up: true, Left: true, Front: true},   // UFL
	FaceBack:  {Up: false, Left: true, Front: false}, // DBL
}

// PrincipalCorner returns the corner at the origin of the face's grid frame.
func (f Face) PrincipalCorner() CubeCorner {
	return facePrincipalCorner[f]
}

// PrincipalDiagonal returns the diagonal through the face's principal
// corner. It anchors the orientation bookkeeping when whole-cube rotations
// are converted to tile permutations.
func (f Face) PrincipalDiagonal() CubeDiag {
	return facePrincipalCorner[f].Diagonal()
}

// diagonalAngle returns the cyclic position of diagonal d within the face's
// clockwise diagonal cycle, expressed as the angle separating it from the
// cycle's UFL anchor.
func diagonalAngle(f Face, d CubeDiag) Angle {
	cyc := faceDiagonalCycle[f]
	for i, x := range cyc {
		if x == d {
			return Angle(i)
		}
	}
	panic("rubiks: diagonal missing from face cycle")
}
