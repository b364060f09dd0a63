package rubiks

// CubeRotation is one of the 24 rotational symmetries of the cube,
// represented as a permutation of the four main diagonals: r[d] is the
// diagonal that d is carried to. Every bijection of the four diagonals is
// realizable as a rotation, so the representation is exact.
type CubeRotation [4]CubeDiag

// The identity rotation and the nine quarter-, half- and three-quarter-turn
// generators about the three axes. X turns about the left-right axis the way
// an R move does (front goes to up), Y about the up-down axis the way a U
// move does (front goes to left), and Z about the front-back axis the way an
// F move does (up goes to right). The tables are validated against the group
// invariants in the tests rather than trusted as transcribed.
var (
	IdentityRotation = CubeRotation{DiagUFR, DiagUFL, DiagUBR, DiagUBL}

	X      = CubeRotation{DiagUBR, DiagUBL, DiagUFL, DiagUFR}
	X2     = CubeRotation{DiagUFL, DiagUFR, DiagUBL, DiagUBR}
	XPrime = CubeRotation{DiagUBL, DiagUBR, DiagUFR, DiagUFL}

	Y      = CubeRotation{DiagUFL, DiagUBL, DiagUFR, DiagUBR}
	Y2     = CubeRotation{DiagUBL, DiagUBR, DiagUFL, DiagUFR}
	YPrime = CubeRotation{DiagUBR, DiagUFR, DiagUBL, DiagUFL}

	Z      = CubeRotation{DiagUBL, DiagUFR, DiagUFL, DiagUBR}
	Z2     = CubeRotation{DiagUBR, DiagUBL, DiagUFR, DiagUFL}
	ZPrime = CubeRotation{DiagUFL, DiagUBR, DiagUBL, DiagUFR}
)

// Apply returns the diagonal that d is carried to.
func (r CubeRotation) Apply(d CubeDiag) CubeDiag {
	return r[d]
}

// Compose returns the rotation that applies r first and then s, so that
// (r.Compose(s))[d] == s[r[d]].
func (r CubeRotation) Compose(s CubeRotation) CubeRotation {
	var out CubeRotation
	for _, d := range Diagonals {
		out[d] = s[r[d]]
	}
	return out
}

// Inverse returns the rotation undoing r.
func (r CubeRotation) Inverse() CubeRotation {
	var out CubeRotation
	for _, d := range Diagonals {
		out[r[d]] = d
	}
	return out
}

// String names the rotation in standard whole-cube notation where possible.
func (r CubeRotation) String() string {
	names := []struct {
		rot  CubeRotation
		name string
	}{
		{IdentityRotation, "id"},
		{X, "x"}, {X2, "x2"}, {XPrime, "x'"},
		{Y, "y"}, {Y2, "y2"}, {YPrime, "y'"},
		{Z, "z"}, {Z2, "z2"}, {ZPrime, "z'"},
	}
	for _, n := range names {
		if r == n.rot {
			return n.name
		}
	}
	return "rotation(" + r[0].String() + " " + r[1].String() + " " + r[2].String() + " " + r[3].String() + ")"
}
