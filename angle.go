package rubiks

// Angle is a quarter-turn multiple, the cyclic group of order four. All
// rotations are measured clockwise as seen from outside the face they act
// on.
type Angle int

const (
	AngleZero Angle = iota
	AngleCW
	AngleHalf
	AngleACW
)

// Angles lists the four angles in clockwise order.
var Angles = []Angle{AngleZero, AngleCW, AngleHalf, AngleACW}

// String returns a short description of the angle.
func (a Angle) String() string {
	switch a {
	case AngleZero:
		return "0"
	case AngleCW:
		return "CW"
	case AngleHalf:
		return "180"
	case AngleACW:
		return "CCW"
	default:
		return "?"
	}
}

// Plus composes two angles.
func (a Angle) Plus(b Angle) Angle {
	return Angle((int(a) + int(b)) % 4)
}

// Minus returns the angle separating b from a.
func (a Angle) Minus(b Angle) Angle {
	return Angle(((int(a)-int(b))%4 + 4) % 4)
}

// Negate returns the inverse angle.
func (a Angle) Negate() Angle {
	return Angle((4 - int(a)) % 4)
}

// RotateIndices maps a grid position to its destination when an n-grid is
// rotated by the angle about its center.
func (a Angle) RotateIndices(n, row, col int) (int, int) {
	switch a {
	case AngleZero:
		return row, col
	case AngleCW:
		return col, n - 1 - row
	case AngleHalf:
		return n - 1 - row, n - 1 - col
	default: // AngleACW
		return n - 1 - col, row
	}
}

// notationSuffix is the trailing marker used in move notation.
func (a Angle) notationSuffix() string {
	switch a {
	case AngleZero:
		return "0"
	case AngleCW:
		return ""
	case AngleHalf:
		return "2"
	default: // AngleACW
		return "'"
	}
}
