package rubiks

// Predefined moves for convenience.
// Use these instead of constructing BasicMove structs manually.
//
// Example:
//
//	state = state.Apply(rubiks.Compose(3, rubiks.R, rubiks.U, rubiks.RPrime, rubiks.UPrime))
var (
	// Right face moves
	R      = BasicMove{Face: FaceRight, Angle: AngleCW}   // Right clockwise
	RPrime = BasicMove{Face: FaceRight, Angle: AngleACW}  // Right counter-clockwise
	R2     = BasicMove{Face: FaceRight, Angle: AngleHalf} // Right 180

	// Left face moves
	L      = BasicMove{Face: FaceLeft, Angle: AngleCW}   // Left clockwise
	LPrime = BasicMove{Face: FaceLeft, Angle: AngleACW}  // Left counter-clockwise
	L2     = BasicMove{Face: FaceLeft, Angle: AngleHalf} // Left 180

	// Up face moves
	U      = BasicMove{Face: FaceUp, Angle: AngleCW}   // Up clockwise
	UPrime = BasicMove{Face: FaceUp, Angle: AngleACW}  // Up counter-clockwise
	U2     = BasicMove{Face: FaceUp, Angle: AngleHalf} // Up 180

	// Down face moves
	D      = BasicMove{Face: FaceDown, Angle: AngleCW}   // Down clockwise
	DPrime = BasicMove{Face: FaceDown, Angle: AngleACW}  // Down counter-clockwise
	D2     = BasicMove{Face: FaceDown, Angle: AngleHalf} // Down 180

	// Front face moves
	F      = BasicMove{Face: FaceFront, Angle: AngleCW}   // Front clockwise
	FPrime = BasicMove{Face: FaceFront, Angle: AngleACW}  // Front counter-clockwise
	F2     = BasicMove{Face: FaceFront, Angle: AngleHalf} // Front 180

	// Back face moves
	B      = BasicMove{Face: FaceBack, Angle: AngleCW}   // Back clockwise
	BPrime = BasicMove{Face: FaceBack, Angle: AngleACW}  // Back counter-clockwise
	B2     = BasicMove{Face: FaceBack, Angle: AngleHalf} // Back 180
)

// Middle layer moves for odd-dimension cubes.
var (
	M      = MiddleMove{Slice: MiddleM, Angle: AngleCW}   // M follows L
	MPrime = MiddleMove{Slice: MiddleM, Angle: AngleACW}  // M' follows L'
	M2     = MiddleMove{Slice: MiddleM, Angle: AngleHalf} // M 180
	E      = MiddleMove{Slice: MiddleE, Angle: AngleCW}   // E follows D
	EPrime = MiddleMove{Slice: MiddleE, Angle: AngleACW}  // E' follows D'
	E2     = MiddleMove{Slice: MiddleE, Angle: AngleHalf} // E 180
	S      = MiddleMove{Slice: MiddleS, Angle: AngleCW}   // S follows F
	SPrime = MiddleMove{Slice: MiddleS, Angle: AngleACW}  // S' follows F'
	S2     = MiddleMove{Slice: MiddleS, Angle: AngleHalf} // S 180
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Operation{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Operation{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Operation{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
