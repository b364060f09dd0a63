// Package rubiks models an NxNxN twisty cube as a group of permutations
// acting on tile positions.
//
// The cube's 24 whole-cube rotations are represented as permutations of its
// 4 main diagonals (CubeRotation). A geometric derivation converts a rotation
// into a permutation of the 6 faces (FacePerm) and, from there, into a full
// permutation of all 6*n*n tile positions (TilePerm). Every face-turn move
// (basic, wide, slice, range and middle) is compiled into a TilePerm by
// composing sparse partial permutations per affected slice, so the same
// machinery works on a cube of any size.
//
// # Features
//
//   - Exact group arithmetic on the 24 cube rotations (compose, inverse)
//   - Face and tile permutations derived geometrically, never hand-tabled
//     per rotation
//   - Move compilation for basic, wide, slice, range and middle moves on
//     any cube size
//   - Sparse partial permutations and lazy slice restrictions
//   - Color schemes, cube states and rotation-invariant solved detection
//   - A Tracker with history, undo and solved-state callbacks
//
// # Quick Start
//
// Build a solved 3x3 cube and turn some faces:
//
//	state := rubiks.NewSolved(3, rubiks.WesternScheme)
//	state = state.Apply(rubiks.R)
//	state = state.Apply(rubiks.U)
//	state = state.Apply(rubiks.RPrime)
//	state = state.Apply(rubiks.UPrime)
//
//	fmt.Println(state)
//	fmt.Println("Solved:", state.IsSolved())
//
// # Operations
//
// Every move type and every CubeRotation implements Operation, the single
// conversion contract into a TilePerm:
//
//	perm := rubiks.Compose(3, rubiks.R, rubiks.U, rubiks.RPrime, rubiks.UPrime)
//	sixth := perm  // the sexy move has order six
//	for i := 0; i < 5; i++ {
//	    sixth = sixth.Compose(perm)
//	}
//	fmt.Println(sixth.Equal(rubiks.IdentityPerm(3)))
//
// Composition follows the apply-then convention throughout: in a*b the left
// operand acts first, so (a*b)[i] = b[a[i]].
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	rubiks.R      // Right clockwise
//	rubiks.RPrime // Right counter-clockwise
//	rubiks.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// Whole-cube rotations are named after standard notation: X, X2, XPrime and
// likewise for Y and Z.
//
// # Bigger Cubes
//
// Wide, slice and range moves address deeper layers of larger cubes:
//
//	state := rubiks.NewSolved(5, rubiks.WesternScheme)
//	state = state.Apply(rubiks.WideMove{Face: rubiks.FaceRight, Angle: rubiks.AngleCW, Depth: 2})
//	state = state.Apply(rubiks.SliceMove{Face: rubiks.FaceUp, Angle: rubiks.AngleHalf, Layer: 3})
//
// Layer numbers are 1-indexed from the named face; a 1x1 and even a 0x0 cube
// are valid degenerate sizes.
package rubiks
