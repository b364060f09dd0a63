package rubiks

import "fmt"

// compileSlices builds the permutation for a face turn touching the 0-based
// slice indices lo through hi inclusive. Slice 0 turns the face itself,
// slice n-1 turns the opposite face the other way, and every touched slice
// cycles its four side runs. Indices outside [0, n) are dropped, so a fully
// clamped or inverted range compiles to the identity.
func compileSlices(n int, f Face, a Angle, lo, hi int) TilePerm {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	part := make(PartialTilePerm)
	for i := lo; i <= hi; i++ {
		if i == 0 {
			part = part.Compose(rotateFaceOnly(n, f, a))
		}
		if i == n-1 {
			part = part.Compose(rotateFaceOnly(n, f.Opposite(), a.Negate()))
		}
		part = part.Compose(rotateOutsideSlice(n, Slice{Face: f, Index: i}, a))
	}
	return part.Complete(n)
}

// TilePerm compiles the move: slice 0 of the face.
func (m BasicMove) TilePerm(n int) TilePerm {
	return compileSlices(n, m.Face, m.Angle, 0, 0)
}

// TilePerm compiles the move: slices 0 through Depth-1 of the face.
func (m WideMove) TilePerm(n int) TilePerm {
	return compileSlices(n, m.Face, m.Angle, 0, m.Depth-1)
}

// TilePerm compiles the move: the single slice Layer-1 of the face.
func (m SliceMove) TilePerm(n int) TilePerm {
	return compileSlices(n, m.Face, m.Angle, m.Layer-1, m.Layer-1)
}

// TilePerm compiles the move: slices StartLayer-1 through EndLayer-1 of the
// face.
func (m RangeMove) TilePerm(n int) TilePerm {
	return compileSlices(n, m.Face, m.Angle, m.StartLayer-1, m.EndLayer-1)
}

// TilePerm compiles the move: the side runs of slice n/2 of the slice's
// reference face cycle, and no face grid turns.
func (m MiddleMove) TilePerm(n int) TilePerm {
	part := rotateOutsideSlice(n, Slice{Face: m.Slice.face(), Index: n / 2}, m.Angle)
	return part.Complete(n)
}

// TilePerm realizes the whole-cube rotation as a tile permutation. Each
// face's grid moves to its destination face, turned in place by the angle
// separating the image of the source principal diagonal from the
// destination's own principal diagonal within the destination's ordering.
func (r CubeRotation) TilePerm(n int) TilePerm {
	fp := r.FacePerm()
	out := TilePerm{n: n}
	for _, f := range Faces {
		dst := fp[f]
		img := diagonalAngle(dst, r[f.PrincipalDiagonal()])
		diff := img.Minus(diagonalAngle(dst, dst.PrincipalDiagonal()))
		g := make(TileGrid, n)
		for row := 0; row < n; row++ {
			g[row] = make([]TilePos, n)
			for col := 0; col < n; col++ {
				nr, nc := diff.RotateIndices(n, row, col)
				g[row][col] = TilePos{Face: dst, Row: nr, Col: nc}
			}
		}
		out.grids[f] = g
	}
	return out
}

// TilePerm returns the permutation itself, checking that it was built for
// the requested cube size.
func (p TilePerm) TilePerm(n int) TilePerm {
	if p.n != n {
		panic(fmt.Sprintf("rubiks: permutation of size %d used on a size %d cube", p.n, n))
	}
	return p
}

// Compose realizes a sequence of operations as a single permutation,
// applying them left to right.
func Compose(n int, ops ...Operation) TilePerm {
	out := IdentityPerm(n)
	for _, op := range ops {
		out = out.Compose(op.TilePerm(n))
	}
	return out
}
