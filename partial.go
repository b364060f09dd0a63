package rubiks

// PartialTilePerm is a sparse permutation over tile positions: any position
// absent from the map is fixed. Its key set always equals its value set, so
// a partial permutation only rearranges positions within its own domain.
// Partial permutations are scratch values used while compiling moves and are
// always extended to a full TilePerm before leaving the package.
type PartialTilePerm map[TilePos]TilePos

// Compose returns the partial permutation equivalent to applying p first and
// then q. Positions mapped by p to somewhere outside q's domain pass through
// unchanged, and positions only q knows about are carried over.
func (p PartialTilePerm) Compose(q PartialTilePerm) PartialTilePerm {
	out := make(PartialTilePerm, len(p)+len(q))
	for k, v := range p {
		if w, ok := q[v]; ok {
			out[k] = w
		} else {
			out[k] = v
		}
	}
	for k, v := range q {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Inverse returns the partial permutation with every pair reversed.
func (p PartialTilePerm) Inverse() PartialTilePerm {
	out := make(PartialTilePerm, len(p))
	for k, v := range p {
		out[v] = k
	}
	return out
}

// Complete extends the partial permutation to a full permutation of an
// n×n×n cube, fixing every position it does not mention.
func (p PartialTilePerm) Complete(n int) TilePerm {
	out := IdentityPerm(n)
	for k, v := range p {
		out.grids[k.Face][k.Row][k.Col] = v
	}
	return out
}

// rotateFaceOnly builds the partial permutation that turns the n² tiles of a
// single face in place by the given angle, touching no other face.
func rotateFaceOnly(n int, f Face, a Angle) PartialTilePerm {
	p := make(PartialTilePerm, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			nr, nc := a.RotateIndices(n, r, c)
			p[TilePos{Face: f, Row: r, Col: c}] = TilePos{Face: f, Row: nr, Col: nc}
		}
	}
	return p
}

// rotateOutsideSlice builds the partial permutation cycling the four side
// runs of a slice. Each run of n tiles at the slice's depth moves onto the
// side the given angle away clockwise, same depth, same position along the
// run. Runs are parameterized clockwise as seen from the slice's face, so
// corresponding indices line up across sides.
func rotateOutsideSlice(n int, s Slice, a Angle) PartialTilePerm {
	p := make(PartialTilePerm, 4*n)
	for _, side := range Sides {
		dst := side.Plus(a)
		for i := 0; i < n; i++ {
			p[sideTile(n, s.Face, side, s.Index, i)] = sideTile(n, s.Face, dst, s.Index, i)
		}
	}
	return p
}
