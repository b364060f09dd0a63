package rubiks

import "iter"

// Restriction is a lazily enumerable subset of the tile positions of an
// n×n×n cube. Implementations are finite and restartable: every call to
// Positions starts the same traversal over again.
type Restriction interface {
	Positions(n int) iter.Seq[TilePos]
}

// Slice names the set of tiles at a fixed depth from a reference face.
// Index 0 is the face's own tiles plus the bordering run of each of its four
// neighbours; index n-1 names the same set as slice 0 of the opposite face;
// indices between are rings of 4n edge tiles holding no face tiles.
type Slice struct {
	Face  Face
	Index int
}

// Positions enumerates the slice. An end slice yields the face's n² tiles in
// row-major order and then the four neighbouring runs in North, East, South,
// West order; an interior slice yields the four runs only. Index n-1 is
// enumerated as slice 0 of the opposite face, in that face's frame. Indices
// outside [0, n) yield nothing.
func (s Slice) Positions(n int) iter.Seq[TilePos] {
	face, depth := s.Face, s.Index
	if depth == n-1 && depth != 0 {
		face, depth = face.Opposite(), 0
	}
	return func(yield func(TilePos) bool) {
		if depth < 0 || depth >= n {
			return
		}
		if depth == 0 {
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					if !yield(TilePos{Face: face, Row: r, Col: c}) {
						return
					}
				}
			}
		}
		for _, side := range Sides {
			for i := 0; i < n; i++ {
				if !yield(sideTile(n, face, side, depth, i)) {
					return
				}
			}
		}
	}
}

// SliceRange names the union of the consecutive slices Start through End
// (0-based, inclusive) from a reference face. Start > End names the empty
// set.
type SliceRange struct {
	Face  Face
	Start int
	End   int
}

// Positions enumerates each slice of the range in order, exhausting one
// before advancing to the next.
func (r SliceRange) Positions(n int) iter.Seq[TilePos] {
	return func(yield func(TilePos) bool) {
		for idx := r.Start; idx <= r.End; idx++ {
			for pos := range (Slice{Face: r.Face, Index: idx}).Positions(n) {
				if !yield(pos) {
					return
				}
			}
		}
	}
}
