package rubiks

import "fmt"

// TilePos identifies one sticker location: a face plus zero-indexed row and
// column within that face's grid. Row 0 is the face's north edge and column 0
// its west edge, in the face's own frame.
type TilePos struct {
	Face Face
	Row  int
	Col  int
}

// String returns a compact form such as "U(0,2)".
func (p TilePos) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.Face, p.Row, p.Col)
}

// TileGrid holds one face's share of a tile permutation: entry [row][col] is
// the destination of the tile at (row, col) on that face.
type TileGrid [][]TilePos

// TilePerm is a bijection over all 6n² tile positions of an n×n×n cube.
// Permutations form a group: Compose follows the apply-then convention, and
// Inverse undoes a permutation exactly. The zero value is not useful; build
// permutations with IdentityPerm or through an Operation.
type TilePerm struct {
	n     int
	grids [6]TileGrid
}

// IdentityPerm returns the permutation of an n×n×n cube that fixes every
// tile position.
func IdentityPerm(n int) TilePerm {
	p := TilePerm{n: n}
	for _, f := range Faces {
		g := make(TileGrid, n)
		for r := 0; r < n; r++ {
			g[r] = make([]TilePos, n)
			for c := 0; c < n; c++ {
				g[r][c] = TilePos{Face: f, Row: r, Col: c}
			}
		}
		p.grids[f] = g
	}
	return p
}

// Dimension returns the cube size n the permutation is defined over.
func (p TilePerm) Dimension() int {
	return p.n
}

// At returns the position that pos is carried to.
func (p TilePerm) At(pos TilePos) TilePos {
	return p.grids[pos.Face][pos.Row][pos.Col]
}

// Compose returns the permutation equivalent to applying p first and then q.
// Both permutations must be defined over the same cube size.
func (p TilePerm) Compose(q TilePerm) TilePerm {
	if p.n != q.n {
		panic(fmt.Sprintf("rubiks: composing tile permutations of sizes %d and %d", p.n, q.n))
	}
	out := TilePerm{n: p.n}
	for _, f := range Faces {
		g := make(TileGrid, p.n)
		for r := 0; r < p.n; r++ {
			g[r] = make([]TilePos, p.n)
			for c := 0; c < p.n; c++ {
				g[r][c] = q.At(p.grids[f][r][c])
			}
		}
		out.grids[f] = g
	}
	return out
}

// Inverse returns the permutation undoing p.
func (p TilePerm) Inverse() TilePerm {
	out := IdentityPerm(p.n)
	for _, f := range Faces {
		for r := 0; r < p.n; r++ {
			for c := 0; c < p.n; c++ {
				dst := p.grids[f][r][c]
				out.grids[dst.Face][dst.Row][dst.Col] = TilePos{Face: f, Row: r, Col: c}
			}
		}
	}
	return out
}

// Equal reports whether p and q have the same size and map every position
// identically.
func (p TilePerm) Equal(q TilePerm) bool {
	if p.n != q.n {
		return false
	}
	for _, f := range Faces {
		for r := 0; r < p.n; r++ {
			for c := 0; c < p.n; c++ {
				if p.grids[f][r][c] != q.grids[f][r][c] {
					return false
				}
			}
		}
	}
	return true
}

// AgreeOn reports whether p and q map every position of the restriction to
// the same destination. Positions outside the restriction are not compared.
func (p TilePerm) AgreeOn(q TilePerm, res Restriction) bool {
	if p.n != q.n {
		return false
	}
	for pos := range res.Positions(p.n) {
		if p.At(pos) != q.At(pos) {
			return false
		}
	}
	return true
}
