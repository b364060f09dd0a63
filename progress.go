package rubiks

// Progress summarizes how close a state is to a scheme's solved state. It is
// a plain tile-count metric for any cube dimension, not a solving-phase
// detector, and suggests no move sequence.
type Progress struct {
	// MatchingTiles counts tiles showing the scheme's color for their face.
	MatchingTiles int

	// TotalTiles is 6n² for an n×n×n cube.
	TotalTiles int

	// SolvedFaces lists the faces uniformly showing their scheme color.
	SolvedFaces []Face
}

// MeasureProgress compares a state against a scheme tile by tile.
func MeasureProgress(s *CubeState, scheme Scheme) Progress {
	n := s.Dimension()
	p := Progress{TotalTiles: 6 * n * n}
	for _, f := range Faces {
		want := scheme.At(f)
		matched := 0
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if s.At(TilePos{Face: f, Row: r, Col: c}) == want {
					matched++
				}
			}
		}
		p.MatchingTiles += matched
		if matched == n*n {
			p.SolvedFaces = append(p.SolvedFaces, f)
		}
	}
	return p
}

// Fraction returns the matched share in [0, 1]. A zero-dimension cube counts
// as fully matched.
func (p Progress) Fraction() float64 {
	if p.TotalTiles == 0 {
		return 1
	}
	return float64(p.MatchingTiles) / float64(p.TotalTiles)
}

// IsComplete reports whether every tile matches.
func (p Progress) IsComplete() bool {
	return p.MatchingTiles == p.TotalTiles
}
