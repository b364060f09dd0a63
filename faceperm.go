package rubiks

// FacePerm is a permutation of the six faces: p[f] is the face that f is
// carried to. Only the 24 images of cube rotations are legal values; an
// arbitrary bijection of six faces is in general not realizable by turning
// the cube.
type FacePerm [6]Face

// IdentityFacePerm maps every face to itself.
var IdentityFacePerm = FacePerm{FaceUp, FaceDown, FaceLeft, FaceRight, FaceFront, FaceBack}

// FacePerm derives the face permutation realized by the rotation.
//
// For each face the derivation takes the face's clockwise diagonal cycle,
// maps it through the rotation, rotates the image cyclically until the UFL
// diagonal leads, and looks the trailing triple up among the six faces'
// cycles. A legal rotation always produces exactly one match; anything else
// means the geometric tables themselves are inconsistent, which is a fatal
// internal error rather than a recoverable condition.
func (r CubeRotation) FacePerm() FacePerm {
	var fp FacePerm
	for _, f := range Faces {
		cyc := faceDiagonalCycle[f]
		var img [4]CubeDiag
		for i, d := range cyc {
			img[i] = r[d]
		}

		lead := -1
		for i, d := range img {
			if d == DiagUFL {
				lead = i
				break
			}
		}
		if lead < 0 {
			panic("rubiks: rotation image omits the UFL diagonal")
		}

		var triple [3]CubeDiag
		for i := 0; i < 3; i++ {
			triple[i] = img[(lead+1+i)%4]
		}

		matched := false
		for _, g := range Faces {
			gc := faceDiagonalCycle[g]
			if triple[0] == gc[1] && triple[1] == gc[2] && triple[2] == gc[3] {
				if matched {
					panic("rubiks: ambiguous face match in rotation derivation")
				}
				fp[f] = g
				matched = true
			}
		}
		if !matched {
			panic("rubiks: no face matches rotated diagonal ordering")
		}
	}
	return fp
}

// Apply returns the face that f is carried to.
func (p FacePerm) Apply(f Face) Face {
	return p[f]
}

// Compose returns the permutation that applies p first and then q.
func (p FacePerm) Compose(q FacePerm) FacePerm {
	var out FacePerm
	for _, f := range Faces {
		out[f] = q[p[f]]
	}
	return out
}

// Inverse returns the permutation undoing p.
func (p FacePerm) Inverse() FacePerm {
	var out FacePerm
	for _, f := range Faces {
		out[p[f]] = f
	}
	return out
}
