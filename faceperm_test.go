package rubiks

import "testing"

func TestIdentityRotationGivesIdentityFacePerm(t *testing.T) {
	if IdentityRotation.FacePerm() != IdentityFacePerm {
		t.Errorf("identity rotation should fix every face, got %v", IdentityRotation.FacePerm())
	}
}

func TestFacePermGoldens(t *testing.T) {
	cases := []struct {
		r    CubeRotation
		want FacePerm
	}{
		// x carries the front face up, like an R move.
		{X, FacePerm{FaceBack, FaceFront, FaceLeft, FaceRight, FaceUp, FaceDown}},
		// y carries the front face left, like a U move.
		{Y, FacePerm{FaceUp, FaceDown, FaceBack, FaceFront, FaceLeft, FaceRight}},
		// z carries the up face right, like an F move.
		{Z, FacePerm{FaceRight, FaceLeft, FaceUp, FaceDown, FaceFront, FaceBack}},
	}
	for _, c := range cases {
		got := c.r.FacePerm()
		if got != c.want {
			t.Errorf("%v face permutation should be %v, got %v", c.r, c.want, got)
		}
	}
}

func TestFacePermIsAHomomorphism(t *testing.T) {
	rotations := allRotations()
	for _, a := range rotations {
		for _, b := range rotations {
			want := a.FacePerm().Compose(b.FacePerm())
			got := a.Compose(b).FacePerm()
			if got != want {
				t.Fatalf("FacePerm(%v*%v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestFacePermInverseMatchesRotationInverse(t *testing.T) {
	for _, r := range allRotations() {
		if r.FacePerm().Inverse() != r.Inverse().FacePerm() {
			t.Errorf("inverse of FacePerm(%v) should equal FacePerm of the inverse", r)
		}
		if r.FacePerm().Compose(r.FacePerm().Inverse()) != IdentityFacePerm {
			t.Errorf("FacePerm(%v) composed with its inverse should be the identity", r)
		}
	}
}

func TestFacePermPreservesOpposites(t *testing.T) {
	for _, r := range allRotations() {
		fp := r.FacePerm()
		for _, f := range Faces {
			if fp.Apply(f.Opposite()) != fp.Apply(f).Opposite() {
				t.Errorf("%v should carry opposite faces to opposite faces", r)
			}
		}
	}
}

func TestFacePermsAreDistinct(t *testing.T) {
	// The rotation group embeds into the face permutations: 24 rotations, 24
	// distinct images.
	seen := make(map[FacePerm]CubeRotation)
	for _, r := range allRotations() {
		fp := r.FacePerm()
		if prev, ok := seen[fp]; ok {
			t.Errorf("rotations %v and %v should not share the face permutation %v", prev, r, fp)
		}
		seen[fp] = r
	}
}

func TestMalformedRotationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("deriving a face permutation from a non-bijective table should panic")
		}
	}()
	bad := CubeRotation{DiagUFR, DiagUFR, DiagUBR, DiagUBL}
	bad.FacePerm()
}
