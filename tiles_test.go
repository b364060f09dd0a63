package rubiks

import "testing"

func TestIdentityPermFixesEveryPosition(t *testing.T) {
	for n := 0; n <= 4; n++ {
		id := IdentityPerm(n)
		if id.Dimension() != n {
			t.Errorf("identity of size %d should report dimension %d", n, id.Dimension())
		}
		for pos := range (SliceRange{Face: FaceUp, Start: 0, End: n - 1}).Positions(n) {
			if id.At(pos) != pos {
				t.Errorf("identity should fix %v, got %v", pos, id.At(pos))
			}
		}
	}
}

func TestComposeWithIdentityIsUnchanged(t *testing.T) {
	p := X.TilePerm(3)
	id := IdentityPerm(3)
	if !p.Compose(id).Equal(p) {
		t.Error("composing with identity on the right should be unchanged")
	}
	if !id.Compose(p).Equal(p) {
		t.Error("composing with identity on the left should be unchanged")
	}
}

func TestComposeAppliesLeftFirst(t *testing.T) {
	a := BasicMove{Face: FaceRight, Angle: AngleCW}.TilePerm(3)
	b := BasicMove{Face: FaceUp, Angle: AngleCW}.TilePerm(3)
	ab := a.Compose(b)
	for pos := range (SliceRange{Face: FaceUp, Start: 0, End: 2}).Positions(3) {
		if ab.At(pos) != b.At(a.At(pos)) {
			t.Fatalf("composition at %v should route through the left operand first", pos)
		}
	}
}

func TestInverseRoundTripsToIdentity(t *testing.T) {
	samples := []TilePerm{
		X.TilePerm(3),
		Y2.TilePerm(4),
		BasicMove{Face: FaceFront, Angle: AngleACW}.TilePerm(3),
		WideMove{Face: FaceDown, Angle: AngleCW, Depth: 2}.TilePerm(4),
	}
	for _, p := range samples {
		n := p.Dimension()
		if !p.Compose(p.Inverse()).Equal(IdentityPerm(n)) {
			t.Error("a permutation composed with its inverse should be the identity")
		}
		if !p.Inverse().Inverse().Equal(p) {
			t.Error("double inverse should restore the permutation")
		}
	}
}

func TestInverseSwapsSourceAndDestination(t *testing.T) {
	p := Z.TilePerm(3)
	inv := p.Inverse()
	for pos := range (SliceRange{Face: FaceUp, Start: 0, End: 2}).Positions(3) {
		if inv.At(p.At(pos)) != pos {
			t.Errorf("inverse should send %v back through %v", p.At(pos), pos)
		}
	}
}

func TestEqualDistinguishesSizesAndValues(t *testing.T) {
	if IdentityPerm(2).Equal(IdentityPerm(3)) {
		t.Error("permutations of different sizes should not be equal")
	}
	if IdentityPerm(3).Equal(X.TilePerm(3)) {
		t.Error("identity should differ from a rotation")
	}
	if !X.TilePerm(3).Equal(X.TilePerm(3)) {
		t.Error("equal permutations should compare equal")
	}
}

func TestAgreeOnComparesOnlyTheRestriction(t *testing.T) {
	move := BasicMove{Face: FaceUp, Angle: AngleCW}.TilePerm(3)
	id := IdentityPerm(3)
	if move.AgreeOn(id, Slice{Face: FaceUp, Index: 0}) {
		t.Error("a U move should disagree with identity on the top slice")
	}
	if !move.AgreeOn(id, Slice{Face: FaceUp, Index: 1}) {
		t.Error("a U move should fix the middle slice")
	}
	if !move.AgreeOn(id, Slice{Face: FaceUp, Index: 2}) {
		t.Error("a U move should fix the bottom slice")
	}
}

func TestComposeSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("composing permutations of different sizes should panic")
		}
	}()
	IdentityPerm(2).Compose(IdentityPerm(3))
}
