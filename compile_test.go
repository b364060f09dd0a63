package rubiks

import "testing"

// axisRotation returns the whole-cube rotation that turns the given face's
// slices in that face's own clockwise sense: y for U, x for R, z for F, and
// their inverses for the opposite faces.
func axisRotation(f Face, a Angle) CubeRotation {
	var generator CubeRotation
	switch f {
	case FaceUp:
		generator = Y
	case FaceDown:
		generator = YPrime
	case FaceRight:
		generator = X
	case FaceLeft:
		generator = XPrime
	case FaceFront:
		generator = Z
	default:
		generator = ZPrime
	}
	out := IdentityRotation
	for i := 0; i < int(a); i++ {
		out = out.Compose(generator)
	}
	return out
}

var turnAngles = []Angle{AngleCW, AngleHalf, AngleACW}

func TestBasicMoveMatchesRotationPerSlice(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, f := range Faces {
			for _, a := range turnAngles {
				move := BasicMove{Face: f, Angle: a}.TilePerm(n)
				rot := axisRotation(f, a).TilePerm(n)
				id := IdentityPerm(n)
				if !move.AgreeOn(rot, Slice{Face: f, Index: 0}) {
					t.Errorf("n=%d: %v should match %v on its own slice", n, BasicMove{Face: f, Angle: a}, axisRotation(f, a))
				}
				for i := 1; i < n; i++ {
					if !move.AgreeOn(id, Slice{Face: f, Index: i}) {
						t.Errorf("n=%d: %v should fix slice %d", n, BasicMove{Face: f, Angle: a}, i)
					}
				}
			}
		}
	}
}

func TestOneByOneBasicMoveIsTheWholeRotation(t *testing.T) {
	for _, f := range Faces {
		for _, a := range turnAngles {
			move := BasicMove{Face: f, Angle: a}.TilePerm(1)
			rot := axisRotation(f, a).TilePerm(1)
			if !move.Equal(rot) {
				t.Errorf("on a 1×1 cube %v should equal the rotation %v", BasicMove{Face: f, Angle: a}, axisRotation(f, a))
			}
		}
	}
}

func TestWideMoveMatchesRotationUpToDepth(t *testing.T) {
	for _, n := range []int{4, 5} {
		for _, f := range Faces {
			for depth := 1; depth <= n; depth++ {
				move := WideMove{Face: f, Angle: AngleCW, Depth: depth}.TilePerm(n)
				rot := axisRotation(f, AngleCW).TilePerm(n)
				id := IdentityPerm(n)
				for i := 0; i < n; i++ {
					slice := Slice{Face: f, Index: i}
					if i < depth {
						if !move.AgreeOn(rot, slice) {
							t.Errorf("n=%d depth=%d: wide %v should match the rotation on slice %d", n, depth, f, i)
						}
					} else {
						if !move.AgreeOn(id, slice) {
							t.Errorf("n=%d depth=%d: wide %v should fix slice %d", n, depth, f, i)
						}
					}
				}
				if depth == n && !move.Equal(rot) {
					t.Errorf("n=%d: turning all layers of %v should equal the whole-cube rotation", n, f)
				}
			}
		}
	}
}

func TestSliceMoveMatchesRotationOnItsLayer(t *testing.T) {
	const n = 4
	for _, f := range Faces {
		for layer := 1; layer <= n; layer++ {
			move := SliceMove{Face: f, Angle: AngleACW, Layer: layer}.TilePerm(n)
			rot := axisRotation(f, AngleACW).TilePerm(n)
			id := IdentityPerm(n)
			for i := 0; i < n; i++ {
				slice := Slice{Face: f, Index: i}
				if i == layer-1 {
					if !move.AgreeOn(rot, slice) {
						t.Errorf("layer %d of %v should match the rotation on slice %d", layer, f, i)
					}
				} else {
					if !move.AgreeOn(id, slice) {
						t.Errorf("layer %d of %v should fix slice %d", layer, f, i)
					}
				}
			}
		}
	}
}

func TestRangeMoveMatchesRotationOnItsLayers(t *testing.T) {
	const n = 5
	ranges := []struct{ start, end int }{
		{2, 3}, {1, 5}, {2, 2}, {4, 5},
	}
	for _, f := range Faces {
		for _, r := range ranges {
			move := RangeMove{Face: f, Angle: AngleCW, StartLayer: r.start, EndLayer: r.end}.TilePerm(n)
			rot := axisRotation(f, AngleCW).TilePerm(n)
			id := IdentityPerm(n)
			for i := 0; i < n; i++ {
				slice := Slice{Face: f, Index: i}
				inRange := i >= r.start-1 && i <= r.end-1
				if inRange {
					if !move.AgreeOn(rot, slice) {
						t.Errorf("range %d-%d of %v should match the rotation on slice %d", r.start, r.end, f, i)
					}
				} else {
					if !move.AgreeOn(id, slice) {
						t.Errorf("range %d-%d of %v should fix slice %d", r.start, r.end, f, i)
					}
				}
			}
		}
	}
}

func TestMiddleMoveMatchesRotationOnTheMiddleLayer(t *testing.T) {
	for _, n := range []int{3, 5} {
		for _, slice := range []MiddleSlice{MiddleM, MiddleE, MiddleS} {
			for _, a := range turnAngles {
				move := MiddleMove{Slice: slice, Angle: a}.TilePerm(n)
				rot := axisRotation(slice.face(), a).TilePerm(n)
				id := IdentityPerm(n)
				for i := 0; i < n; i++ {
					res := Slice{Face: slice.face(), Index: i}
					if i == n/2 {
						if !move.AgreeOn(rot, res) {
							t.Errorf("n=%d: %v should match the rotation on the middle slice", n, MiddleMove{Slice: slice, Angle: a})
						}
					} else {
						if !move.AgreeOn(id, res) {
							t.Errorf("n=%d: %v should fix slice %d", n, MiddleMove{Slice: slice, Angle: a}, i)
						}
					}
				}
			}
		}
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, f := range Faces {
			m := BasicMove{Face: f, Angle: AngleCW}
			if !Compose(n, m, m, m, m).Equal(IdentityPerm(n)) {
				t.Errorf("n=%d: four %v turns should be the identity", n, m)
			}
		}
	}
	s := SliceMove{Face: FaceRight, Angle: AngleCW, Layer: 2}
	if !Compose(4, s, s, s, s).Equal(IdentityPerm(4)) {
		t.Error("four quarter slice turns should be the identity")
	}
	w := WideMove{Face: FaceFront, Angle: AngleCW, Depth: 2}
	if !Compose(4, w, w, w, w).Equal(IdentityPerm(4)) {
		t.Error("four quarter wide turns should be the identity")
	}
}

func TestHalfTurnEqualsTwoQuarterTurns(t *testing.T) {
	for n := 2; n <= 4; n++ {
		for _, f := range Faces {
			q := BasicMove{Face: f, Angle: AngleCW}
			half := BasicMove{Face: f, Angle: AngleHalf}.TilePerm(n)
			if !half.Equal(Compose(n, q, q)) {
				t.Errorf("n=%d: a half turn of %v should equal two quarter turns", n, f)
			}
		}
	}
}

func TestRotationTilePermsCompose(t *testing.T) {
	const n = 3
	rotations := allRotations()
	for _, a := range rotations {
		for _, b := range rotations {
			want := a.TilePerm(n).Compose(b.TilePerm(n))
			got := a.Compose(b).TilePerm(n)
			if !got.Equal(want) {
				t.Fatalf("tile permutation of %v*%v should equal the composed permutations", a, b)
			}
		}
	}
}

func TestRotationTilePermOnOneByOneMatchesFacePerm(t *testing.T) {
	for _, r := range allRotations() {
		perm := r.TilePerm(1)
		fp := r.FacePerm()
		for _, f := range Faces {
			got := perm.At(TilePos{Face: f, Row: 0, Col: 0})
			want := TilePos{Face: fp.Apply(f), Row: 0, Col: 0}
			if got != want {
				t.Errorf("%v should carry the %v tile to %v, got %v", r, f, want, got)
			}
		}
	}
}

func TestDegenerateMovesCompileToIdentity(t *testing.T) {
	const n = 3
	id := IdentityPerm(n)
	degenerate := []Operation{
		BasicMove{Face: FaceUp, Angle: AngleZero},
		WideMove{Face: FaceRight, Angle: AngleCW, Depth: 0},
		SliceMove{Face: FaceLeft, Angle: AngleCW, Layer: 0},
		SliceMove{Face: FaceLeft, Angle: AngleCW, Layer: n + 1},
		RangeMove{Face: FaceFront, Angle: AngleCW, StartLayer: 3, EndLayer: 2},
		RangeMove{Face: FaceBack, Angle: AngleCW, StartLayer: 6, EndLayer: 8},
	}
	for _, op := range degenerate {
		if !op.TilePerm(n).Equal(id) {
			t.Errorf("%v should compile to the identity", op)
		}
	}
}

func TestComposeMatchesPairwiseComposition(t *testing.T) {
	const n = 3
	want := R.TilePerm(n).Compose(U.TilePerm(n)).Compose(RPrime.TilePerm(n))
	got := Compose(n, R, U, RPrime)
	if !got.Equal(want) {
		t.Error("Compose should fold operations left to right")
	}
}

func TestSexyMoveHasOrderSix(t *testing.T) {
	const n = 3
	once := Compose(n, SexyMove...)
	perm := IdentityPerm(n)
	for i := 0; i < 6; i++ {
		perm = perm.Compose(once)
		if i < 5 && perm.Equal(IdentityPerm(n)) {
			t.Fatalf("sexy move should not return to identity after %d repetitions", i+1)
		}
	}
	if !perm.Equal(IdentityPerm(n)) {
		t.Error("six sexy moves should return to the identity")
	}
}

func TestZeroSizeCubeIsVacuous(t *testing.T) {
	id := IdentityPerm(0)
	for _, op := range []Operation{R, X, WideMove{Face: FaceUp, Angle: AngleCW, Depth: 1}} {
		if !op.TilePerm(0).Equal(id) {
			t.Errorf("%v on an empty cube should be the empty permutation", op)
		}
	}
}

func TestPermSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("using a permutation on the wrong cube size should panic")
		}
	}()
	X.TilePerm(3).TilePerm(2)
}
