package rubiks

import "testing"

func TestPresetSchemes(t *testing.T) {
	if WesternScheme.At(FaceUp) != ColorWhite || WesternScheme.At(FaceDown) != ColorYellow {
		t.Error("western scheme should put white up and yellow down")
	}
	if WesternScheme.At(FaceFront) != ColorGreen || WesternScheme.At(FaceBack) != ColorBlue {
		t.Error("western scheme should put green front and blue back")
	}
	if WesternScheme.At(FaceRight) != ColorRed || WesternScheme.At(FaceLeft) != ColorOrange {
		t.Error("western scheme should put red right and orange left")
	}
	if JapaneseScheme.At(FaceDown) != ColorBlue || JapaneseScheme.At(FaceBack) != ColorYellow {
		t.Error("japanese scheme should put blue down and yellow back")
	}
	for _, f := range []Face{FaceUp, FaceLeft, FaceRight, FaceFront} {
		if JapaneseScheme.At(f) != WesternScheme.At(f) {
			t.Errorf("japanese scheme should agree with the western scheme on %v", f)
		}
	}
}

func TestSchemeColorsAreDistinct(t *testing.T) {
	for _, s := range []Scheme{WesternScheme, JapaneseScheme} {
		seen := map[Color]Face{}
		for _, f := range Faces {
			c := s.At(f)
			if prev, ok := seen[c]; ok {
				t.Errorf("scheme %v assigns %v to both %v and %v", s, c, prev, f)
			}
			seen[c] = f
		}
	}
}

func TestFaceOfRoundTrips(t *testing.T) {
	for _, f := range Faces {
		got, ok := WesternScheme.FaceOf(WesternScheme.At(f))
		if !ok || got != f {
			t.Errorf("FaceOf should recover %v from its color", f)
		}
	}
}

func TestFaceOfMissingColor(t *testing.T) {
	s := WesternScheme
	s[FaceBack] = ColorWhite
	if _, ok := s.FaceOf(ColorBlue); ok {
		t.Error("FaceOf should report colors absent from the scheme")
	}
}

func TestRotatedByIdentityIsUnchanged(t *testing.T) {
	if WesternScheme.Rotated(IdentityRotation) != WesternScheme {
		t.Error("rotating by the identity should not change the scheme")
	}
}

func TestRotatedShowsCarriedColors(t *testing.T) {
	got := WesternScheme.Rotated(X)
	want := Scheme{
		FaceUp:    ColorGreen,
		FaceDown:  ColorBlue,
		FaceLeft:  ColorOrange,
		FaceRight: ColorRed,
		FaceFront: ColorYellow,
		FaceBack:  ColorWhite,
	}
	if got != want {
		t.Errorf("after x the front color should face up: got %v, want %v", got, want)
	}
}

func TestRotatedComposes(t *testing.T) {
	rotations := allRotations()
	for _, a := range rotations {
		for _, b := range rotations {
			if WesternScheme.Rotated(a).Rotated(b) != WesternScheme.Rotated(a.Compose(b)) {
				t.Fatalf("rotating by %v then %v should equal rotating by their composition", a, b)
			}
		}
	}
}

func TestSchemeString(t *testing.T) {
	if got := WesternScheme.String(); got != "U:W D:Y L:O R:R F:G B:B" {
		t.Errorf("unexpected scheme string %q", got)
	}
}

func TestColorStrings(t *testing.T) {
	want := map[Color]string{
		ColorWhite:  "W",
		ColorYellow: "Y",
		ColorRed:    "R",
		ColorOrange: "O",
		ColorBlue:   "B",
		ColorGreen:  "G",
	}
	for c, s := range want {
		if c.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(c), c.String(), s)
		}
	}
	if Color(42).String() != "?" {
		t.Error("unknown colors should print as ?")
	}
}
