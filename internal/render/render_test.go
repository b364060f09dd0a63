package render

import (
	"strings"
	"testing"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

func TestRenderASCIINet(t *testing.T) {
	got := Render(rubiks.NewSolved(1, rubiks.WesternScheme), WithASCII(true), WithTileWidth(1))
	want := "  W\nO G R B\n  Y\n"
	if got != want {
		t.Errorf("unexpected net %q, want %q", got, want)
	}
}

func TestRenderASCIITwoByTwo(t *testing.T) {
	lines := strings.Split(Render(rubiks.NewSolved(2, rubiks.WesternScheme), WithASCII(true)), "\n")
	if len(lines) != 7 || lines[6] != "" {
		t.Fatalf("a 2×2 net should have six rows, got %q", lines)
	}
	if lines[0] != "     W W " {
		t.Errorf("unexpected up row %q", lines[0])
	}
	if lines[2] != "O O  G G  R R  B B " {
		t.Errorf("unexpected band row %q", lines[2])
	}
	if lines[5] != "     Y Y " {
		t.Errorf("unexpected down row %q", lines[5])
	}
}

func TestRenderRowCounts(t *testing.T) {
	for n := 1; n <= 4; n++ {
		out := Render(rubiks.NewSolved(n, rubiks.WesternScheme))
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 3*n {
			t.Errorf("n=%d: net should have %d rows, got %d", n, 3*n, len(lines))
		}
	}
}

func TestRenderLabelsMarkFaceCenters(t *testing.T) {
	out := Render(rubiks.NewSolved(3, rubiks.WesternScheme), WithLabels(true))
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "U") {
		t.Errorf("the middle up row should carry the U label, got %q", lines[1])
	}
	for _, letter := range []string{"L", "F", "R", "B"} {
		if !strings.Contains(lines[4], letter) {
			t.Errorf("the middle band row should carry the %s label, got %q", letter, lines[4])
		}
	}
	if !strings.Contains(lines[7], "D") {
		t.Errorf("the middle down row should carry the D label, got %q", lines[7])
	}
}

func TestTileWidthClamps(t *testing.T) {
	s := rubiks.NewSolved(2, rubiks.WesternScheme)
	if Render(s, WithASCII(true), WithTileWidth(0)) != Render(s, WithASCII(true), WithTileWidth(1)) {
		t.Error("non-positive tile widths should clamp to 1")
	}
}

func TestRenderSchemeASCII(t *testing.T) {
	got := RenderScheme(rubiks.WesternScheme, WithASCII(true), WithTileWidth(1))
	if got != "U:W D:Y L:O R:R F:G B:B" {
		t.Errorf("unexpected scheme legend %q", got)
	}
}

func TestRenderAfterMoveChangesNet(t *testing.T) {
	solved := rubiks.NewSolved(3, rubiks.WesternScheme)
	moved := solved.Apply(rubiks.R)
	if Render(solved, WithASCII(true)) == Render(moved, WithASCII(true)) {
		t.Error("a turned cube should render differently from a solved one")
	}
}
