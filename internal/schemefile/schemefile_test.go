package schemefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

const westernDoc = `up: white
down: yellow
left: orange
right: red
front: green
back: blue
`

func TestParseWesternDocument(t *testing.T) {
	scheme, err := Parse([]byte(westernDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if scheme != rubiks.WesternScheme {
		t.Fatalf("parsed scheme = %v, want %v", scheme, rubiks.WesternScheme)
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	doc := `up: WHITE
down: Yellow
left: orange
right: Red
front: GREEN
back: blue
`
	scheme, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if scheme != rubiks.WesternScheme {
		t.Fatalf("parsed scheme = %v, want %v", scheme, rubiks.WesternScheme)
	}
}

func TestParseMissingFace(t *testing.T) {
	doc := `up: white
down: yellow
left: orange
right: red
front: green
`
	if _, err := Parse([]byte(doc)); !errors.Is(err, ErrMissingFace) {
		t.Fatalf("Parse error = %v, want ErrMissingFace", err)
	}
}

func TestParseUnknownColor(t *testing.T) {
	doc := `up: white
down: yellow
left: orange
right: red
front: green
back: fuchsia
`
	if _, err := Parse([]byte(doc)); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("Parse error = %v, want ErrUnknownColor", err)
	}
}

func TestParseDuplicateColor(t *testing.T) {
	doc := `up: white
down: white
left: orange
right: red
front: green
back: blue
`
	if _, err := Parse([]byte(doc)); !errors.Is(err, ErrDuplicateColor) {
		t.Fatalf("Parse error = %v, want ErrDuplicateColor", err)
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("up: [unclosed")); err == nil {
		t.Fatal("Parse accepted malformed YAML")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.yaml")

	if err := Save(path, rubiks.JapaneseScheme); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != rubiks.JapaneseScheme {
		t.Fatalf("loaded scheme = %v, want %v", loaded, rubiks.JapaneseScheme)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("saved file is empty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}
