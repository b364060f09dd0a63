// Package schemefile loads and saves color schemes as YAML documents.
//
// A scheme file names the color of each face:
//
//	up: white
//	down: yellow
//	left: orange
//	right: red
//	front: green
//	back: blue
package schemefile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

var (
	// ErrUnknownColor reports a color name outside the six sticker colors.
	ErrUnknownColor = errors.New("schemefile: unknown color name")

	// ErrMissingFace reports a document that does not name every face.
	ErrMissingFace = errors.New("schemefile: missing face")

	// ErrDuplicateColor reports a color assigned to more than one face.
	ErrDuplicateColor = errors.New("schemefile: duplicate color")
)

// document mirrors the YAML layout of a scheme file.
type document struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

var colorNames = map[string]rubiks.Color{
	"white":  rubiks.ColorWhite,
	"yellow": rubiks.ColorYellow,
	"red":    rubiks.ColorRed,
	"orange": rubiks.ColorOrange,
	"blue":   rubiks.ColorBlue,
	"green":  rubiks.ColorGreen,
}

// Parse decodes a YAML scheme document.
func Parse(data []byte) (rubiks.Scheme, error) {
	var scheme rubiks.Scheme

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return scheme, fmt.Errorf("failed to parse scheme file: %w", err)
	}

	fields := map[rubiks.Face]string{
		rubiks.FaceUp:    doc.Up,
		rubiks.FaceDown:  doc.Down,
		rubiks.FaceLeft:  doc.Left,
		rubiks.FaceRight: doc.Right,
		rubiks.FaceFront: doc.Front,
		rubiks.FaceBack:  doc.Back,
	}

	seen := map[rubiks.Color]rubiks.Face{}
	for _, f := range rubiks.Faces {
		name := fields[f]
		if name == "" {
			return scheme, fmt.Errorf("%w: %v", ErrMissingFace, f)
		}
		c, ok := colorNames[strings.ToLower(name)]
		if !ok {
			return scheme, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		if prev, dup := seen[c]; dup {
			return scheme, fmt.Errorf("%w: %q on both %v and %v", ErrDuplicateColor, name, prev, f)
		}
		seen[c] = f
		scheme[f] = c
	}

	return scheme, nil
}

// Load reads a scheme file from disk.
func Load(path string) (rubiks.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rubiks.Scheme{}, fmt.Errorf("failed to read scheme file: %w", err)
	}
	return Parse(data)
}

// Save writes a scheme to disk as YAML.
func Save(path string, scheme rubiks.Scheme) error {
	doc := document{
		Up:    colorName(scheme.At(rubiks.FaceUp)),
		Down:  colorName(scheme.At(rubiks.FaceDown)),
		Left:  colorName(scheme.At(rubiks.FaceLeft)),
		Right: colorName(scheme.At(rubiks.FaceRight)),
		Front: colorName(scheme.At(rubiks.FaceFront)),
		Back:  colorName(scheme.At(rubiks.FaceBack)),
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode scheme: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scheme file: %w", err)
	}

	return nil
}

func colorName(c rubiks.Color) string {
	for name, color := range colorNames {
		if color == c {
			return name
		}
	}
	return c.String()
}
