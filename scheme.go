package rubiks

import "strings"

// Color represents a sticker color.
type Color int

const (
	ColorWhite Color = iota
	ColorYellow
	ColorRed
	ColorOrange
	ColorBlue
	ColorGreen
)

// Colors lists all six colors.
var Colors = []Color{ColorWhite, ColorYellow, ColorRed, ColorOrange, ColorBlue, ColorGreen}

// String returns the color's one-letter abbreviation.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "W"
	case ColorYellow:
		return "Y"
	case ColorRed:
		return "R"
	case ColorOrange:
		return "O"
	case ColorBlue:
		return "B"
	case ColorGreen:
		return "G"
	default:
		return "?"
	}
}

// Scheme assigns a color to each face.
type Scheme [6]Color

// WesternScheme is the BOY scheme common on western cubes: white up, yellow
// down, green front, blue back, red right, orange left.
var WesternScheme = Scheme{
	FaceUp:    ColorWhite,
	FaceDown:  ColorYellow,
	FaceLeft:  ColorOrange,
	FaceRight: ColorRed,
	FaceFront: ColorGreen,
	FaceBack:  ColorBlue,
}

// JapaneseScheme differs from the western scheme by swapping the yellow and
// blue faces: blue down, yellow back.
var JapaneseScheme = Scheme{
	FaceUp:    ColorWhite,
	FaceDown:  ColorBlue,
	FaceLeft:  ColorOrange,
	FaceRight: ColorRed,
	FaceFront: ColorGreen,
	FaceBack:  ColorYellow,
}

// At returns the color assigned to a face.
func (s Scheme) At(f Face) Color {
	return s[f]
}

// FaceOf returns the face carrying the given color, if any.
func (s Scheme) FaceOf(c Color) (Face, bool) {
	for _, f := range Faces {
		if s[f] == c {
			return f, true
		}
	}
	return 0, false
}

// Rotated returns the scheme as seen after physically rotating the cube:
// each position shows the color of the face that the rotation carries onto
// it. After an x rotation the up position shows the front color.
func (s Scheme) Rotated(r CubeRotation) Scheme {
	inv := r.FacePerm().Inverse()
	var out Scheme
	for _, f := range Faces {
		out[f] = s[inv.Apply(f)]
	}
	return out
}

// String returns a compact form such as "U:W D:Y L:O R:R F:G B:B".
func (s Scheme) String() string {
	parts := make([]string, 0, len(Faces))
	for _, f := range Faces {
		parts = append(parts, f.String()+":"+s[f].String())
	}
	return strings.Join(parts, " ")
}
