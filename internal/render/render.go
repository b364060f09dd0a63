// Package render draws cube states as colored terminal nets.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

// Tile styles, one per sticker color. The hex values are the classic cube
// sticker shades.
var tileStyles = map[rubiks.Color]lipgloss.Style{
	rubiks.ColorWhite: lipgloss.NewStyle().
		Background(lipgloss.Color("#FFFFFF")).
		Foreground(lipgloss.Color("#000000")),
	rubiks.ColorYellow: lipgloss.NewStyle().
		Background(lipgloss.Color("#FFD500")).
		Foreground(lipgloss.Color("#000000")),
	rubiks.ColorRed: lipgloss.NewStyle().
		Background(lipgloss.Color("#C41E3A")).
		Foreground(lipgloss.Color("#FFFFFF")),
	rubiks.ColorOrange: lipgloss.NewStyle().
		Background(lipgloss.Color("#FF5800")).
		Foreground(lipgloss.Color("#000000")),
	rubiks.ColorBlue: lipgloss.NewStyle().
		Background(lipgloss.Color("#0051BA")).
		Foreground(lipgloss.Color("#FFFFFF")),
	rubiks.ColorGreen: lipgloss.NewStyle().
		Background(lipgloss.Color("#009E60")).
		Foreground(lipgloss.Color("#000000")),
}

// Render draws the state as a net: the up face on top, the left, front,
// right and back faces side by side, and the down face below.
func Render(state *rubiks.CubeState, opts ...Option) string {
	cfg := newConfig(opts)
	n := state.Dimension()

	var b strings.Builder
	indent := strings.Repeat(" ", n*cfg.tileWidth+1)

	writeFaceRow := func(f rubiks.Face, r int) {
		for c := 0; c < n; c++ {
			b.WriteString(cell(state, cfg, rubiks.TilePos{Face: f, Row: r, Col: c}))
		}
	}

	for r := 0; r < n; r++ {
		b.WriteString(indent)
		writeFaceRow(rubiks.FaceUp, r)
		b.WriteString("\n")
	}
	for r := 0; r < n; r++ {
		for i, f := range []rubiks.Face{rubiks.FaceLeft, rubiks.FaceFront, rubiks.FaceRight, rubiks.FaceBack} {
			if i > 0 {
				b.WriteString(" ")
			}
			writeFaceRow(f, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < n; r++ {
		b.WriteString(indent)
		writeFaceRow(rubiks.FaceDown, r)
		b.WriteString("\n")
	}

	return b.String()
}

// RenderScheme returns a one-line legend of a scheme's face colors.
func RenderScheme(s rubiks.Scheme, opts ...Option) string {
	cfg := newConfig(opts)

	parts := make([]string, 0, len(rubiks.Faces))
	for _, f := range rubiks.Faces {
		color := s.At(f)
		swatch := pad(color.String(), cfg.tileWidth)
		if !cfg.ascii {
			if style, ok := tileStyles[color]; ok {
				swatch = style.Render(pad(" ", cfg.tileWidth))
			}
		}
		parts = append(parts, f.String()+":"+swatch)
	}
	return strings.Join(parts, " ")
}

// cell renders one tile. In ASCII mode the cell is the color letter; styled
// cells are color blocks, with the face letter shown on the center tile when
// labels are on.
func cell(s *rubiks.CubeState, cfg *config, pos rubiks.TilePos) string {
	color := s.At(pos)
	if cfg.ascii {
		return pad(color.String(), cfg.tileWidth)
	}

	content := strings.Repeat(" ", cfg.tileWidth)
	n := s.Dimension()
	if cfg.labels && pos.Row == n/2 && pos.Col == n/2 {
		content = pad(pos.Face.String(), cfg.tileWidth)
	}

	style, ok := tileStyles[color]
	if !ok {
		return content
	}
	return style.Render(content)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
