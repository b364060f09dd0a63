package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
	"github.com/HaineSensei/rubiks-cube-representation/internal/render"
)

var exploreRecord bool

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive cube explorer",
	Long: `Start an interactive TUI for turning a cube from the keyboard.

Keyboard shortcuts:
  u/d/l/r/f/b - turn a face clockwise (shift = counter-clockwise)
  x/y/z       - rotate the whole cube (shift = reverse)
  w           - toggle wide turns (two layers)
  m/e/s       - middle layer turns on odd sizes (shift = reverse)
  backspace   - undo the last move
  ctrl+r      - reset to solved
  q/Esc       - quit

With --record, every move is journaled to the database as a session.`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().BoolVar(&exploreRecord, "record", false, "Journal moves to a session")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

var faceKeys = map[string]rubiks.Face{
	"u": rubiks.FaceUp,
	"d": rubiks.FaceDown,
	"l": rubiks.FaceLeft,
	"r": rubiks.FaceRight,
	"f": rubiks.FaceFront,
	"b": rubiks.FaceBack,
}

var rotationKeys = map[string]rubiks.CubeRotation{
	"x": rubiks.X, "X": rubiks.XPrime,
	"y": rubiks.Y, "Y": rubiks.YPrime,
	"z": rubiks.Z, "Z": rubiks.ZPrime,
}

var middleKeys = map[string]rubiks.MiddleSlice{
	"m": rubiks.MiddleM,
	"e": rubiks.MiddleE,
	"s": rubiks.MiddleS,
}

// Model
type exploreModel struct {
	size   int
	scheme rubiks.Scheme

	// Exactly one of tracker and rec is set.
	tracker *rubiks.Tracker
	rec     *journal.Recorder

	wide bool
	tape []string
	note string

	started time.Time
	elapsed time.Duration

	width    int
	height   int
	err      error
	quitting bool
}

func newExploreModel(size int, scheme rubiks.Scheme, rec *journal.Recorder) *exploreModel {
	m := &exploreModel{
		size:    size,
		scheme:  scheme,
		rec:     rec,
		started: time.Now(),
	}
	if rec == nil {
		m.tracker = rubiks.NewTracker(size, scheme)
	}
	return m
}

func (m *exploreModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *exploreModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.note = ""

		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.rec != nil && m.rec.State() == journal.StateRecording {
				if err := m.rec.Finish(); err != nil {
					m.err = err
				}
			}
			return m, tea.Quit

		case "ctrl+r":
			m.reset()

		case "backspace":
			m.undo()

		case "w":
			m.wide = !m.wide

		case "u", "d", "l", "r", "f", "b", "U", "D", "L", "R", "F", "B":
			m.turnFace(key)

		case "x", "y", "z", "X", "Y", "Z":
			m.applyOp(rotationKeys[key])

		case "m", "e", "s", "M", "E", "S":
			m.turnMiddle(key)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.elapsed = time.Since(m.started)
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *exploreModel) turnFace(key string) {
	lower := strings.ToLower(key)
	angle := rubiks.AngleCW
	if key != lower {
		angle = rubiks.AngleACW
	}
	face := faceKeys[lower]

	var op rubiks.Operation = rubiks.BasicMove{Face: face, Angle: angle}
	if m.wide {
		op = rubiks.WideMove{Face: face, Angle: angle, Depth: 2}
	}
	m.applyOp(op)
}

func (m *exploreModel) turnMiddle(key string) {
	if m.size%2 == 0 {
		m.note = "middle turns need an odd cube size"
		return
	}

	lower := strings.ToLower(key)
	angle := rubiks.AngleCW
	if key != lower {
		angle = rubiks.AngleACW
	}
	m.applyOp(rubiks.MiddleMove{Slice: middleKeys[lower], Angle: angle})
}

func (m *exploreModel) applyOp(op rubiks.Operation) {
	if m.rec != nil {
		if err := m.rec.Record(op); err != nil {
			m.err = err
			return
		}
	} else {
		m.tracker.Apply(op)
	}
	m.tape = append(m.tape, fmt.Sprint(op))
	m.err = nil
}

func (m *exploreModel) undo() {
	if m.rec != nil {
		if err := m.rec.Undo(); err != nil {
			m.note = "nothing to undo"
			return
		}
	} else if !m.tracker.Undo() {
		m.note = "nothing to undo"
		return
	}

	if len(m.tape) > 0 {
		m.tape = m.tape[:len(m.tape)-1]
	}
}

func (m *exploreModel) reset() {
	if m.rec != nil {
		// The journal is append-only, so a reset closes the session
		// and opens a fresh one.
		if m.rec.State() == journal.StateRecording {
			if err := m.rec.Finish(); err != nil {
				m.err = err
				return
			}
		}
		if _, err := m.rec.Start(m.size, m.scheme); err != nil {
			m.err = err
			return
		}
	} else {
		m.tracker.Reset()
	}

	m.tape = nil
	m.started = time.Now()
	m.elapsed = 0
}

func (m *exploreModel) state() *rubiks.CubeState {
	if m.rec != nil {
		return m.rec.Cube()
	}
	return m.tracker.State()
}

func (m *exploreModel) solved() bool {
	if m.rec != nil {
		return m.rec.IsSolved()
	}
	return m.tracker.IsSolved()
}

func (m *exploreModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Explorer"))
	b.WriteString("\n\n")

	b.WriteString(render.Render(m.state(), render.WithLabels(true)))
	b.WriteString("\n")

	status := fmt.Sprintf("%dx%dx%d  moves: %d  elapsed: %s",
		m.size, m.size, m.size, len(m.tape), m.formatElapsed())
	if m.wide {
		status += "  [wide]"
	}
	if m.rec != nil {
		status += fmt.Sprintf("  session: %.8s", m.rec.SessionID())
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.solved() && len(m.tape) > 0 {
		b.WriteString(solvedStyle.Render("SOLVED!"))
		b.WriteString("\n")
	}

	if len(m.tape) > 0 {
		b.WriteString("\n")
		b.WriteString("Moves: ")
		start := 0
		if len(m.tape) > 20 {
			start = len(m.tape) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(strings.Join(m.tape[start:], " ")))
		b.WriteString("\n")
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.note))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/d/l/r/f/b turn (shift reverses)  x/y/z rotate  w wide  m/e/s middle  backspace undo  ctrl+r reset  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *exploreModel) formatElapsed() string {
	if m.elapsed < time.Minute {
		return fmt.Sprintf("%.0fs", m.elapsed.Seconds())
	}
	mins := int(m.elapsed.Minutes())
	secs := int(m.elapsed.Seconds()) - mins*60
	return fmt.Sprintf("%dm%02ds", mins, secs)
}

func runExplore(cmd *cobra.Command, args []string) error {
	size, err := resolveSize()
	if err != nil {
		return err
	}
	scheme, err := resolveScheme()
	if err != nil {
		return err
	}

	var rec *journal.Recorder
	if exploreRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		rec = journal.NewRecorder(db)
		if _, err := rec.Start(size, scheme); err != nil {
			return err
		}
	}

	model := newExploreModel(size, scheme, rec)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if rec != nil {
		fmt.Printf("Recorded session: %s\n", rec.SessionID())
	}

	return nil
}
