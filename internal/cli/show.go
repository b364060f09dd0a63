package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
	"github.com/HaineSensei/rubiks-cube-representation/internal/render"
)

var (
	showSessionID string
	showLast      bool
	showLabels    bool
	showASCII     bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a cube as a colored net",
	Long: `Render a cube of the configured size as a colored terminal net.

With --session or --last, render the current state of a recorded
session instead of a freshly solved cube.

Examples:
  rubiks show
  rubiks show --size 4 --labels
  rubiks show --scheme japanese
  rubiks show --last`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showSessionID, "session", "", "Render the state of a recorded session")
	showCmd.Flags().BoolVar(&showLast, "last", false, "Render the state of the most recent session")
	showCmd.Flags().BoolVar(&showLabels, "labels", false, "Mark face centers with their letters")
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Plain color letters instead of colored tiles")
}

func runShow(cmd *cobra.Command, args []string) error {
	opts := renderOptions(showLabels, showASCII)

	if showSessionID != "" || showLast {
		return showSession(opts)
	}

	size, err := resolveSize()
	if err != nil {
		return err
	}
	scheme, err := resolveScheme()
	if err != nil {
		return err
	}

	fmt.Print(render.Render(rubiks.NewSolved(size, scheme), opts...))
	fmt.Println()
	fmt.Println(render.RenderScheme(scheme, opts...))

	return nil
}

func showSession(opts []render.Option) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var args []string
	if showSessionID != "" {
		args = []string{showSessionID}
	}
	session, err := resolveSession(journal.NewSessionRepository(db), args, showLast)
	if err != nil {
		return err
	}

	rows, err := journal.NewMoveRepository(db).ListBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to list moves: %w", err)
	}

	state, err := rebuildState(session, rows)
	if err != nil {
		return err
	}

	fmt.Println(sessionTitle(session, len(rows)))
	fmt.Println()
	fmt.Print(render.Render(state, opts...))

	return nil
}
