package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
	"github.com/HaineSensei/rubiks-cube-representation/internal/analysis"
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
	"github.com/HaineSensei/rubiks-cube-representation/internal/render"
)

var (
	replayLast bool
	replayStep bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Rebuild a session's cube by replaying its journaled moves onto a
solved state.

Prints the final net and a short summary. With --step, prints the net
after every move.

Examples:
  rubiks replay --last
  rubiks replay <session-id> --step`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	replayCmd.Flags().BoolVar(&replayStep, "step", false, "Print the net after every move")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(journal.NewSessionRepository(db), args, replayLast)
	if err != nil {
		return err
	}

	rows, err := journal.NewMoveRepository(db).ListBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to list moves: %w", err)
	}

	scheme, err := session.ColorScheme()
	if err != nil {
		return err
	}

	fmt.Println(sessionTitle(session, len(rows)))
	fmt.Println()

	state := rubiks.NewSolved(session.Dimension, scheme)
	for i, row := range rows {
		op, err := row.Operation()
		if err != nil {
			return fmt.Errorf("move %d: %w", row.MoveIndex, err)
		}
		state = state.Apply(op)

		if replayStep {
			fmt.Printf("%d. %s\n", i+1, row.Notation)
			fmt.Print(render.Render(state))
			fmt.Println()
		}
	}

	if !replayStep {
		fmt.Print(render.Render(state))
		fmt.Println()
	}

	summary := analysis.Summarize(rows)
	fmt.Printf("Moves: %d (quarter turns: %d, rotations: %d)\n",
		summary.TotalMoves, summary.QuarterTurns, summary.Rotations)
	if summary.MostUsedFace != "" {
		fmt.Printf("Most used face: %s\n", summary.MostUsedFace)
	}
	if state.IsSolvedUpToRotationIn(scheme) {
		fmt.Println("Final state: solved")
	}

	return nil
}
