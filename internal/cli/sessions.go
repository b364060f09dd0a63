package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Long:  `Display recorded sessions with their size, move count, and outcome.`,
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to display")
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := journal.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Record one with: rubiks scramble --record")
		return nil
	}

	moveRepo := journal.NewMoveRepository(db)

	fmt.Printf("Recent sessions (showing %d):\n", len(sessions))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-8s  %-6s  %s\n", "ID", "Started", "Size", "Moves", "Status")
	fmt.Println("------------------------------------  --------------------  --------  ------  ------")

	for _, s := range sessions {
		count, err := moveRepo.CountBySession(s.SessionID)
		if err != nil {
			return fmt.Errorf("failed to count moves: %w", err)
		}

		status := "active"
		if s.EndedAt != nil {
			status = "ended"
			if s.Solved {
				status = "solved"
			}
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-6d  %s\n",
			s.SessionID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dx%dx%d", s.Dimension, s.Dimension, s.Dimension),
			count,
			status,
		)
	}

	return nil
}
