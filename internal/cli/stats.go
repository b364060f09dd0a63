package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HaineSensei/rubiks-cube-representation/internal/analysis"
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
)

var (
	statsLast bool
	statsMinN int
	statsMaxN int
	statsTopK int
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Analyze a recorded session",
	Long: `Compute move statistics and repeated sequences for a session.

Examples:
  rubiks stats --last
  rubiks stats <session-id> --min 3 --max 8 --top 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsLast, "last", false, "Analyze the most recent session")
	statsCmd.Flags().IntVar(&statsMinN, "min", 2, "Shortest repeated sequence to mine")
	statsCmd.Flags().IntVar(&statsMaxN, "max", 8, "Longest repeated sequence to mine")
	statsCmd.Flags().IntVar(&statsTopK, "top", 5, "How many sequences to report per length")
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(journal.NewSessionRepository(db), args, statsLast)
	if err != nil {
		return err
	}

	rows, err := journal.NewMoveRepository(db).ListBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to list moves: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No moves recorded for this session")
		return nil
	}

	summary := analysis.Summarize(rows)

	fmt.Println(sessionTitle(session, len(rows)))
	fmt.Println()
	fmt.Printf("Total moves:     %d\n", summary.TotalMoves)
	fmt.Printf("Quarter turns:   %d\n", summary.QuarterTurns)
	fmt.Printf("Rotations:       %d\n", summary.Rotations)
	fmt.Printf("Optimized moves: %d (efficiency %.2f)\n", summary.OptimizedMoves, summary.Efficiency)
	if summary.MostUsedFace != "" {
		fmt.Printf("Most used face:  %s (%d times)\n",
			summary.MostUsedFace, summary.FaceCounts[summary.MostUsedFace])
	}

	if len(summary.FaceCounts) > 0 {
		fmt.Println()
		fmt.Println("Moves by face:")
		faces := make([]string, 0, len(summary.FaceCounts))
		for face := range summary.FaceCounts {
			faces = append(faces, face)
		}
		sort.Strings(faces)
		for _, face := range faces {
			fmt.Printf("  %-2s %d\n", face, summary.FaceCounts[face])
		}
	}

	report := analysis.MineNGrams(rows, statsMinN, statsMaxN, statsTopK)
	if len(report.TopNGrams) == 0 {
		fmt.Println()
		fmt.Println("No repeated sequences found")
		return nil
	}

	lengths := make([]int, 0, len(report.TopNGrams))
	for n := range report.TopNGrams {
		lengths = append(lengths, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	fmt.Println()
	fmt.Println("Repeated sequences:")
	for _, n := range lengths {
		for _, ng := range report.TopNGrams[n] {
			fmt.Printf("  %dx  %s\n", ng.Count, strings.Join(ng.Sequence, " "))
		}
	}

	return nil
}
