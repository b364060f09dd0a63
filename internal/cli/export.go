package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
)

var (
	exportLast   bool
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a session's moves",
	Long: `Export the move sequence from a session in text or JSON format.

Examples:
  rubiks export --last
  rubiks export <session-id> --format json
  rubiks export <session-id> -o moves.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the most recent session")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(journal.NewSessionRepository(db), args, exportLast)
	if err != nil {
		return err
	}

	rows, err := journal.NewMoveRepository(db).ListBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to list moves: %w", err)
	}

	if len(rows) == 0 {
		return fmt.Errorf("no moves found for session %s", session.SessionID)
	}

	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		notations := make([]string, len(rows))
		for i, row := range rows {
			notations[i] = row.Notation
		}
		output = strings.Join(notations, " ")

	case "json":
		type MoveJSON struct {
			MoveIndex    int    `json:"move_index"`
			Kind         string `json:"kind"`
			Face         string `json:"face,omitempty"`
			QuarterTurns int    `json:"quarter_turns"`
			Depth        int    `json:"depth,omitempty"`
			Layer        int    `json:"layer,omitempty"`
			EndLayer     int    `json:"end_layer,omitempty"`
			Notation     string `json:"notation"`
			AppliedAt    string `json:"applied_at"`
		}

		movesJSON := make([]MoveJSON, len(rows))
		for i, row := range rows {
			movesJSON[i] = MoveJSON{
				MoveIndex:    row.MoveIndex,
				Kind:         string(row.Kind),
				Face:         row.Face,
				QuarterTurns: row.QuarterTurns,
				Depth:        row.Depth,
				Layer:        row.Layer,
				EndLayer:     row.EndLayer,
				Notation:     row.Notation,
				AppliedAt:    row.AppliedAt.Format(time.RFC3339),
			}
		}

		data, err := json.MarshalIndent(movesJSON, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported %d moves to %s\n", len(rows), exportOutput)

	return nil
}
