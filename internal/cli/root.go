// Package cli implements the command-line interface for rubiks.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	sizeFlag   int
	schemeFlag string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubiks",
	Short: "NxNxN cube playground",
	Long: `Rubiks - a playground for NxNxN Rubik's cube states.

Scramble and explore cubes of any size, journal move sessions to a local
SQLite database, and replay or analyze what you recorded.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubiks/rubiks.db)")
	rootCmd.PersistentFlags().IntVarP(&sizeFlag, "size", "n", 3, "Cube size (layers per edge)")
	rootCmd.PersistentFlags().StringVar(&schemeFlag, "scheme", "western", "Color scheme (western, japanese, or a YAML file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
