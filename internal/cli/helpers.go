package cli

import (
	"fmt"
	"strings"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
	"github.com/HaineSensei/rubiks-cube-representation/internal/journal"
	"github.com/HaineSensei/rubiks-cube-representation/internal/render"
	"github.com/HaineSensei/rubiks-cube-representation/internal/schemefile"
)

// openDB opens the journal database honoring the --db flag and applies
// pending migrations.
func openDB() (*journal.DB, error) {
	var db *journal.DB
	var err error

	if dbPath == "" {
		db, err = journal.OpenDefault()
	} else {
		db, err = journal.Open(dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if verbose {
		fmt.Printf("Using database: %s\n", db.Path())
	}

	return db, nil
}

// resolveScheme maps the --scheme flag to a color scheme. Anything
// other than the two presets is treated as a path to a YAML file.
func resolveScheme() (rubiks.Scheme, error) {
	switch strings.ToLower(schemeFlag) {
	case "", "western":
		return rubiks.WesternScheme, nil
	case "japanese":
		return rubiks.JapaneseScheme, nil
	default:
		return schemefile.Load(schemeFlag)
	}
}

// resolveSize validates the --size flag.
func resolveSize() (int, error) {
	if sizeFlag < 1 {
		return 0, fmt.Errorf("cube size must be at least 1, got %d", sizeFlag)
	}
	return sizeFlag, nil
}

// resolveSession finds the session named by the positional argument or
// selected by --last.
func resolveSession(repo *journal.SessionRepository, args []string, last bool) (*journal.Session, error) {
	if len(args) > 0 {
		session, err := repo.Get(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
		if session == nil {
			return nil, fmt.Errorf("session not found: %s", args[0])
		}
		return session, nil
	}

	if !last {
		return nil, fmt.Errorf("specify a session id or --last")
	}

	session, err := repo.GetLast()
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("no sessions recorded yet")
	}
	return session, nil
}

// rebuildState replays a session's journal onto a solved cube.
func rebuildState(session *journal.Session, rows []journal.MoveRow) (*rubiks.CubeState, error) {
	scheme, err := session.ColorScheme()
	if err != nil {
		return nil, err
	}

	state := rubiks.NewSolved(session.Dimension, scheme)
	for _, row := range rows {
		op, err := row.Operation()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", row.MoveIndex, err)
		}
		state = state.Apply(op)
	}

	return state, nil
}

func renderOptions(labels, ascii bool) []render.Option {
	var opts []render.Option
	if labels {
		opts = append(opts, render.WithLabels(true))
	}
	if ascii {
		opts = append(opts, render.WithASCII(true))
	}
	return opts
}

func sessionTitle(s *journal.Session, moveCount int) string {
	return fmt.Sprintf("Session %s (%dx%dx%d, %d moves)",
		s.SessionID, s.Dimension, s.Dimension, s.Dimension, moveCount)
}
