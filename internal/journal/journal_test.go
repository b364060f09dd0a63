package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	rubiks "github.com/HaineSensei/rubiks-cube-representation"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	require.Equal(t, 1, version)

	require.NoError(t, db.MigrateUp(), "migrations should be idempotent")
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	require.Equal(t, 1, version)
}

func TestSchemeEncoding(t *testing.T) {
	enc := EncodeScheme(rubiks.WesternScheme)
	require.Equal(t, "WYORGB", enc)

	dec, err := DecodeScheme(enc)
	require.NoError(t, err)
	require.Equal(t, rubiks.WesternScheme, dec)

	dec, err = DecodeScheme(EncodeScheme(rubiks.JapaneseScheme))
	require.NoError(t, err)
	require.Equal(t, rubiks.JapaneseScheme, dec)

	_, err = DecodeScheme("WYOR")
	require.ErrorIs(t, err, ErrBadScheme)
	_, err = DecodeScheme("WYORGZ")
	require.ErrorIs(t, err, ErrBadScheme)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create(3, rubiks.WesternScheme)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, id, s.SessionID)
	require.Equal(t, 3, s.Dimension)
	require.Equal(t, "WYORGB", s.Scheme)
	require.Nil(t, s.EndedAt)
	require.False(t, s.Solved)
	require.WithinDuration(t, time.Now().UTC(), s.CreatedAt, time.Minute)

	scheme, err := s.ColorScheme()
	require.NoError(t, err)
	require.Equal(t, rubiks.WesternScheme, scheme)

	last, err := sessions.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, id, last.SessionID)

	list, err := sessions.List(10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, sessions.Finish(id, true))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	require.True(t, s.Solved)

	require.NoError(t, sessions.Delete(id))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestGetMissingSession(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	s, err := sessions.Get("no-such-session")
	require.NoError(t, err)
	require.Nil(t, s)

	last, err := sessions.GetLast()
	require.NoError(t, err)
	require.Nil(t, last)

	require.Error(t, sessions.Finish("no-such-session", false))
}

func TestMoveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(4, rubiks.WesternScheme)
	require.NoError(t, err)

	ops := []rubiks.Operation{
		rubiks.BasicMove{Face: rubiks.FaceRight, Angle: rubiks.AngleCW},
		rubiks.BasicMove{Face: rubiks.FaceUp, Angle: rubiks.AngleACW},
		rubiks.WideMove{Face: rubiks.FaceFront, Angle: rubiks.AngleHalf, Depth: 2},
		rubiks.SliceMove{Face: rubiks.FaceLeft, Angle: rubiks.AngleCW, Layer: 2},
		rubiks.RangeMove{Face: rubiks.FaceDown, Angle: rubiks.AngleCW, StartLayer: 1, EndLayer: 2},
		rubiks.MiddleMove{Slice: rubiks.MiddleE, Angle: rubiks.AngleACW},
		rubiks.X2,
	}
	for i, op := range ops {
		_, err := moves.Append(id, i, op)
		require.NoError(t, err)
	}

	rows, err := moves.ListBySession(id)
	require.NoError(t, err)
	require.Len(t, rows, len(ops))

	for i, row := range rows {
		require.Equal(t, i, row.MoveIndex)
		got, err := row.Operation()
		require.NoError(t, err)
		require.True(t, got.TilePerm(4).Equal(ops[i].TilePerm(4)),
			"row %d should rebuild an operation equivalent to %v", i, ops[i])
	}

	require.Equal(t, "R", rows[0].Notation)
	require.Equal(t, "U'", rows[1].Notation)
	require.Equal(t, "Fw2", rows[2].Notation)
	require.Equal(t, "2L", rows[3].Notation)
	require.Equal(t, "1-2Dw", rows[4].Notation)
	require.Equal(t, "E'", rows[5].Notation)
	require.Equal(t, "x2", rows[6].Notation)

	count, err := moves.CountBySession(id)
	require.NoError(t, err)
	require.Equal(t, len(ops), count)

	next, err := moves.NextIndex(id)
	require.NoError(t, err)
	require.Equal(t, len(ops), next)
}

func TestAppendBatch(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, rubiks.WesternScheme)
	require.NoError(t, err)

	require.NoError(t, moves.AppendBatch(id, 0, rubiks.SexyMove))

	rows, err := moves.ListBySession(id)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "R", rows[0].Notation)
	require.Equal(t, "U", rows[1].Notation)
	require.Equal(t, "R'", rows[2].Notation)
	require.Equal(t, "U'", rows[3].Notation)

	next, err := moves.NextIndex(id)
	require.NoError(t, err)
	require.Equal(t, 4, next)

	require.NoError(t, moves.AppendBatch(id, next, []rubiks.Operation{rubiks.F2}))
	count, err := moves.CountBySession(id)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestAppendRejectsUnstorableOperations(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, rubiks.WesternScheme)
	require.NoError(t, err)

	_, err = moves.Append(id, 0, rubiks.IdentityPerm(3))
	require.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = moves.Append(id, 0, rubiks.X.Compose(rubiks.Y))
	require.ErrorIs(t, err, ErrUnsupportedOperation,
		"a rotation that is not an axis power has no stored form")

	count, err := moves.CountBySession(id)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestMoveRowRejectsBadColumns(t *testing.T) {
	_, err := MoveRow{Kind: "weird"}.Operation()
	require.ErrorIs(t, err, ErrUnknownMoveKind)

	_, err = MoveRow{Kind: KindBasic, Face: "Q"}.Operation()
	require.ErrorIs(t, err, ErrUnknownMoveKind)

	_, err = MoveRow{Kind: KindMiddle, Face: "R"}.Operation()
	require.ErrorIs(t, err, ErrUnknownMoveKind)

	_, err = MoveRow{Kind: KindRotation, Face: "w"}.Operation()
	require.ErrorIs(t, err, ErrUnknownMoveKind)
}

func TestDeleteSessionRemovesMoves(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3, rubiks.WesternScheme)
	require.NoError(t, err)
	require.NoError(t, moves.AppendBatch(id, 0, []rubiks.Operation{rubiks.R, rubiks.U}))

	require.NoError(t, sessions.Delete(id))

	count, err := moves.CountBySession(id)
	require.NoError(t, err)
	require.Zero(t, count)
}
