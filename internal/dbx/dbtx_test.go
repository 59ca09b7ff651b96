package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, author TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func noteCount(t *testing.T, q DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM notes`).Scan(&n))
	return n
}

func insertNote(ctx context.Context, tx DBTX, author string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO notes(author) VALUES (?)`, author)
	return err
}

func TestWithTx_SQLite(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fn        TxFunc
		wantErr   error
		wantCount int
	}{
		{
			name:      "commit",
			fn:        func(ctx context.Context, tx DBTX) error { return insertNote(ctx, tx, "alice") },
			wantCount: 1,
		},
		{
			name: "rollback on error",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := insertNote(ctx, tx, "alice"); err != nil {
					return err
				}
				return errBoom
			},
			wantErr:   errBoom,
			wantCount: 0,
		},
		{
			name: "writes visible inside tx",
			fn: func(ctx context.Context, tx DBTX) error {
				for _, a := range []string{"alice", "alice", "bob"} {
					if err := insertNote(ctx, tx, a); err != nil {
						return err
					}
				}
				if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE author = 'alice'`); err != nil {
					return err
				}
				if n := noteCount(t, tx); n != 1 {
					return errors.New("uncommitted rows not visible")
				}
				return nil
			},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openSQLite(t)

			err := WithTx(context.Background(), db, nil, tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCount, noteCount(t, db))
		})
	}
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openSQLite(t)

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertNote(ctx, tx, "alice"))
			panic("kaput")
		})
	})
	assert.Equal(t, 0, noteCount(t, db))
}

func TestWithTx_BeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.ErrorContains(t, err, "begin tx")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errCommit := errors.New("serialization failure")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errCommit)

	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error { return nil })
	assert.ErrorIs(t, err, errCommit)
	assert.ErrorContains(t, err, "commit tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackFailureIsJoined(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errFn := errors.New("fn failed")
	errRollback := errors.New("connection reset")
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errRollback)

	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error { return errFn })
	assert.ErrorIs(t, err, errFn)
	assert.ErrorIs(t, err, errRollback)
	assert.NoError(t, mock.ExpectationsWereMet())
}
