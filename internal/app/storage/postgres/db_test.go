package postgres

import (
	"context"
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestDB_InTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("SELECT set_config\\('lock_timeout', \\$1, true\\)").
			WithArgs("1500ms").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		d := NewDB(db, WithLockTimeout(1500*time.Millisecond))
		called := false
		err = d.InTx(ctx, func(tx *sql.Tx) error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		failure := errors.New("failure")
		err = NewDB(db).InTx(ctx, func(tx *sql.Tx) error {
			return failure
		})
		assert.ErrorIs(t, err, failure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock timeout setup failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("set_config").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err = NewDB(db, WithLockTimeout(time.Second)).InTx(ctx, func(tx *sql.Tx) error {
			t.Fatal("must not run")
			return nil
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
