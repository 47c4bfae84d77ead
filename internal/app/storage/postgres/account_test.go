package postgres

import (
	"context"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	pg "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ledger/internal/app/apperr"
	"testing"
	"time"
)

func newAccountRepository(t *testing.T) (*AccountRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r, err := NewAccountRepository(db)
	require.NoError(t, err)

	return r, mock
}

func TestAccountRepository_TxLock(t *testing.T) {
	ctx := context.Background()
	r, mock := newAccountRepository(t)
	uid := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM accounts WHERE id=\\$1 FOR UPDATE").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_uid", "balance", "created_at"}).
			AddRow(3, uid.String(), "120.50", now))
	mock.ExpectQuery("FROM accounts WHERE id=\\$1 FOR UPDATE").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_uid", "balance", "created_at"}))

	tx, err := r.db.Begin()
	require.NoError(t, err)

	m, err := r.TxLock(ctx, tx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.ID)
	assert.Equal(t, uid, m.UserUID)
	assert.True(t, m.Balance.Equal(decimal.RequireFromString("120.50")))

	_, err = r.TxLock(ctx, tx, 4)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_TxUpdateBalance(t *testing.T) {
	ctx := context.Background()
	r, mock := newAccountRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance=\\$1 WHERE id=\\$2").
		WithArgs(decimal.RequireFromString("10"), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts SET balance=\\$1 WHERE id=\\$2").
		WithArgs(decimal.RequireFromString("-1"), int64(1)).
		WillReturnError(&pg.Error{Code: pgerrcode.CheckViolation, Constraint: constraintBalanceNonNegative})

	tx, err := r.db.Begin()
	require.NoError(t, err)

	assert.NoError(t, r.TxUpdateBalance(ctx, tx, 1, decimal.RequireFromString("10")))
	assert.ErrorIs(t, r.TxUpdateBalance(ctx, tx, 1, decimal.RequireFromString("-1")), apperr.ErrInsufficientFunds)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	r, mock := newAccountRepository(t)
	uid := uuid.New()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(uid).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "created_at"}).AddRow(1, "0", time.Now()))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(uid).
		WillReturnError(&pg.Error{Code: pgerrcode.UniqueViolation})

	m, err := r.Create(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)
	assert.True(t, m.Balance.IsZero())

	_, err = r.Create(ctx, uid)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ReadByUserUID(t *testing.T) {
	ctx := context.Background()
	r, mock := newAccountRepository(t)
	uid := uuid.New()

	mock.ExpectQuery("FROM accounts WHERE user_uid=\\$1").
		WithArgs(uid).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_uid", "balance", "created_at"}).
			AddRow(5, uid.String(), "7.25", time.Now()))
	mock.ExpectQuery("FROM accounts WHERE user_uid=\\$1").
		WithArgs(uid).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_uid", "balance", "created_at"}))

	m, err := r.ReadByUserUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(5), m.ID)
	assert.Equal(t, uid, m.UserUID)
	assert.True(t, m.Balance.Equal(decimal.RequireFromString("7.25")))

	_, err = r.ReadByUserUID(ctx, uid)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r, mock := newAccountRepository(t)

	mock.ExpectExec("DELETE FROM accounts WHERE id=\\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM accounts WHERE id=\\$1").
		WithArgs(int64(2)).
		WillReturnError(&pg.Error{Code: pgerrcode.ForeignKeyViolation})
	mock.ExpectExec("DELETE FROM accounts WHERE id=\\$1").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, r.Delete(ctx, 1))
	assert.ErrorIs(t, r.Delete(ctx, 2), apperr.ErrProtected)
	assert.ErrorIs(t, r.Delete(ctx, 3), apperr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
