package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.AccountRepository interface implementation
var _ storage.AccountRepository = (*AccountRepository)(nil)

type AccountRepository struct {
	db *sql.DB
}

func (r *AccountRepository) LoggerComponent() string {
	return "AccountRepository"
}

func NewAccountRepository(db *sql.DB) (*AccountRepository, error) {
	s := &AccountRepository{
		db: db,
	}
	return s, nil
}

// Create implementation of interface storage.AccountRepository
func (r *AccountRepository) Create(ctx context.Context, userUID uuid.UUID) (*model.Account, error) {
	const SQL = `
		INSERT INTO accounts (user_uid)
		VALUES ($1)
		RETURNING id, balance, created_at
`
	m := &model.Account{UserUID: userUID}

	err := r.db.QueryRowContext(ctx, SQL, userUID).Scan(&m.ID, &m.Balance, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert account for user %s: %w", userUID, translate(ctx, err))
	}

	return m, nil
}

// Read implementation of interface storage.AccountRepository
func (r *AccountRepository) Read(ctx context.Context, id int64) (*model.Account, error) {
	const SQL = `
		SELECT id, user_uid, balance, created_at
		FROM accounts
		WHERE id=$1
`
	m := &model.Account{}

	err := r.db.QueryRowContext(ctx, SQL, id).Scan(&m.ID, &m.UserUID, &m.Balance, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", id, translate(ctx, err))
	}

	return m, nil
}

// ReadByUserUID implementation of interface storage.AccountRepository
func (r *AccountRepository) ReadByUserUID(ctx context.Context, userUID uuid.UUID) (*model.Account, error) {
	const SQL = `
		SELECT id, user_uid, balance, created_at
		FROM accounts
		WHERE user_uid=$1
`
	m := &model.Account{}

	err := r.db.QueryRowContext(ctx, SQL, userUID).Scan(&m.ID, &m.UserUID, &m.Balance, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("account of user %s: %w", userUID, translate(ctx, err))
	}

	return m, nil
}

// Delete implementation of interface storage.AccountRepository
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	l := logger.Get(ctx, r)
	const SQL = `DELETE FROM accounts WHERE id=$1`

	res, err := r.db.ExecContext(ctx, SQL, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			l.Debug().Err(err).Int64("account_id", id).Msg("Account is referenced")
			return fmt.Errorf("delete account %d: %w", id, apperr.ErrProtected)
		}
		return fmt.Errorf("delete account %d: %w", id, translate(ctx, err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete account %d: %w", id, apperr.ErrNotFound)
	}

	return nil
}

// TxLock implementation of interface storage.AccountRepository
func (r *AccountRepository) TxLock(ctx context.Context, tx *sql.Tx, id int64) (*model.Account, error) {
	const SQL = `
		SELECT id, user_uid, balance, created_at
		FROM accounts
		WHERE id=$1
		FOR UPDATE
`
	m := &model.Account{}

	err := tx.QueryRowContext(ctx, SQL, id).Scan(&m.ID, &m.UserUID, &m.Balance, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("lock account %d: %w", id, translate(ctx, err))
	}

	return m, nil
}

// TxUpdateBalance implementation of interface storage.AccountRepository
func (r *AccountRepository) TxUpdateBalance(ctx context.Context, tx *sql.Tx, id int64, balance decimal.Decimal) error {
	const SQL = `UPDATE accounts SET balance=$1 WHERE id=$2`

	if _, err := tx.ExecContext(ctx, SQL, balance, id); err != nil {
		return fmt.Errorf("update balance of account %d: %w", id, translate(ctx, err))
	}

	return nil
}
