package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ledger/internal/app/apperr"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.TransactionRepository interface implementation
var _ storage.TransactionRepository = (*TransactionRepository)(nil)

type TransactionRepository struct {
	db *sql.DB
}

func (r *TransactionRepository) LoggerComponent() string {
	return "TransactionRepository"
}

func NewTransactionRepository(db *sql.DB) (*TransactionRepository, error) {
	s := &TransactionRepository{
		db: db,
	}
	return s, nil
}

// TxCreate implementation of interface storage.TransactionRepository
func (r *TransactionRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.Transaction) (*model.Transaction, error) {
	const SQL = `
		INSERT INTO transactions (account_from, account_to, item_price, item_uid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
`

	err := tx.QueryRowContext(ctx, SQL, m.AccountFrom, m.AccountTo, m.ItemPrice, m.ItemUID).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", translate(ctx, err))
	}
	m.State = model.StateCreated

	return m, nil
}

// Read implementation of interface storage.TransactionRepository
func (r *TransactionRepository) Read(ctx context.Context, id int64) (*model.Transaction, error) {
	const SQL = `
		SELECT id, account_from, account_to, item_price, item_uid, is_frozen, is_accepted, created_at
		FROM transactions
		WHERE id=$1
`
	m, err := scanTransaction(r.db.QueryRowContext(ctx, SQL, id))
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", id, translate(ctx, err))
	}

	return m, nil
}

// TxLock implementation of interface storage.TransactionRepository
func (r *TransactionRepository) TxLock(ctx context.Context, tx *sql.Tx, id int64) (*model.Transaction, error) {
	const SQL = `
		SELECT id, account_from, account_to, item_price, item_uid, is_frozen, is_accepted, created_at
		FROM transactions
		WHERE id=$1
		FOR UPDATE
`
	m, err := scanTransaction(tx.QueryRowContext(ctx, SQL, id))
	if err != nil {
		return nil, fmt.Errorf("lock transaction %d: %w", id, translate(ctx, err))
	}

	return m, nil
}

// TxUpdateState implementation of interface storage.TransactionRepository
func (r *TransactionRepository) TxUpdateState(ctx context.Context, tx *sql.Tx, id int64, state model.TransactionState) error {
	const SQL = `UPDATE transactions SET is_frozen=$1, is_accepted=$2 WHERE id=$3`

	frozen, accepted := state.Flags()
	res, err := tx.ExecContext(ctx, SQL, frozen, accepted, id)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", id, translate(ctx, err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update transaction %d: %w", id, apperr.ErrNotFound)
	}

	return nil
}

func scanTransaction(row *sql.Row) (*model.Transaction, error) {
	m := &model.Transaction{}
	var frozen, accepted bool

	if err := row.Scan(&m.ID, &m.AccountFrom, &m.AccountTo, &m.ItemPrice, &m.ItemUID, &frozen, &accepted, &m.CreatedAt); err != nil {
		return nil, err
	}

	state, err := model.StateFromFlags(frozen, accepted)
	if err != nil {
		return nil, err
	}
	m.State = state

	return m, nil
}
