package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.TransactionHistoryRepository interface implementation
var _ storage.TransactionHistoryRepository = (*TransactionHistoryRepository)(nil)

type TransactionHistoryRepository struct {
	db *sql.DB
}

func NewTransactionHistoryRepository(db *sql.DB) (*TransactionHistoryRepository, error) {
	s := &TransactionHistoryRepository{
		db: db,
	}
	return s, nil
}

// TxCreate implementation of interface storage.TransactionHistoryRepository
func (r *TransactionHistoryRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.TransactionHistory) (*model.TransactionHistory, error) {
	const SQL = `
		INSERT INTO transaction_history (transaction_id, operation_type)
		VALUES ($1, $2)
		RETURNING id, created_at
`

	err := tx.QueryRowContext(ctx, SQL, m.TransactionID, m.OperationType).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transaction history: %w", translate(ctx, err))
	}

	return m, nil
}

// AllByTransactionID implementation of interface storage.TransactionHistoryRepository
func (r *TransactionHistoryRepository) AllByTransactionID(ctx context.Context, transactionID int64) ([]*model.TransactionHistory, error) {
	l := logger.Ctx(ctx).With().Str("method", "AllByTransactionID").Logger()

	const SQL = `
		SELECT id, transaction_id, created_at, operation_type
		FROM transaction_history
		WHERE transaction_id=$1
		ORDER BY created_at DESC, id DESC
`
	rows, err := r.db.QueryContext(ctx, SQL, transactionID)
	if err != nil {
		return nil, fmt.Errorf("select: %w", translate(ctx, err))
	}
	defer func() {
		_ = rows.Close()
	}()

	res := make([]*model.TransactionHistory, 0)

	for rows.Next() {
		m := &model.TransactionHistory{}
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.CreatedAt, &m.OperationType); err != nil {
			l.Debug().Err(err).Send()
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", translate(ctx, err))
	}

	return res, nil
}
