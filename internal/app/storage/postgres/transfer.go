package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.TransferRepository interface implementation
var _ storage.TransferRepository = (*TransferRepository)(nil)

type TransferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) (*TransferRepository, error) {
	s := &TransferRepository{
		db: db,
	}
	return s, nil
}

// TxCreate implementation of interface storage.TransferRepository
func (r *TransferRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.TransferHistory) (*model.TransferHistory, error) {
	const SQL = `
		INSERT INTO transfer_history (account_from, account_to, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
`

	err := tx.QueryRowContext(ctx, SQL, m.AccountFrom, m.AccountTo, m.Amount).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transfer: %w", translate(ctx, err))
	}

	return m, nil
}

// AllByAccountID implementation of interface storage.TransferRepository
func (r *TransferRepository) AllByAccountID(ctx context.Context, accountID int64, limit int) ([]*model.TransferHistory, error) {
	l := logger.Ctx(ctx).With().Str("method", "AllByAccountID").Logger()

	const SQL = `
		SELECT id, account_from, account_to, amount, created_at
		FROM transfer_history
		WHERE account_from=$1 OR account_to=$1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
`
	rows, err := r.db.QueryContext(ctx, SQL, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("select: %w", translate(ctx, err))
	}
	defer func() {
		_ = rows.Close()
	}()

	res := make([]*model.TransferHistory, 0)

	for rows.Next() {
		m := &model.TransferHistory{}
		if err := rows.Scan(&m.ID, &m.AccountFrom, &m.AccountTo, &m.Amount, &m.CreatedAt); err != nil {
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
