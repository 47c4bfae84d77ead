package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/storage"
)

// storage.BalanceChangeRepository interface implementation
var _ storage.BalanceChangeRepository = (*BalanceChangeRepository)(nil)

type BalanceChangeRepository struct {
	db *sql.DB
}

func (r *BalanceChangeRepository) LoggerComponent() string {
	return "BalanceChangeRepository"
}

func NewBalanceChangeRepository(db *sql.DB) (*BalanceChangeRepository, error) {
	s := &BalanceChangeRepository{
		db: db,
	}
	return s, nil
}

// TxCreate implementation of interface storage.BalanceChangeRepository
func (r *BalanceChangeRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.BalanceChange) (*model.BalanceChange, error) {
	const SQL = `
		INSERT INTO balance_changes (account_id, amount, is_accepted, operation_type, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
`
	var transactionID sql.NullInt64
	if m.TransactionID != nil {
		transactionID = sql.NullInt64{Int64: *m.TransactionID, Valid: true}
	}

	err := tx.QueryRowContext(ctx, SQL, m.AccountID, m.Amount, m.IsAccepted, m.OperationType, transactionID).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert balance change: %w", translate(ctx, err))
	}

	return m, nil
}

// TxAcceptByTransaction implementation of interface storage.BalanceChangeRepository
func (r *BalanceChangeRepository) TxAcceptByTransaction(ctx context.Context, tx *sql.Tx, transactionID int64) error {
	const SQL = `
		UPDATE balance_changes
		SET is_accepted=TRUE
		WHERE transaction_id=$1 AND operation_type=$2 AND NOT is_accepted
`

	if _, err := tx.ExecContext(ctx, SQL, transactionID, model.OperationWithdraw); err != nil {
		return fmt.Errorf("accept balance changes of transaction %d: %w", transactionID, translate(ctx, err))
	}

	return nil
}

// AllByAccountID implementation of interface storage.BalanceChangeRepository
func (r *BalanceChangeRepository) AllByAccountID(ctx context.Context, accountID int64, limit int) ([]*model.BalanceChange, error) {
	l := logger.Ctx(ctx).With().Str("method", "AllByAccountID").Logger()

	const SQL = `
		SELECT id, account_id, amount, created_at, is_accepted, operation_type, transaction_id
		FROM balance_changes
		WHERE account_id=$1
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

	res := make([]*model.BalanceChange, 0)

	for rows.Next() {
		m := &model.BalanceChange{}
		var transactionID sql.NullInt64
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Amount, &m.CreatedAt, &m.IsAccepted, &m.OperationType, &transactionID); err != nil {
			l.Debug().Err(err).Send()
			return nil, fmt.Errorf("scan: %w", err)
		}
		if transactionID.Valid {
			id := transactionID.Int64
			m.TransactionID = &id
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", translate(ctx, err))
	}

	return res, nil
}
