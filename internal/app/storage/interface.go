//go:generate mockgen -source=./interface.go -destination=./mock/storage.go -package=storagemock
package storage

import (
	"context"
	"database/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/model"
)

// Transactor opens the atomic unit every balance mutation runs in
type Transactor interface {
	// InTx runs fn within one database transaction, commits if fn returns nil and rolls back otherwise
	InTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type AccountRepository interface {
	// Create a new model.Account with zero balance
	Create(ctx context.Context, userUID uuid.UUID) (*model.Account, error)
	// Read instance of model.Account, without a lock
	Read(ctx context.Context, id int64) (*model.Account, error)
	// ReadByUserUID instance of model.Account, without a lock
	ReadByUserUID(ctx context.Context, userUID uuid.UUID) (*model.Account, error)
	// Delete an account that no ledger record references
	Delete(ctx context.Context, id int64) error
	// TxLock re-fetches model.Account and holds its row lock until tx ends
	TxLock(ctx context.Context, tx *sql.Tx, id int64) (*model.Account, error)
	// TxUpdateBalance of a locked account
	TxUpdateBalance(ctx context.Context, tx *sql.Tx, id int64, balance decimal.Decimal) error
}

type BalanceChangeRepository interface {
	// TxCreate a new model.BalanceChange within the tx
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.BalanceChange) (*model.BalanceChange, error)
	// TxAcceptByTransaction marks pending withdrawals of a transaction accepted
	TxAcceptByTransaction(ctx context.Context, tx *sql.Tx, transactionID int64) error
	// AllByAccountID returns newest balance changes first
	AllByAccountID(ctx context.Context, accountID int64, limit int) ([]*model.BalanceChange, error)
}

type TransferRepository interface {
	// TxCreate a new model.TransferHistory within the tx
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.TransferHistory) (*model.TransferHistory, error)
	// AllByAccountID returns newest transfers from or to the account first
	AllByAccountID(ctx context.Context, accountID int64, limit int) ([]*model.TransferHistory, error)
}

type TransactionRepository interface {
	// TxCreate a new model.Transaction within the tx
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.Transaction) (*model.Transaction, error)
	// Read instance of model.Transaction, without a lock
	Read(ctx context.Context, id int64) (*model.Transaction, error)
	// TxLock re-fetches model.Transaction and holds its row lock until tx ends
	TxLock(ctx context.Context, tx *sql.Tx, id int64) (*model.Transaction, error)
	// TxUpdateState of a locked transaction
	TxUpdateState(ctx context.Context, tx *sql.Tx, id int64, state model.TransactionState) error
}

type TransactionHistoryRepository interface {
	// TxCreate a new model.TransactionHistory within the tx
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.TransactionHistory) (*model.TransactionHistory, error)
	// AllByTransactionID returns newest records first
	AllByTransactionID(ctx context.Context, transactionID int64) ([]*model.TransactionHistory, error)
}
