package handler

import (
	"context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/model"
)

// Ledger operations served over http
type Ledger interface {
	CreateAccount(ctx context.Context, userUID uuid.UUID) (*model.Account, error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	GetAccountByUser(ctx context.Context, userUID uuid.UUID) (*model.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ListBalanceChanges(ctx context.Context, accountID int64) ([]*model.BalanceChange, error)
	ListTransfers(ctx context.Context, accountID int64) ([]*model.TransferHistory, error)
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error)
	Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*model.TransferHistory, error)
	CreateTransaction(ctx context.Context, buyerID, sellerID int64, itemUID uuid.UUID, itemPrice decimal.Decimal) (*model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactionHistory(ctx context.Context, id int64) ([]*model.TransactionHistory, error)
	FreezeTransaction(ctx context.Context, id int64) (*model.Transaction, error)
	AcceptTransaction(ctx context.Context, id int64) (*model.Transaction, error)
}
