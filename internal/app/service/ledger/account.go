package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/service/events"
)

type changeOptions struct {
	pending       bool
	transactionID *int64
}

type ChangeOption func(*changeOptions)

// Pending writes the balance change not accepted, used for funds held by a purchase
func Pending() ChangeOption {
	return func(o *changeOptions) {
		o.pending = true
	}
}

// ForTransaction links the balance change to a purchase transaction
func ForTransaction(id int64) ChangeOption {
	return func(o *changeOptions) {
		o.transactionID = &id
	}
}

// Deposit amount to the account in its own atomic unit
func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error) {
	l := logger.Get(ctx, s).Operation("Deposit")
	l.Debug().Int64("account_id", accountID).Str("amount", amount.String()).Send()
	ctx = l.WithContext(ctx)

	if err := s.validateAmount(amount); err != nil {
		logFailure(l, err, "Validation error")
		return nil, err
	}

	var (
		m      *model.Account
		change *model.BalanceChange
	)
	err := s.tx.InTx(ctx, func(tx *sql.Tx) (err error) {
		m, change, err = s.TxDeposit(ctx, tx, accountID, amount)
		return err
	})
	if err != nil {
		logFailure(l, err, "Deposit failed")
		return nil, fmt.Errorf("deposit: %w", err)
	}

	s.notify(events.TypeBalanceChanged, change)

	return m, nil
}

// Withdraw amount from the account in its own atomic unit
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error) {
	l := logger.Get(ctx, s).Operation("Withdraw")
	l.Debug().Int64("account_id", accountID).Str("amount", amount.String()).Send()
	ctx = l.WithContext(ctx)

	if err := s.validateAmount(amount); err != nil {
		logFailure(l, err, "Validation error")
		return nil, err
	}

	var (
		m      *model.Account
		change *model.BalanceChange
	)
	err := s.tx.InTx(ctx, func(tx *sql.Tx) (err error) {
		m, change, err = s.TxWithdraw(ctx, tx, accountID, amount)
		return err
	})
	if err != nil {
		logFailure(l, err, "Withdraw failed")
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	s.notify(events.TypeBalanceChanged, change)

	return m, nil
}

// TxDeposit amount within the tx, the account row stays locked until tx ends
func (s *Service) TxDeposit(ctx context.Context, tx *sql.Tx, accountID int64, amount decimal.Decimal, opts ...ChangeOption) (*model.Account, *model.BalanceChange, error) {
	return s.txMutate(ctx, tx, accountID, amount, model.OperationDeposit, opts...)
}

// TxWithdraw amount within the tx, the account row stays locked until tx ends
func (s *Service) TxWithdraw(ctx context.Context, tx *sql.Tx, accountID int64, amount decimal.Decimal, opts ...ChangeOption) (*model.Account, *model.BalanceChange, error) {
	return s.txMutate(ctx, tx, accountID, amount, model.OperationWithdraw, opts...)
}

func (s *Service) txMutate(
	ctx context.Context,
	tx *sql.Tx,
	accountID int64,
	amount decimal.Decimal,
	op model.OperationType,
	opts ...ChangeOption,
) (*model.Account, *model.BalanceChange, error) {
	if err := s.validateAmount(amount); err != nil {
		return nil, nil, err
	}

	o := &changeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	// never trust a previously loaded account, only the row read under lock
	m, err := s.accounts.TxLock(ctx, tx, accountID)
	if err != nil {
		return nil, nil, err
	}

	var balance decimal.Decimal
	switch op {
	case model.OperationDeposit:
		balance = m.Balance.Add(amount)
		if err := s.validateAmount(balance); err != nil {
			return nil, nil, fmt.Errorf("account %d balance limit: %w", accountID, apperr.ErrInvalidAmount)
		}
	case model.OperationWithdraw:
		balance = m.Balance.Sub(amount)
		if balance.IsNegative() {
			return nil, nil, fmt.Errorf("account %d: %w", accountID, apperr.ErrInsufficientFunds)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported operation %s", op)
	}

	if err := s.accounts.TxUpdateBalance(ctx, tx, m.ID, balance); err != nil {
		return nil, nil, err
	}

	change, err := s.changes.TxCreate(ctx, tx, &model.BalanceChange{
		AccountID:     m.ID,
		Amount:        amount,
		IsAccepted:    !o.pending,
		OperationType: op,
		TransactionID: o.transactionID,
	})
	if err != nil {
		return nil, nil, err
	}

	m.Balance = balance

	return m, change, nil
}

// CreateAccount with zero balance for the user
func (s *Service) CreateAccount(ctx context.Context, userUID uuid.UUID) (*model.Account, error) {
	l := logger.Get(ctx, s).Operation("CreateAccount")

	if userUID == uuid.Nil {
		err := fmt.Errorf("%w: empty user uid", apperr.ErrInvalidInput)
		logFailure(l, err, "Validation error")
		return nil, err
	}

	m, err := s.accounts.Create(ctx, userUID)
	if err != nil {
		logFailure(l, err, "Account create failed")
		return nil, err
	}

	l.Info().Int64("account_id", m.ID).Str("user_uid", userUID.String()).Msg("Account created")

	return m, nil
}

func (s *Service) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return s.accounts.Read(ctx, id)
}

func (s *Service) GetAccountByUser(ctx context.Context, userUID uuid.UUID) (*model.Account, error) {
	return s.accounts.ReadByUserUID(ctx, userUID)
}

// DeleteAccount fails with apperr.ErrProtected while any ledger record references the account
func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	l := logger.Get(ctx, s).Operation("DeleteAccount")

	if err := s.accounts.Delete(ctx, id); err != nil {
		logFailure(l, err, "Account delete failed")
		return err
	}

	l.Info().Int64("account_id", id).Msg("Account deleted")

	return nil
}

// ListBalanceChanges of the account, newest first
func (s *Service) ListBalanceChanges(ctx context.Context, accountID int64) ([]*model.BalanceChange, error) {
	if _, err := s.accounts.Read(ctx, accountID); err != nil {
		return nil, err
	}
	return s.changes.AllByAccountID(ctx, accountID, s.historyLimit)
}
