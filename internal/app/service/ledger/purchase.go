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

// CreateTransaction of a purchase, no money moves until it is frozen
func (s *Service) CreateTransaction(
	ctx context.Context,
	buyerID, sellerID int64,
	itemUID uuid.UUID,
	itemPrice decimal.Decimal,
) (*model.Transaction, error) {
	l := logger.Get(ctx, s).Operation("CreateTransaction")
	l.Debug().
		Int64("buyer", buyerID).
		Int64("seller", sellerID).
		Str("item_uid", itemUID.String()).
		Str("item_price", itemPrice.String()).
		Send()
	ctx = l.WithContext(ctx)

	if err := model.ValidateItemPrice(itemPrice, s.maxItemPrice, s.maxDigits); err != nil {
		logFailure(l, err, "Validation error")
		return nil, err
	}

	if buyerID == sellerID {
		err := fmt.Errorf("create transaction: %w", apperr.ErrDuplicateAccount)
		logFailure(l, err, "Validation error")
		return nil, err
	}

	var m *model.Transaction
	err := s.tx.InTx(ctx, func(tx *sql.Tx) error {
		var err error
		m, err = s.transactions.TxCreate(ctx, tx, &model.Transaction{
			AccountFrom: buyerID,
			AccountTo:   sellerID,
			ItemPrice:   itemPrice,
			ItemUID:     itemUID,
		})
		if err != nil {
			return err
		}

		_, err = s.history.TxCreate(ctx, tx, &model.TransactionHistory{
			TransactionID: m.ID,
			OperationType: model.HistoryCreated,
		})
		return err
	})
	if err != nil {
		logFailure(l, err, "Transaction create failed")
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	l.Info().Int64("transaction_id", m.ID).Msg("Transaction created")
	s.notify(events.TypeTransactionCreated, m)

	return m, nil
}

// FreezeTransaction charges the buyer, the withdrawal stays pending until the transaction is accepted
func (s *Service) FreezeTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	l := logger.Get(ctx, s).Operation("FreezeTransaction")
	l.Logger = l.With().Int64("transaction_id", id).Logger()
	l.Debug().Send()
	ctx = l.WithContext(ctx)

	var m *model.Transaction
	err := s.tx.InTx(ctx, func(tx *sql.Tx) error {
		var err error
		if m, err = s.transactions.TxLock(ctx, tx, id); err != nil {
			return err
		}

		if m.State != model.StateCreated {
			return fmt.Errorf("transaction %d is %s: %w", id, m.State, apperr.ErrInvalidState)
		}

		if _, _, err := s.TxWithdraw(ctx, tx, m.AccountFrom, m.ItemPrice, Pending(), ForTransaction(m.ID)); err != nil {
			return err
		}

		return s.transition(ctx, tx, m)
	})
	if err != nil {
		logFailure(l, err, "Transaction freeze failed")
		return nil, fmt.Errorf("freeze transaction: %w", err)
	}

	l.Info().Msg("Transaction frozen")
	s.notify(events.TypeTransactionFrozen, m)

	return m, nil
}

// AcceptTransaction credits the seller with the frozen funds
func (s *Service) AcceptTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	l := logger.Get(ctx, s).Operation("AcceptTransaction")
	l.Logger = l.With().Int64("transaction_id", id).Logger()
	l.Debug().Send()
	ctx = l.WithContext(ctx)

	var m *model.Transaction
	err := s.tx.InTx(ctx, func(tx *sql.Tx) error {
		var err error
		if m, err = s.transactions.TxLock(ctx, tx, id); err != nil {
			return err
		}

		if m.State != model.StateFrozen {
			return fmt.Errorf("transaction %d is %s: %w", id, m.State, apperr.ErrInvalidState)
		}

		if _, _, err := s.TxDeposit(ctx, tx, m.AccountTo, m.ItemPrice, ForTransaction(m.ID)); err != nil {
			return err
		}

		if err := s.changes.TxAcceptByTransaction(ctx, tx, m.ID); err != nil {
			return err
		}

		if err := s.transition(ctx, tx, m); err != nil {
			return err
		}

		_, err = s.history.TxCreate(ctx, tx, &model.TransactionHistory{
			TransactionID: m.ID,
			OperationType: model.HistoryCompleted,
		})
		return err
	})
	if err != nil {
		logFailure(l, err, "Transaction accept failed")
		return nil, fmt.Errorf("accept transaction: %w", err)
	}

	l.Info().Msg("Transaction accepted")
	s.notify(events.TypeTransactionAccepted, m)

	return m, nil
}

// transition moves a locked transaction to its next state
func (s *Service) transition(ctx context.Context, tx *sql.Tx, m *model.Transaction) error {
	next, ok := m.State.Next()
	if !ok {
		return fmt.Errorf("transaction %d is %s: %w", m.ID, m.State, apperr.ErrInvalidState)
	}

	if err := s.transactions.TxUpdateState(ctx, tx, m.ID, next); err != nil {
		return err
	}
	m.State = next

	return nil
}

func (s *Service) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	return s.transactions.Read(ctx, id)
}

// ListTransactionHistory of the transaction, newest first
func (s *Service) ListTransactionHistory(ctx context.Context, id int64) ([]*model.TransactionHistory, error) {
	if _, err := s.transactions.Read(ctx, id); err != nil {
		return nil, err
	}
	return s.history.AllByTransactionID(ctx, id)
}
