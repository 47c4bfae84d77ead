package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/service/events"
)

// Transfer amount between two distinct accounts in one atomic unit
func (s *Service) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*model.TransferHistory, error) {
	l := logger.Get(ctx, s).Operation("Transfer")
	l.Debug().Int64("account_from", fromID).Int64("account_to", toID).Str("amount", amount.String()).Send()
	ctx = l.WithContext(ctx)

	if fromID == toID {
		err := fmt.Errorf("transfer: %w", apperr.ErrDuplicateAccount)
		logFailure(l, err, "Validation error")
		return nil, err
	}

	if err := s.validateAmount(amount); err != nil {
		logFailure(l, err, "Validation error")
		return nil, err
	}

	var m *model.TransferHistory
	err := s.tx.InTx(ctx, func(tx *sql.Tx) error {
		// opposite transfers between the same pair must not wait on each other in a cycle
		for _, id := range lockOrder(fromID, toID) {
			if _, err := s.accounts.TxLock(ctx, tx, id); err != nil {
				return err
			}
		}

		if _, _, err := s.TxWithdraw(ctx, tx, fromID, amount); err != nil {
			return err
		}

		if _, _, err := s.TxDeposit(ctx, tx, toID, amount); err != nil {
			return err
		}

		var err error
		m, err = s.transfers.TxCreate(ctx, tx, &model.TransferHistory{
			AccountFrom: fromID,
			AccountTo:   toID,
			Amount:      amount,
		})
		return err
	})
	if err != nil {
		logFailure(l, err, "Transfer failed")
		return nil, fmt.Errorf("transfer: %w", err)
	}

	l.Info().Int64("transfer_id", m.ID).Msg("Transfer done")
	s.notify(events.TypeTransferCompleted, m)

	return m, nil
}

// ListTransfers from or to the account, newest first
func (s *Service) ListTransfers(ctx context.Context, accountID int64) ([]*model.TransferHistory, error) {
	if _, err := s.accounts.Read(ctx, accountID); err != nil {
		return nil, err
	}
	return s.transfers.AllByAccountID(ctx, accountID, s.historyLimit)
}

func lockOrder(a, b int64) []int64 {
	if a < b {
		return []int64{a, b}
	}
	return []int64{b, a}
}
