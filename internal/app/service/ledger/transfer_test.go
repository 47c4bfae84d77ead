package ledger

import (
	"context"
	"database/sql"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ledger/internal/app/apperr"
	"ledger/internal/app/model"
	"ledger/internal/app/service/events"
	"testing"
)

func TestService_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("accounts are locked in ascending order", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.lock(2, "0"),
			f.lock(5, "100"),
			f.lock(5, "100"),
			f.updateBalance(5, "70"),
			f.recordChange(func(m *model.BalanceChange) {
				assert.Equal(t, int64(5), m.AccountID)
				assert.Equal(t, model.OperationWithdraw, m.OperationType)
			}),
			f.lock(2, "0"),
			f.updateBalance(2, "30"),
			f.recordChange(func(m *model.BalanceChange) {
				assert.Equal(t, int64(2), m.AccountID)
				assert.Equal(t, model.OperationDeposit, m.OperationType)
			}),
			f.transfers.EXPECT().
				TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sql.Tx, m *model.TransferHistory) (*model.TransferHistory, error) {
					assert.Equal(t, int64(5), m.AccountFrom)
					assert.Equal(t, int64(2), m.AccountTo)
					assert.True(t, m.Amount.Equal(amount("30")))
					m.ID = 11
					return m, nil
				}),
		)

		res, err := f.svc.Transfer(ctx, 5, 2, amount("30"))
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, 1, f.tx.commits)
		assert.Equal(t, []string{events.TypeTransferCompleted}, f.notifier.types())
	})

	t.Run("same account", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Transfer(ctx, 3, 3, amount("1"))
		assert.ErrorIs(t, err, apperr.ErrDuplicateAccount)
		assert.Zero(t, f.tx.commits+f.tx.rollbacks)
	})

	t.Run("invalid amount", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Transfer(ctx, 1, 2, amount("1.005"))
		assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
		assert.Zero(t, f.tx.commits+f.tx.rollbacks)
	})

	t.Run("insufficient funds leaves no history", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.lock(1, "10"),
			f.lock(2, "0"),
			f.lock(1, "10"),
		)

		_, err := f.svc.Transfer(ctx, 1, 2, amount("10.01"))
		assert.ErrorIs(t, err, apperr.ErrInsufficientFunds)
		assert.Equal(t, 1, f.tx.rollbacks)
		assert.Empty(t, f.notifier.events)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.lock(1, "10"),
			f.accounts.EXPECT().TxLock(gomock.Any(), gomock.Any(), int64(2)).Return(nil, apperr.ErrNotFound),
		)

		_, err := f.svc.Transfer(ctx, 1, 2, amount("1"))
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, 1, f.tx.rollbacks)
	})
}

func TestLockOrder(t *testing.T) {
	assert.Equal(t, []int64{1, 2}, lockOrder(1, 2))
	assert.Equal(t, []int64{1, 2}, lockOrder(2, 1))
}
