package ledger

import (
	"context"
	"database/sql"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ledger/internal/app/apperr"
	"ledger/internal/app/model"
	"ledger/internal/app/service/events"
	"testing"
)

func (f *fixture) lockTransaction(id int64, state model.TransactionState) *gomock.Call {
	return f.transactions.EXPECT().
		TxLock(gomock.Any(), gomock.Any(), id).
		Return(&model.Transaction{
			ID:          id,
			AccountFrom: 1,
			AccountTo:   2,
			ItemPrice:   amount("25.50"),
			ItemUID:     uuid.New(),
			State:       state,
		}, nil)
}

func (f *fixture) recordHistory(id int64, op model.HistoryType) *gomock.Call {
	return f.history.EXPECT().
		TxCreate(gomock.Any(), gomock.Any(), &model.TransactionHistory{TransactionID: id, OperationType: op}).
		Return(&model.TransactionHistory{ID: 1, TransactionID: id, OperationType: op}, nil)
}

func TestService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	item := uuid.New()

	t.Run("created with history", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.transactions.EXPECT().
				TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sql.Tx, m *model.Transaction) (*model.Transaction, error) {
					assert.Equal(t, int64(1), m.AccountFrom)
					assert.Equal(t, int64(2), m.AccountTo)
					assert.Equal(t, item, m.ItemUID)
					m.ID = 4
					m.State = model.StateCreated
					return m, nil
				}),
			f.recordHistory(4, model.HistoryCreated),
		)

		m, err := f.svc.CreateTransaction(ctx, 1, 2, item, amount("99.99"))
		require.NoError(t, err)
		assert.Equal(t, model.StateCreated, m.State)
		assert.Equal(t, []string{events.TypeTransactionCreated}, f.notifier.types())
	})

	t.Run("price over the ceiling", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateTransaction(ctx, 1, 2, item, amount("10000.01"))
		assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
	})

	t.Run("buyer is the seller", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateTransaction(ctx, 1, 1, item, amount("1"))
		assert.ErrorIs(t, err, apperr.ErrDuplicateAccount)
		assert.Zero(t, f.tx.commits+f.tx.rollbacks)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newFixture(t)
		f.transactions.EXPECT().TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperr.ErrNotFound)

		_, err := f.svc.CreateTransaction(ctx, 1, 2, item, amount("1"))
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, 1, f.tx.rollbacks)
	})
}

func TestService_FreezeTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("buyer is charged pending", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.lockTransaction(4, model.StateCreated),
			f.lock(1, "30"),
			f.updateBalance(1, "4.50"),
			f.recordChange(func(m *model.BalanceChange) {
				assert.Equal(t, int64(1), m.AccountID)
				assert.Equal(t, model.OperationWithdraw, m.OperationType)
				assert.False(t, m.IsAccepted)
				require.NotNil(t, m.TransactionID)
				assert.Equal(t, int64(4), *m.TransactionID)
			}),
			f.transactions.EXPECT().TxUpdateState(gomock.Any(), gomock.Any(), int64(4), model.StateFrozen).Return(nil),
		)

		m, err := f.svc.FreezeTransaction(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, model.StateFrozen, m.State)
		assert.Equal(t, []string{events.TypeTransactionFrozen}, f.notifier.types())
	})

	t.Run("frozen twice", func(t *testing.T) {
		f := newFixture(t)
		f.lockTransaction(4, model.StateFrozen)

		_, err := f.svc.FreezeTransaction(ctx, 4)
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
		assert.Empty(t, f.notifier.events)
	})

	t.Run("insufficient funds keeps the transaction created", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.lockTransaction(4, model.StateCreated),
			f.lock(1, "25.49"),
		)

		_, err := f.svc.FreezeTransaction(ctx, 4)
		assert.ErrorIs(t, err, apperr.ErrInsufficientFunds)
		assert.Equal(t, 1, f.tx.rollbacks)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		f := newFixture(t)
		f.transactions.EXPECT().TxLock(gomock.Any(), gomock.Any(), int64(4)).Return(nil, apperr.ErrNotFound)

		_, err := f.svc.FreezeTransaction(ctx, 4)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_AcceptTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("seller is credited", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.lockTransaction(4, model.StateFrozen),
			f.lock(2, "0"),
			f.updateBalance(2, "25.50"),
			f.recordChange(func(m *model.BalanceChange) {
				assert.Equal(t, int64(2), m.AccountID)
				assert.Equal(t, model.OperationDeposit, m.OperationType)
				assert.True(t, m.IsAccepted)
			}),
			f.changes.EXPECT().TxAcceptByTransaction(gomock.Any(), gomock.Any(), int64(4)).Return(nil),
			f.transactions.EXPECT().TxUpdateState(gomock.Any(), gomock.Any(), int64(4), model.StateAccepted).Return(nil),
			f.recordHistory(4, model.HistoryCompleted),
		)

		m, err := f.svc.AcceptTransaction(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, model.StateAccepted, m.State)
		assert.Equal(t, []string{events.TypeTransactionAccepted}, f.notifier.types())
	})

	t.Run("accepted twice writes no second history", func(t *testing.T) {
		f := newFixture(t)
		f.lockTransaction(4, model.StateAccepted)

		_, err := f.svc.AcceptTransaction(ctx, 4)
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
		assert.Empty(t, f.notifier.events)
	})

	t.Run("not frozen", func(t *testing.T) {
		f := newFixture(t)
		f.lockTransaction(4, model.StateCreated)

		_, err := f.svc.AcceptTransaction(ctx, 4)
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})
}

func TestService_ListTransactionHistory(t *testing.T) {
	f := newFixture(t)
	f.transactions.EXPECT().Read(gomock.Any(), int64(4)).Return(nil, apperr.ErrNotFound)

	_, err := f.svc.ListTransactionHistory(context.Background(), 4)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
