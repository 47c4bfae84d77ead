package ledger

import (
	"context"
	"database/sql"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"ledger/internal/app/model"
	"ledger/internal/app/service/events"
	"ledger/internal/app/storage"
	storagemock "ledger/internal/app/storage/mock"
	"testing"
)

var (
	_ storage.Transactor                   = (*storagemock.MockTransactor)(nil)
	_ storage.AccountRepository            = (*storagemock.MockAccountRepository)(nil)
	_ storage.BalanceChangeRepository      = (*storagemock.MockBalanceChangeRepository)(nil)
	_ storage.TransferRepository           = (*storagemock.MockTransferRepository)(nil)
	_ storage.TransactionRepository        = (*storagemock.MockTransactionRepository)(nil)
	_ storage.TransactionHistoryRepository = (*storagemock.MockTransactionHistoryRepository)(nil)
)

// stubTx runs the unit without a database and counts its outcomes
type stubTx struct {
	commits   int
	rollbacks int
}

func (s *stubTx) InTx(_ context.Context, fn func(tx *sql.Tx) error) error {
	if err := fn(nil); err != nil {
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) Notify(ev events.Event) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) types() []string {
	var res []string
	for _, ev := range r.events {
		res = append(res, ev.Type)
	}
	return res
}

type fixture struct {
	tx           *stubTx
	notifier     *eventRecorder
	accounts     *storagemock.MockAccountRepository
	changes      *storagemock.MockBalanceChangeRepository
	transfers    *storagemock.MockTransferRepository
	transactions *storagemock.MockTransactionRepository
	history      *storagemock.MockTransactionHistoryRepository
	svc          *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		tx:           &stubTx{},
		notifier:     &eventRecorder{},
		accounts:     storagemock.NewMockAccountRepository(ctrl),
		changes:      storagemock.NewMockBalanceChangeRepository(ctrl),
		transfers:    storagemock.NewMockTransferRepository(ctrl),
		transactions: storagemock.NewMockTransactionRepository(ctrl),
		history:      storagemock.NewMockTransactionHistoryRepository(ctrl),
	}
	f.svc = New(f.tx, Repositories{
		Accounts:     f.accounts,
		Changes:      f.changes,
		Transfers:    f.transfers,
		Transactions: f.transactions,
		History:      f.history,
	}, WithNotifier(f.notifier))

	return f
}

// lock expects the account row to be locked and returns it with the balance
func (f *fixture) lock(id int64, balance string) *gomock.Call {
	return f.accounts.EXPECT().
		TxLock(gomock.Any(), gomock.Any(), id).
		DoAndReturn(func(context.Context, *sql.Tx, int64) (*model.Account, error) {
			return &model.Account{ID: id, Balance: decimal.RequireFromString(balance)}, nil
		})
}

func (f *fixture) updateBalance(id int64, balance string) *gomock.Call {
	return f.accounts.EXPECT().
		TxUpdateBalance(gomock.Any(), gomock.Any(), id, decimalEq(balance)).
		Return(nil)
}

// recordChange expects a balance change and hands it to check
func (f *fixture) recordChange(check func(m *model.BalanceChange)) *gomock.Call {
	return f.changes.EXPECT().
		TxCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sql.Tx, m *model.BalanceChange) (*model.BalanceChange, error) {
			check(m)
			m.ID = 1
			return m, nil
		})
}

type decimalMatcher struct {
	d decimal.Decimal
}

func decimalEq(s string) gomock.Matcher {
	return decimalMatcher{d: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.d)
}

func (m decimalMatcher) String() string {
	return "is equal to " + m.d.String()
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
