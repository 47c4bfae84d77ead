// Package ledger implements the balance-mutation core: deposits, withdrawals,
// transfers and purchase transactions.
//
// Every mutation runs in one atomic unit opened by storage.Transactor. Account rows are
// re-fetched under a row lock before their balance is read, so no balance is ever written
// from a stale read. The audit record of a mutation is written in the same unit.
//
// Lock order inside a unit: the transaction row (purchase operations) first, then account
// rows in ascending id order.
package ledger

import (
	"errors"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"ledger/internal/app/model"
	"ledger/internal/app/service/events"
	"ledger/internal/app/storage"
)

// Notifier receives events of committed operations
type Notifier interface {
	Notify(ev events.Event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(events.Event) {}

type Repositories struct {
	Accounts     storage.AccountRepository
	Changes      storage.BalanceChangeRepository
	Transfers    storage.TransferRepository
	Transactions storage.TransactionRepository
	History      storage.TransactionHistoryRepository
}

type Service struct {
	tx           storage.Transactor
	accounts     storage.AccountRepository
	changes      storage.BalanceChangeRepository
	transfers    storage.TransferRepository
	transactions storage.TransactionRepository
	history      storage.TransactionHistoryRepository
	notifier     Notifier

	maxDigits    int32
	maxItemPrice decimal.Decimal
	historyLimit int
}

func (s *Service) LoggerComponent() string {
	return "Ledger.Service"
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithMaxDigits(digits int32) Option {
	return func(s *Service) {
		s.maxDigits = digits
	}
}

func WithMaxItemPrice(price decimal.Decimal) Option {
	return func(s *Service) {
		s.maxItemPrice = price
	}
}

func WithHistoryLimit(limit int) Option {
	return func(s *Service) {
		s.historyLimit = limit
	}
}

func New(tx storage.Transactor, repos Repositories, opts ...Option) *Service {
	s := &Service{
		tx:           tx,
		accounts:     repos.Accounts,
		changes:      repos.Changes,
		transfers:    repos.Transfers,
		transactions: repos.Transactions,
		history:      repos.History,
		notifier:     nopNotifier{},
		maxDigits:    model.DefaultMaxDigits,
		maxItemPrice: decimal.NewFromInt(model.DefaultMaxItemPrice),
		historyLimit: 100,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) validateAmount(amount decimal.Decimal) error {
	return model.ValidateAmount(amount, s.maxDigits)
}

func (s *Service) notify(eventType string, payload interface{}) {
	s.notifier.Notify(events.New(eventType, payload))
}

var rejections = []error{
	apperr.ErrInvalidAmount,
	apperr.ErrInvalidInput,
	apperr.ErrInsufficientFunds,
	apperr.ErrDuplicateAccount,
	apperr.ErrNotFound,
	apperr.ErrInvalidState,
	apperr.ErrConflict,
	apperr.ErrProtected,
}

// logFailure logs rejected requests at debug level and everything else as errors
func logFailure(l logger.Logger, err error, msg string) {
	for _, r := range rejections {
		if errors.Is(err, r) {
			l.Debug().Err(err).Msg(msg)
			return
		}
	}
	if apperr.IsRetryable(err) {
		l.Warn().Err(err).Msg(msg)
		return
	}
	l.Error().Err(err).Msg(msg)
}
