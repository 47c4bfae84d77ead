package postgres

import (
	"context"
	"database/sql"
	"errors"
	"github.com/jackc/pgerrcode"
	pg "github.com/lib/pq"
	"ledger/internal/app/apperr"
)

const (
	constraintBalanceNonNegative = "accounts_balance_non_negative"
	constraintTransferAccounts   = "transfer_history_distinct_accounts"
	constraintTransactionParties = "transactions_distinct_accounts"
)

// translate driver errors into apperr values, so storage details never leave the package
func translate(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}

	var pgErr *pg.Error
	if errors.As(err, &pgErr) {
		code := string(pgErr.Code)
		switch {
		case code == pgerrcode.CheckViolation:
			switch pgErr.Constraint {
			case constraintBalanceNonNegative:
				return apperr.ErrInsufficientFunds
			case constraintTransferAccounts, constraintTransactionParties:
				return apperr.ErrDuplicateAccount
			}
			return apperr.ErrInvalidInput
		case code == pgerrcode.ForeignKeyViolation:
			return apperr.ErrNotFound
		case code == pgerrcode.UniqueViolation:
			return apperr.ErrConflict
		case code == pgerrcode.NumericValueOutOfRange:
			return apperr.ErrInvalidAmount
		case code == pgerrcode.LockNotAvailable:
			return apperr.ErrLockTimeout
		case code == pgerrcode.DeadlockDetected, code == pgerrcode.SerializationFailure:
			return apperr.ErrSerialization
		case code == pgerrcode.QueryCanceled && errors.Is(ctx.Err(), context.DeadlineExceeded):
			return apperr.ErrLockTimeout
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.ErrLockTimeout
	}

	return err
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pg.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code) == pgerrcode.ForeignKeyViolation
	}
	return false
}
