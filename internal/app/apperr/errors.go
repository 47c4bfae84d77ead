package apperr

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateAccount  = errors.New("account_from and account_to should be different values")
	ErrInvalidState      = errors.New("invalid transaction state")
	ErrProtected         = errors.New("referenced by ledger records")

	// ErrLockTimeout means a row lock could not be acquired in time.
	// Nothing was written, the operation can be repeated.
	ErrLockTimeout = errors.New("lock timeout")
	// ErrSerialization is a deadlock or serialization failure reported by the store.
	// Nothing was written, the operation can be repeated.
	ErrSerialization = errors.New("concurrent update, retry")
)

// IsRetryable reports whether err was caused by lock contention rather than by the request itself
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLockTimeout) || errors.Is(err, ErrSerialization)
}
