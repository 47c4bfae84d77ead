package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ledger/internal/app/logger"
	"ledger/internal/app/storage"
	"time"
)

// storage.Transactor interface implementation
var _ storage.Transactor = (*DB)(nil)

// DB opens atomic units on the ledger database.
// Balance mutations lock rows with SELECT ... FOR UPDATE, so READ COMMITTED is enough:
// a locked row is always re-read at its latest committed version.
type DB struct {
	db          *sql.DB
	lockTimeout time.Duration
}

func (d *DB) LoggerComponent() string {
	return "Postgres.DB"
}

type DBOption func(*DB)

// WithLockTimeout bounds the time a unit waits for a row lock
func WithLockTimeout(timeout time.Duration) DBOption {
	return func(d *DB) {
		d.lockTimeout = timeout
	}
}

func NewDB(db *sql.DB, opts ...DBOption) *DB {
	d := &DB{
		db: db,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// InTx implementation of interface storage.Transactor
func (d *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	l := logger.Get(ctx, d)

	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		l.Error().Err(err).Msg("DB transaction begin")
		return fmt.Errorf("tx begin: %w", translate(ctx, err))
	}

	if d.lockTimeout > 0 {
		const sqlLockTimeout = `SELECT set_config('lock_timeout', $1, true)`
		if _, err := tx.ExecContext(ctx, sqlLockTimeout, fmt.Sprintf("%dms", d.lockTimeout.Milliseconds())); err != nil {
			l.Error().Err(err).Msg("Lock timeout setup failed")
			_ = tx.Rollback()
			return fmt.Errorf("lock timeout: %w", translate(ctx, err))
		}
	}

	if err := fn(tx); err != nil {
		l.Debug().Err(err).Msg("TX rolled back")
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Msg("TX commit failed")
		return fmt.Errorf("tx commit: %w", translate(ctx, err))
	}

	return nil
}
