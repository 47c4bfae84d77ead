package app

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"ledger/internal/app/config"
	"ledger/internal/app/logger"
	"ledger/internal/app/service/events"
	"ledger/internal/app/service/ledger"
	"ledger/internal/app/storage/postgres"
	"time"
)

const (
	breakerFailures    = 5
	breakerOpenTimeout = 30 * time.Second
)

type App struct {
	config     config.Config
	logger     logger.Logger
	db         *sql.DB
	redis      *redis.Client
	dispatcher *events.Dispatcher
	ledger     *ledger.Service
	stopCh     chan struct{}
}

func New(cfg config.Config, logger logger.Logger, e embed.FS) (*App, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := applyMigrations(e, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}

	repos, err := newRepositories(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config: cfg,
		logger: logger,
		db:     db,
		stopCh: make(chan struct{}),
	}

	opts := []ledger.Option{
		ledger.WithMaxDigits(cfg.Ledger.MaxBalanceDigits),
		ledger.WithMaxItemPrice(cfg.Ledger.MaxItemPriceDecimal()),
		ledger.WithHistoryLimit(cfg.Ledger.HistoryLimit),
	}

	if cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.redis.Ping(ctx).Err(); err != nil {
			// events are best-effort, the breaker keeps retrying later
			logger.Warn().Err(err).Str("redis_addr", cfg.Redis.Addr).Msg("Redis is not reachable")
		}

		publisher := events.NewBreakerPublisher(
			events.NewRedisPublisher(a.redis, cfg.Events.Stream),
			breakerFailures,
			breakerOpenTimeout,
		)
		a.dispatcher = events.NewDispatcher(publisher, cfg.Events.Workers,
			events.WithRetry(cfg.Events.RetryDelay, cfg.Events.MaxRetries),
		)
		opts = append(opts, ledger.WithNotifier(a.dispatcher))
	} else {
		logger.Info().Msg("REDIS_ADDR is empty, ledger events are disabled")
	}

	tx := postgres.NewDB(db, postgres.WithLockTimeout(cfg.Database.LockTimeout))
	a.ledger = ledger.New(tx, repos, opts...)

	go func() {
		<-a.stopCh
		a.logger.Info().Msg("Shutting down application")
	}()

	return a, nil
}

func newRepositories(db *sql.DB) (ledger.Repositories, error) {
	var (
		repos ledger.Repositories
		err   error
	)

	if repos.Accounts, err = postgres.NewAccountRepository(db); err != nil {
		return repos, fmt.Errorf("account repository init: %w", err)
	}
	if repos.Changes, err = postgres.NewBalanceChangeRepository(db); err != nil {
		return repos, fmt.Errorf("balance change repository init: %w", err)
	}
	if repos.Transfers, err = postgres.NewTransferRepository(db); err != nil {
		return repos, fmt.Errorf("transfer repository init: %w", err)
	}
	if repos.Transactions, err = postgres.NewTransactionRepository(db); err != nil {
		return repos, fmt.Errorf("transaction repository init: %w", err)
	}
	if repos.History, err = postgres.NewTransactionHistoryRepository(db); err != nil {
		return repos, fmt.Errorf("transaction history repository init: %w", err)
	}

	return repos, nil
}

// Stop event workers and close connections, queued events are dropped
func (a *App) Stop() {
	close(a.stopCh)

	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Redis close failed")
		}
	}

	if err := a.db.Close(); err != nil {
		a.logger.Error().Err(err).Msg("DB close failed")
	}
}
