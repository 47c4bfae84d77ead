package config

import (
	"errors"
	"fmt"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"io/fs"
	"ledger/internal/app/model"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	Redis    RedisConfig
	Events   EventsConfig

	LogVerbose bool `env:"APP_VERBOSE,default=0"`
	LogPretty  bool `env:"APP_PRETTY,default=0"`
}

type ServerConfig struct {
	Listen       string        `env:"RUN_ADDRESS,default=localhost:8088"`
	TimeoutRead  time.Duration `env:"SERVER_TIMEOUT_READ,default=5s"`
	TimeoutWrite time.Duration `env:"SERVER_TIMEOUT_WRITE,default=10s"`
	TimeoutIdle  time.Duration `env:"SERVER_TIMEOUT_IDLE,default=1m"`
}

type DatabaseConfig struct {
	DSN          string        `env:"DATABASE_URI,required"`
	LockTimeout  time.Duration `env:"DATABASE_LOCK_TIMEOUT,default=5s"`
	MaxOpenConns int           `env:"DATABASE_MAX_OPEN_CONNS,default=25"`
}

type LedgerConfig struct {
	// MaxItemPrice is the purchase price ceiling, it catches prices entered by mistake
	MaxItemPrice int64 `env:"LEDGER_MAX_ITEM_PRICE,default=10000"`
	// MaxBalanceDigits is the total digit count shared by all monetary fields,
	// bounded by the precision of the monetary columns
	MaxBalanceDigits int32 `env:"LEDGER_MAX_BALANCE_DIGITS,default=12"`
	// HistoryLimit caps audit listings
	HistoryLimit int `env:"LEDGER_HISTORY_LIMIT,default=100"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,default="`
	Password string `env:"REDIS_PASSWORD,default="`
	DB       int    `env:"REDIS_DB,default=0"`
}

type EventsConfig struct {
	Stream     string        `env:"EVENTS_STREAM,default=ledger:events"`
	Workers    int           `env:"EVENTS_WORKERS,default=4"`
	RetryDelay time.Duration `env:"EVENTS_RETRY_DELAY,default=1s"`
	MaxRetries int           `env:"EVENTS_MAX_RETRIES,default=5"`
}

// New config constructor
func New() Config {
	return Config{}
}

// Load config from environment and from .env file (if exists) and from flags
func (cfg *Config) Load(args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(".env load: %w", err)
	}

	if err := envdecode.StrictDecode(cfg); err != nil {
		return fmt.Errorf("env decode: %w", err)
	}

	flags := pflag.NewFlagSet("ledger", pflag.ContinueOnError)
	flags.StringVarP(&cfg.Server.Listen, "listen-addr", "a", cfg.Server.Listen, "Server address to listen on")
	flags.StringVarP(&cfg.Database.DSN, "database-uri", "d", cfg.Database.DSN, "Database URI")
	flags.DurationVar(&cfg.Database.LockTimeout, "lock-timeout", cfg.Database.LockTimeout, "Row lock wait limit")
	flags.Int64Var(&cfg.Ledger.MaxItemPrice, "max-item-price", cfg.Ledger.MaxItemPrice, "Purchase price ceiling")
	flags.StringVarP(&cfg.Redis.Addr, "redis-addr", "r", cfg.Redis.Addr, "Redis address for ledger events, empty disables events")
	flags.BoolVarP(&cfg.LogVerbose, "verbose", "v", cfg.LogVerbose, "Verbose output")
	flags.BoolVarP(&cfg.LogPretty, "pretty", "p", cfg.LogPretty, "Pretty output")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("flags parse: %w", err)
	}

	return cfg.validate()
}

// MaxItemPriceDecimal returns the purchase price ceiling as a monetary value
func (c LedgerConfig) MaxItemPriceDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.MaxItemPrice)
}

func (cfg *Config) validate() error {
	if d := cfg.Ledger.MaxBalanceDigits; d <= model.AmountScale || d > model.ColumnDigits {
		return fmt.Errorf(
			"ledger max balance digits should be in range (%d, %d], got %d",
			model.AmountScale, model.ColumnDigits, d,
		)
	}
	if cfg.Ledger.MaxItemPrice < 0 {
		return fmt.Errorf("ledger max item price should be positive, got %d", cfg.Ledger.MaxItemPrice)
	}
	if cfg.Events.Workers < 1 {
		return fmt.Errorf("events workers should be at least 1, got %d", cfg.Events.Workers)
	}
	return nil
}
