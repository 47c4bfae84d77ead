package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// TransferHistory is the audit record of a completed transfer
type TransferHistory struct {
	ID          int64           `json:"id"`
	AccountFrom int64           `json:"account_from"`
	AccountTo   int64           `json:"account_to"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
