package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// Account of a marketplace user.
// Balance is only changed through a locked deposit or withdrawal.
type Account struct {
	ID        int64           `json:"id"`
	UserUID   uuid.UUID       `json:"user_uid"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
