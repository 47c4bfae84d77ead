package events

import (
	"github.com/rs/xid"
	"time"
)

const (
	TypeBalanceChanged      = "balance.changed"
	TypeTransferCompleted   = "transfer.completed"
	TypeTransactionCreated  = "transaction.created"
	TypeTransactionFrozen   = "transaction.frozen"
	TypeTransactionAccepted = "transaction.accepted"
)

// Event describes a committed ledger change
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	Payload   interface{} `json:"payload"`
}

func New(eventType string, payload interface{}) Event {
	return Event{
		ID:        xid.New().String(),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}
