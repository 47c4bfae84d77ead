package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// Transaction is a purchase of an item: AccountFrom is the buyer, AccountTo is the seller
type Transaction struct {
	ID          int64
	AccountFrom int64
	AccountTo   int64
	ItemPrice   decimal.Decimal
	ItemUID     uuid.UUID
	State       TransactionState
	CreatedAt   time.Time
}

// MarshalJSON implements the json.Marshaler interface.
func (t Transaction) MarshalJSON() ([]byte, error) {
	o := struct {
		ID          int64           `json:"id"`
		AccountFrom int64           `json:"account_from"`
		AccountTo   int64           `json:"account_to"`
		ItemPrice   decimal.Decimal `json:"item_price"`
		ItemUID     uuid.UUID       `json:"item_uid"`
		State       string          `json:"state"`
		IsFrozen    bool            `json:"is_frozen"`
		IsAccepted  bool            `json:"is_accepted"`
		CreatedAt   time.Time       `json:"created_at"`
	}{
		ID:          t.ID,
		AccountFrom: t.AccountFrom,
		AccountTo:   t.AccountTo,
		ItemPrice:   t.ItemPrice,
		ItemUID:     t.ItemUID,
		State:       t.State.String(),
		IsFrozen:    t.State.IsFrozen(),
		IsAccepted:  t.State.IsAccepted(),
		CreatedAt:   t.CreatedAt,
	}

	return json.Marshal(o)
}

// TransactionState replaces the is_frozen/is_accepted pair,
// so an accepted but not frozen transaction cannot be represented.
type TransactionState int

const (
	StateCreated TransactionState = iota + 1
	StateFrozen
	StateAccepted
)

// StateFromFlags converts the stored flags
func StateFromFlags(frozen, accepted bool) (TransactionState, error) {
	switch {
	case !frozen && !accepted:
		return StateCreated, nil
	case frozen && !accepted:
		return StateFrozen, nil
	case frozen && accepted:
		return StateAccepted, nil
	}
	return 0, fmt.Errorf("accepted transaction is not frozen")
}

// Flags converts the state to the stored flags
func (s TransactionState) Flags() (frozen, accepted bool) {
	return s.IsFrozen(), s.IsAccepted()
}

// IsFrozen reports whether the buyer has been charged
func (s TransactionState) IsFrozen() bool {
	return s == StateFrozen || s == StateAccepted
}

// IsAccepted reports whether the seller has been credited
func (s TransactionState) IsAccepted() bool {
	return s == StateAccepted
}

// Next returns the only state reachable from s.
// Transitions never skip a state and never go back.
func (s TransactionState) Next() (TransactionState, bool) {
	switch s {
	case StateCreated:
		return StateFrozen, true
	case StateFrozen:
		return StateAccepted, true
	}
	return s, false
}

func (s TransactionState) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateFrozen:
		return "FROZEN"
	case StateAccepted:
		return "ACCEPTED"
	}
	return fmt.Sprintf("TransactionState(%d)", int(s))
}

// TransactionHistory is the audit record of a transaction lifecycle event
type TransactionHistory struct {
	ID            int64       `json:"id"`
	TransactionID int64       `json:"transaction_id"`
	CreatedAt     time.Time   `json:"created_at"`
	OperationType HistoryType `json:"operation_type"`
}

type HistoryType int

const (
	HistoryCreated HistoryType = iota + 1
	HistoryCompleted
)

// Code is the stored representation
func (t HistoryType) Code() string {
	switch t {
	case HistoryCreated:
		return "CT"
	case HistoryCompleted:
		return "CD"
	}
	return ""
}

func (t HistoryType) String() string {
	switch t {
	case HistoryCreated:
		return "CREATED"
	case HistoryCompleted:
		return "COMPLETED"
	}
	return fmt.Sprintf("HistoryType(%d)", int(t))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t HistoryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Value implements the driver.Valuer interface.
func (t HistoryType) Value() (driver.Value, error) {
	code := t.Code()
	if code == "" {
		return nil, fmt.Errorf("unknown history type %d", int(t))
	}
	return code, nil
}

// Scan implements the sql.Scanner interface.
func (t *HistoryType) Scan(src interface{}) error {
	code, err := scanCode(src)
	if err != nil {
		return err
	}

	switch code {
	case "CT":
		*t = HistoryCreated
	case "CD":
		*t = HistoryCompleted
	default:
		return fmt.Errorf("unknown history type code %q", code)
	}

	return nil
}
