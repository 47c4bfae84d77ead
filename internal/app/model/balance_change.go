package model

import (
	"database/sql/driver"
	"fmt"
	"github.com/shopspring/decimal"
	"time"
)

// BalanceChange is the audit record of a single deposit or withdrawal
type BalanceChange struct {
	ID            int64           `json:"id"`
	AccountID     int64           `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	IsAccepted    bool            `json:"is_accepted"`
	OperationType OperationType   `json:"operation_type"`
	TransactionID *int64          `json:"transaction_id,omitempty"`
}

type OperationType int

const (
	OperationWithdraw OperationType = iota + 1
	OperationDeposit
)

// Code is the stored representation
func (t OperationType) Code() string {
	switch t {
	case OperationWithdraw:
		return "WD"
	case OperationDeposit:
		return "DT"
	}
	return ""
}

func (t OperationType) String() string {
	switch t {
	case OperationWithdraw:
		return "WITHDRAW"
	case OperationDeposit:
		return "DEPOSIT"
	}
	return fmt.Sprintf("OperationType(%d)", int(t))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t OperationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Value implements the driver.Valuer interface.
func (t OperationType) Value() (driver.Value, error) {
	code := t.Code()
	if code == "" {
		return nil, fmt.Errorf("unknown operation type %d", int(t))
	}
	return code, nil
}

// Scan implements the sql.Scanner interface.
func (t *OperationType) Scan(src interface{}) error {
	code, err := scanCode(src)
	if err != nil {
		return err
	}

	switch code {
	case "WD":
		*t = OperationWithdraw
	case "DT":
		*t = OperationDeposit
	default:
		return fmt.Errorf("unknown operation type code %q", code)
	}

	return nil
}

func scanCode(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("cannot scan %T into code", src)
}
