package model

import (
	"encoding/json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStateFromFlags(t *testing.T) {
	s, err := StateFromFlags(false, false)
	require.NoError(t, err)
	assert.Equal(t, StateCreated, s)

	s, err = StateFromFlags(true, false)
	require.NoError(t, err)
	assert.Equal(t, StateFrozen, s)

	s, err = StateFromFlags(true, true)
	require.NoError(t, err)
	assert.Equal(t, StateAccepted, s)

	_, err = StateFromFlags(false, true)
	assert.Error(t, err)
}

func TestTransactionState_Next(t *testing.T) {
	s := StateCreated
	var visited []TransactionState
	for {
		next, ok := s.Next()
		if !ok {
			break
		}
		visited = append(visited, next)
		s = next
	}

	assert.Equal(t, []TransactionState{StateFrozen, StateAccepted}, visited)

	frozen, accepted := s.Flags()
	assert.True(t, frozen)
	assert.True(t, accepted)
}

func TestOperationType_Scan(t *testing.T) {
	var op OperationType
	require.NoError(t, op.Scan([]byte("WD")))
	assert.Equal(t, OperationWithdraw, op)
	require.NoError(t, op.Scan("DT"))
	assert.Equal(t, OperationDeposit, op)
	assert.Error(t, op.Scan("XX"))

	v, err := OperationDeposit.Value()
	require.NoError(t, err)
	assert.Equal(t, "DT", v)

	_, err = OperationType(0).Value()
	assert.Error(t, err)
}

func TestHistoryType_Scan(t *testing.T) {
	var h HistoryType
	require.NoError(t, h.Scan("CD"))
	assert.Equal(t, HistoryCompleted, h)
	assert.Error(t, h.Scan(42))
}

func TestTransaction_MarshalJSON(t *testing.T) {
	m := Transaction{
		ID:          7,
		AccountFrom: 1,
		AccountTo:   2,
		ItemPrice:   decimal.RequireFromString("12.50"),
		ItemUID:     uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		State:       StateFrozen,
	}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "FROZEN", out["state"])
	assert.Equal(t, true, out["is_frozen"])
	assert.Equal(t, false, out["is_accepted"])
	assert.Equal(t, "12.5", out["item_price"])
}
