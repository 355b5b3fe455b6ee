package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusAccepted.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, OrderStatus("cooked").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrder_UnmarshalJSON_TotalKeyDrift(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Amount
	}{
		{
			name:     "Canonical snake_case key",
			payload:  `{"id": 1, "total_amount": 12.5}`,
			expected: 12.5,
		},
		{
			name:     "Legacy camelCase key",
			payload:  `{"id": 1, "totalAmount": 8.25}`,
			expected: 8.25,
		},
		{
			name:     "Snake_case wins when both present",
			payload:  `{"id": 1, "total_amount": 12.5, "totalAmount": 99}`,
			expected: 12.5,
		},
		{
			name:     "String-encoded total",
			payload:  `{"id": 1, "total_amount": "4.50"}`,
			expected: 4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Order
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &o))
			assert.Equal(t, tt.expected, o.TotalAmount)
		})
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "12.00", Amount(12).String())
	assert.Equal(t, "4.50", Amount(4.5).String())
}
