package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_QuoteRequest(t *testing.T) {
	v := GetValidator()

	valid := QuoteRequest{Item: "Small Pill", Amount: 1, CurrentMultiplier: 0, Balance: 0}
	assert.NoError(t, v.ValidateStruct(valid))

	tests := []struct {
		name      string
		mutate    func(*QuoteRequest)
		wantField string
		wantMsg   string
	}{
		{"zero amount", func(r *QuoteRequest) { r.Amount = 0 }, "amount", "Must be at least 1"},
		{"amount over limit", func(r *QuoteRequest) { r.Amount = 10_001 }, "amount", "Must be at most 10000"},
		{"negative balance", func(r *QuoteRequest) { r.Balance = -1 }, "balance", "Must be at least 0"},
		{"empty item", func(r *QuoteRequest) { r.Item = "" }, "item", "This field is required"},
		{"control characters", func(r *QuoteRequest) { r.Item = "pill\x00" }, "item", "Invalid item name"},
		{"too long", func(r *QuoteRequest) { r.Item = strings.Repeat("a", MaxItemNameLength+1) }, "item", "Invalid item name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.ValidateStruct(req)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, FormatValidationError(err)[tt.wantField])
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
