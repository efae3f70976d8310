package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	price, err := NewPrice(" ton ", "0.10", 1, " premium ")
	require.NoError(t, err)
	assert.Equal(t, "TON", price.Asset)
	assert.True(t, price.Amount.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, "0.1", FormatAmount(price.Amount))
	assert.Equal(t, int64(1), price.Credits)
	assert.Equal(t, "premium", price.Entitlement)

	_, err = NewPrice("", "0.1", 1, "")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	_, err = NewPrice("TON", "-1", 1, "")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	_, err = NewPrice("TON", "0.1", 0, "")
	assert.ErrorIs(t, err, errs.ErrInvalidCredit)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"0.1", "0.1", false},
		{" 2.50 ", "2.5", false},
		{"", "", true},
		{"abc", "", true},
		{"0", "", true},
		{"-0.5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(value))
		})
	}
}

func TestSameAmount(t *testing.T) {
	same, err := SameAmount("0.1", "0.10")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = SameAmount("0.1", "")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = SameAmount("0.1", "0.2")
	require.NoError(t, err)
	assert.False(t, same)

	_, err = SameAmount("0.1", "ten")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}
