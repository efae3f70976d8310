package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Price is what a single invoice charges and what it credits once paid
type Price struct {
	Asset       string
	Amount      decimal.Decimal
	Credits     int64
	Entitlement string
}

// NewPrice validates a configured price
func NewPrice(asset, amount string, credits int64, entitlement string) (Price, error) {
	asset = strings.ToUpper(strings.TrimSpace(asset))
	if asset == "" {
		return Price{}, fmt.Errorf("%w: empty asset", errs.ErrInvalidAmount)
	}

	parsed, err := ParseAmount(amount)
	if err != nil {
		return Price{}, err
	}
	if credits <= 0 {
		return Price{}, errs.ErrInvalidCredit
	}

	return Price{
		Asset:       asset,
		Amount:      parsed,
		Credits:     credits,
		Entitlement: strings.TrimSpace(entitlement),
	}, nil
}

// ParseAmount parses a positive decimal amount as sent by the processor
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return value, nil
}

// FormatAmount renders a decimal without trailing zeros ("0.10" -> "0.1")
func FormatAmount(value decimal.Decimal) string {
	return value.String()
}

// SameAmount compares two decimal strings numerically.
// An empty reported amount is treated as matching, since pull results may omit it.
func SameAmount(tracked, reported string) (bool, error) {
	if strings.TrimSpace(reported) == "" {
		return true, nil
	}
	a, err := ParseAmount(tracked)
	if err != nil {
		return false, err
	}
	b, err := ParseAmount(reported)
	if err != nil {
		return false, err
	}
	return a.Equal(b), nil
}
