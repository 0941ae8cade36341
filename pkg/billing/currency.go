package billing

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrUnrepresentableAmount is returned when a value cannot be expressed as a
// finite decimal currency amount (NaN or infinity).
var ErrUnrepresentableAmount = errors.New("amount is not representable as a finite decimal")

// FormatAmount renders a decimal amount as a canonical two-decimal string,
// rounding half-to-even ("banker's rounding"). No currency symbol and no
// thousands separators; prefixing is the caller's concern.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixedBank(2)
}

// FormatFloat converts a floating amount coming from an external collaborator
// and formats it like FormatAmount. Non-finite inputs fail with
// ErrUnrepresentableAmount.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrUnrepresentableAmount, f)
	}
	return decimal.NewFromFloat(f).StringFixedBank(2), nil
}
