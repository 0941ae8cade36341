// Package billing computes invoice amounts from worked time and formats
// currency values for display and payment payloads.
package billing

import (
	"github.com/shopspring/decimal"
)

// VATRate is the fixed German VAT rate applied to all invoices.
var VATRate = decimal.NewFromFloat(0.19)

var minutesPerHour = decimal.NewFromInt(60)

// Amounts is the currency breakdown for one invoice.
// Total is always Net + VAT, and VAT is always Net * VATRate.
type Amounts struct {
	Net        decimal.Decimal
	VAT        decimal.Decimal
	Total      decimal.Decimal
	HourlyFee  decimal.Decimal
	HoursTotal decimal.Decimal
}

// ComputeAmounts turns a total of worked minutes and an hourly fee into the
// invoice amount breakdown. It is pure and has no failure modes: zero minutes
// yield all-zero amounts. Callers are expected to skip persistence for the
// zero-minutes case rather than issue an empty invoice.
func ComputeAmounts(minutesTotal int, hourlyFee decimal.Decimal) Amounts {
	hoursTotal := decimal.NewFromInt(int64(minutesTotal)).Div(minutesPerHour)
	net := hoursTotal.Mul(hourlyFee)
	vat := net.Mul(VATRate)

	return Amounts{
		Net:        net,
		VAT:        vat,
		Total:      net.Add(vat),
		HourlyFee:  hourlyFee,
		HoursTotal: hoursTotal,
	}
}

// IsZero reports whether no billable amount was computed.
func (a Amounts) IsZero() bool {
	return a.Total.IsZero()
}
