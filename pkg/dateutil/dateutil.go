// Package dateutil handles billing-date defaulting and payment due dates.
package dateutil

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// businessCal is the German holiday calendar used for due-date calculation.
var businessCal = newBusinessCal()

func newBusinessCal() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(de.Holidays...)
	return c
}

// ParseOrDefault parses a billing date in YYYY-MM-DD format. An empty or
// unparseable value falls back to the last day of the month of now, the usual
// issue date for a monthly invoice.
func ParseOrDefault(datestr string, now time.Time) time.Time {
	if date, err := time.Parse("2006-01-02", datestr); err == nil {
		return date
	}

	firstOfNextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNextMonth.AddDate(0, 0, -1)
}

// DueDate advances the billing date by nine business days, skipping weekends
// and German public holidays.
func DueDate(billDate time.Time) time.Time {
	return businessCal.WorkdaysFrom(billDate, 9)
}

// PeriodLabel formats a date as the YYYY-MM period label that names the data
// subdirectory and serves as the invoice-number base.
func PeriodLabel(t time.Time) string {
	return t.Format("2006-01")
}
