package accounting

import (
	"math"
	"time"

	"github.com/studiofolio/finance-engine/pkg/domain"
)

// InvoiceAging buckets outstanding receivables by how many whole days past
// due they are at asOf. A zero asOf means "now" per the calculator's clock.
//
// Buckets are mutually exclusive: due today or later is current, 1-30 days
// overdue is Days30, 31-60 is Days60, everything beyond is Days90Plus. An
// invoice with no due date cannot be overdue and counts as current. Total
// accumulates every invoice's outstanding amount regardless of bucket.
func (c *Calculator) InvoiceAging(invoices []domain.Invoice, asOf time.Time) domain.AgingReport {
	if asOf.IsZero() {
		asOf = c.now()
	}

	var report domain.AgingReport
	for _, inv := range invoices {
		due := inv.Due()
		report.Total = report.Total.Add(due)

		daysOverdue := 0
		if inv.DueDate != nil {
			daysOverdue = wholeDaysBetween(*inv.DueDate, asOf)
		}

		switch {
		case daysOverdue <= 0:
			report.Current = report.Current.Add(due)
		case daysOverdue <= 30:
			report.Days30 = report.Days30.Add(due)
		case daysOverdue <= 60:
			report.Days60 = report.Days60.Add(due)
		default:
			report.Days90Plus = report.Days90Plus.Add(due)
		}
	}
	return report
}

// wholeDaysBetween truncates the elapsed time from due to asOf to whole
// days, flooring so a partially elapsed day never counts as overdue. Inputs
// carrying a time of day therefore shift the bucket boundary by up to a day
// depending on their time zones; callers wanting date-only semantics should
// normalize before calling.
func wholeDaysBetween(due, asOf time.Time) int {
	return int(math.Floor(asOf.Sub(due).Hours() / 24))
}
