package accounting_test

import (
	"testing"
	"time"

	"github.com/studiofolio/finance-engine/pkg/accounting"
	"github.com/studiofolio/finance-engine/pkg/domain"
)

func TestInvoiceAging_Buckets(t *testing.T) {
	asOf := date(2024, time.March, 1)
	tests := []struct {
		name    string
		dueDate time.Time
		bucket  string
	}{
		{"due in the future", date(2024, time.March, 15), "current"},
		{"due exactly today", date(2024, time.March, 1), "current"},
		{"one day overdue", date(2024, time.February, 29), "days30"},
		{"exactly 30 days overdue", date(2024, time.January, 31), "days30"},
		{"31 days overdue", date(2024, time.January, 30), "days60"},
		{"exactly 60 days overdue", date(2024, time.January, 1), "days60"},
		{"61 days overdue", date(2023, time.December, 31), "days90Plus"},
		{"long overdue", date(2023, time.June, 1), "days90Plus"},
	}

	calc := accounting.NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoices := []domain.Invoice{
				{Type: domain.Sales, AmountDue: decimalPtr("500"), DueDate: timePtr(tt.dueDate)},
			}

			report := calc.InvoiceAging(invoices, asOf)

			buckets := map[string]string{"current": "0", "days30": "0", "days60": "0", "days90Plus": "0"}
			buckets[tt.bucket] = "500"
			assertAmount(t, buckets["current"], report.Current)
			assertAmount(t, buckets["days30"], report.Days30)
			assertAmount(t, buckets["days60"], report.Days60)
			assertAmount(t, buckets["days90Plus"], report.Days90Plus)
			assertAmount(t, "500", report.Total)
		})
	}
}

func TestInvoiceAging_ThirtyDaySpan(t *testing.T) {
	calc := accounting.NewCalculator()
	invoices := []domain.Invoice{
		{Type: domain.Sales, AmountDue: decimalPtr("500"), DueDate: timePtr(date(2024, time.January, 1))},
	}

	report := calc.InvoiceAging(invoices, date(2024, time.January, 31))

	assertAmount(t, "500", report.Days30)
	assertAmount(t, "0", report.Days60)
}

func TestInvoiceAging_TotalSpansAllBuckets(t *testing.T) {
	asOf := date(2024, time.June, 1)
	calc := accounting.NewCalculator()
	invoices := []domain.Invoice{
		{AmountDue: decimalPtr("100"), DueDate: timePtr(date(2024, time.June, 10))},
		{AmountDue: decimalPtr("200"), DueDate: timePtr(date(2024, time.May, 20))},
		{AmountDue: decimalPtr("300"), DueDate: timePtr(date(2024, time.April, 10))},
		{AmountDue: decimalPtr("400"), DueDate: timePtr(date(2023, time.December, 1))},
	}

	report := calc.InvoiceAging(invoices, asOf)

	assertAmount(t, "100", report.Current)
	assertAmount(t, "200", report.Days30)
	assertAmount(t, "300", report.Days60)
	assertAmount(t, "400", report.Days90Plus)
	assertAmount(t, "1000", report.Total)
}

func TestInvoiceAging_MissingFields(t *testing.T) {
	calc := accounting.NewCalculator()
	invoices := []domain.Invoice{
		// No due date: cannot be overdue, counts as current.
		{AmountDue: decimalPtr("150")},
		// No amount due: contributes nothing anywhere.
		{DueDate: timePtr(date(2020, time.January, 1))},
	}

	report := calc.InvoiceAging(invoices, date(2024, time.June, 1))

	assertAmount(t, "150", report.Current)
	assertAmount(t, "0", report.Days90Plus)
	assertAmount(t, "150", report.Total)
}

func TestInvoiceAging_ZeroAsOfUsesClock(t *testing.T) {
	now := date(2024, time.February, 1)
	calc := accounting.NewCalculator(accounting.WithClock(func() time.Time { return now }))
	invoices := []domain.Invoice{
		{AmountDue: decimalPtr("75"), DueDate: timePtr(date(2024, time.January, 22))},
	}

	report := calc.InvoiceAging(invoices, time.Time{})

	assertAmount(t, "75", report.Days30)
}

func TestInvoiceAging_PartialDayNotOverdue(t *testing.T) {
	calc := accounting.NewCalculator()
	due := time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		{AmountDue: decimalPtr("50"), DueDate: timePtr(due)},
	}

	// Twelve hours past the due time is still less than a whole day.
	report := calc.InvoiceAging(invoices, time.Date(2024, time.March, 2, 6, 0, 0, 0, time.UTC))

	assertAmount(t, "50", report.Current)
}
