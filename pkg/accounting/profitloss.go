package accounting

import (
	"github.com/studiofolio/finance-engine/pkg/domain"

	"github.com/shopspring/decimal"
)

// Category names for amounts that arrive without one of their own.
const (
	CategorySalesRevenue      = "Sales Revenue"
	CategoryVendorExpenses    = "Vendor Expenses"
	CategoryOtherRevenue      = "Other Revenue"
	CategoryOperatingExpenses = "Operating Expenses"
)

// ProfitLoss aggregates revenue and expenses across the three upstream
// sources into one profit and loss report:
//
//   - Invoices contribute the amount actually paid (cash basis): sales
//     invoices to "Sales Revenue", purchase invoices to "Vendor Expenses".
//   - Platform transactions are bucketed by platform name (revenue) or
//     expense category (expense), with fallback categories when unnamed.
//   - Journal lines on Income accounts contribute credit minus debit, lines
//     on Expense accounts debit minus credit, so reversing entries reduce
//     the bucket they reverse. Buckets are named by the line's account.
//
// Any input collection may be nil and is treated as empty.
func (c *Calculator) ProfitLoss(invoices []domain.Invoice, platformTxns []domain.PlatformTransaction, entries []domain.JournalEntry) domain.ProfitLossReport {
	revenue := make(map[string]decimal.Decimal)
	expenses := make(map[string]decimal.Decimal)

	for _, inv := range invoices {
		switch inv.Type {
		case domain.Sales:
			revenue[CategorySalesRevenue] = revenue[CategorySalesRevenue].Add(inv.Paid())
		case domain.Purchase:
			expenses[CategoryVendorExpenses] = expenses[CategoryVendorExpenses].Add(inv.Paid())
		}
	}

	for _, txn := range platformTxns {
		switch txn.Kind {
		case domain.KindRevenue:
			name := txn.Platform()
			if name == "" {
				name = CategoryOtherRevenue
			}
			revenue[name] = revenue[name].Add(txn.Value())
		case domain.KindExpense:
			name := txn.ExpenseCategory()
			if name == "" {
				name = CategoryOperatingExpenses
			}
			expenses[name] = expenses[name].Add(txn.Value())
		}
	}

	for _, entry := range entries {
		for _, line := range entry.Lines {
			if line.Account == nil {
				continue
			}
			switch line.Account.Type {
			case domain.Income:
				revenue[line.Account.Name] = revenue[line.Account.Name].Add(line.CreditAmount().Sub(line.DebitAmount()))
			case domain.Expense:
				expenses[line.Account.Name] = expenses[line.Account.Name].Add(line.DebitAmount().Sub(line.CreditAmount()))
			}
		}
	}

	totalRevenue := sumAmounts(revenue)
	totalExpenses := sumAmounts(expenses)

	return domain.ProfitLossReport{
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     totalRevenue.Sub(totalExpenses),
	}
}

func sumAmounts(amounts map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
