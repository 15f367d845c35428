package accounting

import (
	"github.com/studiofolio/finance-engine/pkg/domain"

	"github.com/shopspring/decimal"
)

// Line item names the balance sheet introduces itself.
const (
	LineAccountsReceivable = "Accounts Receivable"
	LineAccountsPayable    = "Accounts Payable"
	LineRetainedEarnings   = "Retained Earnings"
)

// BalanceSheet aggregates the chart of accounts, journal activity and open
// invoices into a balance sheet as of the data it is handed:
//
//   - Accounts Receivable / Payable are the outstanding amounts on sales /
//     purchase invoices, included only when strictly positive.
//   - Each account's balance is its opening balance plus the journal deltas
//     attributed to it, placed under assets, liabilities or equity by
//     account type. Income and Expense accounts never appear here; their
//     activity reaches the sheet through netProfit. Accounts that net to
//     exactly zero are omitted.
//   - A non-zero netProfit is folded into equity as "Retained Earnings",
//     added to any existing amount under that name.
//
// IsBalanced reports the accounting equation (Assets = Liabilities + Equity)
// within the calculator's tolerance.
func (c *Calculator) BalanceSheet(invoices []domain.Invoice, entries []domain.JournalEntry, accounts []domain.Account, netProfit decimal.Decimal) domain.BalanceSheetReport {
	assets := make(map[string]decimal.Decimal)
	liabilities := make(map[string]decimal.Decimal)
	equity := make(map[string]decimal.Decimal)

	receivable := decimal.Zero
	payable := decimal.Zero
	for _, inv := range invoices {
		switch inv.Type {
		case domain.Sales:
			receivable = receivable.Add(inv.Due())
		case domain.Purchase:
			payable = payable.Add(inv.Due())
		}
	}
	if receivable.IsPositive() {
		assets[LineAccountsReceivable] = receivable
	}
	if payable.IsPositive() {
		liabilities[LineAccountsPayable] = payable
	}

	deltas := accountDeltas(entries)
	for _, account := range accounts {
		balance := account.Opening().Add(deltas[account.ID])
		if balance.IsZero() {
			continue
		}
		switch account.Type {
		case domain.Asset:
			assets[account.Name] = assets[account.Name].Add(balance)
		case domain.Liability:
			liabilities[account.Name] = liabilities[account.Name].Add(balance)
		case domain.Equity:
			equity[account.Name] = equity[account.Name].Add(balance)
		}
	}

	if !netProfit.IsZero() {
		equity[LineRetainedEarnings] = equity[LineRetainedEarnings].Add(netProfit)
	}

	totalAssets := sumAmounts(assets)
	totalLiabilities := sumAmounts(liabilities)
	totalEquity := sumAmounts(equity)

	return domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity,
		IsBalanced:       c.withinTolerance(totalAssets, totalLiabilities.Add(totalEquity)),
	}
}
