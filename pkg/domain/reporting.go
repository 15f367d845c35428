package domain

import (
	"github.com/shopspring/decimal"
)

// ProfitLossReport is a profit and loss statement: revenue and expense
// amounts keyed by category name, with their totals and the resulting net
// profit (negative for a loss).
type ProfitLossReport struct {
	Revenue       map[string]decimal.Decimal `json:"revenue"`
	Expenses      map[string]decimal.Decimal `json:"expenses"`
	TotalRevenue  decimal.Decimal            `json:"totalRevenue"`
	TotalExpenses decimal.Decimal            `json:"totalExpenses"`
	NetProfit     decimal.Decimal            `json:"netProfit"`
}

// BalanceSheetReport is a balance sheet: assets, liabilities and equity
// keyed by account name. Zero-balance accounts are omitted from the maps.
// IsBalanced reports whether the accounting equation holds within the
// calculator's tolerance; an imbalance is a data-quality signal for the
// caller to surface, not an error.
type BalanceSheetReport struct {
	Assets           map[string]decimal.Decimal `json:"assets"`
	Liabilities      map[string]decimal.Decimal `json:"liabilities"`
	Equity           map[string]decimal.Decimal `json:"equity"`
	TotalAssets      decimal.Decimal            `json:"totalAssets"`
	TotalLiabilities decimal.Decimal            `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal            `json:"totalEquity"`
	IsBalanced       bool                       `json:"isBalanced"`
}

// JournalBalanceResult is the outcome of checking one journal entry's lines
// against the debits-equal-credits rule.
type JournalBalanceResult struct {
	IsBalanced   bool            `json:"isBalanced"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
}

// AgingReport buckets outstanding receivables by how far past due they are.
// Total accumulates the outstanding amount across all invoices regardless
// of bucket.
type AgingReport struct {
	Current    decimal.Decimal `json:"current"`
	Days30     decimal.Decimal `json:"days30"`
	Days60     decimal.Decimal `json:"days60"`
	Days90Plus decimal.Decimal `json:"days90Plus"`
	Total      decimal.Decimal `json:"total"`
}

// TrialBalanceRow represents a single row in a trial balance report: the
// account's closing balance presented on its normal side.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
