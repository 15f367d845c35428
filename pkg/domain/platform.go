package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a platform transaction as money in or money out.
type TransactionKind string

const (
	KindRevenue TransactionKind = "REVENUE"
	KindExpense TransactionKind = "EXPENSE"
)

// PlatformTransaction is a ledger-less transaction reported by a third-party
// sales platform (a marketplace payout, a subscription charge, ...). It has
// no journal backing; the reports bucket it by platform or expense category.
type PlatformTransaction struct {
	Kind                TransactionKind  `json:"kind"`
	Amount              *decimal.Decimal `json:"amount"`
	PlatformName        *string          `json:"platformName"`
	ExpenseCategoryName *string          `json:"expenseCategoryName"`
}

// Value returns the transaction amount, coalescing a missing value to zero.
func (t PlatformTransaction) Value() decimal.Decimal {
	if t.Amount == nil {
		return decimal.Zero
	}
	return *t.Amount
}

// Platform returns the reporting platform name, or "" when absent.
func (t PlatformTransaction) Platform() string {
	if t.PlatformName == nil {
		return ""
	}
	return *t.PlatformName
}

// ExpenseCategory returns the expense category name, or "" when absent.
func (t PlatformTransaction) ExpenseCategory() string {
	if t.ExpenseCategoryName == nil {
		return ""
	}
	return *t.ExpenseCategoryName
}
