package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IncreasesWithDebit reports the normal balance side of the account type:
// Asset and Expense accounts increase on the debit side, Liability, Equity
// and Income accounts increase on the credit side.
func (t AccountType) IncreasesWithDebit() bool {
	return t == Asset || t == Expense
}

// Account represents one chart-of-accounts row as supplied by the upstream
// bookkeeping subsystem. Its running balance is always derived, never stored.
type Account struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           AccountType      `json:"type"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"` // Nullable; absent means 0
}

// Opening returns the opening balance, coalescing a missing value to zero.
func (a Account) Opening() decimal.Decimal {
	if a.OpeningBalance == nil {
		return decimal.Zero
	}
	return *a.OpeningBalance
}
