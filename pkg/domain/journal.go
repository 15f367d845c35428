package domain

import (
	"github.com/shopspring/decimal"
)

// LineAccount is the slice of account data a journal line carries along:
// enough to classify the line without a chart-of-accounts lookup.
type LineAccount struct {
	Type AccountType `json:"type"`
	Name string      `json:"name"`
}

// JournalLine is a single debit or credit posting within a journal entry.
// Upstream data may leave any field unset; missing amounts read as zero and
// a missing account leaves the line unclassified.
type JournalLine struct {
	AccountID *string          `json:"accountId"`
	Debit     *decimal.Decimal `json:"debit"`
	Credit    *decimal.Decimal `json:"credit"`
	Account   *LineAccount     `json:"account"`
}

// DebitAmount returns the debit side of the line, zero when absent.
func (l JournalLine) DebitAmount() decimal.Decimal {
	if l.Debit == nil {
		return decimal.Zero
	}
	return *l.Debit
}

// CreditAmount returns the credit side of the line, zero when absent.
func (l JournalLine) CreditAmount() decimal.Decimal {
	if l.Credit == nil {
		return decimal.Zero
	}
	return *l.Credit
}

// AccountType returns the type of the line's account, or "" when the line
// carries no account data.
func (l JournalLine) AccountType() AccountType {
	if l.Account == nil {
		return ""
	}
	return l.Account.Type
}

// JournalEntry represents one formal double-entry posting. A well-formed
// entry's lines balance (sum of debits equals sum of credits); the engine
// checks this but never enforces it structurally.
type JournalEntry struct {
	Lines []JournalLine `json:"lines"`
}
