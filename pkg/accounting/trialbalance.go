package accounting

import (
	"github.com/studiofolio/finance-engine/pkg/domain"
)

// TrialBalance lists every account's closing balance on its normal side: a
// positive closing balance lands in the Debit column for Asset and Expense
// accounts and in the Credit column otherwise, with negative balances shown
// on the opposite side. Rows follow the order of the supplied chart of
// accounts. For balanced books with zero opening balances, the Debit and
// Credit columns total equal.
func (c *Calculator) TrialBalance(accounts []domain.Account, entries []domain.JournalEntry) []domain.TrialBalanceRow {
	deltas := accountDeltas(entries)

	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	for _, account := range accounts {
		closing := account.Opening().Add(deltas[account.ID])

		row := domain.TrialBalanceRow{
			AccountID:   account.ID,
			AccountName: account.Name,
			AccountType: account.Type,
		}

		debitSide := account.Type.IncreasesWithDebit()
		if closing.IsNegative() {
			closing = closing.Neg()
			debitSide = !debitSide
		}
		if debitSide {
			row.Debit = closing
		} else {
			row.Credit = closing
		}

		rows = append(rows, row)
	}
	return rows
}
