package accounting

import (
	"github.com/studiofolio/finance-engine/pkg/domain"

	"github.com/shopspring/decimal"
)

// ValidateJournalEntryBalance checks one journal entry's lines against the
// double-entry rule: total debits must equal total credits within the
// calculator's tolerance. The result is data, not an error; the posting
// subsystem uses it as a pre-commit check and the reports as a predicate.
func (c *Calculator) ValidateJournalEntryBalance(lines []domain.JournalLine) domain.JournalBalanceResult {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, line := range lines {
		totalDebits = totalDebits.Add(line.DebitAmount())
		totalCredits = totalCredits.Add(line.CreditAmount())
	}

	difference := totalDebits.Sub(totalCredits).Abs()

	return domain.JournalBalanceResult{
		IsBalanced:   difference.LessThan(c.tolerance),
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
	}
}
