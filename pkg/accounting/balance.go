package accounting

import (
	"github.com/studiofolio/finance-engine/pkg/domain"

	"github.com/shopspring/decimal"
)

// normalDelta applies the accounting sign convention to one debit/credit
// pair, from the perspective of the account it posts to:
//
//	DEBIT to ASSET/EXPENSE            -> Positive (+)
//	CREDIT to ASSET/EXPENSE           -> Negative (-)
//	DEBIT to LIABILITY/EQUITY/INCOME  -> Negative (-)
//	CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
//
// AccountBalance, BalanceSheet and TrialBalance all accumulate through this
// one function so their per-account arithmetic cannot diverge.
func normalDelta(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.IncreasesWithDebit() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// AccountBalance computes the running balance of a single account: the
// opening balance plus each line's debit/credit applied on the account's
// normal side. Lines are the postings that hit this account; their own
// account data, if any, is ignored in favour of the supplied type.
func (c *Calculator) AccountBalance(accountType domain.AccountType, openingBalance decimal.Decimal, lines []domain.JournalLine) decimal.Decimal {
	balance := openingBalance
	for _, line := range lines {
		balance = balance.Add(normalDelta(accountType, line.DebitAmount(), line.CreditAmount()))
	}
	return balance
}

// accountDeltas folds every journal line with a known account ID into a
// per-account transactional delta, signed by the line's own account type.
// Lines without an account ID cannot be attributed and are skipped.
func accountDeltas(entries []domain.JournalEntry) map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		for _, line := range entry.Lines {
			if line.AccountID == nil {
				continue
			}
			delta := normalDelta(line.AccountType(), line.DebitAmount(), line.CreditAmount())
			deltas[*line.AccountID] = deltas[*line.AccountID].Add(delta)
		}
	}
	return deltas
}
