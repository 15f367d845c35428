package domain_test

import (
	"testing"

	"github.com/studiofolio/finance-engine/pkg/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalLine_MissingFieldsReadAsZero(t *testing.T) {
	var line domain.JournalLine

	assert.True(t, line.DebitAmount().IsZero())
	assert.True(t, line.CreditAmount().IsZero())
	assert.Equal(t, domain.AccountType(""), line.AccountType())
}

func TestJournalLine_Accessors(t *testing.T) {
	debit := decimal.NewFromInt(120)
	credit := decimal.NewFromInt(80)
	line := domain.JournalLine{
		Debit:   &debit,
		Credit:  &credit,
		Account: &domain.LineAccount{Type: domain.Income, Name: "Consulting Income"},
	}

	assert.True(t, debit.Equal(line.DebitAmount()))
	assert.True(t, credit.Equal(line.CreditAmount()))
	assert.Equal(t, domain.Income, line.AccountType())
}
