package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType indicates whether an invoice bills a customer or a vendor.
type InvoiceType string

const (
	Sales    InvoiceType = "SALES"
	Purchase InvoiceType = "PURCHASE"
)

// Invoice is the engine's read-only projection of a customer or vendor bill.
// It is created and owned by the invoicing subsystem; every monetary field
// may be absent upstream and is treated as zero here.
type Invoice struct {
	Type       InvoiceType      `json:"type"`
	AmountPaid *decimal.Decimal `json:"amountPaid"`
	AmountDue  *decimal.Decimal `json:"amountDue"`
	DueDate    *time.Time       `json:"dueDate"`
}

// Paid returns the amount actually paid, coalescing a missing value to zero.
func (i Invoice) Paid() decimal.Decimal {
	if i.AmountPaid == nil {
		return decimal.Zero
	}
	return *i.AmountPaid
}

// Due returns the outstanding amount, coalescing a missing value to zero.
func (i Invoice) Due() decimal.Decimal {
	if i.AmountDue == nil {
		return decimal.Zero
	}
	return *i.AmountDue
}
