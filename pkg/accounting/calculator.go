// Package accounting contains the pure financial calculations behind the
// site's reporting pages: profit and loss, balance sheet, trial balance,
// journal balance validation, running account balances and receivable aging.
//
// Every function is stateless and side-effect free: it reads the records it
// is handed, allocates a fresh report and never mutates its inputs, so
// concurrent use needs no coordination. Missing upstream data never raises;
// absent monetary fields read as zero and absent collections as empty.
package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the margin within which debits and credits (and the
// two sides of the accounting equation) are considered equal: one cent.
var DefaultTolerance = decimal.New(1, -2)

// Calculator performs the report derivations. Construct it with
// NewCalculator, which defaults to DefaultTolerance for balance checks and
// the wall clock for aging unless options override them.
type Calculator struct {
	tolerance decimal.Decimal
	now       func() time.Time
}

// Option is a functional option for configuring a Calculator.
type Option func(*Calculator)

// WithTolerance overrides the balance-check tolerance.
func WithTolerance(t decimal.Decimal) Option {
	return func(c *Calculator) {
		c.tolerance = t
	}
}

// WithClock overrides the source of "now" used when no as-of date is
// supplied to InvoiceAging.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

// NewCalculator creates a calculator with the provided options.
func NewCalculator(options ...Option) *Calculator {
	c := &Calculator{
		tolerance: DefaultTolerance,
		now:       time.Now,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// withinTolerance reports whether two amounts differ by less than the
// configured tolerance.
func (c *Calculator) withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(c.tolerance)
}
