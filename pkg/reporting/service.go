// Package reporting is the in-process facade the site's reporting layer
// calls: it composes the pure calculators in pkg/accounting and adds
// structured logging around report generation. It never fetches data; the
// caller hands it already-retrieved record collections.
package reporting

import (
	"context"
	"log/slog"
	"time"

	"github.com/studiofolio/finance-engine/pkg/accounting"
	"github.com/studiofolio/finance-engine/pkg/domain"
)

// ReportInput bundles the record collections a report derivation reads.
// Any field may be left nil; the calculators treat nil as empty.
type ReportInput struct {
	Invoices             []domain.Invoice
	PlatformTransactions []domain.PlatformTransaction
	JournalEntries       []domain.JournalEntry
	Accounts             []domain.Account
}

// Service generates financial reports from supplied records.
type Service struct {
	calc   *accounting.Calculator
	logger *slog.Logger
}

// ServiceOption is a functional option for configuring the reporting service.
type ServiceOption func(*Service)

// WithCalculator sets the calculator the service derives reports with.
func WithCalculator(calc *accounting.Calculator) ServiceOption {
	return func(s *Service) {
		s.calc = calc
	}
}

// WithLogger sets the logger used for report generation logs.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new reporting service with the provided options.
func NewService(options ...ServiceOption) *Service {
	svc := &Service{
		calc:   accounting.NewCalculator(),
		logger: slog.Default(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// ProfitAndLoss generates a profit and loss report over the supplied records.
func (s *Service) ProfitAndLoss(ctx context.Context, in ReportInput) domain.ProfitLossReport {
	report := s.calc.ProfitLoss(in.Invoices, in.PlatformTransactions, in.JournalEntries)

	s.logger.InfoContext(ctx, "profit and loss report generated",
		slog.Int("revenue_categories", len(report.Revenue)),
		slog.Int("expense_categories", len(report.Expenses)),
		slog.String("net_profit", report.NetProfit.String()))
	return report
}

// BalanceSheet generates a balance sheet over the supplied records, folding
// the net profit the same records imply into equity as retained earnings.
func (s *Service) BalanceSheet(ctx context.Context, in ReportInput) domain.BalanceSheetReport {
	netProfit := s.calc.ProfitLoss(in.Invoices, in.PlatformTransactions, in.JournalEntries).NetProfit
	report := s.calc.BalanceSheet(in.Invoices, in.JournalEntries, in.Accounts, netProfit)

	if !report.IsBalanced {
		// Data-quality signal for the operator, not a fault.
		s.logger.WarnContext(ctx, "balance sheet does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()))
	}

	s.logger.InfoContext(ctx, "balance sheet report generated",
		slog.Int("asset_lines", len(report.Assets)),
		slog.Int("liability_lines", len(report.Liabilities)),
		slog.Int("equity_lines", len(report.Equity)),
		slog.Bool("is_balanced", report.IsBalanced))
	return report
}

// TrialBalance generates a trial balance over the supplied chart of accounts
// and journal entries.
func (s *Service) TrialBalance(ctx context.Context, in ReportInput) []domain.TrialBalanceRow {
	rows := s.calc.TrialBalance(in.Accounts, in.JournalEntries)

	s.logger.InfoContext(ctx, "trial balance report generated",
		slog.Int("row_count", len(rows)))
	return rows
}

// Aging buckets outstanding receivables by days overdue as of asOf; a zero
// asOf means now.
func (s *Service) Aging(ctx context.Context, invoices []domain.Invoice, asOf time.Time) domain.AgingReport {
	report := s.calc.InvoiceAging(invoices, asOf)

	s.logger.InfoContext(ctx, "receivable aging report generated",
		slog.Int("invoice_count", len(invoices)),
		slog.String("total_outstanding", report.Total.String()))
	return report
}
