package services

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every report is rebuilt from stored state on each call.
type ReportingService interface {
	// DayBook returns the unified, shadow-free transaction feed for a range, newest first.
	DayBook(ctx context.Context, rng domain.DateRange) ([]domain.UnifiedTransaction, error)

	// DayBookForDate returns the day book for [00:00, 24:00) of date.
	DayBookForDate(ctx context.Context, date time.Time) ([]domain.UnifiedTransaction, error)

	// ProfitAndLoss generates an accrual P&L statement for a range
	ProfitAndLoss(ctx context.Context, rng domain.DateRange) (*domain.PLStatement, error)

	// CashFlow generates the accrual cash flow for a range
	CashFlow(ctx context.Context, rng domain.DateRange) (*domain.CashFlow, error)

	// BalanceSheet reconstructs the balance sheet from all history up to asOf
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)
}
