package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/core/reconciliation"
	"github.com/SscSPs/retail_ledger_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultReportQueryTimeout = 15 * time.Second

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerReader
	saleRepo      portsrepo.SaleRepository
	orderRepo     portsrepo.OrderRepository
	poRepo        portsrepo.PurchaseOrderRepository
	creditRepo    portsrepo.CreditReader
	vendorRepo    portsrepo.VendorReader
	inventoryRepo portsrepo.InventoryRepository
	userRepo      portsrepo.UserReader

	queryTimeout     time.Duration
	cogsRatio        decimal.Decimal
	unknownUserLabel string
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportQueryTimeout bounds every report's fan-out of store reads.
func WithReportQueryTimeout(d time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

// WithCOGSRatio sets the ratio used for the labeled gross-margin estimate.
func WithCOGSRatio(ratio decimal.Decimal) ReportingServiceOption {
	return func(s *reportingService) {
		s.cogsRatio = ratio
	}
}

// WithUnknownUserLabel sets the placeholder shown for unresolved actors.
func WithUnknownUserLabel(label string) ReportingServiceOption {
	return func(s *reportingService) {
		s.unknownUserLabel = label
	}
}

// WithReportingMetrics records report latency.
func WithReportingMetrics(m *metrics.Metrics) ReportingServiceOption {
	return func(s *reportingService) {
		s.Metrics = m
	}
}

// WithReportingClock overrides the clock used for "today" and "now".
func WithReportingClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		ledgerRepo:       repos.LedgerRepo,
		saleRepo:         repos.SaleRepo,
		orderRepo:        repos.OrderRepo,
		poRepo:           repos.PurchaseOrderRepo,
		creditRepo:       repos.CreditRepo,
		vendorRepo:       repos.VendorRepo,
		inventoryRepo:    repos.InventoryRepo,
		userRepo:         repos.UserRepo,
		queryTimeout:     defaultReportQueryTimeout,
		cogsRatio:        reconciliation.DefaultCOGSRatio,
		unknownUserLabel: domain.UnknownUserLabel,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// fetchSources reads the four transaction streams for rng in parallel. The first
// failure cancels the remaining reads.
func (s *reportingService) fetchSources(ctx context.Context, rng domain.DateRange) (reconciliation.Sources, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var src reconciliation.Sources
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.ledgerRepo.QueryEntries(gctx, rng.From, rng.To, nil)
		src.Ledger = entries
		return storeUnavailable("ledger entries", err)
	})
	g.Go(func() error {
		sales, err := s.saleRepo.QuerySales(gctx, rng.From, rng.To)
		src.Sales = sales
		return storeUnavailable("sales", err)
	})
	g.Go(func() error {
		orders, err := s.queryOrders(gctx, rng)
		src.Orders = orders
		return err
	})
	g.Go(func() error {
		pos, err := s.poRepo.QueryPurchaseOrders(gctx, rng.From, rng.To)
		src.PurchaseOrders = pos
		return storeUnavailable("purchase orders", err)
	})

	if err := g.Wait(); err != nil {
		return reconciliation.Sources{}, err
	}
	return src, nil
}

// queryOrders pushes the revenue status filter down to the store. If the store
// cannot run that query shape, it retries once unfiltered; the engines filter by
// status themselves. Any other failure is surfaced.
func (s *reportingService) queryOrders(ctx context.Context, rng domain.DateRange) ([]domain.Order, error) {
	filter := domain.OrderFilter{
		Statuses: domain.RevenueOrderStatuses,
		From:     &rng.From,
		To:       &rng.To,
	}

	orders, err := s.orderRepo.QueryOrders(ctx, filter)
	if err == nil || ctx.Err() != nil || !errors.Is(err, apperrors.ErrUnsupportedQuery) {
		return orders, storeUnavailable("orders", err)
	}

	s.LogWarn(ctx, "Filtered order query failed, retrying without status filter", slog.String("error", err.Error()))
	filter.Statuses = nil
	orders, err = s.orderRepo.QueryOrders(ctx, filter)
	return orders, storeUnavailable("orders", err)
}

// actorDirectory resolves display names best-effort; a lookup failure only
// degrades attribution.
func (s *reportingService) actorDirectory(ctx context.Context, ids []string) domain.ActorDirectory {
	dir := domain.ActorDirectory{UnknownLabel: s.unknownUserLabel}
	if len(ids) == 0 || s.userRepo == nil {
		return dir
	}
	names, err := s.userRepo.FindUserNamesByIDs(ctx, ids)
	if err != nil {
		s.LogWarn(ctx, "Failed to resolve actor names for day book", slog.String("error", err.Error()), slog.Int("actor_count", len(ids)))
		return dir
	}
	dir.Names = names
	return dir
}

func (s *reportingService) observe(report string, start time.Time, err error) {
	s.Metrics.ObserveReport(report, err == nil, time.Since(start))
}

// DayBook returns the unified, shadow-free feed for rng, newest first.
func (s *reportingService) DayBook(ctx context.Context, rng domain.DateRange) (rows []domain.UnifiedTransaction, err error) {
	start := time.Now()
	defer func() { s.observe("day_book", start, err) }()

	src, err := s.fetchSources(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve day book sources",
			slog.String("from", rng.From.Format(time.RFC3339)),
			slog.String("to", rng.To.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to build day book: %w", err)
	}

	rows = reconciliation.BuildDayBook(src, s.actorDirectory(ctx, src.ActorIDs()))

	s.LogInfo(ctx, "Day book generated successfully",
		slog.String("from", rng.From.Format(time.RFC3339)),
		slog.String("to", rng.To.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// DayBookForDate returns the day book for the UTC calendar day of date. A zero
// date means today.
func (s *reportingService) DayBookForDate(ctx context.Context, date time.Time) ([]domain.UnifiedTransaction, error) {
	if date.IsZero() {
		date = s.Now()
	}
	return s.DayBook(ctx, domain.DayRange(date.UTC()))
}

// ProfitAndLoss generates an accrual P&L statement for rng
func (s *reportingService) ProfitAndLoss(ctx context.Context, rng domain.DateRange) (pl *domain.PLStatement, err error) {
	start := time.Now()
	defer func() { s.observe("profit_and_loss", start, err) }()

	src, err := s.fetchSources(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit and loss data",
			slog.String("from", rng.From.Format(time.RFC3339)),
			slog.String("to", rng.To.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	statement := reconciliation.ComputeProfitAndLoss(rng, src, s.cogsRatio)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("from", rng.From.Format(time.RFC3339)),
		slog.String("to", rng.To.Format(time.RFC3339)),
		slog.String("net_profit", statement.NetProfit.String()))
	return &statement, nil
}

// CashFlow generates the accrual cash flow for rng
func (s *reportingService) CashFlow(ctx context.Context, rng domain.DateRange) (cf *domain.CashFlow, err error) {
	start := time.Now()
	defer func() { s.observe("cash_flow", start, err) }()

	src, err := s.fetchSources(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cash flow data",
			slog.String("from", rng.From.Format(time.RFC3339)),
			slog.String("to", rng.To.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve cash flow data: %w", err)
	}

	flow := reconciliation.ComputeCashFlow(rng, src)

	s.LogInfo(ctx, "Cash flow report generated successfully",
		slog.String("from", rng.From.Format(time.RFC3339)),
		slog.String("to", rng.To.Format(time.RFC3339)),
		slog.String("net_cash_flow", flow.NetCashFlow.String()))
	return &flow, nil
}

// BalanceSheet reconstructs cash from all history up to asOf and reads the
// current receivable, payable and stock positions. A zero asOf means now.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (bs *domain.BalanceSheet, err error) {
	start := time.Now()
	defer func() { s.observe("balance_sheet", start, err) }()

	if asOf.IsZero() {
		asOf = s.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var in reconciliation.BalanceSheetInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		history, err := s.fetchSources(gctx, domain.AllTimeUntil(asOf))
		in.History = history
		return err
	})
	g.Go(func() error {
		credits, err := s.creditRepo.ListOutstandingCredits(gctx, nil)
		in.Credits = credits
		return storeUnavailable("outstanding credits", err)
	})
	g.Go(func() error {
		vendors, err := s.vendorRepo.ListVendors(gctx)
		in.Vendors = vendors
		return storeUnavailable("vendors", err)
	})
	g.Go(func() error {
		lines, err := s.inventoryRepo.ListInventoryLines(gctx)
		in.Inventory = lines
		return storeUnavailable("inventory", err)
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	sheet := reconciliation.ComputeBalanceSheet(asOf, in)

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("open_credits", len(in.Credits)),
		slog.Int("vendors", len(in.Vendors)),
		slog.Int("inventory_lines", len(in.Inventory)))
	return &sheet, nil
}
