package services

import (
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/platform/config"
	"github.com/SscSPs/retail_ledger_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Reporting = NewReportingService(
		repos,
		WithReportQueryTimeout(cfg.ReportQueryTimeout),
		WithCOGSRatio(cfg.COGSEstimateRatio),
		WithUnknownUserLabel(cfg.UnknownUserLabel),
		WithReportingMetrics(m),
	)

	// Settlement services lock rows and retry on serialization failures
	container.Credit = NewCreditService(
		repos.TxManager,
		repos.CreditRepo,
		repos.CustomerRepo,
		repos.LedgerRepo,
		WithCreditMaxRetries(cfg.SettlementMaxRetries),
		WithCreditMetrics(m),
	)
	container.Vendor = NewVendorService(
		repos.TxManager,
		repos.VendorRepo,
		repos.LedgerRepo,
		WithVendorMaxRetries(cfg.SettlementMaxRetries),
		WithVendorMetrics(m),
	)

	container.Ledger = NewLedgerService(repos.LedgerRepo)

	// Source services post the shadow entries reconciliation filters out
	container.Sale = NewSaleService(repos, WithSaleMetrics(m))
	container.Order = NewOrderService(repos.TxManager, repos.OrderRepo, repos.LedgerRepo, WithOrderMetrics(m))
	container.PurchaseOrder = NewPurchaseOrderService(repos, WithPurchaseOrderMetrics(m))

	return container
}
