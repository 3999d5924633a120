package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DayBook(ctx context.Context, rng domain.DateRange) ([]domain.UnifiedTransaction, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnifiedTransaction), args.Error(1)
}
func (m *MockReportingService) DayBookForDate(ctx context.Context, date time.Time) ([]domain.UnifiedTransaction, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnifiedTransaction), args.Error(1)
}
func (m *MockReportingService) ProfitAndLoss(ctx context.Context, rng domain.DateRange) (*domain.PLStatement, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PLStatement), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, rng domain.DateRange) (*domain.CashFlow, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlow), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock CreditService ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) GetCredit(ctx context.Context, creditID string) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}
func (m *MockCreditService) ListOutstandingCredits(ctx context.Context, customerID string) ([]domain.CreditTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditTransaction), args.Error(1)
}
func (m *MockCreditService) SettleCredit(ctx context.Context, creditID string, req dto.SettleCreditRequest, actorID string) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, creditID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

// --- Mock VendorService ---
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) ListVendorPayments(ctx context.Context, vendorID string) ([]domain.VendorPayment, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorPayment), args.Error(1)
}
func (m *MockVendorService) SettleVendorPayment(ctx context.Context, vendorID string, req dto.SettleVendorPaymentRequest, actorID string) (*domain.VendorPayment, error) {
	args := m.Called(ctx, vendorID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorPayment), args.Error(1)
}

var _ portssvc.VendorSvcFacade = (*MockVendorService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}
func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) PostCorrection(ctx context.Context, entryID string, req dto.PostCorrectionRequest, actorID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock source services ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, actorID string) (*domain.Sale, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, orderID string, req dto.UpdateOrderStatusRequest, actorID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockPurchaseOrderService struct {
	mock.Mock
}

func (m *MockPurchaseOrderService) ReceivePurchaseOrder(ctx context.Context, poID string, req dto.ReceivePurchaseOrderRequest, actorID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

var (
	_ portssvc.SaleService          = (*MockSaleService)(nil)
	_ portssvc.OrderService         = (*MockOrderService)(nil)
	_ portssvc.PurchaseOrderService = (*MockPurchaseOrderService)(nil)
)
