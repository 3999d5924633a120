package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/core/services"
	"github.com/SscSPs/retail_ledger_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedger    *MockLedgerRepository
	mockSale      *MockSaleRepository
	mockOrder     *MockOrderRepository
	mockPO        *MockPurchaseOrderRepository
	mockCredit    *MockCreditRepository
	mockVendor    *MockVendorRepository
	mockInventory *MockInventoryRepository
	mockUser      *MockUserRepository
	metrics       *metrics.Metrics
	service       portssvc.ReportingService

	day time.Time
	rng domain.DateRange
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockSale = new(MockSaleRepository)
	suite.mockOrder = new(MockOrderRepository)
	suite.mockPO = new(MockPurchaseOrderRepository)
	suite.mockCredit = new(MockCreditRepository)
	suite.mockVendor = new(MockVendorRepository)
	suite.mockInventory = new(MockInventoryRepository)
	suite.mockUser = new(MockUserRepository)
	suite.metrics = metrics.New()

	suite.day = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	suite.rng = domain.DayRange(suite.day)

	repos := portsrepo.RepositoryProvider{
		LedgerRepo:        suite.mockLedger,
		SaleRepo:          suite.mockSale,
		OrderRepo:         suite.mockOrder,
		PurchaseOrderRepo: suite.mockPO,
		CreditRepo:        suite.mockCredit,
		VendorRepo:        suite.mockVendor,
		InventoryRepo:     suite.mockInventory,
		UserRepo:          suite.mockUser,
	}
	suite.service = services.NewReportingService(
		repos,
		services.WithReportQueryTimeout(2*time.Second),
		services.WithUnknownUserLabel("n/a"),
		services.WithReportingMetrics(suite.metrics),
		services.WithReportingClock(func() time.Time { return suite.day }),
	)
}

func (suite *ReportingServiceTestSuite) withStatuses() interface{} {
	return mock.MatchedBy(func(f domain.OrderFilter) bool { return len(f.Statuses) > 0 })
}

func (suite *ReportingServiceTestSuite) expectSources(entries []domain.LedgerEntry, sales []domain.Sale, orders []domain.Order, pos []domain.PurchaseOrder) {
	suite.mockLedger.On("QueryEntries", mock.Anything, suite.rng.From, suite.rng.To, mock.Anything).Return(entries, nil).Once()
	suite.mockSale.On("QuerySales", mock.Anything, suite.rng.From, suite.rng.To).Return(sales, nil).Once()
	suite.mockOrder.On("QueryOrders", mock.Anything, suite.withStatuses()).Return(orders, nil).Once()
	suite.mockPO.On("QueryPurchaseOrders", mock.Anything, suite.rng.From, suite.rng.To).Return(pos, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestDayBookForDate_MergesAndResolvesActors() {
	saleID := "s1"
	entries := []domain.LedgerEntry{
		{EntryID: "mirror", Date: suite.day, Type: domain.Income, Category: domain.CategorySales, Amount: d(500), RelatedID: &saleID, PerformedBy: "u-cashier"},
		{EntryID: "rent", Date: suite.day.Add(time.Hour), Type: domain.Expense, Category: domain.CategoryRent, Amount: d(8000), PaymentMethod: domain.MethodBankTransfer, PerformedBy: "u-owner"},
	}
	sales := []domain.Sale{{SaleID: "s1", CreatedAt: suite.day, Total: d(500), PaidAmount: d(500), PaymentMethod: domain.MethodCash, PerformedBy: "u-cashier"}}
	suite.expectSources(entries, sales, nil, nil)
	suite.mockUser.On("FindUserNamesByIDs", mock.Anything, []string{"u-cashier", "u-owner"}).Return(map[string]string{"u-cashier": "Sita"}, nil).Once()

	rows, err := suite.service.DayBookForDate(context.Background(), time.Time{})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2, "the mirror of s1 must not be listed")
	suite.Equal("rent", rows[0].ID)
	suite.Equal("n/a", rows[0].PerformedBy)
	suite.Equal("s1", rows[1].ID)
	suite.Equal("Sita", rows[1].PerformedBy)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDayBook_UserLookupFailureDegradesGracefully() {
	sales := []domain.Sale{{SaleID: "s1", CreatedAt: suite.day, Total: d(50), PaidAmount: d(50), PerformedBy: "u-cashier"}}
	suite.expectSources(nil, sales, nil, nil)
	suite.mockUser.On("FindUserNamesByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("users table locked")).Once()

	rows, err := suite.service.DayBook(context.Background(), suite.rng)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("n/a", rows[0].PerformedBy)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_StoreFailureIsStoreUnavailable() {
	suite.mockLedger.On("QueryEntries", mock.Anything, suite.rng.From, suite.rng.To, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	suite.mockSale.On("QuerySales", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Sale{}, nil).Maybe()
	suite.mockOrder.On("QueryOrders", mock.Anything, mock.Anything).Return([]domain.Order{}, nil).Maybe()
	suite.mockPO.On("QueryPurchaseOrders", mock.Anything, mock.Anything, mock.Anything).Return([]domain.PurchaseOrder{}, nil).Maybe()

	pl, err := suite.service.ProfitAndLoss(context.Background(), suite.rng)

	suite.Nil(pl)
	suite.True(errors.Is(err, apperrors.ErrStoreUnavailable), "got %v", err)
	suite.Equal(503, apperrors.HTTPStatus(err))
	suite.Equal(1, testutil.CollectAndCount(suite.metrics.ReportDuration))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_OrderQueryFallsBackToUnfiltered() {
	orders := []domain.Order{
		{OrderID: "o1", CreatedAt: suite.day, Status: domain.OrderConfirmed, Total: d(1200), PaymentMethod: domain.MethodCOD},
		{OrderID: "o2", CreatedAt: suite.day, Status: domain.OrderPending, Total: d(999), PaymentMethod: domain.MethodCOD},
	}
	suite.mockLedger.On("QueryEntries", mock.Anything, suite.rng.From, suite.rng.To, mock.Anything).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockSale.On("QuerySales", mock.Anything, suite.rng.From, suite.rng.To).Return([]domain.Sale{}, nil).Once()
	unsupported := apperrors.NewAppError(503, "failed to query orders", fmt.Errorf("%w: function array_position does not exist", apperrors.ErrUnsupportedQuery))
	suite.mockOrder.On("QueryOrders", mock.Anything, suite.withStatuses()).Return(nil, unsupported).Once()
	suite.mockOrder.On("QueryOrders", mock.Anything, mock.MatchedBy(func(f domain.OrderFilter) bool {
		return len(f.Statuses) == 0 && f.From != nil && f.From.Equal(suite.rng.From)
	})).Return(orders, nil).Once()
	suite.mockPO.On("QueryPurchaseOrders", mock.Anything, suite.rng.From, suite.rng.To).Return([]domain.PurchaseOrder{}, nil).Once()

	pl, err := suite.service.ProfitAndLoss(context.Background(), suite.rng)

	suite.Require().NoError(err)
	suite.True(d(1200).Equal(pl.Income), "pending order must still be excluded, income was %s", pl.Income)
	suite.mockOrder.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_OrderQueryFailureIsNotRetried() {
	suite.mockLedger.On("QueryEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]domain.LedgerEntry{}, nil).Maybe()
	suite.mockSale.On("QuerySales", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Sale{}, nil).Maybe()
	suite.mockPO.On("QueryPurchaseOrders", mock.Anything, mock.Anything, mock.Anything).Return([]domain.PurchaseOrder{}, nil).Maybe()
	suite.mockOrder.On("QueryOrders", mock.Anything, suite.withStatuses()).
		Return(nil, apperrors.NewAppError(503, "failed to query orders", errors.New("connection reset by peer"))).Once()

	pl, err := suite.service.ProfitAndLoss(context.Background(), suite.rng)

	suite.Nil(pl)
	suite.True(errors.Is(err, apperrors.ErrStoreUnavailable))
	suite.mockOrder.AssertNumberOfCalls(suite.T(), "QueryOrders", 1)
}

func (suite *ReportingServiceTestSuite) TestCashFlow() {
	sales := []domain.Sale{
		{SaleID: "s1", CreatedAt: suite.day, Total: d(800), PaidAmount: d(0), DueAmount: d(800), PaymentMethod: domain.MethodCredit},
		{SaleID: "s2", CreatedAt: suite.day, Total: d(200), PaidAmount: d(200), PaymentMethod: domain.MethodCash},
	}
	entries := []domain.LedgerEntry{
		{EntryID: "vpay", Date: suite.day, Type: domain.Expense, Category: domain.CategoryVendorPay, Amount: d(300), PaymentMethod: domain.MethodCash},
	}
	suite.expectSources(entries, sales, []domain.Order{}, []domain.PurchaseOrder{})

	cf, err := suite.service.CashFlow(context.Background(), suite.rng)

	suite.Require().NoError(err)
	suite.True(d(1000).Equal(cf.CashIn))
	suite.True(d(800).Equal(cf.CashInBreakdown.Credit))
	suite.True(d(300).Equal(cf.CashOut))
	suite.True(d(700).Equal(cf.NetCashFlow))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	asOf := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	history := domain.AllTimeUntil(asOf)

	suite.mockLedger.On("QueryEntries", mock.Anything, history.From, history.To, mock.Anything).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockSale.On("QuerySales", mock.Anything, history.From, history.To).Return([]domain.Sale{
		{SaleID: "s1", CreatedAt: suite.day, Total: d(1000), PaidAmount: d(400), DueAmount: d(600), PaymentMethod: domain.MethodCash},
	}, nil).Once()
	suite.mockOrder.On("QueryOrders", mock.Anything, mock.Anything).Return([]domain.Order{}, nil).Once()
	suite.mockPO.On("QueryPurchaseOrders", mock.Anything, history.From, history.To).Return([]domain.PurchaseOrder{}, nil).Once()
	suite.mockCredit.On("ListOutstandingCredits", mock.Anything, (*string)(nil)).Return([]domain.CreditTransaction{
		{CreditID: "c1", TotalAmount: d(1000), PaidAmount: d(400), DueAmount: d(600)},
	}, nil).Once()
	suite.mockVendor.On("ListVendors", mock.Anything).Return([]domain.Vendor{{VendorID: "v1", Balance: d(250)}}, nil).Once()
	suite.mockInventory.On("ListInventoryLines", mock.Anything).Return([]domain.InventoryLine{
		{ProductID: "p1", WarehouseID: "w1", Quantity: 3, CostPrice: d(50)},
	}, nil).Once()

	bs, err := suite.service.BalanceSheet(context.Background(), asOf)

	suite.Require().NoError(err)
	suite.True(d(400).Equal(bs.Assets.Cash), "cash was %s", bs.Assets.Cash)
	suite.True(d(600).Equal(bs.Assets.Receivables))
	suite.True(d(150).Equal(bs.Assets.Inventory))
	suite.True(d(250).Equal(bs.Liabilities.Payables))
	suite.True(d(900).Equal(bs.Equity))
	suite.mockCredit.AssertExpectations(suite.T())
	suite.mockVendor.AssertExpectations(suite.T())
	suite.mockInventory.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_VendorReadFails() {
	suite.mockLedger.On("QueryEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]domain.LedgerEntry{}, nil).Maybe()
	suite.mockSale.On("QuerySales", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Sale{}, nil).Maybe()
	suite.mockOrder.On("QueryOrders", mock.Anything, mock.Anything).Return([]domain.Order{}, nil).Maybe()
	suite.mockPO.On("QueryPurchaseOrders", mock.Anything, mock.Anything, mock.Anything).Return([]domain.PurchaseOrder{}, nil).Maybe()
	suite.mockCredit.On("ListOutstandingCredits", mock.Anything, mock.Anything).Return([]domain.CreditTransaction{}, nil).Maybe()
	suite.mockInventory.On("ListInventoryLines", mock.Anything).Return([]domain.InventoryLine{}, nil).Maybe()
	suite.mockVendor.On("ListVendors", mock.Anything).Return(nil, errors.New("timeout")).Once()

	bs, err := suite.service.BalanceSheet(context.Background(), time.Time{})

	suite.Nil(bs)
	suite.True(errors.Is(err, apperrors.ErrStoreUnavailable))
}
