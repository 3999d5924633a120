package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) QueryEntries(ctx context.Context, from, to time.Time, entryType *domain.EntryType) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, from, to, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, limit int, nextToken *string, entryType *domain.EntryType) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken, entryType)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

// --- Mock CreditRepository ---
type MockCreditRepository struct {
	mock.Mock
}

var _ portsrepo.CreditRepositoryFacade = (*MockCreditRepository)(nil)

func (m *MockCreditRepository) FindCreditByID(ctx context.Context, creditID string) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditRepository) ListOutstandingCredits(ctx context.Context, customerID *string) ([]domain.CreditTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditRepository) SaveCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditTransaction) error {
	args := m.Called(ctx, tx, credit)
	return args.Error(0)
}

func (m *MockCreditRepository) FindCreditByIDForUpdate(ctx context.Context, tx pgx.Tx, creditID string) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, tx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditRepository) UpdateCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditTransaction) error {
	args := m.Called(ctx, tx, credit)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) AdjustTotalDueInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, customerID, delta, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

var _ portsrepo.VendorRepositoryFacade = (*MockVendorRepository)(nil)

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendorPayments(ctx context.Context, vendorID string) ([]domain.VendorPayment, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorPayment), args.Error(1)
}

func (m *MockVendorRepository) FindVendorByIDForUpdate(ctx context.Context, tx pgx.Tx, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, tx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, vendorID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, vendorID, delta, updatedBy, updatedAt)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockVendorRepository) SaveVendorPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.VendorPayment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepository = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) QuerySales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	args := m.Called(ctx, tx, sale)
	return args.Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) QueryOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByIDForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, tx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatusInTx(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

// --- Mock PurchaseOrderRepository ---
type MockPurchaseOrderRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseOrderRepository = (*MockPurchaseOrderRepository)(nil)

func (m *MockPurchaseOrderRepository) QueryPurchaseOrders(ctx context.Context, from, to time.Time) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByIDForUpdate(ctx context.Context, tx pgx.Tx, poID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, tx, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) MarkReceivedInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error {
	args := m.Called(ctx, tx, po)
	return args.Error(0)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

var _ portsrepo.InventoryRepository = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) ListInventoryLines(ctx context.Context) ([]domain.InventoryLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryLine), args.Error(1)
}

func (m *MockInventoryRepository) IncrementStockInTx(ctx context.Context, tx pgx.Tx, productID, warehouseID string, quantity int64) error {
	args := m.Called(ctx, tx, productID, warehouseID, quantity)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// amountIs matches a decimal argument by value rather than by representation.
func amountIs(want float64) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(decimal.NewFromFloat(want))
	})
}

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
