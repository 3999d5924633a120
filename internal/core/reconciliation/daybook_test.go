package reconciliation_test

import (
	"testing"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/core/reconciliation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayBookSources() reconciliation.Sources {
	return reconciliation.Sources{
		Ledger: []domain.LedgerEntry{
			related(entry("mirror-s1", domain.Income, domain.CategorySales, 500, domain.MethodCash, day1), "s1"),
			related(entry("mirror-po1", domain.Expense, domain.CategoryPurchase, 2000, domain.MethodCredit, day2), "po1"),
			entry("rent", domain.Expense, domain.CategoryRent, 8000, domain.MethodBankTransfer, day1),
		},
		Sales: []domain.Sale{sale("s1", 500, 500, domain.MethodCash, day1)},
		Orders: []domain.Order{
			order("o1", domain.OrderConfirmed, 1200, domain.MethodCOD, day2),
			order("o2", domain.OrderPending, 999, domain.MethodCOD, day2),
			order("o3", domain.OrderCancelled, 50, domain.MethodCOD, day1),
		},
		PurchaseOrders: []domain.PurchaseOrder{
			purchaseOrder("po1", domain.POReceived, 2000, floatPtr(1900), day2),
			purchaseOrder("po2", domain.POPending, 300, nil, day1),
		},
	}
}

func TestBuildDayBook(t *testing.T) {
	actors := domain.ActorDirectory{Names: map[string]string{"u-cashier": "Sita", "u-clerk": "Ram"}}
	book := reconciliation.BuildDayBook(dayBookSources(), actors)

	require.Len(t, book, 4, "mirrors, pending and cancelled rows must not appear")

	// newest first: day2 rows (ONLINE o1, PURCHASE po1) then day1 rows (LEDGER rent, POS s1)
	assert.Equal(t, "o1", book[0].ID)
	assert.Equal(t, domain.SourceOnline, book[0].Source)
	assert.Equal(t, "po1", book[1].ID)
	assert.Equal(t, domain.SourcePurchase, book[1].Source)
	assert.Equal(t, "rent", book[2].ID)
	assert.Equal(t, "s1", book[3].ID)

	assert.True(t, d(1900).Equal(book[1].Amount), "received total wins over ordered total")
	assert.Equal(t, domain.Expense, book[1].Type)
	assert.Equal(t, domain.CategoryPurchase, book[1].Category)
	assert.Equal(t, "Ram", book[1].PerformedBy)

	assert.Equal(t, domain.Income, book[3].Type)
	assert.Equal(t, domain.CategorySales, book[3].Category)
	assert.Equal(t, "Sita", book[3].PerformedBy)

	assert.Equal(t, domain.UnknownUserLabel, book[0].PerformedBy, "unresolved ids never fail the build")
}

func TestBuildDayBookIsIdempotent(t *testing.T) {
	src := dayBookSources()
	src.Sales = append(src.Sales, sale("s0", 10, 10, domain.MethodCash, day1))
	actors := domain.ActorDirectory{UnknownLabel: "n/a"}

	first := reconciliation.BuildDayBook(src, actors)
	second := reconciliation.BuildDayBook(src, actors)
	assert.Equal(t, first, second)
	assert.Equal(t, "n/a", first[0].PerformedBy)
}

func TestSourcesActorIDs(t *testing.T) {
	ids := dayBookSources().ActorIDs()
	assert.Equal(t, []string{"u-buyer", "u-cashier", "u-clerk", "u-online", "u-owner"}, ids)
}
