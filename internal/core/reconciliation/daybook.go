package reconciliation

import (
	"fmt"
	"sort"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
)

// Sources is one fetch of the four transaction streams for a range.
type Sources struct {
	Ledger         []domain.LedgerEntry
	Sales          []domain.Sale
	Orders         []domain.Order
	PurchaseOrders []domain.PurchaseOrder
}

// ActorIDs collects every user id the day book will need to attribute.
func (s Sources) ActorIDs() []string {
	seen := make(map[string]struct{})
	add := func(id string) {
		if id != "" {
			seen[id] = struct{}{}
		}
	}
	for _, e := range s.Ledger {
		add(e.PerformedBy)
	}
	for _, sale := range s.Sales {
		add(sale.PerformedBy)
	}
	for _, o := range s.Orders {
		add(o.ActorID())
	}
	for _, po := range s.PurchaseOrders {
		add(po.ActorID())
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RevenueOrders keeps the CONFIRMED and COMPLETED orders.
func RevenueOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsRevenue() {
			out = append(out, o)
		}
	}
	return out
}

// ReceivedPurchaseOrders keeps the purchase orders whose expense is recognized.
func ReceivedPurchaseOrders(pos []domain.PurchaseOrder) []domain.PurchaseOrder {
	out := make([]domain.PurchaseOrder, 0, len(pos))
	for _, po := range pos {
		if po.IsReceived() {
			out = append(out, po)
		}
	}
	return out
}

// BuildDayBook merges primary ledger entries with sales, revenue orders and received
// purchase orders, newest first. The output depends only on the inputs.
func BuildDayBook(src Sources, actors domain.ActorDirectory) []domain.UnifiedTransaction {
	primary := FilterPrimary(src.Ledger)
	orders := RevenueOrders(src.Orders)
	pos := ReceivedPurchaseOrders(src.PurchaseOrders)

	book := make([]domain.UnifiedTransaction, 0, len(primary)+len(src.Sales)+len(orders)+len(pos))

	for _, e := range primary {
		book = append(book, domain.UnifiedTransaction{
			ID:            e.EntryID,
			Date:          e.Date,
			Type:          e.Type,
			Category:      e.Category,
			Description:   e.Description,
			Amount:        e.Amount,
			PaymentMethod: e.PaymentMethod,
			Source:        domain.SourceLedger,
			PerformedBy:   actors.Resolve(e.PerformedBy),
		})
	}

	for _, s := range src.Sales {
		book = append(book, domain.UnifiedTransaction{
			ID:            s.SaleID,
			Date:          s.CreatedAt,
			Type:          domain.Income,
			Category:      domain.CategorySales,
			Description:   saleDescription(s),
			Amount:        s.Total,
			PaymentMethod: s.PaymentMethod,
			Source:        domain.SourcePOS,
			PerformedBy:   actors.Resolve(s.PerformedBy),
		})
	}

	for _, o := range orders {
		book = append(book, domain.UnifiedTransaction{
			ID:            o.OrderID,
			Date:          o.CreatedAt,
			Type:          domain.Income,
			Category:      domain.CategorySales,
			Description:   fmt.Sprintf("Online order #%s", o.OrderNumber),
			Amount:        o.Total,
			PaymentMethod: o.PaymentMethod,
			Source:        domain.SourceOnline,
			PerformedBy:   actors.Resolve(o.ActorID()),
		})
	}

	for _, po := range pos {
		book = append(book, domain.UnifiedTransaction{
			ID:            po.POID,
			Date:          po.RecognitionDate(),
			Type:          domain.Expense,
			Category:      domain.CategoryPurchase,
			Description:   fmt.Sprintf("Goods received for purchase order %s", shortID(po.POID)),
			Amount:        po.RecognizedAmount(),
			PaymentMethod: domain.MethodCredit,
			Source:        domain.SourcePurchase,
			PerformedBy:   actors.Resolve(po.ActorID()),
		})
	}

	SortNewestFirst(book)
	return book
}

// SortNewestFirst orders by date descending. Ties are broken by source then id so
// that repeated calls over the same state produce identical output.
func SortNewestFirst(book []domain.UnifiedTransaction) {
	sort.SliceStable(book, func(i, j int) bool {
		if !book[i].Date.Equal(book[j].Date) {
			return book[i].Date.After(book[j].Date)
		}
		if book[i].Source != book[j].Source {
			return book[i].Source < book[j].Source
		}
		return book[i].ID < book[j].ID
	})
}

func saleDescription(s domain.Sale) string {
	desc := fmt.Sprintf("POS sale %s", shortID(s.SaleID))
	if n := len(s.Items); n > 0 {
		desc += fmt.Sprintf(" (%d items)", n)
	}
	if s.DueAmount.IsPositive() {
		desc += fmt.Sprintf(", due %s", s.DueAmount.StringFixed(2))
	}
	return desc
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
