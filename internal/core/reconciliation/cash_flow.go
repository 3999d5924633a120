package reconciliation

import "github.com/SscSPs/retail_ledger_app/internal/core/domain"

// IncomingBucket maps an income-side payment method onto a cash bucket. COD is cash,
// and anything unrecognized is counted as cash rather than dropped.
func IncomingBucket(method domain.PaymentMethod) domain.CashBucket {
	if b, ok := knownBucket(method); ok {
		return b
	}
	return domain.BucketCash
}

// OutgoingBucket maps an expense-side payment method onto a cash bucket. Unknown
// methods land in the unclassified bucket so the total still adds up.
func OutgoingBucket(method domain.PaymentMethod) domain.CashBucket {
	if b, ok := knownBucket(method); ok {
		return b
	}
	return domain.BucketUnclassified
}

func knownBucket(method domain.PaymentMethod) (domain.CashBucket, bool) {
	switch method.Normalize() {
	case domain.MethodCash, domain.MethodCOD:
		return domain.BucketCash, true
	case domain.MethodBankTransfer:
		return domain.BucketBankTransfer, true
	case domain.MethodFonePay:
		return domain.BucketFonePay, true
	case domain.MethodCheque:
		return domain.BucketCheque, true
	case domain.MethodCredit:
		return domain.BucketCredit, true
	}
	return "", false
}

// ComputeCashFlow is accrual cash flow: every recognized sale, order and purchase
// order counts at recognition time in the bucket of its payment method. Purchase
// orders are on vendor terms and count as credit. VENDOR_PAY entries are excluded
// from P&L but included here, because they move funds.
func ComputeCashFlow(rng domain.DateRange, src Sources) domain.CashFlow {
	var in, out domain.PaymentBreakdown

	for _, s := range src.Sales {
		in.Add(IncomingBucket(s.PaymentMethod), s.Total)
	}
	for _, o := range RevenueOrders(src.Orders) {
		in.Add(IncomingBucket(o.PaymentMethod), o.Total)
	}

	for _, e := range FilterPrimary(src.Ledger) {
		typ, amount := e.Effect()
		switch typ {
		case domain.Income:
			if e.Category != domain.CategorySales {
				in.Add(IncomingBucket(e.PaymentMethod), amount)
			}
		case domain.Expense:
			out.Add(OutgoingBucket(e.PaymentMethod), amount)
		}
	}

	for _, po := range ReceivedPurchaseOrders(src.PurchaseOrders) {
		out.Add(domain.BucketCredit, po.RecognizedAmount())
	}

	for _, e := range VendorPayments(src.Ledger) {
		out.Add(OutgoingBucket(e.PaymentMethod), e.Amount)
	}

	cashIn := in.Total()
	cashOut := out.Total()
	return domain.CashFlow{
		Range:            rng,
		CashIn:           cashIn,
		CashOut:          cashOut,
		NetCashFlow:      cashIn.Sub(cashOut),
		CashInBreakdown:  in,
		CashOutBreakdown: out,
	}
}
