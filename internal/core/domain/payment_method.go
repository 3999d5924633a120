package domain

import "strings"

// PaymentMethod is the tender used for a sale, order, settlement or ledger entry.
// Stored values are free-form strings written by several clients over time, so
// unknown values are tolerated and bucketed by the reporting code.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodFonePay      PaymentMethod = "FONE_PAY"
	MethodCheque       PaymentMethod = "CHEQUE"
	MethodCredit       PaymentMethod = "CREDIT"
	MethodCOD          PaymentMethod = "COD"
)

// Normalize upper-cases and trims the method, and folds known spellings
// ("FONEPAY", "BANK") onto the canonical constants.
func (m PaymentMethod) Normalize() PaymentMethod {
	s := strings.ToUpper(strings.TrimSpace(string(m)))
	s = strings.ReplaceAll(s, " ", "_")
	switch s {
	case "FONEPAY":
		return MethodFonePay
	case "BANK":
		return MethodBankTransfer
	case "CHECK":
		return MethodCheque
	}
	return PaymentMethod(s)
}

// IsSettlementMethod reports whether money can actually be tendered with the method.
// CREDIT and COD are not valid for settling an outstanding balance.
func (m PaymentMethod) IsSettlementMethod() bool {
	switch m.Normalize() {
	case MethodCash, MethodBankTransfer, MethodFonePay, MethodCheque:
		return true
	}
	return false
}

// IsKnown reports whether the method is one of the canonical constants.
func (m PaymentMethod) IsKnown() bool {
	switch m.Normalize() {
	case MethodCash, MethodBankTransfer, MethodFonePay, MethodCheque, MethodCredit, MethodCOD:
		return true
	}
	return false
}
