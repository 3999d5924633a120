package handlers

import (
	"strings"
	"sync"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the domain-aware tags used by the request DTOs to
// gin's validator engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("settlement_method", func(fl validator.FieldLevel) bool {
			return domain.PaymentMethod(fl.Field().String()).IsSettlementMethod()
		})
		_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return domain.PaymentMethod(fl.Field().String()).IsKnown()
		})
		_ = v.RegisterValidation("ledger_category", func(fl validator.FieldLevel) bool {
			return domain.LedgerCategory(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).IsValid()
		})
	})
}
