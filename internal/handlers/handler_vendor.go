package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
	"github.com/SscSPs/retail_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vendorHandler handles vendor balances and payments.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := &vendorHandler{vendorService: vendorService}

	vendors := rg.Group("/vendors")
	{
		vendors.GET("/:vendorID", h.getVendor)
		vendors.GET("/:vendorID/payments", h.listPayments)
		vendors.POST("/:vendorID/payments", h.settlePayment)
	}
}

func (h *vendorHandler) getVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendor(c.Request.Context(), c.Param("vendorID"))
	if err != nil {
		respondError(c, err, "retrieve vendor")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *vendorHandler) listPayments(c *gin.Context) {
	vendorID := c.Param("vendorID")
	payments, err := h.vendorService.ListVendorPayments(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err, "list vendor payments")
		return
	}
	c.JSON(http.StatusOK, dto.ListVendorPaymentsResponse{VendorID: vendorID, Payments: payments})
}

func (h *vendorHandler) settlePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	var req dto.SettleVendorPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleVendorPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("vendor_id", vendorID))
	logger.Info("Received request to pay vendor", slog.String("amount", req.Amount.String()))

	payment, err := h.vendorService.SettleVendorPayment(c.Request.Context(), vendorID, req, actorID)
	if err != nil {
		respondError(c, err, "settle vendor payment")
		return
	}

	logger.Info("Vendor paid", slog.String("payment_id", payment.PaymentID), slog.String("balance_after", payment.BalanceAfter.String()))
	c.JSON(http.StatusCreated, payment)
}
