package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
	"github.com/SscSPs/retail_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditHandler handles customer credits and their settlement.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
}

func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade) {
	h := &creditHandler{creditService: creditService}

	credits := rg.Group("/credits")
	{
		credits.GET("/:creditID", h.getCredit)
		credits.POST("/:creditID/settlements", h.settleCredit)
	}
	rg.GET("/customers/:customerID/credits", h.listCustomerCredits)
}

func (h *creditHandler) getCredit(c *gin.Context) {
	credit, err := h.creditService.GetCredit(c.Request.Context(), c.Param("creditID"))
	if err != nil {
		respondError(c, err, "retrieve credit")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}

func (h *creditHandler) listCustomerCredits(c *gin.Context) {
	credits, err := h.creditService.ListOutstandingCredits(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondError(c, err, "list outstanding credits")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditResponses(credits))
}

func (h *creditHandler) settleCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID := c.Param("creditID")

	var req dto.SettleCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleCredit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("credit_id", creditID))
	logger.Info("Received request to settle credit", slog.String("amount", req.Amount.String()), slog.String("payment_method", req.PaymentMethod))

	credit, err := h.creditService.SettleCredit(c.Request.Context(), creditID, req, actorID)
	if err != nil {
		respondError(c, err, "settle credit")
		return
	}

	logger.Info("Credit settled", slog.String("due_amount", credit.DueAmount.String()), slog.String("status", string(credit.Status())))
	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}
