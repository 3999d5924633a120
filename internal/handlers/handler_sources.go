package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
	"github.com/SscSPs/retail_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sourceHandler handles writes to the source collections: POS sales, online
// orders and purchase order receipts.
type sourceHandler struct {
	saleService          portssvc.SaleService
	orderService         portssvc.OrderService
	purchaseOrderService portssvc.PurchaseOrderService
}

func registerSourceRoutes(rg *gin.RouterGroup, sales portssvc.SaleService, orders portssvc.OrderService, purchaseOrders portssvc.PurchaseOrderService) {
	h := &sourceHandler{saleService: sales, orderService: orders, purchaseOrderService: purchaseOrders}

	rg.POST("/sales", h.recordSale)
	rg.PATCH("/orders/:orderID/status", h.updateOrderStatus)
	rg.POST("/purchase-orders/:poID/receive", h.receivePurchaseOrder)
}

func (h *sourceHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("due_amount", sale.DueAmount.String()))
	c.JSON(http.StatusCreated, sale)
}

func (h *sourceHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOrderStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, req, actorID)
	if err != nil {
		respondError(c, err, "update order status")
		return
	}

	logger.Info("Order status updated", slog.String("order_id", orderID), slog.String("status", string(order.Status)))
	c.JSON(http.StatusOK, order)
}

func (h *sourceHandler) receivePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	poID := c.Param("poID")

	var req dto.ReceivePurchaseOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ReceivePurchaseOrder", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	po, err := h.purchaseOrderService.ReceivePurchaseOrder(c.Request.Context(), poID, req, actorID)
	if err != nil {
		respondError(c, err, "receive purchase order")
		return
	}

	logger.Info("Purchase order received", slog.String("po_id", poID), slog.String("recognized_amount", po.RecognizedAmount().String()))
	c.JSON(http.StatusOK, po)
}
