package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
	"github.com/SscSPs/retail_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/day-book", h.getDayBook)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// getDayBook serves a single day (?date=) or, when both are given, ?fromDate=&toDate=.
func (h *reportingHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if c.Query("fromDate") != "" || c.Query("toDate") != "" {
		var q dto.DateRangeQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			logger.Warn("Invalid day book range", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate and toDate must both be YYYY-MM-DD"})
			return
		}
		rng, _ := q.Range()
		rows, err := h.reportingService.DayBook(c.Request.Context(), rng)
		if err != nil {
			respondError(c, err, "generate day book")
			return
		}
		c.JSON(http.StatusOK, dto.ToDayBookResponse(rng.From, rows))
		return
	}

	var q dto.DayBookQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid day book date", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	var date time.Time
	if q.Date != "" {
		date, _ = time.Parse(time.DateOnly, q.Date)
	}
	rows, err := h.reportingService.DayBookForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "generate day book")
		return
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	logger.Info("Day book generated", slog.String("date", date.Format(time.DateOnly)), slog.Int("rows", len(rows)))
	c.JSON(http.StatusOK, dto.ToDayBookResponse(date, rows))
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid profit and loss range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate and toDate are required as YYYY-MM-DD"})
		return
	}
	rng, _ := q.Range()

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err, "generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated", slog.String("fromDate", q.FromDate), slog.String("toDate", q.ToDate))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid cash flow range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate and toDate are required as YYYY-MM-DD"})
		return
	}
	rng, _ := q.Range()

	report, err := h.reportingService.CashFlow(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err, "generate cash flow report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}

// getBalanceSheet reports as of the end of ?asOf= (YYYY-MM-DD), or now.
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		day, err := time.Parse(time.DateOnly, asOfStr)
		if err != nil {
			logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf format. Use YYYY-MM-DD"})
			return
		}
		asOf = day.AddDate(0, 0, 1)
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}
