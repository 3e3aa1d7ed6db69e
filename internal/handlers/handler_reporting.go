package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	// Routes for reports are nested under a specific provider company
	reportingGroup := rg.Group("/companies/:company_id/reports")
	{
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// requestScope resolves the caller and company shared by every report route.
func (h *reportingHandler) requestScope(c *gin.Context) (*slog.Logger, string, string, bool) {
	logger := middleware.GetLoggerFromContext(c)
	companyID := c.Param("company_id")
	if companyID == "" {
		logger.Error("Company ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID required in path"})
		return nil, "", "", false
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, "", "", false
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("company_id", companyID))
	return logger, companyID, userID, true
}

// respondReportError maps service errors onto HTTP statuses.
func respondReportError(c *gin.Context, logger *slog.Logger, report string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAuthenticationMissing):
		logger.Warn("Provider authentication missing", slog.String("report", report))
		c.JSON(http.StatusFailedDependency, gin.H{"error": "The accounting provider is not connected for this company"})
	case errors.Is(err, apperrors.ErrProviderRequestFailed):
		logger.Error("Provider request failed", slog.String("report", report), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch data from the accounting provider"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid report request", slog.String("report", report), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User forbidden to access report", slog.String("report", report))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this report"})
	default:
		logger.Error("Failed to generate report", slog.String("report", report), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate " + report + " report"})
	}
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a specific period from live provider data
// @Tags reports
// @Produce json
// @Param company_id path string true "Provider company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format" Enums(json, summary)
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 424 {object} map[string]string "Provider not connected"
// @Failure 502 {object} map[string]string "Provider request failed"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger, companyID, userID, ok := h.requestScope(c)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := query.Period(h.now())
	if err != nil {
		respondReportError(c, logger, "profit and loss", err)
		return
	}

	logger = logger.With(
		slog.String("fromDate", period.StartDate.Format("2006-01-02")),
		slog.String("toDate", period.EndDate.Format("2006-01-02")),
	)
	logger.Info("Received request to generate profit and loss report")

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), companyID, period, userID)
	if err != nil {
		respondReportError(c, logger, "profit and loss", err)
		return
	}

	logger.Info("Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue.Lines)),
		slog.Int("expense_accounts", len(report.Expenses.Lines)))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, dto.ParseFormat(query.Format)))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet as of a specific date from live provider data
// @Tags reports
// @Produce json
// @Param company_id path string true "Provider company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format" Enums(json, summary)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 424 {object} map[string]string "Provider not connected"
// @Failure 502 {object} map[string]string "Provider request failed"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger, companyID, userID, ok := h.requestScope(c)
	if !ok {
		return
	}

	var query dto.AsOfQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	asOf, err := query.Date(h.now())
	if err != nil {
		respondReportError(c, logger, "balance sheet", err)
		return
	}

	logger = logger.With(slog.String("asOf", asOf.Format("2006-01-02")))
	logger.Info("Received request to generate balance sheet report")

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), companyID, asOf, userID)
	if err != nil {
		respondReportError(c, logger, "balance sheet", err)
		return
	}

	logger.Info("Balance sheet report generated successfully",
		slog.Bool("balanced", report.Summary.IsBalanced),
		slog.Int("equity_accounts", len(report.Equity.Lines)))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, dto.ParseFormat(query.Format)))
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Generates an estimated cash flow statement for a specific period
// @Tags reports
// @Produce json
// @Param company_id path string true "Provider company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Response format" Enums(json, summary)
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 424 {object} map[string]string "Provider not connected"
// @Failure 502 {object} map[string]string "Provider request failed"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger, companyID, userID, ok := h.requestScope(c)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := query.Period(h.now())
	if err != nil {
		respondReportError(c, logger, "cash flow", err)
		return
	}

	logger.Info("Received request to generate cash flow statement",
		slog.String("fromDate", period.StartDate.Format("2006-01-02")),
		slog.String("toDate", period.EndDate.Format("2006-01-02")))

	report, err := h.reportingService.CashFlow(c.Request.Context(), companyID, period, userID)
	if err != nil {
		respondReportError(c, logger, "cash flow", err)
		return
	}

	logger.Info("Cash flow statement generated successfully", slog.String("basis", report.Basis))
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report, dto.ParseFormat(query.Format)))
}

// getDashboard godoc
// @Summary Generate dashboard
// @Description Consolidates key metrics, trends, taxes and ranked lists for a company
// @Tags reports
// @Produce json
// @Param company_id path string true "Provider company ID"
// @Param format query string false "Response format" Enums(json, summary)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 424 {object} map[string]string "Provider not connected"
// @Failure 502 {object} map[string]string "Provider request failed"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger, companyID, userID, ok := h.requestScope(c)
	if !ok {
		return
	}

	var query dto.FormatQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger.Info("Received request to generate dashboard")

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), companyID, userID)
	if err != nil {
		respondReportError(c, logger, "dashboard", err)
		return
	}

	logger.Info("Dashboard generated successfully",
		slog.Int("overdue_invoices", dashboard.OverdueInvoiceCount),
		slog.Int("recent_transactions", len(dashboard.RecentTransactions)))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard, dto.ParseFormat(query.Format)))
}
