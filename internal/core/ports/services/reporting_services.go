package services

import (
	"context"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every call fetches fresh data from the provider; nothing is cached.
type ReportingService interface {
	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, companyID string, period domain.ReportPeriod, userID string) (*domain.ProfitAndLossReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, companyID string, asOf time.Time, userID string) (*domain.BalanceSheetReport, error)

	// CashFlow generates an estimated cash flow statement for a specific period
	CashFlow(ctx context.Context, companyID string, period domain.ReportPeriod, userID string) (*domain.CashFlowReport, error)

	// Dashboard generates the consolidated dashboard metrics
	Dashboard(ctx context.Context, companyID string, userID string) (*domain.DashboardMetrics, error)
}
