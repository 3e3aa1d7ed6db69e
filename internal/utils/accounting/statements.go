package accounting

import (
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildProfitAndLoss assembles a P&L from the classified buckets, the aggregated metrics
// and the computed taxes.
func BuildProfitAndLoss(company domain.CompanyInfo, period domain.ReportPeriod, b Buckets, m Metrics, taxes domain.TaxSummary, now time.Time) *domain.ProfitAndLossReport {
	return &domain.ProfitAndLossReport{
		Company:     company,
		Period:      period,
		GeneratedAt: now,
		Revenue:     BuildBreakdown(b.Revenue),
		Expenses:    BuildBreakdown(b.Expenses),
		COGS:        BuildBreakdown(b.COGS),
		Taxes:       taxes,
		Summary: domain.ProfitAndLossSummary{
			TotalRevenue:      m.TotalRevenue,
			CostOfGoodsSold:   m.COGS,
			GrossProfit:       m.GrossProfit,
			OperatingExpenses: m.OperatingExpenses,
			OperatingIncome:   m.OperatingIncome,
			TotalExpenses:     m.TotalExpenses,
			NetIncome:         m.NetIncome,
			Margin:            m.ProfitMargin,
		},
	}
}

// BuildBalanceSheet assembles a balance sheet as of the given date.
// Each breakdown's percentages are relative to its own subtotal.
func BuildBalanceSheet(company domain.CompanyInfo, asOf time.Time, b Buckets, m Metrics, now time.Time) *domain.BalanceSheetReport {
	variance := m.Equity.Sub(m.BookedEquity)
	return &domain.BalanceSheetReport{
		Company:             company,
		AsOf:                asOf,
		GeneratedAt:         now,
		CurrentAssets:       BuildBreakdown(b.CurrentAssets),
		FixedAssets:         BuildBreakdown(b.FixedAssets),
		CurrentLiabilities:  BuildBreakdown(b.CurrentLiabilities),
		LongTermLiabilities: BuildBreakdown(b.LongTermLiabilities),
		Equity:              BuildBreakdown(b.Equity),
		Summary: domain.BalanceSheetSummary{
			TotalCurrentAssets:       m.CurrentAssets,
			TotalFixedAssets:         m.FixedAssets,
			TotalAssets:              m.TotalAssets,
			TotalCurrentLiabilities:  m.CurrentLiabilities,
			TotalLongTermLiabilities: m.LongTermLiabilities,
			TotalLiabilities:         m.TotalLiabilities,
			TotalEquity:              m.Equity,
			BookedEquity:             m.BookedEquity,
			EquityVariance:           variance,
			IsBalanced:               variance.IsZero(),
			WorkingCapital:           m.WorkingCapital,
			DebtToEquity:             m.DebtToEquity,
		},
	}
}

// CashFlowHeuristic holds the fixed fractions used to estimate cash flow lines.
// Expense-based fractions apply to total expenses, the rest to total revenue.
// None of these are derived from balance deltas between two snapshots.
type CashFlowHeuristic struct {
	DepreciationOfExpenses     decimal.Decimal
	ReceivablesIncreaseRevenue decimal.Decimal
	InventoryIncreaseRevenue   decimal.Decimal
	PayablesIncreaseOfExpenses decimal.Decimal
	EquipmentPurchasesRevenue  decimal.Decimal
	AssetSalesRevenue          decimal.Decimal
	LoanProceedsRevenue        decimal.Decimal
	LoanRepaymentsRevenue      decimal.Decimal
	OwnerDrawingsRevenue       decimal.Decimal
}

// DefaultCashFlowHeuristic returns the standard estimation fractions.
func DefaultCashFlowHeuristic() CashFlowHeuristic {
	return CashFlowHeuristic{
		DepreciationOfExpenses:     decimal.RequireFromString("0.05"),
		ReceivablesIncreaseRevenue: decimal.RequireFromString("0.10"),
		InventoryIncreaseRevenue:   decimal.RequireFromString("0.05"),
		PayablesIncreaseOfExpenses: decimal.RequireFromString("0.08"),
		EquipmentPurchasesRevenue:  decimal.RequireFromString("0.08"),
		AssetSalesRevenue:          decimal.RequireFromString("0.02"),
		LoanProceedsRevenue:        decimal.RequireFromString("0.05"),
		LoanRepaymentsRevenue:      decimal.RequireFromString("0.03"),
		OwnerDrawingsRevenue:       decimal.RequireFromString("0.02"),
	}
}

// BuildCashFlow assembles an estimated cash flow statement. Operating activities start
// from the same net income as the P&L; every adjustment, investing and financing line is
// a fixed fraction of revenue or expenses. The ending cash is the current cash balance
// and the beginning cash is backed out from it.
func BuildCashFlow(company domain.CompanyInfo, period domain.ReportPeriod, m Metrics, h CashFlowHeuristic, now time.Time) *domain.CashFlowReport {
	operating := newSection(
		domain.CashFlowItem{Label: "Net Income", Amount: m.NetIncome},
		domain.CashFlowItem{Label: "Depreciation and Amortization", Amount: m.TotalExpenses.Mul(h.DepreciationOfExpenses)},
		domain.CashFlowItem{Label: "Increase in Accounts Receivable", Amount: m.TotalRevenue.Mul(h.ReceivablesIncreaseRevenue).Neg()},
		domain.CashFlowItem{Label: "Increase in Inventory", Amount: m.TotalRevenue.Mul(h.InventoryIncreaseRevenue).Neg()},
		domain.CashFlowItem{Label: "Increase in Accounts Payable", Amount: m.TotalExpenses.Mul(h.PayablesIncreaseOfExpenses)},
	)
	investing := newSection(
		domain.CashFlowItem{Label: "Purchase of Equipment", Amount: m.TotalRevenue.Mul(h.EquipmentPurchasesRevenue).Neg()},
		domain.CashFlowItem{Label: "Sale of Assets", Amount: m.TotalRevenue.Mul(h.AssetSalesRevenue)},
	)
	financing := newSection(
		domain.CashFlowItem{Label: "Loan Proceeds", Amount: m.TotalRevenue.Mul(h.LoanProceedsRevenue)},
		domain.CashFlowItem{Label: "Loan Repayments", Amount: m.TotalRevenue.Mul(h.LoanRepaymentsRevenue).Neg()},
		domain.CashFlowItem{Label: "Owner Drawings", Amount: m.TotalRevenue.Mul(h.OwnerDrawingsRevenue).Neg()},
	)

	netChange := operating.Total.Add(investing.Total).Add(financing.Total)
	return &domain.CashFlowReport{
		Company:             company,
		Period:              period,
		GeneratedAt:         now,
		Basis:               domain.CashFlowBasisEstimated,
		NetIncome:           m.NetIncome,
		OperatingActivities: operating,
		InvestingActivities: investing,
		FinancingActivities: financing,
		NetChangeInCash:     netChange,
		BeginningCash:       m.CashBalance.Sub(netChange),
		EndingCash:          m.CashBalance,
	}
}

func newSection(items ...domain.CashFlowItem) domain.CashFlowSection {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return domain.CashFlowSection{Items: items, Total: total}
}
