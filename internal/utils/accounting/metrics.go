package accounting

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Metrics holds the scalar totals and ratios reduced from the classified buckets.
// All amounts are in the report sign convention (see ReportingAmount).
type Metrics struct {
	TotalRevenue      decimal.Decimal
	TotalExpenses     decimal.Decimal
	COGS              decimal.Decimal
	NetIncome         decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	OperatingIncome   decimal.Decimal
	ProfitMargin      decimal.Decimal // percent
	GrossMargin       decimal.Decimal // percent

	CurrentAssets       decimal.Decimal
	FixedAssets         decimal.Decimal
	TotalAssets         decimal.Decimal
	CurrentLiabilities  decimal.Decimal
	LongTermLiabilities decimal.Decimal
	TotalLiabilities    decimal.Decimal
	Equity              decimal.Decimal // TotalAssets - TotalLiabilities
	BookedEquity        decimal.Decimal // sum of equity accounts

	AccountsReceivable decimal.Decimal
	AccountsPayable    decimal.Decimal
	CashBalance        decimal.Decimal
	WorkingCapital     decimal.Decimal
	DebtToEquity       decimal.Decimal
}

// Aggregate reduces buckets into totals and derived ratios.
func Aggregate(b Buckets) Metrics {
	var m Metrics

	m.TotalRevenue = SumReporting(b.Revenue)
	m.TotalExpenses = SumReporting(b.Expenses)
	m.COGS = SumReporting(b.COGS)
	m.NetIncome = m.TotalRevenue.Sub(m.TotalExpenses)
	m.GrossProfit = m.TotalRevenue.Sub(m.COGS)
	m.OperatingExpenses = m.TotalExpenses.Sub(m.COGS)
	m.OperatingIncome = m.GrossProfit.Sub(m.OperatingExpenses)
	m.ProfitMargin = Percent(m.NetIncome, m.TotalRevenue)
	m.GrossMargin = Percent(m.GrossProfit, m.TotalRevenue)

	m.CurrentAssets = SumReporting(b.CurrentAssets)
	m.FixedAssets = SumReporting(b.FixedAssets)
	m.TotalAssets = m.CurrentAssets.Add(m.FixedAssets)
	m.CurrentLiabilities = SumReporting(b.CurrentLiabilities)
	m.LongTermLiabilities = SumReporting(b.LongTermLiabilities)
	m.TotalLiabilities = m.CurrentLiabilities.Add(m.LongTermLiabilities)
	m.Equity = m.TotalAssets.Sub(m.TotalLiabilities)
	m.BookedEquity = SumReporting(b.Equity)

	for _, a := range b.CurrentAssets {
		switch a.SubType {
		case domain.SubTypeAccountsReceivable:
			m.AccountsReceivable = m.AccountsReceivable.Add(ReportingAmount(a))
		case domain.SubTypeCashAndCashEquivalents:
			m.CashBalance = m.CashBalance.Add(ReportingAmount(a))
		}
	}
	for _, l := range b.CurrentLiabilities {
		if l.SubType == domain.SubTypeAccountsPayable {
			m.AccountsPayable = m.AccountsPayable.Add(ReportingAmount(l))
		}
	}

	m.WorkingCapital = m.CurrentAssets.Sub(m.CurrentLiabilities)
	m.DebtToEquity = SafeDiv(m.TotalLiabilities, m.Equity)

	return m
}

// KeyMetrics projects the metrics shown on the dashboard.
func (m Metrics) KeyMetrics() domain.KeyMetrics {
	return domain.KeyMetrics{
		TotalRevenue:       m.TotalRevenue,
		TotalExpenses:      m.TotalExpenses,
		NetIncome:          m.NetIncome,
		GrossProfit:        m.GrossProfit,
		OperatingIncome:    m.OperatingIncome,
		ProfitMargin:       m.ProfitMargin,
		TotalAssets:        m.TotalAssets,
		TotalLiabilities:   m.TotalLiabilities,
		Equity:             m.Equity,
		CashBalance:        m.CashBalance,
		AccountsReceivable: m.AccountsReceivable,
		AccountsPayable:    m.AccountsPayable,
		WorkingCapital:     m.WorkingCapital,
		DebtToEquity:       m.DebtToEquity,
	}
}
