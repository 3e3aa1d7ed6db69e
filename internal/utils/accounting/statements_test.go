package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCompany = domain.CompanyInfo{ID: "123", Name: "Acme Ltd"}
	testPeriod  = domain.ReportPeriod{StartDate: date(2026, time.January, 1), EndDate: date(2026, time.September, 30)}
	testNow     = date(2026, time.October, 19)
)

func buildAll(accounts []domain.Account) (*domain.ProfitAndLossReport, *domain.BalanceSheetReport, *domain.CashFlowReport) {
	b := accounting.Classify(accounts, nil)
	m := accounting.Aggregate(b)
	taxes := accounting.ComputeTaxes(m, accounting.DefaultTaxPolicy())
	pnl := accounting.BuildProfitAndLoss(testCompany, testPeriod, b, m, taxes, testNow)
	bs := accounting.BuildBalanceSheet(testCompany, testPeriod.EndDate, b, m, testNow)
	cf := accounting.BuildCashFlow(testCompany, testPeriod, m, accounting.DefaultCashFlowHeuristic(), testNow)
	return pnl, bs, cf
}

func TestBuildProfitAndLoss(t *testing.T) {
	pnl, _, _ := buildAll(sampleAccounts())

	assert.Equal(t, testCompany, pnl.Company)
	assertDecimal(t, "1250000", pnl.Summary.TotalRevenue)
	assertDecimal(t, "400000", pnl.Summary.TotalExpenses)
	assertDecimal(t, "850000", pnl.Summary.NetIncome)
	assertDecimal(t, "950000", pnl.Summary.GrossProfit)
	assertDecimal(t, "850000", pnl.Summary.OperatingIncome)
	assertDecimal(t, "68", pnl.Summary.Margin)

	require.Len(t, pnl.Revenue.Lines, 2)
	assert.Equal(t, "Sales", pnl.Revenue.Lines[0].Name)
	assertDecimal(t, "80", pnl.Revenue.Lines[0].Percentage)
	require.Len(t, pnl.Expenses.Lines, 2)
	assert.Equal(t, "Cost of Goods", pnl.Expenses.Lines[0].Name)
	assertDecimal(t, "75", pnl.Expenses.Lines[0].Percentage)
	require.Len(t, pnl.COGS.Lines, 1)

	assertDecimal(t, "225000", pnl.Taxes.VATCollected)
	assertDecimal(t, "255000", pnl.Taxes.IncomeTax)
}

func TestBuildProfitAndLoss_NetIncomeIdentity(t *testing.T) {
	charts := [][]domain.Account{
		nil,
		sampleAccounts(),
		{account("1", "Sales", domain.Income, "", "10")},
		{account("1", "Rent", domain.Expense, "", "-10")},
		{
			account("1", "Sales", domain.Income, "", "123.45"),
			account("2", "COGS", domain.Expense, domain.SubTypeCostOfGoodsSold, "-500.01"),
			account("3", "Odd", domain.Expense, "", "17"),
		},
	}
	for i, accounts := range charts {
		pnl, _, cf := buildAll(accounts)
		s := pnl.Summary
		assert.True(t, s.NetIncome.Equal(s.TotalRevenue.Sub(s.TotalExpenses)), "chart %d", i)
		assert.True(t, s.NetIncome.Equal(cf.NetIncome), "chart %d: cash flow must start from the P&L net income", i)
	}
}

func TestBuildBalanceSheet(t *testing.T) {
	_, bs, _ := buildAll(sampleAccounts())
	s := bs.Summary

	assertDecimal(t, "800000", s.TotalAssets)
	assertDecimal(t, "200000", s.TotalLiabilities)
	assertDecimal(t, "600000", s.TotalEquity)
	assertDecimal(t, "520000", s.WorkingCapital)

	// The identity holds by construction because equity is derived.
	assert.True(t, s.TotalAssets.Equal(s.TotalLiabilities.Add(s.TotalEquity)))

	// The booked equity accounts do not include current-year earnings, so the gap is reported.
	assertDecimal(t, "500000", s.BookedEquity)
	assertDecimal(t, "100000", s.EquityVariance)
	assert.False(t, s.IsBalanced)

	require.Len(t, bs.CurrentAssets.Lines, 3)
	assert.Equal(t, "Checking", bs.CurrentAssets.Lines[0].Name)
	assert.InDelta(t, 100.0, accounting.PercentageSum(bs.CurrentAssets).InexactFloat64(), 1e-9)
	assert.InDelta(t, 100.0, accounting.PercentageSum(bs.FixedAssets).InexactFloat64(), 1e-9)
	assert.InDelta(t, 100.0, accounting.PercentageSum(bs.CurrentLiabilities).InexactFloat64(), 1e-9)
	assertDecimal(t, "80000", bs.CurrentLiabilities.Lines[0].Amount)
}

func TestBuildBalanceSheet_BalancedWhenBookedEquityMatches(t *testing.T) {
	accounts := []domain.Account{
		account("1", "Cash", domain.Asset, domain.SubTypeCashAndCashEquivalents, "1000"),
		account("2", "Payables", domain.Liability, domain.SubTypeAccountsPayable, "-400"),
		account("3", "Capital", domain.Equity, "", "600"),
	}
	_, bs, _ := buildAll(accounts)

	assert.True(t, bs.Summary.IsBalanced)
	assert.True(t, bs.Summary.EquityVariance.IsZero())
}

func TestBuildCashFlow_Heuristic(t *testing.T) {
	_, _, cf := buildAll(sampleAccounts())

	assert.Equal(t, domain.CashFlowBasisEstimated, cf.Basis)
	// revenue 1,250,000 / expenses 400,000 / net income 850,000
	// operating: 850000 + 20000 - 125000 - 62500 + 32000
	assertDecimal(t, "714500", cf.OperatingActivities.Total)
	// investing: -100000 + 25000
	assertDecimal(t, "-75000", cf.InvestingActivities.Total)
	// financing: 62500 - 37500 - 25000
	assertDecimal(t, "0", cf.FinancingActivities.Total)
	assertDecimal(t, "639500", cf.NetChangeInCash)
	assertDecimal(t, "400000", cf.EndingCash)
	assertDecimal(t, "-239500", cf.BeginningCash)
	assert.True(t, cf.BeginningCash.Add(cf.NetChangeInCash).Equal(cf.EndingCash))
}

func TestStatements_EmptyChart(t *testing.T) {
	pnl, bs, cf := buildAll(nil)

	assert.Empty(t, pnl.Revenue.Lines)
	assert.Empty(t, pnl.Expenses.Lines)
	assert.True(t, pnl.Summary.Margin.IsZero())
	assert.Empty(t, bs.CurrentAssets.Lines)
	assert.Empty(t, bs.Equity.Lines)
	assert.True(t, bs.Summary.DebtToEquity.IsZero())
	assert.True(t, bs.Summary.IsBalanced)
	assert.True(t, cf.NetChangeInCash.IsZero())
	assert.True(t, cf.EndingCash.IsZero())
}

func TestStatements_Idempotent(t *testing.T) {
	pnl1, bs1, cf1 := buildAll(sampleAccounts())
	pnl2, bs2, cf2 := buildAll(sampleAccounts())

	assert.Equal(t, pnl1, pnl2)
	assert.Equal(t, bs1, bs2)
	assert.Equal(t, cf1, cf2)
}
