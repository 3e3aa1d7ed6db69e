package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func TestPeriodQuery_Period(t *testing.T) {
	t.Run("defaults to month to date", func(t *testing.T) {
		p, err := PeriodQuery{}.Period(now)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-01", p.StartDate.Format(dateLayout))
		assert.Equal(t, "2026-10-19", p.EndDate.Format(dateLayout))
	})

	t.Run("explicit range", func(t *testing.T) {
		p, err := PeriodQuery{FromDate: "2026-01-01", ToDate: "2026-03-31"}.Period(now)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-01", p.StartDate.Format(dateLayout))
		assert.Equal(t, "2026-03-31", p.EndDate.Format(dateLayout))
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := PeriodQuery{FromDate: "2026-04-01", ToDate: "2026-03-31"}.Period(now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := PeriodQuery{FromDate: "01/04/2026"}.Period(now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestAsOfQuery_Date(t *testing.T) {
	d, err := AsOfQuery{}.Date(now)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", d.Format(dateLayout))

	d, err = AsOfQuery{AsOf: "2025-12-31"}.Date(now)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", d.Format(dateLayout))

	_, err = AsOfQuery{AsOf: "yesterday"}.Date(now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatSummary, ParseFormat("summary"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat(""))
}

func sampleProfitAndLoss() *domain.ProfitAndLossReport {
	r := &domain.ProfitAndLossReport{
		Company:     domain.CompanyInfo{ID: "123", Name: "Acme"},
		Period:      domain.ReportPeriod{StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
		GeneratedAt: now,
		Revenue: domain.Breakdown{
			Lines: []domain.BreakdownLine{{AccountID: "1", Name: "Sales", Amount: decimal.RequireFromString("1000.005"), Percentage: decimal.RequireFromString("100")}},
			Total: decimal.RequireFromString("1000.005"),
		},
		Native: &domain.NativeReport{Name: "ProfitAndLoss", Payload: json.RawMessage(`{"Header":{}}`)},
	}
	r.Summary.TotalRevenue = decimal.RequireFromString("1000.005")
	r.Summary.NetIncome = decimal.RequireFromString("333.3333")
	r.Summary.Margin = decimal.RequireFromString("33.33333")
	return r
}

func TestToProfitAndLossResponse(t *testing.T) {
	resp := ToProfitAndLossResponse(sampleProfitAndLoss(), FormatJSON)

	assert.Equal(t, "2026-01-01", resp.FromDate)
	assert.Equal(t, "2026-01-31", resp.ToDate)
	assert.Equal(t, "1000.01", resp.Revenue.Total.String())
	require.Len(t, resp.Revenue.Lines, 1)
	assert.Equal(t, "1000.01", resp.Revenue.Lines[0].Amount.String())
	assert.Equal(t, "333.33", resp.Summary.NetIncome.String())
	assert.Equal(t, "33.33", resp.Summary.Margin.String())
	assert.JSONEq(t, `{"Header":{}}`, string(resp.Native))
}

func TestToBreakdownResponse_RoundedPercentagesSumTo100(t *testing.T) {
	third := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	b := domain.Breakdown{
		Total: decimal.NewFromInt(300),
		Lines: []domain.BreakdownLine{
			{AccountID: "1", Name: "Rent", Amount: decimal.NewFromInt(100), Percentage: third},
			{AccountID: "2", Name: "Wages", Amount: decimal.NewFromInt(100), Percentage: third},
			{AccountID: "3", Name: "Power", Amount: decimal.NewFromInt(100), Percentage: third},
		},
	}

	resp := toBreakdownResponse(b, FormatJSON)

	require.Len(t, resp.Lines, 3)
	sum := decimal.Zero
	for _, l := range resp.Lines {
		sum = sum.Add(l.Percentage)
	}
	assert.Equal(t, "100", sum.String())
	assert.Equal(t, "33.34", resp.Lines[0].Percentage.String())
	assert.Equal(t, "33.33", resp.Lines[1].Percentage.String())
}

func TestToBreakdownResponse_ZeroTotalKeepsZeroPercentages(t *testing.T) {
	b := domain.Breakdown{
		Total: decimal.Zero,
		Lines: []domain.BreakdownLine{
			{AccountID: "1", Name: "Rent", Amount: decimal.Zero, Percentage: decimal.Zero},
		},
	}

	resp := toBreakdownResponse(b, FormatJSON)

	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].Percentage.IsZero())
}

func TestToProfitAndLossResponse_Summary(t *testing.T) {
	resp := ToProfitAndLossResponse(sampleProfitAndLoss(), FormatSummary)

	assert.Nil(t, resp.Revenue.Lines)
	assert.Nil(t, resp.Native)
	assert.Equal(t, "1000.01", resp.Summary.TotalRevenue.String())

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"lines"`)
	assert.NotContains(t, string(raw), `"native"`)
}

func TestToBalanceSheetResponse(t *testing.T) {
	r := &domain.BalanceSheetReport{
		Company: domain.CompanyInfo{ID: "123", Name: "Acme"},
		AsOf:    time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	r.Summary.TotalAssets = decimal.NewFromInt(1500)
	r.Summary.TotalLiabilities = decimal.NewFromInt(500)
	r.Summary.TotalEquity = decimal.NewFromInt(1000)
	r.Summary.BookedEquity = decimal.NewFromInt(900)
	r.Summary.EquityVariance = decimal.NewFromInt(100)
	r.Summary.DebtToEquity = decimal.RequireFromString("0.5")

	resp := ToBalanceSheetResponse(r, FormatJSON)

	assert.Equal(t, "2026-06-30", resp.AsOf)
	assert.False(t, resp.Summary.IsBalanced)
	assert.Equal(t, "100", resp.Summary.EquityVariance.String())
	assert.Equal(t, "0.5", resp.Summary.DebtToEquity.String())
	assert.Nil(t, resp.Native)
}

func TestToDashboardResponse_Summary(t *testing.T) {
	d := &domain.DashboardMetrics{
		Company:                domain.CompanyInfo{ID: "123"},
		RevenueTrend:           []domain.MonthlyTrendPoint{{MonthLabel: "Oct", Year: 2026, Month: time.October}},
		TopCustomers:           []domain.TopCustomer{{CustomerID: "c1", DisplayName: "A"}},
		OverdueInvoiceCount:    2,
		OutstandingReceivables: decimal.RequireFromString("12.345"),
	}

	full := ToDashboardResponse(d, FormatJSON)
	require.Len(t, full.RevenueTrend, 1)
	assert.Equal(t, "Oct", full.RevenueTrend[0].Month)
	require.Len(t, full.TopCustomers, 1)
	assert.Equal(t, "12.35", full.OutstandingReceivables.String())

	summary := ToDashboardResponse(d, FormatSummary)
	assert.Nil(t, summary.RevenueTrend)
	assert.Nil(t, summary.TopCustomers)
	assert.Equal(t, 2, summary.OverdueInvoiceCount)
}
