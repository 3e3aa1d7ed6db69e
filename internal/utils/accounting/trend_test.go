package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRevenueTrend_TwelveMonthWindow(t *testing.T) {
	now := date(2026, time.October, 19)
	var invoices []domain.Invoice
	for _, month := range []time.Time{date(2026, time.October, 3), date(2026, time.June, 10), date(2025, time.December, 28)} {
		for i := 0; i < 5; i++ {
			invoices = append(invoices, domain.Invoice{IssueDate: month, TotalAmount: dec("100")})
		}
	}
	// Thirteen months back: outside the window.
	invoices = append(invoices, domain.Invoice{IssueDate: date(2025, time.October, 1), TotalAmount: dec("999")})

	series := accounting.RevenueTrend(invoices, now)

	require.Len(t, series, 12)
	assert.Equal(t, 2025, series[0].Year)
	assert.Equal(t, time.November, series[0].Month)
	assert.Equal(t, "Nov", series[0].MonthLabel)
	assert.Equal(t, 2026, series[11].Year)
	assert.Equal(t, time.October, series[11].Month)

	populated := 0
	for _, p := range series {
		switch {
		case p.Year == 2026 && p.Month == time.October,
			p.Year == 2026 && p.Month == time.June,
			p.Year == 2025 && p.Month == time.December:
			populated++
			assert.Equal(t, 5, p.Count)
			assertDecimal(t, "500", p.Amount)
		default:
			assert.Equal(t, 0, p.Count)
			assert.True(t, p.Amount.IsZero())
		}
	}
	assert.Equal(t, 3, populated)
}

func TestTrend_AlwaysTwelveIncreasingMonthsEndingNow(t *testing.T) {
	nows := []time.Time{
		date(2026, time.January, 1),
		date(2026, time.February, 28),
		date(2024, time.December, 31),
		time.Date(2026, time.July, 15, 23, 59, 0, 0, time.FixedZone("UTC+5", 5*3600)),
	}
	expenses := []domain.ExpenseTransaction{{Date: date(2026, time.January, 5), TotalAmount: dec("10")}}

	for _, now := range nows {
		t.Run(now.Format(time.RFC3339), func(t *testing.T) {
			for _, series := range [][]domain.MonthlyTrendPoint{
				accounting.RevenueTrend(nil, now),
				accounting.ExpenseTrend(expenses, now),
			} {
				require.Len(t, series, accounting.TrendMonths)
				last := series[len(series)-1]
				assert.Equal(t, now.Year(), last.Year)
				assert.Equal(t, now.Month(), last.Month)
				for i := 1; i < len(series); i++ {
					prev, cur := series[i-1], series[i]
					assert.True(t, cur.Year > prev.Year || (cur.Year == prev.Year && cur.Month > prev.Month),
						"series not strictly increasing at %d", i)
				}
			}
		})
	}
}

func TestExpenseTrend_SumsAndCounts(t *testing.T) {
	now := date(2026, time.March, 2)
	expenses := []domain.ExpenseTransaction{
		{Date: date(2026, time.March, 1), TotalAmount: dec("40.50")},
		{Date: date(2026, time.March, 2), TotalAmount: dec("9.50")},
		{Date: date(2026, time.January, 31), TotalAmount: dec("12")},
	}

	series := accounting.ExpenseTrend(expenses, now)

	assertDecimal(t, "50", series[11].Amount)
	assert.Equal(t, 2, series[11].Count)
	assertDecimal(t, "0", series[10].Amount)
	assertDecimal(t, "12", series[9].Amount)
	assert.Equal(t, "Jan", series[9].MonthLabel)
}
