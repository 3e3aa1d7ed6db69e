package accounting

import (
	"time"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrendMonths is the length of every trailing trend series.
const TrendMonths = 12

type datedAmount struct {
	date   time.Time
	amount decimal.Decimal
}

// RevenueTrend buckets invoice totals by issue month over the 12 months ending at now.
func RevenueTrend(invoices []domain.Invoice, now time.Time) []domain.MonthlyTrendPoint {
	records := make([]datedAmount, 0, len(invoices))
	for _, inv := range invoices {
		records = append(records, datedAmount{date: inv.IssueDate, amount: inv.TotalAmount})
	}
	return monthlySeries(records, now)
}

// ExpenseTrend buckets expense totals by month over the 12 months ending at now.
func ExpenseTrend(expenses []domain.ExpenseTransaction, now time.Time) []domain.MonthlyTrendPoint {
	records := make([]datedAmount, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, datedAmount{date: e.Date, amount: e.TotalAmount})
	}
	return monthlySeries(records, now)
}

// monthlySeries emits exactly TrendMonths points, oldest first, the last one being now's
// calendar month. Records are matched on their own calendar year and month.
func monthlySeries(records []datedAmount, now time.Time) []domain.MonthlyTrendPoint {
	series := make([]domain.MonthlyTrendPoint, TrendMonths)
	index := make(map[[2]int]int, TrendMonths)

	for i := 0; i < TrendMonths; i++ {
		// time.Date normalises month underflow into the previous year.
		start := time.Date(now.Year(), now.Month()-time.Month(TrendMonths-1-i), 1, 0, 0, 0, 0, now.Location())
		series[i] = domain.MonthlyTrendPoint{
			MonthLabel: start.Month().String()[:3],
			Year:       start.Year(),
			Month:      start.Month(),
			Amount:     decimal.Zero,
		}
		index[[2]int{start.Year(), int(start.Month())}] = i
	}

	for _, r := range records {
		i, ok := index[[2]int{r.date.Year(), int(r.date.Month())}]
		if !ok {
			continue
		}
		series[i].Amount = series[i].Amount.Add(r.amount)
		series[i].Count++
	}
	return series
}
