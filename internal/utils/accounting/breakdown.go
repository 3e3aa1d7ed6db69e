package accounting

import (
	"sort"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildBreakdown turns a bucket into a report section: one line per account with its
// reporting amount and its share of the section total, sorted by amount descending.
// Percentages sum to 100 when the total is nonzero and are all zero otherwise.
func BuildBreakdown(accounts []domain.Account) domain.Breakdown {
	total := SumReporting(accounts)
	lines := make([]domain.BreakdownLine, 0, len(accounts))
	for _, a := range accounts {
		amount := ReportingAmount(a)
		lines = append(lines, domain.BreakdownLine{
			AccountID:  a.ID,
			Name:       a.Name,
			Amount:     amount,
			Percentage: Percent(amount, total),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Amount.Equal(lines[j].Amount) {
			return lines[i].Amount.GreaterThan(lines[j].Amount)
		}
		return lines[i].Name < lines[j].Name
	})

	return domain.Breakdown{Lines: lines, Total: total}
}

// PercentageSum adds up the percentages of a breakdown's lines.
func PercentageSum(b domain.Breakdown) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range b.Lines {
		sum = sum.Add(l.Percentage)
	}
	return sum
}
