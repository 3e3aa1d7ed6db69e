package accounting

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SafeDiv divides numerator by denominator and returns zero when the denominator is zero,
// so no ratio in a report can become NaN, Inf or panic.
func SafeDiv(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}

// Percent returns part as a percentage of total, or zero when total is zero.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	return SafeDiv(part, total).Mul(hundred)
}

// ReportingAmount applies the report sign convention to a provider balance.
// Provider balances for expense and liability accounts are contra-signed, so they are
// negated; every other account type is reported as-is.
func ReportingAmount(account domain.Account) decimal.Decimal {
	switch account.Type {
	case domain.Expense, domain.Liability:
		return account.CurrentBalance.Neg()
	default:
		return account.CurrentBalance
	}
}

// SumReporting sums the reporting amounts of a group of accounts.
func SumReporting(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(ReportingAmount(a))
	}
	return total
}
