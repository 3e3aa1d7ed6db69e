package accounting

import (
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxPolicy is the set of statutory rates for one jurisdiction, as fractions (0.18 = 18%).
type TaxPolicy struct {
	Jurisdiction    string
	VATRate         decimal.Decimal
	IncomeTaxRate   decimal.Decimal
	WithholdingRate decimal.Decimal
}

// DefaultTaxPolicy returns the standard rates: VAT 18%, income tax 30%, withholding 6%.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		Jurisdiction:    "default",
		VATRate:         decimal.RequireFromString("0.18"),
		IncomeTaxRate:   decimal.RequireFromString("0.30"),
		WithholdingRate: decimal.RequireFromString("0.06"),
	}
}

// ComputeTaxes applies the policy rates to the aggregated metrics.
// A negative net income yields a negative income tax figure; losses are not floored.
func ComputeTaxes(m Metrics, p TaxPolicy) domain.TaxSummary {
	collected := m.TotalRevenue.Mul(p.VATRate)
	paid := m.TotalExpenses.Mul(p.VATRate)
	return domain.TaxSummary{
		Jurisdiction:    p.Jurisdiction,
		VATRate:         p.VATRate,
		VATCollected:    collected,
		VATPaid:         paid,
		NetVAT:          collected.Sub(paid),
		IncomeTaxRate:   p.IncomeTaxRate,
		IncomeTax:       m.NetIncome.Mul(p.IncomeTaxRate),
		WithholdingRate: p.WithholdingRate,
		WithholdingTax:  m.TotalRevenue.Mul(p.WithholdingRate),
	}
}
