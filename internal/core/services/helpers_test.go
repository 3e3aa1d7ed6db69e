package services_test

import (
	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

func accountingPolicy(vat, income, withholding string) accounting.TaxPolicy {
	return accounting.TaxPolicy{
		Jurisdiction:    "test",
		VATRate:         decimal.RequireFromString(vat),
		IncomeTaxRate:   decimal.RequireFromString(income),
		WithholdingRate: decimal.RequireFromString(withholding),
	}
}
