package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account subtypes the classifier looks at. Any other subtype is carried as-is.
const (
	SubTypeCashAndCashEquivalents = "CashAndCashEquivalents"
	SubTypeAccountsReceivable     = "AccountsReceivable"
	SubTypeInventory              = "Inventory"
	SubTypeAccountsPayable        = "AccountsPayable"
	SubTypeCostOfGoodsSold        = "CostOfGoodsSold"
	SubTypeSalesOfProductIncome   = "SalesOfProductIncome"
)

// ParseAccountType maps a provider classification onto the closed AccountType set.
// "Revenue" is accepted as an alias of Income.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASSET":
		return Asset, nil
	case "LIABILITY":
		return Liability, nil
	case "EQUITY":
		return Equity, nil
	case "INCOME", "REVENUE":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, s)
	}
}

// Account is a read-only snapshot of a chart-of-accounts entry as reported by the provider.
// CurrentBalance is in the provider's sign convention: expense and liability balances
// arrive contra-signed.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	SubType        string          `json:"subType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
