package accounting

import (
	"log/slog"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// Buckets is the chart of accounts partitioned by statement role.
//
// COGS is a sub-bucket of Expenses: every COGS account also appears in Expenses.
// Every Asset lands in exactly one of CurrentAssets / FixedAssets, and every Liability in
// exactly one of CurrentLiabilities / LongTermLiabilities.
type Buckets struct {
	Revenue             []domain.Account
	Expenses            []domain.Account
	COGS                []domain.Account
	CurrentAssets       []domain.Account
	FixedAssets         []domain.Account
	CurrentLiabilities  []domain.Account
	LongTermLiabilities []domain.Account
	Equity              []domain.Account
	Unclassified        []domain.Account
}

var currentAssetSubTypes = map[string]bool{
	domain.SubTypeCashAndCashEquivalents: true,
	domain.SubTypeAccountsReceivable:     true,
	domain.SubTypeInventory:              true,
}

// Classify partitions accounts into statement buckets. It never fails and never mutates
// its input.
//
// An account is revenue when its type is Income or its subtype is SalesOfProductIncome.
// Assets with a subtype outside {CashAndCashEquivalents, AccountsReceivable, Inventory}
// are fixed assets, and liabilities other than AccountsPayable are long-term; this
// includes accounts whose subtype is unknown or missing.
// Accounts with a type outside the closed AccountType set are logged and kept in
// Unclassified.
func Classify(accounts []domain.Account, logger *slog.Logger) Buckets {
	if logger == nil {
		logger = slog.Default()
	}
	var b Buckets
	for _, a := range accounts {
		if a.Type == domain.Income || a.SubType == domain.SubTypeSalesOfProductIncome {
			b.Revenue = append(b.Revenue, a)
			continue
		}

		switch a.Type {
		case domain.Expense:
			b.Expenses = append(b.Expenses, a)
			if a.SubType == domain.SubTypeCostOfGoodsSold {
				b.COGS = append(b.COGS, a)
			}
		case domain.Asset:
			if currentAssetSubTypes[a.SubType] {
				b.CurrentAssets = append(b.CurrentAssets, a)
			} else {
				b.FixedAssets = append(b.FixedAssets, a)
			}
		case domain.Liability:
			if a.SubType == domain.SubTypeAccountsPayable {
				b.CurrentLiabilities = append(b.CurrentLiabilities, a)
			} else {
				b.LongTermLiabilities = append(b.LongTermLiabilities, a)
			}
		case domain.Equity:
			b.Equity = append(b.Equity, a)
		default:
			logger.Warn("Account with unrecognized type left unclassified",
				slog.String("account_id", a.ID),
				slog.String("account_name", a.Name),
				slog.String("account_type", string(a.Type)))
			b.Unclassified = append(b.Unclassified, a)
		}
	}
	return b
}
