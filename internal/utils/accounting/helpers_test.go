package accounting_test

import (
	"testing"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func account(id, name string, typ domain.AccountType, subType, balance string) domain.Account {
	return domain.Account{ID: id, Name: name, Type: typ, SubType: subType, CurrentBalance: dec(balance)}
}

// sampleAccounts is a small but complete chart of accounts.
func sampleAccounts() []domain.Account {
	return []domain.Account{
		account("1", "Sales", domain.Income, domain.SubTypeSalesOfProductIncome, "1000000"),
		account("2", "Consulting", domain.Income, "ServiceFeeIncome", "250000"),
		account("3", "Rent", domain.Expense, "RentOrLeaseOfBuildings", "-100000"),
		account("4", "Cost of Goods", domain.Expense, domain.SubTypeCostOfGoodsSold, "-300000"),
		account("5", "Checking", domain.Asset, domain.SubTypeCashAndCashEquivalents, "400000"),
		account("6", "Receivables", domain.Asset, domain.SubTypeAccountsReceivable, "150000"),
		account("7", "Stock", domain.Asset, domain.SubTypeInventory, "50000"),
		account("8", "Vehicles", domain.Asset, "Vehicles", "200000"),
		account("9", "Payables", domain.Liability, domain.SubTypeAccountsPayable, "-80000"),
		account("10", "Bank Loan", domain.Liability, "NotesPayable", "-120000"),
		account("11", "Owner Equity", domain.Equity, "OwnersEquity", "500000"),
	}
}
