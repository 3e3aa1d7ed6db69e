package repositories

import (
	"context"
	"net/url"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// Native report names understood by the accounting data provider.
const (
	NativeProfitAndLoss             = "ProfitAndLoss"
	NativeBalanceSheet              = "BalanceSheet"
	NativeCashFlow                  = "CashFlow"
	NativeAgedReceivables           = "AgedReceivables"
	NativeAgedPayables              = "AgedPayables"
	NativeInventoryValuationSummary = "InventoryValuationSummary"
)

// AccountingProvider is the read-only view of one company's books at the external
// accounting data provider. Every method fails with apperrors.ErrProviderRequestFailed
// when the provider cannot be reached or answers with an error.
type AccountingProvider interface {
	// GetCompanyInfo returns the company metadata stamped onto reports.
	GetCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error)

	// ListAccounts returns the full chart of accounts with current balances.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListExpenses(ctx context.Context) ([]domain.ExpenseTransaction, error)

	// GetNativeReport returns the provider's own rendition of a report, unparsed.
	GetNativeReport(ctx context.Context, name string, params url.Values) (*domain.NativeReport, error)
}

// TokenRefreshFunc receives a copy of the credential after the client refreshed its tokens.
type TokenRefreshFunc func(ctx context.Context, cred *domain.ProviderCredential) error

// AccountingProviderFactory builds a provider client bound to a single credential.
// A new client is built for every engine instance. onRefresh may be nil.
type AccountingProviderFactory interface {
	NewProvider(ctx context.Context, cred *domain.ProviderCredential, onRefresh TokenRefreshFunc) (AccountingProvider, error)
}
