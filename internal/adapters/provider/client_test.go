package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/finstatements/internal/adapters/provider"
	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(srv *httptest.Server, maxRetries int) *provider.Factory {
	return provider.NewFactory(provider.Config{
		BaseURL:      srv.URL,
		TokenURL:     srv.URL + "/oauth2/token",
		ClientID:     "client",
		ClientSecret: "secret",
		MaxRetries:   maxRetries,
		RetryInitial: time.Millisecond,
		RetryMax:     2 * time.Millisecond,
		HTTPClient:   srv.Client(),
	})
}

func newTestProvider(t *testing.T, srv *httptest.Server, cred *domain.ProviderCredential, maxRetries int) portsrepo.AccountingProvider {
	t.Helper()
	if cred == nil {
		cred = &domain.ProviderCredential{CompanyID: "123", AccessToken: "access"}
	}
	p, err := newTestFactory(srv, maxRetries).NewProvider(context.Background(), cred, nil)
	require.NoError(t, err)
	return p
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestListAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/123/query", r.URL.Path)
		assert.Equal(t, "select * from Account", r.URL.Query().Get("query"))
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeJSON(w, `{"QueryResponse":{"Account":[
			{"Id":"1","Name":"Sales","Classification":"Revenue","AccountSubType":"SalesOfProductIncome","CurrentBalance":1200.50},
			{"Id":"2","Name":"Rent","Classification":"Expense","AccountSubType":"RentOrLeaseOfBuildings"}
		]}}`)
	}))
	defer srv.Close()

	accounts, err := newTestProvider(t, srv, nil, 0).ListAccounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.Income, accounts[0].Type)
	assert.Equal(t, domain.SubTypeSalesOfProductIncome, accounts[0].SubType)
	assert.True(t, decimal.RequireFromString("1200.50").Equal(accounts[0].CurrentBalance))
	assert.Equal(t, domain.Expense, accounts[1].Type)
	assert.True(t, accounts[1].CurrentBalance.IsZero(), "missing balance defaults to zero")
}

func TestListAccounts_NonNumericBalanceDefaultsToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"QueryResponse":{"Account":[
			{"Id":"1","Name":"Sales","Classification":"Revenue","CurrentBalance":"n/a"},
			{"Id":"2","Name":"Bank","Classification":"Asset","CurrentBalance":"250.75"},
			{"Id":"3","Name":"Rent","Classification":"Expense","CurrentBalance":null}
		]}}`)
	}))
	defer srv.Close()

	accounts, err := newTestProvider(t, srv, nil, 0).ListAccounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.True(t, accounts[0].CurrentBalance.IsZero())
	assert.True(t, decimal.RequireFromString("250.75").Equal(accounts[1].CurrentBalance), "quoted numbers are accepted")
	assert.True(t, accounts[2].CurrentBalance.IsZero())
}

func TestListInvoicesAndItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "select * from Invoice":
			writeJSON(w, `{"QueryResponse":{"Invoice":[
				{"Id":"9","DocNumber":"1001","CustomerRef":{"value":"c1","name":"Globex"},"TxnDate":"2026-10-01","DueDate":"2026-10-31","TotalAmt":500,"Balance":125}
			]}}`)
		case "select * from Item":
			writeJSON(w, `{"QueryResponse":{"Item":[
				{"Id":"1","Name":"Widget","Sku":"W-1","Type":"Inventory","UnitPrice":10,"QtyOnHand":4},
				{"Id":"2","Name":"Setup","Type":"Service","UnitPrice":150},
				{"Id":"3","Name":"Bundle","Type":"Group"}
			]}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	p := newTestProvider(t, srv, nil, 0)

	invoices, err := p.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "c1", invoices[0].CustomerRef)
	assert.Equal(t, "Globex", invoices[0].CustomerName)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), invoices[0].IssueDate)
	assert.True(t, decimal.NewFromInt(125).Equal(invoices[0].BalanceRemaining))

	items, err := p.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, domain.ItemInventory, items[0].Type)
	assert.True(t, decimal.NewFromInt(4).Equal(items[0].QuantityOnHand))
	assert.Equal(t, domain.ItemService, items[1].Type)
	assert.True(t, items[1].QuantityOnHand.IsZero())
	assert.Equal(t, domain.ItemNonInventory, items[2].Type)
}

func TestGetCompanyInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/123/companyinfo/123", r.URL.Path)
		writeJSON(w, `{"CompanyInfo":{"Id":"123","CompanyName":"Acme","LegalName":"Acme Ltd","Country":"KE","FiscalYearStartMonth":"January"}}`)
	}))
	defer srv.Close()

	info, err := newTestProvider(t, srv, nil, 0).GetCompanyInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Acme", info.Name)
	assert.Equal(t, "Acme Ltd", info.LegalName)
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, `{"QueryResponse":{}}`)
	}))
	defer srv.Close()

	payments, err := newTestProvider(t, srv, nil, 3).ListPayments(context.Background())

	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestProvider(t, srv, nil, 2).ListExpenses(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProviderRequestFailed)
	var perr *apperrors.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Purchase", perr.Stage)
	assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientErrorsFailFast(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"Fault":{"type":"ValidationFault"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestProvider(t, srv, nil, 5).ListCustomers(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrProviderRequestFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMalformedBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"QueryResponse":`)
	}))
	defer srv.Close()

	_, err := newTestProvider(t, srv, nil, 0).ListAccounts(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrProviderRequestFailed)
}

func TestRefreshesExpiredToken(t *testing.T) {
	var refreshed atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth2/token" {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "stale-refresh", r.PostForm.Get("refresh_token"))
			refreshed.Store(true)
			writeJSON(w, `{"access_token":"fresh","token_type":"Bearer","refresh_token":"next","expires_in":3600}`)
			return
		}
		assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		writeJSON(w, `{"QueryResponse":{"Customer":[{"Id":"c1","DisplayName":"Globex","TotalRevenue":10,"Balance":2}]}}`)
	}))
	defer srv.Close()

	expired := time.Now().Add(-time.Hour)
	cred := &domain.ProviderCredential{CompanyID: "123", AccessToken: "stale", RefreshToken: "stale-refresh", ExpiresAt: &expired}

	customers, err := newTestProvider(t, srv, cred, 0).ListCustomers(context.Background())

	require.NoError(t, err)
	assert.True(t, refreshed.Load())
	require.Len(t, customers, 1)
	assert.True(t, decimal.NewFromInt(10).Equal(customers[0].TotalRevenueToDate))
}

func TestRejectedRefreshIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	expired := time.Now().Add(-time.Hour)
	cred := &domain.ProviderCredential{CompanyID: "123", AccessToken: "stale", RefreshToken: "revoked", ExpiresAt: &expired}

	_, err := newTestProvider(t, srv, cred, 3).ListAccounts(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrAuthenticationMissing)
	assert.NotErrorIs(t, err, apperrors.ErrProviderRequestFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRefreshedTokenIsSaved(t *testing.T) {
	var refreshes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth2/token" {
			refreshes.Add(1)
			writeJSON(w, `{"access_token":"fresh","token_type":"Bearer","refresh_token":"rotated","expires_in":3600}`)
			return
		}
		writeJSON(w, `{"QueryResponse":{}}`)
	}))
	defer srv.Close()

	expired := time.Now().Add(-time.Hour)
	cred := &domain.ProviderCredential{ID: "cred-1", UserID: "u1", CompanyID: "123", AccessToken: "stale", RefreshToken: "old", ExpiresAt: &expired}
	var saved []*domain.ProviderCredential
	onRefresh := func(ctx context.Context, c *domain.ProviderCredential) error {
		saved = append(saved, c)
		return nil
	}

	p, err := newTestFactory(srv, 0).NewProvider(context.Background(), cred, onRefresh)
	require.NoError(t, err)
	_, err = p.ListPayments(context.Background())
	require.NoError(t, err)
	_, err = p.ListExpenses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), refreshes.Load())
	require.Len(t, saved, 1, "the refreshed token is saved once")
	assert.Equal(t, "cred-1", saved[0].ID)
	assert.Equal(t, "u1", saved[0].UserID)
	assert.Equal(t, "fresh", saved[0].AccessToken)
	assert.Equal(t, "rotated", saved[0].RefreshToken)
	require.NotNil(t, saved[0].ExpiresAt)
	assert.True(t, saved[0].ExpiresAt.After(time.Now()))
	assert.Equal(t, "stale", cred.AccessToken, "the caller's credential is not mutated")
}

func TestFailedTokenSaveDoesNotFailFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth2/token" {
			writeJSON(w, `{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`)
			return
		}
		writeJSON(w, `{"QueryResponse":{}}`)
	}))
	defer srv.Close()

	expired := time.Now().Add(-time.Hour)
	cred := &domain.ProviderCredential{CompanyID: "123", AccessToken: "stale", RefreshToken: "old", ExpiresAt: &expired}
	onRefresh := func(ctx context.Context, c *domain.ProviderCredential) error {
		return errors.New("database unavailable")
	}

	p, err := newTestFactory(srv, 0).NewProvider(context.Background(), cred, onRefresh)
	require.NoError(t, err)
	_, err = p.ListItems(context.Background())

	assert.NoError(t, err)
}

func TestNewProviderWithoutUsableToken(t *testing.T) {
	factory := provider.NewFactory(provider.Config{BaseURL: "http://localhost"})
	expired := time.Now().Add(-time.Minute)

	tests := []struct {
		name string
		cred *domain.ProviderCredential
	}{
		{name: "nil credential", cred: nil},
		{name: "empty tokens", cred: &domain.ProviderCredential{CompanyID: "123"}},
		{name: "expired without refresh token", cred: &domain.ProviderCredential{CompanyID: "123", AccessToken: "a", ExpiresAt: &expired}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := factory.NewProvider(context.Background(), tt.cred, nil)
			assert.ErrorIs(t, err, apperrors.ErrAuthenticationMissing)
		})
	}
}

func TestGetNativeReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/123/reports/ProfitAndLoss", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("start_date"))
		writeJSON(w, `{"Header":{"ReportName":"ProfitAndLoss"},"Rows":{}}`)
	}))
	defer srv.Close()
	p := newTestProvider(t, srv, nil, 0)

	report, err := p.GetNativeReport(context.Background(), portsrepo.NativeProfitAndLoss, url.Values{"start_date": {"2026-01-01"}})
	require.NoError(t, err)
	assert.Equal(t, portsrepo.NativeProfitAndLoss, report.Name)
	assert.JSONEq(t, `{"Header":{"ReportName":"ProfitAndLoss"},"Rows":{}}`, string(report.Payload))

	_, err = p.GetNativeReport(context.Background(), "GeneralLedger", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCancelledContextStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProvider(t, srv, nil, 10).ListAccounts(ctx)

	assert.ErrorIs(t, err, apperrors.ErrProviderRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
