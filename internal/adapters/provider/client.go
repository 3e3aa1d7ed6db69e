package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	gax "github.com/googleapis/gax-go/v2"
	"golang.org/x/oauth2"
)

// maxResponseBytes caps how much of a provider response is read into memory.
const maxResponseBytes = 32 << 20

// Client reads one company's books from the provider's v3 REST API.
// It is bound to a single credential and must not be shared across requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	companyID  string
	maxRetries int
	backoff    gax.Backoff
	logger     *slog.Logger
}

// Ensure Client implements the AccountingProvider interface
var _ portsrepo.AccountingProvider = (*Client)(nil)

// GetCompanyInfo fetches the company metadata.
func (c *Client) GetCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	var resp companyInfoResponse
	if err := c.getJSON(ctx, "companyinfo", c.companyPath("companyinfo", c.companyID), nil, &resp); err != nil {
		return nil, err
	}
	return companyInfo(resp.CompanyInfo), nil
}

// ListAccounts fetches the chart of accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	resp, err := c.query(ctx, "Account")
	if err != nil {
		return nil, err
	}
	return c.mapper().accounts(resp.QueryResponse.Account), nil
}

// ListInvoices fetches all invoices.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	resp, err := c.query(ctx, "Invoice")
	if err != nil {
		return nil, err
	}
	return c.mapper().invoices(resp.QueryResponse.Invoice), nil
}

// ListCustomers fetches all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	resp, err := c.query(ctx, "Customer")
	if err != nil {
		return nil, err
	}
	return c.mapper().customers(resp.QueryResponse.Customer), nil
}

// ListItems fetches all products and services.
func (c *Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	resp, err := c.query(ctx, "Item")
	if err != nil {
		return nil, err
	}
	return c.mapper().items(resp.QueryResponse.Item), nil
}

// ListPayments fetches all received payments.
func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	resp, err := c.query(ctx, "Payment")
	if err != nil {
		return nil, err
	}
	return c.mapper().payments(resp.QueryResponse.Payment), nil
}

// ListExpenses fetches all purchases, which the provider uses to record expenses.
func (c *Client) ListExpenses(ctx context.Context) ([]domain.ExpenseTransaction, error) {
	resp, err := c.query(ctx, "Purchase")
	if err != nil {
		return nil, err
	}
	return c.mapper().expenses(resp.QueryResponse.Purchase), nil
}

// GetNativeReport fetches one of the provider's own reports and returns its body untouched.
func (c *Client) GetNativeReport(ctx context.Context, name string, params url.Values) (*domain.NativeReport, error) {
	switch name {
	case portsrepo.NativeProfitAndLoss, portsrepo.NativeBalanceSheet, portsrepo.NativeCashFlow,
		portsrepo.NativeAgedReceivables, portsrepo.NativeAgedPayables, portsrepo.NativeInventoryValuationSummary:
	default:
		return nil, fmt.Errorf("%w: unknown native report %q", apperrors.ErrValidation, name)
	}

	body, err := c.get(ctx, "report:"+name, c.companyPath("reports", name), params)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, apperrors.NewProviderError("report:"+name, name, http.StatusOK, errors.New("response is not valid JSON"))
	}
	return &domain.NativeReport{Name: name, Payload: json.RawMessage(body)}, nil
}

func (c *Client) mapper() mapper {
	return mapper{logger: c.logger}
}

func (c *Client) companyPath(segments ...string) string {
	p := "/v3/company/" + url.PathEscape(c.companyID)
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

func (c *Client) query(ctx context.Context, entity string) (*queryResponse, error) {
	params := url.Values{}
	params.Set("query", "select * from "+entity)

	var resp queryResponse
	if err := c.getJSON(ctx, entity, c.companyPath("query"), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, stage, path string, params url.Values, out any) error {
	body, err := c.get(ctx, stage, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewProviderError(stage, path, http.StatusOK, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// get performs a GET with bounded retries. Transport failures, 429 and 5xx are retried
// with exponential backoff; any other status fails immediately.
func (c *Client) get(ctx context.Context, stage, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	bo := c.backoff
	for attempt := 0; ; attempt++ {
		body, status, err := c.do(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			// A rejected refresh means the stored grant is dead; the user must reconnect.
			c.logger.Warn("Provider rejected the token refresh",
				slog.String("stage", stage),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: provider rejected the token refresh: %w", apperrors.ErrAuthenticationMissing, err)
		}
		if !retryable(status, err) || attempt >= c.maxRetries {
			c.logger.Error("Provider request failed",
				slog.String("stage", stage),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int("attempts", attempt+1),
				slog.String("error", err.Error()))
			return nil, apperrors.NewProviderError(stage, path, status, err)
		}

		pause := bo.Pause()
		c.logger.Warn("Provider request failed, retrying",
			slog.String("stage", stage),
			slog.Int("status", status),
			slog.Int("attempt", attempt+1),
			slog.Duration("pause", pause),
			slog.String("error", err.Error()))
		if err := gax.Sleep(ctx, pause); err != nil {
			return nil, apperrors.NewProviderError(stage, path, status, err)
		}
	}
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %s: %s", resp.Status, snippet(body))
	}
	return body, resp.StatusCode, nil
}

func retryable(status int, err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch {
	case status == 0:
		return true
	case status == http.StatusTooManyRequests:
		return true
	case status >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

func snippet(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
