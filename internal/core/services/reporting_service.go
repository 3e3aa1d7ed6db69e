package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFetchTimeout = 15 * time.Second
	nativeDateLayout    = "2006-01-02"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	credentials  portsrepo.CredentialRepository
	providers    portsrepo.AccountingProviderFactory
	taxPolicy    accounting.TaxPolicy
	cashFlow     accounting.CashFlowHeuristic
	fetchTimeout time.Duration
	now          func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithTaxPolicy sets the statutory rates applied to every report.
func WithTaxPolicy(p accounting.TaxPolicy) ReportingServiceOption {
	return func(s *reportingService) {
		s.taxPolicy = p
	}
}

// WithCashFlowHeuristic sets the fractions used to estimate the cash flow statement.
func WithCashFlowHeuristic(h accounting.CashFlowHeuristic) ReportingServiceOption {
	return func(s *reportingService) {
		s.cashFlow = h
	}
}

// WithFetchTimeout bounds every individual provider fetch.
func WithFetchTimeout(d time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithClock replaces time.Now, which stamps reports and drives trends and overdue counts.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:  BaseService{name: "reporting"},
		credentials:  repos.CredentialRepo,
		providers:    repos.ProviderFactory,
		taxPolicy:    accounting.DefaultTaxPolicy(),
		cashFlow:     accounting.DefaultCashFlowHeuristic(),
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot is everything fetched for one request. Each field is written by exactly one
// fetch goroutine and read only after the group has been joined.
type snapshot struct {
	company   domain.CompanyInfo
	accounts  []domain.Account
	invoices  []domain.Invoice
	customers []domain.Customer
	items     []domain.Item
	payments  []domain.Payment
	expenses  []domain.ExpenseTransaction
	native    *domain.NativeReport
}

// nativeRequest names the provider report fetched alongside the raw entities.
type nativeRequest struct {
	name   string
	params url.Values
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, period domain.ReportPeriod, userID string) (*domain.ProfitAndLossReport, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.fetchSnapshot(ctx, companyID, userID, &nativeRequest{
		name:   portsrepo.NativeProfitAndLoss,
		params: periodParams(period),
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	buckets := accounting.Classify(snap.accounts, s.GetLogger(ctx))
	metrics := accounting.Aggregate(buckets)
	taxes := accounting.ComputeTaxes(metrics, s.taxPolicy)
	report := accounting.BuildProfitAndLoss(snap.company, period, buckets, metrics, taxes, now)
	report.Native = snap.native

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("company_id", companyID),
		slog.Int("account_count", len(snap.accounts)),
		slog.String("net_income", metrics.NetIncome.String()))
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time, userID string) (*domain.BalanceSheetReport, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}

	params := url.Values{}
	params.Set("end_date", asOf.Format(nativeDateLayout))
	snap, err := s.fetchSnapshot(ctx, companyID, userID, &nativeRequest{
		name:   portsrepo.NativeBalanceSheet,
		params: params,
	})
	if err != nil {
		return nil, err
	}

	buckets := accounting.Classify(snap.accounts, s.GetLogger(ctx))
	metrics := accounting.Aggregate(buckets)
	report := accounting.BuildBalanceSheet(snap.company, asOf, buckets, metrics, s.now())
	report.Native = snap.native

	if !report.Summary.IsBalanced {
		s.LogWarn(ctx, "Booked equity differs from derived equity",
			slog.String("company_id", companyID),
			slog.String("variance", report.Summary.EquityVariance.String()))
	}
	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("company_id", companyID),
		slog.String("asOf", asOf.Format(time.RFC3339)))
	return report, nil
}

// CashFlow generates an estimated cash flow statement for a specific period
func (s *reportingService) CashFlow(ctx context.Context, companyID string, period domain.ReportPeriod, userID string) (*domain.CashFlowReport, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.fetchSnapshot(ctx, companyID, userID, &nativeRequest{
		name:   portsrepo.NativeCashFlow,
		params: periodParams(period),
	})
	if err != nil {
		return nil, err
	}

	metrics := accounting.Aggregate(accounting.Classify(snap.accounts, s.GetLogger(ctx)))
	report := accounting.BuildCashFlow(snap.company, period, metrics, s.cashFlow, s.now())
	report.Native = snap.native

	s.LogInfo(ctx, "Cash flow report generated successfully",
		slog.String("company_id", companyID),
		slog.String("net_change", report.NetChangeInCash.String()))
	return report, nil
}

// Dashboard generates the consolidated dashboard metrics
func (s *reportingService) Dashboard(ctx context.Context, companyID string, userID string) (*domain.DashboardMetrics, error) {
	snap, err := s.fetchSnapshot(ctx, companyID, userID, nil)
	if err != nil {
		return nil, err
	}

	metrics := accounting.Aggregate(accounting.Classify(snap.accounts, s.GetLogger(ctx)))
	dashboard := accounting.BuildDashboard(accounting.DashboardInput{
		Company:   snap.company,
		Metrics:   metrics,
		Taxes:     accounting.ComputeTaxes(metrics, s.taxPolicy),
		Invoices:  snap.invoices,
		Payments:  snap.payments,
		Expenses:  snap.expenses,
		Customers: snap.customers,
		Items:     snap.items,
	}, s.now())

	s.LogInfo(ctx, "Dashboard generated successfully",
		slog.String("company_id", companyID),
		slog.Int("invoice_count", len(snap.invoices)),
		slog.Int("overdue_count", dashboard.OverdueInvoiceCount))
	return dashboard, nil
}

// fetchSnapshot resolves the caller's credential, builds a client for it and fetches every
// entity concurrently. The first failing fetch cancels the others and fails the request.
func (s *reportingService) fetchSnapshot(ctx context.Context, companyID, userID string, native *nativeRequest) (*snapshot, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: company ID is required", apperrors.ErrValidation)
	}

	cred, err := s.credentials.FindCredential(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationMissing) {
			s.LogWarn(ctx, "No provider credential for company",
				slog.String("user_id", userID),
				slog.String("company_id", companyID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load provider credential",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load provider credential: %w", err)
	}

	client, err := s.providers.NewProvider(ctx, cred, s.saveRefreshedCredential)
	if err != nil {
		s.LogError(ctx, err, "Failed to build provider client", slog.String("company_id", companyID))
		return nil, err
	}

	snap := &snapshot{company: domain.CompanyInfo{ID: companyID}}
	g, gctx := errgroup.WithContext(ctx)

	s.goFetch(gctx, g, "companyinfo", func(ctx context.Context) error {
		info, err := client.GetCompanyInfo(ctx)
		if err == nil && info != nil {
			snap.company = *info
		}
		return err
	})
	s.goFetch(gctx, g, "accounts", func(ctx context.Context) (err error) {
		snap.accounts, err = client.ListAccounts(ctx)
		return err
	})
	s.goFetch(gctx, g, "invoices", func(ctx context.Context) (err error) {
		snap.invoices, err = client.ListInvoices(ctx)
		return err
	})
	s.goFetch(gctx, g, "customers", func(ctx context.Context) (err error) {
		snap.customers, err = client.ListCustomers(ctx)
		return err
	})
	s.goFetch(gctx, g, "items", func(ctx context.Context) (err error) {
		snap.items, err = client.ListItems(ctx)
		return err
	})
	s.goFetch(gctx, g, "payments", func(ctx context.Context) (err error) {
		snap.payments, err = client.ListPayments(ctx)
		return err
	})
	s.goFetch(gctx, g, "expenses", func(ctx context.Context) (err error) {
		snap.expenses, err = client.ListExpenses(ctx)
		return err
	})
	if native != nil {
		s.goFetch(gctx, g, "report:"+native.name, func(ctx context.Context) (err error) {
			snap.native, err = client.GetNativeReport(ctx, native.name, native.params)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Provider fetch failed, aborting report",
			slog.String("company_id", companyID))
		return nil, err
	}
	return snap, nil
}

// saveRefreshedCredential writes tokens the provider client refreshed back to the store,
// so the rotated refresh token survives the request.
func (s *reportingService) saveRefreshedCredential(ctx context.Context, cred *domain.ProviderCredential) error {
	if err := s.credentials.UpdateTokens(ctx, cred); err != nil {
		s.LogError(ctx, err, "Failed to save refreshed provider credential",
			slog.String("user_id", cred.UserID),
			slog.String("company_id", cred.CompanyID))
		return err
	}
	s.LogInfo(ctx, "Saved refreshed provider credential",
		slog.String("user_id", cred.UserID),
		slog.String("company_id", cred.CompanyID))
	return nil
}

// goFetch runs fetch on the group under its own timeout.
func (s *reportingService) goFetch(ctx context.Context, g *errgroup.Group, stage string, fetch func(context.Context) error) {
	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()

		start := time.Now()
		if err := fetch(fetchCtx); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", stage, err)
		}
		s.LogDebug(ctx, "Provider fetch completed",
			slog.String("stage", stage),
			slog.Duration("latency", time.Since(start)))
		return nil
	})
}

func periodParams(p domain.ReportPeriod) url.Values {
	params := url.Values{}
	params.Set("start_date", p.StartDate.Format(nativeDateLayout))
	params.Set("end_date", p.EndDate.Format(nativeDateLayout))
	return params
}
