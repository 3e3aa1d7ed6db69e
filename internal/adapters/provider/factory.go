package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/SscSPs/finstatements/internal/middleware"
	gax "github.com/googleapis/gax-go/v2"
	"golang.org/x/oauth2"
)

// Config configures provider clients built by a Factory.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries   int
	RetryInitial time.Duration
	RetryMax     time.Duration

	// HTTPClient is the transport used beneath the OAuth layer (for testing).
	HTTPClient *http.Client
}

// Factory builds a fresh Client for every credential it is handed.
type Factory struct {
	cfg Config
}

// Ensure Factory implements the AccountingProviderFactory interface
var _ portsrepo.AccountingProviderFactory = (*Factory)(nil)

// NewFactory creates a new provider client factory.
func NewFactory(cfg Config) *Factory {
	if cfg.RetryInitial <= 0 {
		cfg.RetryInitial = 250 * time.Millisecond
	}
	if cfg.RetryMax <= 0 {
		cfg.RetryMax = 5 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &Factory{cfg: cfg}
}

// NewProvider returns a client authenticated with cred. An expired access token is
// refreshed through the token endpoint on first use, and the refreshed credential is
// passed to onRefresh when it is set.
func (f *Factory) NewProvider(ctx context.Context, cred *domain.ProviderCredential, onRefresh portsrepo.TokenRefreshFunc) (portsrepo.AccountingProvider, error) {
	if cred == nil || !cred.HasToken() {
		return nil, fmt.Errorf("%w: credential holds no token", apperrors.ErrAuthenticationMissing)
	}
	if cred.IsExpired() && cred.RefreshToken == "" {
		return nil, fmt.Errorf("%w: access token expired and no refresh token is stored", apperrors.ErrAuthenticationMissing)
	}

	base := f.cfg.HTTPClient
	if base == nil {
		base = &http.Client{}
	}

	oauthCfg := &oauth2.Config{
		ClientID:     f.cfg.ClientID,
		ClientSecret: f.cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  f.cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
	token := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenType:    "Bearer",
	}
	if cred.ExpiresAt != nil {
		token.Expiry = *cred.ExpiresAt
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "provider"), slog.String("company_id", cred.CompanyID))

	// The token source refreshes through the same base transport.
	oauthCtx := context.WithValue(ctx, oauth2.HTTPClient, base)
	var source oauth2.TokenSource = oauthCfg.TokenSource(oauthCtx, token)
	if onRefresh != nil {
		source = newSavingTokenSource(ctx, source, *cred, onRefresh, logger)
	}
	httpClient := oauth2.NewClient(oauthCtx, source)

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(f.cfg.BaseURL, "/"),
		companyID:  cred.CompanyID,
		maxRetries: f.cfg.MaxRetries,
		backoff: gax.Backoff{
			Initial:    f.cfg.RetryInitial,
			Max:        f.cfg.RetryMax,
			Multiplier: 2,
		},
		logger: logger,
	}, nil
}
