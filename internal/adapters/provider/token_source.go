package provider

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"golang.org/x/oauth2"
)

// savingTokenSource hands every newly issued token to onRefresh exactly once.
// Concurrent fetches share one source, so the comparison happens under the lock.
type savingTokenSource struct {
	ctx       context.Context
	src       oauth2.TokenSource
	onRefresh portsrepo.TokenRefreshFunc
	logger    *slog.Logger

	mu   sync.Mutex
	cred domain.ProviderCredential
}

func newSavingTokenSource(ctx context.Context, src oauth2.TokenSource, cred domain.ProviderCredential, onRefresh portsrepo.TokenRefreshFunc, logger *slog.Logger) *savingTokenSource {
	return &savingTokenSource{
		// The write-back must survive a sibling fetch cancelling the group.
		ctx:       context.WithoutCancel(ctx),
		src:       src,
		onRefresh: onRefresh,
		logger:    logger,
		cred:      cred,
	}
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken == s.cred.AccessToken {
		return tok, nil
	}

	s.cred.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		s.cred.RefreshToken = tok.RefreshToken
	}
	s.cred.ExpiresAt = nil
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry
		s.cred.ExpiresAt = &expiry
	}

	saved := s.cred
	if err := s.onRefresh(s.ctx, &saved); err != nil {
		// The fetch can still use the token; the next request will refresh again.
		s.logger.Warn("Failed to persist refreshed provider token",
			slog.String("error", err.Error()))
		return tok, nil
	}
	s.logger.Info("Persisted refreshed provider token")
	return tok, nil
}
