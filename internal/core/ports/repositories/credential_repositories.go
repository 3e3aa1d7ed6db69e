package repositories

import (
	"context"

	"github.com/SscSPs/finstatements/internal/core/domain"
)

// CredentialRepository defines the persistence operations for provider credentials.
type CredentialRepository interface {
	// FindCredential returns the stored credential for the (user, company) pair.
	// It returns apperrors.ErrAuthenticationMissing when none exists.
	FindCredential(ctx context.Context, userID, companyID string) (*domain.ProviderCredential, error)

	// SaveCredential inserts or replaces the credential for its (user, company) pair.
	SaveCredential(ctx context.Context, cred *domain.ProviderCredential) error

	// UpdateTokens stores refreshed tokens on an existing credential. A stored token that
	// expires later than cred's is kept. It returns apperrors.ErrNotFound when the
	// credential was removed in the meantime.
	UpdateTokens(ctx context.Context, cred *domain.ProviderCredential) error

	// DeleteCredential removes the credential for the (user, company) pair.
	DeleteCredential(ctx context.Context, userID, companyID string) error
}
