package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/SscSPs/finstatements/internal/models"
	"github.com/SscSPs/finstatements/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCredentialRepository struct {
	BaseRepository
	cipher mapping.TokenCipher
}

// newPgxCredentialRepository creates a new instance of PgxCredentialRepository
func newPgxCredentialRepository(db *pgxpool.Pool, cipher mapping.TokenCipher) portsrepo.CredentialRepository {
	return &PgxCredentialRepository{
		BaseRepository: BaseRepository{Pool: db},
		cipher:         cipher,
	}
}

const (
	credentialsTable = "provider_credentials"

	selectCredentialFields = `
		credential_id, user_id, company_id, access_token_sealed,
		refresh_token_sealed, expires_at, created_at, updated_at
	`

	findCredentialQuery = `
		SELECT ` + selectCredentialFields + `
		FROM ` + credentialsTable + `
		WHERE user_id = $1 AND company_id = $2
	`

	upsertCredentialQuery = `
		INSERT INTO ` + credentialsTable + ` (
			user_id, company_id, access_token_sealed, refresh_token_sealed, expires_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, company_id) DO UPDATE SET
			access_token_sealed = EXCLUDED.access_token_sealed,
			refresh_token_sealed = EXCLUDED.refresh_token_sealed,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
		RETURNING ` + selectCredentialFields

	lockCredentialQuery = findCredentialQuery + `
		FOR UPDATE
	`

	updateTokensQuery = `
		UPDATE ` + credentialsTable + ` SET
			access_token_sealed = $3,
			refresh_token_sealed = $4,
			expires_at = $5,
			updated_at = NOW()
		WHERE user_id = $1 AND company_id = $2
		RETURNING ` + selectCredentialFields + `
	`

	deleteCredentialQuery = `
		DELETE FROM ` + credentialsTable + `
		WHERE user_id = $1 AND company_id = $2
	`
)

// FindCredential retrieves the credential for a (user, company) pair
func (r *PgxCredentialRepository) FindCredential(ctx context.Context, userID, companyID string) (*domain.ProviderCredential, error) {
	if userID == "" || companyID == "" {
		return nil, fmt.Errorf("%w: user ID and company ID are required", apperrors.ErrValidation)
	}

	stored, err := scanCredential(r.Pool.QueryRow(ctx, findCredentialQuery, userID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no credential for company %s", apperrors.ErrAuthenticationMissing, companyID)
		}
		return nil, fmt.Errorf("failed to find provider credential: %w", err)
	}

	return mapping.ToDomainProviderCredential(*stored, r.cipher)
}

// SaveCredential inserts or replaces the credential for its (user, company) pair
func (r *PgxCredentialRepository) SaveCredential(ctx context.Context, cred *domain.ProviderCredential) error {
	if cred == nil {
		return fmt.Errorf("%w: credential cannot be nil", apperrors.ErrValidation)
	}
	if cred.UserID == "" || cred.CompanyID == "" {
		return fmt.Errorf("%w: user ID and company ID are required", apperrors.ErrValidation)
	}

	model, err := mapping.ToModelProviderCredential(*cred, r.cipher)
	if err != nil {
		return err
	}

	saved, err := scanCredential(r.Pool.QueryRow(ctx, upsertCredentialQuery,
		model.UserID,
		model.CompanyID,
		model.AccessTokenSealed,
		model.RefreshTokenSealed,
		model.ExpiresAt,
	))
	if err != nil {
		return fmt.Errorf("failed to save provider credential: %w", err)
	}

	// Update the original credential with the generated values
	cred.ID = saved.ID
	cred.CreatedAt = saved.CreatedAt
	cred.UpdatedAt = saved.UpdatedAt
	return nil
}

// UpdateTokens stores refreshed tokens on an existing credential. The row is locked while
// the stored expiry is compared, so two requests refreshing at once keep the newer token.
func (r *PgxCredentialRepository) UpdateTokens(ctx context.Context, cred *domain.ProviderCredential) error {
	if cred == nil {
		return fmt.Errorf("%w: credential cannot be nil", apperrors.ErrValidation)
	}
	if cred.UserID == "" || cred.CompanyID == "" {
		return fmt.Errorf("%w: user ID and company ID are required", apperrors.ErrValidation)
	}

	model, err := mapping.ToModelProviderCredential(*cred, r.cipher)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	stored, err := scanCredential(tx.QueryRow(ctx, lockCredentialQuery, model.UserID, model.CompanyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Disconnected while the request was running; do not resurrect it.
			return fmt.Errorf("%w: no credential for company %s", apperrors.ErrNotFound, model.CompanyID)
		}
		return fmt.Errorf("failed to lock provider credential: %w", err)
	}
	if !replacesStoredToken(stored.ExpiresAt, model.ExpiresAt) {
		return r.Commit(ctx, tx)
	}

	saved, err := scanCredential(tx.QueryRow(ctx, updateTokensQuery,
		model.UserID,
		model.CompanyID,
		model.AccessTokenSealed,
		model.RefreshTokenSealed,
		model.ExpiresAt,
	))
	if err != nil {
		return fmt.Errorf("failed to update provider tokens: %w", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	cred.ID = saved.ID
	cred.UpdatedAt = saved.UpdatedAt
	return nil
}

// replacesStoredToken reports whether a refreshed token expiring at incoming should
// overwrite the stored one. Unknown expiries always overwrite.
func replacesStoredToken(stored, incoming *time.Time) bool {
	if stored == nil || incoming == nil {
		return true
	}
	return !stored.After(*incoming)
}

// DeleteCredential removes the credential for a (user, company) pair
func (r *PgxCredentialRepository) DeleteCredential(ctx context.Context, userID, companyID string) error {
	tag, err := r.Pool.Exec(ctx, deleteCredentialQuery, userID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete provider credential: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanCredential scans a database row into a credential model
func scanCredential(row pgx.Row) (*models.ProviderCredential, error) {
	var c models.ProviderCredential
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CompanyID,
		&c.AccessTokenSealed,
		&c.RefreshTokenSealed,
		&c.ExpiresAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
