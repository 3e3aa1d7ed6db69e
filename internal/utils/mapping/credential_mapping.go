package mapping

import (
	"fmt"

	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/models"
)

// TokenCipher seals and opens token values for storage.
type TokenCipher interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// ToModelProviderCredential converts a domain credential to its stored form, sealing both tokens.
func ToModelProviderCredential(c domain.ProviderCredential, cipher TokenCipher) (models.ProviderCredential, error) {
	access, err := cipher.Seal(c.AccessToken)
	if err != nil {
		return models.ProviderCredential{}, fmt.Errorf("failed to seal access token: %w", err)
	}
	refresh, err := cipher.Seal(c.RefreshToken)
	if err != nil {
		return models.ProviderCredential{}, fmt.Errorf("failed to seal refresh token: %w", err)
	}
	return models.ProviderCredential{
		ID:                 c.ID,
		UserID:             c.UserID,
		CompanyID:          c.CompanyID,
		AccessTokenSealed:  access,
		RefreshTokenSealed: refresh,
		ExpiresAt:          c.ExpiresAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}, nil
}

// ToDomainProviderCredential converts a stored credential back to the domain, opening both tokens.
func ToDomainProviderCredential(m models.ProviderCredential, cipher TokenCipher) (*domain.ProviderCredential, error) {
	access, err := cipher.Open(m.AccessTokenSealed)
	if err != nil {
		return nil, fmt.Errorf("failed to open access token: %w", err)
	}
	refresh, err := cipher.Open(m.RefreshTokenSealed)
	if err != nil {
		return nil, fmt.Errorf("failed to open refresh token: %w", err)
	}
	return &domain.ProviderCredential{
		ID:           m.ID,
		UserID:       m.UserID,
		CompanyID:    m.CompanyID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
