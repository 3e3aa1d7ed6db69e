package domain

import "time"

// ProviderCredential is the OAuth credential a user holds for one provider company.
// Tokens are plaintext here; the repository seals them at rest.
type ProviderCredential struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	CompanyID    string     `json:"company_id"`
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsExpired checks if the access token has expired
func (c *ProviderCredential) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(time.Now())
}

// HasToken reports whether the credential can authenticate at all.
func (c *ProviderCredential) HasToken() bool {
	return c.AccessToken != "" || c.RefreshToken != ""
}
