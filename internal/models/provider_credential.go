package models

import "time"

// ProviderCredential is the stored form of a provider OAuth credential.
// Token columns hold sealed values, never plaintext.
type ProviderCredential struct {
	ID                 string     `json:"id" db:"credential_id"`
	UserID             string     `json:"userID" db:"user_id"`
	CompanyID          string     `json:"companyID" db:"company_id"`
	AccessTokenSealed  string     `json:"-" db:"access_token_sealed"`
	RefreshTokenSealed string     `json:"-" db:"refresh_token_sealed"`
	ExpiresAt          *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}

// TableName specifies the table name
func (ProviderCredential) TableName() string {
	return "provider_credentials"
}
