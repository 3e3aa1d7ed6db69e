package config

import (
	"testing"
	"time"

	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ProviderFetchTimeout)
	assert.Equal(t, 2, cfg.ProviderMaxRetries)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)

	tax := accounting.DefaultTaxPolicy()
	assert.True(t, tax.VATRate.Equal(cfg.TaxPolicy.VATRate))
	assert.True(t, tax.IncomeTaxRate.Equal(cfg.TaxPolicy.IncomeTaxRate))
	assert.True(t, tax.WithholdingRate.Equal(cfg.TaxPolicy.WithholdingRate))

	cf := accounting.DefaultCashFlowHeuristic()
	assert.True(t, cf.ReceivablesIncreaseRevenue.Equal(cfg.CashFlow.ReceivablesIncreaseRevenue))
	assert.True(t, cf.OwnerDrawingsRevenue.Equal(cfg.CashFlow.OwnerDrawingsRevenue))
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TAX_VAT_RATE", "0.16")
	t.Setenv("TAX_JURISDICTION", "KE")
	t.Setenv("PROVIDER_FETCH_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PROVIDER_CLIENT_ID", "app-id")
	t.Setenv("PROVIDER_CLIENT_SECRET", "app-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.16", cfg.TaxPolicy.VATRate.String())
	assert.Equal(t, "KE", cfg.TaxPolicy.Jurisdiction)
	assert.Equal(t, 3*time.Second, cfg.ProviderFetchTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "app-id", cfg.ProviderClientID)
	assert.Equal(t, "app-secret", cfg.ProviderClientSecret)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "rate above one", key: "TAX_INCOME_RATE", value: "1.5"},
		{name: "negative rate", key: "CASHFLOW_DEPRECIATION_RATE", value: "-0.1"},
		{name: "rate not a number", key: "TAX_VAT_RATE", value: "eighteen"},
		{name: "bad duration", key: "PROVIDER_FETCH_TIMEOUT", value: "soon"},
		{name: "zero timeout", key: "PROVIDER_FETCH_TIMEOUT", value: "0s"},
		{name: "short encryption key", key: "CREDENTIAL_ENCRYPTION_KEY", value: "abcd"},
		{name: "base url", key: "PROVIDER_BASE_URL", value: "not a url"},
		{name: "too many retries", key: "PROVIDER_MAX_RETRIES", value: "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
