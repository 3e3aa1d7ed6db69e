package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/finstatements/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string `validate:"required"`
	JWTIssuer     string

	// Accounting data provider
	ProviderBaseURL      string `validate:"required,url"`
	ProviderTokenURL     string `validate:"required,url"`
	ProviderClientID     string
	ProviderClientSecret string
	ProviderFetchTimeout time.Duration `validate:"gt=0"`
	ProviderMaxRetries   int           `validate:"gte=0,lte=10"`
	ProviderRetryInitial time.Duration `validate:"gt=0"`

	// CredentialEncryptionKey is a hex encoded 32 byte secretbox key.
	CredentialEncryptionKey string `validate:"omitempty,hexadecimal,len=64"`

	TaxPolicy accounting.TaxPolicy
	CashFlow  accounting.CashFlowHeuristic

	RateLimit          string
	CORSAllowedOrigins []string
	PostHogAPIKey      string
}

// rateKeys lists every configurable fraction with the field it populates.
func rateKeys(cfg *Config) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"TAX_VAT_RATE":                  &cfg.TaxPolicy.VATRate,
		"TAX_INCOME_RATE":               &cfg.TaxPolicy.IncomeTaxRate,
		"TAX_WITHHOLDING_RATE":          &cfg.TaxPolicy.WithholdingRate,
		"CASHFLOW_DEPRECIATION_RATE":    &cfg.CashFlow.DepreciationOfExpenses,
		"CASHFLOW_RECEIVABLES_RATE":     &cfg.CashFlow.ReceivablesIncreaseRevenue,
		"CASHFLOW_INVENTORY_RATE":       &cfg.CashFlow.InventoryIncreaseRevenue,
		"CASHFLOW_PAYABLES_RATE":        &cfg.CashFlow.PayablesIncreaseOfExpenses,
		"CASHFLOW_EQUIPMENT_RATE":       &cfg.CashFlow.EquipmentPurchasesRevenue,
		"CASHFLOW_ASSET_SALES_RATE":     &cfg.CashFlow.AssetSalesRevenue,
		"CASHFLOW_LOAN_PROCEEDS_RATE":   &cfg.CashFlow.LoanProceedsRevenue,
		"CASHFLOW_LOAN_REPAYMENTS_RATE": &cfg.CashFlow.LoanRepaymentsRevenue,
		"CASHFLOW_DRAWINGS_RATE":        &cfg.CashFlow.OwnerDrawingsRevenue,
	}
}

func setDefaults() {
	tax := accounting.DefaultTaxPolicy()
	cf := accounting.DefaultCashFlowHeuristic()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "finstatements")

	viper.SetDefault("PROVIDER_BASE_URL", "https://sandbox-quickbooks.api.intuit.com")
	viper.SetDefault("PROVIDER_TOKEN_URL", "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer")
	viper.SetDefault("PROVIDER_CLIENT_ID", "")
	viper.SetDefault("PROVIDER_CLIENT_SECRET", "")
	viper.SetDefault("PROVIDER_FETCH_TIMEOUT", "15s")
	viper.SetDefault("PROVIDER_MAX_RETRIES", 2)
	viper.SetDefault("PROVIDER_RETRY_INITIAL", "250ms")
	viper.SetDefault("CREDENTIAL_ENCRYPTION_KEY", "")

	viper.SetDefault("TAX_JURISDICTION", tax.Jurisdiction)
	viper.SetDefault("TAX_VAT_RATE", tax.VATRate.String())
	viper.SetDefault("TAX_INCOME_RATE", tax.IncomeTaxRate.String())
	viper.SetDefault("TAX_WITHHOLDING_RATE", tax.WithholdingRate.String())

	viper.SetDefault("CASHFLOW_DEPRECIATION_RATE", cf.DepreciationOfExpenses.String())
	viper.SetDefault("CASHFLOW_RECEIVABLES_RATE", cf.ReceivablesIncreaseRevenue.String())
	viper.SetDefault("CASHFLOW_INVENTORY_RATE", cf.InventoryIncreaseRevenue.String())
	viper.SetDefault("CASHFLOW_PAYABLES_RATE", cf.PayablesIncreaseOfExpenses.String())
	viper.SetDefault("CASHFLOW_EQUIPMENT_RATE", cf.EquipmentPurchasesRevenue.String())
	viper.SetDefault("CASHFLOW_ASSET_SALES_RATE", cf.AssetSalesRevenue.String())
	viper.SetDefault("CASHFLOW_LOAN_PROCEEDS_RATE", cf.LoanProceedsRevenue.String())
	viper.SetDefault("CASHFLOW_LOAN_REPAYMENTS_RATE", cf.LoanRepaymentsRevenue.String())
	viper.SetDefault("CASHFLOW_DRAWINGS_RATE", cf.OwnerDrawingsRevenue.String())

	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:             viper.GetString("PGSQL_URL"),
		Port:                    viper.GetString("PORT"),
		IsProduction:            viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:               viper.GetString("JWT_SECRET"),
		JWTIssuer:               viper.GetString("JWT_ISSUER"),
		ProviderBaseURL:         viper.GetString("PROVIDER_BASE_URL"),
		ProviderTokenURL:        viper.GetString("PROVIDER_TOKEN_URL"),
		ProviderClientID:        viper.GetString("PROVIDER_CLIENT_ID"),
		ProviderClientSecret:    viper.GetString("PROVIDER_CLIENT_SECRET"),
		ProviderMaxRetries:      viper.GetInt("PROVIDER_MAX_RETRIES"),
		CredentialEncryptionKey: viper.GetString("CREDENTIAL_ENCRYPTION_KEY"),
		RateLimit:               viper.GetString("RATE_LIMIT"),
		PostHogAPIKey:           viper.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.CredentialEncryptionKey == "" {
		log.Println("Warning: CREDENTIAL_ENCRYPTION_KEY not set. Stored provider credentials cannot be read.")
	}

	var err error
	if cfg.ProviderFetchTimeout, err = parseDuration("PROVIDER_FETCH_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.ProviderRetryInitial, err = parseDuration("PROVIDER_RETRY_INITIAL"); err != nil {
		return nil, err
	}

	cfg.TaxPolicy.Jurisdiction = viper.GetString("TAX_JURISDICTION")
	for key, target := range rateKeys(cfg) {
		rate, err := parseRate(key)
		if err != nil {
			return nil, err
		}
		*target = rate
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

// parseRate reads a fraction and rejects anything outside [0, 1].
func parseRate(key string) (decimal.Decimal, error) {
	raw := viper.GetString(key)
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("invalid value for %s: %s is not a fraction between 0 and 1", key, rate)
	}
	return rate, nil
}
