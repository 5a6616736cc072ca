package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/quotallc/grabbit-rewards/internal/domain"
)

type Config struct {
	Port        string
	Environment string
	Shopify     ShopifyConfig
	Discount    DiscountConfig
	API         APIConfig
	LogLevel    string
}

type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

// DiscountConfig controls code generation and redemption scope.
type DiscountConfig struct {
	CodePrefix string
	Scope      domain.ScopePolicy
}

// APIConfig holds the optional admin API key. KeyHash is a bcrypt hash; when
// empty the /v1 routes are unauthenticated (embedded-app deployments put
// Shopify session auth in front instead).
type APIConfig struct {
	KeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DISCOUNT_CODE_PREFIX", "GRABBIT")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	scope, err := domain.ParseScopePolicy(getEnvOrViper("DISCOUNT_SCOPE", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Shopify: ShopifyConfig{
			ShopDomain:  strings.TrimSpace(getEnvOrViper("SHOPIFY_SHOP_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("SHOPIFY_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2025-07"),
		},
		Discount: DiscountConfig{
			CodePrefix: strings.TrimSpace(getEnvOrViper("DISCOUNT_CODE_PREFIX", "GRABBIT")),
			Scope:      scope,
		},
		API: APIConfig{
			KeyHash: strings.TrimSpace(getEnvOrViper("API_KEY_HASH", "")),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Shopify.ShopDomain == "" {
		return nil, fmt.Errorf("SHOPIFY_SHOP_DOMAIN is required")
	}
	if cfg.Shopify.AccessToken == "" {
		return nil, fmt.Errorf("SHOPIFY_ACCESS_TOKEN is required")
	}
	if cfg.Discount.CodePrefix == "" {
		return nil, fmt.Errorf("DISCOUNT_CODE_PREFIX must not be empty")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
