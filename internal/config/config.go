package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// DynamoDB
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	ClientsTable       string `mapstructure:"CLIENTS_TABLE"`
	PartsTable         string `mapstructure:"PARTS_TABLE"`
	MotorsTable        string `mapstructure:"MOTORS_TABLE"`
	BudgetsTable       string `mapstructure:"BUDGETS_TABLE"`
	BudgetItemsTable   string `mapstructure:"BUDGET_ITEMS_TABLE"`
	PaymentsTable      string `mapstructure:"PAYMENTS_TABLE"`

	// Redis parts cache; an empty URL disables it
	RedisURL             string `mapstructure:"REDIS_URL"`
	PartsCacheTTLSeconds int    `mapstructure:"PARTS_CACHE_TTL_SECONDS"`

	// Auth
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Pricing
	OperatorDiscountCap float64 `mapstructure:"OPERATOR_DISCOUNT_CAP"`
	AdminDiscountCap    float64 `mapstructure:"ADMIN_DISCOUNT_CAP"`

	// Mercado Pago
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoPayerEmail  string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoPayerUserID string `mapstructure:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock     string `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	// Shop header printed on documents
	ShopName    string `mapstructure:"SHOP_NAME"`
	ShopPhone   string `mapstructure:"SHOP_PHONE"`
	ShopAddress string `mapstructure:"SHOP_ADDRESS"`
}

var defaults = map[string]any{
	"PORT":                           8080,
	"APP_ENV":                        "development",
	"AWS_REGION":                     "us-east-1",
	"AWS_ACCESS_KEY_ID":              "local",
	"AWS_SECRET_ACCESS_KEY":          "local",
	"DYNAMODB_ENDPOINT":              "",
	"CLIENTS_TABLE":                  "clients",
	"PARTS_TABLE":                    "parts",
	"MOTORS_TABLE":                   "motors",
	"BUDGETS_TABLE":                  "budgets",
	"BUDGET_ITEMS_TABLE":             "budget_items",
	"PAYMENTS_TABLE":                 "payments",
	"REDIS_URL":                      "",
	"PARTS_CACHE_TTL_SECONDS":        300,
	"JWT_SECRET":                     "",
	"OPERATOR_DISCOUNT_CAP":          7,
	"ADMIN_DISCOUNT_CAP":             100,
	"MERCADOPAGO_ACCESS_TOKEN":       "",
	"MERCADOPAGO_TEST_PAYER_EMAIL":   "",
	"MERCADOPAGO_TEST_PAYER_USER_ID": "",
	"PAYMENT_GATEWAY_MOCK":           "",
	"SHOP_NAME":                      "Rebobinagem de Motores",
	"SHOP_PHONE":                     "",
	"SHOP_ADDRESS":                   "",
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Every key needs a default so Unmarshal sees values coming from the environment.
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	// Optional .env file for local development, does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// PaymentMockEnabled accepts the same truthy spellings the deploy scripts use.
func (c *Config) PaymentMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.PaymentGatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func (c *Config) PartsCacheTTL() time.Duration {
	if c.PartsCacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.PartsCacheTTLSeconds) * time.Second
}

func (c *Config) DiscountCaps() (operator, admin decimal.Decimal) {
	return decimal.NewFromFloat(c.OperatorDiscountCap), decimal.NewFromFloat(c.AdminDiscountCap)
}
