package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
	MetricsEnabled     bool

	// Reporting
	ReportQueryTimeout time.Duration
	COGSEstimateRatio  decimal.Decimal
	UnknownUserLabel   string

	// Settlements
	SettlementMaxRetries int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "retail-ledger")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("REPORT_QUERY_TIMEOUT", "15s")
	v.SetDefault("COGS_ESTIMATE_RATIO", "0.60")
	v.SetDefault("UNKNOWN_USER_LABEL", "Unknown user")
	v.SetDefault("SETTLEMENT_MAX_RETRIES", 3)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		MetricsEnabled:       v.GetBool("METRICS_ENABLED"),
		UnknownUserLabel:     v.GetString("UNKNOWN_USER_LABEL"),
		SettlementMaxRetries: v.GetInt("SETTLEMENT_MAX_RETRIES"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("REPORT_QUERY_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for REPORT_QUERY_TIMEOUT ('%s'). Defaulting to %s.\n", v.GetString("REPORT_QUERY_TIMEOUT"), timeout)
	}
	cfg.ReportQueryTimeout = timeout

	ratio, err := decimal.NewFromString(v.GetString("COGS_ESTIMATE_RATIO"))
	if err != nil || ratio.IsNegative() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.RequireFromString("0.60")
		log.Printf("Warning: Invalid value for COGS_ESTIMATE_RATIO ('%s'). Defaulting to %s.\n", v.GetString("COGS_ESTIMATE_RATIO"), ratio)
	}
	cfg.COGSEstimateRatio = ratio

	if cfg.SettlementMaxRetries < 0 {
		cfg.SettlementMaxRetries = 0
	}
	if cfg.UnknownUserLabel == "" {
		cfg.UnknownUserLabel = "Unknown user"
	}

	return cfg, nil
}
