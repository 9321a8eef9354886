package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "lifefin-backend"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	DBMaxConns         int32
	MigrationsPath     string
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	PosthogAPIKey      string
	CORSAllowedOrigins []string

	// Rates in ulule/limiter format, e.g. "5-M".
	LoginRateLimit     string
	LoanApplyRateLimit string

	// Scoring defaults used until an admin stores a score config.
	Score              domain.ScoreConfig
	EnforceLoanCeiling bool
	Simulation         domain.SimulationConfig

	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
	// ServiceVersion is reported on traces, usually the release tag.
	ServiceVersion string
}

// Environment is the deployment environment reported to tracing.
func (c *Config) Environment() string {
	if c.IsProduction {
		return "production"
	}
	return "development"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	defaultScore := domain.DefaultScoreConfig()
	defaultSim := domain.DefaultSimulationConfig()

	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("LOAN_APPLY_RATE_LIMIT", "10-H")
	v.SetDefault("SCORE_BASE", defaultScore.Base)
	v.SetDefault("SCORE_TRX_WEIGHT", defaultScore.TrxWeight)
	v.SetDefault("SCORE_SAVING_WEIGHT", defaultScore.SavingWeight)
	v.SetDefault("ENFORCE_LOAN_CEILING", true)
	v.SetDefault("SIM_HIGH_LOSS_BELOW", defaultSim.HighLossBelow)
	v.SetDefault("SIM_HIGH_BOOST_ABOVE", defaultSim.HighBoostAbove)
	v.SetDefault("SIM_HIGH_BOOST_FACTOR", defaultSim.HighBoostFactor.String())
	v.SetDefault("SIM_HIGH_LOSS_RATE", defaultSim.HighLossRate.String())
	v.SetDefault("SIM_MEDIUM_CORRECTION_BELOW", defaultSim.MediumCorrectionBelow)
	v.SetDefault("SIM_MEDIUM_CORRECTION_RATE", defaultSim.MediumCorrectionRate.String())
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
	v.SetDefault("SERVICE_VERSION", "dev")

	// Actual environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.DBMaxConns = v.GetInt32("DB_MAX_CONNS")
	if cfg.DBMaxConns < 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must not be negative")
	}
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.LoanApplyRateLimit = v.GetString("LOAN_APPLY_RATE_LIMIT")
	cfg.EnforceLoanCeiling = v.GetBool("ENFORCE_LOAN_CEILING")
	cfg.TracingEnabled = v.GetBool("TRACING_ENABLED")
	cfg.TracingEndpoint = v.GetString("TRACING_ENDPOINT")
	cfg.TracingSampleRatio = v.GetFloat64("TRACING_SAMPLE_RATIO")
	if cfg.TracingSampleRatio <= 0 || cfg.TracingSampleRatio > 1 {
		return nil, fmt.Errorf("TRACING_SAMPLE_RATIO must be within (0, 1]")
	}
	cfg.ServiceVersion = v.GetString("SERVICE_VERSION")

	cfg.Score = domain.ScoreConfig{
		Base:         v.GetInt("SCORE_BASE"),
		TrxWeight:    v.GetInt("SCORE_TRX_WEIGHT"),
		SavingWeight: v.GetInt("SCORE_SAVING_WEIGHT"),
	}
	if err := cfg.Score.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SCORE_* configuration: %w", err)
	}

	cfg.Simulation, err = loadSimulationConfig(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SIM_* configuration: %w", err)
	}

	return cfg, nil
}

func loadSimulationConfig(v *viper.Viper) (domain.SimulationConfig, error) {
	sim := domain.SimulationConfig{
		HighLossBelow:         v.GetFloat64("SIM_HIGH_LOSS_BELOW"),
		HighBoostAbove:        v.GetFloat64("SIM_HIGH_BOOST_ABOVE"),
		MediumCorrectionBelow: v.GetFloat64("SIM_MEDIUM_CORRECTION_BELOW"),
	}
	var err error
	if sim.HighBoostFactor, err = decimalKey(v, "SIM_HIGH_BOOST_FACTOR"); err != nil {
		return sim, err
	}
	if sim.HighLossRate, err = decimalKey(v, "SIM_HIGH_LOSS_RATE"); err != nil {
		return sim, err
	}
	if sim.MediumCorrectionRate, err = decimalKey(v, "SIM_MEDIUM_CORRECTION_RATE"); err != nil {
		return sim, err
	}
	return sim, nil
}

func decimalKey(v *viper.Viper, key string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.GetString(key))
	if err != nil {
		return decimal.Zero, apperrors.NewConfigurationError(key, fmt.Sprintf("not a decimal: %q", v.GetString(key)))
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
