package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string
	ServiceName string
	Version     string
	LogDir      string

	StoreBackend string `validate:"oneof=memory postgres"`
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string
	DBMaxConns   int `validate:"min=1"`

	// Game rules
	SpinCost             int64  `validate:"gt=0"`
	SpinWinThreshold     uint64 `validate:"ltefield=SpinModulus"`
	SpinModulus          uint64 `validate:"gt=0"`
	SpinPayoutMultiplier int64  `validate:"gte=0"`

	// Token ledger
	LedgerBackend  string `validate:"oneof=memory http"`
	LedgerURL      string `validate:"required_if=LedgerBackend http"`
	LedgerSecret   string `validate:"required_if=LedgerBackend http"`
	CustodyAccount string `validate:"required"`
	TokenSymbol    string
	TokenDecimals  int32 `validate:"gte=0,lte=36"`

	// Randomness oracle
	OracleBackend       string `validate:"oneof=local http"`
	OracleURL           string `validate:"required_if=OracleBackend http"`
	OracleID            string `validate:"required"`
	OracleSecret        string `validate:"required"`
	OracleCallbackURL   string
	OracleDeliveryDelay time.Duration

	// Background work
	WorkerCount         int `validate:"min=1"`
	WorkerQueueSize     int `validate:"min=1"`
	PayoutRetrySchedule string
	PoolMonitorSchedule string
	PoolLowWatermark    int64 `validate:"gte=0"`

	// Fan-out
	RedisURL            string
	DiscordWebhookID    string
	DiscordWebhookToken string
	EventDeadLetterPath string

	// HTTP rate limiting
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"min=1"`
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "brandish-spin"),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", "logs"),

		StoreBackend: getEnv("STORE_BACKEND", "memory"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "brandishspin"),
		DBMaxConns:   getEnvAsInt("DB_MAX_CONNS", 20),

		SpinCost:             getEnvAsInt64("SPIN_COST", DefaultSpinCost),
		SpinWinThreshold:     getEnvAsUint64("SPIN_WIN_THRESHOLD", DefaultSpinWinThreshold),
		SpinModulus:          getEnvAsUint64("SPIN_MODULUS", DefaultSpinModulus),
		SpinPayoutMultiplier: getEnvAsInt64("SPIN_PAYOUT_MULTIPLIER", DefaultSpinPayoutMultiplier),

		LedgerBackend:  getEnv("LEDGER_BACKEND", "memory"),
		LedgerURL:      getEnv("LEDGER_URL", ""),
		LedgerSecret:   getEnv("LEDGER_SECRET", ""),
		CustodyAccount: getEnv("CUSTODY_ACCOUNT", DefaultCustodyAccount),
		TokenSymbol:    getEnv("TOKEN_SYMBOL", DefaultTokenSymbol),
		TokenDecimals:  int32(getEnvAsInt("TOKEN_DECIMALS", DefaultTokenDecimals)),

		OracleBackend:       getEnv("ORACLE_BACKEND", "local"),
		OracleURL:           getEnv("ORACLE_URL", ""),
		OracleID:            getEnv("ORACLE_ID", DefaultOracleID),
		OracleSecret:        getEnv("ORACLE_SECRET", ""),
		OracleCallbackURL:   getEnv("ORACLE_CALLBACK_URL", ""),
		OracleDeliveryDelay: getEnvAsDuration("ORACLE_DELIVERY_DELAY", DefaultOracleDeliveryDelay),

		WorkerCount:         getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:     getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		PayoutRetrySchedule: getEnv("PAYOUT_RETRY_SCHEDULE", DefaultPayoutRetrySchedule),
		PoolMonitorSchedule: getEnv("POOL_MONITOR_SCHEDULE", DefaultPoolMonitorSchedule),
		PoolLowWatermark:    getEnvAsInt64("POOL_LOW_WATERMARK", 0),

		RedisURL:            getEnv("REDIS_URL", ""),
		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.OracleSecret == "" {
		return nil, fmt.Errorf("ORACLE_SECRET environment variable must be set to authenticate oracle callbacks")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	v, err := strconv.ParseUint(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SpinConfig returns the game parameters
func (c *Config) SpinConfig() domain.SpinConfig {
	return domain.SpinConfig{
		Cost:             c.SpinCost,
		WinThreshold:     c.SpinWinThreshold,
		Modulus:          c.SpinModulus,
		PayoutMultiplier: c.SpinPayoutMultiplier,
	}
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
