package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for authentication on the invocation surface

	// TrustedProxies are the proxy IPs whose X-Forwarded-For headers are
	// believed when attributing client addresses.
	TrustedProxies []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Lottery identity keypair (hex). The public key is the author of all
	// lottery notes; the private key signs announcements and payouts.
	NostrPublicKey  string
	NostrPrivateKey string

	// Relays the lottery reads zaps from and publishes notes to.
	Relays []string

	// Payment ledger provider (Alby-style REST API).
	LedgerBaseURL  string
	LedgerLogin    string
	LedgerPassword string

	// Nostr Wallet Connect connection string for payout dispatch.
	WalletConnectURL string

	// FeeRate is the fraction of the pool kept as a fee.
	FeeRate float64

	// Scheduler intervals; zero disables a job (an external cron can hit
	// the HTTP surface instead).
	AnnounceInterval time.Duration
	DrawInterval     time.Duration

	// RelayTimeout bounds every relay query within one invocation.
	RelayTimeout time.Duration
}

// DefaultRelays mirror the relay set the lottery launched with. Overridden
// via NOSTR_RELAYS (comma-separated).
var DefaultRelays = []string{
	"wss://nos.lol",
	"wss://relay.damus.io",
	"wss://offchain.pub",
	"wss://relay.nostr.band",
	"wss://relay.snort.social",
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, "info"),
		LogFormat:        getEnv(EnvLogFormat, "text"),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, "dev"),
		Environment:      getEnv(EnvEnvironment, "dev"),
		APIKey:           getEnv(EnvAPIKey, ""),
		DBUser:           getEnv(EnvDBUser, "postgres"),
		DBPassword:       getEnv(EnvDBPassword, "postgres"),
		DBHost:           getEnv(EnvDBHost, "localhost"),
		DBPort:           getEnv(EnvDBPort, "5432"),
		DBName:           getEnv(EnvDBName, "luckstr"),
		NostrPublicKey:   getEnv(EnvNostrPublicKey, ""),
		NostrPrivateKey:  getEnv(EnvNostrPrivateKey, ""),
		LedgerBaseURL:    getEnv(EnvLedgerBaseURL, DefaultLedgerBaseURL),
		LedgerLogin:      getEnv(EnvLedgerLogin, ""),
		LedgerPassword:   getEnv(EnvLedgerPassword, ""),
		WalletConnectURL: getEnv(EnvWalletConnectURL, ""),
		FeeRate:          getEnvAsFloat(EnvFeeRate, DefaultFeeRate),
		AnnounceInterval: getEnvAsDuration(EnvAnnounceInterval, 0),
		DrawInterval:     getEnvAsDuration(EnvDrawInterval, 0),
		RelayTimeout:     getEnvAsDuration(EnvRelayTimeout, DefaultRelayTimeout),
	}

	cfg.Port = getEnvAsInt(EnvPort, 8080)

	if proxies := getEnv(EnvTrustedProxies, ""); proxies != "" {
		cfg.TrustedProxies = splitAndTrim(proxies)
	}

	if relays := getEnv(EnvRelays, ""); relays != "" {
		cfg.Relays = splitAndTrim(relays)
	} else {
		cfg.Relays = append([]string(nil), DefaultRelays...)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set for security", EnvAPIKey)
	}

	if cfg.NostrPublicKey == "" || cfg.NostrPrivateKey == "" {
		return nil, fmt.Errorf("%s and %s must both be set", EnvNostrPublicKey, EnvNostrPrivateKey)
	}

	if cfg.FeeRate < 0 || cfg.FeeRate >= 1 {
		return nil, fmt.Errorf("invalid %s value: %v (must be in [0,1))", EnvFeeRate, cfg.FeeRate)
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

// getEnvAsInt retrieves an environment variable as an int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsFloat retrieves an environment variable as a float64 or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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
