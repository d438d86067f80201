package config

import "time"

// Environment variable names
const (
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvEnvironment    = "ENVIRONMENT"
	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBName     = "DB_NAME"

	EnvNostrPublicKey  = "NOSTR_PUBLIC_KEY"
	EnvNostrPrivateKey = "NOSTR_PRIVATE_KEY"
	EnvRelays          = "NOSTR_RELAYS"

	EnvLedgerBaseURL    = "LEDGER_BASE_URL"
	EnvLedgerLogin      = "LEDGER_LOGIN"
	EnvLedgerPassword   = "LEDGER_PASSWORD"
	EnvWalletConnectURL = "WALLET_CONNECT_URL"

	EnvFeeRate          = "PRIZE_FEE_RATE"
	EnvAnnounceInterval = "ANNOUNCE_INTERVAL"
	EnvDrawInterval     = "DRAW_INTERVAL"
	EnvRelayTimeout     = "RELAY_TIMEOUT"
)

// Defaults
const (
	DefaultServiceName   = "luckstr"
	DefaultLedgerBaseURL = "https://ln.getalby.com"
	DefaultFeeRate       = 0.05
	DefaultRelayTimeout  = 15 * time.Second
)
