package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Fees    FeesConfig    `mapstructure:"fees"`
	Token   TokenConfig   `mapstructure:"token"`
	Mock    MockConfig    `mapstructure:"mock"`
	Log     LogConfig     `mapstructure:"log"`
}

// BackendConfig points at the exchange backend.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthConfig carries the fixed fields of the sign-in challenge message.
// Domain and URI are part of the wire contract: the backend reconstructs
// the message from them and rejects a mismatch.
type AuthConfig struct {
	Domain    string `mapstructure:"domain"`
	URI       string `mapstructure:"uri"`
	Statement string `mapstructure:"statement"`
	ChainID   int64  `mapstructure:"chain_id"`
}

// FeesConfig holds the platform fee rates, in percent.
type FeesConfig struct {
	MakerRatePct string `mapstructure:"maker_rate_pct"`
	TakerRatePct string `mapstructure:"taker_rate_pct"`
}

// TokenConfig identifies the ERC-20 token the deposit path moves.
type TokenConfig struct {
	Contract string `mapstructure:"contract"`
	Decimals int32  `mapstructure:"decimals"`
}

// MockConfig configures the bundled mock exchange server (dev tool).
type MockConfig struct {
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Mode      string        `mapstructure:"mode"` // debug, release, test
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
	NonceTTL  time.Duration `mapstructure:"nonce_ttl"`
}

// Addr returns the mock server bind address.
func (m MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GG_ (GoldenGate).
// Nested keys use underscore: GG_BACKEND_BASE_URL, GG_MOCK_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("backend.base_url", "http://localhost:8080")
	v.SetDefault("backend.timeout", "30s")
	v.SetDefault("auth.domain", "goldengate.exchange")
	v.SetDefault("auth.uri", "https://goldengate.exchange")
	v.SetDefault("auth.statement", "Sign in to goldengate")
	v.SetDefault("auth.chain_id", 1)
	v.SetDefault("fees.maker_rate_pct", "0.5")
	v.SetDefault("fees.taker_rate_pct", "0.5")
	v.SetDefault("token.contract", "")
	v.SetDefault("token.decimals", 18)
	v.SetDefault("mock.host", "0.0.0.0")
	v.SetDefault("mock.port", 8080)
	v.SetDefault("mock.mode", "debug")
	v.SetDefault("mock.jwt_secret", "")
	v.SetDefault("mock.jwt_expiry", "24h")
	v.SetDefault("mock.nonce_ttl", "5m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GG_BACKEND_BASE_URL -> backend.base_url
	v.SetEnvPrefix("GG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
