package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Unlock   UnlockConfig   `mapstructure:"unlock"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type WalletConfig struct {
	// Network selects the chain parameters used for address derivation:
	// mainnet, testnet, simnet.
	Network string `mapstructure:"network"`
	// MaxGap is the default address gap limit for wallets that do not
	// request one explicitly.
	MaxGap int `mapstructure:"max_gap"`
	// RewardSpendMinBlocks is the number of blocks a block reward output
	// stays height-locked after the block that created it.
	RewardSpendMinBlocks int64 `mapstructure:"reward_spend_min_blocks"`
	// MaxLoadRetries bounds how many times a failed wallet load is retried
	// before the wallet is left in ERROR state.
	MaxLoadRetries int `mapstructure:"max_load_retries"`
}

type UnlockConfig struct {
	// Interval between lazy unlock maintenance passes.
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WIX_ (Wallet IndeXer).
// Nested keys use underscore: WIX_DATABASE_HOST, WIX_WALLET_MAX_GAP, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_indexer")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("wallet.network", "mainnet")
	v.SetDefault("wallet.max_gap", 20)
	v.SetDefault("wallet.reward_spend_min_blocks", 300)
	v.SetDefault("wallet.max_load_retries", 5)
	v.SetDefault("unlock.interval", "30s")
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

	// Environment variables: WIX_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration values that have no safe fallback.
func (c *Config) Validate() error {
	switch c.Wallet.Network {
	case "mainnet", "testnet", "simnet":
	default:
		return fmt.Errorf("invalid wallet.network %q", c.Wallet.Network)
	}
	if c.Wallet.MaxGap <= 0 {
		return fmt.Errorf("wallet.max_gap must be positive, got %d", c.Wallet.MaxGap)
	}
	if c.Wallet.RewardSpendMinBlocks < 0 {
		return fmt.Errorf("wallet.reward_spend_min_blocks must not be negative")
	}
	return nil
}
