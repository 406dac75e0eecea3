package config

import (
	"github.com/caarlos0/env/v11"

	"sedulur-fund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Chain holds the RPC endpoint, contract addresses and signer.
	// Environment variables prefixed with CHAIN_ populate this struct.
	Chain configs.Chain `envPrefix:"CHAIN_"`

	Redis configs.Redis `envPrefix:"REDIS_"`

	IPFS configs.IPFS `envPrefix:"IPFS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
