package configs

import "time"

// Redis configures the read cache. An empty Address selects the in-process
// cache.
type Redis struct {
	Address string        `env:"ADDRESS"`
	TTL     time.Duration `env:"TTL" envDefault:"30s"`
}
