package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug      bool `env:"DEBUG" envDefault:"false"`
	Production bool `env:"PRODUCTION" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
		// Directory with the built dashboard assets, served behind the
		// route guard. Empty disables page serving.
		StaticDir string `env:"STATIC_DIR" envDefault:""`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Upstream struct {
		// Base URL of the TURNAICASH API, e.g. https://api.turnaicash.com/api
		BaseURL    string `env:"UPSTREAM_BASE_URL,required"`
		TimeoutSec int    `env:"UPSTREAM_TIMEOUT_SEC" envDefault:"15"`
	}

	Cache struct {
		// TTL in seconds for cached list queries. Mutations invalidate
		// eagerly; the TTL only bounds the stale window for writes that
		// happen outside this gateway.
		QueryTTLSec int `env:"CACHE_QUERY_TTL_SEC" envDefault:"30"`
	}

	Partner struct {
		// Cashdesk API of the partner payment system used to pre-validate
		// player account ids before a user-app-id is created.
		BaseURL string `env:"PARTNER_BASE_URL" envDefault:""`
		APIKey  string `env:"PARTNER_API_KEY" envDefault:""`
		// Currency the looked-up player must be registered on.
		CurrencyID int `env:"PARTNER_CURRENCY_ID" envDefault:"27"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Missing .env is fine; in production the variables are set
		// directly in the environment.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
