package config

import "github.com/caarlos0/env/v6"

type Config struct {
	Server struct {
		// Port the HTTP server listens on
		Port string `env:"PORT" envDefault:"8080"`

		// Gin mode: debug, release, or test
		Mode string `env:"GIN_MODE" envDefault:"debug"`

		// Allowed CORS origins, comma separated
		CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	Database struct {
		// Postgres DSN; when empty the sqlite file below is used instead
		URL string `env:"DATABASE_URL"`

		// Path to the sqlite database file
		SQLitePath string `env:"SQLITE_PATH" envDefault:"database/listings.db"`
	}

	Auth struct {
		// HMAC secret used to verify bearer tokens; tokens are issued externally
		JWTSecret string `env:"JWT_SECRET"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
