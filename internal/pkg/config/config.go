package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL bounds how long an issued bearer token stays valid.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=30m"`
	// BcryptCost is the password-hashing work factor.
	BcryptCost int `env:"BCRYPT_COST, default=12"`

	SQLite SQLiteConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=data/resumes.db"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
