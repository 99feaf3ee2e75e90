package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config describes everything the server reads from its environment. The
// defaults mirror the original single-file deployment: a local sqlite file
// and a fixed secret, so the binary runs with no environment at all.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	SecretKey string `envconfig:"SECRET_KEY" default:"your_secret_key"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"dictionary_game.db"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"dictionary_game"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	SessionExpiresHours int `envconfig:"SESSION_EXPIRES_HOURS" default:"24"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
