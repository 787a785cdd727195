package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine, variables may come
// from the real environment.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Fatal("loading envs error: ", err)
			}
			slog.Info("no env file, using process environment", slog.String("path", envFile))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// GetDuration parses key with time.ParseDuration, falling back on absent or malformed values.
func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("malformed duration in env", slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return d
}
