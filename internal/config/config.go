package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded once at startup and passed
// explicitly to the components that need it.
type Config struct {
	Addr        string
	TokenSecret []byte
	TokenTTL    time.Duration
}

// Load reads .env when present, then the process environment. The token
// secret is mandatory.
func Load() (Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	ttlMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", v)
		}
		ttlMinutes = n
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:        addr,
		TokenSecret: []byte(secret),
		TokenTTL:    time.Duration(ttlMinutes) * time.Minute,
	}, nil
}
