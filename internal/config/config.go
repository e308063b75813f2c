package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

const defaultAllowedOrigin = "https://pass-o-ppasswordmanager.vercel.app"

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	StoreDriver string

	JWTSecret string
	JWTExpiry time.Duration
	JWTIssuer string

	BcryptCost int

	AllowedOrigins []string

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

// Error reports a missing or malformed configuration value.
type Error struct {
	Key    string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtExpiry, err := getDuration("JWT_EXPIRY", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	bcryptCost, err := getInt("BCRYPT_COST", 10, 4, 31)
	if err != nil {
		return nil, err
	}

	jwtSecret, err := getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),

		JWTSecret: jwtSecret,
		JWTExpiry: jwtExpiry,
		JWTIssuer: getEnv("JWT_ISSUER", "passvault"),

		BcryptCost: bcryptCost,

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultAllowedOrigin)),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		ShutdownTimeout: shutdownTimeout,
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, &Error{Key: "DATABASE_URL", Reason: "required when STORE_DRIVER=postgres"}
		}
	case StoreDriverMemory:
	default:
		return nil, &Error{Key: "STORE_DRIVER", Reason: fmt.Sprintf("unsupported driver %q", cfg.StoreDriver)}
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getRequiredEnv(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", &Error{Key: key, Reason: "required environment variable not set"}
	}
	return value, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &Error{Key: key, Reason: err.Error()}
	}
	if d <= 0 {
		return 0, &Error{Key: key, Reason: "must be positive"}
	}
	return d, nil
}

func getInt(key string, fallback, min, max int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &Error{Key: key, Reason: "not an integer"}
	}
	if n < min || n > max {
		return 0, &Error{Key: key, Reason: fmt.Sprintf("out of range [%d..%d]", min, max)}
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
