package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "your_secret_key" // fallback for development

type Config struct {
	MongoURI         string
	MongoDB          string
	Port             string
	JWTSecret        string
	JWTTTL           time.Duration
	RedisURI         string
	AllowedOrigins   string
	PublicBaseURL    string
	LoginMaxAttempts int64
	LoginCooldown    time.Duration
	SeedSampleData   bool
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		MongoURI:       getenv("MONGO_URI"),
		MongoDB:        withDefault(getenv("MONGO_DB"), "SurveyDB"),
		Port:           withDefault(getenv("APP_URI"), "8888"),
		JWTSecret:      getenv("JWT_SECRET"),
		RedisURI:       getenv("REDIS_URI"),
		AllowedOrigins: withDefault(getenv("ALLOWED_ORIGINS"), "*"),
		PublicBaseURL:  strings.TrimRight(withDefault(getenv("PUBLIC_BASE_URL"), "http://localhost:5173"), "/"),
		SeedSampleData: getenv("SEED_SAMPLE_DATA") == "true",
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI environment variable not set")
	}
	if cfg.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET not set, using development secret")
		cfg.JWTSecret = devJWTSecret
	}

	var err error
	if cfg.JWTTTL, err = duration(getenv, "JWT_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.LoginCooldown, err = duration(getenv, "LOGIN_COOLDOWN", 15*time.Minute); err != nil {
		return Config{}, err
	}

	cfg.LoginMaxAttempts = 5
	if raw := getenv("LOGIN_MAX_ATTEMPTS"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("LOGIN_MAX_ATTEMPTS: expected positive integer, got %q", raw)
		}
		cfg.LoginMaxAttempts = n
	}

	return cfg, nil
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: expected positive duration, got %q", key, raw)
	}
	return d, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
