package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	t.Run("TestDefaults", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{"MONGO_URI": "mongodb://localhost"}))
		require.NoError(t, err)
		assert.Equal(t, "SurveyDB", cfg.MongoDB)
		assert.Equal(t, "8888", cfg.Port)
		assert.Equal(t, devJWTSecret, cfg.JWTSecret)
		assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
		assert.Equal(t, "*", cfg.AllowedOrigins)
		assert.Equal(t, "http://localhost:5173", cfg.PublicBaseURL)
		assert.Equal(t, int64(5), cfg.LoginMaxAttempts)
		assert.Equal(t, 15*time.Minute, cfg.LoginCooldown)
		assert.Empty(t, cfg.RedisURI)
		assert.False(t, cfg.SeedSampleData)
	})

	t.Run("TestOverrides", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{
			"MONGO_URI":          "mongodb://db",
			"MONGO_DB":           "Other",
			"APP_URI":            "3000",
			"JWT_SECRET":         "s3cret",
			"JWT_TTL":            "2h",
			"REDIS_URI":          "localhost:6379",
			"PUBLIC_BASE_URL":    "https://surveys.example.com/",
			"LOGIN_MAX_ATTEMPTS": "3",
			"LOGIN_COOLDOWN":     "1m",
			"SEED_SAMPLE_DATA":   "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, "Other", cfg.MongoDB)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
		assert.Equal(t, "https://surveys.example.com", cfg.PublicBaseURL)
		assert.Equal(t, int64(3), cfg.LoginMaxAttempts)
		assert.Equal(t, time.Minute, cfg.LoginCooldown)
		assert.True(t, cfg.SeedSampleData)
	})

	t.Run("TestErrors", func(t *testing.T) {
		bad := []map[string]string{
			{},
			{"MONGO_URI": "x", "JWT_TTL": "forever"},
			{"MONGO_URI": "x", "LOGIN_COOLDOWN": "-1m"},
			{"MONGO_URI": "x", "LOGIN_MAX_ATTEMPTS": "0"},
		}
		for _, m := range bad {
			_, err := FromEnv(env(m))
			assert.Error(t, err, "%v", m)
		}
	})
}
