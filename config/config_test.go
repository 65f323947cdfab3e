package config_test

import (
	"os"
	"path/filepath"
	"skyline/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a dotenv file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "skyline-retreat", cfg.App.Name)
		assert.Equal(t, 2, cfg.External.S3.MaxUploadSizeMB)
		assert.Equal(t, "skyline.booking", cfg.Kafka.Topic.Booking)
		assert.Equal(t, "Hotel Admin", cfg.Seed.AdminName)
	})

	t.Run("dotenv and process environment", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(file, []byte("DB_POSTGRES_WRITE_HOST=db.internal\nAPP_RATE_LIMITER_MAX_REQUESTS=50\n"), 0o600))

		t.Setenv("DB_POSTGRES_WRITE_HOST", "")
		t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "")
		os.Unsetenv("DB_POSTGRES_WRITE_HOST")
		os.Unsetenv("APP_RATE_LIMITER_MAX_REQUESTS")
		t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

		cfg, err := config.Load(file)

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
		assert.Equal(t, 50, cfg.App.RateLimiter.MaxRequests)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "forever")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.Error(t, err)
	})
}
