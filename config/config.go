package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type Server struct {
	Env      string `envconfig:"ENV"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	Port     string `envconfig:"PORT" default:"5000"`
	Host     string `envconfig:"HOST"`
	Shutdown struct {
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
	} `envconfig:"SHUTDOWN"`
}

type CORS struct {
	Enable           bool     `envconfig:"ENABLE"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
}

type App struct {
	Name        string      `envconfig:"NAME" default:"skyline-retreat"`
	Timezone    string      `envconfig:"TIMEZONE"`
	APIKey      string      `envconfig:"API_KEY"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
}

type Cache struct {
	TTL   int `envconfig:"TTL"`
	Redis struct {
		Primary struct {
			Host     string `envconfig:"HOST"`
			Port     string `envconfig:"PORT"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
}

type JWT struct {
	AccessSecret     string `envconfig:"ACCESS_SECRET"`
	RefreshSecret    string `envconfig:"REFRESH_SECRET"`
	AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
	RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
}

type DB struct {
	Postgres struct {
		MaxRetry       int          `envconfig:"MAX_RETRY"`
		RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME"`
		MigrationTable string       `envconfig:"MIGRATION_TABLE"`
		AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
		Prefix         string       `envconfig:"PREFIX"`
		Read           PostgresNode `envconfig:"READ"`
		Write          PostgresNode `envconfig:"WRITE"`
	} `envconfig:"POSTGRES"`
}

type External struct {
	Otel struct {
		Endpoint string `envconfig:"ENDPOINT"`
	} `envconfig:"OTEL"`
	S3 struct {
		APIEndpoint     string `envconfig:"API_ENDPOINT"`
		AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
		SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		BucketName      string `envconfig:"BUCKET_NAME"`
		PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		MaxUploadSizeMB int    `envconfig:"MAX_UPLOAD_SIZE_MB" default:"2"`
	} `envconfig:"S3"`
}

type Kafka struct {
	Enable        bool     `envconfig:"ENABLE"`
	Brokers       []string `envconfig:"BROKERS"`
	ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"skyline-worker"`
	SASL          struct {
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
	} `envconfig:"SASL"`
	Topic struct {
		Booking string `envconfig:"BOOKING" default:"skyline.booking"`
	} `envconfig:"TOPIC"`
}

// Seed describes the admin account created by cmd/seed.
type Seed struct {
	AdminName     string `envconfig:"ADMIN_NAME" default:"Hotel Admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminPhone    string `envconfig:"ADMIN_PHONE"`
}

type Config struct {
	Server   Server   `envconfig:"SERVER"`
	App      App      `envconfig:"APP"`
	Cache    Cache    `envconfig:"CACHE"`
	JWT      JWT      `envconfig:"JWT"`
	DB       DB       `envconfig:"DB"`
	External External `envconfig:"EXTERNAL"`
	Kafka    Kafka    `envconfig:"KAFKA"`
	Seed     Seed     `envconfig:"SEED"`
}

// Load reads the optional dotenv files into the environment, then decodes it. A
// missing file is fine; the process environment alone is enough.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)

		switch {
		case err == nil:
			log.Info().Str("file", file).Msg("loaded environment file")
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("file", file).Msg("environment file not found, using process environment")
		default:
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	return cfg, nil
}

var get = sync.OnceValue(func() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	return cfg
})

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	return get()
}
