package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	FileBackend     = "file"
	MemoryBackend   = "memory"
	SQLiteBackend   = "sqlite"
	PostgresBackend = "postgres"
	MongoBackend    = "mongo"
	GCSBackend      = "gcs"
)

type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	Backend          string `env:"LEDGER_BACKEND" envDefault:"file" validate:"oneof=file memory sqlite postgres mongo gcs"`
	LedgerFile       string `env:"LEDGER_FILE" envDefault:"finance_data.json"`
	LedgerName       string `env:"LEDGER_NAME" envDefault:"default" validate:"required,max=128"`
	CurrencySymbol   string `env:"CURRENCY_SYMBOL" envDefault:"₹"`
	SQLitePath       string `env:"SQLITE_PATH" envDefault:"finance_data.db"`
	PostgresEndpoint string `env:"POSTGRES_ENDPOINT"`
	Mongo            Mongo    `envPrefix:"MONGO_"`
	GCS              GCS      `envPrefix:"GCS_"`
	Kafka            Kafka    `envPrefix:"KAFKA_"`
	Telegram         Telegram `envPrefix:"TELEGRAM_"`
}

type Mongo struct {
	URI        string `env:"URI"`
	Database   string `env:"DATABASE" envDefault:"finance"`
	Collection string `env:"COLLECTION" envDefault:"ledgers"`
}

type GCS struct {
	Bucket string `env:"BUCKET"`
	Object string `env:"OBJECT" envDefault:"finance_data.json"`
	// Endpoint points the client at an emulator; credentials are skipped when it is set
	Endpoint string `env:"ENDPOINT"`
}

type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"ledger-entries"`
}

type Telegram struct {
	Token        string  `env:"TOKEN"`
	Timeout      int     `env:"TIMEOUT" envDefault:"60" validate:"gte=0"`
	AllowedChats []int64 `env:"ALLOWED_CHATS" envSeparator:","`
}

// New loads an optional .env file, then reads the environment.
// Variables already set in the environment win over the .env file.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.New, godotenv.Load error: %w", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.New, env.Parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterStructValidation(backendSettings, Config{})
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config.Validate error: %w", err)
	}
	return nil
}

// backendSettings requires the settings of the selected backend only.
func backendSettings(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	switch cfg.Backend {
	case FileBackend:
		if cfg.LedgerFile == "" {
			sl.ReportError(cfg.LedgerFile, "LEDGER_FILE", "LedgerFile", "required", "")
		}
	case SQLiteBackend:
		if cfg.SQLitePath == "" {
			sl.ReportError(cfg.SQLitePath, "SQLITE_PATH", "SQLitePath", "required", "")
		}
	case PostgresBackend:
		if cfg.PostgresEndpoint == "" {
			sl.ReportError(cfg.PostgresEndpoint, "POSTGRES_ENDPOINT", "PostgresEndpoint", "required", "")
		}
	case MongoBackend:
		if cfg.Mongo.URI == "" {
			sl.ReportError(cfg.Mongo.URI, "MONGO_URI", "URI", "required", "")
		}
	case GCSBackend:
		if cfg.GCS.Bucket == "" {
			sl.ReportError(cfg.GCS.Bucket, "GCS_BUCKET", "Bucket", "required", "")
		}
	}
}
