package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"jamjam-resort-api/logger"
)

// Configuration is everything the API reads from the environment (or a .env file).
type Configuration struct {
	Port     string `env:"PORT" envDefault:"3000"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug" validate:"oneof=debug release test"`
	InitMode bool   `env:"INIT_MODE" envDefault:"true"` // provision tables, bucket CORS and defaults at startup

	// Document store
	StoreDriver string `env:"STORE_DRIVER" envDefault:"dynamodb" validate:"oneof=dynamodb sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"jamjam_resort.db"`
	TablePrefix string `env:"TABLE_PREFIX" envDefault:"JamJam"`

	// AWS
	AWSRegion          string `env:"AWS_REGION" envDefault:"ap-south-1" validate:"required"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	S3Endpoint         string `env:"S3_ENDPOINT" validate:"omitempty,url"`

	// Object store
	S3Bucket        string        `env:"S3_BUCKET" envDefault:"jamjam-resort-images" validate:"required"`
	UploadURLExpiry time.Duration `env:"UPLOAD_URL_EXPIRY" envDefault:"1h" validate:"gt=0"`

	// Reports
	ReportTimezone string `env:"REPORT_TIMEZONE" envDefault:"Local"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

// Load reads .env (when present) and then the process environment.
func Load(files ...string) (*Configuration, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
	}
	return cfg, nil
}

// Location is the time zone reports compute "today", month and year boundaries in.
func (c *Configuration) Location() (*time.Location, error) {
	if c.ReportTimezone == "" || c.ReportTimezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.ReportTimezone)
}

// Logger maps the logging keys onto the logger package's config.
func (c *Configuration) Logger() logger.Config {
	return logger.Config{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		File:       c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}
