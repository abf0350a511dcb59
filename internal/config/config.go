package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Supported report languages.
var languages = []string{"ru", "en"}

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataDir        string
	DateLayout     string
	ReportLanguage string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	KafkaBrokers        []string
	KafkaTopic          string
	KafkaPublishEnabled bool
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is loaded first if present;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:        sharedcfg.EnvOrDefault("DATA_DIR", "data"),
		DateLayout:     sharedcfg.EnvOrDefault("DATE_LAYOUT", "02/01/2006"),
		ReportLanguage: strings.ToLower(sharedcfg.EnvOrDefault("REPORT_LANGUAGE", "ru")),

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:        sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:          sharedcfg.EnvOrDefault("KAFKA_TOPIC", "pollen-season-summaries"),
		KafkaPublishEnabled: os.Getenv("KAFKA_PUBLISH_ENABLED") == "true",
	}

	if err := ValidateDateLayout(cfg.DateLayout); err != nil {
		return nil, err
	}
	if err := ValidateLanguage(cfg.ReportLanguage); err != nil {
		return nil, err
	}
	if cfg.KafkaPublishEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_PUBLISH_ENABLED is true")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_TOPIC is required when KAFKA_PUBLISH_ENABLED is true")
		}
	}

	return cfg, nil
}

// ValidateDateLayout checks that layout carries day, month, and year by
// formatting a reference date and parsing it back.
func ValidateDateLayout(layout string) error {
	ref := time.Date(2021, time.April, 23, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	if err != nil || !parsed.Equal(ref) {
		return fmt.Errorf("invalid DATE_LAYOUT %q: must encode day, month and year", layout)
	}
	return nil
}

// ValidateLanguage checks that lang is a supported report language.
func ValidateLanguage(lang string) error {
	for _, l := range languages {
		if lang == l {
			return nil
		}
	}
	return fmt.Errorf("invalid REPORT_LANGUAGE %q: want one of %s", lang, strings.Join(languages, ", "))
}
