package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "02/01/2006", cfg.DateLayout)
	assert.Equal(t, "ru", cfg.ReportLanguage)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "pollen-season-summaries", cfg.KafkaTopic)
	assert.False(t, cfg.KafkaPublishEnabled)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/pollen")
	t.Setenv("DATE_LAYOUT", "2006-01-02")
	t.Setenv("REPORT_LANGUAGE", "EN")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-topic")
	t.Setenv("KAFKA_PUBLISH_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/pollen", cfg.DataDir)
	assert.Equal(t, "2006-01-02", cfg.DateLayout)
	assert.Equal(t, "en", cfg.ReportLanguage)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-topic", cfg.KafkaTopic)
	assert.True(t, cfg.KafkaPublishEnabled)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidDateLayout(t *testing.T) {
	t.Setenv("DATE_LAYOUT", "02/01")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATE_LAYOUT")
}

func TestLoad_InvalidLanguage(t *testing.T) {
	t.Setenv("REPORT_LANGUAGE", "de")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_LANGUAGE")
}

func TestLoad_PublishDisabledUnlessTrue(t *testing.T) {
	t.Setenv("KAFKA_PUBLISH_ENABLED", "yes")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaPublishEnabled)
}

func TestValidateDateLayout(t *testing.T) {
	tests := []struct {
		layout string
		valid  bool
	}{
		{"02/01/2006", true},
		{"2006-01-02", true},
		{"02.01.2006", true},
		{"2/1/2006", true},
		{"02/01", false},
		{"01/2006", false},
		{"not a layout", false},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			err := ValidateDateLayout(tt.layout)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
