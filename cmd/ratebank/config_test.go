package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-ratebank/internal"
	"service-ratebank/internal/ratecache"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := configFromEnv(envOf(map[string]string{"JSONRATES_API_KEY": " key "}))

	require.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, ratecache.Straight, cfg.Policy)
	assert.Equal(t, "@every 1m", cfg.CronSpec)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Zero(t, cfg.TTL)
	assert.Zero(t, cfg.RPS)
	assert.Empty(t, cfg.WarmPairs)
	assert.Empty(t, cfg.AdminKey)
}

func TestConfigFromEnv_Full(t *testing.T) {
	cfg, err := configFromEnv(envOf(map[string]string{
		"JSONRATES_API_KEY":  "key",
		"JSONRATES_BASE_URL": "http://localhost:9000",
		"JSONRATES_TIMEOUT":  "3s",
		"JSONRATES_RPS":      "2.5",
		"RATES_MODE":         "Careful",
		"RATES_TTL":          "10m",
		"WARM_PAIRS":         "usd/eur, USD_JPY,,",
		"EXPIRE_CRON":        "*/5 * * * *",
		"ADMIN_API_KEY":      "admin",
		"PORT":               "9090",
		"LOG_LEVEL":          "debug",
		"LOG_FORMAT":         "JSON",
	}))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.InDelta(t, 2.5, cfg.RPS, 1e-9)
	assert.Equal(t, ratecache.Careful, cfg.Policy)
	assert.Equal(t, 10*time.Minute, cfg.TTL)
	assert.Equal(t, []internal.CurrencyPair{
		internal.MustCurrencyPair("USD", "EUR"),
		internal.MustCurrencyPair("USD", "JPY"),
	}, cfg.WarmPairs)
	assert.Equal(t, "*/5 * * * *", cfg.CronSpec)
	assert.Equal(t, "admin", cfg.AdminKey)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{name: "missing api key", vars: map[string]string{}, want: "JSONRATES_API_KEY"},
		{name: "bad timeout", vars: map[string]string{"JSONRATES_TIMEOUT": "soon"}, want: "JSONRATES_TIMEOUT"},
		{name: "negative rps", vars: map[string]string{"JSONRATES_RPS": "-1"}, want: "JSONRATES_RPS"},
		{name: "unknown mode", vars: map[string]string{"RATES_MODE": "lazy"}, want: "RATES_MODE"},
		{name: "bad ttl", vars: map[string]string{"RATES_TTL": "-5s"}, want: "RATES_TTL"},
		{name: "bad pair", vars: map[string]string{"WARM_PAIRS": "USD"}, want: "WARM_PAIRS"},
		{name: "bad currency", vars: map[string]string{"WARM_PAIRS": "USD/ZZZZ"}, want: "WARM_PAIRS"},
		{name: "bad level", vars: map[string]string{"LOG_LEVEL": "loud"}, want: "LOG_LEVEL"},
		{name: "bad format", vars: map[string]string{"LOG_FORMAT": "xml"}, want: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want != "JSONRATES_API_KEY" {
				tt.vars["JSONRATES_API_KEY"] = "key"
			}

			_, err := configFromEnv(envOf(tt.vars))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
