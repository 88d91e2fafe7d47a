package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"service-ratebank/internal"
	"service-ratebank/internal/ratecache"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	RPS     float64

	Policy    ratecache.Policy
	TTL       time.Duration
	WarmPairs []internal.CurrencyPair
	CronSpec  string

	AdminKey string
	HTTPPort string

	LogLevel  slog.Level
	LogFormat string
}

func LoadConfig() (Config, error) {
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := Config{
		Policy:    ratecache.Straight,
		CronSpec:  "@every 1m",
		HTTPPort:  "8080",
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
	}

	cfg.APIKey = env("JSONRATES_API_KEY")
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("JSONRATES_API_KEY is empty")
	}
	cfg.BaseURL = env("JSONRATES_BASE_URL")

	if v := env("JSONRATES_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("JSONRATES_TIMEOUT: invalid duration %q", v)
		}
		cfg.Timeout = d
	}

	if v := env("JSONRATES_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("JSONRATES_RPS: invalid value %q", v)
		}
		cfg.RPS = rps
	}

	policy, err := ratecache.ParsePolicy(env("RATES_MODE"))
	if err != nil {
		return Config{}, fmt.Errorf("RATES_MODE: %w", err)
	}
	cfg.Policy = policy

	if v := env("RATES_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("RATES_TTL: invalid duration %q", v)
		}
		cfg.TTL = d
	}

	if v := env("WARM_PAIRS"); v != "" {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			pair, err := internal.ParseCurrencyPair(s)
			if err != nil {
				return Config{}, fmt.Errorf("WARM_PAIRS: %w", err)
			}
			cfg.WarmPairs = append(cfg.WarmPairs, pair)
		}
	}

	if v := env("EXPIRE_CRON"); v != "" {
		cfg.CronSpec = v
	}

	cfg.AdminKey = env("ADMIN_API_KEY")

	if p := env("PORT"); p != "" {
		cfg.HTTPPort = p
	}

	if v := env("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	switch f := strings.ToLower(env("LOG_FORMAT")); f {
	case "":
	case "text", "json":
		cfg.LogFormat = f
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT: unknown format %q", f)
	}

	return cfg, nil
}
