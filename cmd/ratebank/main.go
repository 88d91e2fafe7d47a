package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"service-ratebank/internal"
	rateshttp "service-ratebank/internal/api/http/rates"
	"service-ratebank/internal/api/http/middleware"
	"service-ratebank/internal/jsonrates"
	"service-ratebank/internal/metrics"
	"service-ratebank/internal/ratecache"
	ratessvc "service-ratebank/internal/service/rates"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("ratebank stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// env
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	// metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// client
	opts := []jsonrates.Option{}
	if cfg.BaseURL != "" {
		opts = append(opts, jsonrates.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, jsonrates.WithTimeout(cfg.Timeout))
	}
	if cfg.RPS > 0 {
		opts = append(opts, jsonrates.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RPS), 1)))
	}
	client := jsonrates.New(cfg.APIKey, opts...)

	// cache
	expiry := ratecache.NewExpiry(ratecache.SystemClock)
	if cfg.TTL > 0 {
		expiry.SetTTL(cfg.TTL)
	}
	cache := ratecache.New(client,
		ratecache.WithPolicy(cfg.Policy),
		ratecache.WithExpiry(expiry),
		ratecache.WithLogger(log.With("component", "ratecache")),
		ratecache.WithMetrics(m),
	)

	ratesService := ratessvc.New(cache)

	// instant warm-up
	if err := ratesService.Warm(ctx, cfg.WarmPairs); err != nil {
		log.Warn("initial warm-up failed", "error", err)
	}

	// http
	mux := http.NewServeMux()
	rateshttp.New(ratesService, log).Register(mux, middleware.AdminKey(cfg.AdminKey))
	mux.Handle("GET /metrics", promhttp.Handler())
	handler := middleware.RequestLogger(log)(mux)

	g, gctx := errgroup.WithContext(ctx)

	// cron
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.CronSpec, scheduledRefresh(gctx, log, cache, ratesService, cfg.WarmPairs))
	if err != nil {
		return fmt.Errorf("add cron func %q: %w", cfg.CronSpec, err)
	}

	g.Go(func() error {
		return runCron(gctx, scheduler)
	})

	g.Go(func() error {
		return serveHTTP(gctx, log, ":"+cfg.HTTPPort, handler)
	})

	log.Info("running", "policy", cfg.Policy.Name(), "ttl", cfg.TTL, "warm_pairs", len(cfg.WarmPairs))
	return g.Wait()
}

// scheduledRefresh expires the table when due and looks the warm pairs up
// again. It stops early once ctx is done.
func scheduledRefresh(ctx context.Context, log *slog.Logger, cache *ratecache.Cache, svc *ratessvc.Service, pairs []internal.CurrencyPair) func() {
	return func() {
		expired := cache.ExpireRates()
		if err := svc.Warm(ctx, pairs); err != nil {
			log.Warn("scheduled warm-up failed", "error", err)
			return
		}
		log.Debug("scheduled expiry done", "expired", expired, "cached", cache.Len())
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, log *slog.Logger, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	log.Info("http listening", "addr", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
