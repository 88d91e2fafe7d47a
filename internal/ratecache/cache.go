package ratecache

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"service-ratebank/internal"
	"service-ratebank/internal/metrics"
)

// Entry is one cached rate.
type Entry struct {
	Rate      decimal.Decimal
	CreatedAt time.Time
}

// Cache is an in-memory table of exchange rates filled on demand from a
// RateFetcher. A lookup holds the cache lock across the upstream call, so
// concurrent misses for one pair produce a single fetch.
type Cache struct {
	mu    sync.Mutex
	rates map[RateKey]Entry

	fetcher internal.RateFetcher
	policy  Policy
	expiry  *Expiry
	log     *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Cache)

func WithPolicy(p Policy) Option {
	return func(c *Cache) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithExpiry shares e with the cache. Caches built without it get a private
// Expiry on the system clock with no TTL.
func WithExpiry(e *Expiry) Option {
	return func(c *Cache) {
		if e != nil {
			c.expiry = e
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

func New(fetcher internal.RateFetcher, opts ...Option) *Cache {
	c := &Cache{
		rates:   make(map[RateKey]Entry),
		fetcher: fetcher,
		policy:  Straight,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.expiry == nil {
		c.expiry = NewExpiry(SystemClock)
	}
	return c
}

func (c *Cache) Policy() Policy { return c.policy }

func (c *Cache) Expiry() *Expiry { return c.expiry }

// GetRate returns the rate for pair, fetching it on a miss according to the
// cache's policy. Fetch errors are returned as the fetcher produced them.
func (c *Cache) GetRate(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error) {
	return c.policy.getRate(ctx, c, pair)
}

// AddRate stores rate for pair as if it had just been fetched.
func (c *Cache) AddRate(pair internal.CurrencyPair, rate decimal.Decimal) decimal.Decimal {
	return c.SetRate(pair, rate)
}

func (c *Cache) SetRate(pair internal.CurrencyPair, rate decimal.Decimal) decimal.Decimal {
	key := c.policy.KeyFor(pair)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.storeLocked(key, rate)
	return rate
}

func (c *Cache) RateKeyFor(pair internal.CurrencyPair) RateKey {
	return c.policy.KeyFor(pair)
}

// FlushRate removes the entry for pair. The bool is false when nothing was cached.
func (c *Cache) FlushRate(pair internal.CurrencyPair) (decimal.Decimal, bool) {
	key := c.policy.KeyFor(pair)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.rates[key]
	if !ok {
		return decimal.Zero, false
	}
	delete(c.rates, key)
	c.metrics.Flush("rate")
	c.metrics.Size(c.policy.Name(), len(c.rates))
	return e.Rate, true
}

// FlushRates empties the table and returns it.
func (c *Cache) FlushRates() map[RateKey]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked("all")
	return make(map[RateKey]Entry)
}

// Clear empties the table and reports how many entries it dropped.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushLocked("all")
}

// ExpireRates flushes the table when the shared expiry deadline has passed
// and schedules the next one. It reports whether a flush happened.
// Careful caches keep stale entries as fallbacks, so for them it does nothing
// and leaves the shared deadline alone.
func (c *Cache) ExpireRates() bool {
	if c.policy == Careful {
		return false
	}
	if !c.expiry.advance() {
		return false
	}

	c.mu.Lock()
	n := c.flushLocked("expiry")
	c.mu.Unlock()

	c.log.Info("rate cache expired",
		"policy", c.policy.Name(),
		"flushed", n,
		"next_expiration", c.expiry.ExpiresAt())
	return true
}

// Rates returns a copy of the table.
func (c *Cache) Rates() map[RateKey]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.rates)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rates)
}

func (c *Cache) fetch(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error) {
	if c.fetcher == nil {
		return decimal.Zero, internal.NewRemoteRequestError("no rate fetcher configured", nil)
	}
	rate, err := c.fetcher.FetchRate(ctx, pair)
	c.metrics.Fetch(err)
	if err != nil {
		c.log.Debug("rate fetch failed", "pair", pair.String(), "error", err)
		return decimal.Zero, err
	}
	return rate, nil
}

func (c *Cache) storeLocked(key RateKey, rate decimal.Decimal) {
	c.rates[key] = Entry{Rate: rate, CreatedAt: c.expiry.now()}
	c.metrics.Size(c.policy.Name(), len(c.rates))
}

func (c *Cache) flushLocked(kind string) int {
	n := len(c.rates)
	c.rates = make(map[RateKey]Entry)
	c.metrics.Flush(kind)
	c.metrics.Size(c.policy.Name(), 0)
	return n
}
