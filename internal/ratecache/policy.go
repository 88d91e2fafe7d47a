package ratecache

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"service-ratebank/internal"
)

// RateKey identifies a cached rate, e.g. "USD_TO_EUR" or "USD_TO_EUR_C".
type RateKey string

// Policy decides how a cache keys its entries and how a lookup reconciles
// cached data with upstream failures. The only implementations are Straight
// and Careful.
type Policy interface {
	Name() string
	KeyFor(pair internal.CurrencyPair) RateKey
	getRate(ctx context.Context, c *Cache, pair internal.CurrencyPair) (decimal.Decimal, error)
}

var (
	// Straight expires the whole table at once and propagates every fetch error.
	Straight Policy = straightPolicy{}
	// Careful expires entries one by one and serves a stale rate when a
	// refresh fails with a RemoteRequestError.
	Careful Policy = carefulPolicy{}
)

// ParsePolicy maps "straight" or "careful" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "straight":
		return Straight, nil
	case "careful":
		return Careful, nil
	default:
		return nil, fmt.Errorf("unknown rates policy %q", s)
	}
}

func baseKey(pair internal.CurrencyPair) string {
	return strings.ToUpper(fmt.Sprintf("%s_TO_%s", strings.TrimSpace(pair.From.String()), strings.TrimSpace(pair.To.String())))
}

type straightPolicy struct{}

func (straightPolicy) Name() string { return "straight" }

func (straightPolicy) KeyFor(pair internal.CurrencyPair) RateKey {
	return RateKey(baseKey(pair))
}

func (p straightPolicy) getRate(ctx context.Context, c *Cache, pair internal.CurrencyPair) (decimal.Decimal, error) {
	c.ExpireRates()

	key := p.KeyFor(pair)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.rates[key]; ok {
		c.metrics.Hit(p.Name())
		return e.Rate, nil
	}

	c.metrics.Miss(p.Name())
	c.log.Debug("rate cache miss", "policy", p.Name(), "key", key)

	rate, err := c.fetch(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}
	c.storeLocked(key, rate)
	return rate, nil
}

type carefulPolicy struct{}

func (carefulPolicy) Name() string { return "careful" }

func (carefulPolicy) KeyFor(pair internal.CurrencyPair) RateKey {
	return RateKey(baseKey(pair) + "_C")
}

func (p carefulPolicy) getRate(ctx context.Context, c *Cache, pair internal.CurrencyPair) (decimal.Decimal, error) {
	key := p.KeyFor(pair)

	c.mu.Lock()
	defer c.mu.Unlock()

	cached, ok := c.rates[key]
	if ok && !c.expiry.stale(cached.CreatedAt) {
		c.metrics.Hit(p.Name())
		return cached.Rate, nil
	}

	c.metrics.Miss(p.Name())
	c.log.Debug("rate cache miss", "policy", p.Name(), "key", key, "stale", ok)

	rate, err := c.fetch(ctx, pair)
	if err != nil {
		if ok && internal.IsRemoteRequestError(err) {
			c.metrics.StaleFallback()
			c.log.Warn("serving stale rate after failed refresh",
				"key", key,
				"rate", cached.Rate.String(),
				"created_at", cached.CreatedAt,
				"error", err)
			return cached.Rate, nil
		}
		return decimal.Zero, err
	}
	c.storeLocked(key, rate)
	return rate, nil
}
