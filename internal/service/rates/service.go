package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"service-ratebank/internal"
	"service-ratebank/internal/models"
	"service-ratebank/internal/ratecache"
)

type RateCache interface {
	GetRate(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error)
	FlushRate(pair internal.CurrencyPair) (decimal.Decimal, bool)
	Clear() int
	ExpireRates() bool
	RateKeyFor(pair internal.CurrencyPair) ratecache.RateKey
}

type Service struct {
	cache RateCache
}

func New(cache RateCache) *Service { return &Service{cache: cache} }

func (s *Service) GetPairRate(ctx context.Context, from, to string) (*models.PairRate, error) {
	pair, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}

	rate, err := s.cache.GetRate(ctx, pair)
	if err != nil {
		return nil, err
	}
	return s.pairRate(pair, rate), nil
}

// FlushPairRate drops one cached rate and returns what was removed.
func (s *Service) FlushPairRate(from, to string) (*models.PairRate, error) {
	pair, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}

	rate, ok := s.cache.FlushRate(pair)
	if !ok {
		return nil, models.BizError("rate_not_found", fmt.Sprintf("no cached rate for %s", pair))
	}
	return s.pairRate(pair, rate), nil
}

func (s *Service) FlushAll() models.FlushResult {
	return models.FlushResult{Flushed: s.cache.Clear()}
}

func (s *Service) Expire() models.ExpireResult {
	return models.ExpireResult{Expired: s.cache.ExpireRates()}
}

// Warm looks up every pair so that later requests hit the cache. It keeps
// going after a failure and returns all errors joined.
func (s *Service) Warm(ctx context.Context, pairs []internal.CurrencyPair) error {
	var errs []error
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.cache.GetRate(ctx, pair); err != nil {
			errs = append(errs, fmt.Errorf("warm %s: %w", pair, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) pairRate(pair internal.CurrencyPair, rate decimal.Decimal) *models.PairRate {
	return &models.PairRate{
		From: pair.From.String(),
		To:   pair.To.String(),
		Rate: rate.String(),
		Key:  string(s.cache.RateKeyFor(pair)),
	}
}

func parsePair(from, to string) (internal.CurrencyPair, error) {
	pair, err := internal.NewCurrencyPair(from, to)
	if err != nil {
		return internal.CurrencyPair{}, models.BizError("invalid_currency", err.Error())
	}
	return pair, nil
}
