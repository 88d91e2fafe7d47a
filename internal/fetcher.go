package internal

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateFetcher asks the upstream service for a single rate. Implementations
// do not cache and do not retry.
type RateFetcher interface {
	FetchRate(ctx context.Context, pair CurrencyPair) (decimal.Decimal, error)
}

type RateFetcherFunc func(ctx context.Context, pair CurrencyPair) (decimal.Decimal, error)

func (f RateFetcherFunc) FetchRate(ctx context.Context, pair CurrencyPair) (decimal.Decimal, error) {
	return f(ctx, pair)
}
