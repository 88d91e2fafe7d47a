package rates_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-ratebank/internal"
	rateshttp "service-ratebank/internal/api/http/rates"
	"service-ratebank/internal/api/http/middleware"
	"service-ratebank/internal/models"
	"service-ratebank/internal/ratecache"
	ratessvc "service-ratebank/internal/service/rates"
)

const adminKey = "secret"

func newServer(t *testing.T, fetcher internal.RateFetcher) (*httptest.Server, *ratecache.Cache) {
	t.Helper()
	cache := ratecache.New(fetcher)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	rateshttp.New(ratessvc.New(cache), log).Register(mux, middleware.AdminKey(adminKey))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, cache
}

func do(t *testing.T, method, url string, admin bool) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if admin {
		req.Header.Set("X-API-Key", adminKey)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func fixedRate(rate string) internal.RateFetcher {
	return internal.RateFetcherFunc(func(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error) {
		return decimal.RequireFromString(rate), nil
	})
}

func TestHandler_GetRate(t *testing.T) {
	server, _ := newServer(t, fixedRate("0.88770100"))

	resp, body := do(t, http.MethodGet, server.URL+"/api/v1/rate?from=usd&to=eur", false)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out models.PairRate
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, models.PairRate{From: "USD", To: "EUR", Rate: "0.887701", Key: "USD_TO_EUR"}, out)
}

func TestHandler_GetRate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fetcher internal.RateFetcher
		query   string
		status  int
		code    string
	}{
		{
			name:    "invalid currency",
			fetcher: fixedRate("1"),
			query:   "from=USD&to=NOPE",
			status:  http.StatusBadRequest,
			code:    "invalid_currency",
		},
		{
			name: "missing credential",
			fetcher: internal.RateFetcherFunc(func(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error) {
				return decimal.Zero, internal.ErrMissingCredential
			}),
			query:  "from=USD&to=EUR",
			status: http.StatusInternalServerError,
			code:   "missing_credential",
		},
		{
			name: "remote failure",
			fetcher: internal.RateFetcherFunc(func(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error) {
				return decimal.Zero, internal.NewRemoteRequestError("currency XXXX does not exist", nil)
			}),
			query:  "from=USD&to=EUR",
			status: http.StatusBadGateway,
			code:   "remote_request_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newServer(t, tt.fetcher)

			resp, body := do(t, http.MethodGet, server.URL+"/api/v1/rate?"+tt.query, false)

			assert.Equal(t, tt.status, resp.StatusCode)
			var out models.BusinessError
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.code, out.Code)
		})
	}
}

func TestHandler_FlushRate(t *testing.T) {
	server, cache := newServer(t, fixedRate("1"))
	cache.AddRate(internal.MustCurrencyPair("USD", "EUR"), decimal.RequireFromString("1.4"))
	cache.AddRate(internal.MustCurrencyPair("USD", "JPY"), decimal.RequireFromString("0.3"))

	resp, _ := do(t, http.MethodDelete, server.URL+"/api/v1/rate?from=USD&to=EUR", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, http.MethodDelete, server.URL+"/api/v1/rate?from=USD&to=EUR", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out models.PairRate
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "1.4", out.Rate)

	assert.NotContains(t, cache.Rates(), ratecache.RateKey("USD_TO_EUR"))
	assert.Contains(t, cache.Rates(), ratecache.RateKey("USD_TO_JPY"))

	resp, body = do(t, http.MethodDelete, server.URL+"/api/v1/rate?from=USD&to=EUR", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var biz models.BusinessError
	require.NoError(t, json.Unmarshal(body, &biz))
	assert.Equal(t, "rate_not_found", biz.Code)
}

func TestHandler_FlushRatesAndExpire(t *testing.T) {
	server, cache := newServer(t, fixedRate("1"))
	cache.AddRate(internal.MustCurrencyPair("USD", "EUR"), decimal.RequireFromString("1.4"))
	cache.AddRate(internal.MustCurrencyPair("USD", "JPY"), decimal.RequireFromString("0.3"))

	resp, body := do(t, http.MethodDelete, server.URL+"/api/v1/rates", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"flushed":2}`, string(body))
	assert.Zero(t, cache.Len())

	resp, body = do(t, http.MethodPost, server.URL+"/api/v1/rates/expire", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"expired":false}`, string(body))
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	server, _ := newServer(t, fixedRate("1"))

	resp, _ := do(t, http.MethodPut, server.URL+"/api/v1/rate?from=USD&to=EUR", true)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
