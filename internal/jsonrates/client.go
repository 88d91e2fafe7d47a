package jsonrates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"service-ratebank/internal"
)

const (
	DefaultBaseURL = "http://jsonrates.com"
	servicePath    = "/get"
	defaultTimeout = 20 * time.Second
)

// rateResponse is the body returned by GET /get.
type rateResponse struct {
	UTCTime string `json:"utctime"`
	From    string `json:"from"`
	To      string `json:"to"`
	Rate    string `json:"rate"`
	Error   string `json:"error"`
}

// Client fetches single rates from jsonrates.com. It never caches or retries.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	limiter *rate.Limiter
	http    *resty.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLimiter throttles outgoing requests; a nil limiter disables throttling.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(c.baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(c.timeout)

	return c
}

// FetchRate implements internal.RateFetcher.
func (c *Client) FetchRate(ctx context.Context, pair internal.CurrencyPair) (decimal.Decimal, error) {
	if c.apiKey == "" {
		return decimal.Zero, internal.ErrMissingCredential
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return decimal.Zero, internal.NewRemoteRequestError(fmt.Sprintf("wait for rate limiter: %v", err), err)
		}
	}

	var out, failure rateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(c.query(pair)).
		SetResult(&out).
		SetError(&failure).
		Get(servicePath)
	if err != nil {
		return decimal.Zero, internal.NewRemoteRequestError(err.Error(), err)
	}

	if !resp.IsSuccess() {
		msg := fmt.Sprintf("jsonrates http %d", resp.StatusCode())
		if upstream := strings.TrimSpace(failure.Error); upstream != "" {
			msg += ": " + upstream
		}
		return decimal.Zero, internal.NewRemoteRequestError(msg, nil)
	}

	return extractRate(out)
}

func (c *Client) query(pair internal.CurrencyPair) map[string]string {
	return map[string]string{
		"from":   strings.ToUpper(pair.From.String()),
		"to":     strings.ToUpper(pair.To.String()),
		"apiKey": c.apiKey,
	}
}

func extractRate(out rateResponse) (decimal.Decimal, error) {
	if msg := strings.TrimSpace(out.Error); msg != "" {
		return decimal.Zero, internal.NewRemoteRequestError(msg, nil)
	}

	rateStr := strings.TrimSpace(out.Rate)
	if rateStr == "" {
		return decimal.Zero, internal.NewRemoteRequestError("rate not found in response", nil)
	}

	r, err := decimal.NewFromString(rateStr)
	if err != nil {
		return decimal.Zero, internal.NewRemoteRequestError(fmt.Sprintf("parse rate %q", rateStr), err)
	}
	return r, nil
}
