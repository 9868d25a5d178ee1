package metalslive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the public metals.live API
const DefaultBaseURL = "https://api.metals.live"

// Config holds the client settings
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	Retries          int
	RetryWait        time.Duration
	BreakerThreshold uint32 // consecutive failures before the breaker opens
	BreakerCooldown  time.Duration
}

// DefaultConfig returns sensible defaults for the public API
func DefaultConfig() Config {
	return Config{
		BaseURL:          DefaultBaseURL,
		Timeout:          10 * time.Second,
		Retries:          2,
		RetryWait:        500 * time.Millisecond,
		BreakerThreshold: 5,
		BreakerCooldown:  time.Minute,
	}
}

// spotResponse is the body of GET /v1/spot/{metal}
type spotResponse struct {
	Price json.Number `json:"price"`
}

// Client is a resty-backed spot price source guarded by a circuit breaker
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
}

// NewClient builds a metals.live client from the given configuration
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(4 * cfg.RetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{
		httpClient: restyClient,
		cb:         newCircuitBreaker("metals.live", cfg.BreakerThreshold, cfg.BreakerCooldown),
	}
}

func newCircuitBreaker(name string, threshold uint32, cooldown time.Duration) *gobreaker.CircuitBreaker {
	if threshold == 0 {
		threshold = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})
}

// Quote fetches the raw spot price of a metal in USD.
// The API does not say whether the figure is per gram or per troy ounce.
func (c *Client) Quote(ctx context.Context, metal domain.Metal) (decimal.Decimal, error) {
	path := fmt.Sprintf("/v1/spot/%s", strings.ToLower(string(metal)))

	result, err := c.cb.Execute(func() (interface{}, error) {
		body := new(spotResponse)
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetResult(body).
			Get(path)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", path, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("metals.live returned status %d", resp.StatusCode())
		}
		if body.Price == "" {
			return nil, fmt.Errorf("metals.live response for %s has no price", metal)
		}

		price, err := decimal.NewFromString(body.Price.String())
		if err != nil {
			return nil, fmt.Errorf("parse price %q: %w", body.Price, err)
		}
		return price, nil
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("metals.live quote: %w", err)
	}

	return result.(decimal.Decimal), nil
}
