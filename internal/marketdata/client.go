// Package marketdata wraps the Alpha Vantage HTTP API: current quotes and
// daily time series, with typed payloads and sentinel errors the service
// layer uses to decide when to substitute synthesized data.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/andresilva/stocksight/internal/logger"
)

// Sentinel errors describing why a provider call produced no usable data.
// The quote service maps each of them to the mock-data fallback; none of
// them ever reaches an HTTP client.
var (
	// ErrRateLimited signals the provider answered with its rate-limit /
	// informational note instead of data.
	ErrRateLimited = errors.New("marketdata: provider rate limit reached")

	// ErrProviderError signals the provider returned an explicit error body
	// (unknown symbol, bad function, invalid key).
	ErrProviderError = errors.New("marketdata: provider returned an error")

	// ErrNoQuote signals a structurally valid response that carries no
	// usable quote (missing Global Quote object or empty price field).
	ErrNoQuote = errors.New("marketdata: no quote in response")
)

// GlobalQuote is Alpha Vantage's GLOBAL_QUOTE payload. Every field arrives
// as a string; normalization happens in the service layer.
type GlobalQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

type globalQuoteEnvelope struct {
	GlobalQuote *GlobalQuote `json:"Global Quote"`
}

// DailyBar is one day of the TIME_SERIES_DAILY payload.
type DailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// DailySeries maps ISO dates (YYYY-MM-DD) to bars.
type DailySeries map[string]DailyBar

type dailySeriesEnvelope struct {
	TimeSeries DailySeries `json:"Time Series (Daily)"`
}

// Provider is the outbound contract the quote service depends on.
type Provider interface {
	FetchQuote(ctx context.Context, symbol string) (*GlobalQuote, error)
	FetchDailySeries(ctx context.Context, symbol string) (DailySeries, error)
}

// Client is an Alpha Vantage API client. Safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the given credential and base URL.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchQuote retrieves the current GLOBAL_QUOTE for symbol.
//
// Returns ErrRateLimited, ErrProviderError, or ErrNoQuote when the provider
// answered but the payload carries no usable quote. Exactly one attempt is
// made; retrying is the provider's fastest route to a harder rate limit.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*GlobalQuote, error) {
	body, err := c.query(ctx, "GLOBAL_QUOTE", symbol, nil)
	if err != nil {
		return nil, err
	}
	if err := probeMarkers(body); err != nil {
		return nil, err
	}

	var env globalQuoteEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode quote payload: %w", err)
	}
	if env.GlobalQuote == nil || env.GlobalQuote.Price == "" {
		return nil, ErrNoQuote
	}
	return env.GlobalQuote, nil
}

// FetchDailySeries retrieves the compact (about 100-bar) daily series.
func (c *Client) FetchDailySeries(ctx context.Context, symbol string) (DailySeries, error) {
	body, err := c.query(ctx, "TIME_SERIES_DAILY", symbol, url.Values{"outputsize": {"compact"}})
	if err != nil {
		return nil, err
	}
	if err := probeMarkers(body); err != nil {
		return nil, err
	}

	var env dailySeriesEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode time series payload: %w", err)
	}
	if len(env.TimeSeries) == 0 {
		return nil, ErrNoQuote
	}
	return env.TimeSeries, nil
}

// probeMarkers inspects the raw body for the provider's out-of-band error
// markers before any strict decode. Alpha Vantage reports problems inside a
// 200 response, so the shape has to be probed rather than trusted.
func probeMarkers(body []byte) error {
	if gjson.GetBytes(body, "Error Message").Exists() {
		return ErrProviderError
	}
	if gjson.GetBytes(body, "Note").Exists() || gjson.GetBytes(body, "Information").Exists() {
		return ErrRateLimited
	}
	return nil
}

func (c *Client) query(ctx context.Context, function, symbol string, extra url.Values) ([]byte, error) {
	q := url.Values{}
	q.Set("function", function)
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	endpoint := c.baseURL + "/query?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		logger.L().Warn().
			Int("status", resp.StatusCode).
			Str("function", function).
			Str("symbol", symbol).
			Msg("provider returned non-200")
		return nil, fmt.Errorf("%w: status %d", ErrProviderError, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}
	return body, nil
}
