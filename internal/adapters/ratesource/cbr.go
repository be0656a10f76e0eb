package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// ClientConfig represents the configuration for the CBR daily quotes client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration // Default: 10 seconds
}

// CBRClient fetches the USD/RUB quote from the Central Bank of Russia
// daily JSON feed.
type CBRClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCBRClient creates a new CBR daily quotes client.
func NewCBRClient(config ClientConfig) *CBRClient {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &CBRClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: config.BaseURL,
	}
}

type dailyQuotes struct {
	Date   string `json:"Date"`
	Valute struct {
		USD struct {
			Value float64 `json:"Value"`
		} `json:"USD"`
	} `json:"Valute"`
}

// FetchRate retrieves the current USD/RUB rate from the daily feed.
func (c *CBRClient) FetchRate(ctx context.Context) (*domain.UsdRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote feed returned status %d", resp.StatusCode)
	}

	var quotes dailyQuotes
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("failed to decode quotes: %w", err)
	}

	rate := decimal.NewFromFloat(quotes.Valute.USD.Value)
	if !rate.IsPositive() {
		return nil, fmt.Errorf("quote feed returned non-positive USD rate %s", rate)
	}

	asOf := time.Now().UTC()
	if parsed, err := time.Parse(time.RFC3339, quotes.Date); err == nil {
		asOf = parsed
	}

	return &domain.UsdRate{
		Rate: rate,
		AsOf: asOf,
	}, nil
}
