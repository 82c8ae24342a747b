package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/pkg/retry"
)

// ErrRateLimited marks a 429 from the data API. It is the only error the
// client retries; everything else is terminal for the current refresh.
var ErrRateLimited = errors.New("data API rate limited")

const (
	fetchMaxAttempts = 4 // 1 call + 3 retries
	fetchRetryDelay  = time.Second
)

// Client fetches the product catalog from the data API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryDelay time.Duration
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryDelay: fetchRetryDelay,
	}
}

type productListResponse struct {
	Data []model.Product `json:"data"`
}

// FetchProducts loads the full catalog. Rate-limited responses are retried
// with a doubling delay (1s, 2s, 4s) before giving up.
func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	return retry.DoWithResult(ctx, retry.Config{
		MaxAttempts: fetchMaxAttempts,
		Backoff:     retry.DoublingBackoff(c.retryDelay),
		ShouldRetry: func(err error) bool {
			return errors.Is(err, ErrRateLimited)
		},
	}, func() ([]model.Product, error) {
		return c.fetchOnce(ctx)
	})
}

func (c *Client) fetchOnce(ctx context.Context) ([]model.Product, error) {
	url := c.baseURL + "/api/data/gets"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("data API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read data API response: %w", err)
	}

	var listResp productListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("failed to decode data API response: %w", err)
	}

	return listResp.Data, nil
}
