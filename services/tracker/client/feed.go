package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sattrack/internal/pkg/models"
	"sattrack/services/tracker"
)

// FeedClient fetches positions from a wheretheiss.at style JSON endpoint
type FeedClient struct {
	feedURL    string
	httpClient *http.Client
}

// NewFeedClient creates a new feed client
func NewFeedClient(feedURL string, timeout time.Duration) tracker.FeedClient {
	if timeout == 0 {
		timeout = 8 * time.Second
	}

	return &FeedClient{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPosition requests the current position from the feed
func (c *FeedClient) FetchPosition(ctx context.Context) (*models.FeedPosition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch position feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("position feed returned status %d", resp.StatusCode)
	}

	var position models.FeedPosition
	if err := json.NewDecoder(resp.Body).Decode(&position); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	return &position, nil
}
