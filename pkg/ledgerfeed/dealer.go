package ledgerfeed

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

type DealerClient struct {
	feedURL    string
	apiKey     string
	httpClient *http.Client
}

func NewDealerClient(feedURL, apiKey string) *DealerClient {
	return &DealerClient{
		feedURL:    feedURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DealerClient) Name() string {
	return "DealerNetwork"
}

// Fetch downloads the dealer network's CSV ledger export.
func (c *DealerClient) Fetch() (string, error) {
	req, err := http.NewRequest("GET", c.feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("dealer feed request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("dealer feed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dealer feed status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("dealer feed read: %w", err)
	}

	return string(body), nil
}
