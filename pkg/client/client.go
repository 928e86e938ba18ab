package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/astralhq/github-wrapped/internal/domain"
	"github.com/astralhq/github-wrapped/internal/stats"
)

// Client is the API client for github-wrapped
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetWrapped retrieves the wrapped profile document for a user
func (c *Client) GetWrapped(username string) (*domain.ProfileSnapshot, error) {
	params := url.Values{}
	params.Set("username", username)

	var response struct {
		Data struct {
			Viewer *domain.ProfileSnapshot `json:"viewer"`
		} `json:"data"`
	}
	if err := c.get("/api/wrapped", params, &response); err != nil {
		return nil, err
	}
	return response.Data.Viewer, nil
}

// GetSummary retrieves the derived summary statistics for a user
func (c *Client) GetSummary(username string) (*stats.Summary, error) {
	params := url.Values{}
	params.Set("username", username)

	var response struct {
		Data *stats.Summary `json:"data"`
	}
	if err := c.get("/api/wrapped/summary", params, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", nil, &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, params url.Values, result interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
