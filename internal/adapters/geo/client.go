package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agtechsummit/internal/domain"
)

const DefaultURL = "https://ipapi.co/json/"

// Client looks up the caller's country from a JSON geo-IP endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

var _ domain.GeoLocator = (*Client)(nil)

func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{url: url, httpClient: httpClient}
}

type lookupResponse struct {
	CountryName string `json:"country_name"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

func (c *Client) LookupCountry(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build geo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geo lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("geo lookup: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode geo response: %w", err)
	}
	if out.Error {
		return "", fmt.Errorf("geo lookup: %s", out.Reason)
	}
	if out.CountryName == "" {
		return "", fmt.Errorf("geo lookup: empty country")
	}
	return out.CountryName, nil
}
