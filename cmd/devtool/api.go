package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	headerAPIKey   = "X-API-Key"
	requestTimeout = 5 * time.Second
)

// apiClient talks to a running server. API_URL and API_KEY come from the
// environment (or .env).
type apiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newAPIClient() *apiClient {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  os.Getenv("API_KEY"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *apiClient) newRequest(path string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	return req, nil
}

// get fetches path and returns the body, failing on any non-200 status
func (c *apiClient) get(path string) ([]byte, error) {
	req, err := c.newRequest(path)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return body, fmt.Errorf("%s returned %s", path, resp.Status)
	}
	return body, nil
}
