// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spinclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/big12-wheel/models"
)

// HTTPError is returned for any non-2xx response
type HTTPError struct {
	StatusCode int
	Message    string
	Details    string
	Method     string
	URL        string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP error %d %s from %s %s", e.StatusCode, http.StatusText(e.StatusCode), e.Method, e.URL)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// StatusCode extracts the status of an *HTTPError, or 0
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// NewDefaultHTTPClient returns an http.Client with conservative timeouts
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}
}

// Client talks to the wheel API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for baseURL. A nil httpClient uses NewDefaultHTTPClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewDefaultHTTPClient()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Results fetches the current tally
func (c *Client) Results(ctx context.Context) (models.RankedCounts, error) {
	counts := models.RankedCounts{}
	if err := c.do(ctx, http.MethodGet, "/api/results", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// RecordSpin reports a landed team and returns the refreshed tally
func (c *Client) RecordSpin(ctx context.Context, team string) (models.RankedCounts, error) {
	counts := models.RankedCounts{}
	if err := c.do(ctx, http.MethodPost, "/api/spin", models.SpinRequest{Team: team}, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body for %s %s: %w", method, url, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request for %s: %w", method, url, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request to %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Method: method, URL: url}
		var errBody models.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			httpErr.Message = errBody.Error
			httpErr.Details = errBody.Details
		} else {
			httpErr.Message = strings.TrimSpace(string(raw))
		}
		return httpErr
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s response from %s: %w", method, url, err)
	}
	return nil
}
