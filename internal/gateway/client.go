// Package gateway is the client for the hosted-checkout payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus is the gateway's view of a checkout session
type SessionStatus string

const (
	SessionStatusOpen    SessionStatus = "open"
	SessionStatusPaid    SessionStatus = "paid"
	SessionStatusExpired SessionStatus = "expired"
)

// ErrSessionNotFound is returned when the gateway does not know a session id
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutRequest describes the hosted checkout to open
type CheckoutRequest struct {
	Metadata           map[string]string `json:"metadata,omitempty"`
	ProductDescription string            `json:"description"`
	SuccessURL         string            `json:"success_url"`
	CancelURL          string            `json:"cancel_url"`
	Currency           string            `json:"currency"`
	Amount             decimal.Decimal   `json:"amount"`
}

// Session is a checkout session as reported by the gateway
type Session struct {
	Metadata map[string]string `json:"metadata,omitempty"`
	ID       string            `json:"id"`
	URL      string            `json:"url"`
	Status   SessionStatus     `json:"status"`
	Currency string            `json:"currency"`
	Amount   decimal.Decimal   `json:"amount"`
}

// Client talks to the gateway's REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a gateway client with a bounded request timeout
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// CreateSession opens a hosted checkout session
func (c *Client) CreateSession(ctx context.Context, req CheckoutRequest) (*Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkout request: %w", err)
	}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", bytes.NewReader(body), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession fetches the authoritative state of a checkout session
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	path := "/v1/checkout/sessions/" + url.PathEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // close error is not actionable

	if resp.StatusCode == http.StatusNotFound {
		return ErrSessionNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck // diagnostic only
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
