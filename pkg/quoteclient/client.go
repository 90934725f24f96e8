// Package quoteclient implements the site's quote-request submission flow
// against the HTTP API: local pre-validation, the network call, and the
// mapping of every outcome onto exactly one user-visible notification.
package quoteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Services is the catalog offered by the site form. The service field also
// accepts free text ("Outro" submissions carry whatever the visitor typed).
var Services = []string{
	"Infraestrutura de TI",
	"Instalações Elétricas",
	"Manutenção de Computadores",
	"Desenvolvimento de Sistemas",
	"Consultoria em TI",
	"Outro",
}

// Form holds the visitor's input. Phone and Message are optional.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// FieldError mirrors the server's per-field rejection shape.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitResponse is the parsed API envelope.
type SubmitResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
}

const defaultTimeout = 10 * time.Second

// Client posts quote requests to the backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each submission round-trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient builds a client for the API at baseURL (e.g.
// "https://gsreistecnologia.com.br"). Requests are bounded by a default
// timeout; expiry surfaces as a transport failure.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts the form payload and returns the parsed envelope. A non-nil
// error means the request never produced a usable response (connectivity,
// timeout, malformed body); a `Success: false` envelope is not an error.
func (c *Client) Submit(ctx context.Context, f Form) (*SubmitResponse, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quote-requests", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request submission failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("quote request response unreadable: %w", err)
	}
	return &parsed, nil
}
