// Package registrar talks to the external domain registrar. Availability
// and registration are third-party side effects; errors from the registrar
// are surfaced verbatim and never retried automatically.
package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Availability is the result of a domain availability check.
type Availability struct {
	Domain    string  `json:"domain"`
	Available bool    `json:"available"`
	Price     float64 `json:"price,omitempty"`
}

// Client is the registrar abstraction consumed by the publication flow.
type Client interface {
	CheckAvailability(ctx context.Context, domain string) (Availability, error)
	Register(ctx context.Context, domain string) error
}

// NameClient implements Client against a Name.com-compatible v4 API.
type NameClient struct {
	BaseURL  string
	Username string
	APIKey   string
	HTTP     *http.Client
}

// NewNameClient constructs a NameClient with a default timeout.
func NewNameClient(baseURL, username, apiKey string) *NameClient {
	return &NameClient{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

type checkAvailabilityRequest struct {
	DomainNames []string `json:"domainNames"`
}

type checkAvailabilityResponse struct {
	Results []struct {
		DomainName    string  `json:"domainName"`
		Purchasable   bool    `json:"purchasable"`
		PurchasePrice float64 `json:"purchasePrice"`
	} `json:"results"`
}

// CheckAvailability asks the registrar whether the domain can be purchased.
func (c *NameClient) CheckAvailability(ctx context.Context, domain string) (Availability, error) {
	payload := checkAvailabilityRequest{DomainNames: []string{domain}}

	var parsed checkAvailabilityResponse
	if err := c.post(ctx, "/v4/domains:checkAvailability", payload, &parsed); err != nil {
		return Availability{}, err
	}

	out := Availability{Domain: domain}
	if len(parsed.Results) > 0 {
		out.Available = parsed.Results[0].Purchasable
		out.Price = parsed.Results[0].PurchasePrice
	}
	return out, nil
}

type registerRequest struct {
	Domain struct {
		DomainName string `json:"domainName"`
	} `json:"domain"`
	PurchasePrice float64 `json:"purchasePrice"`
}

// Register purchases the domain. Registration is not idempotent; callers
// must guarantee at-most-once invocation per domain.
func (c *NameClient) Register(ctx context.Context, domain string) error {
	var payload registerRequest
	payload.Domain.DomainName = domain
	return c.post(ctx, "/v4/domains", payload, nil)
}

func (c *NameClient) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.Username, c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("registrar: %s %s: %s", resp.Status, path, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *NameClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

var _ Client = (*NameClient)(nil)
