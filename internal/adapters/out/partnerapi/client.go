// Package partnerapi posts parcels to the delivery partner's parcel-creation
// endpoint.
package partnerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/ports"
	"vizoshop/internal/pkg/errs"
)

// maxResponseBytes bounds how much of a partner reply is read.
const maxResponseBytes = 1 << 20

var ErrNonJSONResponse = errors.New("partner response is not JSON")

// Config carries the partner endpoint and service credentials.
type Config struct {
	URL       string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

func (c Config) Validate() error {
	var problems []error
	if strings.TrimSpace(c.URL) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("partner URL"))
	}
	if strings.TrimSpace(c.APIKey) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("partner API key"))
	}
	if strings.TrimSpace(c.APISecret) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("partner API secret"))
	}
	if c.Timeout < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("partner timeout", c.Timeout, 0, "unbounded"))
	}
	return errors.Join(problems...)
}

// UpstreamError is a non-2xx reply from the partner.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("partner responded %d: %s", e.StatusCode, body)
}

// Client implements ports.PartnerClient over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient validates cfg. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{cfg: cfg, http: httpClient}, nil
}

// CreateParcels posts parcels as a JSON array and returns the reply body
// unchanged.
func (c *Client) CreateParcels(ctx context.Context, parcels []shipment.Request, idempotencyKey string) ([]byte, error) {
	payload, err := json.Marshal(parcels)
	if err != nil {
		return nil, fmt.Errorf("encode parcels: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build partner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-ID", c.cfg.APIKey)
	req.Header.Set("X-API-TOKEN", c.cfg.APISecret)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call partner: %w", err)
	}
	defer resp.Body.Close()

	accepted := resp.StatusCode >= 200 && resp.StatusCode <= 299

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if accepted {
			return nil, fmt.Errorf("read partner response: %w: %w", ports.ErrPartnerReplyUnreadable, err)
		}
		return nil, fmt.Errorf("read partner response: %w", err)
	}

	if !accepted {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %w: %q", ports.ErrPartnerReplyUnreadable, ErrNonJSONResponse, truncate(body, 128))
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
