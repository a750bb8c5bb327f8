package gatewayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"vizoshop/internal/core/domain/model/shipment"
)

const maxResponseBytes = 1 << 20

var (
	// ErrNoEndpoints means no candidate relay is configured.
	ErrNoEndpoints = errors.New("no gateway endpoint configured")

	// ErrAlreadyRequested means a relay reports the parcel for this
	// idempotency key was already created. Trying further relays would not
	// help, so the fallback stops.
	ErrAlreadyRequested = errors.New("shipment already requested")
)

// EndpointFailure is why one candidate did not accept the request.
type EndpointFailure struct {
	URL        string
	StatusCode int
	Err        error
}

func (f EndpointFailure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", f.URL, f.StatusCode, f.Err)
	}
	return fmt.Sprintf("%s: %v", f.URL, f.Err)
}

func (f EndpointFailure) Unwrap() error {
	return f.Err
}

// DispatchExhaustedError aggregates every candidate's failure.
type DispatchExhaustedError struct {
	Failures []EndpointFailure
}

func (e *DispatchExhaustedError) Error() string {
	if len(e.Failures) == 0 {
		return ErrNoEndpoints.Error()
	}

	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("all %d gateway endpoints failed: %s", len(e.Failures), strings.Join(parts, "; "))
}

func (e *DispatchExhaustedError) Unwrap() []error {
	if len(e.Failures) == 0 {
		return []error{ErrNoEndpoints}
	}

	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// FallbackDispatcher implements ports.ShipmentDispatcher. Candidates are
// tried one at a time in configuration order; the first 2xx wins.
type FallbackDispatcher struct {
	endpoints []Endpoint
	client    *http.Client
	logger    *slog.Logger
}

// NewFallbackDispatcher uses http.DefaultClient when client is nil.
// Per-endpoint timeouts are applied through the request context.
func NewFallbackDispatcher(endpoints []Endpoint, client *http.Client, logger *slog.Logger) *FallbackDispatcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &FallbackDispatcher{
		endpoints: append([]Endpoint(nil), endpoints...),
		client:    client,
		logger:    logger.With("component", "gateway_dispatcher"),
	}
}

// Endpoints returns the candidates in trial order.
func (d *FallbackDispatcher) Endpoints() []Endpoint {
	return append([]Endpoint(nil), d.endpoints...)
}

func (d *FallbackDispatcher) Dispatch(
	ctx context.Context,
	req shipment.Request,
	idempotencyKey string,
) (shipment.Receipt, error) {
	payload, err := json.Marshal([]shipment.Request{req})
	if err != nil {
		return shipment.Receipt{}, fmt.Errorf("encode shipment request: %w", err)
	}

	exhausted := &DispatchExhaustedError{}
	for _, endpoint := range d.endpoints {
		body, failure := d.try(ctx, endpoint, payload, idempotencyKey)
		if failure == nil {
			tracking, label := shipment.ParseReceipt(body, req.OrderID)
			return shipment.Receipt{
				Endpoint: endpoint.URL,
				Tracking: tracking,
				Label:    label,
				Body:     body,
			}, nil
		}

		d.logger.WarnContext(ctx, "Gateway endpoint failed",
			"endpoint", endpoint.URL, "status", failure.StatusCode, "error", failure.Err)
		exhausted.Failures = append(exhausted.Failures, *failure)

		if errors.Is(failure.Err, ErrAlreadyRequested) || ctx.Err() != nil {
			break
		}
	}

	return shipment.Receipt{}, exhausted
}

func (d *FallbackDispatcher) try(
	ctx context.Context,
	endpoint Endpoint,
	payload []byte,
	idempotencyKey string,
) ([]byte, *EndpointFailure) {
	ctx, cancel := context.WithTimeout(ctx, endpoint.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, &EndpointFailure{URL: endpoint.URL, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, &EndpointFailure{URL: endpoint.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &EndpointFailure{URL: endpoint.URL, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		return nil, &EndpointFailure{URL: endpoint.URL, StatusCode: resp.StatusCode, Err: ErrAlreadyRequested}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &EndpointFailure{
			URL:        endpoint.URL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(truncate(body, 256))),
		}
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
