package gatewayclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ProbeResult is the outcome of one health check.
type ProbeResult struct {
	Endpoint  Endpoint
	Reachable bool
	Status    int
	Latency   time.Duration
	Err       error
}

// Probe calls the health route of every candidate. It never dispatches
// anything.
func (d *FallbackDispatcher) Probe(ctx context.Context) []ProbeResult {
	results := make([]ProbeResult, 0, len(d.endpoints))
	for _, endpoint := range d.endpoints {
		results = append(results, d.probe(ctx, endpoint))
	}
	return results
}

func (d *FallbackDispatcher) probe(ctx context.Context, endpoint Endpoint) ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, endpoint.Timeout)
	defer cancel()

	result := ProbeResult{Endpoint: endpoint}
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.HealthURL(), nil)
	if err != nil {
		result.Err = err
		return result
	}

	resp, err := d.client.Do(req)
	result.Latency = time.Since(started)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	result.Status = resp.StatusCode
	result.Reachable = resp.StatusCode == http.StatusOK
	if !result.Reachable {
		result.Err = fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return result
}
