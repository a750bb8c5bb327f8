package gatewayclient_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"vizoshop/internal/adapters/out/gatewayclient"
	"vizoshop/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipmentRequest() shipment.Request {
	req := shipment.NewDefaultRequest()
	req.OrderID = "ORD-1740823200000-u1AbCd"
	req.ToRegionName = "Blida"
	req.Price = 6390
	return req
}

func newDispatcher(endpoints ...gatewayclient.Endpoint) *gatewayclient.FallbackDispatcher {
	return gatewayclient.NewFallbackDispatcher(endpoints, nil, slog.New(slog.DiscardHandler))
}

func endpoint(url string) gatewayclient.Endpoint {
	return gatewayclient.Endpoint{URL: url, Timeout: 2 * time.Second}
}

func closedServerURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func acceptingServer(t *testing.T, hits *atomic.Int32, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var batch []shipment.Request
		assert.NoError(t, json.Unmarshal(raw, &batch))
		assert.Len(t, batch, 1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
}

func TestFallbackDispatcher_FirstFailsSecondSucceeds(t *testing.T) {
	var hits atomic.Int32
	b := acceptingServer(t, &hits, `{"ORD-1740823200000-u1AbCd":{"success":true,"tracking":"YAL-B","label":"https://labels/b"}}`)
	defer b.Close()

	d := newDispatcher(endpoint(closedServerURL()), endpoint(b.URL))

	receipt, err := d.Dispatch(t.Context(), shipmentRequest(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, b.URL, receipt.Endpoint)
	assert.Equal(t, "YAL-B", receipt.Tracking)
	assert.Equal(t, "https://labels/b", receipt.Label)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFallbackDispatcher_StopsAtFirstSuccess(t *testing.T) {
	var firstHits, secondHits atomic.Int32
	a := acceptingServer(t, &firstHits, `{"tracking":"YAL-A"}`)
	defer a.Close()
	b := acceptingServer(t, &secondHits, `{"tracking":"YAL-B"}`)
	defer b.Close()

	receipt, err := newDispatcher(endpoint(a.URL), endpoint(b.URL)).Dispatch(t.Context(), shipmentRequest(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, "YAL-A", receipt.Tracking)
	assert.Equal(t, int32(1), firstHits.Load())
	assert.Equal(t, int32(0), secondHits.Load())
}

func TestFallbackDispatcher_Non2xxAdvances(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"partner responded 502"}`))
	}))
	defer failing.Close()

	var hits atomic.Int32
	ok := acceptingServer(t, &hits, `{"tracking":"YAL-OK"}`)
	defer ok.Close()

	receipt, err := newDispatcher(endpoint(failing.URL), endpoint(ok.URL)).Dispatch(t.Context(), shipmentRequest(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, "YAL-OK", receipt.Tracking)
}

func TestFallbackDispatcher_PerEndpointTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	var hits atomic.Int32
	fast := acceptingServer(t, &hits, `{"tracking":"YAL-FAST"}`)
	defer fast.Close()

	d := newDispatcher(
		gatewayclient.Endpoint{URL: slow.URL, Timeout: 50 * time.Millisecond},
		endpoint(fast.URL),
	)

	started := time.Now()
	receipt, err := d.Dispatch(t.Context(), shipmentRequest(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, "YAL-FAST", receipt.Tracking)
	assert.Less(t, time.Since(started), time.Second)
}

func TestFallbackDispatcher_AllFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()
	down := closedServerURL()

	_, err := newDispatcher(endpoint(down), endpoint(failing.URL)).Dispatch(t.Context(), shipmentRequest(), "key-1")

	var exhausted *gatewayclient.DispatchExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Failures, 2)
	assert.Equal(t, down, exhausted.Failures[0].URL)
	assert.Zero(t, exhausted.Failures[0].StatusCode)
	assert.Equal(t, http.StatusBadGateway, exhausted.Failures[1].StatusCode)
	assert.Contains(t, err.Error(), "all 2 gateway endpoints failed")
}

func TestFallbackDispatcher_NoEndpoints(t *testing.T) {
	_, err := newDispatcher().Dispatch(t.Context(), shipmentRequest(), "key-1")
	require.ErrorIs(t, err, gatewayclient.ErrNoEndpoints)
}

func TestFallbackDispatcher_ConflictStopsFallback(t *testing.T) {
	conflict := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer conflict.Close()

	var hits atomic.Int32
	next := acceptingServer(t, &hits, `{"tracking":"YAL-2"}`)
	defer next.Close()

	_, err := newDispatcher(endpoint(conflict.URL), endpoint(next.URL)).Dispatch(t.Context(), shipmentRequest(), "key-1")
	require.ErrorIs(t, err, gatewayclient.ErrAlreadyRequested)
	assert.Equal(t, int32(0), hits.Load())
}

func TestFallbackDispatcher_Probe(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer healthy.Close()

	d := newDispatcher(endpoint(healthy.URL+"/api/yalidine-orders"), endpoint(closedServerURL()))

	results := d.Probe(t.Context())
	require.Len(t, results, 2)
	assert.True(t, results[0].Reachable)
	assert.Equal(t, http.StatusOK, results[0].Status)
	assert.False(t, results[1].Reachable)
	assert.Error(t, results[1].Err)
}
