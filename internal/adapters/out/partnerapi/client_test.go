package partnerapi_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vizoshop/internal/adapters/out/partnerapi"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/ports"
	"vizoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parcel() shipment.Request {
	req := shipment.NewDefaultRequest()
	req.OrderID = "ORD-1-u1"
	req.FirstName = "Amina"
	req.FamilyName = "Benali"
	req.Phone = "0555123456"
	req.ToRegionID = 9
	req.ToRegionName = "Blida"
	req.Price = 6390
	return req
}

func newClient(t *testing.T, url string) *partnerapi.Client {
	t.Helper()
	client, err := partnerapi.NewClient(partnerapi.Config{
		URL: url, APIKey: "id-123", APISecret: "token-456", Timeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)
	return client
}

func TestClient_CreateParcels_RelaysBody(t *testing.T) {
	reply := `{"ORD-1-u1":{"success":true,"tracking":"yal-ABC","label":"https://l/1"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "id-123", r.Header.Get("X-API-ID"))
		assert.Equal(t, "token-456", r.Header.Get("X-API-TOKEN"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var got []map[string]any
		assert.NoError(t, json.Unmarshal(raw, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "ORD-1-u1", got[0]["order_id"])
		assert.Equal(t, float64(9), got[0]["to_region_id"])
		assert.Equal(t, float64(6390), got[0]["price"])
		assert.NotContains(t, got[0], "RegionDefaulted")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	defer srv.Close()

	body, err := newClient(t, srv.URL).CreateParcels(t.Context(), []shipment.Request{parcel()}, "key-1")
	require.NoError(t, err)
	assert.JSONEq(t, reply, string(body))
}

func TestClient_CreateParcels_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"unknown commune"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).CreateParcels(t.Context(), []shipment.Request{parcel()}, "")

	var upstream *partnerapi.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnprocessableEntity, upstream.StatusCode)
	assert.JSONEq(t, `{"error":"unknown commune"}`, string(upstream.Body))
	assert.Contains(t, err.Error(), "partner responded 422")
	assert.NotErrorIs(t, err, ports.ErrPartnerReplyUnreadable)
}

func TestClient_CreateParcels_NonJSONReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).CreateParcels(t.Context(), []shipment.Request{parcel()}, "")
	require.ErrorIs(t, err, partnerapi.ErrNonJSONResponse)
	assert.ErrorIs(t, err, ports.ErrPartnerReplyUnreadable)
}

func TestClient_CreateParcels_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(t, url).CreateParcels(t.Context(), []shipment.Request{parcel()}, "")
	require.Error(t, err)

	var upstream *partnerapi.UpstreamError
	assert.False(t, errors.As(err, &upstream))
	assert.NotErrorIs(t, err, ports.ErrPartnerReplyUnreadable)
}

func TestConfig_Validate(t *testing.T) {
	err := partnerapi.Config{}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "partner URL")
	assert.Contains(t, err.Error(), "partner API key")
	assert.Contains(t, err.Error(), "partner API secret")

	_, err = partnerapi.NewClient(partnerapi.Config{URL: "http://x", APIKey: "k"}, nil)
	require.Error(t, err)
}
