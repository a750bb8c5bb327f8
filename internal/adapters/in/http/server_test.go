package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "vizoshop/internal/adapters/in/http"
	"vizoshop/internal/adapters/in/http/middleware"
	"vizoshop/internal/core/application/usecases/commands"
	"vizoshop/internal/core/application/usecases/queries"
	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "storefront-test-secret"

type submitterFunc func(ctx context.Context, cmd commands.SubmitOrderCommand) (commands.SubmitOrderResult, error)

func (f submitterFunc) Handle(ctx context.Context, cmd commands.SubmitOrderCommand) (commands.SubmitOrderResult, error) {
	return f(ctx, cmd)
}

type historyFunc func(ctx context.Context, query queries.ListOwnerOrdersQuery) ([]queries.ListOwnerOrdersQueryResponse, error)

func (f historyFunc) Handle(ctx context.Context, query queries.ListOwnerOrdersQuery) ([]queries.ListOwnerOrdersQueryResponse, error) {
	return f(ctx, query)
}

type storefront struct {
	e        *echo.Echo
	verifier middleware.SessionVerifier
	received *commands.SubmitOrderCommand
	result   commands.SubmitOrderResult
	err      error
	history  []queries.ListOwnerOrdersQueryResponse
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()

	sf := &storefront{verifier: middleware.NewSessionVerifier(testSecret)}

	submit := submitterFunc(func(_ context.Context, cmd commands.SubmitOrderCommand) (commands.SubmitOrderResult, error) {
		sf.received = &cmd
		return sf.result, sf.err
	})
	history := historyFunc(func(_ context.Context, _ queries.ListOwnerOrdersQuery) ([]queries.ListOwnerOrdersQueryResponse, error) {
		return sf.history, nil
	})

	directory := region.NewDirectory()
	server := httpin.NewServer(
		submit,
		history,
		queries.NewListRegionsQueryHandler(directory),
		queries.NewGetSubRegionsQueryHandler(directory),
		queries.NewQuoteShippingFeeQueryHandler(services.NewShippingCostCalculator(region.NewTariffTable())),
	)

	e, err := httpin.NewRouter(server, sf.verifier, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	sf.e = e
	return sf
}

func (sf *storefront) token(t *testing.T, owner string) string {
	t.Helper()
	token, err := sf.verifier.Sign(middleware.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   owner,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	require.NoError(t, err)
	return token
}

func (sf *storefront) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	sf.e.ServeHTTP(rec, req)
	return rec
}

const orderBody = `{
	"customer": {"fullName": "Amina Benali", "phone": "+213 555123456", "address": "12 rue des Roses", "region": "Blida", "subRegion": "Boufarik"},
	"deliveryMethod": "home",
	"source": "cart",
	"shipment": {"hasExchange": true}
}`

func submitRequest(body, token, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func placedResult(t *testing.T, state commands.SubmissionState) commands.SubmitOrderResult {
	t.Helper()
	item, err := order.NewItem("p-1", "Linen shirt", decimal.NewFromInt(2900), 2, "", "L")
	require.NoError(t, err)
	summary, err := order.NewSummary([]order.Item{item}, decimal.NewFromInt(590))
	require.NoError(t, err)

	return commands.SubmitOrderResult{
		State:            state,
		OrderID:          kernel.NewUUID(),
		Summary:          summary,
		ShippingResolved: true,
		Reference:        "ORD-1740823200000-user-4",
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestSubmitOrder_Completed(t *testing.T) {
	sf := newStorefront(t)
	sf.result = placedResult(t, commands.Completed)
	sf.result.Tracking = "YAL-123"
	sf.result.Label = "https://labels/123"

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Completed", body["state"])
	assert.Equal(t, "YAL-123", body["trackingRef"])
	assert.Equal(t, "https://labels/123", body["label"])
	assert.Equal(t, "5800.00", body["subtotal"])
	assert.Equal(t, "590.00", body["shippingFee"])
	assert.Equal(t, "6390.00", body["total"])
	assert.Equal(t, true, body["shippingResolved"])

	require.NotNil(t, sf.received)
	assert.Equal(t, "user-42", sf.received.OwnerID())
	assert.Equal(t, "key-0001", sf.received.IdempotencyKey())
	assert.Equal(t, region.Home, sf.received.DeliveryMethod())
	assert.Equal(t, order.SourceCart, sf.received.Source())
	assert.Equal(t, "Boufarik", sf.received.Customer().SubRegion)
	require.NotNil(t, sf.received.Overrides().HasExchange)
	assert.True(t, *sf.received.Overrides().HasExchange)
	assert.Nil(t, sf.received.Overrides().DoInsurance)
}

func TestSubmitOrder_GeneratesIdempotencyKey(t *testing.T) {
	sf := newStorefront(t)
	sf.result = placedResult(t, commands.Completed)

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), ""))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, sf.received)
	assert.NotEmpty(t, sf.received.IdempotencyKey())
	assert.Equal(t, sf.received.IdempotencyKey(), rec.Header().Get("Idempotency-Key"))
}

func TestSubmitOrder_PartiallyCompleted(t *testing.T) {
	sf := newStorefront(t)
	sf.result = placedResult(t, commands.PartiallyCompleted)

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "PartiallyCompleted", body["state"])
	assert.Equal(t, "saved, will be arranged manually", body["message"])
	assert.NotContains(t, body, "trackingRef")
}

func TestSubmitOrder_Duplicate(t *testing.T) {
	sf := newStorefront(t)
	sf.result = placedResult(t, commands.Duplicate)

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Duplicate", decode(t, rec)["state"])
}

func TestSubmitOrder_UnresolvedShippingIsExposed(t *testing.T) {
	sf := newStorefront(t)
	sf.result = placedResult(t, commands.Completed)
	sf.result.ShippingResolved = false

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, false, decode(t, rec)["shippingResolved"])
}

func TestSubmitOrder_Anonymous(t *testing.T) {
	sf := newStorefront(t)
	sf.result = commands.SubmitOrderResult{State: commands.Rejected}
	sf.err = commands.ErrAuthenticationRequired

	rec := sf.do(submitRequest(orderBody, "", "key-0001"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "needs login", decode(t, rec)["error"])
	require.NotNil(t, sf.received)
	assert.Empty(t, sf.received.OwnerID())
}

func TestSubmitOrder_InvalidToken(t *testing.T) {
	sf := newStorefront(t)
	other := middleware.NewSessionVerifier("another-secret")
	token, err := other.Sign(middleware.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"}})
	require.NoError(t, err)

	rec := sf.do(submitRequest(orderBody, token, "key-0001"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sf.received)
}

func TestSubmitOrder_ValidationErrors(t *testing.T) {
	sf := newStorefront(t)
	fields := map[string]string{"phone": "phone must look like +213 555123456"}
	sf.result = commands.SubmitOrderResult{State: commands.Rejected, FieldErrors: fields}
	sf.err = &commands.ValidationError{Fields: fields}

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "order rejected", body["error"])
	assert.Equal(t, map[string]any{"phone": "phone must look like +213 555123456"}, body["errors"])
}

func TestSubmitOrder_NoItems(t *testing.T) {
	sf := newStorefront(t)
	sf.result = commands.SubmitOrderResult{State: commands.Rejected}
	sf.err = commands.ErrNoItems

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, commands.ErrNoItems.Error(), decode(t, rec)["error"])
}

func TestSubmitOrder_PersistenceFailed(t *testing.T) {
	sf := newStorefront(t)
	sf.result = commands.SubmitOrderResult{State: commands.PersistenceFailed}
	sf.err = &commands.PersistenceError{Cause: errors.New("connection refused")}

	rec := sf.do(submitRequest(orderBody, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "order could not be saved, please retry", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSubmitOrder_ContractViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"customer":`},
		{"unknown delivery method", strings.Replace(orderBody, `"home"`, `"drone"`, 1)},
		{"unknown source", strings.Replace(orderBody, `"cart"`, `"wishlist"`, 1)},
		{"missing customer", `{"deliveryMethod":"home","source":"cart"}`},
		{"zero quantity", `{
			"customer": {"fullName": "A B", "phone": "+213 555123456", "region": "Blida", "subRegion": "Blida"},
			"deliveryMethod": "pickupPoint", "source": "direct",
			"items": [{"productId": "p-1", "quantity": 0}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := newStorefront(t)

			rec := sf.do(submitRequest(tt.body, sf.token(t, "user-42"), "key-0001"))

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Nil(t, sf.received)
		})
	}
}

func TestSubmitOrder_DirectItems(t *testing.T) {
	sf := newStorefront(t)
	sf.result = placedResult(t, commands.Completed)

	body := `{
		"customer": {"fullName": "Amina Benali", "phone": "+213 555123456", "region": "Blida", "subRegion": "Boufarik"},
		"deliveryMethod": "pickupPoint",
		"source": "direct",
		"items": [{"productId": "p-1", "quantity": 2, "size": "L"}, {"productId": "p-2", "quantity": 1}]
	}`
	rec := sf.do(submitRequest(body, sf.token(t, "user-42"), "key-0001"))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, sf.received)
	assert.Equal(t, []commands.ItemSelection{
		{ProductID: "p-1", Quantity: 2, Size: "L"},
		{ProductID: "p-2", Quantity: 1},
	}, sf.received.Selections())
}

func TestListRegions(t *testing.T) {
	sf := newStorefront(t)

	rec := sf.do(httptest.NewRequest(http.MethodGet, "/api/v1/regions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Len(t, names, 58)
	assert.Equal(t, "Adrar", names[0])
}

func TestGetSubRegions(t *testing.T) {
	sf := newStorefront(t)

	rec := sf.do(httptest.NewRequest(http.MethodGet, "/api/v1/regions/Blida/sub-regions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Blida", body["region"])
	assert.Contains(t, body["subRegions"], "Boufarik")
}

func TestGetSubRegions_UnknownRegion(t *testing.T) {
	sf := newStorefront(t)

	rec := sf.do(httptest.NewRequest(http.MethodGet, "/api/v1/regions/Atlantis/sub-regions", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteShippingFee(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantFee      string
		wantResolved bool
	}{
		{"home delivery", "region=Blida&method=home", "590.00", true},
		{"pickup point", "region=Blida&method=pickupPoint", "390.00", true},
		{"unknown region", "region=Atlantis&method=home", "0.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := newStorefront(t)

			rec := sf.do(httptest.NewRequest(http.MethodGet, "/api/v1/shipping-fees?"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := decode(t, rec)
			assert.Equal(t, tt.wantFee, body["fee"])
			assert.Equal(t, tt.wantResolved, body["resolved"])
		})
	}
}

func TestQuoteShippingFee_InvalidMethod(t *testing.T) {
	sf := newStorefront(t)

	rec := sf.do(httptest.NewRequest(http.MethodGet, "/api/v1/shipping-fees?region=Blida&method=drone", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrders(t *testing.T) {
	sf := newStorefront(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	id := kernel.NewUUID()
	sf.history = []queries.ListOwnerOrdersQueryResponse{{
		ID:             id,
		Status:         order.Pending,
		Source:         order.SourceCart,
		DeliveryMethod: region.Home,
		Region:         "Blida",
		ItemCount:      3,
		Total:          decimal.NewFromInt(6390),
		CreatedAt:      createdAt,
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?limit=5", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+sf.token(t, "user-42"))
	rec := sf.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, id.String(), entries[0]["id"])
	assert.Equal(t, "6390.00", entries[0]["total"])
	assert.Equal(t, float64(3), entries[0]["itemCount"])
}

func TestListOrders_Anonymous(t *testing.T) {
	sf := newStorefront(t)

	rec := sf.do(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	sf := newStorefront(t)

	rec := sf.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
