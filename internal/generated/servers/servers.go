// Package servers binds the storefront OpenAPI document to echo. It keeps the
// shape oapi-codegen emits for echo servers so the handlers stay compatible
// with a regenerated package.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for DeliveryMethod.
const (
	Home        DeliveryMethod = "home"
	PickupPoint DeliveryMethod = "pickupPoint"
)

// Defines values for SubmitOrderRequestSource.
const (
	Cart   SubmitOrderRequestSource = "cart"
	Direct SubmitOrderRequestSource = "direct"
)

// Customer defines model for Customer.
type Customer struct {
	Address   *string `json:"address,omitempty"`
	FullName  string  `json:"fullName"`
	Phone     string  `json:"phone"`
	Region    string  `json:"region"`
	SubRegion string  `json:"subRegion"`
}

// DeliveryMethod defines model for DeliveryMethod.
type DeliveryMethod string

// Error defines model for Error.
type Error struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// ItemSelection defines model for ItemSelection.
type ItemSelection struct {
	ProductId string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
}

// OrderHistoryEntry defines model for OrderHistoryEntry.
type OrderHistoryEntry struct {
	CreatedAt      time.Time          `json:"createdAt"`
	DeliveryMethod DeliveryMethod     `json:"deliveryMethod"`
	Id             openapi_types.UUID `json:"id"`
	ItemCount      int                `json:"itemCount"`
	Region         string             `json:"region"`
	Source         string             `json:"source"`
	Status         string             `json:"status"`
	Total          string             `json:"total"`
}

// OrderResult defines model for OrderResult.
type OrderResult struct {
	Label            *string             `json:"label,omitempty"`
	Message          string              `json:"message"`
	OrderId          *openapi_types.UUID `json:"orderId,omitempty"`
	Reference        *string             `json:"reference,omitempty"`
	ShippingFee      *string             `json:"shippingFee,omitempty"`
	ShippingResolved bool                `json:"shippingResolved"`
	State            string              `json:"state"`
	Subtotal         *string             `json:"subtotal,omitempty"`
	Total            *string             `json:"total,omitempty"`
	TrackingRef      *string             `json:"trackingRef,omitempty"`
}

// ShipmentOptions defines model for ShipmentOptions.
type ShipmentOptions struct {
	DoInsurance  *bool `json:"doInsurance,omitempty"`
	FreeShipping *bool `json:"freeShipping,omitempty"`
	HasExchange  *bool `json:"hasExchange,omitempty"`
}

// ShippingFee defines model for ShippingFee.
type ShippingFee struct {
	Fee      string         `json:"fee"`
	Method   DeliveryMethod `json:"method"`
	Region   string         `json:"region"`
	Resolved bool           `json:"resolved"`
}

// SubRegions defines model for SubRegions.
type SubRegions struct {
	Region     string   `json:"region"`
	SubRegions []string `json:"subRegions"`
}

// SubmitOrderRequest defines model for SubmitOrderRequest.
type SubmitOrderRequest struct {
	Customer       Customer                 `json:"customer"`
	DeliveryMethod DeliveryMethod           `json:"deliveryMethod"`
	Items          *[]ItemSelection         `json:"items,omitempty"`
	Shipment       *ShipmentOptions         `json:"shipment,omitempty"`
	Source         SubmitOrderRequestSource `json:"source"`
}

// SubmitOrderRequestSource defines model for SubmitOrderRequest.Source.
type SubmitOrderRequestSource string

// ValidationErrors defines model for ValidationErrors.
type ValidationErrors struct {
	Code   int                `json:"code"`
	Error  string             `json:"error"`
	Errors *map[string]string `json:"errors,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// SubmitOrderParams defines parameters for SubmitOrder.
type SubmitOrderParams struct {
	IdempotencyKey *string `json:"Idempotency-Key,omitempty"`
}

// QuoteShippingFeeParams defines parameters for QuoteShippingFee.
type QuoteShippingFeeParams struct {
	Region string         `form:"region" json:"region"`
	Method DeliveryMethod `form:"method" json:"method"`
}

// SubmitOrderJSONRequestBody defines body for SubmitOrder for application/json ContentType.
type SubmitOrderJSONRequestBody = SubmitOrderRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Order history of the session owner
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Submit an order
	// (POST /api/v1/orders)
	SubmitOrder(ctx echo.Context, params SubmitOrderParams) error
	// Region names in directory order
	// (GET /api/v1/regions)
	ListRegions(ctx echo.Context) error
	// Sub-regions of a region
	// (GET /api/v1/regions/{region}/sub-regions)
	GetSubRegions(ctx echo.Context, region string) error
	// Shipping fee for a region and delivery method
	// (GET /api/v1/shipping-fees)
	QuoteShippingFee(ctx echo.Context, params QuoteShippingFeeParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// SubmitOrder converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params SubmitOrderParams

	headers := ctx.Request().Header
	// ------------- Optional header parameter "Idempotency-Key" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		var IdempotencyKey string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &IdempotencyKey, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}

		params.IdempotencyKey = &IdempotencyKey
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SubmitOrder(ctx, params)
	return err
}

// ListRegions converts echo context to params.
func (w *ServerInterfaceWrapper) ListRegions(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListRegions(ctx)
	return err
}

// GetSubRegions converts echo context to params.
func (w *ServerInterfaceWrapper) GetSubRegions(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "region" -------------
	var region string

	err = runtime.BindStyledParameterWithOptions("simple", "region", ctx.Param("region"), &region, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter region: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSubRegions(ctx, region)
	return err
}

// QuoteShippingFee converts echo context to params.
func (w *ServerInterfaceWrapper) QuoteShippingFee(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params QuoteShippingFeeParams
	// ------------- Required query parameter "region" -------------

	err = runtime.BindQueryParameter("form", true, true, "region", ctx.QueryParams(), &params.Region)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter region: %s", err))
	}

	// ------------- Required query parameter "method" -------------

	err = runtime.BindQueryParameter("form", true, true, "method", ctx.QueryParams(), &params.Method)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter method: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.QuoteShippingFee(ctx, params)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.SubmitOrder)
	router.GET(baseURL+"/api/v1/regions", wrapper.ListRegions)
	router.GET(baseURL+"/api/v1/regions/:region/sub-regions", wrapper.GetSubRegions)
	router.GET(baseURL+"/api/v1/shipping-fees", wrapper.QuoteShippingFee)

}

//go:embed openapi.yaml
var swaggerSpec []byte

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return swaggerSpec
}

// GetSwagger parses the embedded OpenAPI document. RegisterHandlers serves
// exactly the operations it declares.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
