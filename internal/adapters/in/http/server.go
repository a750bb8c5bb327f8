package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"vizoshop/internal/adapters/in/http/middleware"
	"vizoshop/internal/core/application/usecases/commands"
	"vizoshop/internal/core/application/usecases/queries"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/generated/servers"
	"vizoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderSubmitter runs the submission pipeline.
type OrderSubmitter interface {
	Handle(ctx context.Context, cmd commands.SubmitOrderCommand) (commands.SubmitOrderResult, error)
}

// OrderHistory reads an owner's past orders.
type OrderHistory interface {
	Handle(ctx context.Context, query queries.ListOwnerOrdersQuery) ([]queries.ListOwnerOrdersQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler OrderSubmitter

	// Query handlers
	listOrdersHandler       OrderHistory
	listRegionsHandler      queries.ListRegionsQueryHandler
	getSubRegionsHandler    queries.GetSubRegionsQueryHandler
	quoteShippingFeeHandler queries.QuoteShippingFeeQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler OrderSubmitter,
	listOrdersHandler OrderHistory,
	listRegionsHandler queries.ListRegionsQueryHandler,
	getSubRegionsHandler queries.GetSubRegionsQueryHandler,
	quoteShippingFeeHandler queries.QuoteShippingFeeQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:      submitOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		listRegionsHandler:      listRegionsHandler,
		getSubRegionsHandler:    getSubRegionsHandler,
		quoteShippingFeeHandler: quoteShippingFeeHandler,
	}
}

// SubmitOrder handles POST /api/v1/orders - runs the submission pipeline.
func (s *Server) SubmitOrder(ctx echo.Context, params servers.SubmitOrderParams) error {
	var body servers.SubmitOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:  http.StatusBadRequest,
			Error: "Invalid request body",
		})
	}

	key := ""
	if params.IdempotencyKey != nil {
		key = strings.TrimSpace(*params.IdempotencyKey)
	}
	if key == "" {
		key = uuid.NewString()
	}

	cmd, err := commands.NewSubmitOrderCommand(
		middleware.Owner(ctx),
		key,
		toCustomerInfo(body.Customer),
		region.DeliveryMethod(body.DeliveryMethod),
		order.Source(body.Source),
		toSelections(body.Items),
		toOverrides(body.Shipment),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:  http.StatusBadRequest,
			Error: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	ctx.Response().Header().Set("Idempotency-Key", key)

	if err == nil {
		return ctx.JSON(acceptedStatus(result.State), toOrderResult(result))
	}

	var validationErr *commands.ValidationError
	var persistenceErr *commands.PersistenceError
	switch {
	case errors.Is(err, commands.ErrAuthenticationRequired):
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:  http.StatusUnauthorized,
			Error: commands.ErrAuthenticationRequired.Error(),
		})
	case errors.As(err, &validationErr):
		fields := validationErr.Fields
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationErrors{
			Code:   http.StatusUnprocessableEntity,
			Error:  result.Message(),
			Errors: &fields,
		})
	case errors.As(err, &persistenceErr):
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:  http.StatusInternalServerError,
			Error: result.Message(),
		})
	case result.State == commands.Rejected:
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationErrors{
			Code:  http.StatusUnprocessableEntity,
			Error: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:  http.StatusInternalServerError,
			Error: "Failed to submit order",
		})
	}
}

// ListOrders handles GET /api/v1/orders - the session owner's order history.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	owner := middleware.Owner(ctx)
	if owner == "" {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:  http.StatusUnauthorized,
			Error: commands.ErrAuthenticationRequired.Error(),
		})
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOwnerOrdersQuery(owner, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:  http.StatusBadRequest,
			Error: err.Error(),
		})
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:  http.StatusInternalServerError,
			Error: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderHistoryEntry, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderHistoryEntry{
			Id:             o.ID.Bytes(),
			Status:         o.Status.String(),
			Source:         o.Source.String(),
			DeliveryMethod: servers.DeliveryMethod(o.DeliveryMethod),
			Region:         o.Region,
			ItemCount:      o.ItemCount,
			Total:          o.Total.StringFixed(2),
			CreatedAt:      o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListRegions handles GET /api/v1/regions.
func (s *Server) ListRegions(ctx echo.Context) error {
	names, err := s.listRegionsHandler.Handle(queries.NewListRegionsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:  http.StatusInternalServerError,
			Error: "Failed to retrieve regions",
		})
	}
	return ctx.JSON(http.StatusOK, names)
}

// GetSubRegions handles GET /api/v1/regions/{region}/sub-regions.
func (s *Server) GetSubRegions(ctx echo.Context, regionName string) error {
	query, err := queries.NewGetSubRegionsQuery(regionName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:  http.StatusBadRequest,
			Error: err.Error(),
		})
	}

	resp, err := s.getSubRegionsHandler.Handle(query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:  http.StatusNotFound,
				Error: "Unknown region: " + regionName,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:  http.StatusInternalServerError,
			Error: "Failed to retrieve sub-regions",
		})
	}

	return ctx.JSON(http.StatusOK, servers.SubRegions{
		Region:     resp.Region,
		SubRegions: resp.SubRegions,
	})
}

// QuoteShippingFee handles GET /api/v1/shipping-fees.
func (s *Server) QuoteShippingFee(ctx echo.Context, params servers.QuoteShippingFeeParams) error {
	query, err := queries.NewQuoteShippingFeeQuery(params.Region, region.DeliveryMethod(params.Method))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:  http.StatusBadRequest,
			Error: err.Error(),
		})
	}

	quote, err := s.quoteShippingFeeHandler.Handle(query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:  http.StatusInternalServerError,
			Error: "Failed to quote shipping fee",
		})
	}

	return ctx.JSON(http.StatusOK, servers.ShippingFee{
		Region:   quote.Region,
		Method:   servers.DeliveryMethod(quote.Method),
		Fee:      quote.Fee.StringFixed(2),
		Resolved: quote.Resolved,
	})
}

func acceptedStatus(state commands.SubmissionState) int {
	switch state {
	case commands.Completed:
		return http.StatusCreated
	case commands.PartiallyCompleted:
		return http.StatusAccepted
	default:
		return http.StatusOK
	}
}

func toOrderResult(result commands.SubmitOrderResult) servers.OrderResult {
	out := servers.OrderResult{
		State:            result.State.String(),
		Message:          result.Message(),
		ShippingResolved: result.ShippingResolved,
	}

	if result.OrderID.Validate() == nil {
		id := result.OrderID.Bytes()
		subtotal := result.Summary.Subtotal().StringFixed(2)
		fee := result.Summary.ShippingFee().StringFixed(2)
		total := result.Summary.Total().StringFixed(2)

		out.OrderId = &id
		out.Subtotal = &subtotal
		out.ShippingFee = &fee
		out.Total = &total
	}

	out.Reference = optional(result.Reference)
	out.TrackingRef = optional(result.Tracking)
	out.Label = optional(result.Label)
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toCustomerInfo(c servers.Customer) order.CustomerInfo {
	info := order.CustomerInfo{
		FullName:  c.FullName,
		Phone:     c.Phone,
		Region:    c.Region,
		SubRegion: c.SubRegion,
	}
	if c.Address != nil {
		info.Address = *c.Address
	}
	return info
}

func toSelections(items *[]servers.ItemSelection) []commands.ItemSelection {
	if items == nil {
		return nil
	}

	selections := make([]commands.ItemSelection, len(*items))
	for i, item := range *items {
		selections[i] = commands.ItemSelection{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		}
		if item.Size != nil {
			selections[i].Size = *item.Size
		}
	}
	return selections
}

func toOverrides(options *servers.ShipmentOptions) shipment.Overrides {
	if options == nil {
		return shipment.Overrides{}
	}
	return shipment.Overrides{
		DoInsurance:  options.DoInsurance,
		HasExchange:  options.HasExchange,
		FreeShipping: options.FreeShipping,
	}
}
