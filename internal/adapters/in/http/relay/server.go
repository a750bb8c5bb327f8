// Package relay is the HTTP face of the delivery partner gateway: one route
// that forwards a single parcel to the partner and a health route.
package relay

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"vizoshop/internal/adapters/in/http/middleware"
	"vizoshop/internal/core/application/usecases/commands"
	"vizoshop/internal/core/domain/model/shipment"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	// RegionDefaultedHeader lists the names that were unknown and resolved
	// to the capital, e.g. "region,subRegion". Absent when nothing defaulted.
	RegionDefaultedHeader = "X-Region-Defaulted"

	maxBodyBytes    = 64 << 10
	swaggerInstance = "gateway"
)

//go:embed openapi.yaml
var spec []byte

// ShipmentRelay forwards one parcel to the partner.
type ShipmentRelay interface {
	Handle(ctx context.Context, cmd commands.RelayShipmentCommand) (commands.RelayShipmentResult, error)
}

// Error is the body of every failed gateway response.
type Error struct {
	Error string `json:"error"`
}

// Health is the body of GET /api/health.
type Health struct {
	Status  string   `json:"status"`
	Domains []string `json:"domains"`
}

type Server struct {
	relay          ShipmentRelay
	batch          *openapi3.Schema
	allowedOrigins []string
	logger         *slog.Logger
}

func NewServer(relay ShipmentRelay, allowedOrigins []string, logger *slog.Logger) (*Server, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	ref := doc.Components.Schemas["ShipmentBatch"]
	if ref == nil || ref.Value == nil {
		return nil, errors.New("gateway document has no ShipmentBatch schema")
	}

	return &Server{
		relay:          relay,
		batch:          ref.Value,
		allowedOrigins: append([]string(nil), allowedOrigins...),
		logger:         logger.With("component", "gateway_http"),
	}, nil
}

// GetSwagger loads the embedded gateway document.
func GetSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return doc, nil
}

// NewRouter mounts the relay at /api/<partner>-orders behind the origin
// allow-list.
func NewRouter(server *Server, partner string, logger *slog.Logger) (*echo.Echo, error) {
	partner = strings.TrimSpace(partner)
	if partner == "" {
		return nil, errors.New("partner name is required")
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: server.originAllowed,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{echo.HeaderContentType, "Idempotency-Key"},
		ExposeHeaders:   []string{RegionDefaultedHeader},
	}))
	e.Use(server.originGuard)

	e.POST("/api/"+partner+"-orders", server.CreateParcel)
	e.GET("/api/health", server.Health)
	middleware.RegisterSwagger(e, swaggerInstance, raw)

	return e, nil
}

// CreateParcel handles POST /api/<partner>-orders.
func (s *Server) CreateParcel(ctx echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxBodyBytes))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Error: "Invalid request body"})
	}

	parcels, err := s.decode(raw)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Error: err.Error()})
	}

	cmd, err := commands.NewRelayShipmentCommand(parcels, ctx.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Error: err.Error()})
	}

	result, err := s.relay.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrShipmentAlreadyRequested) {
			return ctx.JSON(http.StatusConflict, Error{Error: err.Error()})
		}
		s.logger.ErrorContext(ctx.Request().Context(), "Parcel relay failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{Error: err.Error()})
	}

	if defaulted := defaultedNames(result); defaulted != "" {
		ctx.Response().Header().Set(RegionDefaultedHeader, defaulted)
	}
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, result.Body)
}

func (s *Server) originAllowed(origin string) (bool, error) {
	for _, allowed := range s.allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true, nil
		}
	}
	return false, nil
}

// originGuard refuses browser requests from origins outside the allow-list.
// Requests without an Origin header come from servers and pass.
func (s *Server) originGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		origin := c.Request().Header.Get(echo.HeaderOrigin)
		if origin == "" {
			return next(c)
		}
		if ok, _ := s.originAllowed(origin); !ok {
			return c.JSON(http.StatusForbidden, Error{Error: "origin not allowed"})
		}
		return next(c)
	}
}

// Health handles GET /api/health.
func (s *Server) Health(ctx echo.Context) error {
	domains := s.allowedOrigins
	if domains == nil {
		domains = []string{}
	}
	return ctx.JSON(http.StatusOK, Health{Status: "ok", Domains: domains})
}

// decode checks the body against the ShipmentBatch schema, then reads each
// parcel over the default descriptive fields so omitted ones keep them.
func (s *Server) decode(raw []byte) ([]shipment.Request, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("request body is not JSON: %w", err)
	}
	if err := s.batch.VisitJSON(generic); err != nil {
		return nil, fmt.Errorf("invalid shipment: %s", firstLine(err.Error()))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("invalid shipment: %w", err)
	}

	parcels := make([]shipment.Request, 0, len(items))
	for _, item := range items {
		parcel := shipment.NewDefaultRequest()
		if err := json.Unmarshal(item, &parcel); err != nil {
			return nil, fmt.Errorf("invalid shipment: %w", err)
		}
		parcels = append(parcels, parcel)
	}
	return parcels, nil
}

func defaultedNames(result commands.RelayShipmentResult) string {
	names := make([]string, 0, 2)
	if result.RegionDefaulted {
		names = append(names, "region")
	}
	if result.SubRegionDefaulted {
		names = append(names, "subRegion")
	}
	return strings.Join(names, ",")
}

func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}
	_ = c.JSON(code, Error{Error: message})
}
