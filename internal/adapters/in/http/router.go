package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"vizoshop/internal/adapters/in/http/middleware"
	"vizoshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const swaggerInstance = "storefront"

// NewRouter builds the storefront echo instance: recovery, request logging,
// optional session, contract validation, then the API routes.
func NewRouter(server *Server, sessions middleware.SessionVerifier, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := middleware.OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	middleware.RegisterSwagger(e, swaggerInstance, doc)

	api := e.Group("", middleware.Session(sessions), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

// ErrorHandler renders every error as servers.Error.
func ErrorHandler(err error, c echo.Context) {
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

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, servers.Error{Code: code, Error: message})
}
