package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

// RegisterSwagger serves doc under /swagger/*. Each instance name may be
// registered once per process.
func RegisterSwagger(e *echo.Echo, instance string, doc []byte) {
	if swag.GetSwagger(instance) == nil {
		swag.Register(instance, swaggerDoc(doc))
	}
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(instance)))
}
