package router

import (
	"github.com/labstack/echo/v4"

	"imagevault/internal/adapter/api/handler"
)

func Setup(e *echo.Echo, imageHandler *handler.ImageHandler, healthHandler *handler.HealthHandler) {
	SetupImageRouter(e, imageHandler)
	SetupHealthRouter(e, healthHandler)
}
