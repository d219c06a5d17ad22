package router

import (
	"github.com/labstack/echo/v4"

	"imagevault/internal/adapter/api/handler"
)

func SetupImageRouter(e *echo.Echo, imageHandler *handler.ImageHandler) {
	api := e.Group("/api")

	api.POST("/upload", imageHandler.Upload)
	api.GET("/images/:id", imageHandler.GetByID)
	api.DELETE("/images/:id", imageHandler.Delete)
}
