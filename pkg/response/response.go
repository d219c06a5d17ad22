package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "imagevault/pkg/errors"
)

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error maps an application error onto its HTTP status and a flat
// {"error": ...} body. Anything that is not an AppError is treated as an
// unexpected server failure and its detail stays out of the response.
func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "An unexpected error occurred"})
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageBody{Success: true, Message: message})
}
