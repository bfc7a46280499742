package middleware

import (
	"errors"
	"net/http"

	"go-detailing-backend/internal/delivery/http/response"
	"go-detailing-backend/pkg/apperror"
	"go-detailing-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// GenericErrorMessage is what clients see for any fault that is not an
// AppError. Transport errors and stack traces stay server-side.
const GenericErrorMessage = "An error occurred. Please try again."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message.
				logger.Log.Error("Unexpected error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, GenericErrorMessage, nil)
			}
		}
	}
}
