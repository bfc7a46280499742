package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the acknowledgement body for an accepted submission.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the failure body. Details carries field-level validation
// messages and is omitted for server-side failures.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// Success sends a success acknowledgement
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, SuccessResponse{
		Success: true,
		Message: message,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details map[string][]string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
