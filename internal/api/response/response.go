package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the wire prefix shared by every API response body. Extra
// fields (token, user, game, games) ride alongside it at the top level.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// JSON writes the envelope merged with any extra top-level fields.
func JSON(c *gin.Context, status int, success bool, message string, extras gin.H) {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extras {
		body[k] = v
	}
	c.JSON(status, body)
}

// SuccessResponse returns a JSON response with success set and optional extras.
func SuccessResponse(c *gin.Context, status int, message string, extras gin.H) {
	JSON(c, status, true, message, extras)
}

// ErrorResponse returns a JSON failure response with a message.
func ErrorResponse(c *gin.Context, code int, message string) {
	JSON(c, code, false, message, nil)
}
