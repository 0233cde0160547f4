package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Unauthorized sends a 401 response. Used when no API key could be resolved.
func Unauthorized(c *gin.Context, message string, details map[string]interface{}) {
	c.JSON(http.StatusUnauthorized, NewAPIError(message, details))
}
