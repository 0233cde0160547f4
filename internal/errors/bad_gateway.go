package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BadGateway sends a 502 response. Used when the upstream model provider failed.
func BadGateway(c *gin.Context, message string, details map[string]interface{}) {
	c.JSON(http.StatusBadGateway, NewAPIError(message, details))
}
