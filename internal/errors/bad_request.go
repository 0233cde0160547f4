package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	c.JSON(http.StatusBadRequest, NewAPIError(message, details))
}
