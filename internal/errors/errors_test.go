package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		send   func(c *gin.Context)
		status int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "msg", nil) }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "msg", nil) }, http.StatusUnauthorized},
		{"not found", func(c *gin.Context) { NotFound(c, "msg", nil) }, http.StatusNotFound},
		{"bad gateway", func(c *gin.Context) { BadGateway(c, "msg", map[string]interface{}{"kind": "remote_error"}) }, http.StatusBadGateway},
		{"internal", func(c *gin.Context) { AbortWithInternal(c, "msg", nil) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.send(c)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var body APIError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != "msg" {
				t.Errorf("error = %q, want msg", body.Error)
			}
		})
	}
}
