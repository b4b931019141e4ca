package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func TestPartitionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"default_when_missing", "", ctxmeta.DefaultPartition},
		{"default_when_blank", "   ", ctxmeta.DefaultPartition},
		{"provided", "kiosk-2", "kiosk-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string

			r := gin.New()
			r.Use(httpx.PartitionMiddleware())
			r.GET("/", func(c *gin.Context) {
				got, _ = ctxmeta.PartitionFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set(httpx.PartitionHeader, tt.header)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Fatalf("partition = %q, want %q", got, tt.want)
			}
		})
	}
}
