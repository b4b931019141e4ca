package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные маршруты, которые не логируются.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — строка лога на запрос; уровень по статусу (5xx — error, 4xx — warn).
// Для перехваченных ресурсов пишет и X-Cache (HIT/MISS/OFFLINE).
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, quiet := quietPaths[route]; quiet {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		partition, _ := ctxmeta.PartitionFromContext(ctx)

		logAt(log, status)(ctx,
			"%s %s status=%d cache=%s partition=%s ip=%s took=%s bytes=%d",
			c.Request.Method, route, status,
			c.Writer.Header().Get("X-Cache"),
			partition, c.ClientIP(),
			time.Since(start), c.Writer.Size(),
		)
	}
}

func logAt(log ports.Logger, status int) func(ctx context.Context, format string, args ...any) {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Errorf
	case status >= http.StatusBadRequest:
		return log.Warnf
	default:
		return log.Infof
	}
}
