package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/httpx"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{"missing", "", false},
		{"provided", "custom-id-42", true},
		{"with spaces", "bad id", false},
		{"too long", strings.Repeat("a", 129), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var inCtx string
			r := gin.New()
			r.Use(httpx.RequestIDMiddleware())
			r.GET("/", func(c *gin.Context) {
				inCtx, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				req.Header.Set(httpx.RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(httpx.RequestIDHeader)
			assert.Equal(t, got, inCtx)
			if tc.keepSent {
				assert.Equal(t, tc.header, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err, "generated id must be a UUID, got %q", got)
		})
	}
}

type line struct {
	level string
	text  string
}

// recLogger — запоминает строки лога с уровнем.
type recLogger struct {
	mu    sync.Mutex
	lines []line
}

func (l *recLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line{level, fmt.Sprintf(format, args...)})
}

func (l *recLogger) Infof(_ context.Context, f string, a ...any)  { l.add("info", f, a...) }
func (l *recLogger) Warnf(_ context.Context, f string, a ...any)  { l.add("warn", f, a...) }
func (l *recLogger) Errorf(_ context.Context, f string, a ...any) { l.add("error", f, a...) }

func TestRequestLogger_LevelsAndQuietPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recLogger{}

	r := gin.New()
	r.Use(httpx.PartitionMiddleware(), httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/static/*path", func(c *gin.Context) {
		c.Header("X-Cache", "HIT")
		c.String(http.StatusOK, "body")
	})
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, path := range []string{"/ping", "/static/app.js", "/bad", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		req.Header.Set(httpx.PartitionHeader, "tab-1")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, log.lines, 3)
	assert.Equal(t, "info", log.lines[0].level)
	assert.Contains(t, log.lines[0].text, "GET /static/*path status=200 cache=HIT partition=tab-1")
	assert.Equal(t, "warn", log.lines[1].level)
	assert.Equal(t, "error", log.lines[2].level)
}
