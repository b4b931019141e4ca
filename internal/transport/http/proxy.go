package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// hopHeaders — заголовки одного соединения; дальше origin'а не передаются.
var hopHeaders = []string{
	"Connection", "Keep-Alive", "Proxy-Connection", "Te", "Trailer", "Transfer-Encoding", "Upgrade",
}

// proxyAsset — ресурс статики через контроллер воркера (кэш или сеть).
func (h *Handler) proxyAsset(c *gin.Context) {
	ctx := c.Request.Context()

	target := *h.static
	target.Path = c.Request.URL.Path
	target.RawPath = c.Request.URL.RawPath
	target.RawQuery = c.Request.URL.RawQuery

	req, err := http.NewRequestWithContext(ctx, c.Request.Method, target.String(), c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	req.Header = c.Request.Header.Clone()
	for _, name := range hopHeaders {
		req.Header.Del(name)
	}

	resp, err := h.svc.Worker.Fetch(ctx, req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		h.log.Warnf(ctx, "asset fetch failed path=%s status=%d: %v", target.Path, status, err)
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	defer resp.Body.Close()

	header := c.Writer.Header()
	for name, values := range resp.Header {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	for _, name := range hopHeaders {
		header.Del(name)
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		h.log.Warnf(ctx, "copy asset body path=%s: %v", target.Path, err)
	}
}
