package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_ReturnsAnyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client())

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/index.html", http.NoBody)
	resp, err := f.Fetch(context.Background(), req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/missing", http.NoBody)
	resp, err = f.Fetch(context.Background(), req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTPFetcher_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // порт больше никто не слушает

	f := NewHTTPFetcher(nil)
	req, _ := http.NewRequest(http.MethodGet, url+"/", http.NoBody)
	_, err := f.Fetch(context.Background(), req)
	require.Error(t, err)
}
