package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/storefront/internal/backend"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/menu", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"menu":[{"MenuItemID":7,"ItemName":"Latte","ItemDescription":"milky","Price":4.5,"Category":"Drinks","ImageFile":"latte.jpg"}]}`)
	}))
	defer srv.Close()

	items, err := backend.NewClient(srv.URL+"/", nil).Menu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].MenuItemID)
	assert.Equal(t, "4.50", items[0].Price.String())
	assert.Equal(t, "latte.jpg", items[0].ImageFile)
}

func TestMenu_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := backend.NewClient(srv.URL, nil).Menu(context.Background())
	assert.ErrorIs(t, err, backend.ErrInvalidResponse)
}

func TestSubmitOrder_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ana", got["customerName"])
		items, _ := got["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, float64(2), items[0].(map[string]any)["qty"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status":"ok","orderId":12}`)
	}))
	defer srv.Close()

	payload := domain.NewOrderPayload(
		domain.Customer{Name: "Ana", Email: "ana@example.com", PickupTime: "09:30"},
		domain.Cart{{MenuItemID: 7, ItemName: "Latte", UnitPrice: domain.MustMoney("4.50"), Quantity: 2}},
	)
	resp, err := backend.NewClient(srv.URL, nil).SubmitOrder(context.Background(), payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","orderId":12}`, string(resp))
}

func TestSubmitOrder_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `{"error":"db"}`, backend.ErrOrderRejected},
		{"bad request", http.StatusBadRequest, `{}`, backend.ErrOrderRejected},
		{"non json body", http.StatusOK, `<html>ok</html>`, backend.ErrInvalidResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := backend.NewClient(srv.URL, nil).SubmitOrder(context.Background(), domain.OrderPayload{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_UsesGivenTransport(t *testing.T) {
	offline := errors.New("offline")
	var seen string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.URL.String()
		return nil, offline
	})

	_, err := backend.NewClient("http://127.0.0.1:5050", rt).Menu(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, offline)
	assert.Equal(t, "http://127.0.0.1:5050/menu", seen)
}
