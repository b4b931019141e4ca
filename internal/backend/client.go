package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

var (
	ErrOrderRejected   = errors.New("order rejected by backend")
	ErrInvalidResponse = errors.New("invalid backend response")
)

// maxBodyBytes — предел чтения ответа бэкенда.
const maxBodyBytes = 4 << 20

var (
	_ ports.MenuSource  = (*Client)(nil)
	_ ports.OrderSender = (*Client)(nil)
)

// Client — клиент бэкенда заказов (/menu, /orders).
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient — baseURL без завершающего слэша; transport == nil означает http.DefaultTransport.
// Контроллер воркера передаётся сюда как transport, чтобы запросы к бэкенду шли через стратегию перехвата.
func NewClient(baseURL string, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		http:    &http.Client{Transport: transport},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL — origin бэкенда.
func (c *Client) BaseURL() string { return c.baseURL }

type menuResponse struct {
	Menu []domain.MenuItem `json:"menu"`
}

// Menu — GET /menu, ответ вида {"menu": [...]}.
func (c *Client) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/menu", nil)
	if err != nil {
		return nil, fmt.Errorf("build menu request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: menu status %d", ErrInvalidResponse, status)
	}

	var out menuResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode menu: %v", ErrInvalidResponse, err)
	}
	if out.Menu == nil {
		out.Menu = []domain.MenuItem{}
	}
	return out.Menu, nil
}

// SubmitOrder — POST /orders. Успех — 2xx с телом в формате JSON; тело возвращается как есть.
func (c *Client) SubmitOrder(ctx context.Context, payload domain.OrderPayload) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("post order: %w", err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrOrderRejected, status)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: order response is not json", ErrInvalidResponse)
	}
	return json.RawMessage(body), nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}
