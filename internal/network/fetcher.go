package network

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/ports"
)

var _ ports.Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher — выход в сеть через *http.Client.
// Таймаутов сверх тех, что заданы у клиента, не добавляет: медленный источник просто задерживает ответ.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher — при client == nil используется клиент без таймаута.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFetcher{client: client}
}

// Fetch — выполняет запрос в контексте ctx. Ошибка возвращается только при сетевом сбое;
// ответ с любым статусом считается успешным выходом в сеть.
func (f *HTTPFetcher) Fetch(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := f.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", req.Method, req.URL, err)
	}
	return resp, nil
}
