package ports

import (
	"context"
	"encoding/json"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// MenuSource — источник каталога.
type MenuSource interface {
	Menu(ctx context.Context) ([]domain.MenuItem, error)
}

// OrderSender — приём заказов на бэкенде.
type OrderSender interface {
	SubmitOrder(ctx context.Context, payload domain.OrderPayload) (json.RawMessage, error)
}
