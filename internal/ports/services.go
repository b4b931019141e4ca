package ports

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// CartService — операции над корзиной для транспортного слоя.
type CartService interface {
	Summary(ctx context.Context) (domain.CartSummary, error)
	AddItem(ctx context.Context, ref domain.ItemRef, qty int) (domain.CartSummary, error)
	SetQuantity(ctx context.Context, menuItemID, qty int) (domain.CartSummary, error)
	RemoveItem(ctx context.Context, menuItemID int) (domain.CartSummary, error)
	Clear(ctx context.Context) error
}

// CheckoutService — оформление заказа.
type CheckoutService interface {
	Summary(ctx context.Context) (domain.CheckoutSummary, error)
	Submit(ctx context.Context, customer domain.Customer) (domain.OrderReceipt, error)
	LastOrder(ctx context.Context) (domain.LastOrder, bool, error)
}

// MenuReader — меню, разложенное по разделам.
type MenuReader interface {
	Sections(ctx context.Context) ([]domain.MenuSection, error)
}

// WorkerControl — управление жизненным циклом воркера и обработка перехваченных запросов.
type WorkerControl interface {
	Status() domain.WorkerStatus
	Install(ctx context.Context, manifest domain.Manifest) error
	HandleMessage(ctx context.Context, msg domain.ControlMessage) error
	Fetch(ctx context.Context, req *http.Request) (*http.Response, error)
}
