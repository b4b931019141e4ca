package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// Ключи данных последнего заказа для страницы благодарности.
const (
	LastOrderNameKey = "lastOrderName"
	LastOrderTimeKey = "lastOrderTime"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrSubmitFailed = errors.New("could not place order, please try again")
)

var _ ports.CheckoutService = (*CheckoutService)(nil)

// cartStore — то, что оформлению нужно от корзины.
type cartStore interface {
	Snapshot(ctx context.Context) (domain.Cart, error)
	Clear(ctx context.Context) error
}

// CheckoutService — сводка заказа, отправка на бэкенд и данные для страницы благодарности.
type CheckoutService struct {
	cart      cartStore
	sender    ports.OrderSender
	validator ports.OrderValidator
	kv        ports.KeyValueStore
	log       ports.Logger
}

func NewCheckoutService(
	cart cartStore,
	sender ports.OrderSender,
	validator ports.OrderValidator,
	kv ports.KeyValueStore,
	log ports.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		sender:    sender,
		validator: validator,
		kv:        kv,
		log:       log,
	}
}

// Summary — строки заказа с подытогами; для пустой корзины итог "0.00" и форма скрыта.
func (s *CheckoutService) Summary(ctx context.Context) (domain.CheckoutSummary, error) {
	cart, err := s.cart.Snapshot(ctx)
	if err != nil {
		return domain.CheckoutSummary{}, err
	}
	return domain.NewCheckoutSummary(cart), nil
}

// Submit — отправка заказа. При успехе корзина очищается и запоминаются имя и время самовывоза;
// при отказе бэкенда корзина остаётся как была, повторная попытка безопасна.
func (s *CheckoutService) Submit(ctx context.Context, customer domain.Customer) (domain.OrderReceipt, error) {
	cart, err := s.cart.Snapshot(ctx)
	if err != nil {
		return domain.OrderReceipt{}, err
	}
	if len(cart) == 0 {
		return domain.OrderReceipt{}, ErrEmptyCart
	}

	customer = customer.Trimmed()
	payload := domain.NewOrderPayload(customer, cart)
	if err := s.validator.Validate(ctx, &payload); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("invalid").Inc()
		s.log.Warnf(ctx, "checkout rejected: %v", err)
		return domain.OrderReceipt{}, err
	}

	resp, err := s.sender.SubmitOrder(ctx, payload)
	if err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("failed").Inc()
		s.log.Errorf(ctx, "order submission failed items=%d: %v", len(payload.Items), err)
		return domain.OrderReceipt{}, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	s.rememberLastOrder(ctx, customer)

	// заказ уже принят: сбой очистки не превращаем в ошибку, иначе повтор создаст дубль
	if err := s.cart.Clear(ctx); err != nil {
		s.log.Errorf(ctx, "order accepted but cart was not cleared: %v", err)
	}

	metrics.CheckoutSubmissions.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "order placed items=%d total=%s", len(payload.Items), cart.Total())
	return domain.OrderReceipt{Response: resp}, nil
}

// LastOrder — имя и время самовывоза последнего заказа; found=false, если заказов не было.
func (s *CheckoutService) LastOrder(ctx context.Context) (domain.LastOrder, bool, error) {
	name, foundName, err := s.kv.Get(ctx, partitionKey(ctx, LastOrderNameKey))
	if err != nil {
		return domain.LastOrder{}, false, fmt.Errorf("load last order: %w", err)
	}
	pickup, foundTime, err := s.kv.Get(ctx, partitionKey(ctx, LastOrderTimeKey))
	if err != nil {
		return domain.LastOrder{}, false, fmt.Errorf("load last order: %w", err)
	}
	if !foundName && !foundTime {
		return domain.LastOrder{}, false, nil
	}
	return domain.LastOrder{Name: name, PickupTime: pickup}, true, nil
}

func (s *CheckoutService) rememberLastOrder(ctx context.Context, c domain.Customer) {
	if err := s.kv.Set(ctx, partitionKey(ctx, LastOrderNameKey), c.Name); err != nil {
		s.log.Warnf(ctx, "remember last order name: %v", err)
	}
	if err := s.kv.Set(ctx, partitionKey(ctx, LastOrderTimeKey), c.PickupTime); err != nil {
		s.log.Warnf(ctx, "remember last order time: %v", err)
	}
}
