package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// DefaultCartKey — ключ, под которым корзина лежит в хранилище.
const DefaultCartKey = "ESCafeCoCart"

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidItem     = errors.New("invalid menu item")
	ErrItemNotFound    = errors.New("item not in cart")
)

var _ ports.CartService = (*CartService)(nil)

// CartService — корзина поверх строкового хранилища.
// Каждая мутация — чтение, изменение и запись целиком под мьютексом процесса;
// между процессами действует правило "последняя запись побеждает".
type CartService struct {
	kv  ports.KeyValueStore
	log ports.Logger
	key string

	mu sync.Mutex
}

// NewCartService — DI-конструктор; пустой key заменяется на DefaultCartKey.
func NewCartService(kv ports.KeyValueStore, log ports.Logger, key string) *CartService {
	if key == "" {
		key = DefaultCartKey
	}
	return &CartService{kv: kv, log: log, key: key}
}

// Load — текущая корзина. Отсутствующий ключ или битый JSON дают пустую корзину;
// сохранённые позиции приводятся к инвариантам корзины (Cart.Normalize).
// Ошибка возвращается только при сбое хранилища.
func (s *CartService) Load(ctx context.Context) (domain.Cart, error) {
	key := partitionKey(ctx, s.key)

	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found || raw == "" {
		return domain.Cart{}, nil
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.log.Warnf(ctx, "malformed cart under key=%s, starting empty: %v", key, err)
		return domain.Cart{}, nil
	}
	normalized := cart.Normalize()
	if len(normalized) != len(cart) {
		s.log.Warnf(ctx, "cart under key=%s normalized: %d entries -> %d", key, len(cart), len(normalized))
	}
	return normalized, nil
}

// Save — записывает корзину целиком.
func (s *CartService) Save(ctx context.Context, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, partitionKey(ctx, s.key), string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// AddItem — добавляет позицию или увеличивает её количество (не больше MaxQuantity).
func (s *CartService) AddItem(ctx context.Context, ref domain.ItemRef, qty int) (domain.CartSummary, error) {
	if qty < domain.MinQuantity {
		return domain.CartSummary{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	if ref.MenuItemID <= 0 || ref.Price.IsNegative() {
		return domain.CartSummary{}, fmt.Errorf("%w: id=%d", ErrInvalidItem, ref.MenuItemID)
	}

	return s.mutate(ctx, "add", func(cart domain.Cart) (domain.Cart, bool, error) {
		if i := cart.Find(ref.MenuItemID); i >= 0 {
			cart[i].Quantity = domain.ClampQuantity(cart[i].Quantity + qty)
			return cart, true, nil
		}
		return append(cart, domain.LineItem{
			MenuItemID: ref.MenuItemID,
			ItemName:   ref.ItemName,
			UnitPrice:  ref.Price,
			Quantity:   domain.ClampQuantity(qty),
		}), true, nil
	})
}

// SetQuantity — задаёт количество; qty <= 0 удаляет позицию.
func (s *CartService) SetQuantity(ctx context.Context, menuItemID, qty int) (domain.CartSummary, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, menuItemID)
	}

	return s.mutate(ctx, "set", func(cart domain.Cart) (domain.Cart, bool, error) {
		i := cart.Find(menuItemID)
		if i < 0 {
			return cart, false, fmt.Errorf("%w: id=%d", ErrItemNotFound, menuItemID)
		}
		cart[i].Quantity = domain.ClampQuantity(qty)
		return cart, true, nil
	})
}

// RemoveItem — удаляет позицию; отсутствие позиции не ошибка.
func (s *CartService) RemoveItem(ctx context.Context, menuItemID int) (domain.CartSummary, error) {
	return s.mutate(ctx, "remove", func(cart domain.Cart) (domain.Cart, bool, error) {
		i := cart.Find(menuItemID)
		if i < 0 {
			return cart, false, nil
		}
		return append(cart[:i], cart[i+1:]...), true, nil
	})
}

// Snapshot — копия корзины в исходном порядке.
func (s *CartService) Snapshot(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cart.Clone(), nil
}

// Summary — сводка по текущей корзине (бейдж и итог).
func (s *CartService) Summary(ctx context.Context) (domain.CartSummary, error) {
	cart, err := s.Snapshot(ctx)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return domain.NewCartSummary(cart), nil
}

// Clear — удаляет корзину из хранилища.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, partitionKey(ctx, s.key)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	metrics.CartOps.WithLabelValues("clear").Inc()
	return nil
}

// mutate — read-modify-write под мьютексом; запись только если fn сообщила об изменении.
func (s *CartService) mutate(
	ctx context.Context,
	op string,
	fn func(domain.Cart) (domain.Cart, bool, error),
) (domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.Load(ctx)
	if err != nil {
		return domain.CartSummary{}, err
	}

	cart, changed, err := fn(cart)
	if err != nil {
		return domain.CartSummary{}, err
	}

	if changed {
		if err := s.Save(ctx, cart); err != nil {
			s.log.Errorf(ctx, "cart %s failed: %v", op, err)
			return domain.CartSummary{}, err
		}
		metrics.CartOps.WithLabelValues(op).Inc()
	}
	return domain.NewCartSummary(cart), nil
}
