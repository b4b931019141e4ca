package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// MsgFillAllFields — текст, который видит покупатель при незаполненной форме.
const MsgFillAllFields = "please fill in all fields"

// OrderValidator — валидация заказа перед отправкой на бэкенд.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Validate возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — все поля формы обязательны, email в корректном формате, корзина не пуста,
// у каждой позиции корректные id, название, цена и количество.
func (v *OrderValidator) Validate(_ context.Context, order *domain.OrderPayload) error {
	if order == nil {
		return fmt.Errorf("%w: order is nil", ErrInvalidOrder)
	}

	err := validation.ValidateStruct(order,
		validation.Field(&order.CustomerName, validation.Required.Error(MsgFillAllFields)),
		validation.Field(&order.CustomerEmail, validation.Required.Error(MsgFillAllFields), is.EmailFormat),
		validation.Field(&order.PickupTime, validation.Required.Error(MsgFillAllFields)),
		validation.Field(&order.Items, validation.Required.Error("cart is empty")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	for i := range order.Items {
		if err := validateLineItem(&order.Items[i]); err != nil {
			return fmt.Errorf("%w: items[%d]: %v", ErrInvalidOrder, i, err)
		}
	}
	return nil
}

func validateLineItem(item *domain.LineItem) error {
	return validation.ValidateStruct(item,
		validation.Field(&item.MenuItemID, validation.Required, validation.Min(1)),
		validation.Field(&item.ItemName, validation.Required),
		validation.Field(&item.UnitPrice, validation.By(nonNegativeMoney)),
		validation.Field(&item.Quantity,
			validation.Required,
			validation.Min(domain.MinQuantity),
			validation.Max(domain.MaxQuantity),
		),
	)
}

func nonNegativeMoney(value any) error {
	m, ok := value.(domain.Money)
	if !ok {
		return errors.New("must be a money amount")
	}
	if m.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}
