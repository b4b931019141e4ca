package domain

import (
	"encoding/json"
	"strings"
)

// Customer — данные формы оформления заказа.
type Customer struct {
	Name       string `json:"customerName"`
	Email      string `json:"customerEmail"`
	PickupTime string `json:"pickupTime"`
}

// Trimmed — копия без пробелов по краям (время самовывоза не трогаем, как и форма).
func (c Customer) Trimmed() Customer {
	return Customer{
		Name:       strings.TrimSpace(c.Name),
		Email:      strings.TrimSpace(c.Email),
		PickupTime: c.PickupTime,
	}
}

// OrderPayload — тело POST /orders. Собирается в момент отправки и нигде не хранится.
type OrderPayload struct {
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	PickupTime    string     `json:"pickupTime"`
	Items         []LineItem `json:"items"`
}

// NewOrderPayload — заказ из данных покупателя и снимка корзины.
func NewOrderPayload(c Customer, cart Cart) OrderPayload {
	return OrderPayload{
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		PickupTime:    c.PickupTime,
		Items:         cart.Clone(),
	}
}

// OrderReceipt — ответ приёма заказов как есть.
type OrderReceipt struct {
	Response json.RawMessage `json:"response"`
}

// LastOrder — то, что показывает страница благодарности.
type LastOrder struct {
	Name       string `json:"name"`
	PickupTime string `json:"pickupTime"`
}

// CheckoutLine — строка таблицы на странице оформления.
type CheckoutLine struct {
	MenuItemID int    `json:"menuItemId"`
	ItemName   string `json:"itemName"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	Subtotal   string `json:"subtotal"`
}

// CheckoutSummary — данные страницы оформления; при пустой корзине форма скрыта.
type CheckoutSummary struct {
	Lines       []CheckoutLine `json:"lines"`
	Total       string         `json:"total"`
	FormEnabled bool           `json:"formEnabled"`
}

// NewCheckoutSummary — сводка для страницы оформления.
func NewCheckoutSummary(cart Cart) CheckoutSummary {
	lines := make([]CheckoutLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, CheckoutLine{
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			Subtotal:   item.Subtotal().String(),
		})
	}
	return CheckoutSummary{
		Lines:       lines,
		Total:       cart.Total().String(),
		FormEnabled: len(cart) > 0,
	}
}
