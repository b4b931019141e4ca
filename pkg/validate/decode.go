package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// ErrMalformedJSON — тело не является ровно одним заказом в JSON (или массивом заказов).
var ErrMalformedJSON = errors.New("invalid json")

// DecodeOrder — строгий разбор одного заказа (неизвестные поля и хвост запрещены) и его проверка.
func DecodeOrder(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.OrderPayload, error) {
	var order domain.OrderPayload
	if err := decodeStrict(raw, &order); err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DecodeOrders — массив заказов; каждый проверяется отдельно, errs[i] относится к i-му элементу.
func DecodeOrders(ctx context.Context, validator ports.OrderValidator, raw []byte) ([]*domain.OrderPayload, []error, error) {
	var items []json.RawMessage
	if err := decodeStrict(raw, &items); err != nil {
		return nil, nil, err
	}

	orders := make([]*domain.OrderPayload, len(items))
	errs := make([]error, len(items))
	for i, item := range items {
		orders[i], errs[i] = DecodeOrder(ctx, validator, item)
	}
	return orders, errs, nil
}

func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrMalformedJSON)
	}
	return nil
}

// isArray — первый значимый символ '['.
func isArray(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
