package validate_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/pkg/validate"
)

func orderJSON(name, email string) string {
	return fmt.Sprintf(`{"customerName":%q,"customerEmail":%q,"pickupTime":"2024-05-01T09:30",`+
		`"items":[{"MenuItemID":3,"ItemName":"Latte","Price":"4.50","qty":2}]}`, name, email)
}

func TestDecodeOrder(t *testing.T) {
	ctx := context.Background()
	v := validate.NewOrderValidator()

	order, err := validate.DecodeOrder(ctx, v, []byte(orderJSON("Ana", "ana@example.com")))
	require.NoError(t, err)
	assert.Equal(t, "Ana", order.CustomerName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "4.50", order.Items[0].UnitPrice.String())

	cases := []struct {
		name      string
		raw       string
		malformed bool
	}{
		{"unknown field", `{"customerName":"Ana","extra":1}`, true},
		{"trailing data", orderJSON("Ana", "ana@example.com") + ` {}`, true},
		{"not json", `{"customerName":`, true},
		{"fails validation", orderJSON("Ana", "nope"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate.DecodeOrder(ctx, v, []byte(tc.raw))
			require.Error(t, err)
			if tc.malformed {
				assert.ErrorIs(t, err, validate.ErrMalformedJSON)
			} else {
				assert.ErrorIs(t, err, validate.ErrInvalidOrder)
			}
		})
	}
}

func TestDecodeOrders_PerItemErrors(t *testing.T) {
	raw := "[" + orderJSON("Ana", "a@e.com") + "," + orderJSON("", "b@e.com") + "]"

	orders, errs, err := validate.DecodeOrders(context.Background(), validate.NewOrderValidator(), []byte(raw))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], validate.ErrInvalidOrder)
	assert.Nil(t, orders[1])
}
