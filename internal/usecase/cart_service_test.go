package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart() (*usecase.CartService, *memory.KVStore) {
	kv := memory.NewKVStore()
	return usecase.NewCartService(kv, noopLogger{}, ""), kv
}

func TestAddItem_MergesSameID(t *testing.T) {
	svc, _ := newCart()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, latte(), 2)
	require.NoError(t, err)
	sum, err := svc.AddItem(ctx, latte(), 3)
	require.NoError(t, err)

	require.Len(t, sum.Items, 1)
	assert.Equal(t, 5, sum.Items[0].Quantity)
	assert.Equal(t, 5, sum.ItemCount)
	assert.Equal(t, "22.50", sum.Total)
}

func TestAddItem_ClampsToMax(t *testing.T) {
	svc, _ := newCart()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, latte(), 98)
	sum, err := svc.AddItem(ctx, latte(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity, sum.Items[0].Quantity)

	sum, err = svc.AddItem(ctx, muffin(), 500)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity, sum.Items[1].Quantity)
}

func TestAddItem_RejectsBadInput(t *testing.T) {
	svc, kv := newCart()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, latte(), 0)
	assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, domain.ItemRef{MenuItemID: 0, ItemName: "x"}, 1)
	assert.ErrorIs(t, err, usecase.ErrInvalidItem)

	_, found, _ := kv.Get(ctx, usecase.DefaultCartKey)
	assert.False(t, found, "rejected input must not touch storage")
}

func TestSetQuantity(t *testing.T) {
	svc, _ := newCart()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, latte(), 2)

	sum, err := svc.SetQuantity(ctx, 7, 150)
	require.NoError(t, err)
	assert.Equal(t, 99, sum.Items[0].Quantity)

	sum, err = svc.SetQuantity(ctx, 7, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Items[0].Quantity)

	_, err = svc.SetQuantity(ctx, 42, 1)
	assert.ErrorIs(t, err, usecase.ErrItemNotFound)

	sum, err = svc.SetQuantity(ctx, 7, 0)
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.Equal(t, "0.00", sum.Total)
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	svc, _ := newCart()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, latte(), 1)
	_, _ = svc.AddItem(ctx, muffin(), 1)

	sum, err := svc.RemoveItem(ctx, 404)
	require.NoError(t, err)
	assert.Len(t, sum.Items, 2)

	sum, err = svc.RemoveItem(ctx, 7)
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, 9, sum.Items[0].MenuItemID)
}

func TestRemoveItem_AbsentDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), usecase.DefaultCartKey).Return(`[]`, true, nil)
	kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCartService(kv, noopLogger{}, "")
	_, err := svc.RemoveItem(context.Background(), 7)
	require.NoError(t, err)
}

func TestTotals(t *testing.T) {
	svc, _ := newCart()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, latte(), 2)
	sum, err := svc.AddItem(ctx, muffin(), 1)
	require.NoError(t, err)

	assert.Equal(t, "12.00", sum.Total)
	assert.Equal(t, 3, sum.ItemCount)
}

func TestLoad_MalformedOrMissingIsEmpty(t *testing.T) {
	svc, kv := newCart()
	ctx := context.Background()

	cart, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	_ = kv.Set(ctx, usecase.DefaultCartKey, "{not json")
	cart, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	// мутация поверх битых данных начинает с пустой корзины
	sum, err := svc.AddItem(ctx, latte(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.ItemCount)
}

func TestLoad_ReadsLegacyFormat(t *testing.T) {
	svc, kv := newCart()
	ctx := context.Background()
	_ = kv.Set(ctx, usecase.DefaultCartKey, `[{"MenuItemID":7,"ItemName":"Latte","Price":4.5,"qty":2}]`)

	cart, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "4.50", cart[0].UnitPrice.String())
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestLoad_NormalizesStoredCart(t *testing.T) {
	svc, kv := newCart()
	ctx := context.Background()
	_ = kv.Set(ctx, usecase.DefaultCartKey, `[
		{"MenuItemID":7,"ItemName":"Latte","Price":4.5,"qty":0},
		{"MenuItemID":8,"ItemName":"Muffin","Price":3,"qty":150},
		{"MenuItemID":9,"ItemName":"Tea","Price":2,"qty":2},
		{"MenuItemID":9,"ItemName":"Tea","Price":2,"qty":3},
		{"MenuItemID":10,"ItemName":"Scone","Price":2,"qty":-4}
	]`)

	cart, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, 8, cart[0].MenuItemID)
	assert.Equal(t, domain.MaxQuantity, cart[0].Quantity)
	assert.Equal(t, 9, cart[1].MenuItemID)
	assert.Equal(t, 5, cart[1].Quantity)

	// мутации работают поверх нормализованной корзины
	sum, err := svc.SetQuantity(ctx, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity+1, sum.ItemCount)
}

func TestSave_WritesLegacyFormat(t *testing.T) {
	svc, kv := newCart()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, latte(), 2)

	raw, found, _ := kv.Get(ctx, usecase.DefaultCartKey)
	require.True(t, found)
	assert.JSONEq(t, `[{"MenuItemID":7,"ItemName":"Latte","Price":4.5,"qty":2}]`, raw)
}

func TestStorageErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueStore(ctrl)
	getErr := errors.New("redis down")
	kv.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, getErr)

	svc := usecase.NewCartService(kv, noopLogger{}, "")
	_, err := svc.AddItem(context.Background(), latte(), 1)
	assert.ErrorIs(t, err, getErr)
}

func TestPartitionsAreIsolated(t *testing.T) {
	svc, kv := newCart()
	kiosk := ctxmeta.WithPartition(context.Background(), "kiosk")
	phone := ctxmeta.WithPartition(context.Background(), "phone")

	_, _ = svc.AddItem(kiosk, latte(), 1)

	sum, err := svc.Summary(phone)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.ItemCount)

	_, found, _ := kv.Get(context.Background(), "kiosk:"+usecase.DefaultCartKey)
	assert.True(t, found)
}

func TestClear_DeletesKey(t *testing.T) {
	svc, kv := newCart()
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, latte(), 1)

	require.NoError(t, svc.Clear(ctx))
	_, found, _ := kv.Get(ctx, usecase.DefaultCartKey)
	assert.False(t, found)
}

func TestConcurrentAdds_NoLostUpdates(t *testing.T) {
	svc, _ := newCart()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AddItem(ctx, latte(), 1)
		}()
	}
	wg.Wait()

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, sum.ItemCount)
}
