//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	redisrepo "github.com/Gunvolt24/storefront/internal/repo/redis"
	"github.com/Gunvolt24/storefront/internal/testutil"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func startKV(t *testing.T) (*redisrepo.KVStore, context.Context) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	env, stop, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := redisrepo.NewClient(ctx, redisrepo.Options{Addr: env.Addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return redisrepo.NewKVStore(client, "storefront-itest:"), ctx
}

func TestKVStore_GetSetDelete_TC(t *testing.T) {
	t.Parallel()
	kv, ctx := startKV(t)

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, kv.Set(ctx, "lastOrderName", "Ana"))
	val, found, err := kv.Get(ctx, "lastOrderName")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Ana", val)

	require.NoError(t, kv.Delete(ctx, "lastOrderName"))
	_, found, err = kv.Get(ctx, "lastOrderName")
	require.NoError(t, err)
	require.False(t, found)

	// удаление отсутствующего ключа — не ошибка
	require.NoError(t, kv.Delete(ctx, "lastOrderName"))
}

// Корзина поверх Redis ведёт себя так же, как поверх памяти, включая разделы хранилища.
func TestKVStore_CartRoundTrip_TC(t *testing.T) {
	t.Parallel()
	kv, ctx := startKV(t)

	latte := domain.ItemRef{MenuItemID: 7, ItemName: "Latte", Price: domain.MustMoney("4.50")}
	for _, store := range []interface {
		Get(context.Context, string) (string, bool, error)
		Set(context.Context, string, string) error
		Delete(context.Context, string) error
	}{kv, memory.NewKVStore()} {
		cart := usecase.NewCartService(store, noopLogger{}, "")
		pctx := ctxmeta.WithPartition(ctx, "kiosk")

		_, err := cart.AddItem(pctx, latte, 2)
		require.NoError(t, err)
		sum, err := cart.AddItem(pctx, latte, 3)
		require.NoError(t, err)
		require.Equal(t, 5, sum.ItemCount)

		other, err := cart.Summary(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, other.ItemCount)
	}
}
