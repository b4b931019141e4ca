package ports

import "context"

// KeyValueStore — строковое хранилище "ключ → значение" для корзины и данных последнего заказа.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
