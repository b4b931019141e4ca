package usecase

import (
	"context"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
)

// partitionKey — ключ хранилища в разделе клиента из контекста.
// Без раздела используется сам ключ (одно общее хранилище, как у единственного origin).
func partitionKey(ctx context.Context, key string) string {
	if p, ok := ctxmeta.PartitionFromContext(ctx); ok {
		return p + ":" + key
	}
	return key
}
