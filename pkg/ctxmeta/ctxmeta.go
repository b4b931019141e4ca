// Пакет ctxmeta — нейтральный слой для метаданных запроса, которые едут через context.Context
// (request_id, раздел хранилища клиента, trace_id).
// HTTP-слой, логгер и сервисы зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyPartition ctxKey = "partition"
)

// DefaultPartition — раздел хранилища, если клиент его не указал.
const DefaultPartition = "default"

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyRequestID)
}

// WithPartition кладёт в контекст раздел хранилища клиента (аналог origin браузера).
func WithPartition(ctx context.Context, partition string) context.Context {
	if ctx == nil || partition == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyPartition, partition)
}

// PartitionFromContext достаёт раздел хранилища; ok=false — раздел не задан.
func PartitionFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyPartition)
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
