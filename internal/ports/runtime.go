package ports

import "context"

// Logger — логгер с контекстом: реализация сама достаёт из ctx request_id, partition и trace_id.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}

// MessageConsumer — фоновый источник управляющих сообщений воркера.
// Run блокируется до отмены ctx, Close освобождает соединение и безопасен для повторного вызова.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
