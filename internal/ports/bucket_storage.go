package ports

import (
	"context"
	"errors"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ErrBucketNotFound — запись в бакет, которого нет (не создан или уже удалён).
var ErrBucketNotFound = errors.New("bucket not found")

// BucketStorage — хранилище именованных бакетов со снимками ответов.
// Требования к реализации: потокобезопасность; Match и Put возвращают/принимают копии;
// PutAll атомарен: бакет либо целиком заменён, либо не изменился.
type BucketStorage interface {
	// Buckets — имена всех существующих бакетов.
	Buckets(ctx context.Context) ([]string, error)

	// PutAll — создать (или пересоздать) бакет с полным набором записей.
	PutAll(ctx context.Context, bucket string, entries map[string]*domain.Snapshot) error

	// Put — положить одну запись в существующий бакет; бакеты создаёт только PutAll.
	// Отсутствующий бакет — ErrBucketNotFound.
	Put(ctx context.Context, bucket, key string, snap *domain.Snapshot) error

	// Match — запись по ключу; (nil, false, nil) при промахе.
	Match(ctx context.Context, bucket, key string) (*domain.Snapshot, bool, error)

	// Delete — удалить бакет; false, если его не было.
	Delete(ctx context.Context, bucket string) (bool, error)
}
