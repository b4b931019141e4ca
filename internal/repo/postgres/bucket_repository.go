package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/cespare/xxhash/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.BucketStorage = (*BucketRepository)(nil)

// pgForeignKeyViolation — SQLSTATE нарушения внешнего ключа.
const pgForeignKeyViolation = "23503"

// BucketRepository — бакеты кэша в Postgres: переживают рестарт процесса.
// Записи адресуются хэшем ключа запроса (xxhash); сам ключ хранится рядом и сверяется при чтении.
type BucketRepository struct {
	pool *pgxpool.Pool
}

func NewBucketRepository(pool *pgxpool.Pool) *BucketRepository { return &BucketRepository{pool: pool} }

// keyHash — 64-битный хэш ключа, приведённый к BIGINT.
func keyHash(key string) int64 { return int64(xxhash.Sum64String(key)) }

func (r *BucketRepository) Buckets(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM cache_buckets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select buckets: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan buckets: %w", err)
	}
	return names, nil
}

// PutAll — в одной транзакции удаляет бакет (записи уходят каскадом) и записывает новый набор через COPY.
func (r *BucketRepository) PutAll(ctx context.Context, bucket string, entries map[string]*domain.Snapshot) error {
	rows := make([][]any, 0, len(entries))
	for key, snap := range entries {
		row, err := entryRow(bucket, key, snap)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// После Commit Rollback вернёт ErrTxClosed — это норма.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = transaction.Exec(ctx, `DELETE FROM cache_buckets WHERE name = $1`, bucket); err != nil {
		return fmt.Errorf("drop bucket: %w", err)
	}
	if _, err = transaction.Exec(ctx, `INSERT INTO cache_buckets (name) VALUES ($1)`, bucket); err != nil {
		return fmt.Errorf("insert bucket: %w", err)
	}
	if len(rows) > 0 {
		if _, err = transaction.CopyFrom(
			ctx,
			pgx.Identifier{"cache_entries"},
			entryColumns,
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("copy entries: %w", err)
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.refreshGauge(ctx)
	return nil
}

// Put — upsert одной записи. Бакет не создаётся: запись в удалённый или ещё не созданный
// бакет отклоняется внешним ключом и возвращает ports.ErrBucketNotFound.
func (r *BucketRepository) Put(ctx context.Context, bucket, key string, snap *domain.Snapshot) error {
	row, err := entryRow(bucket, key, snap)
	if err != nil {
		return err
	}

	if _, err = r.pool.Exec(ctx, `
		INSERT INTO cache_entries (
			bucket_name, key_hash, request_key, method, url, status, headers, body, stored_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (bucket_name, key_hash) DO UPDATE SET
			request_key = EXCLUDED.request_key,
			method = EXCLUDED.method,
			url = EXCLUDED.url,
			status = EXCLUDED.status,
			headers = EXCLUDED.headers,
			body = EXCLUDED.body,
			stored_at = EXCLUDED.stored_at
	`, row...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s", ports.ErrBucketNotFound, bucket)
		}
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

// Match — запись по ключу. Совпадение хэша без совпадения ключа считается промахом.
func (r *BucketRepository) Match(ctx context.Context, bucket, key string) (*domain.Snapshot, bool, error) {
	var (
		snap       domain.Snapshot
		requestKey string
		headers    []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT request_key, method, url, status, headers, body, stored_at
		FROM cache_entries
		WHERE bucket_name = $1 AND key_hash = $2
	`, bucket, keyHash(key)).Scan(
		&requestKey, &snap.Method, &snap.URL, &snap.Status, &headers, &snap.Body, &snap.StoredAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select entry: %w", err)
	}
	if requestKey != key {
		return nil, false, nil
	}

	snap.Header = make(http.Header)
	if err := json.Unmarshal(headers, &snap.Header); err != nil {
		return nil, false, fmt.Errorf("decode headers: %w", err)
	}
	return &snap, true, nil
}

func (r *BucketRepository) Delete(ctx context.Context, bucket string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cache_buckets WHERE name = $1`, bucket)
	if err != nil {
		return false, fmt.Errorf("delete bucket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	r.refreshGauge(ctx)
	return true, nil
}

// refreshGauge — число бакетов для метрики; ошибка чтения не влияет на результат операции.
func (r *BucketRepository) refreshGauge(ctx context.Context) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM cache_buckets`).Scan(&n); err == nil {
		metrics.CacheBuckets.Set(float64(n))
	}
}

var entryColumns = []string{
	"bucket_name", "key_hash", "request_key", "method", "url", "status", "headers", "body", "stored_at",
}

func entryRow(bucket, key string, snap *domain.Snapshot) ([]any, error) {
	if snap == nil {
		return nil, fmt.Errorf("nil snapshot for key %q", key)
	}
	header := snap.Header
	if header == nil {
		header = http.Header{}
	}
	headers, err := json.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("encode headers: %w", err)
	}
	body := snap.Body
	if body == nil {
		body = []byte{}
	}
	return []any{bucket, keyHash(key), key, snap.Method, snap.URL, snap.Status, headers, body, snap.StoredAt}, nil
}
