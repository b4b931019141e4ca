package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

var _ ports.BucketStorage = (*BucketStorage)(nil)

// BucketStorage — бакеты кэша в памяти процесса.
// Снимки хранятся и отдаются копиями, чтобы внешние изменения не отражались на данных внутри.
type BucketStorage struct {
	buckets map[string]map[string]*domain.Snapshot
	mu      sync.RWMutex
}

func NewBucketStorage() *BucketStorage {
	return &BucketStorage{buckets: make(map[string]map[string]*domain.Snapshot)}
}

func (s *BucketStorage) Buckets(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.buckets))
	for name := range s.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// PutAll — заменяет бакет целиком одной операцией под мьютексом.
func (s *BucketStorage) PutAll(ctx context.Context, bucket string, entries map[string]*domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	staged := make(map[string]*domain.Snapshot, len(entries))
	for key, snap := range entries {
		staged[key] = snap.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets[bucket] = staged
	metrics.CacheBuckets.Set(float64(len(s.buckets)))
	return nil
}

func (s *BucketStorage) Put(_ context.Context, bucket, key string, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.buckets[bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ports.ErrBucketNotFound, bucket)
	}
	entries[key] = snap.Clone()
	return nil
}

func (s *BucketStorage) Match(_ context.Context, bucket, key string) (*domain.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.buckets[bucket][key]
	if !ok {
		return nil, false, nil
	}
	return snap.Clone(), true, nil
}

func (s *BucketStorage) Delete(_ context.Context, bucket string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buckets[bucket]; !ok {
		return false, nil
	}
	delete(s.buckets, bucket)
	metrics.CacheBuckets.Set(float64(len(s.buckets)))
	return true, nil
}
