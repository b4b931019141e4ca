// Package bucket — версионированный кэш ресурсов: предзаполнение бакета релиза,
// поиск и запись в текущий бакет, удаление устаревших бакетов.
package bucket

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoCurrentBucket — запись невозможна: ни одна версия ещё не активирована.
	ErrNoCurrentBucket = errors.New("no current bucket")
	// ErrBadStatus — источник ответил не-2xx при предзаполнении.
	ErrBadStatus = errors.New("unexpected status")
)

const defaultConcurrency = 8

// Name — имя бакета версии.
func Name(prefix, version string) string { return prefix + version }

// RequestKey — ключ записи: метод и абсолютный URL без фрагмента.
func RequestKey(req *http.Request) string {
	u := *req.URL
	u.Fragment = ""
	u.RawFragment = ""

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	return method + " " + u.String()
}

// EvictReport — итог EvictExcept по каждому бакету.
type EvictReport struct {
	Deleted []string
	Failed  map[string]error
}

// Store — кэш поверх BucketStorage. Текущий бакет назначает контроллер воркера.
type Store struct {
	storage     ports.BucketStorage
	fetcher     ports.Fetcher
	origin      *url.URL
	log         ports.Logger
	concurrency int
	now         func() time.Time

	mu      sync.RWMutex
	current string
}

type Option func(*Store)

// WithConcurrency — сколько ресурсов качать параллельно при предзаполнении.
func WithConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithClock — источник времени для StoredAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore — origin используется для разрешения относительных путей из манифеста.
func NewStore(storage ports.BucketStorage, fetcher ports.Fetcher, origin *url.URL, log ports.Logger, opts ...Option) *Store {
	s := &Store{
		storage:     storage,
		fetcher:     fetcher,
		origin:      origin,
		log:         log,
		concurrency: defaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve — абсолютный URL ресурса из манифеста.
func (s *Store) Resolve(asset string) (*url.URL, error) {
	ref, err := url.Parse(asset)
	if err != nil {
		return nil, fmt.Errorf("parse asset %q: %w", asset, err)
	}
	if s.origin == nil {
		return ref, nil
	}
	return s.origin.ResolveReference(ref), nil
}

// Populate — скачивает все ресурсы и атомарно записывает их в бакет.
// Любая ошибка (сеть, не-2xx) отменяет остальные загрузки, бакет не создаётся.
func (s *Store) Populate(ctx context.Context, bucket string, assets []string) error {
	var (
		mu     sync.Mutex
		staged = make(map[string]*domain.Snapshot, len(assets))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, asset := range assets {
		g.Go(func() error {
			key, snap, err := s.fetchAsset(gctx, asset)
			if err != nil {
				return fmt.Errorf("asset %q: %w", asset, err)
			}
			mu.Lock()
			staged[key] = snap
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("populate %s: %w", bucket, err)
	}

	if err := s.storage.PutAll(ctx, bucket, staged); err != nil {
		return fmt.Errorf("populate %s: commit: %w", bucket, err)
	}

	s.log.Infof(ctx, "bucket populated bucket=%s assets=%d", bucket, len(staged))
	return nil
}

func (s *Store) fetchAsset(ctx context.Context, asset string) (string, *domain.Snapshot, error) {
	target, err := s.Resolve(asset)
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return "", nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return "", nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	snap, err := domain.NewSnapshot(req, resp, s.now())
	if err != nil {
		return "", nil, err
	}
	return RequestKey(req), snap, nil
}

// EvictExcept — удаляет все бакеты, кроме current. Удаления идут параллельно,
// сбой одного не мешает остальным; ошибки собираются через errors.Join.
func (s *Store) EvictExcept(ctx context.Context, current string) (EvictReport, error) {
	report := EvictReport{Failed: make(map[string]error)}

	names, err := s.storage.Buckets(ctx)
	if err != nil {
		return report, fmt.Errorf("list buckets: %w", err)
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, name := range names {
		if name == current {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.storage.Delete(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[name] = err
				metrics.BucketEvictions.WithLabelValues("failed").Inc()
				return
			}
			report.Deleted = append(report.Deleted, name)
			metrics.BucketEvictions.WithLabelValues("deleted").Inc()
		}()
	}
	wg.Wait()

	sort.Strings(report.Deleted)

	failed := make([]string, 0, len(report.Failed))
	for name := range report.Failed {
		failed = append(failed, name)
	}
	sort.Strings(failed)

	errs := make([]error, 0, len(failed))
	for _, name := range failed {
		errs = append(errs, fmt.Errorf("delete bucket %s: %w", name, report.Failed[name]))
	}
	return report, errors.Join(errs...)
}

// Lookup — запись текущего бакета; без текущего бакета всегда промах.
func (s *Store) Lookup(ctx context.Context, req *http.Request) (*domain.Snapshot, bool, error) {
	current := s.Current()
	if current == "" {
		return nil, false, nil
	}
	return s.storage.Match(ctx, current, RequestKey(req))
}

// Put — запись в текущий бакет.
func (s *Store) Put(ctx context.Context, req *http.Request, snap *domain.Snapshot) error {
	current := s.Current()
	if current == "" {
		return ErrNoCurrentBucket
	}
	return s.storage.Put(ctx, current, RequestKey(req), snap)
}

// Buckets — имена всех бакетов в хранилище.
func (s *Store) Buckets(ctx context.Context) ([]string, error) {
	return s.storage.Buckets(ctx)
}

func (s *Store) SetCurrent(name string) {
	s.mu.Lock()
	s.current = name
	s.mu.Unlock()
}

func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
