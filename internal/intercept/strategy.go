// Package intercept — стратегия обработки перехваченных запросов: сначала кэш, потом сеть.
package intercept

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// ErrOffline — сети нет и в кэше ничего не нашлось.
var ErrOffline = errors.New("network unavailable and no cached response")

// HeaderCache — заголовок с результатом обработки: HIT или MISS.
const HeaderCache = "X-Cache"

// cacheStore — то, что стратегии нужно от версионированного кэша.
type cacheStore interface {
	Lookup(ctx context.Context, req *http.Request) (*domain.Snapshot, bool, error)
	Put(ctx context.Context, req *http.Request, snap *domain.Snapshot) error
}

var _ http.RoundTripper = (*Strategy)(nil)

// Strategy — cache-first: попадание отдаётся без сети и без проверки свежести,
// промах идёт в сеть, ответ 200 сохраняется в текущий бакет.
// Запросы к origin'ам из bypass не перехватываются вовсе.
type Strategy struct {
	cache   cacheStore
	network ports.Fetcher
	bypass  []*url.URL
	log     ports.Logger
	now     func() time.Time
}

func NewStrategy(cache cacheStore, network ports.Fetcher, log ports.Logger, bypass ...*url.URL) *Strategy {
	return &Strategy{
		cache:   cache,
		network: network,
		bypass:  bypass,
		log:     log,
		now:     time.Now,
	}
}

// Handle — ответ на перехваченный запрос.
func (s *Strategy) Handle(ctx context.Context, req *http.Request) (*http.Response, error) {
	if s.bypassed(req.URL) || !cacheable(req) {
		return s.Passthrough(ctx, req)
	}

	snap, found, err := s.cache.Lookup(ctx, req)
	if err != nil {
		metrics.CacheOps.WithLabelValues("lookup_error").Inc()
		s.log.Warnf(ctx, "cache lookup failed url=%s: %v; treating as miss", req.URL, err)
		found = false
	}
	if found {
		metrics.CacheOps.WithLabelValues("hit").Inc()
		resp := snap.Response(req)
		resp.Header.Set(HeaderCache, "HIT")
		return resp, nil
	}

	metrics.CacheOps.WithLabelValues("miss").Inc()
	resp, err := s.network.Fetch(ctx, req)
	if err != nil {
		metrics.CacheOps.WithLabelValues("offline").Inc()
		s.log.Warnf(ctx, "fetch failed url=%s: %v", req.URL, err)
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.CacheOps.WithLabelValues("skipped").Inc()
		return resp, nil
	}

	snap, err = domain.NewSnapshot(req, resp, s.now())
	if err != nil {
		metrics.CacheOps.WithLabelValues("offline").Inc()
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}

	if err := s.cache.Put(ctx, req, snap); err != nil {
		metrics.CacheOps.WithLabelValues("store_error").Inc()
		s.log.Warnf(ctx, "cache put failed url=%s: %v", req.URL, err)
	} else {
		metrics.CacheOps.WithLabelValues("stored").Inc()
	}

	out := snap.Response(req)
	out.Header.Set(HeaderCache, "MISS")
	return out, nil
}

// Passthrough — запрос в сеть мимо кэша. Ошибки сети для origin'ов из bypass возвращаются как есть,
// для остальных оборачиваются в ErrOffline.
func (s *Strategy) Passthrough(ctx context.Context, req *http.Request) (*http.Response, error) {
	if s.bypassed(req.URL) {
		metrics.CacheOps.WithLabelValues("passthrough").Inc()
		return s.network.Fetch(ctx, req)
	}

	resp, err := s.network.Fetch(ctx, req)
	if err != nil {
		metrics.CacheOps.WithLabelValues("offline").Inc()
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}
	return resp, nil
}

// RoundTrip — Strategy как транспорт для *http.Client.
func (s *Strategy) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.Handle(req.Context(), req)
}

func (s *Strategy) bypassed(u *url.URL) bool {
	for _, o := range s.bypass {
		if strings.EqualFold(u.Scheme, o.Scheme) &&
			strings.EqualFold(u.Host, o.Host) &&
			underPath(u.Path, o.Path) {
			return true
		}
	}
	return false
}

// underPath — path совпадает с base или лежит под ним по границе сегмента: /api покрывает /api/menu, но не /apiv2.
func underPath(path, base string) bool {
	if base == "" || base == "/" || path == base {
		return true
	}
	if strings.HasSuffix(base, "/") {
		return strings.HasPrefix(path, base)
	}
	return strings.HasPrefix(path, base+"/")
}

// cacheable — хранилище сопоставляет и сохраняет только GET.
func cacheable(req *http.Request) bool {
	return req.Method == "" || req.Method == http.MethodGet
}
