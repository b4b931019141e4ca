// Package worker — жизненный цикл версий воркера: установка с предзаполнением кэша,
// активация с удалением старых бакетов, управляющие сообщения и обработка перехваченных запросов.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/Gunvolt24/storefront/internal/bucket"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

var (
	ErrInstallFailed  = errors.New("install failed")
	ErrUnknownMessage = errors.New("unknown control message")
	ErrInvalidMessage = errors.New("invalid control message")
)

var (
	_ ports.WorkerControl = (*Controller)(nil)
	_ http.RoundTripper   = (*Controller)(nil)
)

type cacheStore interface {
	Buckets(ctx context.Context) ([]string, error)
	Populate(ctx context.Context, bucket string, assets []string) error
	EvictExcept(ctx context.Context, current string) (bucket.EvictReport, error)
	SetCurrent(name string)
}

type fetchStrategy interface {
	Handle(ctx context.Context, req *http.Request) (*http.Response, error)
	Passthrough(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Listener — получатель уведомлений контроллера (страницы через websocket и т.п.).
type Listener func(ctx context.Context, n domain.Notification)

type version struct {
	manifest domain.Manifest
	bucket   string
	state    domain.WorkerState
}

// Controller — владелец версий воркера и текущего бакета.
// Установки и активации выполняются строго по одной; чтение состояния защищено RWMutex.
type Controller struct {
	store       cacheStore
	strategy    fetchStrategy
	log         ports.Logger
	skipWaiting bool

	lifecycle sync.Mutex

	mu         sync.RWMutex
	active     *version
	waiting    *version
	installing *version

	subsMu  sync.Mutex
	subs    map[int]Listener
	nextSub int

	handlers map[EventKind]handlerFunc
}

type Option func(*Controller)

// WithSkipWaiting — активировать установленную версию сразу, не дожидаясь SKIP_WAITING.
func WithSkipWaiting(skip bool) Option {
	return func(c *Controller) { c.skipWaiting = skip }
}

func NewController(store cacheStore, strategy fetchStrategy, log ports.Logger, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		strategy:    strategy,
		log:         log,
		skipWaiting: true,
		subs:        make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.handlers = c.routes()
	return c
}

// Install — установка версии из манифеста.
func (c *Controller) Install(ctx context.Context, m domain.Manifest) error {
	return c.Dispatch(ctx, Event{Kind: EventInstall, Manifest: &m}).Err
}

// Activate — передать управление ожидающей версии; без неё ничего не делает.
func (c *Controller) Activate(ctx context.Context) error {
	return c.Dispatch(ctx, Event{Kind: EventActivate}).Err
}

// HandleMessage — управляющее сообщение от страницы.
func (c *Controller) HandleMessage(ctx context.Context, msg domain.ControlMessage) error {
	return c.Dispatch(ctx, Event{Kind: EventMessage, Message: &msg}).Err
}

// HandleControlMessage — то же для сырого JSON (Kafka).
func (c *Controller) HandleControlMessage(ctx context.Context, raw []byte) error {
	var msg domain.ControlMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.Type == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidMessage)
	}
	return c.HandleMessage(ctx, msg)
}

// Fetch — ответ на перехваченный запрос.
func (c *Controller) Fetch(ctx context.Context, req *http.Request) (*http.Response, error) {
	out := c.Dispatch(ctx, Event{Kind: EventFetch, Request: req})
	return out.Response, out.Err
}

// RoundTrip — контроллер как транспорт: исходящие запросы сервиса тоже проходят перехват.
func (c *Controller) RoundTrip(req *http.Request) (*http.Response, error) {
	return c.Fetch(req.Context(), req)
}

// Status — снимок состояния версий.
func (c *Controller) Status() domain.WorkerStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.WorkerStatus{
		Active:     c.active.info(),
		Waiting:    c.waiting.info(),
		Installing: c.installing.info(),
	}
}

// Subscribe — подписка на уведомления; возвращает функцию отписки.
func (c *Controller) Subscribe(l Listener) (cancel func()) {
	c.subsMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = l
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

// Restore — принять активной версией бакет, уже лежащий в хранилище (рестарт процесса с Postgres).
// Подходит бакет версии манифеста, иначе единственный бакет с тем же префиксом.
// Сеть не нужна; при уже активной версии ничего не делает. Возвращает принятую версию или "".
func (c *Controller) Restore(ctx context.Context, m domain.Manifest) (string, error) {
	if m.Prefix == "" {
		return "", fmt.Errorf("%w: empty prefix", ErrInvalidManifest)
	}

	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.RLock()
	controlled := c.active != nil
	c.mu.RUnlock()
	if controlled {
		return "", nil
	}

	names, err := c.store.Buckets(ctx)
	if err != nil {
		return "", fmt.Errorf("list buckets: %w", err)
	}
	name := persistedBucket(names, m)
	if name == "" {
		return "", nil
	}

	v := &version{
		manifest: domain.Manifest{Version: strings.TrimPrefix(name, m.Prefix), Prefix: m.Prefix},
		bucket:   name,
	}
	c.store.SetCurrent(name)

	c.mu.Lock()
	c.active = v
	c.mu.Unlock()
	c.transition(ctx, v, domain.StateActivated)

	c.log.Infof(ctx, "worker restored version=%s bucket=%s", v.manifest.Version, name)
	c.notify(ctx, domain.Notification{
		Type:    domain.NotificationControllerChanged,
		Version: v.manifest.Version,
		State:   domain.StateActivated,
	})
	return v.manifest.Version, nil
}

func persistedBucket(names []string, m domain.Manifest) string {
	want := bucket.Name(m.Prefix, m.Version)
	var prefixed []string
	for _, n := range names {
		if n == want && m.Version != "" {
			return n
		}
		if strings.HasPrefix(n, m.Prefix) && len(n) > len(m.Prefix) {
			prefixed = append(prefixed, n)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0]
	}
	return ""
}

func (c *Controller) onInstall(ctx context.Context, ev Event) Outcome {
	if ev.Manifest == nil {
		return Outcome{Err: fmt.Errorf("%w: install without manifest", ErrInvalidEvent)}
	}
	m := *ev.Manifest
	if err := ValidateManifest(m); err != nil {
		return Outcome{Err: fmt.Errorf("%w: %w", ErrInstallFailed, err)}
	}

	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	v := &version{manifest: m, bucket: bucket.Name(m.Prefix, m.Version)}
	c.mu.Lock()
	c.installing = v
	c.mu.Unlock()
	c.transition(ctx, v, domain.StateInstalling)

	if err := c.store.Populate(ctx, v.bucket, m.Assets); err != nil {
		c.mu.Lock()
		c.installing = nil
		c.mu.Unlock()
		c.transition(ctx, v, domain.StateRedundant)

		metrics.WorkerInstalls.WithLabelValues("failed").Inc()
		c.log.Errorf(ctx, "worker install failed version=%s bucket=%s: %v", m.Version, v.bucket, err)
		return Outcome{Err: fmt.Errorf("%w: version %s: %w", ErrInstallFailed, m.Version, err)}
	}

	c.mu.Lock()
	replaced := c.waiting
	c.installing = nil
	c.waiting = v
	c.mu.Unlock()
	if replaced != nil {
		c.transition(ctx, replaced, domain.StateRedundant)
	}
	c.transition(ctx, v, domain.StateInstalled)

	metrics.WorkerInstalls.WithLabelValues("ok").Inc()
	c.log.Infof(ctx, "worker installed version=%s bucket=%s assets=%d", m.Version, v.bucket, len(m.Assets))

	if c.skipWaiting {
		return Outcome{Err: c.activateLocked(ctx)}
	}
	return Outcome{}
}

func (c *Controller) onActivate(ctx context.Context, _ Event) Outcome {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	return Outcome{Err: c.activateLocked(ctx)}
}

// activateLocked — вызывается под c.lifecycle.
func (c *Controller) activateLocked(ctx context.Context) error {
	c.mu.RLock()
	v := c.waiting
	c.mu.RUnlock()
	if v == nil {
		return nil
	}

	c.transition(ctx, v, domain.StateActivating)

	// сначала переключаем текущий бакет: запросы во время удаления пишут уже в новый
	c.store.SetCurrent(v.bucket)

	report, err := c.store.EvictExcept(ctx, v.bucket)
	if err != nil {
		c.log.Warnf(ctx, "evict old buckets: %v", err)
	}

	c.mu.Lock()
	previous := c.active
	c.active = v
	c.waiting = nil
	c.mu.Unlock()
	if previous != nil && previous != v {
		c.transition(ctx, previous, domain.StateRedundant)
	}
	c.transition(ctx, v, domain.StateActivated)

	metrics.WorkerActivations.Inc()
	c.log.Infof(ctx, "worker activated version=%s bucket=%s evicted=%v", v.manifest.Version, v.bucket, report.Deleted)

	// claim: новый бакет уже обслуживает запросы, страницам сообщаем о смене контроллера
	c.notify(ctx, domain.Notification{
		Type:    domain.NotificationControllerChanged,
		Version: v.manifest.Version,
		State:   domain.StateActivated,
	})
	return nil
}

func (c *Controller) onMessage(ctx context.Context, ev Event) Outcome {
	if ev.Message == nil {
		return Outcome{Err: fmt.Errorf("%w: message event without message", ErrInvalidEvent)}
	}

	switch ev.Message.Type {
	case domain.MessageSkipWaiting:
		metrics.ControlMessages.WithLabelValues(ev.Message.Type).Inc()
		c.lifecycle.Lock()
		defer c.lifecycle.Unlock()
		return Outcome{Err: c.activateLocked(ctx)}
	default:
		metrics.ControlMessages.WithLabelValues("unknown").Inc()
		return Outcome{Err: fmt.Errorf("%w: %q", ErrUnknownMessage, ev.Message.Type)}
	}
}

func (c *Controller) onFetch(ctx context.Context, ev Event) Outcome {
	if ev.Request == nil {
		return Outcome{Err: fmt.Errorf("%w: fetch without request", ErrInvalidEvent)}
	}

	c.mu.RLock()
	controlled := c.active != nil
	c.mu.RUnlock()

	// до активации кэш не используется, но отказ сети — тот же ErrOffline, что и под контролем
	if !controlled {
		resp, err := c.strategy.Passthrough(ctx, ev.Request)
		return Outcome{Response: resp, Err: err}
	}
	resp, err := c.strategy.Handle(ctx, ev.Request)
	return Outcome{Response: resp, Err: err}
}

func (c *Controller) transition(ctx context.Context, v *version, state domain.WorkerState) {
	c.mu.Lock()
	v.state = state
	c.mu.Unlock()

	c.notify(ctx, domain.Notification{
		Type:    domain.NotificationStateChanged,
		Version: v.manifest.Version,
		State:   state,
	})
}

func (c *Controller) notify(ctx context.Context, n domain.Notification) {
	c.subsMu.Lock()
	listeners := make([]Listener, 0, len(c.subs))
	for _, l := range c.subs {
		listeners = append(listeners, l)
	}
	c.subsMu.Unlock()

	for _, l := range listeners {
		l(ctx, n)
	}
}

func (v *version) info() *domain.WorkerInfo {
	if v == nil {
		return nil
	}
	return &domain.WorkerInfo{Version: v.manifest.Version, Bucket: v.bucket, State: v.state}
}
