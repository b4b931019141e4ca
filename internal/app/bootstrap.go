package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/backend"
	"github.com/Gunvolt24/storefront/internal/bucket"
	cachemem "github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/intercept"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/network"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/repo/redis"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/transport/ws"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/internal/worker"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// releaseInstaller — восстановление сохранённого бакета и установка релиза статики при старте.
type releaseInstaller interface {
	Restore(ctx context.Context, m domain.Manifest) (string, error)
	Install(ctx context.Context, m domain.Manifest) error
}

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP-сервер
	KafkaConsumer ports.MessageConsumer // консьюмер управляющих сообщений; nil — выключен
	Worker        releaseInstaller      // контроллер воркера
	Release       *domain.Manifest      // релиз, устанавливаемый при старте; nil — не устанавливать

	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// closers — стек функций освобождения; вызываются в обратном порядке.
type closers []func()

func (c *closers) add(f func()) { *c = append(*c, f) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	var cs closers
	cs.add(func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	})
	fail := func(err error) (*App, Cleanup, error) {
		cs.run()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			cs.add(func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	staticOrigin, err := parseOrigin(cfg.Origin.StaticURL)
	if err != nil {
		return fail(fmt.Errorf("static origin: %w", err))
	}
	backendOrigin, err := parseOrigin(cfg.Origin.BackendURL)
	if err != nil {
		return fail(fmt.Errorf("backend origin: %w", err))
	}

	// Хранилища: бакеты кэша и строковое хранилище корзины.
	buckets, err := newBucketStorage(ctx, cfg, logg, &cs)
	if err != nil {
		return fail(err)
	}
	kv, err := newKeyValueStore(ctx, cfg, logg, &cs)
	if err != nil {
		return fail(err)
	}

	// Сеть → кэш бакетов → стратегия перехвата → контроллер воркера.
	fetcher := network.NewHTTPFetcher(&http.Client{
		Transport: telemetry.NewTransport(nil),
		Timeout:   cfg.Origin.ClientTimeout,
	})
	store := bucket.NewStore(buckets, fetcher, staticOrigin, logg, bucket.WithConcurrency(cfg.Worker.PopulateConcurrency))
	strategy := intercept.NewStrategy(store, fetcher, logg, backendOrigin)
	controller := worker.NewController(store, strategy, logg, worker.WithSkipWaiting(cfg.Worker.SkipWaiting))

	// Релиз статики из манифеста; без него сервис работает только через сеть.
	var release *domain.Manifest
	if m, mErr := worker.LoadManifest(cfg.Worker.ManifestPath); mErr != nil {
		logg.Warnf(ctx, "release manifest not loaded path=%s: %v", cfg.Worker.ManifestPath, mErr)
	} else {
		release = &m
	}

	// Бэкенд ходит через контроллер: его origin стратегия пропускает мимо кэша.
	backendClient := backend.NewClient(backendOrigin.String(), controller)

	// Сборка usecase-слоя.
	cartService := usecase.NewCartService(kv, logg, cfg.Cart.Key)
	checkoutService := usecase.NewCheckoutService(cartService, backendClient, validate.NewOrderValidator(), kv, logg)
	catalogService := usecase.NewCatalogService(backendClient, logg)

	// Канал страниц: уведомления контроллера → все открытые websocket-соединения.
	hub := ws.NewHub(controller, logg)
	unsubscribe := controller.Subscribe(hub.Notify)
	cs.add(func() {
		unsubscribe()
		hub.Close()
	})

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(rest.Services{
		Cart:     cartService,
		Checkout: checkoutService,
		Menu:     catalogService,
		Worker:   controller,
	}, staticOrigin, hub, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Worker:          controller,
		Release:         release,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер Kafka (опционально): управляющие сообщения от оператора.
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer := kafka.NewConsumer(&kafkaCfg, controller, logg)
		app.KafkaConsumer = consumer
		cs.add(func() {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		})
	}

	return app, cs.run, nil
}

// parseOrigin — абсолютный http(s) URL без завершающего слэша.
func parseOrigin(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(raw), "/"))
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("not an absolute http url: %q", raw)
	}
	return u, nil
}

// newBucketStorage — хранилище бакетов: память процесса или Postgres.
func newBucketStorage(ctx context.Context, cfg *config.Config, log ports.Logger, cs *closers) (ports.BucketStorage, error) {
	switch strings.ToLower(cfg.Cache.Backend) {
	case "", config.BackendMemory:
		return cachemem.NewBucketStorage(), nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, postgres.Options{
			DSN:          cfg.Postgres.DSN,
			MaxConns:     cfg.Postgres.MaxConns,
			PingAttempts: cfg.Postgres.PingAttempts,
		})
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		cs.add(pool.Close)
		if err := postgres.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		log.Infof(ctx, "bucket storage: postgres")
		return postgres.NewBucketRepository(pool), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// newKeyValueStore — хранилище корзины: память процесса или Redis.
func newKeyValueStore(ctx context.Context, cfg *config.Config, log ports.Logger, cs *closers) (ports.KeyValueStore, error) {
	switch strings.ToLower(cfg.Cart.Backend) {
	case "", config.BackendMemory:
		return cachemem.NewKVStore(), nil
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("redis client: %w", err)
		}
		cs.add(func() {
			if err := client.Close(); err != nil {
				log.Warnf(ctx, "redis close: %v", err)
			}
		})
		log.Infof(ctx, "cart storage: redis addr=%s", cfg.Redis.Addr)
		return redis.NewKVStore(client, cfg.Redis.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.Cart.Backend)
	}
}

// Run — запускает HTTP-сервер и консьюмера, устанавливает релиз;
// ждёт отмены контекста или ошибки и останавливает всё.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Бакет прошлого запуска (Postgres) обслуживает запросы сразу, ещё до новой установки.
	// Установка не блокирует старт: без восстановленной версии запросы до активации идут в сеть.
	if a.Worker != nil && a.Release != nil {
		if restored, err := a.Worker.Restore(ctx, *a.Release); err != nil {
			a.Logger.Warnf(ctx, "restore persisted release failed: %v", err)
		} else if restored != "" {
			a.Logger.Infof(ctx, "restored persisted release version=%s", restored)
		}
		go func() {
			if err := a.Worker.Install(ctx, *a.Release); err != nil {
				a.Logger.Warnf(ctx, "startup install version=%s failed: %v", a.Release.Version, err)
				return
			}
			a.Logger.Infof(ctx, "startup install version=%s done", a.Release.Version)
		}()
	}

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
