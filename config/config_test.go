package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/storefront/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("STOREFRONT_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 0 {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP header/idle/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "storefront-edge" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Origin + Worker
	if c.Origin.StaticURL != "http://static:8000" || c.Origin.BackendURL != "http://127.0.0.1:5050" {
		t.Fatalf("Origin defaults wrong: %+v", c.Origin)
	}
	if c.Worker.ManifestPath != "./manifest.yaml" || !c.Worker.SkipWaiting || c.Worker.PopulateConcurrency != 8 {
		t.Fatalf("Worker defaults wrong: %+v", c.Worker)
	}

	// Хранилища
	if c.Cache.Backend != cfg.BackendMemory || c.Cart.Backend != cfg.BackendMemory {
		t.Fatalf("storage backends: want memory, got cache=%q cart=%q", c.Cache.Backend, c.Cart.Backend)
	}
	if c.Cart.Key != "ESCafeCoCart" {
		t.Fatalf("Cart.Key: want ESCafeCoCart, got %q", c.Cart.Key)
	}
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 || c.Postgres.PingAttempts != 5 {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}
	if c.Redis.Addr != "redis:6379" || c.Redis.DB != 0 || c.Redis.Prefix != "storefront:" {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false, got true")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "storefront-control" || c.Kafka.GroupID != "storefront-edge" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != 1*time.Second || c.Kafka.RetryMax != 30*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "STOREFRONT_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "1500ms")

	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	t.Setenv(p+"_ORIGIN_STATIC_URL", "http://cdn.local")
	t.Setenv(p+"_ORIGIN_BACKEND_URL", "http://api.local:5050")

	t.Setenv(p+"_WORKER_MANIFEST_PATH", "/etc/storefront/manifest.yaml")
	t.Setenv(p+"_WORKER_SKIP_WAITING", "false")
	t.Setenv(p+"_WORKER_POPULATE_CONCURRENCY", "2")

	t.Setenv(p+"_CACHE_BACKEND", "postgres")
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")

	t.Setenv(p+"_CART_BACKEND", "redis")
	t.Setenv(p+"_CART_KEY", "kiosk-cart")
	t.Setenv(p+"_REDIS_ADDR", "r1:6380")
	t.Setenv(p+"_REDIS_DB", "3")

	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_START_OFFSET", "first")
	t.Setenv(p+"_KAFKA_RETRY_MAX", "2m")

	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" ||
		c.HTTP.WriteTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 1500*time.Millisecond {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Origin.StaticURL != "http://cdn.local" || c.Origin.BackendURL != "http://api.local:5050" {
		t.Fatalf("Origin overrides wrong: %+v", c.Origin)
	}
	if c.Worker.ManifestPath != "/etc/storefront/manifest.yaml" || c.Worker.SkipWaiting || c.Worker.PopulateConcurrency != 2 {
		t.Fatalf("Worker overrides wrong: %+v", c.Worker)
	}
	if c.Cache.Backend != cfg.BackendPostgres || c.Postgres.MaxConns != 42 {
		t.Fatalf("cache storage overrides wrong: %+v %+v", c.Cache, c.Postgres)
	}
	if c.Cart.Backend != cfg.BackendRedis || c.Cart.Key != "kiosk-cart" || c.Redis.Addr != "r1:6380" || c.Redis.DB != 3 {
		t.Fatalf("cart storage overrides wrong: %+v %+v", c.Cart, c.Redis)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.StartOffset != "first" || c.Kafka.RetryMax != 2*time.Minute {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "STOREFRONT_TEST_BAD"
	t.Setenv(p+"_WORKER_POPULATE_CONCURRENCY", "many")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid int, got nil")
	}
}
