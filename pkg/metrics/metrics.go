package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of control messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of control messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of control messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Interception outcomes",
		},
		[]string{"op"}, // hit|miss|stored|skipped|passthrough|offline|lookup_error|store_error
	)
	CacheBuckets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_buckets",
			Help: "Number of cache buckets currently stored",
		},
	)
	BucketEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_bucket_evictions_total",
			Help: "Bucket deletions during activation",
		},
		[]string{"result"}, // deleted|failed
	)
)

var (
	WorkerInstalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_installs_total",
			Help: "Worker install attempts",
		},
		[]string{"result"}, // ok|failed
	)
	WorkerActivations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "worker_activations_total",
			Help: "Worker versions that took control",
		},
	)
	ControlMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_control_messages_total",
			Help: "Control messages received by the worker",
		},
		[]string{"type"},
	)
)

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations",
		},
		[]string{"op"}, // add|set|remove|clear
	)
	CheckoutSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Order submissions by result",
		},
		[]string{"result"}, // ok|invalid|failed
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheBuckets, BucketEvictions,
			WorkerInstalls, WorkerActivations, ControlMessages,
			CartOps, CheckoutSubmissions,
		)
	})
}
