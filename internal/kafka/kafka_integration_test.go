//go:build integration

package kafka_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/bucket"
	"github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/intercept"
	ikafka "github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/network"
	"github.com/Gunvolt24/storefront/internal/testutil"
	"github.com/Gunvolt24/storefront/internal/worker"
	"github.com/Gunvolt24/storefront/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// 1) SKIP_WAITING из топика активирует ожидающую версию
func TestKafka_SkipWaiting_ActivatesWaiting_TC(t *testing.T) {
	ctx, kf := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	ctrl := newController(t)
	require.NoError(t, ctrl.Install(ctx, manifest("v1")))
	require.NotNil(t, ctrl.Status().Waiting)
	require.Nil(t, ctrl.Status().Active)

	consumer := newConsumer(t, kf.Brokers, topic, group, "first", ctrl)
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)
	publishSkipWaiting(t, ctx, kf.Brokers, topic)

	waitActive(t, ctrl, "v1")
}

// 2) Мусор и неизвестный тип пропускаются, следующее валидное сообщение применяется
func TestKafka_Skip_Garbage_Then_Activate_TC(t *testing.T) {
	ctx, kf := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-garbage-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	ctrl := newController(t)
	require.NoError(t, ctrl.Install(ctx, manifest("v2")))

	writeMsg(t, ctx, kf.Brokers, topic, []byte("not-a-json"))
	writeMsg(t, ctx, kf.Brokers, topic, []byte(`{"type":"CLAIM_CLIENTS"}`))
	publishSkipWaiting(t, ctx, kf.Brokers, topic)

	consumer := newConsumer(t, kf.Brokers, topic, group, "first", ctrl)
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	waitActive(t, ctrl, "v2")
}

// 3) At-least-once через рестарт: при временной ошибке оффсет не коммитится — передоставка новому консьюмеру
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	ctx, kf := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))
	publishSkipWaiting(t, ctx, kf.Brokers, topic)

	// Фаза 1: всегда временная ошибка => оффсет НЕ коммитится
	var calls atomic.Int32
	failing := newConsumer(t, kf.Brokers, topic, group, "first", alwaysTempFail{calls: &calls})
	runCtx1, cancelRun1 := context.WithCancel(ctx)
	go func() { _ = failing.Run(runCtx1) }()

	deadline := time.Now().Add(20 * time.Second)
	for calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("message was never delivered to the failing handler")
		}
		time.Sleep(100 * time.Millisecond)
	}
	cancelRun1()
	_ = failing.Close()

	// Фаза 2: та же группа, настоящий контроллер
	ctrl := newController(t)
	require.NoError(t, ctrl.Install(ctx, manifest("v3")))

	consumer := newConsumer(t, kf.Brokers, topic, group, "first", ctrl)
	runCtx2, cancelRun2 := context.WithCancel(ctx)
	defer cancelRun2()
	go func() { _ = consumer.Run(runCtx2) }()

	waitActive(t, ctrl, "v3")
}

// -----------------функции-помощники-----------------

func newStack(t *testing.T) (context.Context, *testutil.KafkaEnv) {
	t.Helper()

	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "storefront-control-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)
	return ctx, kf
}

func newController(t *testing.T) *worker.Controller {
	t.Helper()

	static := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "asset "+r.URL.Path)
	}))
	t.Cleanup(static.Close)
	origin, err := url.Parse(static.URL)
	require.NoError(t, err)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	fetcher := network.NewHTTPFetcher(nil)
	store := bucket.NewStore(memory.NewBucketStorage(), fetcher, origin, logg)
	strategy := intercept.NewStrategy(store, fetcher, logg)
	return worker.NewController(store, strategy, logg, worker.WithSkipWaiting(false))
}

func manifest(version string) domain.Manifest {
	return domain.Manifest{
		Version: version,
		Prefix:  "es-cafe-",
		Assets:  []string{"/index.html", "/static/style.css"},
	}
}

func newConsumer(t *testing.T, brokers []string, topic, group, offset string, h interface {
	HandleControlMessage(ctx context.Context, raw []byte) error
}) *ikafka.Consumer {
	t.Helper()
	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	c := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    offset,
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, h, logg)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func waitActive(t *testing.T, ctrl *worker.Controller, version string) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		if a := ctrl.Status().Active; a != nil && a.Version == version {
			require.Nil(t, ctrl.Status().Waiting)
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("version %s was not activated in time", version)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: payload}))
}

// publishSkipWaiting — так же, как это делает storefront-ctl.
func publishSkipWaiting(t *testing.T, ctx context.Context, brokers []string, topic string) {
	t.Helper()
	p := ikafka.NewPublisher(brokers, topic)
	defer p.Close()
	require.NoError(t, p.Publish(ctx, "release", domain.ControlMessage{Type: domain.MessageSkipWaiting}))
}

// обработчик-заглушка, который всегда возвращает временную ошибку (чтобы не коммитить оффсет)
type alwaysTempFail struct{ calls *atomic.Int32 }

func (h alwaysTempFail) HandleControlMessage(context.Context, []byte) error {
	h.calls.Add(1)
	return errors.New("temporary failure")
}
