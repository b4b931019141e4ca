package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/worker"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моками в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageHandler — контроллер воркера: разбирает сообщение и применяет его к жизненному циклу версий.
type messageHandler interface {
	HandleControlMessage(ctx context.Context, raw []byte) error
}

// Consumer — доставляет управляющие сообщения (SKIP_WAITING от деплоя и т.п.) в контроллер воркера.
//
// Порядок сообщений важен, поэтому временная ошибка не пропускает сообщение:
// оно применяется повторно с паузой, пока не пройдёт или не отменится контекст.
// Оффсет коммитится только после применения (или отказа навсегда), так что
// после рестарта недоставленное сообщение придёт снова.
type Consumer struct {
	reader         reader
	handler        messageHandler
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     *backoff
	applyRetry     *backoff
	closeOnce      sync.Once
}

func NewConsumer(cfg *ConsumerConfig, handler messageHandler, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	seed := time.Now().UnixNano()
	return &Consumer{
		reader:         kafka.NewReader(c.ReaderConfig()),
		handler:        handler,
		log:            log,
		processTimeout: c.ProcessTimeout,
		fetchRetry:     newBackoff(c.RetryInitial, c.RetryMax, seed),
		applyRetry:     newBackoff(c.RetryInitial, c.RetryMax, seed+1),
	}
}

// Run — цикл чтения до отмены контекста; возвращает ctx.Err().
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "control consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d := c.fetchRetry.next()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, d)
			if !sleep(ctx, d) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if !c.apply(ctx, rc.Topic, &msg) {
			return ctx.Err()
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
		}
	}
}

// apply — применяет сообщение, повторяя при временных ошибках.
// true — сообщение можно коммитить; false — контекст отменён, оффсет остаётся.
func (c *Consumer) apply(ctx context.Context, topic string, msg *kafka.Message) bool {
	defer c.applyRetry.reset()

	for attempt := 1; ; attempt++ {
		err := c.applyOnce(ctx, msg.Value)
		switch {
		case err == nil:
			metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
			return true
		case permanent(err):
			metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
			c.log.Warnf(ctx, "rejected control message offset=%d key=%q: %v (skipped)", msg.Offset, msg.Key, err)
			return true
		}

		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		if ctx.Err() != nil {
			return false
		}
		d := c.applyRetry.next()
		c.log.Warnf(ctx, "apply failed offset=%d attempt=%d: %v (retry in %s)", msg.Offset, attempt, err, d)
		if !sleep(ctx, d) {
			return false
		}
	}
}

func (c *Consumer) applyOnce(ctx context.Context, raw []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()
	return c.handler.HandleControlMessage(ctx, raw)
}

// permanent — повтор ничего не изменит: битый JSON или неизвестный тип.
func permanent(err error) bool {
	return errors.Is(err, worker.ErrInvalidMessage) || errors.Is(err, worker.ErrUnknownMessage)
}

// Close — закрывает reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
