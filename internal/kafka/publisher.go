package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/segmentio/kafka-go"
)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — отправка управляющих сообщений в топик (инструменты деплоя, storefront-ctl).
type Publisher struct {
	w writer
}

// NewPublisher — синхронная запись с подтверждением от всех реплик.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{w: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

// Publish — сообщение с ключом key (например, версия релиза). Один ключ — одна партиция,
// поэтому сообщения об одном релизе приходят по порядку.
func (p *Publisher) Publish(ctx context.Context, key string, msg domain.ControlMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal control message: %w", err)
	}
	if err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: raw}); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error { return p.w.Close() }
