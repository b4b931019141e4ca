package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Значения по умолчанию для незаданных таймингов.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры канала управляющих сообщений.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string

	ProcessTimeout time.Duration // лимит на одну попытку применения сообщения
	RetryInitial   time.Duration // первая пауза между попытками (fetch и применение)
	RetryMax       time.Duration // потолок паузы
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов.
// StartOffset "first" (без учёта регистра и пробелов) читает с начала, всё прочее — с конца.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

// withDefaults — копия с заполненными таймингами; RetryMax не меньше RetryInitial.
func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = defaultRetryInitial
	}
	if c.RetryMax <= 0 {
		c.RetryMax = defaultRetryMax
	}
	if c.RetryMax < c.RetryInitial {
		c.RetryMax = c.RetryInitial
	}
	return c
}
