package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/joho/godotenv"
)

// CLI для деплоя: отправляет управляющее сообщение всем экземплярам витрины через Kafka.
// Пример: storefront-ctl -type SKIP_WAITING -key v1.5.2
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	brokers := flag.String("brokers", strings.Join(cfg.Kafka.Brokers, ","), "comma-separated Kafka brokers")
	topic := flag.String("topic", cfg.Kafka.Topic, "control topic")
	msgType := flag.String("type", domain.MessageSkipWaiting, "control message type")
	key := flag.String("key", "", "message key (release version)")
	timeout := flag.Duration("timeout", 10*time.Second, "publish timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	p := kafka.NewPublisher(strings.Split(*brokers, ","), *topic)
	defer p.Close()

	if err := p.Publish(ctx, *key, domain.ControlMessage{Type: *msgType}); err != nil {
		fmt.Fprintf(os.Stderr, "publish: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "sent %s to %s (key=%q)\n", *msgType, *topic, *key)
}
