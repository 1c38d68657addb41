// Command expressstores-events prints the marketplace events published on
// the configured kafka topic.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/LavaJover/shvark-expressstores-service/internal/config"
	publisher "github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/joho/godotenv"
)

func main() {
	groupID := flag.String("group", "expressstores-events-tail", "kafka consumer group")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()
	logger.New(cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat, cfg.LogConfig.LogOutput)

	if cfg.KafkaService.Host == "" {
		log.Fatalf("kafka-service host is required\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub := publisher.NewDefaultKafkaSubscriber(cfg.KafkaBrokers())
	messages, err := sub.Subscribe(ctx, cfg.KafkaService.Topic, *groupID)
	if err != nil {
		log.Fatalf("failed to subscribe: %v\n", err)
	}

	slog.Info("tailing marketplace events", "topic", cfg.KafkaService.Topic, "group", *groupID)
	for msg := range messages {
		event, err := publisher.DecodeEvent(msg)
		if err != nil {
			slog.Warn("skipping undecodable message", "key", string(msg.Key), "error", err)
			continue
		}
		slog.Info("marketplace event",
			"id", event.ID,
			"type", event.Type,
			"account", event.Account,
			"store_id", event.StoreID,
			"product_id", event.ProductID,
			"amount", event.Amount,
			"occurred_at", event.OccurredAt,
		)
	}
}
