package setup

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-expressstores-service/internal/config"
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	publisher "github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.MarketplaceConfig
	DB           *gorm.DB
	Registry     *prometheus.Registry
	Metrics      *metrics.MarketplaceMetrics
	Publisher    domain.EventPublisher
	EventLogger  logger.PurchaseEventLogger
	Repositories *Repositories

	kafkaPublisher *publisher.DefaultKafkaPublisher
}

type Repositories struct {
	StoreRepo      domain.StoreRepository
	SuggestionRepo domain.SuggestionRepository
	PurchaseRepo   domain.PurchaseRepository
}

// InitializeDependencies opens storage and messaging for cfg. With the
// memory driver DB stays nil and purchase events go to slog.
func InitializeDependencies(cfg *config.MarketplaceConfig) (*Dependencies, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := &Dependencies{
		Config:   cfg,
		Registry: registry,
		Metrics:  metrics.NewMarketplaceMetrics(registry),
	}

	switch cfg.Storage.Driver {
	case "postgres":
		db := postgres.MustInitDB(cfg)
		deps.DB = db
		deps.EventLogger = logger.NewPGPurchaseEventLogger(db)
		deps.Repositories = &Repositories{
			StoreRepo:      repository.NewDefaultStoreRepository(db),
			SuggestionRepo: repository.NewDefaultSuggestionRepository(db),
			PurchaseRepo:   repository.NewDefaultPurchaseRepository(db),
		}
	case "memory":
		deps.EventLogger = logger.NewSlogPurchaseEventLogger(slog.Default())
		deps.Repositories = &Repositories{
			StoreRepo:      memory.NewStoreRepository(),
			SuggestionRepo: memory.NewSuggestionRepository(),
			PurchaseRepo:   memory.NewPurchaseRepository(),
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.KafkaService.Enabled {
		deps.kafkaPublisher = publisher.NewDefaultKafkaPublisher(cfg.KafkaBrokers())
		deps.Publisher = publisher.NewMarketplaceEventPublisher(deps.kafkaPublisher, cfg.KafkaService.Topic)
	} else {
		slog.Info("kafka disabled, marketplace events are dropped")
		deps.Publisher = publisher.NoopEventPublisher{}
	}

	return deps, nil
}

// Close releases the kafka writer and the database pool.
func (d *Dependencies) Close() error {
	var errs []error
	if d.kafkaPublisher != nil {
		if err := d.kafkaPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("kafka publisher: %w", err))
		}
	}
	if d.DB != nil {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}
	return errors.Join(errs...)
}
