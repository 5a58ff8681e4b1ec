package setup

import (
	"fmt"

	"github.com/dangol-v2/deal-service/internal/config"
	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/expiry"
	publisher "github.com/dangol-v2/deal-service/internal/infrastructure/kafka"
	"github.com/dangol-v2/deal-service/internal/infrastructure/logger"
	"github.com/dangol-v2/deal-service/internal/infrastructure/metrics"
	"github.com/dangol-v2/deal-service/internal/infrastructure/push"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.DealConfig
	DB           *gorm.DB
	Resolver     *expiry.Resolver
	Publisher    *publisher.KafkaPublisher
	Subscriber   *publisher.KafkaSubscriber
	PushSender   push.Sender
	Metrics      *metrics.DealMetrics
	EventLogger  logger.ClaimEventLogger
	Repositories *Repositories
}

type Repositories struct {
	MerchantRepo     domain.MerchantRepository
	DealRepo         domain.DealRepository
	ClaimRepo        domain.ClaimRepository
	SubscriptionRepo domain.SubscriptionRepository
	NotificationRepo domain.NotificationRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := storage.MustInitDB(cfg)

	kafkaConfig := publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}

	dealPublisher, err := publisher.NewKafkaPublisher(kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("deal publisher: %w", err)
	}
	dealSubscriber, err := publisher.NewKafkaSubscriber(kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("deal subscriber: %w", err)
	}

	pushSender := push.NewNoopSender()
	if cfg.PushService.Endpoint != "" {
		pushSender = push.NewHTTPSender(cfg.PushService.Endpoint)
	}

	repos := &Repositories{
		MerchantRepo:     repository.NewDefaultMerchantRepository(db),
		DealRepo:         repository.NewDefaultDealRepository(db),
		ClaimRepo:        repository.NewDefaultClaimRepository(db),
		SubscriptionRepo: repository.NewDefaultSubscriptionRepository(db),
		NotificationRepo: repository.NewDefaultNotificationRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Resolver:     expiry.NewResolver(),
		Publisher:    dealPublisher,
		Subscriber:   dealSubscriber,
		PushSender:   pushSender,
		Metrics:      metrics.NewDealMetrics(),
		EventLogger:  logger.NewPGClaimEventLogger(db),
		Repositories: repos,
	}, nil
}
