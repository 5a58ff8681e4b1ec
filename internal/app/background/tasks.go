package background

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dangol-v2/deal-service/internal/domain"
	publisher "github.com/dangol-v2/deal-service/internal/infrastructure/kafka"
	"github.com/dangol-v2/deal-service/internal/usecase"
)

const dealEventsGroupID = "deal-service-notifier"

type BackgroundTasks struct {
	NotificationUsecase usecase.NotificationUsecase
	Subscriber          domain.SubscriberPort
}

func NewBackgroundTasks(notificationUC usecase.NotificationUsecase, subscriber domain.SubscriberPort) *BackgroundTasks {
	return &BackgroundTasks{
		NotificationUsecase: notificationUC,
		Subscriber:          subscriber,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startDealEventConsumer(ctx)
}

// startDealEventConsumer drives the auto-notification pipeline off the
// deal-events topic. A handler error drops the event; the business-hours
// gate already makes auto-notification best-effort.
func (bt *BackgroundTasks) startDealEventConsumer(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(ctx, publisher.DealEventsTopic, dealEventsGroupID)
	if err != nil {
		log.Printf("deal events subscribe failed: %v\n", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				log.Printf("deal events channel closed\n")
				return
			}

			var event publisher.DealCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("malformed deal event: %v\n", err)
				continue
			}
			if err := bt.NotificationUsecase.NotifyDealCreated(event); err != nil {
				log.Printf("auto-notification for deal %d failed: %v\n", event.DealID, err)
			}
		}
	}
}
