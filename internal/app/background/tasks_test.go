package background

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	publisher "github.com/dangol-v2/deal-service/internal/infrastructure/kafka"
	notificationdto "github.com/dangol-v2/deal-service/internal/usecase/dto/notification"
)

type chanSubscriber struct {
	messages chan domain.Message
}

func (s *chanSubscriber) Subscribe(ctx context.Context, topic, groupID string) (<-chan domain.Message, error) {
	out := make(chan domain.Message)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-s.messages:
				if !ok {
					return
				}
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []publisher.DealCreatedEvent
}

func (r *recordingNotifier) SendNotification(*notificationdto.SendNotificationInput) (*notificationdto.SendNotificationOutput, error) {
	return &notificationdto.SendNotificationOutput{}, nil
}

func (r *recordingNotifier) NotifyDealCreated(event publisher.DealCreatedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func waitForCount(t *testing.T, n *recordingNotifier, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if n.count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("consumed %d events, want %d", n.count(), want)
}

func TestDealEventConsumer(t *testing.T) {
	sub := &chanSubscriber{messages: make(chan domain.Message)}
	notifier := &recordingNotifier{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewBackgroundTasks(notifier, sub).StartAll(ctx)

	event := publisher.DealCreatedEvent{DealID: 42, MerchantID: 7, DealTitle: "딜"}
	v, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	sub.messages <- domain.Message{Key: []byte("7"), Value: v}
	waitForCount(t, notifier, 1)

	if got := notifier.events[0]; got.DealID != 42 || got.MerchantID != 7 {
		t.Errorf("handled event = %+v", got)
	}

	// A malformed payload is dropped without killing the consumer.
	sub.messages <- domain.Message{Value: []byte("not json")}
	sub.messages <- domain.Message{Key: []byte("7"), Value: v}
	waitForCount(t, notifier, 2)
}

func TestDealEventConsumerStopsOnCancel(t *testing.T) {
	sub := &chanSubscriber{messages: make(chan domain.Message, 1)}
	notifier := &recordingNotifier{}
	ctx, cancel := context.WithCancel(context.Background())

	NewBackgroundTasks(notifier, sub).StartAll(ctx)
	cancel()

	// Give the consumer time to observe the cancellation, then verify a
	// late message is never handled.
	time.Sleep(50 * time.Millisecond)
	v, _ := json.Marshal(publisher.DealCreatedEvent{DealID: 1})
	sub.messages <- domain.Message{Value: v}
	time.Sleep(100 * time.Millisecond)

	if got := notifier.count(); got != 0 {
		t.Errorf("consumed %d events after shutdown, want 0", got)
	}
}
