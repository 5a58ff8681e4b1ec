package publisher

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaSubscriber struct {
	cfg    KafkaConfig
	dialer *kafka.Dialer
}

func NewKafkaSubscriber(cfg KafkaConfig) (*KafkaSubscriber, error) {
	mechanism, err := saslMechanism(cfg)
	if err != nil {
		return nil, fmt.Errorf("init sasl mechanism: %w", err)
	}

	dialer := &kafka.Dialer{
		Timeout:       10 * time.Second,
		DualStack:     true,
		SASLMechanism: mechanism,
	}
	if cfg.TLSEnabled {
		dialer.TLS = &tls.Config{}
	}

	return &KafkaSubscriber{cfg: cfg, dialer: dialer}, nil
}

// Subscribe starts a consumer-group reader and streams messages onto a
// channel. The channel closes when ctx is canceled or the reader dies;
// callers decide whether to resubscribe.
func (k *KafkaSubscriber) Subscribe(ctx context.Context, topic, groupID string) (<-chan domain.Message, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.cfg.Brokers,
		Topic:   topic,
		GroupID: groupID,
		Dialer:  k.dialer,
	})

	out := make(chan domain.Message)
	go func() {
		defer reader.Close()
		defer close(out)
		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				return
			}
			select {
			case out <- domain.Message{Key: m.Key, Value: m.Value}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
