package publisher

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// KafkaConfig covers plaintext local brokers and managed clusters that
// require SASL.
type KafkaConfig struct {
	Brokers    []string
	Username   string
	Password   string
	Mechanism  string
	TLSEnabled bool
}

func saslMechanism(cfg KafkaConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "", "none":
		return nil, nil
	case "plain":
		return plain.Mechanism{Username: cfg.Username, Password: cfg.Password}, nil
	case "scram-sha-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "scram-sha-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unknown sasl mechanism: %q", cfg.Mechanism)
	}
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	mechanism, err := saslMechanism(cfg)
	if err != nil {
		return nil, fmt.Errorf("init sasl mechanism: %w", err)
	}

	transport := &kafka.Transport{SASL: mechanism}
	if cfg.TLSEnabled {
		transport.TLS = &tls.Config{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:      kafka.TCP(cfg.Brokers...),
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
	}, nil
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		km[i] = kafka.Message{
			Topic: topic,
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
		}
	}
	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
