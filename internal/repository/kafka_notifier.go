package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/domain/repository"
)

// MessagePublisher is the subset of pkg/kafka.Producer used for delivery.
type MessagePublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
}

// KafkaNotifier publishes each report as one message on the destination topic.
type KafkaNotifier struct {
	pub MessagePublisher
	now func() time.Time
}

type reportMessage struct {
	RunID  string    `json:"run_id"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// NewKafkaNotifier creates a Notifier on top of a Kafka producer.
func NewKafkaNotifier(pub MessagePublisher) repository.Notifier {
	return &KafkaNotifier{pub: pub, now: time.Now}
}

func (n *KafkaNotifier) Channel() string { return "kafka" }

func (n *KafkaNotifier) Deliver(ctx context.Context, topic, text string) error {
	msg := reportMessage{RunID: uuid.NewString(), Text: text, SentAt: n.now().UTC()}
	if err := n.pub.Publish(ctx, topic, []byte(msg.RunID), msg); err != nil {
		return &models.DeliveryError{Channel: n.Channel(), Destination: topic, Err: err}
	}
	return nil
}
