package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainPulse/internal/domain/models"
)

type fakePublisher struct {
	topic string
	key   []byte
	value interface{}
	err   error
	calls int
}

func (f *fakePublisher) Publish(_ context.Context, topic string, key []byte, value interface{}) error {
	f.calls++
	f.topic, f.key, f.value = topic, key, value
	return f.err
}

func TestKafkaNotifier_Deliver(t *testing.T) {
	pub := &fakePublisher{}
	n := NewKafkaNotifier(pub)

	require.NoError(t, n.Deliver(context.Background(), "onchain.reports", "report body"))

	assert.Equal(t, "onchain.reports", pub.topic)
	msg, ok := pub.value.(reportMessage)
	require.True(t, ok)
	assert.Equal(t, "report body", msg.Text)
	assert.Equal(t, msg.RunID, string(pub.key))
	assert.False(t, msg.SentAt.IsZero())
}

func TestKafkaNotifier_FailureIsDeliveryError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unavailable")}
	n := NewKafkaNotifier(pub)

	err := n.Deliver(context.Background(), "onchain.reports", "report body")

	var derr *models.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "kafka", derr.Channel)
	assert.Equal(t, 1, pub.calls)
}
