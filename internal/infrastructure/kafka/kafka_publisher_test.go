package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written  []kafka.Message
	deadline bool
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	w.written = append(w.written, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type capturingPort struct {
	topic string
	msgs  []domain.Message
}

func (p *capturingPort) Publish(topic string, msgs ...domain.Message) error {
	p.topic = topic
	p.msgs = append(p.msgs, msgs...)
	return nil
}

func TestPublishWritesKeyedMessagesToTopic(t *testing.T) {
	w := &fakeWriter{}
	pub := &DefaultKafkaPublisher{writer: w}

	err := pub.Publish("marketplace-events",
		domain.Message{Key: []byte("alice.near"), Value: []byte(`{"a":1}`)},
		domain.Message{Key: []byte("bob.near"), Value: []byte(`{"b":2}`)},
	)
	require.NoError(t, err)

	require.Len(t, w.written, 2)
	assert.Equal(t, "marketplace-events", w.written[0].Topic)
	assert.Equal(t, []byte("alice.near"), w.written[0].Key)
	assert.Equal(t, []byte(`{"b":2}`), w.written[1].Value)
	assert.True(t, w.deadline)

	require.NoError(t, pub.Close())
	assert.True(t, w.closed)
}

func TestPublishReturnsWriterError(t *testing.T) {
	pub := &DefaultKafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	assert.EqualError(t, pub.Publish("t", domain.Message{}), "broker down")
}

func TestMarketplaceEventRoundTrip(t *testing.T) {
	port := &capturingPort{}
	events := NewMarketplaceEventPublisher(port, "marketplace-events")

	event := domain.MarketplaceEvent{
		ID:         "0b6c1f4e-2a51-4bb5-a2a5-0a4b0c1e9d11",
		Type:       domain.EventProductPurchased,
		Account:    "bob.near",
		StoreID:    "alice.near",
		ProductID:  "P",
		Amount:     100,
		OccurredAt: time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, events.PublishEvent(event))

	assert.Equal(t, "marketplace-events", port.topic)
	require.Len(t, port.msgs, 1)
	assert.Equal(t, []byte("bob.near"), port.msgs[0].Key)

	decoded, err := DecodeEvent(port.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.Amount, decoded.Amount)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := DecodeEvent(domain.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestNoopEventPublisher(t *testing.T) {
	assert.NoError(t, NoopEventPublisher{}.PublishEvent(domain.MarketplaceEvent{}))
}
