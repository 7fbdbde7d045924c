package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProducer struct {
	routingKey string
	msgs       []amqp.Publishing
	err        error
}

func (p *recordingProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	p.routingKey = routingKey
	p.msgs = append(p.msgs, msg)
	return p.err
}

func sampleEvent() domain.PropertyNotifiedEvent {
	msgID := "line-42"
	return domain.PropertyNotifiedEvent{
		EventID:        "2b4bd6b5-1f57-4a36-9a5d-6f2a4f0a8c11",
		PropertyID:     7,
		NotificationID: 3,
		NotifiedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		LineMessageID:  &msgID,
		Status:         domain.StatusNotified,
	}
}

func TestPropertyNotifiedPublisher_Publish(t *testing.T) {
	producer := &recordingProducer{}
	publisher, err := NewPropertyNotifiedPublisher(producer, "property.notified")
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	require.NoError(t, publisher.PublishPropertyNotified(ctx, sampleEvent()))

	require.Len(t, producer.msgs, 1)
	msg := producer.msgs[0]
	assert.Equal(t, "property.notified", producer.routingKey)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "PropertyNotifiedEvent", msg.Headers["event-type"])
	assert.Equal(t, "1.0.0", msg.Headers["event-version"])
	assert.Equal(t, "trace-1", msg.Headers["x-trace-id"])

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, float64(7), body["property_id"])
	assert.Equal(t, "line-42", body["line_message_id"])
	assert.Equal(t, "2024-06-01T10:00:00Z", body["notified_at"])
}

func TestPropertyNotifiedPublisher_RejectsInvalidEvent(t *testing.T) {
	producer := &recordingProducer{}
	publisher, err := NewPropertyNotifiedPublisher(producer, "property.notified")
	require.NoError(t, err)

	event := sampleEvent()
	event.Status = "NEW"
	assert.Error(t, publisher.PublishPropertyNotified(context.Background(), event))
	assert.Empty(t, producer.msgs)
}

func TestPropertyNotifiedPublisher_ProducerError(t *testing.T) {
	producer := &recordingProducer{err: errors.New("channel closed")}
	publisher, err := NewPropertyNotifiedPublisher(producer, "property.notified")
	require.NoError(t, err)

	err = publisher.PublishPropertyNotified(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "channel closed")
}

func TestNewPropertyNotifiedPublisher_Validation(t *testing.T) {
	_, err := NewPropertyNotifiedPublisher(nil, "key")
	assert.Error(t, err)
	_, err = NewPropertyNotifiedPublisher(&recordingProducer{}, "")
	assert.Error(t, err)
}
