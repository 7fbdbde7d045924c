package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"property-search-service/internal/constants"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/contracts"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// MessageProducer - часть rabbitmq_producer.Publisher, которая нужна адаптеру
type MessageProducer interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// PropertyNotifiedPublisher - реализация NotificationEventPublisherPort для RabbitMQ
type PropertyNotifiedPublisher struct {
	producer   MessageProducer
	routingKey string
}

func NewPropertyNotifiedPublisher(producer MessageProducer, routingKey string) (*PropertyNotifiedPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &PropertyNotifiedPublisher{producer: producer, routingKey: routingKey}, nil
}

func (a *PropertyNotifiedPublisher) PublishPropertyNotified(ctx context.Context, event domain.PropertyNotifiedEvent) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":       "PropertyNotifiedPublisher",
		"routing_key":     a.routingKey,
		"property_id":     event.PropertyID,
		"notification_id": event.NotificationID,
	})

	body, err := json.Marshal(PropertyNotifiedEventDTO{
		EventID:        event.EventID,
		PropertyID:     event.PropertyID,
		NotificationID: event.NotificationID,
		NotifiedAt:     event.NotifiedAt.UTC(),
		LineMessageID:  event.LineMessageID,
		Status:         event.Status,
	})
	if err != nil {
		adapterLogger.Error("Failed to marshal property notified event", err, nil)
		return fmt.Errorf("failed to marshal property notified event: %w", err)
	}

	// не отправляем то, что не примет потребитель
	if err := contracts.ValidateEvent(constants.EventTypePropertyNotified, constants.EventVersionPropertyNotified, body); err != nil {
		adapterLogger.Error("Event does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid property notified event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			constants.HeaderEventType:    constants.EventTypePropertyNotified,
			constants.HeaderEventVersion: constants.EventVersionPropertyNotified,
		},
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Debug("Publishing property notified event", nil)
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish property notified event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event for notification %d: %w", event.NotificationID, err)
	}

	adapterLogger.Info("Successfully published property notified event", port.Fields{"event_id": event.EventID})
	return nil
}
