package constants

// Ключи маршрутизации
const (
	RoutingKeyPropertyNotified = "property.notified"
)

// Обменник событий сервиса
const (
	ExchangePropertyEvents     = "property_events"
	ExchangeTypePropertyEvents = "topic"
)

// Заголовки и версии событий
const (
	HeaderEventType    = "event-type"
	HeaderEventVersion = "event-version"
	HeaderTraceID      = "x-trace-id"

	EventTypePropertyNotified    = "PropertyNotifiedEvent"
	EventVersionPropertyNotified = "1.0.0"
)
