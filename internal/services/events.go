package services

// EventPublisher publishes domain events for the notification worker.
// pkg/rabbitmq.Client satisfies it; a nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Routing keys for published events.
const (
	EventContactCreated = "contact.created"
	EventOrderCreated   = "order.created"
)
