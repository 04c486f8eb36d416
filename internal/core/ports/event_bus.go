package ports

import "context"

// EventBus is the notification transport. It is not recipient aware: payloads
// carry the identifiers subscribers filter on. Delivery is best effort and
// at-most-once; a subscriber only sees events published while it is subscribed.
type EventBus interface {
	// Publish hands payload to every current subscriber of topic.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Subscribe starts a live, order-preserving feed of topic. The feed ends
	// when ctx is done or the subscription is closed.
	Subscribe(ctx context.Context, topic string) (Subscription, error)

	Close() error
}

// Subscription is one live feed of a topic.
type Subscription interface {
	// Messages is closed when the subscription ends.
	Messages() <-chan []byte
	Close() error
}

// EventJournal durably records order events for downstream consumers.
type EventJournal interface {
	Record(ctx context.Context, topic string, key string, payload []byte) error
	Close() error
}
