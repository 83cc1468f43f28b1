package contracts

import "context"

// EventPublisher fans booking and payment events out to the message queue.
type EventPublisher interface {
	Publish(ctx context.Context, queue string, event interface{}) error
}
