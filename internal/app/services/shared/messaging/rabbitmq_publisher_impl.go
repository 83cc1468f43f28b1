package messaging

import (
	"context"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
}

func NewRabbitMQPublisher(connection *amqp091.Connection) contracts.EventPublisher {
	return &rabbitMQPublisher{connection: connection}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queue string, event interface{}) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}

	err = channel.PublishWithContext(ctx, "", queue, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}
	return nil
}
