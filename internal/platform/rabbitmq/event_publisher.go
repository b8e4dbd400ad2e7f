package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"dermaglow/internal/model"
)

// EventPublisher pushes session audit events onto a durable queue. The
// session service treats publish failures as non-fatal, so a broker outage
// never fails a consultation exchange.
type EventPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewEventPublisher(conn *amqp.Connection, queueName string) *EventPublisher {
	return &EventPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event model.SessionEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event payload failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish event failed: %w", err)
	}
	return nil
}
