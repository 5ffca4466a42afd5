package mrabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/security"
)

// Producer publishes sealed security events onto the configured queue for
// downstream consumers (alerting, SIEM export) — separate from the
// mongodb-backed SecurityEventRepository, which is the durable record of
// truth C1 reads nothing back from.
type Producer struct {
	conn *RabbitMQConnection
}

// NewProducer returns a Producer backed by conn.
func NewProducer(conn *RabbitMQConnection) *Producer {
	return &Producer{conn: conn}
}

// Publish marshals event as JSON and publishes it onto the queue.
func (p *Producer) Publish(ctx context.Context, event *security.Event) error {
	ch, err := p.conn.GetChannel(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", p.conn.Queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
