// Package mrabbitmq wires the amqp091-go channel used by the producer that
// backs C7's asynchronous security-event publication path.
package mrabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

// RabbitMQConnection is a hub which deals with rabbitmq connections.
type RabbitMQConnection struct {
	ConnectionStringSource string
	Queue                  string
	conn                   *amqp.Connection
	Channel                *amqp.Channel
	Connected              bool
	Logger                 mlog.Logger
}

// Connect establishes a singleton connection and channel with rabbitmq.
func (rc *RabbitMQConnection) Connect(_ context.Context) error {
	rc.Logger.Info("connecting to rabbitmq...")

	conn, err := amqp.Dial(rc.ConnectionStringSource)
	if err != nil {
		rc.Logger.Errorf("failed to connect to rabbitmq: %v", err)
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		rc.Logger.Errorf("failed to open channel on rabbitmq: %v", err)
		return err
	}

	if _, err := ch.QueueDeclare(rc.Queue, true, false, false, false, nil); err != nil {
		rc.Logger.Errorf("failed to declare queue on rabbitmq: %v", err)
		return err
	}

	rc.Logger.Info("connected to rabbitmq")

	rc.conn = conn
	rc.Channel = ch
	rc.Connected = true

	return nil
}

// GetChannel returns the rabbitmq channel, connecting lazily if necessary.
func (rc *RabbitMQConnection) GetChannel(ctx context.Context) (*amqp.Channel, error) {
	if !rc.Connected {
		if err := rc.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return rc.Channel, nil
}

// Close tears down the channel and connection.
func (rc *RabbitMQConnection) Close() error {
	if rc.Channel != nil {
		if err := rc.Channel.Close(); err != nil {
			return err
		}
	}

	if rc.conn != nil {
		return rc.conn.Close()
	}

	return nil
}
