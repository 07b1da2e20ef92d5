package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher delivers one outbox message to the lifecycle exchange.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, messageID uuid.UUID, body []byte) error
	Close() error
}

var errNacked = errs.New("broker did not confirm the message")

// AMQPPublisher publishes to a durable topic exchange with publisher confirms.
// The connection is opened lazily and re-dialed after the broker drops it.
type AMQPPublisher struct {
	url      string
	exchange string
	logger   *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, exchange string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		url:      url,
		exchange: exchange,
		logger:   logger,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, messageID uuid.UUID, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID.String(),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "amqp publish failed")
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrap(err, "amqp confirm wait failed")
	}
	if !acked {
		return errNacked
	}
	return nil
}

// channel must be called with mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, errs.Wrap(err, "amqp dial failed")
		}
		p.conn = conn
		p.logger.Info("connected to broker", "exchange", p.exchange)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		p.reset()
		return nil, errs.Wrap(err, "amqp channel open failed")
	}
	if err := ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		p.reset()
		return nil, errs.Wrap(err, "amqp exchange declare failed")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		p.reset()
		return nil, errs.Wrap(err, "amqp confirm mode failed")
	}

	p.ch = ch
	return ch, nil
}

// reset must be called with mu held.
func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.ch != nil {
		err = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
		p.conn = nil
	}
	return err
}

// LogPublisher stands in for the broker when none is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, routingKey string, messageID uuid.UUID, body []byte) error {
	p.logger.DebugContext(ctx, "lifecycle event",
		"routing_key", routingKey,
		"message_id", messageID,
		"body", string(body),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
