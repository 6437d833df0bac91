package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventQueueOptions describes the queue domain events are sent to and how
// each message is stamped.
type EventQueueOptions struct {
	Queue      string
	Durable    bool
	MessageTTL time.Duration // zero keeps messages until consumed
	AppID      string
}

func (o EventQueueOptions) queueArgs() amqp.Table {
	if o.MessageTTL <= 0 {
		return nil
	}
	return amqp.Table{"x-message-ttl": o.MessageTTL.Milliseconds()}
}

func (o EventQueueOptions) message(eventType string, body []byte, at time.Time) amqp.Publishing {
	mode := amqp.Transient
	if o.Durable {
		mode = amqp.Persistent
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: mode,
		MessageId:    uuid.NewString(),
		AppId:        o.AppID,
		Type:         eventType,
		Timestamp:    at.UTC(),
		Body:         body,
	}
}

// RabbitPublisher sends JSON domain events to a single queue through the
// default exchange and waits for the broker to confirm each one.
type RabbitPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	opts EventQueueOptions
}

func NewRabbitPublisher(url string, opts EventQueueOptions) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	p := &RabbitPublisher{conn: conn, opts: opts}
	if p.ch, err = conn.Channel(); err != nil {
		p.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err = p.ch.QueueDeclare(opts.Queue, opts.Durable, false, false, false, opts.queueArgs()); err != nil {
		p.Close()
		return nil, fmt.Errorf("declare queue %q: %w", opts.Queue, err)
	}
	if err = p.ch.Confirm(false); err != nil {
		p.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	return p, nil
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// PublishJSON encodes body and publishes it tagged with eventType. It returns
// once the broker acks the message or ctx ends.
func (p *RabbitPublisher) PublishJSON(ctx context.Context, eventType string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	conf, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", p.opts.Queue, false, false,
		p.opts.message(eventType, b, time.Now()))
	if err != nil {
		return err
	}
	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return fmt.Errorf("broker nacked %s event", eventType)
	}
	return nil
}
