package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errNoConnection = errs.New("rabbitmq connection unavailable")

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Session is one broker connection with a channel on which the exchange is declared.
// Closed fires (or is closed) once the channel dies.
type Session struct {
	Channel Channel
	Closed  <-chan *amqp.Error
	Conn    io.Closer
}

func (s *Session) lost() bool {
	if s.Closed == nil {
		return false
	}
	select {
	case amqpErr, ok := <-s.Closed:
		if ok && amqpErr != nil {
			slog.Error("rabbitmq channel closed", "code", amqpErr.Code, "reason", amqpErr.Reason)
		} else {
			slog.Error("rabbitmq channel closed")
		}
		return true
	default:
		return false
	}
}

func (s *Session) Close() error {
	_ = s.Channel.Close()
	if s.Conn != nil {
		return s.Conn.Close()
	}
	return nil
}

type Dialer func(url, exchange string) (*Session, error)

// DialAMQP connects and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*Session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	return &Session{
		Channel: ch,
		Closed:  ch.NotifyClose(make(chan *amqp.Error, 1)),
		Conn:    conn,
	}, nil
}

// Publisher redials lazily on the first publish after the broker drops the channel.
type Publisher struct {
	mu       sync.Mutex
	url      string
	exchange string
	dial     Dialer
	sess     *Session
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	return NewPublisherWithDialer(url, exchange, DialAMQP)
}

func NewPublisherWithDialer(url, exchange string, dial Dialer) (*Publisher, error) {
	sess, err := dial(url, exchange)
	if err != nil {
		return nil, err
	}
	return &Publisher{url: url, exchange: exchange, dial: dial, sess: sess}, nil
}

// NewChannelPublisher publishes on an already configured channel and never redials.
func NewChannelPublisher(ch Channel, exchange string) *Publisher {
	return &Publisher{exchange: exchange, sess: &Session{Channel: ch}}
}

// Publish sends the event with its type as routing key.
func (p *Publisher) Publish(ctx context.Context, event reservation.Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}
	ch, err := p.channel()
	if err != nil {
		return err
	}
	err = ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Body:         b,
	})
	return errs.Wrap(err, "publish event")
}

func (p *Publisher) channel() (Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess != nil && p.sess.lost() {
		_ = p.sess.Close()
		p.sess = nil
	}
	if p.sess != nil {
		return p.sess.Channel, nil
	}
	if p.dial == nil {
		return nil, errNoConnection
	}

	sess, err := p.dial(p.url, p.exchange)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "reconnect rabbitmq"), errNoConnection)
	}
	slog.Info("rabbitmq reconnected", "exchange", p.exchange)
	p.sess = sess
	return sess.Channel, nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess == nil {
		return nil
	}
	err := p.sess.Close()
	p.sess = nil
	return err
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, reservation.Event) error { return nil }
