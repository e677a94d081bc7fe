package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"newsletter-dispatch/internal/config/configs"
	"newsletter-dispatch/internal/core/domain"
)

var (
	ErrNacked       = errors.New("broker rejected delivery")
	ErrChannelGone  = errors.New("broker channel closed")
	ErrConfirmTimed = errors.New("timed out waiting for broker confirm")
)

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// payload is the JSON body consumed by the mail workers.
type payload struct {
	CampaignID    string             `json:"campaign_id"`
	OccurrenceKey string             `json:"occurrence_key"`
	FromAddress   string             `json:"from_address"`
	FromName      string             `json:"from_name"`
	Subject       string             `json:"subject"`
	HTMLBody      string             `json:"html_body"`
	Recipients    []domain.Recipient `json:"recipients"`
}

// confirmBuffer sizes the channel streadway delivers confirms on. The
// watcher goroutine keeps draining it, so it only absorbs bursts.
const confirmBuffer = 16

// Publisher implements port.Delivery by handing each campaign occurrence to
// a durable queue. The send only succeeds once the broker confirmed the
// message. The occurrence key is used as MessageId so consumers can
// deduplicate.
//
// A single watcher goroutine consumes every confirm and hands it to the Send
// waiting for that delivery tag. Confirms nobody waits for anymore, such as
// late ones after a timeout, are dropped.
type Publisher struct {
	mu      sync.Mutex // serializes publishes and guards nextTag
	conn    io.Closer
	ch      channel
	nextTag uint64

	waitMu  sync.Mutex
	waiters map[uint64]chan bool
	gone    bool

	queue   string
	timeout time.Duration
	logger  *slog.Logger
}

// Dial connects to the broker, declares the queue and puts the channel in
// confirm mode.
func Dial(cfg configs.AMQP, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open broker channel: %w", err)
	}
	q, err := ch.QueueDeclare(
		cfg.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}
	if err = ch.Confirm(false); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))
	return newPublisher(conn, ch, confirms, q.Name, cfg.PublishTimeout, logger), nil
}

func newPublisher(
	conn io.Closer,
	ch channel,
	confirms <-chan amqp.Confirmation,
	queue string,
	timeout time.Duration,
	logger *slog.Logger,
) *Publisher {
	p := &Publisher{
		conn:    conn,
		ch:      ch,
		waiters: make(map[uint64]chan bool),
		queue:   queue,
		timeout: timeout,
		logger:  logger,
	}
	go p.watch(confirms)
	return p
}

// watch routes confirms to their waiters until the channel is closed.
func (p *Publisher) watch(confirms <-chan amqp.Confirmation) {
	for c := range confirms {
		p.waitMu.Lock()
		w, ok := p.waiters[c.DeliveryTag]
		delete(p.waiters, c.DeliveryTag)
		p.waitMu.Unlock()
		if !ok {
			p.logger.Debug("dropping unclaimed broker confirm",
				slog.Uint64("delivery_tag", c.DeliveryTag),
				slog.Bool("ack", c.Ack),
			)
			continue
		}
		w <- c.Ack
	}

	p.waitMu.Lock()
	defer p.waitMu.Unlock()
	p.gone = true
	for tag, w := range p.waiters {
		close(w)
		delete(p.waiters, tag)
	}
}

// expect registers a waiter for tag. It fails once the confirm channel is
// closed.
func (p *Publisher) expect(tag uint64) (<-chan bool, error) {
	p.waitMu.Lock()
	defer p.waitMu.Unlock()
	if p.gone {
		return nil, ErrChannelGone
	}
	w := make(chan bool, 1)
	p.waiters[tag] = w
	return w, nil
}

func (p *Publisher) forget(tag uint64) {
	p.waitMu.Lock()
	defer p.waitMu.Unlock()
	delete(p.waiters, tag)
}

// Send publishes msg as one persistent message and waits for its confirm.
func (p *Publisher) Send(ctx context.Context, msg domain.Message) (domain.DeliveryReceipt, error) {
	if len(msg.Recipients) == 0 {
		return domain.DeliveryReceipt{}, nil
	}
	body, err := json.Marshal(payload{
		CampaignID:    msg.CampaignID,
		OccurrenceKey: msg.OccurrenceKey,
		FromAddress:   msg.FromAddress,
		FromName:      msg.FromName,
		Subject:       msg.Subject,
		HTMLBody:      msg.HTMLBody,
		Recipients:    msg.Recipients,
	})
	if err != nil {
		return domain.DeliveryReceipt{}, fmt.Errorf("encode delivery: %w", err)
	}

	tag, confirm, err := p.publish(msg.OccurrenceKey, body)
	if err != nil {
		return domain.DeliveryReceipt{}, err
	}
	if err = p.awaitConfirm(ctx, tag, confirm); err != nil {
		return domain.DeliveryReceipt{}, err
	}
	p.logger.Debug("delivery queued",
		slog.String("campaign_id", msg.CampaignID),
		slog.String("queue", p.queue),
		slog.Uint64("delivery_tag", tag),
	)
	return domain.DeliveryReceipt{Accepted: len(msg.Recipients), ProviderRef: msg.OccurrenceKey}, nil
}

// publish sends body and returns its delivery tag. The waiter is registered
// first since the confirm may arrive before Publish returns.
func (p *Publisher) publish(messageID string, body []byte) (uint64, <-chan bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tag := p.nextTag + 1
	confirm, err := p.expect(tag)
	if err != nil {
		return 0, nil, err
	}
	err = p.ch.Publish(
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.forget(tag)
		return 0, nil, fmt.Errorf("publish delivery: %w", err)
	}
	p.nextTag = tag
	return tag, confirm, nil
}

// awaitConfirm waits for the confirm of tag. On timeout or cancellation the
// waiter is removed and the late confirm is dropped by the watcher.
func (p *Publisher) awaitConfirm(ctx context.Context, tag uint64, confirm <-chan bool) error {
	timer := time.NewTimer(p.timeout)
	defer timer.Stop()
	select {
	case ack, ok := <-confirm:
		if !ok {
			return ErrChannelGone
		}
		if !ack {
			return ErrNacked
		}
		return nil
	case <-timer.C:
		p.forget(tag)
		return ErrConfirmTimed
	case <-ctx.Done():
		p.forget(tag)
		return ctx.Err()
	}
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.ch.Close(), p.conn.Close())
}
