// Package broker wraps AMQP 0-9-1 messaging behind an owner-per-connection
// pattern: exactly one goroutine owns the connection/channel and performs
// publish or consume calls, since the underlying client is not safe for
// concurrent use (spec §5, §9 "Broker client not thread-safe").
package broker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/infrastructure/logger"
	"voyago/core-api/internal/pkg/apperror"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publishJob is one unit of work handed from an HTTP handler to the
// publisher's owner goroutine.
type publishJob struct {
	queue string
	body  []byte
}

// Publisher decouples HTTP handlers from broker I/O: Enqueue only ever
// blocks on a bounded in-process channel, never on the network.
type Publisher struct {
	cfg       *config.BrokerConfig
	log       logger.Logger
	jobs      chan publishJob
	stop      chan struct{}
	connected atomic.Bool
}

// Connected reports whether the owner goroutine currently holds a live
// broker connection — used by the gateway's readiness probe.
func (p *Publisher) Connected() bool {
	return p.connected.Load()
}

// NewPublisher constructs a Publisher and starts its owner goroutine. The
// caller must call Close on shutdown so the owner goroutine closes the
// connection and exits.
func NewPublisher(cfg *config.BrokerConfig, log logger.Logger) *Publisher {
	size := cfg.PublishQueueSize
	if size <= 0 {
		size = 1000
	}
	p := &Publisher{
		cfg:  cfg,
		log:  log.WithField("component", "broker.publisher"),
		jobs: make(chan publishJob, size),
		stop: make(chan struct{}),
	}
	go p.run()
	return p
}

// Enqueue hands the message to the owner goroutine and returns immediately
// — it never waits on broker I/O, only on the internal handoff. The queue
// name is not checked here. It returns a transient INTERNAL_ERROR AppError
// (HTTP 503) when the internal queue is saturated, matching §4.D's
// "internal queue full → 503 INTERNAL_ERROR" contract. Publish failures after handoff (a slow
// reconnect, a broker outage) are logged by the owner goroutine and do not
// surface back to the caller, since the response has already returned.
func (p *Publisher) Enqueue(ctx context.Context, queue string, body []byte) error {
	job := publishJob{queue: queue, body: body}

	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return apperror.NewTransient(apperror.CodeInternalError, "publish timed out waiting for queue slot")
	default:
		return apperror.NewTransient(apperror.CodeInternalError, "publish queue saturated")
	}
}

// Close signals the owner goroutine to close the channel and connection and
// exit. It returns without waiting for that, and jobs still buffered in the
// queue are not published.
func (p *Publisher) Close() error {
	close(p.stop)
	return nil
}

func (p *Publisher) run() {
	var conn *amqp.Connection
	var ch *amqp.Channel
	var closeNotify chan *amqp.Error

	connect := func() error {
		var err error
		conn, err = amqp.Dial(dsn(p.cfg))
		if err != nil {
			return err
		}
		ch, err = conn.Channel()
		if err != nil {
			return err
		}
		for _, q := range config.QueueNames() {
			if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
				return err
			}
		}
		closeNotify = make(chan *amqp.Error, 1)
		ch.NotifyClose(closeNotify)
		return nil
	}

	reconnectDelay := time.Duration(p.cfg.ReconnectDelaySeconds) * time.Second
	if reconnectDelay <= 0 {
		reconnectDelay = 2 * time.Second
	}

	for {
		if conn == nil || conn.IsClosed() {
			if err := connect(); err != nil {
				p.log.WithField("error", err.Error()).Warn("broker publisher connect failed, retrying")
				select {
				case <-p.stop:
					return
				case <-time.After(reconnectDelay):
					continue
				}
			}
			p.log.Info("broker publisher connected")
			p.connected.Store(true)
		}

		select {
		case <-p.stop:
			p.connected.Store(false)
			_ = ch.Close()
			_ = conn.Close()
			return

		case amqpErr := <-closeNotify:
			if amqpErr != nil {
				p.log.WithField("error", amqpErr.Error()).Warn("broker publisher channel closed, reconnecting")
			}
			p.connected.Store(false)
			conn = nil

		case job := <-p.jobs:
			err := ch.PublishWithContext(
				context.Background(),
				"", // default exchange
				job.queue,
				false, false,
				amqp.Publishing{
					ContentType:  "application/json",
					DeliveryMode: amqp.Persistent,
					Body:         job.body,
					Timestamp:    time.Now(),
				},
			)
			if err != nil {
				p.log.WithField("queue", job.queue).WithField("error", err.Error()).Warn("broker publisher failed to publish event")
			}
		}
	}
}

func dsn(cfg *config.BrokerConfig) string {
	host, port, user, pass, vhost := cfg.Host, cfg.Port, cfg.User, cfg.Pass, cfg.VHost
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 5672
	}
	if user == "" {
		user = "guest"
	}
	if pass == "" {
		pass = "guest"
	}
	if vhost == "" {
		vhost = "/"
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d%s", user, pass, host, port, vhost)
}
