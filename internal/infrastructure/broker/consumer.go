package broker

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
	"voyago/core-api/internal/infrastructure/config"
	"voyago/core-api/internal/infrastructure/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one delivery's body for the given queue (event kind)
// and reports whether it should be acked or nacked-with-requeue.
type Handler func(ctx context.Context, queue string, body []byte) error

// rawDelivery pairs a raw AMQP delivery with the queue it arrived on so
// workers can route it to the right Handler invocation.
type rawDelivery struct {
	queue    string
	delivery amqp.Delivery
	result   chan error
}

// Consumer drains all five fixed queues into a worker pool, decoupling
// database latency from the broker channel (spec §4.E, §5).
type Consumer struct {
	cfg     *config.BrokerConfig
	log     logger.Logger
	handler Handler
	running atomic.Bool
	work    chan rawDelivery
}

// NewConsumer constructs a Consumer. Start must be called to begin
// consuming; it blocks until Stop is called or ctx is cancelled.
func NewConsumer(cfg *config.BrokerConfig, log logger.Logger, handler Handler) *Consumer {
	return &Consumer{
		cfg:     cfg,
		log:     log.WithField("component", "broker.consumer"),
		handler: handler,
		work:    make(chan rawDelivery),
	}
}

// Start connects, declares all queues, launches the worker pool and one
// consume loop per queue, and reconnects on channel/connection loss until
// ctx is cancelled or Stop is called.
func (c *Consumer) Start(ctx context.Context) error {
	c.running.Store(true)

	workers := c.cfg.ConsumerWorkers
	if workers <= 0 {
		workers = max(1, runtime.NumCPU())
	}
	for i := 0; i < workers; i++ {
		go c.worker(ctx)
	}

	reconnectDelay := time.Duration(c.cfg.ReconnectDelaySeconds) * time.Second
	if reconnectDelay <= 0 {
		reconnectDelay = 2 * time.Second
	}

	for c.running.Load() {
		if err := c.consumeUntilClosed(ctx); err != nil {
			c.log.WithField("error", err.Error()).Warn("broker consumer disconnected, reconnecting")
		}
		if !c.running.Load() || ctx.Err() != nil {
			return nil
		}
		select {
		case <-time.After(reconnectDelay):
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// Stop signals the consume loops to exit after their current short poll.
func (c *Consumer) Stop() {
	c.running.Store(false)
}

func (c *Consumer) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case rd, ok := <-c.work:
			if !ok {
				return
			}
			err := c.handler(ctx, rd.queue, rd.delivery.Body)
			rd.result <- err
		}
	}
}

func (c *Consumer) consumeUntilClosed(ctx context.Context) error {
	conn, err := amqp.Dial(dsn(c.cfg))
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if c.cfg.PrefetchCount > 0 {
		if err := ch.Qos(c.cfg.PrefetchCount, 0, false); err != nil {
			return err
		}
	}

	closeNotify := make(chan *amqp.Error, 1)
	ch.NotifyClose(closeNotify)

	queues := config.QueueNames()
	deliveries := make([]<-chan amqp.Delivery, len(queues))
	for i, q := range queues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return err
		}
		d, err := ch.Consume(q, "", false, false, false, false, nil)
		if err != nil {
			return err
		}
		deliveries[i] = d
	}

	c.log.Info("broker consumer connected and subscribed to all queues")

	done := make(chan struct{})
	defer close(done)

	for i, q := range queues {
		go c.dispatch(ctx, q, deliveries[i], done)
	}

	// The blocking wait is kept short so shutdown is observed promptly
	// (spec §5: "broker consume uses a short blocking timeout ≤100ms").
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case amqpErr := <-closeNotify:
			if amqpErr != nil {
				return amqpErr
			}
			return nil
		case <-ticker.C:
			if !c.running.Load() {
				return nil
			}
		}
	}
}

// dispatch owns one queue's consume channel: it is the only goroutine that
// reads deliveries for this queue and the only one that calls Ack/Nack on
// them, receiving the processing outcome back from the worker pool over a
// per-delivery result channel (spec §5: "the ack step MUST be marshaled
// back" to the consuming goroutine).
func (c *Consumer) dispatch(ctx context.Context, queue string, deliveries <-chan amqp.Delivery, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			result := make(chan error, 1)
			select {
			case c.work <- rawDelivery{queue: queue, delivery: d, result: result}:
			case <-ctx.Done():
				return
			}

			select {
			case err := <-result:
				if err != nil {
					c.log.WithField("queue", queue).WithField("error", err.Error()).
						Warn("processing failed, nacking with requeue")
					_ = d.Nack(false, true)
					continue
				}
				// Ack follows the insert and messages carry no idempotence key, so
				// a delivery redelivered after its insert is stored a second time.
				_ = d.Ack(false)
			case <-ctx.Done():
				return
			}
		}
	}
}
