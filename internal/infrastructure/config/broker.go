package config

// BrokerConfig carries the AMQP 0-9-1 connection parameters shared by the
// ingestion gateway (publisher) and the raw persister (consumer).
type BrokerConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	User  string `mapstructure:"user"`
	Pass  string `mapstructure:"password"`
	VHost string `mapstructure:"vhost"`

	// PublishQueueSize bounds the in-process channel that decouples HTTP
	// handlers from broker I/O in the gateway. A full channel returns 503.
	PublishQueueSize int `mapstructure:"publish_queue_size"`

	// ConsumerWorkers sizes the worker pool that drains deliveries in the
	// raw persister. Defaults to runtime.NumCPU() when zero.
	ConsumerWorkers int `mapstructure:"consumer_workers"`

	// PrefetchCount sets per-channel QoS for the persister's consumers.
	PrefetchCount int `mapstructure:"prefetch_count"`

	// ReconnectDelaySeconds bounds the wait between reconnect attempts.
	ReconnectDelaySeconds int `mapstructure:"reconnect_delay_seconds"`
}

// Queue names are fixed by the wire contract; every service that touches
// the broker uses these five, never a derived or configurable name.
const (
	QueuePageViews        = "page_views"
	QueueClicks           = "clicks"
	QueuePerformanceEvent = "performance_events"
	QueueErrorEvent       = "error_events"
	QueueCustomEvent      = "custom_events"
)

// QueueNames lists all durable queues in the fixed order used by the
// persister to declare and subscribe to them.
func QueueNames() []string {
	return []string{
		QueuePageViews,
		QueueClicks,
		QueuePerformanceEvent,
		QueueErrorEvent,
		QueueCustomEvent,
	}
}
