package config

// RPCConfig carries host/port/timeout settings for the internal HTTP+JSON
// RPC dependencies the gateway proxies to (F served by the persister isn't
// called by the gateway directly — only by the aggregator; the gateway
// calls H on the aggregator and the uptime surface on the monitor) and that
// the aggregator uses to pull raw events from the persister's F surface.
type RPCConfig struct {
	RawService struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"raw_service"`

	AggregationService struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"aggregation_service"`

	MonitoringService struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"monitoring_service"`

	// AggregationTimeoutMs bounds calls to H (aggregate RPC).
	AggregationTimeoutMs int `mapstructure:"aggregation_timeout_ms"`

	// MonitoringTimeoutMs bounds calls to the monitor's uptime HTTP surface.
	MonitoringTimeoutMs int `mapstructure:"monitoring_timeout_ms"`
}
