package config

type Config struct {
	// Global configuration
	App       AppConfig       `mapstructure:"app"`
	Http      HttpConfig      `mapstructure:"http"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`

	// Domain configuration
	Database    DatabaseConfig    `mapstructure:"database"`
	Log         LogConfig         `mapstructure:"log"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Broker      BrokerConfig      `mapstructure:"broker"`
	RPC         RPCConfig         `mapstructure:"rpc"`
	Aggregation AggregationConfig `mapstructure:"aggregation"`
	Monitor     MonitorConfig     `mapstructure:"monitor"`
}
