package config

// RedisConfig carries connection settings for the short-TTL proxy cache
// used by the ingestion gateway in front of the aggregation/uptime reads.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl_seconds"`
}
