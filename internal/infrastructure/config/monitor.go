package config

// MonitorConfig configures the health monitor's probe targets and
// schedules. Targets correspond to D, E, and G's health endpoints.
type MonitorConfig struct {
	Targets []MonitorTarget `mapstructure:"targets"`

	// PingIntervalSeconds is the liveness probe period. Default 15.
	PingIntervalSeconds int `mapstructure:"ping_interval_seconds"`

	// ReadyIntervalSeconds is the readiness probe period. Default 45.
	ReadyIntervalSeconds int `mapstructure:"ready_interval_seconds"`

	// ProbeTimeoutSeconds bounds each individual HTTP probe. Default 5.
	ProbeTimeoutSeconds int `mapstructure:"probe_timeout_seconds"`
}

// MonitorTarget names one probed service and where to reach it.
type MonitorTarget struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}
