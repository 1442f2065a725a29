package config

// AggregationConfig controls the aggregator's tick loop.
type AggregationConfig struct {
	// IntervalSeconds is the tick period. Default 60.
	IntervalSeconds int `mapstructure:"interval_seconds"`

	// BucketMinutes is the fixed time-bucket width. Default 5.
	BucketMinutes int `mapstructure:"bucket_minutes"`

	// RecomputeMode, when true, rebuilds each visited bucket from scratch
	// instead of the source-compatible "counts accumulate, uniques/averages
	// replace" policy. Default false preserves the original behavior.
	RecomputeMode bool `mapstructure:"recompute_mode"`
}
