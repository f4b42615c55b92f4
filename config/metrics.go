package config

// MetricsConfig selects the sinks run statistics are recorded to. With
// everything disabled a no-op sink is used.
type MetricsConfig struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PushGatewayURL receives the run metrics at the end of each batch.
	// A scheduled job has no scrape surface, so push is the only mode.
	PushGatewayURL string `json:"push_gateway_url"`
	JobName        string `json:"job_name"`

	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`
}
