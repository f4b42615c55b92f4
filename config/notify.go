package config

import "fmt"

// NotifyConfig controls the optional MQTT announcement published after a
// successful run so downstream displays can refresh without polling.
type NotifyConfig struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Topic    string `json:"topic"`
	Username string `json:"username"`
	Password string `json:"password"`
	QoS      byte   `json:"qos"`
}

// Validate checks mandatory fields when the publisher is enabled.
func (c NotifyConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("notify broker is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("notify topic is required")
	}
	return nil
}
