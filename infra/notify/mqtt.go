// Package notify publishes a short MQTT announcement after a successful run
// so downstream displays can refresh without polling the artifact.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/harukisawai/godchecker/config"
)

// Summary is the payload announced after a run.
type Summary struct {
	RunID       string `json:"run_id"`
	Items       int    `json:"items"`
	GeneratedAt string `json:"generated_at"`
}

// Publisher holds a connected MQTT client.
type Publisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// New connects to the configured broker.
func New(cfg config.NotifyConfig) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(5 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	client := mqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout")
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &Publisher{client: client, topic: cfg.Topic, qos: cfg.QoS}, nil
}

// Publish sends the run summary on the configured topic.
func (p *Publisher) Publish(s Summary) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	tok := p.client.Publish(p.topic, p.qos, false, payload)
	if !tok.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("mqtt publish timeout")
	}
	return tok.Error()
}

// Close disconnects the client.
func (p *Publisher) Close() { p.client.Disconnect(250) }
