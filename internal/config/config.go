package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ZoneConfig defines the statistics zone backing the collector.
type ZoneConfig struct {
	Name      string `yaml:"name"`
	SizeBytes uint64 `yaml:"size_bytes"`
	NumShards uint32 `yaml:"num_shards"`
}

// CollectorConfig holds the event worker pool settings.
type CollectorConfig struct {
	NumWorkers         int `yaml:"num_workers"`
	SizeOfEventChannel int `yaml:"size_of_event_channel"`
}

// ProbeConfig holds the NATS transport settings shared by probe and engine.
type ProbeConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// APIConfig holds the listen addresses for the HTTP and gRPC servers.
type APIConfig struct {
	HTTPListenAddr string `yaml:"http_listen_addr"`
	GrpcListenAddr string `yaml:"grpc_listen_addr"`
}

// AlerterRule is one threshold on a zone's error ratio. The rule only fires
// once the zone has seen at least MinRequests in total.
type AlerterRule struct {
	Zone          string  `yaml:"zone"`
	MaxErrorRatio float64 `yaml:"max_error_ratio"`
	MinRequests   uint64  `yaml:"min_requests"`
}

// AlerterConfig holds the alerter settings.
type AlerterConfig struct {
	Enabled       bool          `yaml:"enabled"`
	CheckInterval string        `yaml:"check_interval"`
	Rules         []AlerterRule `yaml:"rules"`
}

// SMTPConfig holds the email notification settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// SnapshotConfig holds the on-disk dump settings.
type SnapshotConfig struct {
	RootPath string `yaml:"root_path"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Zone      ZoneConfig      `yaml:"zone"`
	Collector CollectorConfig `yaml:"collector"`
	Probe     ProbeConfig     `yaml:"probe"`
	API       APIConfig       `yaml:"api"`
	Alerter   AlerterConfig   `yaml:"alerter"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
