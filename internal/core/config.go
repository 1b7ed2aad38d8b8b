package core

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRecordTypes is the record-type list used when the config does not set one.
var DefaultRecordTypes = []string{"A", "AAAA", "CNAME", "MX", "NS", "SOA", "TXT"}

const (
	DefaultDNSServer      = "8.8.8.8"
	DefaultTimeoutSeconds = 5
)

type Config struct {
	DNSServer      string   `json:"dns_server" yaml:"dns_server"`
	RecordTypes    []string `json:"record_types" yaml:"record_types"`
	LogLevel       string   `json:"log_level" yaml:"log_level"`
	LogFile        string   `json:"log_file" yaml:"log_file"`
	TimeoutSeconds int      `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the configuration used when no config file is supplied.
func DefaultConfig() *Config {
	return &Config{
		DNSServer:      DefaultDNSServer,
		RecordTypes:    append([]string(nil), DefaultRecordTypes...),
		LogLevel:       "info",
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// LoadConfig reads a YAML or JSON config file (by extension) and fills in
// defaults for any fields the file leaves unset.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if len(path) > 5 && path[len(path)-5:] == ".yaml" {
		err = yaml.NewDecoder(f).Decode(&cfg)
	} else {
		err = json.NewDecoder(f).Decode(&cfg)
	}
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DNSServer == "" {
		c.DNSServer = DefaultDNSServer
	}
	if len(c.RecordTypes) == 0 {
		c.RecordTypes = append([]string(nil), DefaultRecordTypes...)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
