package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// accept either Go duration strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Workers struct {
		DerivationPoolSize int `json:"derivation_pool_size"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Client struct {
		Interactive     bool `json:"interactive"`
		CopyToClipboard bool `json:"copy"`
	} `json:"client,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg StructuredJSONConfig
	if err = json.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return fileCfg.structured(), nil
}

func (c *StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: c.App.Version},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			GRPCAddress:    c.Server.GRPCAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
			CORSOrigins:    c.Server.CORSOrigins,
			RateLimit:      c.Server.RateLimit,
			RateBurst:      c.Server.RateBurst,
		},
		Workers: Workers{DerivationPoolSize: c.Workers.DerivationPoolSize},
		Adapter: Adapter{
			HTTPAddress:    c.Adapter.HTTPAddress,
			GRPCAddress:    c.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(c.Adapter.RequestTimeout),
		},
		Client: Client{
			Interactive:     c.Client.Interactive,
			CopyToClipboard: c.Client.CopyToClipboard,
		},
	}
}

// Duration decodes "30s" style strings as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
