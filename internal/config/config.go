// Package config loads the settings used by the simplemessage command from
// an optional YAML file and the environment.
package config

import (
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	lib "github.com/peteraglen/slack-simple-message"
	"github.com/peteraglen/slack-simple-message/slackapi"
)

// Environment variables read by Load.
const (
	EnvToken       = "SLACK_BOT_TOKEN"
	EnvDestination = "SLACK_CHANNEL_ID_DEMO"
	EnvLogFile     = "SIMPLEMESSAGE_LOG_FILE"
	EnvAPIURL      = "SLACK_API_URL"
)

const (
	TransportHTTP    = "http"
	TransportSlackGo = "slack-go"
)

// Config is the on-disk and environment configuration. Token is a pointer so
// an absent token can be told apart from an empty one.
type Config struct {
	Token         *string       `yaml:"token"`
	Destination   string        `yaml:"destination"`
	LogFile       string        `yaml:"log_file"`
	BaseURL       string        `yaml:"base_url"`
	Transport     string        `yaml:"transport"`
	RetryCount    *int          `yaml:"retry_count"`
	Timeout       time.Duration `yaml:"timeout"`
	RatePerSecond float64       `yaml:"rate_per_second"`
}

func Default() Config {
	return Config{
		Transport:     TransportHTTP,
		RatePerSecond: 1,
	}
}

// Load reads path (skipped when empty or missing) and overlays the process
// environment.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)

		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg.applyEnv(lookup)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvToken); ok {
		c.Token = &v
	}

	if v, ok := lookup(EnvDestination); ok && v != "" {
		c.Destination = v
	}

	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}

	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.BaseURL = v
	}
}

func (c *Config) Validate() error {
	switch c.Transport {
	case TransportHTTP, TransportSlackGo:
	default:
		return errors.Errorf("unknown transport %q, want %q or %q", c.Transport, TransportHTTP, TransportSlackGo)
	}

	if c.RatePerSecond <= 0 {
		return errors.New("rate_per_second must be positive")
	}

	if c.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	return nil
}

// Options converts the configuration into client options. The token option
// is only included when a token was configured, so a missing token still
// fails client construction.
func (c *Config) Options() []lib.Option {
	var opts []lib.Option

	if c.Token != nil {
		opts = append(opts, lib.WithToken(*c.Token))
	}

	opts = append(opts,
		lib.WithDestination(c.Destination),
		lib.WithLogFilename(c.LogFile),
		lib.WithBaseURL(c.BaseURL),
	)

	if c.RetryCount != nil {
		opts = append(opts, lib.WithRetryCount(*c.RetryCount))
	}

	if c.Timeout > 0 {
		opts = append(opts, lib.WithTimeout(c.Timeout))
	}

	if c.Transport == TransportSlackGo {
		senderOpts := []slackapi.Option{slackapi.WithAPIURL(c.BaseURL)}

		if c.Timeout > 0 {
			senderOpts = append(senderOpts, slackapi.WithHTTPClient(&http.Client{Timeout: c.Timeout}))
		}

		opts = append(opts, lib.WithSender(slackapi.NewSender(senderOpts...)))
	}

	return opts
}
