// Package config provides YAML configuration file loading and validation.
// It handles environment variable expansion, default value application,
// and endpoint resolution for the gas watcher.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is where the CLI looks for a config file when --config is
	// not given. A missing file at this path is not an error.
	DefaultPath = "config/gaswatch.yaml"
	// DefaultURL is the public endpoint used when nothing else is configured.
	DefaultURL = "https://eth.drpc.org"
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 10 * time.Second
)

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Providers []Provider `yaml:"providers"` // Named RPC endpoints
	Defaults  Defaults   `yaml:"defaults"`  // Settings applied to every provider
}

// Provider is a single named RPC endpoint.
type Provider struct {
	Name    string        `yaml:"name"`              // Identifier used with --provider
	URL     string        `yaml:"url"`               // Endpoint URL (supports ${VAR} env expansion)
	Type    string        `yaml:"type"`              // "public", "self_hosted", "enterprise" (informational)
	Timeout time.Duration `yaml:"timeout,omitempty"` // Falls back to Defaults.Timeout
}

// Defaults holds settings that apply unless a provider or flag overrides them.
type Defaults struct {
	Timeout  time.Duration `yaml:"timeout"`  // HTTP request timeout (e.g. "10s")
	Provider string        `yaml:"provider"` // Provider used when --provider is not given
}

// Endpoint is the resolved target of a watch run.
type Endpoint struct {
	Name    string
	URL     string
	Timeout time.Duration
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Defaults: Defaults{Timeout: DefaultTimeout}}
}

// Validate checks the configuration and fills in inherited timeouts.
func (c *Config) Validate() error {
	if c.Defaults.Timeout < 0 {
		return fmt.Errorf("defaults.timeout must be > 0")
	}
	if c.Defaults.Timeout == 0 {
		c.Defaults.Timeout = DefaultTimeout
	}

	seen := make(map[string]bool, len(c.Providers))
	for i := range c.Providers {
		p := &c.Providers[i]
		if p.Name == "" {
			return fmt.Errorf("providers[%d]: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("provider %s: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if p.Timeout < 0 {
			return fmt.Errorf("provider %s: timeout must be > 0", p.Name)
		}
		if p.Timeout == 0 {
			p.Timeout = c.Defaults.Timeout
		}
		if err := validateURL(p.URL); err != nil {
			return fmt.Errorf("provider %s: %w", p.Name, err)
		}
	}

	if c.Defaults.Provider != "" && !seen[c.Defaults.Provider] {
		return fmt.Errorf("defaults.provider %q is not a configured provider", c.Defaults.Provider)
	}
	return nil
}

// Warnings lists suspicious but valid settings. Call after Validate.
func (c *Config) Warnings() []string {
	var warnings []string
	warnTimeout := func(scope string, d time.Duration) {
		const low = 500 * time.Millisecond
		const high = 2 * time.Minute
		if d > 0 && d < low {
			warnings = append(warnings, fmt.Sprintf("%s timeout is very low (%s); requests may fail under normal network jitter", scope, d))
		}
		if d > high {
			warnings = append(warnings, fmt.Sprintf("%s timeout is very high (%s); failures may take a long time to surface", scope, d))
		}
	}
	warnTimeout("defaults", c.Defaults.Timeout)
	for _, p := range c.Providers {
		if p.Timeout != c.Defaults.Timeout {
			warnTimeout("provider "+p.Name, p.Timeout)
		}
	}
	return warnings
}

// Provider returns the provider with the given name.
func (c *Config) Provider(name string) (Provider, bool) {
	for _, p := range c.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}

// Resolve picks the endpoint to poll. Precedence: an explicit URL, then the
// named provider, then defaults.provider, then the first configured provider,
// then DefaultURL. A positive timeout overrides whatever the endpoint carries.
func (c *Config) Resolve(rawURL, providerName string, timeout time.Duration) (Endpoint, error) {
	ep, err := c.resolve(rawURL, providerName)
	if err != nil {
		return Endpoint{}, err
	}
	if timeout > 0 {
		ep.Timeout = timeout
	}
	if ep.Timeout <= 0 {
		ep.Timeout = DefaultTimeout
	}
	return ep, nil
}

func (c *Config) resolve(rawURL, providerName string) (Endpoint, error) {
	if rawURL != "" {
		return Endpoint{URL: rawURL, Timeout: c.Defaults.Timeout}, nil
	}

	if providerName == "" {
		providerName = c.Defaults.Provider
	}
	if providerName != "" {
		p, ok := c.Provider(providerName)
		if !ok {
			return Endpoint{}, fmt.Errorf("provider '%s' not found in config", providerName)
		}
		return Endpoint{Name: p.Name, URL: p.URL, Timeout: p.Timeout}, nil
	}

	if len(c.Providers) > 0 {
		p := c.Providers[0]
		return Endpoint{Name: p.Name, URL: p.URL, Timeout: p.Timeout}, nil
	}
	return Endpoint{URL: DefaultURL, Timeout: c.Defaults.Timeout}, nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid url (missing scheme or host)")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme %q (expected http or https)", u.Scheme)
	}
	return nil
}

// Load reads, expands and validates a YAML configuration file.
//
// URLs can use ${VAR} syntax, expanded with os.ExpandEnv, so API keys can
// live in the environment (or a .env file) instead of the config:
//
//	url: ${ALCHEMY_URL}
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional behaves like Load but returns Default when path does not
// exist. It is used for the implicit DefaultPath lookup.
func LoadOptional(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}
