package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "JAUNDICE_CONFIG"
	logLevelEnv     = "JAUNDICE_LOG_LEVEL"
	serverAddrEnv   = "JAUNDICE_SERVER_ADDR"
	lexiconDirEnv   = "JAUNDICE_LEXICON_DIR"
	localTimeoutEnv = "JAUNDICE_LOCAL_TIMEOUT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Server   ServerConfig   `yaml:"server"`
	Watch    WatchConfig    `yaml:"watch"`
	Sources  []SourceConfig `yaml:"sources"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FetchConfig controls article downloads.
type FetchConfig struct {
	RemoteTimeout Duration `yaml:"remoteTimeout"`
	UserAgent     string   `yaml:"userAgent"`
	MaxBodyBytes  int64    `yaml:"maxBodyBytes"`
}

// AnalysisConfig bounds local text processing.
type AnalysisConfig struct {
	LocalTimeout Duration `yaml:"localTimeout"`
	Workers      int      `yaml:"workers"`
}

// LexiconConfig points at the charged word lists.
type LexiconConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig describes the HTTP endpoint.
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	MaxURLs int    `yaml:"maxUrls"`
}

// WatchConfig sets how often a watched feed is re-rated.
type WatchConfig struct {
	Interval Duration `yaml:"interval"`
}

// SourceConfig enables an extra host served by the generic sanitizer.
type SourceConfig struct {
	Host string `yaml:"host"`
}

// Duration decodes Go duration strings ("2s", "500ms") from YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts to time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Hosts returns the configured extra hosts.
func (c Config) Hosts() []string {
	hosts := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		if h := strings.ToLower(strings.TrimSpace(s.Host)); h != "" {
			hosts = append(hosts, strings.TrimPrefix(h, "www."))
		}
	}
	return hosts
}

// Load reads YAML configuration from path (or JAUNDICE_CONFIG when path is
// empty) and applies environment overrides.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(lexiconDirEnv); v != "" {
		c.Lexicon.Dir = v
	}

	if v := os.Getenv(localTimeoutEnv); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Analysis.LocalTimeout = Duration(d)
		} else {
			log.Printf("config: ignoring %s=%q", localTimeoutEnv, v)
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Fetch.RemoteTimeout > 0 {
		base.Fetch.RemoteTimeout = override.Fetch.RemoteTimeout
	}
	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}
	if override.Fetch.MaxBodyBytes > 0 {
		base.Fetch.MaxBodyBytes = override.Fetch.MaxBodyBytes
	}

	if override.Analysis.LocalTimeout > 0 {
		base.Analysis.LocalTimeout = override.Analysis.LocalTimeout
	}
	if override.Analysis.Workers > 0 {
		base.Analysis.Workers = override.Analysis.Workers
	}

	if override.Lexicon.Dir != "" {
		base.Lexicon.Dir = override.Lexicon.Dir
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.MaxURLs > 0 {
		base.Server.MaxURLs = override.Server.MaxURLs
	}

	if override.Watch.Interval > 0 {
		base.Watch.Interval = override.Watch.Interval
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Fetch: FetchConfig{
			RemoteTimeout: Duration(2 * time.Second),
			UserAgent:     "JaundiceRate/1.0",
			MaxBodyBytes:  5 << 20,
		},
		Analysis: AnalysisConfig{LocalTimeout: Duration(3 * time.Second)},
		Lexicon:  LexiconConfig{Dir: "charged_dict"},
		Server:   ServerConfig{Addr: ":8000", MaxURLs: 10},
		Watch:    WatchConfig{Interval: Duration(10 * time.Minute)},
	}
}
