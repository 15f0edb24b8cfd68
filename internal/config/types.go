package config

import "time"

// Config represents the main configuration structure
type Config struct {
	Humanize HumanizeConfig `yaml:"humanize" mapstructure:"humanize"`
	Watch    WatchConfig    `yaml:"watch" mapstructure:"watch"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// HumanizeConfig contains pipeline defaults and user rule extensions
type HumanizeConfig struct {
	// Aggressive enables the contraction pass by default. The CLI flag
	// overrides this.
	Aggressive bool `yaml:"aggressive" mapstructure:"aggressive"`

	// ContentType is the default content type: general, title,
	// description, or tags.
	ContentType string `yaml:"content_type" mapstructure:"content_type"`

	// Rules are extra replacement rules appended after the built-in
	// table. Patterns are case-insensitive and word-boundary anchored.
	Rules []RewriteRule `yaml:"rules" mapstructure:"rules"`
}

// RewriteRule is one user-supplied pattern/replacement pair
type RewriteRule struct {
	Pattern     string `yaml:"pattern" mapstructure:"pattern"`
	Replacement string `yaml:"replacement" mapstructure:"replacement"`
}

// WatchConfig contains watch-mode configuration
type WatchConfig struct {
	// Debounce caps how often a rapidly changing file is re-processed.
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // json or console
	File   struct {
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
		Path    string `yaml:"path" mapstructure:"path"`
	} `yaml:"file" mapstructure:"file"`
}

// GetDefaults returns a configuration with sensible defaults
func GetDefaults() *Config {
	return &Config{
		Humanize: HumanizeConfig{
			Aggressive:  false,
			ContentType: "general",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
