package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SPAM_SWEEPER_DETECT_THRESHOLD
const EnvPrefix = "SPAM_SWEEPER"

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance from the first config.yaml found
// on the search path. A missing file is not an error.
func New() (*Config, error) {
	v := NewEmptyViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/spam-sweeper/")
	v.AddConfigPath("$HOME/.spam-sweeper")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// NewFromFile creates a configuration instance from an explicit file
func NewFromFile(path string) (*Config, error) {
	v := NewEmptyViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults and environment overrides
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.path", "")
	v.SetDefault("input.s3_region", "us-east-1")

	// Output defaults
	v.SetDefault("output.type", "csv")
	v.SetDefault("output.path", "")
	v.SetDefault("output.sqlite_path", "./data/cleaned.db")
	v.SetDefault("output.mysql_dsn", "")
	v.SetDefault("output.table", "tweets")
	v.SetDefault("output.sheets.spreadsheet_id", "")
	v.SetDefault("output.sheets.credentials_file", "")
	v.SetDefault("output.sheets.sheet_name", "Cleaned")

	// Detection defaults
	v.SetDefault("detect.threshold", 10)
	v.SetDefault("detect.from", "")
	v.SetDefault("detect.to", "")
	v.SetDefault("detect.allowlist", []string{})

	// Curation defaults
	v.SetDefault("curate.add", []string{})
	v.SetDefault("curate.remove", []string{})

	// Review defaults
	v.SetDefault("review.mode", "auto")
	v.SetDefault("review.sample_limit", 5)
	v.SetDefault("review.preview_size", 120)
	v.SetDefault("review.chart_dir", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.verbose", false)
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// Set overrides a value, typically from a command-line flag
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
