package syslog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all client configuration values
type Config struct {
	// Remote endpoint
	Server string `toml:"server"` // IP or hostname; empty leaves the client unconfigured
	Port   int64  `toml:"port"`

	// Record envelope
	Facility int64  `toml:"facility"`
	MinLevel int64  `toml:"min_level"`
	Hostname string `toml:"hostname"` // Resolved from the OS when empty
	AppName  string `toml:"app_name"`

	// Buffer and timing limits
	MaxMessageSize int64 `toml:"max_message_size"` // Record buffer capacity in bytes
	LineBufferSize int64 `toml:"line_buffer_size"` // Line accumulator capacity in bytes
	LockTimeoutMs  int64 `toml:"lock_timeout_ms"`  // Bounded guard acquisition wait

	// Fallback output when the transport path is unavailable
	FallbackTarget string `toml:"fallback_target"` // "stdout", "stderr", or "discard"

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Server: "",
	Port:   514,

	Facility: FacilityUser,
	MinLevel: LevelVerbose,
	Hostname: "",
	AppName:  "syslog",

	MaxMessageSize: 1024,
	LineBufferSize: 1024,
	LockTimeoutMs:  100,

	FallbackTarget: "stdout",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("syslog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "syslog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	// Apply overrides using reflection
	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	// Create a map of field names to field values for efficient lookup
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	// Endpoint validations. An empty server is valid and leaves the
	// client unconfigured until Configure is called.
	if c.Port < 1 || c.Port > 65535 {
		return fmtErrorf("port out of range: %d", c.Port)
	}

	if c.Facility < FacilityKern || c.Facility > FacilityLocal7 {
		return fmtErrorf("facility out of range: %d", c.Facility)
	}

	if c.MinLevel < LevelNone || c.MinLevel > LevelVerbose {
		return fmtErrorf("min_level must be between %d and %d: %d", LevelNone, LevelVerbose, c.MinLevel)
	}

	// Identity validations
	if len(c.Hostname) > maxHostnameLen {
		return fmtErrorf("hostname exceeds %d bytes: '%s'", maxHostnameLen, c.Hostname)
	}
	if strings.ContainsAny(c.Hostname, " \t") {
		return fmtErrorf("hostname cannot contain whitespace: '%s'", c.Hostname)
	}

	if strings.TrimSpace(c.AppName) == "" {
		return fmtErrorf("app_name cannot be empty")
	}
	if len(c.AppName) > maxAppNameLen {
		return fmtErrorf("app_name exceeds %d bytes: '%s'", maxAppNameLen, c.AppName)
	}
	if strings.ContainsAny(c.AppName, " \t") {
		return fmtErrorf("app_name cannot contain whitespace: '%s'", c.AppName)
	}

	// Buffer and timing validations
	if c.MaxMessageSize < minRecordCapacity {
		return fmtErrorf("max_message_size must be at least %d: %d", minRecordCapacity, c.MaxMessageSize)
	}

	if c.LineBufferSize < minRecordCapacity {
		return fmtErrorf("line_buffer_size must be at least %d: %d", minRecordCapacity, c.LineBufferSize)
	}

	if c.LockTimeoutMs <= 0 {
		return fmtErrorf("lock_timeout_ms must be positive: %d", c.LockTimeoutMs)
	}

	if c.FallbackTarget != "stdout" && c.FallbackTarget != "stderr" && c.FallbackTarget != "discard" {
		return fmtErrorf("invalid fallback_target: '%s' (use stdout, stderr, or discard)", c.FallbackTarget)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
