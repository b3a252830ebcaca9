package syslog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the client's current configuration.
// Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	client := syslog.NewClient()
//	err := client.ApplyOverride(
//	    "server=192.168.1.10",
//	    "port=514",
//	    "min_level=warning",
//	)
func (c *Client) ApplyOverride(overrides ...string) error {
	cfg := c.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return c.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("syslog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := err.Error()
		// Remove "syslog: " prefix from individual errors to avoid duplication
		if strings.HasPrefix(errMsg, "syslog: ") {
			errMsg = errMsg[8:]
		}
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Remote endpoint
	case "server":
		cfg.Server = value
	case "port":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for port '%s': %w", value, err)
		}
		cfg.Port = intVal

	// Record envelope
	case "facility":
		// Special handling: accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Facility = numVal
		} else {
			facilityVal, err := Facility(value)
			if err != nil {
				return fmtErrorf("invalid facility value '%s': %w", value, err)
			}
			cfg.Facility = facilityVal
		}
	case "min_level":
		// Special handling: accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.MinLevel = numVal
		} else {
			levelVal, err := Level(value)
			if err != nil {
				return fmtErrorf("invalid min_level value '%s': %w", value, err)
			}
			cfg.MinLevel = levelVal
		}
	case "hostname":
		cfg.Hostname = value
	case "app_name":
		cfg.AppName = value

	// Buffer and timing limits
	case "max_message_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_message_size '%s': %w", value, err)
		}
		cfg.MaxMessageSize = intVal
	case "line_buffer_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for line_buffer_size '%s': %w", value, err)
		}
		cfg.LineBufferSize = intVal
	case "lock_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for lock_timeout_ms '%s': %w", value, err)
		}
		cfg.LockTimeoutMs = intVal

	// Fallback output
	case "fallback_target":
		cfg.FallbackTarget = value

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
