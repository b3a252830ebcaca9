package syslog

import (
	"io"
)

// Global instance for package-level functions
var defaultClient = NewClient()

// Default returns the package-level client instance.
func Default() *Client {
	return defaultClient
}

// Default package-level functions that delegate to the default client

// ApplyConfig applies a validated configuration to the default client
func ApplyConfig(cfg *Config) error {
	return defaultClient.ApplyConfig(cfg)
}

// ApplyOverride applies string key-value overrides to the default client
func ApplyOverride(overrides ...string) error {
	return defaultClient.ApplyOverride(overrides...)
}

// Configure points the default client at a new server endpoint
func Configure(address string, port int) error {
	return defaultClient.Configure(address, port)
}

// IsReady reports whether the default client has a live transport handle
func IsReady() bool {
	return defaultClient.IsReady()
}

// Logf dispatches one formatted message through the default client
func Logf(level int64, tag, format string, args ...any) bool {
	return defaultClient.Logf(level, tag, format, args...)
}

// Linef feeds a formatted chunk through the default client's line accumulator
func Linef(level int64, tag, format string, args ...any) bool {
	return defaultClient.Linef(level, tag, format, args...)
}

// Errorf logs a line-accumulated message at error level
func Errorf(tag, format string, args ...any) bool {
	return defaultClient.Errorf(tag, format, args...)
}

// Warningf logs a line-accumulated message at warning level
func Warningf(tag, format string, args ...any) bool {
	return defaultClient.Warningf(tag, format, args...)
}

// Infof logs a line-accumulated message at info level
func Infof(tag, format string, args ...any) bool {
	return defaultClient.Infof(tag, format, args...)
}

// Debugf logs a line-accumulated message at debug level
func Debugf(tag, format string, args ...any) bool {
	return defaultClient.Debugf(tag, format, args...)
}

// Verbosef logs a line-accumulated message at verbose level
func Verbosef(tag, format string, args ...any) bool {
	return defaultClient.Verbosef(tag, format, args...)
}

// Write renders arbitrary values and dispatches one record
func Write(level int64, tag string, args ...any) bool {
	return defaultClient.Write(level, tag, args...)
}

// FlushPending dispatches a partially accumulated line, if one exists
func FlushPending() bool {
	return defaultClient.FlushPending()
}

// SetMinLevel sets the minimum level on the default client
func SetMinLevel(level int64) {
	defaultClient.SetMinLevel(level)
}

// MinLevel returns the default client's minimum level
func MinLevel() int64 {
	return defaultClient.MinLevel()
}

// Stats returns a snapshot of the default client's delivery counters
func Stats() (sent, failed uint64) {
	return defaultClient.Stats()
}

// ResetStats zeroes the default client's delivery counters
func ResetStats() {
	defaultClient.ResetStats()
}

// SetFallbackWriter replaces the default client's local fallback sink
func SetFallbackWriter(w io.Writer) {
	defaultClient.SetFallbackWriter(w)
}

// Close releases the default client's transport handle
func Close() error {
	return defaultClient.Close()
}
