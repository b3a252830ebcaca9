package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/syslog"
)

// GnetAdapter wraps lixenwraith/syslog.Client to implement gnet logging.Logger interface
type GnetAdapter struct {
	client       *syslog.Client
	tag          string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(client *syslog.Client, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		client: client,
		tag:    "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetTag sets the record tag used for gnet messages
func WithGnetTag(tag string) GnetOption {
	return func(a *GnetAdapter) {
		a.tag = tag
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.client.Logf(syslog.LevelDebug, a.tag, format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.client.Logf(syslog.LevelInfo, a.tag, format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.client.Logf(syslog.LevelWarning, a.tag, format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.client.Logf(syslog.LevelError, a.tag, format, args...)
}

// Fatalf logs at error level and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.client.Logf(syslog.LevelError, a.tag, "fatal: %s", msg)

	// A datagram send is synchronous, nothing to flush beyond a
	// partially accumulated line.
	a.client.FlushPending()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
