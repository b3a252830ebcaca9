package syslog

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Client is the core struct that encapsulates the syslog shipping state:
// the remote endpoint, the transport handle, the line accumulator, and
// the delivery counters. A Client is safe for concurrent use.
type Client struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex // serializes administrative operations
	guard         *guard     // protects endpoint, transport handle
	line          *accumulator

	// Written only while holding guard
	server    *net.UDPAddr
	transport Transport

	// Injection seams for tests
	newTransport func() Transport
	clock        func() string
}

// NewClient creates a new Client instance with default settings.
// The client starts unconfigured: log calls degrade to the fallback
// sink until Configure or ApplyConfig installs a server endpoint.
func NewClient() *Client {
	c := &Client{
		guard:        newGuard(),
		newTransport: func() Transport { return &udpTransport{} },
		clock:        wallClock,
	}

	c.currentConfig.Store(DefaultConfig())
	cfg := c.getConfig()

	c.state.Initialized.Store(false)
	c.state.MinLevel.Store(cfg.MinLevel)
	c.state.FallbackWriter.Store(&sink{w: os.Stdout})

	c.line = newAccumulator(cfg.LineBufferSize)

	return c
}

// ApplyConfig applies a validated configuration to the client
// This is the primary way applications should configure the client
func (c *Client) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	c.initMu.Lock()
	defer c.initMu.Unlock()

	return c.applyConfig(cfg)
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (c *Client) applyConfig(cfg *Config) error {
	cfg = cfg.Clone()
	if cfg.Hostname == "" {
		cfg.Hostname = localHostname()
	}

	c.currentConfig.Store(cfg)
	c.state.MinLevel.Store(cfg.MinLevel)
	c.setFallbackTarget(cfg.FallbackTarget)
	c.line.resize(cfg.LineBufferSize)

	if cfg.Server != "" {
		return c.configure(cfg.Server, int(cfg.Port))
	}
	return nil
}

// GetConfig returns a copy of current configuration
func (c *Client) GetConfig() *Config {
	return c.getConfig().Clone()
}

// Configure points the client at a new server endpoint, replacing any
// existing transport handle. A malformed address or out-of-range port is
// rejected before any existing state is touched. Safe to call repeatedly.
func (c *Client) Configure(address string, port int) error {
	c.initMu.Lock()
	defer c.initMu.Unlock()

	if err := c.configure(address, port); err != nil {
		return err
	}

	cfg := c.getConfig().Clone()
	cfg.Server = address
	cfg.Port = int64(port)
	c.currentConfig.Store(cfg)
	return nil
}

// configure validates the endpoint, then swaps the transport handle under
// the guard. The old handle is always released before the new one is
// installed; an open failure leaves the client uninitialized rather than
// holding a stale handle.
func (c *Client) configure(address string, port int) error {
	if strings.TrimSpace(address) == "" {
		return fmtErrorf("server address cannot be empty")
	}
	if port < 1 || port > 65535 {
		return fmtErrorf("port out of range: %d", port)
	}

	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return fmtErrorf("invalid server address '%s': %w", address, err)
	}

	// Blocking acquire is acceptable here: reconfiguration is a rare
	// administrative call, not part of the logging path.
	c.guard.lock()
	defer c.guard.release()

	if c.transport != nil {
		_ = c.transport.Close()
		c.transport = nil
	}
	c.state.Initialized.Store(false)

	c.server = addr

	t := c.newTransport()
	if err := t.Open(); err != nil {
		return fmtErrorf("failed to open transport: %w", err)
	}
	c.transport = t
	c.state.Initialized.Store(true)

	c.internalLog("configured server %s\n", addr)
	return nil
}

// Close flushes any pending accumulated line, releases the transport
// handle, and leaves the client in the unconfigured state. The client
// remains usable: log calls degrade to the fallback sink.
func (c *Client) Close() error {
	var flushErr error
	if !c.FlushPending() {
		flushErr = fmtErrorf("failed to flush pending line")
	}

	c.initMu.Lock()
	defer c.initMu.Unlock()

	c.guard.lock()
	defer c.guard.release()

	var closeErr error
	if c.transport != nil {
		closeErr = c.transport.Close()
		c.transport = nil
	}
	c.state.Initialized.Store(false)
	return combineErrors(flushErr, closeErr)
}

// IsReady reports whether a transport handle is installed and the
// network path will be attempted.
func (c *Client) IsReady() bool {
	return c.state.Initialized.Load()
}

// SetMinLevel sets the minimum level; messages with a numerically
// greater (less severe) level are silently skipped.
func (c *Client) SetMinLevel(level int64) {
	c.state.MinLevel.Store(level)

	c.initMu.Lock()
	cfg := c.getConfig().Clone()
	cfg.MinLevel = level
	c.currentConfig.Store(cfg)
	c.initMu.Unlock()
}

// MinLevel returns the current minimum level.
func (c *Client) MinLevel() int64 {
	return c.state.MinLevel.Load()
}

// Stats returns a snapshot of the delivery counters.
func (c *Client) Stats() (sent, failed uint64) {
	return c.state.SendCount.Load(), c.state.FailCount.Load()
}

// ResetStats zeroes the delivery counters.
func (c *Client) ResetStats() {
	c.state.SendCount.Store(0)
	c.state.FailCount.Store(0)
}

// SetFallbackWriter replaces the local fallback sink. A nil writer
// discards fallback output.
func (c *Client) SetFallbackWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.state.FallbackWriter.Store(&sink{w: w})
}

// setFallbackTarget maps the configured target name onto a writer.
func (c *Client) setFallbackTarget(target string) {
	switch target {
	case "stderr":
		c.state.FallbackWriter.Store(&sink{w: os.Stderr})
	case "discard":
		c.state.FallbackWriter.Store(&sink{w: io.Discard})
	default:
		c.state.FallbackWriter.Store(&sink{w: os.Stdout})
	}
}

// fallbackWrite emits the raw message to the local sink, no envelope.
// Never touches the dispatcher guard.
func (c *Client) fallbackWrite(message string) {
	s := c.state.FallbackWriter.Load().(*sink)
	fmt.Fprintln(s.w, message)
}

// getConfig returns the current configuration (thread-safe)
func (c *Client) getConfig() *Config {
	return c.currentConfig.Load().(*Config)
}

// lockTimeout returns the configured guard acquisition bound.
func (c *Client) lockTimeout() time.Duration {
	return time.Duration(c.getConfig().LockTimeoutMs) * time.Millisecond
}

// internalLog handles writing internal client diagnostics to stderr, if enabled.
func (c *Client) internalLog(format string, args ...any) {
	cfg := c.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "syslog: " prefix
	if !strings.HasPrefix(format, "syslog: ") {
		format = "syslog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}

// localHostname resolves the OS hostname, trimmed to the identity limit.
func localHostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	if len(name) > maxHostnameLen {
		name = name[:maxHostnameLen]
	}
	return name
}
