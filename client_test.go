package syslog

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport is a capturing Transport for tests. It records sent
// datagrams and counts handle lifecycle events.
type fakeTransport struct {
	mu       sync.Mutex
	records  []string
	lastAddr *net.UDPAddr
	opens    int
	closes   int
	openErr  error
	sendErr  error
}

func (t *fakeTransport) Open() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.openErr != nil {
		return t.openErr
	}
	t.opens++
	return nil
}

func (t *fakeTransport) SendTo(p []byte, addr *net.UDPAddr) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sendErr != nil {
		return t.sendErr
	}
	t.records = append(t.records, string(p))
	t.lastAddr = addr
	return nil
}

func (t *fakeTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closes++
	return nil
}

func (t *fakeTransport) messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.records...)
}

// createTestClient creates a configured client with a capturing fake
// transport, a fixed clock, and a discarded fallback sink.
func createTestClient(t *testing.T) (*Client, *fakeTransport) {
	t.Helper()

	ft := &fakeTransport{}
	c := NewClient()
	c.newTransport = func() Transport { return ft }
	c.clock = func() string { return "2024-01-01 12:00:00" }

	cfg := DefaultConfig()
	cfg.Hostname = "craner"
	cfg.AppName = "logger"
	cfg.FallbackTarget = "discard"
	require.NoError(t, c.ApplyConfig(cfg))
	require.NoError(t, c.Configure("192.0.2.10", 514))

	return c, ft
}

// TestNewClient verifies that a new client is created with the correct initial state
func TestNewClient(t *testing.T) {
	c := NewClient()

	assert.NotNil(t, c)
	assert.False(t, c.IsReady())
	assert.Equal(t, LevelVerbose, c.MinLevel())

	sent, failed := c.Stats()
	assert.Zero(t, sent)
	assert.Zero(t, failed)
}

// TestConfigure verifies endpoint validation and transport initialization
func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		port      int
		wantError string
	}{
		{
			name:    "valid endpoint",
			address: "192.0.2.10",
			port:    514,
		},
		{
			name:    "valid hostname endpoint",
			address: "localhost",
			port:    10514,
		},
		{
			name:      "empty address",
			address:   "",
			port:      514,
			wantError: "address cannot be empty",
		},
		{
			name:      "port zero",
			address:   "192.0.2.10",
			port:      0,
			wantError: "port out of range",
		},
		{
			name:      "port too large",
			address:   "192.0.2.10",
			port:      70000,
			wantError: "port out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient()
			c.newTransport = func() Transport { return &fakeTransport{} }

			err := c.Configure(tt.address, tt.port)

			if tt.wantError == "" {
				require.NoError(t, err)
				assert.True(t, c.IsReady())
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.False(t, c.IsReady())
			}
		})
	}
}

// TestReconfigure verifies that repeated configuration leaves exactly one
// live transport handle and that an invalid call leaves prior state intact
func TestReconfigure(t *testing.T) {
	t.Run("second endpoint replaces first", func(t *testing.T) {
		c, ft := createTestClient(t)

		require.NoError(t, c.Configure("198.51.100.7", 1514))

		ft.mu.Lock()
		opens, closes := ft.opens, ft.closes
		ft.mu.Unlock()
		assert.Equal(t, 2, opens)
		assert.Equal(t, 1, closes, "old handle must be released")

		require.True(t, c.Logf(LevelInfo, "net", "after reconfig"))
		ft.mu.Lock()
		addr := ft.lastAddr
		ft.mu.Unlock()
		require.NotNil(t, addr)
		assert.Equal(t, 1514, addr.Port)
		assert.Equal(t, "198.51.100.7", addr.IP.String())
	})

	t.Run("invalid call leaves configuration intact", func(t *testing.T) {
		c, ft := createTestClient(t)

		err := c.Configure("192.0.2.20", 0)
		assert.Error(t, err)
		assert.True(t, c.IsReady())

		require.True(t, c.Logf(LevelInfo, "net", "still first endpoint"))
		ft.mu.Lock()
		addr := ft.lastAddr
		ft.mu.Unlock()
		require.NotNil(t, addr)
		assert.Equal(t, "192.0.2.10", addr.IP.String())
		assert.Equal(t, 514, addr.Port)
	})

	t.Run("open failure leaves client uninitialized", func(t *testing.T) {
		c, ft := createTestClient(t)

		c.newTransport = func() Transport {
			return &fakeTransport{openErr: errors.New("no socket")}
		}
		err := c.Configure("192.0.2.30", 514)
		assert.Error(t, err)
		assert.False(t, c.IsReady())

		// The previous handle was still released: no second live handle
		ft.mu.Lock()
		opens, closes := ft.opens, ft.closes
		ft.mu.Unlock()
		assert.Equal(t, opens, closes)
	})
}

// TestLevelFiltering verifies the filter direction: numerically greater
// levels are less severe and get skipped as silent successes
func TestLevelFiltering(t *testing.T) {
	c, ft := createTestClient(t)
	c.SetMinLevel(LevelWarning)

	assert.True(t, c.Logf(LevelError, "t", "error passes"))
	assert.True(t, c.Logf(LevelWarning, "t", "warning passes"))
	assert.True(t, c.Logf(LevelInfo, "t", "info filtered"))
	assert.True(t, c.Logf(LevelVerbose, "t", "verbose filtered"))

	records := ft.messages()
	require.Len(t, records, 2)
	assert.Contains(t, records[0], "error passes")
	assert.Contains(t, records[1], "warning passes")

	sent, failed := c.Stats()
	assert.Equal(t, uint64(2), sent)
	assert.Zero(t, failed)
}

// TestRecordPriorities verifies the wire priority for every level through
// the full dispatch path
func TestRecordPriorities(t *testing.T) {
	tests := []struct {
		level    int64
		priority int64
	}{
		{LevelNone, 8},
		{LevelError, 11},
		{LevelWarning, 12},
		{LevelInfo, 14},
		{LevelDebug, 15},
		{LevelVerbose, 15},
	}

	for _, tt := range tests {
		t.Run(levelToString(tt.level), func(t *testing.T) {
			c, ft := createTestClient(t)

			require.True(t, c.Logf(tt.level, "tag", "msg"))

			records := ft.messages()
			require.Len(t, records, 1)
			assert.True(t, strings.HasPrefix(records[0], fmt.Sprintf("<%d>", tt.priority)),
				"record %q should carry priority %d", records[0], tt.priority)
		})
	}
}

// TestRecordLayout verifies the full wire format of a dispatched record
func TestRecordLayout(t *testing.T) {
	c, ft := createTestClient(t)

	require.True(t, c.Logf(LevelInfo, "sensor", "temp=%d", 42))

	records := ft.messages()
	require.Len(t, records, 1)
	assert.Equal(t, "<14>2024-01-01 12:00:00 craner logger[sensor]: temp=42", records[0])
}

// TestFallbackWhenUnconfigured verifies degraded output through the local sink
func TestFallbackWhenUnconfigured(t *testing.T) {
	c := NewClient()

	var buf bytes.Buffer
	c.SetFallbackWriter(&buf)

	assert.True(t, c.Logf(LevelInfo, "t", "degraded %s", "message"))

	// Raw message, no envelope
	assert.Equal(t, "degraded message\n", buf.String())

	sent, failed := c.Stats()
	assert.Zero(t, sent)
	assert.Zero(t, failed)
}

// TestTransportFailure verifies failure counting and the fail return
func TestTransportFailure(t *testing.T) {
	c, ft := createTestClient(t)

	ft.mu.Lock()
	ft.sendErr = errors.New("network unreachable")
	ft.mu.Unlock()

	assert.False(t, c.Logf(LevelError, "t", "dropped"))
	assert.False(t, c.Logf(LevelError, "t", "dropped again"))

	sent, failed := c.Stats()
	assert.Zero(t, sent)
	assert.Equal(t, uint64(2), failed)
}

// TestFormatFailure verifies that an over-capacity record is dropped and counted
func TestFormatFailure(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient()
	c.newTransport = func() Transport { return ft }
	c.clock = func() string { return "2024-01-01 12:00:00" }

	cfg := DefaultConfig()
	cfg.MaxMessageSize = minRecordCapacity
	cfg.FallbackTarget = "discard"
	require.NoError(t, c.ApplyConfig(cfg))
	require.NoError(t, c.Configure("192.0.2.10", 514))

	assert.False(t, c.Logf(LevelInfo, "t", "%s", strings.Repeat("x", 100)))

	assert.Empty(t, ft.messages())
	sent, failed := c.Stats()
	assert.Zero(t, sent)
	assert.Equal(t, uint64(1), failed)
}

// TestGuardTimeout verifies forward progress via the fallback sink when
// the dispatcher guard cannot be acquired in time
func TestGuardTimeout(t *testing.T) {
	c, ft := createTestClient(t)
	require.NoError(t, c.ApplyOverride("lock_timeout_ms=10", "fallback_target=discard"))

	var buf bytes.Buffer
	c.SetFallbackWriter(&buf)

	c.guard.lock()
	ok := c.Logf(LevelInfo, "t", "contended")
	c.guard.release()

	assert.True(t, ok, "degraded delivery still reports success")
	assert.Equal(t, "contended\n", buf.String())
	assert.Empty(t, ft.messages())

	_, failed := c.Stats()
	assert.Equal(t, uint64(1), failed)
}

// TestStats verifies exact counter behavior
func TestStats(t *testing.T) {
	c, ft := createTestClient(t)

	c.Logf(LevelInfo, "t", "one")
	c.Logf(LevelInfo, "t", "two")

	ft.mu.Lock()
	ft.sendErr = errors.New("boom")
	ft.mu.Unlock()
	c.Logf(LevelInfo, "t", "three")

	sent, failed := c.Stats()
	assert.Equal(t, uint64(2), sent)
	assert.Equal(t, uint64(1), failed)

	c.ResetStats()
	sent, failed = c.Stats()
	assert.Zero(t, sent)
	assert.Zero(t, failed)
}

// TestSetMinLevel verifies the setter and getter round-trip
func TestSetMinLevel(t *testing.T) {
	c, _ := createTestClient(t)

	assert.Equal(t, LevelVerbose, c.MinLevel())
	c.SetMinLevel(LevelError)
	assert.Equal(t, LevelError, c.MinLevel())
	assert.Equal(t, LevelError, c.GetConfig().MinLevel)
}

// TestClose verifies handle release and degraded operation after close
func TestClose(t *testing.T) {
	c, ft := createTestClient(t)

	require.NoError(t, c.Close())
	assert.False(t, c.IsReady())

	ft.mu.Lock()
	opens, closes := ft.opens, ft.closes
	ft.mu.Unlock()
	assert.Equal(t, opens, closes)

	var buf bytes.Buffer
	c.SetFallbackWriter(&buf)
	assert.True(t, c.Logf(LevelInfo, "t", "after close"))
	assert.Equal(t, "after close\n", buf.String())
}

// TestCloseFlushesPending verifies that a trailing unterminated line is
// dispatched before the transport handle is released
func TestCloseFlushesPending(t *testing.T) {
	c, ft := createTestClient(t)

	c.Linef(LevelInfo, "t", "trailing without terminator")
	assert.Empty(t, ft.messages())

	require.NoError(t, c.Close())

	records := ft.messages()
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "trailing without terminator")
}

// TestSetFallbackWriter verifies the nil-writer guard
func TestSetFallbackWriter(t *testing.T) {
	c := NewClient()
	c.SetFallbackWriter(nil)

	// Must not panic writing to the discarded sink
	assert.True(t, c.Logf(LevelInfo, "t", "into the void"))
}

// TestClientConcurrency ensures the client is safe for concurrent use
func TestClientConcurrency(t *testing.T) {
	c, ft := createTestClient(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Logf(LevelInfo, "worker", "goroutine %d log %d", i, j)
			}
		}(i)
	}
	wg.Wait()

	sent, failed := c.Stats()
	assert.Equal(t, uint64(1000), sent)
	assert.Zero(t, failed)
	assert.Len(t, ft.messages(), 1000)
}

// TestWriteValues verifies value rendering through the dispatch path
func TestWriteValues(t *testing.T) {
	c, ft := createTestClient(t)

	type point struct {
		X, Y int
	}
	assert.True(t, c.Write(LevelInfo, "vals", "reading", 42, true, point{X: 1, Y: 2}))

	records := ft.messages()
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "reading 42 true")
	assert.Contains(t, records[0], "X:")
}
