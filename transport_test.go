package syslog

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUDPTransport verifies the production transport against a loopback
// listener end to end
func TestUDPTransport(t *testing.T) {
	listener, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer listener.Close()

	port := listener.LocalAddr().(*net.UDPAddr).Port

	c := NewClient()
	cfg := DefaultConfig()
	cfg.Hostname = "craner"
	cfg.AppName = "logger"
	cfg.FallbackTarget = "discard"
	require.NoError(t, c.ApplyConfig(cfg))
	require.NoError(t, c.Configure("127.0.0.1", port))
	defer c.Close()

	require.True(t, c.Logf(LevelInfo, "e2e", "over the wire"))

	buf := make([]byte, 2048)
	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := listener.ReadFromUDP(buf)
	require.NoError(t, err)

	record := string(buf[:n])
	assert.True(t, strings.HasPrefix(record, "<14>"))
	assert.True(t, strings.HasSuffix(record, " craner logger[e2e]: over the wire"))

	sent, failed := c.Stats()
	assert.Equal(t, uint64(1), sent)
	assert.Zero(t, failed)
}

// TestUDPTransportLifecycle verifies open and close behavior in isolation
func TestUDPTransportLifecycle(t *testing.T) {
	tr := &udpTransport{}

	require.NoError(t, tr.Open())
	require.NoError(t, tr.Close())

	// Closing a released handle is a no-op
	assert.NoError(t, tr.Close())
}
