package syslog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultClient verifies the package-level delegates
func TestDefaultClient(t *testing.T) {
	assert.Same(t, defaultClient, Default())
	assert.False(t, IsReady())

	var buf bytes.Buffer
	SetFallbackWriter(&buf)
	defer SetFallbackWriter(nil)

	assert.True(t, Logf(LevelInfo, "t", "unconfigured %s", "default"))
	assert.Equal(t, "unconfigured default\n", buf.String())

	buf.Reset()
	assert.True(t, Linef(LevelInfo, "t", "accumulated"))
	assert.True(t, FlushPending())
	assert.Equal(t, "accumulated\n", buf.String())

	SetMinLevel(LevelWarning)
	assert.Equal(t, LevelWarning, MinLevel())
	SetMinLevel(LevelVerbose)

	require.NoError(t, ApplyOverride("app_name=default-test"))
	assert.Equal(t, "default-test", Default().GetConfig().AppName)

	sent, failed := Stats()
	assert.Zero(t, sent)
	assert.Zero(t, failed)
	ResetStats()
}
