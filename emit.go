package syslog

// emit formats one record and hands it to the transport addressed at the
// configured server. Every failure short of a formatted-and-rejected or
// dropped datagram degrades to the fallback sink; the caller is never
// blocked beyond the guard acquisition bound.
//
// Returns true for delivered and degraded records, false when the
// message was dropped (format or transport failure).
func (c *Client) emit(level int64, tag, message string) bool {
	// Unguarded fast path: nothing configured, skip the guard entirely.
	if !c.state.Initialized.Load() {
		c.fallbackWrite(message)
		return true
	}

	// Numerically greater level means less severe: filtered out, and a
	// filtered message is a successful no-op.
	if level > c.state.MinLevel.Load() {
		return true
	}

	cfg := c.getConfig()

	if !c.guard.acquire(c.lockTimeout()) {
		c.state.FailCount.Add(1)
		c.fallbackWrite(message)
		return true
	}

	// State may have changed between the unguarded check and acquisition
	if !c.state.Initialized.Load() || c.transport == nil {
		c.state.FailCount.Add(1)
		c.guard.release()
		c.fallbackWrite(message)
		return true
	}

	priority := cfg.Facility*8 + severityOf(level)
	buf := make([]byte, 0, cfg.MaxMessageSize)
	buf, err := appendRecord(buf, int(cfg.MaxMessageSize), priority, c.clock(), cfg.Hostname, cfg.AppName, tag, message)
	if err != nil {
		c.state.FailCount.Add(1)
		c.guard.release()
		c.internalLog("format failed for %s record: %v\n", levelToString(level), err)
		return false
	}

	if err := c.transport.SendTo(buf, c.server); err != nil {
		c.state.FailCount.Add(1)
		c.guard.release()
		c.internalLog("send to %s failed: %v\n", c.server, err)
		return false
	}

	c.state.SendCount.Add(1)
	c.guard.release()
	return true
}

// emitAll dispatches a batch of completed lines in order, outside the
// accumulator guard.
func (c *Client) emitAll(items []flushItem) bool {
	allOK := true
	for _, item := range items {
		allOK = c.emit(item.level, item.tag, item.line) && allOK
	}
	return allOK
}
