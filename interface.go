package syslog

import (
	"fmt"
)

// Logf renders one message and dispatches it immediately as a single
// record. The rendered body is truncated to the format buffer bound; the
// record envelope itself is never truncated.
func (c *Client) Logf(level int64, tag, format string, args ...any) bool {
	message := fmt.Sprintf(format, args...)
	if len(message) > formatBufferSize {
		message = message[:formatBufferSize]
	}
	return c.emit(level, tag, message)
}

// Linef renders a text chunk and feeds it through the line accumulator:
// a record is dispatched for each completed line, and trailing text
// without a terminator stays pending for the next call. Output does not
// depend on how the caller splits text across calls, except that a
// chunk overflowing the line buffer is flushed in capacity-sized slices.
func (c *Client) Linef(level int64, tag, format string, args ...any) bool {
	text := fmt.Sprintf(format, args...)
	if len(text) > chunkBufferSize {
		text = text[:chunkBufferSize]
	}
	return c.appendLine(level, tag, text)
}

// appendLine runs one chunk through the accumulator and dispatches the
// completed lines after the accumulator guard has been released.
func (c *Client) appendLine(level int64, tag, text string) bool {
	items, ok := c.line.consume(level, tag, text, c.lockTimeout())
	if !ok {
		c.state.FailCount.Add(1)
		c.fallbackWrite(text)
		return true
	}
	return c.emitAll(items)
}

// FlushPending dispatches a partially accumulated line, if one exists.
// Useful before shutdown so a trailing unterminated line is not lost.
func (c *Client) FlushPending() bool {
	items, ok := c.line.flushPending(c.lockTimeout())
	if !ok {
		c.state.FailCount.Add(1)
		return false
	}
	return c.emitAll(items)
}

// Write renders arbitrary values as one space-separated message and
// dispatches it immediately. Composite values are dumped in a compact
// structured form.
func (c *Client) Write(level int64, tag string, args ...any) bool {
	r := renderer{buf: make([]byte, 0, chunkBufferSize)}
	for i, arg := range args {
		if i > 0 {
			r.buf = append(r.buf, ' ')
		}
		r.writeValue(arg)
	}
	message := string(r.buf)
	if len(message) > formatBufferSize {
		message = message[:formatBufferSize]
	}
	return c.emit(level, tag, message)
}

// Errorf logs a line-accumulated message at error level.
func (c *Client) Errorf(tag, format string, args ...any) bool {
	return c.Linef(LevelError, tag, format, args...)
}

// Warningf logs a line-accumulated message at warning level.
func (c *Client) Warningf(tag, format string, args ...any) bool {
	return c.Linef(LevelWarning, tag, format, args...)
}

// Infof logs a line-accumulated message at info level.
func (c *Client) Infof(tag, format string, args ...any) bool {
	return c.Linef(LevelInfo, tag, format, args...)
}

// Debugf logs a line-accumulated message at debug level.
func (c *Client) Debugf(tag, format string, args ...any) bool {
	return c.Linef(LevelDebug, tag, format, args...)
}

// Verbosef logs a line-accumulated message at verbose level.
func (c *Client) Verbosef(tag, format string, args ...any) bool {
	return c.Linef(LevelVerbose, tag, format, args...)
}
