package syslog

import (
	"strings"
	"time"
)

// accumulator reassembles arbitrarily chunked text into complete log
// lines. It owns its guard, independent of the dispatcher guard:
// completed lines are collected while holding the accumulator guard and
// dispatched only after it has been released, so the two locks never
// nest across the formatting/transport path.
type accumulator struct {
	guard *guard
	buf   []byte // pending line; one byte of cap(buf) stays reserved
	level int64
	tag   string
}

// flushItem is one completed line, detached from the accumulator so it
// can be dispatched after the guard is released.
type flushItem struct {
	level int64
	tag   string
	line  string
}

func newAccumulator(capacity int64) *accumulator {
	return &accumulator{
		guard: newGuard(),
		buf:   make([]byte, 0, capacity),
	}
}

// resize replaces the buffer, preserving as much of the pending line as
// fits. Administrative path, blocking acquire.
func (a *accumulator) resize(capacity int64) {
	a.guard.lock()
	defer a.guard.release()

	if int64(cap(a.buf)) == capacity {
		return
	}
	next := make([]byte, 0, capacity)
	keep := len(a.buf)
	if max := int(capacity) - 1; keep > max {
		keep = max
	}
	a.buf = append(next, a.buf[:keep]...)
}

// consume scans text for line terminators and returns the lines
// completed by this chunk, in program order. The pending line keeps
// exactly one (level, tag) pair: an attribute change forces a flush, and
// a segment that cannot fit is flushed in full-capacity slices. Text
// after the last terminator stays pending for the next call.
//
// Returns ok=false when the guard could not be acquired in time.
func (a *accumulator) consume(level int64, tag, text string, timeout time.Duration) ([]flushItem, bool) {
	if !a.guard.acquire(timeout) {
		return nil, false
	}
	defer a.guard.release()

	var items []flushItem
	usable := cap(a.buf) - 1

	for len(text) > 0 {
		nl := strings.IndexAny(text, "\r\n")
		segment := text
		if nl >= 0 {
			segment = text[:nl]
		}

		// The pending buffer only ever holds bytes of one attribute pair
		if len(a.buf) > 0 && (a.level != level || a.tag != tag) {
			items = append(items, a.take())
		}
		if len(a.buf) == 0 {
			a.level = level
			a.tag = tag
		}

		if len(segment) > usable-len(a.buf) {
			if len(a.buf) > 0 {
				items = append(items, a.take())
			}
			// Oversized segment: emit full-capacity slices until the
			// remainder fits. Each slice is its own record.
			for len(segment) > usable {
				items = append(items, flushItem{level: level, tag: tag, line: segment[:usable]})
				segment = segment[usable:]
			}
			a.level = level
			a.tag = tag
		}
		a.buf = append(a.buf, segment...)

		if nl < 0 {
			break
		}
		items = append(items, a.take())

		// \r\n and \n\r are a single terminator, consuming both bytes
		next := nl + 1
		if next < len(text) && (text[next] == '\r' || text[next] == '\n') && text[next] != text[nl] {
			next++
		}
		text = text[next:]
	}

	return items, true
}

// flushPending detaches the pending line, if any.
func (a *accumulator) flushPending(timeout time.Duration) ([]flushItem, bool) {
	if !a.guard.acquire(timeout) {
		return nil, false
	}
	defer a.guard.release()

	if len(a.buf) == 0 {
		return nil, true
	}
	return []flushItem{a.take()}, true
}

// take removes the pending line and clears its attributes.
func (a *accumulator) take() flushItem {
	item := flushItem{level: a.level, tag: a.tag, line: string(a.buf)}
	a.buf = a.buf[:0]
	a.level = LevelNone
	a.tag = ""
	return item
}
