package syslog

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// wallClock returns the current local time in the fixed record layout.
// An empty string is the degraded value when no clock is available.
func wallClock() string {
	return time.Now().Format(timestampLayout)
}

// severityOf maps a log level onto the 0-7 syslog severity scale.
// Unrecognized levels map to informational.
func severityOf(level int64) int64 {
	switch level {
	case LevelNone:
		return 0
	case LevelError:
		return 3
	case LevelWarning:
		return 4
	case LevelInfo:
		return 6
	case LevelDebug:
		return 7
	case LevelVerbose:
		return 7
	default:
		return 6
	}
}

// appendRecord renders one RFC 3164 record into dst:
//
//	<PRI>TIMESTAMP HOSTNAME APPNAME[TAG]: MESSAGE
//
// An empty timestamp (failed clock) degrades the record rather than
// failing it. The envelope is never truncated: a record that would reach
// or exceed capacity is an error, the message body must be bounded by
// the caller.
func appendRecord(dst []byte, capacity int, priority int64, timestamp, hostname, appName, tag, message string) ([]byte, error) {
	if capacity < minRecordCapacity {
		return dst, fmtErrorf("record buffer too small: %d", capacity)
	}
	if tag == "" {
		tag = "unknown"
	}

	dst = append(dst, '<')
	dst = strconv.AppendInt(dst, priority, 10)
	dst = append(dst, '>')
	dst = append(dst, timestamp...)
	dst = append(dst, ' ')
	dst = append(dst, hostname...)
	dst = append(dst, ' ')
	dst = append(dst, appName...)
	dst = append(dst, '[')
	dst = append(dst, tag...)
	dst = append(dst, "]: "...)
	dst = append(dst, message...)

	if len(dst) >= capacity {
		return dst, fmtErrorf("record length %d exceeds buffer capacity %d", len(dst), capacity)
	}
	return dst, nil
}

// renderer accumulates the string form of arbitrary values for the
// value-logging entry point.
type renderer struct {
	buf []byte
}

// writeValue converts any value to its string representation.
// Composite types (structs, maps, pointers, arrays) fall back to
// go-spew/spew with compact, log-friendly settings.
func (r *renderer) writeValue(v any) {
	switch val := v.(type) {
	case string:
		r.buf = append(r.buf, val...)
	case int:
		r.buf = strconv.AppendInt(r.buf, int64(val), 10)
	case int64:
		r.buf = strconv.AppendInt(r.buf, val, 10)
	case uint:
		r.buf = strconv.AppendUint(r.buf, uint64(val), 10)
	case uint64:
		r.buf = strconv.AppendUint(r.buf, val, 10)
	case float32:
		r.buf = strconv.AppendFloat(r.buf, float64(val), 'f', -1, 32)
	case float64:
		r.buf = strconv.AppendFloat(r.buf, val, 'f', -1, 64)
	case bool:
		r.buf = strconv.AppendBool(r.buf, val)
	case nil:
		r.buf = append(r.buf, "nil"...)
	case time.Time:
		r.buf = val.AppendFormat(r.buf, timestampLayout)
	case error:
		r.buf = append(r.buf, val.Error()...)
	case fmt.Stringer:
		r.buf = append(r.buf, val.String()...)
	case []byte:
		r.buf = hex.AppendEncode(r.buf, val) // prevent special character corruption
	default:
		var b bytes.Buffer

		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}

		dumper.Fdump(&b, val)

		// Trim trailing new line added by spew
		r.buf = append(r.buf, bytes.TrimSpace(b.Bytes())...)
	}
}
