package syslog

// Log level constants, ordered from most to least severe.
// Lower numeric value means higher severity; a message passes the
// configured filter when its level is <= the minimum level.
const (
	LevelNone    int64 = 0
	LevelError   int64 = 1
	LevelWarning int64 = 2
	LevelInfo    int64 = 3
	LevelDebug   int64 = 4
	LevelVerbose int64 = 5
)

// RFC 3164 facility codes.
const (
	FacilityKern     int64 = 0
	FacilityUser     int64 = 1
	FacilityMail     int64 = 2
	FacilityDaemon   int64 = 3
	FacilityAuth     int64 = 4
	FacilitySyslog   int64 = 5
	FacilityLPR      int64 = 6
	FacilityNews     int64 = 7
	FacilityUUCP     int64 = 8
	FacilityCron     int64 = 9
	FacilityAuthPriv int64 = 10
	FacilityFTP      int64 = 11
	FacilityLocal0   int64 = 16
	FacilityLocal1   int64 = 17
	FacilityLocal2   int64 = 18
	FacilityLocal3   int64 = 19
	FacilityLocal4   int64 = 20
	FacilityLocal5   int64 = 21
	FacilityLocal6   int64 = 22
	FacilityLocal7   int64 = 23
)

// Buffers
const (
	// Smallest record buffer the formatter accepts
	minRecordCapacity = 64
	// Render cap for a single Logf message body
	formatBufferSize = 512
	// Render cap for a single Linef chunk before line assembly
	chunkBufferSize = 256
)

// Identity string limits, matching the record layout expected by
// common syslog collectors.
const (
	maxHostnameLen = 63
	maxAppNameLen  = 47
)

// timestampLayout is the fixed-width layout produced by the default clock.
const timestampLayout = "2006-01-02 15:04:05"
