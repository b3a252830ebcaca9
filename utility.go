package syslog

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "syslog: ") {
		format = "syslog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// Level converts level string to numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "none":
		return LevelNone, nil
	case "error":
		return LevelError, nil
	case "warning":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "verbose":
		return LevelVerbose, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use none, error, warning, info, debug, verbose)", levelStr)
	}
}

// Facility converts facility string to numeric constant.
func Facility(facilityStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(facilityStr)) {
	case "kern":
		return FacilityKern, nil
	case "user":
		return FacilityUser, nil
	case "mail":
		return FacilityMail, nil
	case "daemon":
		return FacilityDaemon, nil
	case "auth":
		return FacilityAuth, nil
	case "syslog":
		return FacilitySyslog, nil
	case "lpr":
		return FacilityLPR, nil
	case "news":
		return FacilityNews, nil
	case "uucp":
		return FacilityUUCP, nil
	case "cron":
		return FacilityCron, nil
	case "authpriv":
		return FacilityAuthPriv, nil
	case "ftp":
		return FacilityFTP, nil
	case "local0":
		return FacilityLocal0, nil
	case "local1":
		return FacilityLocal1, nil
	case "local2":
		return FacilityLocal2, nil
	case "local3":
		return FacilityLocal3, nil
	case "local4":
		return FacilityLocal4, nil
	case "local5":
		return FacilityLocal5, nil
	case "local6":
		return FacilityLocal6, nil
	case "local7":
		return FacilityLocal7, nil
	default:
		return 0, fmtErrorf("invalid facility string: '%s'", facilityStr)
	}
}

// levelToString converts a level constant to its display name.
func levelToString(level int64) string {
	switch level {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelVerbose:
		return "VERBOSE"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}
