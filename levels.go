package eclair

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level represents the severity of a log directive or an emitted record.
// Levels are totally ordered: Trace is the most verbose, Fatal the most
// severe, and Off sorts above everything and disables logging entirely.
type Level uint8

const (
	// TraceLevel represents verbose debugging information.
	TraceLevel Level = iota
	// DebugLevel represents debugging information.
	DebugLevel
	// InfoLevel represents general operational information.
	InfoLevel
	// WarnLevel represents warning messages.
	WarnLevel
	// ErrorLevel represents error messages.
	ErrorLevel
	// FatalLevel represents fatal error messages.
	FatalLevel
	// OffLevel disables logging. As an effective threshold it suppresses
	// every record; as a directive level it means "unset".
	OffLevel
)

// levelCount is the number of defined levels, Off included.
const levelCount = int(OffLevel) + 1

//nolint:gochecknoglobals // fixed lookup table, read-only after init.
var levelNames = [levelCount]string{
	"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL", "OFF",
}

// String returns the string representation of a level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}

	return "UNKNOWN"
}

// IsValid returns true if the given Level is a defined level, Off included.
func (l Level) IsValid() bool {
	return l <= OffLevel
}

// Enabled reports whether a record requested at level l passes the given
// effective threshold. A threshold of Off disables every level, Off itself
// included.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold && threshold != OffLevel
}

// min returns the lower (more verbose) of two levels.
func (l Level) min(other Level) Level {
	if other < l {
		return other
	}

	return l
}

// MarshalText implements encoding.TextMarshaler so levels can be written
// back to configuration files.
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, ewrap.New("cannot marshal unknown level").WithMetadata("level", uint8(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so levels can be read
// directly from configuration files.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively and surrounding whitespace is ignored; "warning" is
// accepted as an alias for WARN.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "OFF":
		return OffLevel, nil
	default:
		return OffLevel, ewrap.New("unknown level name").WithMetadata("name", name)
	}
}
