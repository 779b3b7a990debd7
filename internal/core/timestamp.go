package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// TimestampLayout is the only accepted serialization of record times.
	// Keeping every timestamp in this fixed-width layout makes lexicographic
	// order equal to chronological order, which the ledger sort relies on.
	TimestampLayout = "2006-01-02 15:04:05"

	// DateLayout is the date portion of TimestampLayout.
	DateLayout = "2006-01-02"
)

// Timestamp is a second-precision date+time kept in its serialized string
// form. Records store strings rather than time.Time so that manually edited
// historical rows survive a load/save round trip unchanged.
type Timestamp string

var ErrInvalidDate = errors.New("invalid date")

// NewTimestamp formats t using TimestampLayout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(TimestampLayout))
}

// Date returns the YYYY-MM-DD portion.
func (ts Timestamp) Date() string {
	s := string(ts)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// Clock returns the HH:MM:SS fragment, or "" when the timestamp carries
// no time of day (legacy date-only rows).
func (ts Timestamp) Clock() string {
	s := string(ts)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// WithDate replaces only the date portion, preserving the original time
// fragment when one exists.
func (ts Timestamp) WithDate(date string) Timestamp {
	if clock := ts.Clock(); clock != "" {
		return Timestamp(date + " " + clock)
	}
	return Timestamp(date)
}

// Hour returns the hour of day (0-23) and whether one could be parsed.
func (ts Timestamp) Hour() (int, bool) {
	t, err := time.Parse(TimestampLayout, string(ts))
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// ValidateDate checks that s is a well-formed YYYY-MM-DD date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}
