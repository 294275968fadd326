package tz

import (
	"errors"
	"fmt"
	"time"
)

// Timestamp formats exchanged with collaborators. Local timestamps are
// timezone-naive and only meaningful together with a Converter.
const (
	DayKeyFormat      = "2006-01-02"
	LocalMinuteFormat = "2006-01-02T15:04"
	LocalSecondFormat = "2006-01-02T15:04:05"
	ClockFormat       = "15:04"
)

var (
	// ErrInvalidTimezone means the IANA name could not be resolved.
	// Recovery (defaulting to UTC) is the caller's decision, never ours.
	ErrInvalidTimezone = errors.New("invalid IANA timezone")

	// ErrInvalidDayKey means the value is not a YYYY-MM-DD calendar date.
	ErrInvalidDayKey = errors.New("invalid day key")

	// ErrInvalidLocalTime means a naive local timestamp could not be parsed.
	ErrInvalidLocalTime = errors.New("invalid local timestamp")
)

// Converter converts between naive local wall-clock timestamps in one IANA
// timezone and UTC instants. The zone's offset is re-derived for every
// conversion, so DST transitions and historical offset changes are honored.
type Converter struct {
	name string
	loc  *time.Location
}

// NewConverter resolves the given IANA timezone name.
// e.g. "Asia/Tokyo", "America/New_York", "UTC"
func NewConverter(name string) (*Converter, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return &Converter{name: name, loc: loc}, nil
}

// Name returns the IANA name this converter was built from.
func (c *Converter) Name() string {
	return c.name
}

// Local is a naive local timestamp plus the calendar day it falls on,
// both expressed in the converter's timezone.
type Local struct {
	LocalISO string // YYYY-MM-DDTHH:mm
	DayKey   string // YYYY-MM-DD
}

// ToUTC interprets a naive local timestamp (YYYY-MM-DDTHH:mm, optionally
// with seconds) as wall-clock time in the converter's zone and returns the
// UTC instant. Nonexistent local times inside a spring-forward gap resolve
// to the instant the clock jumps to; ambiguous fall-back times resolve to
// the earlier offset. Both cases are deterministic.
func (c *Converter) ToUTC(local string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalSecondFormat, local, c.loc)
	if err != nil {
		t, err = time.ParseInLocation(LocalMinuteFormat, local, c.loc)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLocalTime, local)
	}
	return t.UTC(), nil
}

// FromUTC converts a UTC instant into the local wall-clock representation
// and its day key.
func (c *Converter) FromUTC(t time.Time) Local {
	zoned := t.In(c.loc)
	return Local{
		LocalISO: zoned.Format(LocalMinuteFormat),
		DayKey:   zoned.Format(DayKeyFormat),
	}
}

// DayKeyOf returns the calendar day the instant falls on in the
// converter's timezone.
func (c *Converter) DayKeyOf(t time.Time) string {
	return t.In(c.loc).Format(DayKeyFormat)
}

// Clock returns the HH:mm display string for an instant in the
// converter's timezone.
func (c *Converter) Clock(t time.Time) string {
	return t.In(c.loc).Format(ClockFormat)
}
