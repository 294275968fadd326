package tz

import (
	"fmt"
	"time"
)

// Window is the half-open UTC interval [StartUTC, EndUTC) covering one
// local calendar day. EndUTC is the next local midnight, so DST-irregular
// days (23h or 25h) keep their true length.
type Window struct {
	StartUTC time.Time
	EndUTC   time.Time
	DayKey   string
}

// Contains reports whether the instant falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.StartUTC) && t.Before(w.EndUTC)
}

// DayWindow computes the window for the local day the reference instant
// falls on. Any two instants sharing a local day key yield the same window.
func (c *Converter) DayWindow(ref time.Time) Window {
	zoned := ref.In(c.loc)
	return c.windowFor(zoned.Year(), zoned.Month(), zoned.Day())
}

// DayWindowForKey computes the window for an explicit day key, supporting
// navigation to arbitrary past or future days.
func (c *Converter) DayWindowForKey(dayKey string) (Window, error) {
	day, err := parseDayKey(dayKey)
	if err != nil {
		return Window{}, err
	}
	return c.windowFor(day.Year(), day.Month(), day.Day()), nil
}

func (c *Converter) windowFor(year int, month time.Month, day int) Window {
	start := time.Date(year, month, day, 0, 0, 0, 0, c.loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, c.loc)
	return Window{
		StartUTC: start.UTC(),
		EndUTC:   end.UTC(),
		DayKey:   start.Format(DayKeyFormat),
	}
}

// NextDayKey returns the day key one calendar day after the given one.
// Pure Y-M-D arithmetic, independent of any timezone.
func NextDayKey(dayKey string) (string, error) {
	return shiftDayKey(dayKey, 1)
}

// PreviousDayKey returns the day key one calendar day before the given one.
func PreviousDayKey(dayKey string) (string, error) {
	return shiftDayKey(dayKey, -1)
}

func shiftDayKey(dayKey string, days int) (string, error) {
	day, err := parseDayKey(dayKey)
	if err != nil {
		return "", err
	}
	return day.AddDate(0, 0, days).Format(DayKeyFormat), nil
}

func parseDayKey(dayKey string) (time.Time, error) {
	day, err := time.Parse(DayKeyFormat, dayKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, dayKey)
	}
	return day, nil
}
