// Package duedate interprets, compares, and formats task due dates.
//
// A due date is stored as a single string in one of two forms: a
// date-only value ("2024-03-05") covering a whole calendar day, or a
// date-time value ("2024-03-05T14:30") naming a specific instant. Both
// forms are interpreted in the host's local time zone. A date-only
// value means local midnight of that day, never UTC midnight, so the
// calendar day it names is the same in every locale.
//
// Parsing never fails hard: malformed input yields KindInvalid and all
// formatting functions degrade to an empty label.
package duedate

import (
	"fmt"
	"math"
	"time"
)

// Kind classifies a parsed due-date value.
type Kind int

const (
	// KindNone means no due date is set.
	KindNone Kind = iota

	// KindDay is a date-only value spanning a whole calendar day.
	KindDay

	// KindTime is a date-time value naming a specific instant.
	KindTime

	// KindInvalid marks malformed input that could not be parsed.
	KindInvalid
)

const (
	dayLayout    = "2006-01-02"
	minuteLayout = "2006-01-02T15:04"
	secondLayout = "2006-01-02T15:04:05"
)

// relativeHorizonDays is the largest day distance still rendered as a
// relative "Due in N days" label.
const relativeHorizonDays = 7

// Value is a due date parsed into its tagged form.
// The zero Value has KindNone.
type Value struct {
	raw  string
	kind Kind
	at   time.Time
}

// Parse interprets a stored due-date string in local time.
// An empty string yields KindNone; malformed input yields KindInvalid.
func Parse(raw string) Value {
	if raw == "" {
		return Value{}
	}

	if at, err := time.ParseInLocation(dayLayout, raw, time.Local); err == nil {
		return Value{raw: raw, kind: KindDay, at: at}
	}
	if at, err := time.ParseInLocation(minuteLayout, raw, time.Local); err == nil {
		return Value{raw: raw, kind: KindTime, at: at}
	}
	if at, err := time.ParseInLocation(secondLayout, raw, time.Local); err == nil {
		return Value{raw: raw, kind: KindTime, at: at}
	}

	return Value{raw: raw, kind: KindInvalid}
}

// Raw returns the stored string this value was parsed from.
func (v Value) Raw() string {
	return v.raw
}

// Kind returns the value's classification.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSet reports whether the value carries a usable due date.
func (v Value) IsSet() bool {
	return v.kind == KindDay || v.kind == KindTime
}

// HasTime reports whether the value carries an explicit time of day.
func (v Value) HasTime() bool {
	return v.kind == KindTime
}

// Time returns the value's instant: local midnight for date-only
// values, the named instant for date-time values.
func (v Value) Time() (time.Time, bool) {
	if !v.IsSet() {
		return time.Time{}, false
	}
	return v.at, true
}

// IsOverdue reports whether the due date has passed at now.
// A date-only value is not overdue until its whole calendar day has
// elapsed: a task due "today" stays current through 23:59:59.999.
func (v Value) IsOverdue(now time.Time) bool {
	switch v.kind {
	case KindTime:
		return now.After(v.at)
	case KindDay:
		endOfDay := v.at.AddDate(0, 0, 1).Add(-time.Millisecond)
		return now.After(endOfDay)
	default:
		return false
	}
}

// DayKey returns the YYYY-MM-DD bucket for calendar aggregation.
func (v Value) DayKey() (string, bool) {
	if !v.IsSet() {
		return "", false
	}
	return v.at.Format(dayLayout), true
}

// EditableInput normalizes the value into a canonical date-time-local
// string for round-tripping through an edit form. Date-only values
// become midnight of that day.
func (v Value) EditableInput() string {
	if !v.IsSet() {
		return ""
	}
	return v.at.Format(minuteLayout)
}

// RelativeLabel renders the due date relative to now: "Overdue",
// "Due today", "Due tomorrow", "Due in N days" up to a week out, or an
// absolute date beyond that. Date-time values append "at HH:MM".
// Unset and invalid values render as an empty label.
func (v Value) RelativeLabel(now time.Time) string {
	if !v.IsSet() {
		return ""
	}
	if v.IsOverdue(now) {
		return "Overdue"
	}

	suffix := ""
	if v.HasTime() {
		suffix = " at " + v.at.Format("15:04")
	}

	days := calendarDays(now, v.at)
	switch {
	case days <= 0:
		return "Due today" + suffix
	case days == 1:
		return "Due tomorrow" + suffix
	case days <= relativeHorizonDays:
		return fmt.Sprintf("Due in %d days%s", days, suffix)
	}

	return "Due " + v.at.Format("Jan 2, 2006") + suffix
}

// ExactLabel renders the full weekday and date, with the time of day
// for date-time values. Unset and invalid values render as an empty
// label.
func (v Value) ExactLabel() string {
	if !v.IsSet() {
		return ""
	}
	label := v.at.Format("Monday, January 2, 2006")
	if v.HasTime() {
		label += " at " + v.at.Format("15:04")
	}
	return label
}

// calendarDays counts the calendar-day boundaries between from and to,
// local midnight to local midnight. 23 hours away but across midnight
// still counts as one day.
func calendarDays(from, to time.Time) int {
	fromMidnight := midnight(from)
	toMidnight := midnight(to)
	// Rounding absorbs DST days that are not exactly 24h long.
	return int(math.Round(toMidnight.Sub(fromMidnight).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
