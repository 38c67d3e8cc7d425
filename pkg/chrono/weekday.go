// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"strconv"

	"github.com/cockroachdb/redact"
)

// Weekday is a day of the week, Monday through Sunday.
//
// The zero value is Monday, matching the ISO 8601 week which starts on
// Monday. Use NumDaysFromSunday for conventions that number from Sunday.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Succ returns the day after d, wrapping Sunday to Monday.
func (d Weekday) Succ() Weekday { return (d + 1) % 7 }

// Pred returns the day before d, wrapping Monday to Sunday.
func (d Weekday) Pred() Weekday { return (d + 6) % 7 }

// NumDaysFromMonday returns the number of days since Monday: Monday is 0 and
// Sunday is 6.
func (d Weekday) NumDaysFromMonday() int { return int(d) }

// NumDaysFromSunday returns the number of days since Sunday: Sunday is 0 and
// Saturday is 6.
func (d Weekday) NumDaysFromSunday() int { return int(d+1) % 7 }

// DaysSince returns the number of days from other to d, counting forward and
// wrapping within a single week. The result is in 0..=6.
func (d Weekday) DaysSince(other Weekday) int { return int((d + 7 - other) % 7) }

// Name returns the full English weekday name.
func (d Weekday) Name() string {
	if d > Sunday {
		return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}

// ShortName returns the three-letter English weekday abbreviation.
func (d Weekday) ShortName() string {
	if d > Sunday {
		return d.Name()
	}
	return weekdayNames[d][:3]
}

func (d Weekday) String() string { return d.Name() }

// SafeFormat implements redact.SafeFormatter.
func (d Weekday) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(d.Name()))
}
