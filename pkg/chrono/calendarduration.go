// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chrono-go/chrono/pkg/util/arith"
	"github.com/cockroachdb/redact"
)

// CalendarDuration is a span of time expressed in calendar units: months,
// days, and an exact time-of-day component. Unlike TimeDelta, the elapsed
// time a CalendarDuration covers depends on where on the calendar it is
// applied: adding one month to January 31 and to February 1 spans a
// different number of seconds.
//
// The months, days, and time components never convert into each other. A
// duration of 1 month is distinct from one of 30 days, and one of 24 hours
// is distinct from one of 1 day.
//
// CalendarDuration is built up with the With* methods:
//
//	d, err := NewCalendarDuration().WithDays(7).WithHMS(1, 30, 0)
//
// The zero value is a zero-length duration.
type CalendarDuration struct {
	months uint32
	days   uint32
	// secs holds the accurate-time component in a tagged encoding. Bit 1 is
	// set on every explicitly-built value, which keeps all encodings
	// nonzero and lets the Go zero value decode as zero time. Bit 0
	// selects the layout of the remaining bits:
	//
	//	bit 0 clear: seconds only, in bits 2..64
	//	bit 0 set:   seconds in bits 2..8, minutes in bits 8..64
	//
	// The two-field layout is only used when minutes are present, so equal
	// nonzero components always have equal encodings.
	secs  uint64
	nanos uint32
}

const (
	// The largest minute count the two-field layout can carry.
	maxCalendarMins = 1 << 56
	// The largest second count the single-field layout can carry.
	maxCalendarSecs = 1 << 62
)

// NewCalendarDuration returns a zero-length CalendarDuration.
func NewCalendarDuration() CalendarDuration { return CalendarDuration{} }

// WithMonths returns d with its month component replaced.
func (d CalendarDuration) WithMonths(months uint32) CalendarDuration {
	d.months = months
	return d
}

// WithDays returns d with its day component replaced.
func (d CalendarDuration) WithDays(days uint32) CalendarDuration {
	d.days = days
	return d
}

// WithSeconds returns d with its time component replaced by a count of
// seconds. seconds must be below 2^62.
func (d CalendarDuration) WithSeconds(seconds uint64) (CalendarDuration, error) {
	if seconds >= maxCalendarSecs {
		return CalendarDuration{}, outOfRangef("%d seconds overflows a calendar duration", seconds)
	}
	d.secs = seconds<<2 | 0b10
	return d, nil
}

// WithHMS returns d with its time component replaced by hours, minutes and
// seconds. seconds may be 60 to sit inside a leap second. The total minute
// count must be below 2^56.
func (d CalendarDuration) WithHMS(hours, minutes uint64, seconds uint8) (CalendarDuration, error) {
	if seconds > 60 {
		return CalendarDuration{}, invalidArgumentf("second number %d is not in 0..=60", seconds)
	}
	hourMins, ok := arith.MulUint64WithOverflow(hours, 60)
	if !ok {
		return CalendarDuration{}, outOfRangef("%d hours overflows a calendar duration", hours)
	}
	mins, ok := arith.AddUint64WithOverflow(hourMins, minutes)
	if !ok || mins >= maxCalendarMins {
		return CalendarDuration{}, outOfRangef(
			"%d hours %d minutes overflows a calendar duration", hours, minutes)
	}
	if mins == 0 {
		d.secs = uint64(seconds)<<2 | 0b10
	} else {
		d.secs = mins<<8 | uint64(seconds)<<2 | 0b11
	}
	return d, nil
}

// WithNanos returns d with its subsecond component replaced.
func (d CalendarDuration) WithNanos(nanos uint32) (CalendarDuration, error) {
	if nanos >= nanosPerSec {
		return CalendarDuration{}, invalidArgumentf(
			"nanosecond fraction %d is a full second or more", nanos)
	}
	d.nanos = nanos
	return d, nil
}

// Months returns the month component.
func (d CalendarDuration) Months() uint32 { return d.months }

// Days returns the day component.
func (d CalendarDuration) Days() uint32 { return d.days }

// Nanos returns the subsecond component in nanoseconds.
func (d CalendarDuration) Nanos() uint32 { return d.nanos }

// MinsAndSecs returns the minute and second parts of the time component.
// Durations built with WithSeconds report all of their time as seconds.
func (d CalendarDuration) MinsAndSecs() (mins uint64, secs uint64) {
	if d.secs&0b1 != 0 {
		return d.secs >> 8, d.secs >> 2 & 0b11_1111
	}
	return 0, d.secs >> 2
}

// IsZero reports whether every component of d is zero. It inspects the
// decoded components, so the Go zero value and an explicitly-built empty
// duration are both zero.
func (d CalendarDuration) IsZero() bool {
	mins, secs := d.MinsAndSecs()
	return d.months == 0 && d.days == 0 && mins == 0 && secs == 0 && d.nanos == 0
}

// Equal reports whether d and other have identical components. Component
// identity is what matters: a duration of 120 seconds and one of 2 minutes
// are not equal.
func (d CalendarDuration) Equal(other CalendarDuration) bool {
	dm, ds := d.MinsAndSecs()
	om, os := other.MinsAndSecs()
	return d.months == other.months && d.days == other.days &&
		dm == om && ds == os && d.nanos == other.nanos
}

// String renders d as an ISO 8601 period, e.g. "P1Y2M3DT4M5.5S". The zero
// duration renders as "PT0S".
func (d CalendarDuration) String() string {
	var buf bytes.Buffer
	buf.WriteByte('P')
	if years := d.months / 12; years != 0 {
		buf.WriteString(strconv.FormatUint(uint64(years), 10))
		buf.WriteByte('Y')
	}
	if months := d.months % 12; months != 0 {
		buf.WriteString(strconv.FormatUint(uint64(months), 10))
		buf.WriteByte('M')
	}
	if d.days != 0 {
		buf.WriteString(strconv.FormatUint(uint64(d.days), 10))
		buf.WriteByte('D')
	}
	mins, secs := d.MinsAndSecs()
	if mins != 0 || secs != 0 || d.nanos != 0 || buf.Len() == 1 {
		buf.WriteByte('T')
		if hours := mins / 60; hours != 0 {
			buf.WriteString(strconv.FormatUint(hours, 10))
			buf.WriteByte('H')
		}
		if mins := mins % 60; mins != 0 {
			buf.WriteString(strconv.FormatUint(mins, 10))
			buf.WriteByte('M')
		}
		buf.WriteString(strconv.FormatUint(secs, 10))
		switch {
		case d.nanos == 0:
		case d.nanos%nanosPerMilli == 0:
			fmt.Fprintf(&buf, ".%03d", d.nanos/nanosPerMilli)
		case d.nanos%nanosPerMicro == 0:
			fmt.Fprintf(&buf, ".%06d", d.nanos/nanosPerMicro)
		default:
			fmt.Fprintf(&buf, ".%09d", d.nanos)
		}
		buf.WriteByte('S')
	}
	return buf.String()
}

// SafeFormat implements redact.SafeFormatter.
func (d CalendarDuration) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(d.String()))
}
