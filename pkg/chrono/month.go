// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"strconv"

	"github.com/cockroachdb/redact"
)

// Month is a month of the year, numbered 1 (January) through 12 (December).
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthFromNumber converts a 1-based month number to a Month.
func MonthFromNumber(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, invalidArgumentf("month number %d is not in 1..=12", n)
	}
	return Month(n), nil
}

// Number returns the 1-based month number.
func (m Month) Number() int { return int(m) }

// Succ returns the month after m, wrapping December to January.
func (m Month) Succ() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Pred returns the month before m, wrapping January to December.
func (m Month) Pred() Month {
	if m == January {
		return December
	}
	return m - 1
}

// QuarterNumber returns the calendar quarter the month falls in, 1 through 4.
func (m Month) QuarterNumber() int { return (int(m)-1)/3 + 1 }

// NumDays returns the number of days in the month for the given year.
func (m Month) NumDays(year int) int {
	switch m {
	case February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// Name returns the full English month name.
func (m Month) Name() string {
	if m < January || m > December {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// ShortName returns the three-letter English month abbreviation.
func (m Month) ShortName() string {
	if m < January || m > December {
		return m.Name()
	}
	return monthNames[m-1][:3]
}

func (m Month) String() string { return m.Name() }

// SafeFormat implements redact.SafeFormatter.
func (m Month) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(m.Name()))
}

// Months is a count of whole calendar months, used for calendrical date
// arithmetic where the length of a month depends on the position on the
// calendar.
type Months uint32

// Days is a count of whole calendar days.
type Days uint64
