// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"fmt"

	"github.com/chrono-go/chrono/pkg/util/arith"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Year bounds of NaiveDate. The window is wide enough that converting the
// extreme dates to days, seconds or weeks stays far inside int64.
const (
	MinYear = -262144
	MaxYear = 262143
)

// NaiveDate is a proleptic Gregorian calendar date with no time-of-day and
// no time zone, covering years MinYear through MaxYear. The Gregorian leap
// rule extends backward through all of that range, so dates before the 1582
// calendar reform name days the Julian calendar of the time did not.
//
// NaiveDate is a value type and may be compared with ==. The zero value is
// the date 0000-01-01.
type NaiveDate struct {
	year int32
	// ord0 is the zero-based day of the year, 0..=365.
	ord0 uint16
}

var (
	// DateMin is the earliest representable date, MinYear-01-01.
	DateMin = NaiveDate{year: MinYear}
	// DateMax is the latest representable date, MaxYear-12-31.
	DateMax = NaiveDate{year: MaxYear, ord0: 364}
	// UnixEpochDate is 1970-01-01.
	UnixEpochDate = NaiveDate{year: 1970}

	// Out-of-range sentinels for the clamping offset arithmetic. They order
	// below DateMin and above DateMax and never escape the package.
	dateBeforeMin = NaiveDate{year: MinYear - 1}
	dateAfterMax  = NaiveDate{year: MaxYear + 1}
)

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// daysBefore[m] counts the days in a common year before month m+1.
var daysBefore = [13]int32{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// ordinalOfYMD converts a validated month and day to a day of the year.
func ordinalOfYMD(year, month, day int) int {
	ord := int(daysBefore[month-1]) + day
	if month > 2 && isLeapYear(year) {
		ord++
	}
	return ord
}

// monthDayOfOrdinal converts a day of the year to month and day.
func monthDayOfOrdinal(year, ordinal int) (Month, int) {
	d := ordinal
	if isLeapYear(year) {
		switch {
		case d == 60:
			return February, 29
		case d > 60:
			d--
		}
	}
	month := 1
	for d > int(daysBefore[month]) {
		month++
	}
	return Month(month), d - int(daysBefore[month-1])
}

// DateFromYMD builds the date of the given year, month and day.
func DateFromYMD(year, month, day int) (NaiveDate, error) {
	if year < MinYear || year > MaxYear {
		return NaiveDate{}, outOfRangef("year %d is not in %d..=%d", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return NaiveDate{}, invalidArgumentf("month number %d is not in 1..=12", month)
	}
	if day < 1 || day > 31 {
		return NaiveDate{}, invalidArgumentf("day number %d is not in 1..=31", day)
	}
	if max := Month(month).NumDays(year); day > max {
		return NaiveDate{}, doesNotExistf("%04d-%02d has %d days, not %d", year, month, max, day)
	}
	return NaiveDate{year: int32(year), ord0: uint16(ordinalOfYMD(year, month, day) - 1)}, nil
}

// DateFromYO builds the date of the given year and day of the year, where
// January 1 is ordinal 1.
func DateFromYO(year, ordinal int) (NaiveDate, error) {
	if year < MinYear || year > MaxYear {
		return NaiveDate{}, outOfRangef("year %d is not in %d..=%d", year, MinYear, MaxYear)
	}
	if ordinal < 1 || ordinal > 366 {
		return NaiveDate{}, invalidArgumentf("ordinal day %d is not in 1..=366", ordinal)
	}
	if ordinal > daysInYear(year) {
		return NaiveDate{}, doesNotExistf("year %d has %d days, not %d", year, daysInYear(year), ordinal)
	}
	return NaiveDate{year: int32(year), ord0: uint16(ordinal - 1)}, nil
}

// DateFromISOWeek builds the date of the given ISO 8601 week-numbering year,
// week, and weekday.
func DateFromISOWeek(isoYear, week int, wd Weekday) (NaiveDate, error) {
	if week < 1 || week > 53 {
		return NaiveDate{}, invalidArgumentf("ISO week %d is not in 1..=53", week)
	}
	if isoYear < MinYear || isoYear > MaxYear {
		return NaiveDate{}, outOfRangef("year %d is not in %d..=%d", isoYear, MinYear, MaxYear)
	}
	if week > isoWeeksInYear(isoYear) {
		return NaiveDate{}, doesNotExistf("ISO year %d has %d weeks, not %d",
			isoYear, isoWeeksInYear(isoYear), week)
	}
	// The Monday of ISO week 1 relative to January 1 of isoYear.
	jan1 := weekdayOfJan1(isoYear)
	ord := (week-1)*7 + wd.NumDaysFromMonday() + 1 - jan1.NumDaysFromMonday()
	if jan1.NumDaysFromMonday() >= 4 {
		ord += 7
	}
	switch {
	case ord < 1:
		return DateFromYO(isoYear-1, ord+daysInYear(isoYear-1))
	case ord > daysInYear(isoYear):
		return DateFromYO(isoYear+1, ord-daysInYear(isoYear))
	default:
		return DateFromYO(isoYear, ord)
	}
}

// DateFromNumDays builds the date for a day number in the count used by
// NumDays, where day 1 is 0001-01-01.
func DateFromNumDays(days int64) (NaiveDate, error) {
	d := days - 1 // zero-based days since 0001-01-01
	n400 := arith.FloorDiv(d, 146097)
	d -= n400 * 146097
	n100 := d / 36524
	if n100 == 4 {
		n100 = 3
	}
	d -= n100 * 36524
	n4 := d / 1461
	d -= n4 * 1461
	n1 := d / 365
	if n1 == 4 {
		n1 = 3
	}
	d -= n1 * 365
	year := 400*n400 + 100*n100 + 4*n4 + n1 + 1
	if year < MinYear || year > MaxYear {
		return NaiveDate{}, outOfRangef("day number %d is outside the representable dates", days)
	}
	return NaiveDate{year: int32(year), ord0: uint16(d)}, nil
}

// Year returns the calendar year. Year 0 is 1 BCE.
func (d NaiveDate) Year() int { return int(d.year) }

// Ordinal returns the day of the year, where January 1 is 1.
func (d NaiveDate) Ordinal() int { return int(d.ord0) + 1 }

// Month returns the month.
func (d NaiveDate) Month() Month {
	m, _ := monthDayOfOrdinal(int(d.year), d.Ordinal())
	return m
}

// Day returns the day of the month.
func (d NaiveDate) Day() int {
	_, day := monthDayOfOrdinal(int(d.year), d.Ordinal())
	return day
}

// NumDays returns the day number of d, where 0001-01-01 is day 1. Day
// numbers of consecutive dates are consecutive, which makes them the
// currency of day-precision arithmetic.
func (d NaiveDate) NumDays() int64 {
	y := int64(d.year) - 1
	return 365*y + arith.FloorDiv(y, 4) - arith.FloorDiv(y, 100) + arith.FloorDiv(y, 400) +
		int64(d.Ordinal())
}

// Weekday returns the day of the week.
func (d NaiveDate) Weekday() Weekday {
	// 0001-01-01 was a Monday.
	return Weekday(arith.FloorMod(d.NumDays()-1, 7))
}

func weekdayOfJan1(year int) Weekday {
	return NaiveDate{year: int32(year)}.Weekday()
}

func isoWeeksInYear(year int) int {
	jan1 := weekdayOfJan1(year)
	if jan1 == Thursday || (jan1 == Wednesday && isLeapYear(year)) {
		return 53
	}
	return 52
}

// ISOWeek returns the ISO 8601 week-numbering year and week. The ISO year of
// dates near January 1 can differ from the calendar year.
func (d NaiveDate) ISOWeek() (isoYear, week int) {
	isoYear = int(d.year)
	isoWd := d.Weekday().NumDaysFromMonday() + 1
	week = (d.Ordinal() - isoWd + 10) / 7
	if week < 1 {
		isoYear--
		week = isoWeeksInYear(isoYear)
		return isoYear, week
	}
	if week > isoWeeksInYear(isoYear) {
		isoYear++
		week = 1
	}
	return isoYear, week
}

// IsLeapYear reports whether the year of d is a leap year.
func (d NaiveDate) IsLeapYear() bool { return isLeapYear(int(d.year)) }

// Cmp returns -1, 0, or 1 according to whether d is before, equal to, or
// after other.
func (d NaiveDate) Cmp(other NaiveDate) int {
	if d.year != other.year {
		if d.year < other.year {
			return -1
		}
		return 1
	}
	if d.ord0 != other.ord0 {
		if d.ord0 < other.ord0 {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether d is strictly earlier than other.
func (d NaiveDate) Before(other NaiveDate) bool { return d.Cmp(other) < 0 }

// After reports whether d is strictly later than other.
func (d NaiveDate) After(other NaiveDate) bool { return d.Cmp(other) > 0 }

// Succ returns the date one day after d.
func (d NaiveDate) Succ() (NaiveDate, error) {
	if d.Ordinal() < daysInYear(int(d.year)) {
		return NaiveDate{year: d.year, ord0: d.ord0 + 1}, nil
	}
	if d.year >= MaxYear {
		return NaiveDate{}, outOfRangef("no day follows %v", d)
	}
	return NaiveDate{year: d.year + 1}, nil
}

// Pred returns the date one day before d.
func (d NaiveDate) Pred() (NaiveDate, error) {
	if d.ord0 > 0 {
		return NaiveDate{year: d.year, ord0: d.ord0 - 1}, nil
	}
	if d.year <= MinYear {
		return NaiveDate{}, outOfRangef("no day precedes %v", d)
	}
	return NaiveDate{year: d.year - 1, ord0: uint16(daysInYear(int(d.year)-1) - 1)}, nil
}

func (d NaiveDate) addDayNumber(days int64) (NaiveDate, error) {
	n, ok := arith.AddWithOverflow(d.NumDays(), days)
	if !ok {
		return NaiveDate{}, outOfRangef("%d days from %v overflows", days, d)
	}
	r, err := DateFromNumDays(n)
	if err != nil {
		return NaiveDate{}, errors.Wrapf(err, "%d days from %v", days, d)
	}
	return r, nil
}

// CheckedAddSigned returns d shifted by the whole days of delta. The
// fractional day of delta, if any, is discarded.
func (d NaiveDate) CheckedAddSigned(delta TimeDelta) (NaiveDate, error) {
	return d.addDayNumber(delta.NumDays())
}

// CheckedSubSigned returns d shifted backward by the whole days of delta.
func (d NaiveDate) CheckedSubSigned(delta TimeDelta) (NaiveDate, error) {
	return d.addDayNumber(-delta.NumDays())
}

// CheckedAddDays returns d moved days forward on the calendar.
func (d NaiveDate) CheckedAddDays(days Days) (NaiveDate, error) {
	if days > 1<<40 {
		// Past any representable distance; avoids int64 conversion pitfalls.
		return NaiveDate{}, outOfRangef("%d days from %v overflows", uint64(days), d)
	}
	return d.addDayNumber(int64(days))
}

// CheckedSubDays returns d moved days backward on the calendar.
func (d NaiveDate) CheckedSubDays(days Days) (NaiveDate, error) {
	if days > 1<<40 {
		return NaiveDate{}, outOfRangef("%d days before %v overflows", uint64(days), d)
	}
	return d.addDayNumber(-int64(days))
}

func (d NaiveDate) shiftMonths(months int64) (NaiveDate, error) {
	month0 := int64(d.year)*12 + int64(d.Month()) - 1 + months
	year := arith.FloorDiv(month0, 12)
	month := int(arith.FloorMod(month0, 12)) + 1
	if year < MinYear || year > MaxYear {
		return NaiveDate{}, outOfRangef("%d months from %v overflows", months, d)
	}
	// Clamp the day of the month: one month past January 31 is February 28
	// or 29.
	day := d.Day()
	if max := Month(month).NumDays(int(year)); day > max {
		day = max
	}
	return DateFromYMD(int(year), month, day)
}

// CheckedAddMonths returns d moved months forward on the calendar, clamping
// the day of the month to the length of the target month.
func (d NaiveDate) CheckedAddMonths(months Months) (NaiveDate, error) {
	return d.shiftMonths(int64(months))
}

// CheckedSubMonths returns d moved months backward on the calendar, clamping
// the day of the month to the length of the target month.
func (d NaiveDate) CheckedSubMonths(months Months) (NaiveDate, error) {
	return d.shiftMonths(-int64(months))
}

// SignedDurationSince returns the exact span from other to d. The result is
// a whole number of 86400-second days and is always representable.
func (d NaiveDate) SignedDurationSince(other NaiveDate) TimeDelta {
	days := d.NumDays() - other.NumDays()
	return TimeDelta{secs: days * secsPerDay}
}

// WithYear returns d with the year replaced, keeping month and day. Moving
// February 29 to a common year fails.
func (d NaiveDate) WithYear(year int) (NaiveDate, error) {
	return DateFromYMD(year, int(d.Month()), d.Day())
}

// WithMonth returns d with the month replaced, keeping year and day.
func (d NaiveDate) WithMonth(month int) (NaiveDate, error) {
	return DateFromYMD(int(d.year), month, d.Day())
}

// WithDay returns d with the day of the month replaced.
func (d NaiveDate) WithDay(day int) (NaiveDate, error) {
	return DateFromYMD(int(d.year), int(d.Month()), day)
}

// WithOrdinal returns d with the day of the year replaced.
func (d NaiveDate) WithOrdinal(ordinal int) (NaiveDate, error) {
	return DateFromYO(int(d.year), ordinal)
}

// AndTime combines d with a time of day.
func (d NaiveDate) AndTime(t NaiveTime) NaiveDateTime {
	return NaiveDateTime{date: d, time: t}
}

// AndHMS combines d with a time of day given as hour, minute and second.
func (d NaiveDate) AndHMS(hour, min, sec int) (NaiveDateTime, error) {
	t, err := TimeFromHMS(hour, min, sec)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return d.AndTime(t), nil
}

// AndHMSMilli combines d with a time of day carrying a millisecond fraction.
// milli may reach 1999 to express a leap second.
func (d NaiveDate) AndHMSMilli(hour, min, sec, milli int) (NaiveDateTime, error) {
	t, err := TimeFromHMSMilli(hour, min, sec, milli)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return d.AndTime(t), nil
}

// AndHMSNano combines d with a time of day carrying a nanosecond fraction.
// nano may reach 1999999999 to express a leap second.
func (d NaiveDate) AndHMSNano(hour, min, sec, nano int) (NaiveDateTime, error) {
	t, err := TimeFromHMSNano(hour, min, sec, nano)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return d.AndTime(t), nil
}

// String renders d in ISO 8601 format, "2015-09-05". Years outside 0..=9999
// carry an explicit sign, "+12345-06-07".
func (d NaiveDate) String() string {
	m, day := monthDayOfOrdinal(int(d.year), d.Ordinal())
	if d.year >= 0 && d.year <= 9999 {
		return fmt.Sprintf("%04d-%02d-%02d", d.year, int(m), day)
	}
	return fmt.Sprintf("%+05d-%02d-%02d", d.year, int(m), day)
}

// SafeFormat implements redact.SafeFormatter.
func (d NaiveDate) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(d.String()))
}
