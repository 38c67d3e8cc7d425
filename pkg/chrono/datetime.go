// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"github.com/chrono-go/chrono/pkg/util/arith"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// NaiveDateTime is a NaiveDate paired with a NaiveTime: a calendar date and
// time of day with no time zone attached.
//
// NaiveDateTime is a value type and may be compared with ==. The zero value
// is 0000-01-01 00:00:00.
type NaiveDateTime struct {
	date NaiveDate
	time NaiveTime
}

var (
	// DateTimeMin is the earliest representable date-time.
	DateTimeMin = NaiveDateTime{date: DateMin}
	// DateTimeMax is the latest representable date-time,
	// MaxYear-12-31 23:59:59.999999999.
	DateTimeMax = NaiveDateTime{
		date: DateMax,
		time: NaiveTime{secs: secsPerDay - 1, frac: nanosPerSec - 1},
	}
	// UnixEpochDateTime is 1970-01-01 00:00:00.
	UnixEpochDateTime = NaiveDateTime{date: UnixEpochDate}
)

// NewDateTime combines a date and a time of day.
func NewDateTime(d NaiveDate, t NaiveTime) NaiveDateTime {
	return NaiveDateTime{date: d, time: t}
}

// FromTimestamp builds the date-time at secs whole seconds after the Unix
// epoch, plus nsecs nanoseconds. nsecs may reach 1999999999 to land inside a
// leap second.
func FromTimestamp(secs int64, nsecs uint32) (NaiveDateTime, error) {
	if nsecs >= maxLeapNanos {
		return NaiveDateTime{}, invalidArgumentf(
			"nanosecond fraction %d is two full seconds or more", nsecs)
	}
	days := arith.FloorDiv(secs, secsPerDay)
	secOfDay := secs - days*secsPerDay
	d, err := UnixEpochDate.addDayNumber(days)
	if err != nil {
		return NaiveDateTime{}, errors.Wrapf(err, "timestamp %d", secs)
	}
	return NaiveDateTime{
		date: d,
		time: NaiveTime{secs: uint32(secOfDay), frac: nsecs},
	}, nil
}

// Date returns the date half.
func (dt NaiveDateTime) Date() NaiveDate { return dt.date }

// Time returns the time-of-day half.
func (dt NaiveDateTime) Time() NaiveTime { return dt.time }

func (dt NaiveDateTime) Year() int                  { return dt.date.Year() }
func (dt NaiveDateTime) Month() Month               { return dt.date.Month() }
func (dt NaiveDateTime) Day() int                   { return dt.date.Day() }
func (dt NaiveDateTime) Ordinal() int               { return dt.date.Ordinal() }
func (dt NaiveDateTime) Weekday() Weekday           { return dt.date.Weekday() }
func (dt NaiveDateTime) ISOWeek() (int, int)        { return dt.date.ISOWeek() }
func (dt NaiveDateTime) Hour() int                  { return dt.time.Hour() }
func (dt NaiveDateTime) Minute() int                { return dt.time.Minute() }
func (dt NaiveDateTime) Second() int                { return dt.time.Second() }
func (dt NaiveDateTime) Nanosecond() int            { return dt.time.Nanosecond() }
func (dt NaiveDateTime) NumSecondsFromMidnight() int { return dt.time.NumSecondsFromMidnight() }

// Timestamp returns the number of non-leap seconds since the Unix epoch.
// Times inside a leap second report the same timestamp as the end of the
// preceding second.
func (dt NaiveDateTime) Timestamp() int64 {
	days := dt.date.NumDays() - UnixEpochDate.NumDays()
	return days*secsPerDay + int64(dt.time.NumSecondsFromMidnight())
}

// TimestampNanos returns the number of non-leap nanoseconds since the Unix
// epoch, failing on int64 overflow. The range covered runs roughly from
// 1677 to 2262.
func (dt NaiveDateTime) TimestampNanos() (int64, error) {
	secsPart, ok := arith.MulWithOverflow(dt.Timestamp(), nanosPerSec)
	if !ok {
		return 0, outOfRangef("%v overflows a nanosecond timestamp", dt)
	}
	subsec := int64(dt.time.frac)
	if subsec >= nanosPerSec {
		subsec -= nanosPerSec
	}
	r, ok := arith.AddWithOverflow(secsPart, subsec)
	if !ok {
		return 0, outOfRangef("%v overflows a nanosecond timestamp", dt)
	}
	return r, nil
}

// Cmp returns -1, 0, or 1 according to whether dt is before, equal to, or
// after other.
func (dt NaiveDateTime) Cmp(other NaiveDateTime) int {
	if c := dt.date.Cmp(other.date); c != 0 {
		return c
	}
	return dt.time.Cmp(other.time)
}

// Before reports whether dt is strictly earlier than other.
func (dt NaiveDateTime) Before(other NaiveDateTime) bool { return dt.Cmp(other) < 0 }

// After reports whether dt is strictly later than other.
func (dt NaiveDateTime) After(other NaiveDateTime) bool { return dt.Cmp(other) > 0 }

// CheckedAddSigned returns dt shifted by delta. Leap seconds follow the
// NaiveTime arithmetic rules; the date moves by whatever whole days the time
// arithmetic carries.
func (dt NaiveDateTime) CheckedAddSigned(delta TimeDelta) (NaiveDateTime, error) {
	t, carry := dt.time.overflowingAddSigned(delta)
	d, err := dt.date.addDayNumber(carry / secsPerDay)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: t}, nil
}

// CheckedSubSigned returns dt shifted backward by delta.
func (dt NaiveDateTime) CheckedSubSigned(delta TimeDelta) (NaiveDateTime, error) {
	t, carry := dt.time.overflowingSubSigned(delta)
	d, err := dt.date.addDayNumber(-carry / secsPerDay)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: t}, nil
}

// CheckedAddMonths moves the date months forward on the calendar, clamping
// the day of the month. The time of day is untouched.
func (dt NaiveDateTime) CheckedAddMonths(months Months) (NaiveDateTime, error) {
	d, err := dt.date.CheckedAddMonths(months)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// CheckedSubMonths moves the date months backward on the calendar.
func (dt NaiveDateTime) CheckedSubMonths(months Months) (NaiveDateTime, error) {
	d, err := dt.date.CheckedSubMonths(months)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// CheckedAddDays moves the date days forward on the calendar.
func (dt NaiveDateTime) CheckedAddDays(days Days) (NaiveDateTime, error) {
	d, err := dt.date.CheckedAddDays(days)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// CheckedSubDays moves the date days backward on the calendar.
func (dt NaiveDateTime) CheckedSubDays(days Days) (NaiveDateTime, error) {
	d, err := dt.date.CheckedSubDays(days)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// CheckedAddOffset shifts dt east by a fixed offset. A time inside a leap
// second keeps its subsecond fraction, so the leap second survives the
// conversion between local and UTC views.
func (dt NaiveDateTime) CheckedAddOffset(off FixedOffset) (NaiveDateTime, error) {
	t, carry := dt.time.overflowingAddOffset(off)
	d, err := dt.date.addDayNumber(carry / secsPerDay)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: t}, nil
}

// CheckedSubOffset shifts dt west by a fixed offset.
func (dt NaiveDateTime) CheckedSubOffset(off FixedOffset) (NaiveDateTime, error) {
	t, carry := dt.time.overflowingSubOffset(off)
	d, err := dt.date.addDayNumber(carry / secsPerDay)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: t}, nil
}

// overflowingAddOffset is CheckedAddOffset with saturation: a result past
// either end of the representable dates clamps to an out-of-range sentinel
// date instead of failing. The time zone mapping code relies on the
// sentinels ordering outside every real date-time.
func (dt NaiveDateTime) overflowingAddOffset(off FixedOffset) NaiveDateTime {
	t, carry := dt.time.overflowingAddOffset(off)
	d, err := dt.date.addDayNumber(carry / secsPerDay)
	if err != nil {
		if carry < 0 {
			d = dateBeforeMin
		} else {
			d = dateAfterMax
		}
	}
	return NaiveDateTime{date: d, time: t}
}

func (dt NaiveDateTime) overflowingSubOffset(off FixedOffset) NaiveDateTime {
	t, carry := dt.time.overflowingSubOffset(off)
	d, err := dt.date.addDayNumber(carry / secsPerDay)
	if err != nil {
		if carry < 0 {
			d = dateBeforeMin
		} else {
			d = dateAfterMax
		}
	}
	return NaiveDateTime{date: d, time: t}
}

// inRange reports whether dt lies between DateTimeMin and DateTimeMax, which
// rules out the sentinel dates.
func (dt NaiveDateTime) inRange() bool {
	return dt.date.year >= MinYear && dt.date.year <= MaxYear
}

// SignedDurationSince returns the exact span from other to dt. Any pair of
// representable date-times yields a representable span, so the operation is
// total. Leap seconds follow the NaiveTime accounting.
func (dt NaiveDateTime) SignedDurationSince(other NaiveDateTime) TimeDelta {
	dateSpan := dt.date.SignedDurationSince(other.date)
	return dateSpan.Add(dt.time.SignedDurationSince(other.time))
}

// Add returns dt shifted by delta, panicking when the result is out of
// range. Use CheckedAddSigned when the inputs are not known to be in range.
func (dt NaiveDateTime) Add(delta TimeDelta) NaiveDateTime {
	r, err := dt.CheckedAddSigned(delta)
	if err != nil {
		panic(errors.AssertionFailedf("date-time addition out of range: %v", err))
	}
	return r
}

// Sub returns dt shifted backward by delta, panicking when the result is out
// of range.
func (dt NaiveDateTime) Sub(delta TimeDelta) NaiveDateTime {
	r, err := dt.CheckedSubSigned(delta)
	if err != nil {
		panic(errors.AssertionFailedf("date-time subtraction out of range: %v", err))
	}
	return r
}

// AddMonths is the panicking form of CheckedAddMonths.
func (dt NaiveDateTime) AddMonths(months Months) NaiveDateTime {
	r, err := dt.CheckedAddMonths(months)
	if err != nil {
		panic(errors.AssertionFailedf("month addition out of range: %v", err))
	}
	return r
}

// SubMonths is the panicking form of CheckedSubMonths.
func (dt NaiveDateTime) SubMonths(months Months) NaiveDateTime {
	r, err := dt.CheckedSubMonths(months)
	if err != nil {
		panic(errors.AssertionFailedf("month subtraction out of range: %v", err))
	}
	return r
}

// AddDays is the panicking form of CheckedAddDays.
func (dt NaiveDateTime) AddDays(days Days) NaiveDateTime {
	r, err := dt.CheckedAddDays(days)
	if err != nil {
		panic(errors.AssertionFailedf("day addition out of range: %v", err))
	}
	return r
}

// SubDays is the panicking form of CheckedSubDays.
func (dt NaiveDateTime) SubDays(days Days) NaiveDateTime {
	r, err := dt.CheckedSubDays(days)
	if err != nil {
		panic(errors.AssertionFailedf("day subtraction out of range: %v", err))
	}
	return r
}

// AddOffset is the panicking form of CheckedAddOffset.
func (dt NaiveDateTime) AddOffset(off FixedOffset) NaiveDateTime {
	r, err := dt.CheckedAddOffset(off)
	if err != nil {
		panic(errors.AssertionFailedf("offset addition out of range: %v", err))
	}
	return r
}

// SubOffset is the panicking form of CheckedSubOffset.
func (dt NaiveDateTime) SubOffset(off FixedOffset) NaiveDateTime {
	r, err := dt.CheckedSubOffset(off)
	if err != nil {
		panic(errors.AssertionFailedf("offset subtraction out of range: %v", err))
	}
	return r
}

// WithYear returns dt with the year replaced, keeping month and day.
func (dt NaiveDateTime) WithYear(year int) (NaiveDateTime, error) {
	d, err := dt.date.WithYear(year)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// WithMonth returns dt with the month replaced.
func (dt NaiveDateTime) WithMonth(month int) (NaiveDateTime, error) {
	d, err := dt.date.WithMonth(month)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// WithDay returns dt with the day of the month replaced.
func (dt NaiveDateTime) WithDay(day int) (NaiveDateTime, error) {
	d, err := dt.date.WithDay(day)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// WithOrdinal returns dt with the day of the year replaced.
func (dt NaiveDateTime) WithOrdinal(ordinal int) (NaiveDateTime, error) {
	d, err := dt.date.WithOrdinal(ordinal)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: d, time: dt.time}, nil
}

// WithHour returns dt with the hour replaced.
func (dt NaiveDateTime) WithHour(hour int) (NaiveDateTime, error) {
	t, err := dt.time.WithHour(hour)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: dt.date, time: t}, nil
}

// WithMinute returns dt with the minute replaced.
func (dt NaiveDateTime) WithMinute(min int) (NaiveDateTime, error) {
	t, err := dt.time.WithMinute(min)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: dt.date, time: t}, nil
}

// WithSecond returns dt with the second replaced.
func (dt NaiveDateTime) WithSecond(sec int) (NaiveDateTime, error) {
	t, err := dt.time.WithSecond(sec)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: dt.date, time: t}, nil
}

// WithNanosecond returns dt with the subsecond fraction replaced.
func (dt NaiveDateTime) WithNanosecond(nano int) (NaiveDateTime, error) {
	t, err := dt.time.WithNanosecond(nano)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{date: dt.date, time: t}, nil
}

// AndUTC attaches the UTC offset, reading dt as a UTC date-time.
func (dt NaiveDateTime) AndUTC() DateTime {
	return DateTime{dt: dt, off: FixedOffset{}}
}

// AndLocalTimezone reads dt as local time in tz. A local time skipped by the
// zone fails with ErrDoesNotExist; an ambiguous local time resolves to the
// earliest of its offsets.
func (dt NaiveDateTime) AndLocalTimezone(tz TimeZone) (DateTime, error) {
	m := tz.OffsetFromLocalDateTime(dt)
	off, ok := m.Earliest()
	if !ok {
		return DateTime{}, doesNotExistf("local time %v does not exist in %s", dt, tz.Name())
	}
	utc := dt.overflowingSubOffset(off)
	if !utc.inRange() {
		return DateTime{}, outOfRangef("local time %v in %s is outside the representable range",
			dt, tz.Name())
	}
	return DateTime{dt: utc, off: off}, nil
}

// String renders dt in ISO 8601 format with a space separator,
// "2015-09-05 23:56:04.123".
func (dt NaiveDateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}

// SafeFormat implements redact.SafeFormatter.
func (dt NaiveDateTime) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(dt.String()))
}
