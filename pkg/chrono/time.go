// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"fmt"

	"github.com/chrono-go/chrono/pkg/util/arith"
)

// NaiveTime is a time of day with nanosecond precision and support for leap
// seconds, but without a date or time zone.
//
// A leap second is expressed as a subsecond fraction of one second or more:
// 23:59:60.5 is built as second 59 with 1.5e9 nanoseconds. Arithmetic treats
// a time inside a leap second as sitting at the end of its ordinary second,
// so spans measured across a leap second do not count the extra second
// unless both endpoints know about it.
//
// NaiveTime is a value type and may be compared with ==; note that == on a
// leap second and the following second differ even though arithmetic treats
// them as simultaneous. The zero value is midnight.
type NaiveTime struct {
	// secs is the second of the day, 0..=86399. frac is the nanosecond
	// fraction, 0..=1_999_999_999; values of one second and above place
	// the time inside the leap second following secs.
	secs uint32
	frac uint32
}

// The nanosecond fraction may run up to but not include two full seconds,
// leaving room for a fraction on top of a leap second.
const maxLeapNanos = 2 * nanosPerSec

// TimeFromNumSecondsFromMidnight builds a time of day from a second of the
// day below 86400 and a nanosecond fraction below 2e9.
func TimeFromNumSecondsFromMidnight(secs int, frac int) (NaiveTime, error) {
	if secs < 0 || secs >= secsPerDay {
		return NaiveTime{}, invalidArgumentf("second of day %d is not in 0..=86399", secs)
	}
	if frac < 0 || frac >= maxLeapNanos {
		return NaiveTime{}, invalidArgumentf(
			"nanosecond fraction %d is two full seconds or more", frac)
	}
	return NaiveTime{secs: uint32(secs), frac: uint32(frac)}, nil
}

// TimeFromHMS builds a time of day from hour, minute and second.
func TimeFromHMS(hour, min, sec int) (NaiveTime, error) {
	return TimeFromHMSNano(hour, min, sec, 0)
}

// TimeFromHMSMilli builds a time of day with a millisecond fraction. milli
// may reach 1999 to land inside a leap second.
func TimeFromHMSMilli(hour, min, sec, milli int) (NaiveTime, error) {
	if milli < 0 || milli >= 2*millisPerSec {
		return NaiveTime{}, invalidArgumentf("millisecond %d is not in 0..=1999", milli)
	}
	return TimeFromHMSNano(hour, min, sec, milli*nanosPerMilli)
}

// TimeFromHMSMicro builds a time of day with a microsecond fraction. micro
// may reach 1999999 to land inside a leap second.
func TimeFromHMSMicro(hour, min, sec, micro int) (NaiveTime, error) {
	if micro < 0 || micro >= 2*microsPerSec {
		return NaiveTime{}, invalidArgumentf("microsecond %d is not in 0..=1999999", micro)
	}
	return TimeFromHMSNano(hour, min, sec, micro*nanosPerMicro)
}

// TimeFromHMSNano builds a time of day with a nanosecond fraction. nano may
// reach 1999999999 to land inside a leap second.
func TimeFromHMSNano(hour, min, sec, nano int) (NaiveTime, error) {
	if hour < 0 || hour > 23 {
		return NaiveTime{}, invalidArgumentf("hour number %d is not in 0..=23", hour)
	}
	if min < 0 || min > 59 {
		return NaiveTime{}, invalidArgumentf("minute number %d is not in 0..=59", min)
	}
	if sec < 0 || sec > 59 {
		return NaiveTime{}, invalidArgumentf("second number %d is not in 0..=59", sec)
	}
	if nano < 0 || nano >= maxLeapNanos {
		return NaiveTime{}, invalidArgumentf(
			"nanosecond fraction %d is two full seconds or more", nano)
	}
	return NaiveTime{
		secs: uint32(hour*secsPerHour + min*secsPerMinute + sec),
		frac: uint32(nano),
	}, nil
}

// Hour returns the hour, 0 through 23.
func (t NaiveTime) Hour() int { return int(t.secs) / secsPerHour }

// Minute returns the minute, 0 through 59.
func (t NaiveTime) Minute() int { return int(t.secs) / secsPerMinute % 60 }

// Second returns the second, 0 through 59. A time inside a leap second
// reports second 59; use Nanosecond to observe the leap.
func (t NaiveTime) Second() int { return int(t.secs) % 60 }

// Nanosecond returns the subsecond fraction in nanoseconds. A value of 1e9
// or above places the time inside a leap second.
func (t NaiveTime) Nanosecond() int { return int(t.frac) }

// NumSecondsFromMidnight returns the second of the day, 0 through 86399.
// Leap seconds do not count.
func (t NaiveTime) NumSecondsFromMidnight() int { return int(t.secs) }

// Cmp returns -1, 0, or 1 according to whether t is before, equal to, or
// after other. A leap second orders after the plain second it extends.
func (t NaiveTime) Cmp(other NaiveTime) int {
	if t.secs != other.secs {
		if t.secs < other.secs {
			return -1
		}
		return 1
	}
	if t.frac != other.frac {
		if t.frac < other.frac {
			return -1
		}
		return 1
	}
	return 0
}

// overflowingAddSigned returns t shifted by delta along with the seconds of
// day carry, always a multiple of 86400. The carry lets date-time arithmetic
// move the date by whole days.
//
// A time inside a leap second stays inside it while the shifted fraction
// still lands in the leap second window. A shift that leaves the window
// escapes forward or backward into ordinary time: forward, the leap second
// has fully played out and counts for nothing extra; backward, it counts as
// one elapsed second.
func (t NaiveTime) overflowingAddSigned(delta TimeDelta) (NaiveTime, int64) {
	secs := int64(t.secs)
	frac := int64(t.frac)
	deltaSecs := delta.NumSeconds()
	deltaNanos := int64(delta.SubsecNanos())

	if frac >= nanosPerSec {
		// Inside a leap second.
		switch {
		case deltaSecs >= -1 && deltaSecs <= 1:
			f := frac + deltaNanos + deltaSecs*nanosPerSec
			if f >= nanosPerSec && f < maxLeapNanos {
				return NaiveTime{secs: t.secs, frac: uint32(f)}, 0
			}
			if f >= maxLeapNanos {
				// Forward escape: the leap second has elapsed.
				frac -= nanosPerSec
			} else {
				// Backward escape: the leap second counts as one second.
				secs++
				frac -= nanosPerSec
			}
		case deltaSecs >= 2:
			frac -= nanosPerSec
		default:
			secs++
			frac -= nanosPerSec
		}
	}

	frac += deltaNanos
	if frac < 0 {
		frac += nanosPerSec
		secs--
	} else if frac >= nanosPerSec {
		frac -= nanosPerSec
		secs++
	}
	secs += deltaSecs
	carry := arith.FloorDiv(secs, secsPerDay)
	secs -= carry * secsPerDay
	return NaiveTime{secs: uint32(secs), frac: uint32(frac)}, carry * secsPerDay
}

func (t NaiveTime) overflowingSubSigned(delta TimeDelta) (NaiveTime, int64) {
	r, carry := t.overflowingAddSigned(delta.Neg())
	return r, -carry
}

// overflowingAddOffset shifts t east by a fixed offset, returning the day
// carry in seconds, always -86400, 0, or 86400. The subsecond fraction is
// untouched, so a leap second survives the shift.
func (t NaiveTime) overflowingAddOffset(off FixedOffset) (NaiveTime, int64) {
	secs := int64(t.secs) + int64(off.LocalMinusUTC())
	carry := arith.FloorDiv(secs, secsPerDay)
	secs -= carry * secsPerDay
	return NaiveTime{secs: uint32(secs), frac: t.frac}, carry * secsPerDay
}

func (t NaiveTime) overflowingSubOffset(off FixedOffset) (NaiveTime, int64) {
	secs := int64(t.secs) - int64(off.LocalMinusUTC())
	carry := arith.FloorDiv(secs, secsPerDay)
	secs -= carry * secsPerDay
	return NaiveTime{secs: uint32(secs), frac: t.frac}, carry * secsPerDay
}

// SignedDurationSince returns the exact span from other to t. It is total:
// any two times of day are at most a day apart. A leap second is counted
// only when an endpoint sits inside it; on a span across 23:59:60 built
// from ordinary endpoints the extra second is invisible.
func (t NaiveTime) SignedDurationSince(other NaiveTime) TimeDelta {
	secs := int64(t.secs) - int64(other.secs)
	frac := int64(t.frac) - int64(other.frac)

	var adjust int64
	if t.secs > other.secs && other.frac >= nanosPerSec {
		adjust = 1
	} else if t.secs < other.secs && t.frac >= nanosPerSec {
		adjust = -1
	}
	return TimeDelta{secs: secs + adjust}.Add(Nanoseconds(frac))
}

// WithHour returns t with the hour replaced.
func (t NaiveTime) WithHour(hour int) (NaiveTime, error) {
	if hour < 0 || hour > 23 {
		return NaiveTime{}, invalidArgumentf("hour number %d is not in 0..=23", hour)
	}
	return NaiveTime{secs: uint32(hour*secsPerHour + int(t.secs)%secsPerHour), frac: t.frac}, nil
}

// WithMinute returns t with the minute replaced.
func (t NaiveTime) WithMinute(min int) (NaiveTime, error) {
	if min < 0 || min > 59 {
		return NaiveTime{}, invalidArgumentf("minute number %d is not in 0..=59", min)
	}
	secs := t.Hour()*secsPerHour + min*secsPerMinute + t.Second()
	return NaiveTime{secs: uint32(secs), frac: t.frac}, nil
}

// WithSecond returns t with the second replaced. Leap seconds are reached
// through WithNanosecond, not here.
func (t NaiveTime) WithSecond(sec int) (NaiveTime, error) {
	if sec < 0 || sec > 59 {
		return NaiveTime{}, invalidArgumentf("second number %d is not in 0..=59", sec)
	}
	secs := int(t.secs) - t.Second() + sec
	return NaiveTime{secs: uint32(secs), frac: t.frac}, nil
}

// WithNanosecond returns t with the subsecond fraction replaced. nano may
// reach 1999999999 to move the time into a leap second.
func (t NaiveTime) WithNanosecond(nano int) (NaiveTime, error) {
	if nano < 0 || nano >= maxLeapNanos {
		return NaiveTime{}, invalidArgumentf(
			"nanosecond fraction %d is two full seconds or more", nano)
	}
	return NaiveTime{secs: t.secs, frac: uint32(nano)}, nil
}

// String renders t as "23:56:04" or "23:56:04.012", printing second 60
// inside a leap second.
func (t NaiveTime) String() string {
	sec := t.Second()
	frac := t.frac
	if frac >= nanosPerSec {
		sec++
		frac -= nanosPerSec
	}
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), sec)
	switch {
	case frac == 0:
	case frac%nanosPerMilli == 0:
		s += fmt.Sprintf(".%03d", frac/nanosPerMilli)
	case frac%nanosPerMicro == 0:
		s += fmt.Sprintf(".%06d", frac/nanosPerMicro)
	default:
		s += fmt.Sprintf(".%09d", frac)
	}
	return s
}
