// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// DateTime is an instant in time together with the fixed offset it is viewed
// through. The instant is stored as a UTC NaiveDateTime; the local reading is
// derived on demand.
//
// Two DateTimes compare equal with Cmp when they name the same instant,
// whatever their offsets. The zero value is 0000-01-01 00:00:00 UTC.
type DateTime struct {
	// dt is the UTC reading of the instant.
	dt  NaiveDateTime
	off FixedOffset
}

// NewDateTimeFromTimestamp builds the DateTime at secs seconds and nsecs
// nanoseconds after the Unix epoch, viewed through UTC.
func NewDateTimeFromTimestamp(secs int64, nsecs uint32) (DateTime, error) {
	dt, err := FromTimestamp(secs, nsecs)
	if err != nil {
		return DateTime{}, err
	}
	return dt.AndUTC(), nil
}

// NaiveUTC returns the UTC reading of the instant.
func (z DateTime) NaiveUTC() NaiveDateTime { return z.dt }

// NaiveLocal returns the local reading of the instant. At the very edges of
// the representable range the local reading can fall just outside it; the
// date then clamps to the nearest representable date.
func (z DateTime) NaiveLocal() NaiveDateTime {
	local := z.dt.overflowingAddOffset(z.off)
	if !local.inRange() {
		if local.date.year < MinYear {
			return DateTimeMin
		}
		return DateTimeMax
	}
	return local
}

// Offset returns the fixed offset the instant is viewed through.
func (z DateTime) Offset() FixedOffset { return z.off }

// WithTimezone returns the same instant viewed through another zone.
func (z DateTime) WithTimezone(tz TimeZone) DateTime {
	return DateTime{dt: z.dt, off: tz.OffsetFromUTCDateTime(z.dt)}
}

// Timestamp returns the number of non-leap seconds since the Unix epoch.
func (z DateTime) Timestamp() int64 { return z.dt.Timestamp() }

// TimestampNanos returns the number of non-leap nanoseconds since the Unix
// epoch, failing on int64 overflow.
func (z DateTime) TimestampNanos() (int64, error) { return z.dt.TimestampNanos() }

// Cmp orders by instant: two DateTimes with different offsets naming the
// same instant compare equal.
func (z DateTime) Cmp(other DateTime) int { return z.dt.Cmp(other.dt) }

// CheckedAddSigned shifts the instant by delta.
func (z DateTime) CheckedAddSigned(delta TimeDelta) (DateTime, error) {
	dt, err := z.dt.CheckedAddSigned(delta)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: dt, off: z.off}, nil
}

// CheckedSubSigned shifts the instant backward by delta.
func (z DateTime) CheckedSubSigned(delta TimeDelta) (DateTime, error) {
	dt, err := z.dt.CheckedSubSigned(delta)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: dt, off: z.off}, nil
}

// CheckedAddMonths moves the local calendar date months forward, clamping
// the day of the month, and keeps the local time of day.
func (z DateTime) CheckedAddMonths(months Months) (DateTime, error) {
	local, err := z.NaiveLocal().CheckedAddMonths(months)
	if err != nil {
		return DateTime{}, err
	}
	return local.AndLocalTimezone(z.off)
}

// CheckedSubMonths moves the local calendar date months backward.
func (z DateTime) CheckedSubMonths(months Months) (DateTime, error) {
	local, err := z.NaiveLocal().CheckedSubMonths(months)
	if err != nil {
		return DateTime{}, err
	}
	return local.AndLocalTimezone(z.off)
}

// CheckedAddDays moves the local calendar date days forward.
func (z DateTime) CheckedAddDays(days Days) (DateTime, error) {
	local, err := z.NaiveLocal().CheckedAddDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return local.AndLocalTimezone(z.off)
}

// CheckedSubDays moves the local calendar date days backward.
func (z DateTime) CheckedSubDays(days Days) (DateTime, error) {
	local, err := z.NaiveLocal().CheckedSubDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return local.AndLocalTimezone(z.off)
}

// SignedDurationSince returns the exact span from other to z.
func (z DateTime) SignedDurationSince(other DateTime) TimeDelta {
	return z.dt.SignedDurationSince(other.dt)
}

// FormatRFC3339 renders z per RFC 3339, e.g. "2015-09-05T23:56:04.123+05:00".
// UTC renders its offset as "+00:00".
func (z DateTime) FormatRFC3339() string {
	local := z.NaiveLocal()
	sec := local.Second()
	frac := local.time.frac
	if frac >= nanosPerSec {
		sec++
		frac -= nanosPerSec
	}
	s := fmt.Sprintf("%sT%02d:%02d:%02d",
		local.date.String(), local.Hour(), local.Minute(), sec)
	switch {
	case frac == 0:
	case frac%nanosPerMilli == 0:
		s += fmt.Sprintf(".%03d", frac/nanosPerMilli)
	case frac%nanosPerMicro == 0:
		s += fmt.Sprintf(".%06d", frac/nanosPerMicro)
	default:
		s += fmt.Sprintf(".%09d", frac)
	}
	return s + z.off.String()
}

// FormatRFC2822 renders z per RFC 2822, e.g.
// "Sat, 05 Sep 2015 23:56:04 +0500".
func (z DateTime) FormatRFC2822() string {
	local := z.NaiveLocal()
	sec := local.Second()
	if local.time.frac >= nanosPerSec {
		sec++
	}
	offSecs := z.off.LocalMinusUTC()
	sign := "+"
	if offSecs < 0 {
		sign = "-"
		offSecs = -offSecs
	}
	return fmt.Sprintf("%s, %02d %s %04d %02d:%02d:%02d %s%02d%02d",
		local.Weekday().ShortName(), local.Day(), local.Month().ShortName(),
		local.Year(), local.Hour(), local.Minute(), sec,
		sign, offSecs/3600, offSecs/60%60)
}

// String renders the local reading followed by the offset,
// "2015-09-05 23:56:04 +05:00".
func (z DateTime) String() string {
	return z.NaiveLocal().String() + " " + z.off.String()
}

// SafeFormat implements redact.SafeFormatter.
func (z DateTime) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(z.String()))
}
