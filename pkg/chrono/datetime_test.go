// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func mustDateTime(t *testing.T, year, month, day, hour, min, sec int) NaiveDateTime {
	t.Helper()
	dt, err := mustDate(t, year, month, day).AndHMS(hour, min, sec)
	require.NoError(t, err)
	return dt
}

func TestDateTimeComposition(t *testing.T) {
	dt := mustDateTime(t, 2016, 7, 8, 9, 10, 11)
	require.Equal(t, mustDate(t, 2016, 7, 8), dt.Date())
	require.Equal(t, mustTime(t, 9, 10, 11), dt.Time())
	require.Equal(t, 2016, dt.Year())
	require.Equal(t, July, dt.Month())
	require.Equal(t, 8, dt.Day())
	require.Equal(t, Friday, dt.Weekday())
	require.Equal(t, 9, dt.Hour())
	require.Equal(t, 10, dt.Minute())
	require.Equal(t, 11, dt.Second())
}

func TestDateTimeTimestamp(t *testing.T) {
	require.Equal(t, int64(0), UnixEpochDateTime.Timestamp())

	dt, err := FromTimestamp(1_000_000_000, 0)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2001, 9, 9, 1, 46, 40), dt)
	require.Equal(t, int64(1_000_000_000), dt.Timestamp())

	dt, err = FromTimestamp(-1, 999_999_999)
	require.NoError(t, err)
	require.Equal(t, int64(-1), dt.Timestamp())
	require.Equal(t, 999_999_999, dt.Nanosecond())

	_, err = FromTimestamp(0, 2_000_000_000)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// A time inside a leap second shares its timestamp with the second it
	// extends.
	leapDT, err := mustDate(t, 2015, 6, 30).AndHMSMilli(23, 59, 59, 1_000)
	require.NoError(t, err)
	plain := mustDateTime(t, 2015, 6, 30, 23, 59, 59)
	require.Equal(t, plain.Timestamp(), leapDT.Timestamp())

	ns, err := mustDateTime(t, 2001, 9, 9, 1, 46, 40).TimestampNanos()
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000_000_000_000_000), ns)

	_, err = DateTimeMax.TimestampNanos()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestDateTimeSignedArithmetic(t *testing.T) {
	dt := mustDateTime(t, 2016, 7, 8, 23, 59, 59)

	got, err := dt.CheckedAddSigned(Seconds(2))
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2016, 7, 9, 0, 0, 1), got)

	got, err = got.CheckedSubSigned(Seconds(2))
	require.NoError(t, err)
	require.Equal(t, dt, got)

	_, err = DateTimeMax.CheckedAddSigned(Nanoseconds(1))
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = DateTimeMin.CheckedSubSigned(Nanoseconds(1))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestDateTimeLeapSecondAcrossMidnight(t *testing.T) {
	// 2016-06-30 23:59:60.300, the leap second at the end of June 2016.
	leap, err := mustDate(t, 2016, 6, 30).AndHMSMilli(23, 59, 59, 1_300)
	require.NoError(t, err)

	got, err := leap.CheckedAddSigned(mustMS(t, 800))
	require.NoError(t, err)
	want, err := mustDate(t, 2016, 7, 1).AndHMSMilli(0, 0, 0, 100)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Staying inside the window leaves the date alone.
	got, err = leap.CheckedAddSigned(mustMS(t, 500))
	require.NoError(t, err)
	want, err = mustDate(t, 2016, 6, 30).AndHMSMilli(23, 59, 59, 1_800)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func mustMS(t *testing.T, n int64) TimeDelta {
	t.Helper()
	d, err := Milliseconds(n)
	require.NoError(t, err)
	return d
}

func TestDateTimeCalendarArithmetic(t *testing.T) {
	dt := mustDateTime(t, 2016, 1, 31, 9, 10, 11)

	got, err := dt.CheckedAddMonths(1)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2016, 2, 29, 9, 10, 11), got)

	got, err = dt.CheckedSubMonths(12)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2015, 1, 31, 9, 10, 11), got)

	got, err = dt.CheckedAddDays(29)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2016, 2, 29, 9, 10, 11), got)

	got, err = dt.CheckedSubDays(31)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2015, 12, 31, 9, 10, 11), got)
}

func TestDateTimeOffsetArithmetic(t *testing.T) {
	east, err := FixedOffsetEast(3600)
	require.NoError(t, err)

	// The leap second survives the shift between local and UTC views.
	leap, err := mustDate(t, 2016, 6, 30).AndHMSMilli(23, 59, 59, 1_300)
	require.NoError(t, err)

	shifted, err := leap.CheckedAddOffset(east)
	require.NoError(t, err)
	want, err := mustDate(t, 2016, 7, 1).AndHMSMilli(0, 59, 59, 1_300)
	require.NoError(t, err)
	require.Equal(t, want, shifted)

	back, err := shifted.CheckedSubOffset(east)
	require.NoError(t, err)
	require.Equal(t, leap, back)

	_, err = DateTimeMax.CheckedAddOffset(east)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestDateTimeSignedDurationSince(t *testing.T) {
	a := mustDateTime(t, 2016, 7, 8, 9, 10, 11)
	b := mustDateTime(t, 2016, 7, 7, 9, 10, 11)
	require.Equal(t, DaysDelta(1), a.SignedDurationSince(b))
	require.Equal(t, DaysDelta(-1), b.SignedDurationSince(a))

	// The extreme endpoints are still representable as a span.
	span := DateTimeMax.SignedDurationSince(DateTimeMin)
	require.True(t, span.Cmp(TimeDeltaMax) < 0)
	require.Equal(t, span.Neg(), DateTimeMin.SignedDurationSince(DateTimeMax))
}

func TestDateTimeWith(t *testing.T) {
	dt := mustDateTime(t, 2016, 7, 8, 9, 10, 11)

	got, err := dt.WithYear(2020)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2020, 7, 8, 9, 10, 11), got)

	got, err = dt.WithHour(23)
	require.NoError(t, err)
	require.Equal(t, mustDateTime(t, 2016, 7, 8, 23, 10, 11), got)

	_, err = dt.WithMonth(13)
	require.ErrorIs(t, err, ErrInvalidArgument)

	got, err = dt.WithNanosecond(1_500_000_000)
	require.NoError(t, err)
	require.Equal(t, 1_500_000_000, got.Nanosecond())
}

func TestDateTimePanickingOps(t *testing.T) {
	require.Panics(t, func() { DateTimeMax.Add(Seconds(1)) })
	require.Panics(t, func() { DateTimeMin.Sub(Seconds(1)) })
	require.Panics(t, func() { DateTimeMax.AddMonths(1) })
	require.Panics(t, func() { DateTimeMax.AddDays(1) })

	dt := mustDateTime(t, 2016, 7, 8, 9, 10, 11)
	require.Equal(t, mustDateTime(t, 2016, 7, 8, 9, 10, 12), dt.Add(Seconds(1)))
}

func TestDateTimeString(t *testing.T) {
	require.Equal(t, "2016-07-08 09:10:11", mustDateTime(t, 2016, 7, 8, 9, 10, 11).String())
	leap, err := mustDate(t, 2015, 6, 30).AndHMSMilli(23, 59, 59, 1_300)
	require.NoError(t, err)
	require.Equal(t, "2015-06-30 23:59:60.300", leap.String())
}

func TestDateTimeProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(params)

	properties.Property("timestamps round-trip", prop.ForAll(
		func(ts int64) bool {
			dt, err := FromTimestamp(ts, 0)
			if err != nil {
				return false
			}
			return dt.Timestamp() == ts
		},
		gen.Int64Range(DateTimeMin.Timestamp(), DateTimeMax.Timestamp()),
	))

	properties.Property("signed duration since inverts addition", prop.ForAll(
		func(tsA, tsB int64) bool {
			a, err := FromTimestamp(tsA, 0)
			if err != nil {
				return false
			}
			b, err := FromTimestamp(tsB, 0)
			if err != nil {
				return false
			}
			span := a.SignedDurationSince(b)
			back, err := b.CheckedAddSigned(span)
			return err == nil && back == a
		},
		gen.Int64Range(DateTimeMin.Timestamp(), DateTimeMax.Timestamp()),
		gen.Int64Range(DateTimeMin.Timestamp(), DateTimeMax.Timestamp()),
	))

	properties.TestingRun(t)
}
