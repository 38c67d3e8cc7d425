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

func mustTime(t *testing.T, hour, min, sec int) NaiveTime {
	t.Helper()
	tm, err := TimeFromHMS(hour, min, sec)
	require.NoError(t, err)
	return tm
}

func mustTimeMilli(t *testing.T, hour, min, sec, milli int) NaiveTime {
	t.Helper()
	tm, err := TimeFromHMSMilli(hour, min, sec, milli)
	require.NoError(t, err)
	return tm
}

func TestTimeConstructors(t *testing.T) {
	tm := mustTime(t, 23, 56, 4)
	require.Equal(t, 23, tm.Hour())
	require.Equal(t, 56, tm.Minute())
	require.Equal(t, 4, tm.Second())
	require.Equal(t, 0, tm.Nanosecond())
	require.Equal(t, 23*3600+56*60+4, tm.NumSecondsFromMidnight())

	_, err := TimeFromHMS(24, 0, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = TimeFromHMS(23, 60, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = TimeFromHMS(23, 0, 60)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Leap seconds come in through the subsecond fraction.
	leap := mustTimeMilli(t, 23, 59, 59, 1_000)
	require.Equal(t, 59, leap.Second())
	require.Equal(t, 1_000_000_000, leap.Nanosecond())

	_, err = TimeFromHMSMilli(23, 59, 59, 2_000)
	require.ErrorIs(t, err, ErrInvalidArgument)

	tm, err = TimeFromNumSecondsFromMidnight(86399, 1_999_999_999)
	require.NoError(t, err)
	require.Equal(t, 59, tm.Second())
	_, err = TimeFromNumSecondsFromMidnight(86400, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimeLeapSecondArithmetic(t *testing.T) {
	ms := func(n int64) TimeDelta {
		d, err := Milliseconds(n)
		require.NoError(t, err)
		return d
	}
	// 03:05:60.300, inside a leap second.
	leap := mustTimeMilli(t, 3, 5, 59, 1_300)

	testCases := []struct {
		delta    TimeDelta
		expected NaiveTime
		carry    int64
	}{
		// Shifts that stay inside the leap second window.
		{Seconds(0), leap, 0},
		{ms(500), mustTimeMilli(t, 3, 5, 59, 1_800), 0},
		// Forward escape: the leap second has fully played out.
		{ms(800), mustTimeMilli(t, 3, 6, 0, 100), 0},
		{Seconds(10), mustTimeMilli(t, 3, 6, 9, 300), 0},
		// Backward escape: the leap second counts as one elapsed second.
		{ms(-500), mustTimeMilli(t, 3, 5, 59, 800), 0},
		{Seconds(-10), mustTimeMilli(t, 3, 5, 50, 300), 0},
	}
	for _, tc := range testCases {
		got, carry := leap.overflowingAddSigned(tc.delta)
		require.Equal(t, tc.expected, got, "+%v", tc.delta)
		require.Equal(t, tc.carry, carry, "+%v", tc.delta)
	}
}

func TestTimeOrdinaryArithmetic(t *testing.T) {
	got, carry := mustTime(t, 3, 5, 7).overflowingAddSigned(Seconds(3600 + 60 + 1))
	require.Equal(t, mustTime(t, 4, 6, 8), got)
	require.Equal(t, int64(0), carry)

	// Wrapping reports the day boundary crossings as a second carry.
	got, carry = mustTime(t, 23, 59, 59).overflowingAddSigned(Seconds(1))
	require.Equal(t, mustTime(t, 0, 0, 0), got)
	require.Equal(t, int64(86400), carry)

	got, carry = mustTime(t, 0, 0, 0).overflowingAddSigned(Nanoseconds(-1))
	require.Equal(t, 59, got.Second())
	require.Equal(t, 999_999_999, got.Nanosecond())
	require.Equal(t, int64(-86400), carry)

	got, carry = mustTime(t, 12, 0, 0).overflowingAddSigned(Hours(36))
	require.Equal(t, mustTime(t, 0, 0, 0), got)
	require.Equal(t, int64(2*86400), carry)

	got, carry = mustTime(t, 12, 0, 0).overflowingSubSigned(Hours(13))
	require.Equal(t, mustTime(t, 23, 0, 0), got)
	require.Equal(t, int64(86400), carry)
}

func TestTimeOffsetArithmeticKeepsLeap(t *testing.T) {
	east := func(secs int) FixedOffset {
		off, err := FixedOffsetEast(secs)
		require.NoError(t, err)
		return off
	}
	leap := mustTimeMilli(t, 23, 59, 59, 1_300)

	got, carry := leap.overflowingAddOffset(east(3600))
	require.Equal(t, 0, got.Hour())
	require.Equal(t, 59, got.Minute())
	require.Equal(t, 59, got.Second())
	require.Equal(t, 1_300_000_000, got.Nanosecond())
	require.Equal(t, int64(86400), carry)

	back, carry := got.overflowingSubOffset(east(3600))
	require.Equal(t, leap, back)
	require.Equal(t, int64(-86400), carry)
}

func TestTimeSignedDurationSince(t *testing.T) {
	require.Equal(t, Seconds(3661),
		mustTime(t, 3, 5, 7).SignedDurationSince(mustTime(t, 2, 4, 6)))
	require.Equal(t, Seconds(-3661),
		mustTime(t, 2, 4, 6).SignedDurationSince(mustTime(t, 3, 5, 7)))

	// A leap second counts when an endpoint sits inside it.
	ms := func(n int64) TimeDelta {
		d, err := Milliseconds(n)
		require.NoError(t, err)
		return d
	}
	leap := mustTimeMilli(t, 3, 5, 59, 1_500)
	require.Equal(t, ms(60_500), leap.SignedDurationSince(mustTime(t, 3, 5, 0)))
	require.Equal(t, ms(1_500), mustTime(t, 3, 6, 1).SignedDurationSince(leap))

	// Spans between ordinary endpoints never see the leap second.
	require.Equal(t, Seconds(61),
		mustTime(t, 3, 6, 1).SignedDurationSince(mustTime(t, 3, 5, 0)))
}

func TestTimeWith(t *testing.T) {
	tm := mustTime(t, 23, 56, 4)

	got, err := tm.WithHour(7)
	require.NoError(t, err)
	require.Equal(t, mustTime(t, 7, 56, 4), got)

	got, err = tm.WithMinute(45)
	require.NoError(t, err)
	require.Equal(t, mustTime(t, 23, 45, 4), got)

	got, err = tm.WithSecond(17)
	require.NoError(t, err)
	require.Equal(t, mustTime(t, 23, 56, 17), got)

	got, err = tm.WithNanosecond(1_333_333_333)
	require.NoError(t, err)
	require.Equal(t, 1_333_333_333, got.Nanosecond())

	_, err = tm.WithHour(24)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tm.WithSecond(60)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tm.WithNanosecond(2_000_000_000)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimeString(t *testing.T) {
	require.Equal(t, "23:56:04", mustTime(t, 23, 56, 4).String())
	require.Equal(t, "23:56:04.012", mustTimeMilli(t, 23, 56, 4, 12).String())
	require.Equal(t, "06:09:06.050", mustTimeMilli(t, 6, 9, 6, 50).String())
	// Leap seconds print as second 60.
	require.Equal(t, "23:59:60.300", mustTimeMilli(t, 23, 59, 59, 1_300).String())
	tm, err := TimeFromHMSNano(0, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "00:00:00.000000001", tm.String())
}

func TestTimeProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(params)

	genTime := gopter.CombineGens(
		gen.IntRange(0, 86399), gen.IntRange(0, 999_999_999),
	).Map(func(vals []interface{}) NaiveTime {
		tm, _ := TimeFromNumSecondsFromMidnight(vals[0].(int), vals[1].(int))
		return tm
	})

	properties.Property("signed duration since is total and anti-symmetric", prop.ForAll(
		func(a, b NaiveTime) bool {
			d := a.SignedDurationSince(b)
			return d.Neg() == b.SignedDurationSince(a)
		},
		genTime, genTime,
	))

	properties.Property("add then subtract returns to the start", prop.ForAll(
		func(tm NaiveTime, deltaNs int64) bool {
			d := Nanoseconds(deltaNs)
			moved, _ := tm.overflowingAddSigned(d)
			back, _ := moved.overflowingSubSigned(d)
			return back == tm
		},
		genTime, gen.Int64Range(-1e15, 1e15),
	))

	properties.TestingRun(t)
}
