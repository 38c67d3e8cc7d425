// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"math"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestNewTimeDelta(t *testing.T) {
	d, err := NewTimeDelta(1, 500_000_000)
	require.NoError(t, err)
	require.Equal(t, int64(1), d.NumSeconds())
	require.Equal(t, int32(500_000_000), d.SubsecNanos())

	_, err = NewTimeDelta(0, 1_000_000_000)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTimeDelta(math.MaxInt64, 0)
	require.ErrorIs(t, err, ErrOutOfRange)

	// The extremes themselves construct fine.
	d, err = NewTimeDelta(math.MaxInt64/1000, 807_000_000)
	require.NoError(t, err)
	require.Equal(t, TimeDeltaMax, d)
	d, err = NewTimeDelta(-math.MaxInt64/1000-1, 193_000_000)
	require.NoError(t, err)
	require.Equal(t, TimeDeltaMin, d)

	_, err = NewTimeDelta(math.MaxInt64/1000, 807_000_001)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = NewTimeDelta(-math.MaxInt64/1000-1, 192_999_999)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeDeltaTruncatingAccessors(t *testing.T) {
	// Negative spans truncate toward zero, not toward negative infinity.
	d := Nanoseconds(-1_500_000_000)
	require.Equal(t, int64(-1), d.NumSeconds())
	require.Equal(t, int32(-500_000_000), d.SubsecNanos())
	require.Equal(t, int64(-1500), d.NumMilliseconds())

	d = Nanoseconds(1_500_000_000)
	require.Equal(t, int64(1), d.NumSeconds())
	require.Equal(t, int32(500_000_000), d.SubsecNanos())

	require.Equal(t, int64(1), DaysDelta(1).NumDays())
	require.Equal(t, int64(0), Hours(23).NumDays())
	require.Equal(t, int64(-2), Hours(-50).NumDays())
	require.Equal(t, int64(2), Weeks(2).NumWeeks())
	require.Equal(t, int64(90), Minutes(90).NumMinutes())
}

func TestTimeDeltaUnitConstructors(t *testing.T) {
	require.Equal(t, int64(604800), Weeks(1).NumSeconds())
	require.Equal(t, int64(86400), DaysDelta(1).NumSeconds())
	require.Equal(t, int64(3600), Hours(1).NumSeconds())

	d, err := Milliseconds(math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, TimeDeltaMax, d)
	require.Equal(t, int64(math.MaxInt64), d.NumMilliseconds())

	_, err = Milliseconds(math.MinInt64)
	require.ErrorIs(t, err, ErrOutOfRange)

	d, err = Milliseconds(-math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, TimeDeltaMin, d)

	require.Equal(t, Microseconds(-1), Nanoseconds(-1000))
	require.True(t, Seconds(0).IsZero())
	require.False(t, Nanoseconds(1).IsZero())
}

func TestTimeDeltaCheckedArithmetic(t *testing.T) {
	half, err := Milliseconds(500)
	require.NoError(t, err)

	sum, ok := Seconds(1).CheckedAdd(half)
	require.True(t, ok)
	require.Equal(t, int64(1500), sum.NumMilliseconds())

	_, ok = TimeDeltaMax.CheckedAdd(Nanoseconds(1))
	require.False(t, ok)
	_, ok = TimeDeltaMin.CheckedSub(Nanoseconds(1))
	require.False(t, ok)

	diff, ok := Seconds(1).CheckedSub(half)
	require.True(t, ok)
	require.Equal(t, half, diff)

	prod, ok := half.CheckedMul(3)
	require.True(t, ok)
	require.Equal(t, int64(1500), prod.NumMilliseconds())

	// Negative spans normalize through the carry.
	neg, err := Milliseconds(-500)
	require.NoError(t, err)
	prod, ok = neg.CheckedMul(3)
	require.True(t, ok)
	require.Equal(t, int64(-1500), prod.NumMilliseconds())

	_, ok = TimeDeltaMax.CheckedMul(2)
	require.False(t, ok)
}

func TestTimeDeltaDiv(t *testing.T) {
	q := Seconds(13).Div(4)
	require.Equal(t, int64(3250), q.NumMilliseconds())
	q = Seconds(-13).Div(4)
	require.Equal(t, int64(-3250), q.NumMilliseconds())
	q = Seconds(13).Div(-4)
	require.Equal(t, int64(-3250), q.NumMilliseconds())
	require.Panics(t, func() { Seconds(1).Div(0) })
}

func TestTimeDeltaNegAbs(t *testing.T) {
	require.Equal(t, TimeDeltaMin, TimeDeltaMax.Neg())
	require.Equal(t, TimeDeltaMax, TimeDeltaMin.Neg())
	require.Equal(t, TimeDeltaMax, TimeDeltaMin.Abs())

	d := Nanoseconds(-1_500_000_000)
	require.Equal(t, Nanoseconds(1_500_000_000), d.Neg())
	require.Equal(t, Nanoseconds(1_500_000_000), d.Abs())
	require.Equal(t, d, d.Neg().Neg())
}

func TestTimeDeltaOverflowingCounts(t *testing.T) {
	_, err := TimeDeltaMax.NumNanoseconds()
	require.ErrorIs(t, err, ErrOutOfRange)

	ns, err := Nanoseconds(math.MaxInt64).NumNanoseconds()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), ns)

	us, err := Microseconds(math.MaxInt64).NumMicroseconds()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), us)

	_, err = TimeDeltaMax.NumMicroseconds()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeDeltaStdConversion(t *testing.T) {
	d := FromStd(1500 * time.Millisecond)
	require.Equal(t, int64(1500), d.NumMilliseconds())

	std, err := d.ToStd()
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, std)

	std, err = FromStd(math.MinInt64).ToStd()
	require.NoError(t, err)
	require.Equal(t, time.Duration(math.MinInt64), std)

	_, err = TimeDeltaMax.ToStd()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeDeltaString(t *testing.T) {
	ms := func(n int64) TimeDelta {
		d, err := Milliseconds(n)
		require.NoError(t, err)
		return d
	}
	testCases := []struct {
		d        TimeDelta
		expected string
	}{
		{Seconds(0), "P0D"},
		{Seconds(42), "PT42S"},
		{Seconds(-42), "-PT42S"},
		{Seconds(86401), "PT86401S"},
		{Seconds(-86401), "-PT86401S"},
		{DaysDelta(42), "PT3628800S"},
		{ms(1500), "PT1.5S"},
		{ms(42), "PT0.042S"},
		{ms(-500), "-PT0.5S"},
		{Microseconds(42), "PT0.000042S"},
		{Nanoseconds(42), "PT0.000000042S"},
		{Nanoseconds(-86400_000_000_001), "-PT86400.000000001S"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, tc.d.String())
	}
}

func TestTimeDeltaDecimalSeconds(t *testing.T) {
	d, err := Milliseconds(-1500)
	require.NoError(t, err)
	dec := d.AsDecimalSeconds()
	require.Equal(t, 0, dec.Cmp(apd.New(-15, -1)))

	back, err := FromDecimalSeconds(dec)
	require.NoError(t, err)
	require.Equal(t, d, back)

	dec, _, err = apd.NewFromString("1.25")
	require.NoError(t, err)
	back, err = FromDecimalSeconds(dec)
	require.NoError(t, err)
	require.Equal(t, int64(1250), back.NumMilliseconds())

	// Extra precision rounds to the nearest nanosecond.
	dec, _, err = apd.NewFromString("0.00000000051")
	require.NoError(t, err)
	back, err = FromDecimalSeconds(dec)
	require.NoError(t, err)
	require.Equal(t, Nanoseconds(1), back)

	dec, _, err = apd.NewFromString("1e30")
	require.NoError(t, err)
	_, err = FromDecimalSeconds(dec)
	require.ErrorIs(t, err, ErrOutOfRange)

	var inf apd.Decimal
	inf.Form = apd.Infinite
	_, err = FromDecimalSeconds(&inf)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimeDeltaPanickingOps(t *testing.T) {
	require.Panics(t, func() { TimeDeltaMax.Add(Nanoseconds(1)) })
	require.Panics(t, func() { TimeDeltaMin.Sub(Nanoseconds(1)) })
	require.Panics(t, func() { TimeDeltaMax.Mul(2) })
	require.Equal(t, Seconds(3), Seconds(1).Add(Seconds(2)))
}

func TestTimeDeltaErrorClasses(t *testing.T) {
	_, err := NewTimeDelta(math.MaxInt64, 0)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestTimeDeltaProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(params)

	properties.Property("nanosecond count round-trips", prop.ForAll(
		func(ns int64) bool {
			got, err := Nanoseconds(ns).NumNanoseconds()
			return err == nil && got == ns
		},
		gen.Int64(),
	))

	properties.Property("negation is an involution", prop.ForAll(
		func(ns int64) bool {
			d := Nanoseconds(ns)
			return d.Neg().Neg() == d
		},
		gen.Int64(),
	))

	properties.Property("negation reflects order", prop.ForAll(
		func(a, b int64) bool {
			da, db := Nanoseconds(a), Nanoseconds(b)
			return da.Cmp(db) == -da.Neg().Cmp(db.Neg())
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("checked add undoes with checked sub", prop.ForAll(
		func(a, b int64) bool {
			da, db := Nanoseconds(a), Nanoseconds(b)
			sum, ok := da.CheckedAdd(db)
			if !ok {
				return true
			}
			back, ok := sum.CheckedSub(db)
			return ok && back == da
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("decimal seconds round-trip", prop.ForAll(
		func(ns int64) bool {
			d := Nanoseconds(ns)
			back, err := FromDecimalSeconds(d.AsDecimalSeconds())
			return err == nil && back == d
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
