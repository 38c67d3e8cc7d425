// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/chrono-go/chrono/pkg/util/arith"
	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

const (
	nanosPerSec   = 1_000_000_000
	nanosPerMilli = 1_000_000
	nanosPerMicro = 1_000
	millisPerSec  = 1_000
	microsPerSec  = 1_000_000

	secsPerMinute = 60
	secsPerHour   = 3600
	secsPerDay    = 86400
	secsPerWeek   = 7 * secsPerDay
)

// TimeDelta is an exact, signed span of time with nanosecond precision. It
// carries no calendrical meaning: a TimeDelta of 86400 seconds is exactly
// that many seconds, not "one day".
//
// The representable range is exactly +/- math.MaxInt64 milliseconds. The
// range is symmetric, so negation and absolute value never fail.
//
// TimeDelta is a value type and may be copied and compared with ==. The zero
// value is a zero-length span.
type TimeDelta struct {
	// Invariant: 0 <= nanos < nanosPerSec regardless of the sign of the
	// overall value. A span of -0.5 seconds is {secs: -1, nanos: 5e8}.
	secs  int64
	nanos int32
}

var (
	// TimeDeltaMin is the most negative representable TimeDelta, exactly
	// -math.MaxInt64 milliseconds.
	TimeDeltaMin = TimeDelta{
		secs:  -math.MaxInt64/millisPerSec - 1,
		nanos: nanosPerSec - math.MaxInt64%millisPerSec*nanosPerMilli,
	}
	// TimeDeltaMax is the most positive representable TimeDelta, exactly
	// math.MaxInt64 milliseconds.
	TimeDeltaMax = TimeDelta{
		secs:  math.MaxInt64 / millisPerSec,
		nanos: math.MaxInt64 % millisPerSec * nanosPerMilli,
	}
)

func deltaInRange(secs int64, nanos int32) bool {
	if secs < TimeDeltaMin.secs || secs > TimeDeltaMax.secs {
		return false
	}
	if secs == TimeDeltaMax.secs && nanos > TimeDeltaMax.nanos {
		return false
	}
	if secs == TimeDeltaMin.secs && nanos < TimeDeltaMin.nanos {
		return false
	}
	return true
}

// NewTimeDelta builds a TimeDelta of secs seconds plus nanos nanoseconds.
// nanos is a non-negative fraction below one second even when secs is
// negative, so the overall value is always secs + nanos*1e-9 seconds.
func NewTimeDelta(secs int64, nanos uint32) (TimeDelta, error) {
	if nanos >= nanosPerSec {
		return TimeDelta{}, invalidArgumentf(
			"nanosecond fraction %d is a full second or more", nanos)
	}
	if !deltaInRange(secs, int32(nanos)) {
		return TimeDelta{}, outOfRangef(
			"%d seconds is outside the representable span", secs)
	}
	return TimeDelta{secs: secs, nanos: int32(nanos)}, nil
}

// Weeks returns a TimeDelta of n weeks of 604800 seconds each.
func Weeks(n int32) TimeDelta { return TimeDelta{secs: int64(n) * secsPerWeek} }

// DaysDelta returns a TimeDelta of n days of exactly 86400 seconds each. For
// calendar-aware day arithmetic use the Days count type instead.
func DaysDelta(n int32) TimeDelta { return TimeDelta{secs: int64(n) * secsPerDay} }

// Hours returns a TimeDelta of n hours.
func Hours(n int32) TimeDelta { return TimeDelta{secs: int64(n) * secsPerHour} }

// Minutes returns a TimeDelta of n minutes.
func Minutes(n int32) TimeDelta { return TimeDelta{secs: int64(n) * secsPerMinute} }

// Seconds returns a TimeDelta of n seconds.
func Seconds(n int32) TimeDelta { return TimeDelta{secs: int64(n)} }

// Milliseconds returns a TimeDelta of n milliseconds. It fails only for
// math.MinInt64, the single millisecond count outside the range.
func Milliseconds(n int64) (TimeDelta, error) {
	if n == math.MinInt64 {
		return TimeDelta{}, outOfRangef("%d milliseconds is outside the representable span", n)
	}
	secs := arith.FloorDiv(n, millisPerSec)
	millis := n - secs*millisPerSec
	return TimeDelta{secs: secs, nanos: int32(millis) * nanosPerMilli}, nil
}

// Microseconds returns a TimeDelta of n microseconds.
func Microseconds(n int64) TimeDelta {
	secs := arith.FloorDiv(n, microsPerSec)
	micros := n - secs*microsPerSec
	return TimeDelta{secs: secs, nanos: int32(micros) * nanosPerMicro}
}

// Nanoseconds returns a TimeDelta of n nanoseconds.
func Nanoseconds(n int64) TimeDelta {
	secs := arith.FloorDiv(n, nanosPerSec)
	nanos := n - secs*nanosPerSec
	return TimeDelta{secs: secs, nanos: int32(nanos)}
}

// FromStd converts a time.Duration. Every time.Duration is in range, so the
// conversion is total.
func FromStd(d time.Duration) TimeDelta { return Nanoseconds(int64(d)) }

// ToStd converts t to a time.Duration, failing when the total nanosecond
// count overflows int64.
func (t TimeDelta) ToStd() (time.Duration, error) {
	ns, err := t.NumNanoseconds()
	if err != nil {
		return 0, err
	}
	return time.Duration(ns), nil
}

// NumWeeks returns the number of whole weeks in t, truncated toward zero.
func (t TimeDelta) NumWeeks() int64 { return t.NumDays() / 7 }

// NumDays returns the number of whole 86400-second days in t, truncated
// toward zero.
func (t TimeDelta) NumDays() int64 { return t.NumSeconds() / secsPerDay }

// NumHours returns the number of whole hours in t, truncated toward zero.
func (t TimeDelta) NumHours() int64 { return t.NumSeconds() / secsPerHour }

// NumMinutes returns the number of whole minutes in t, truncated toward zero.
func (t TimeDelta) NumMinutes() int64 { return t.NumSeconds() / secsPerMinute }

// NumSeconds returns the number of whole seconds in t, truncated toward
// zero: a span of -1.5 seconds reports -1.
func (t TimeDelta) NumSeconds() int64 {
	if t.secs < 0 && t.nanos > 0 {
		return t.secs + 1
	}
	return t.secs
}

// SubsecNanos returns the fractional part of t in nanoseconds, with the sign
// of the overall value: a span of -1.5 seconds reports -5e8.
func (t TimeDelta) SubsecNanos() int32 {
	if t.secs < 0 && t.nanos > 0 {
		return t.nanos - nanosPerSec
	}
	return t.nanos
}

// NumMilliseconds returns the number of whole milliseconds in t, truncated
// toward zero. The range makes this total.
func (t TimeDelta) NumMilliseconds() int64 {
	return t.NumSeconds()*millisPerSec + int64(t.SubsecNanos()/nanosPerMilli)
}

// NumMicroseconds returns the number of whole microseconds in t, truncated
// toward zero, failing on int64 overflow.
func (t TimeDelta) NumMicroseconds() (int64, error) {
	secsPart, ok := arith.MulWithOverflow(t.NumSeconds(), microsPerSec)
	if !ok {
		return 0, outOfRangef("%v overflows a microsecond count", t)
	}
	r, ok := arith.AddWithOverflow(secsPart, int64(t.SubsecNanos()/nanosPerMicro))
	if !ok {
		return 0, outOfRangef("%v overflows a microsecond count", t)
	}
	return r, nil
}

// NumNanoseconds returns the number of nanoseconds in t, failing on int64
// overflow.
func (t TimeDelta) NumNanoseconds() (int64, error) {
	secsPart, ok := arith.MulWithOverflow(t.NumSeconds(), nanosPerSec)
	if !ok {
		return 0, outOfRangef("%v overflows a nanosecond count", t)
	}
	r, ok := arith.AddWithOverflow(secsPart, int64(t.SubsecNanos()))
	if !ok {
		return 0, outOfRangef("%v overflows a nanosecond count", t)
	}
	return r, nil
}

// IsZero reports whether t is a zero-length span.
func (t TimeDelta) IsZero() bool { return t.secs == 0 && t.nanos == 0 }

// Cmp returns -1, 0, or 1 according to whether t is shorter than, equal to,
// or longer than other.
func (t TimeDelta) Cmp(other TimeDelta) int {
	// The normalized representation orders lexicographically.
	if t.secs != other.secs {
		if t.secs < other.secs {
			return -1
		}
		return 1
	}
	if t.nanos != other.nanos {
		if t.nanos < other.nanos {
			return -1
		}
		return 1
	}
	return 0
}

// CheckedAdd returns t+other, with ok false when the sum leaves the
// representable range.
func (t TimeDelta) CheckedAdd(other TimeDelta) (_ TimeDelta, ok bool) {
	secs, ok := arith.AddWithOverflow(t.secs, other.secs)
	if !ok {
		return TimeDelta{}, false
	}
	nanos := t.nanos + other.nanos
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		if secs, ok = arith.AddWithOverflow(secs, 1); !ok {
			return TimeDelta{}, false
		}
	}
	if !deltaInRange(secs, nanos) {
		return TimeDelta{}, false
	}
	return TimeDelta{secs: secs, nanos: nanos}, true
}

// CheckedSub returns t-other, with ok false when the difference leaves the
// representable range.
func (t TimeDelta) CheckedSub(other TimeDelta) (_ TimeDelta, ok bool) {
	secs, ok := arith.SubWithOverflow(t.secs, other.secs)
	if !ok {
		return TimeDelta{}, false
	}
	nanos := t.nanos - other.nanos
	if nanos < 0 {
		nanos += nanosPerSec
		if secs, ok = arith.SubWithOverflow(secs, 1); !ok {
			return TimeDelta{}, false
		}
	}
	if !deltaInRange(secs, nanos) {
		return TimeDelta{}, false
	}
	return TimeDelta{secs: secs, nanos: nanos}, true
}

// CheckedMul returns t*rhs, with ok false when the product leaves the
// representable range.
func (t TimeDelta) CheckedMul(rhs int32) (_ TimeDelta, ok bool) {
	// The nanosecond part cannot overflow an int64 on its own.
	totalNanos := int64(t.nanos) * int64(rhs)
	extraSecs := arith.FloorDiv(totalNanos, nanosPerSec)
	nanos := int32(totalNanos - extraSecs*nanosPerSec)
	secs, ok := arith.MulWithOverflow(t.secs, int64(rhs))
	if !ok {
		return TimeDelta{}, false
	}
	if secs, ok = arith.AddWithOverflow(secs, extraSecs); !ok {
		return TimeDelta{}, false
	}
	if !deltaInRange(secs, nanos) {
		return TimeDelta{}, false
	}
	return TimeDelta{secs: secs, nanos: nanos}, true
}

// Add returns t+other, panicking on overflow. Use CheckedAdd when the inputs
// are not known to be in range.
func (t TimeDelta) Add(other TimeDelta) TimeDelta {
	r, ok := t.CheckedAdd(other)
	if !ok {
		panic(errors.AssertionFailedf("duration addition overflowed"))
	}
	return r
}

// Sub returns t-other, panicking on overflow. Use CheckedSub when the inputs
// are not known to be in range.
func (t TimeDelta) Sub(other TimeDelta) TimeDelta {
	r, ok := t.CheckedSub(other)
	if !ok {
		panic(errors.AssertionFailedf("duration subtraction overflowed"))
	}
	return r
}

// Mul returns t*rhs, panicking on overflow. Use CheckedMul when the inputs
// are not known to be in range.
func (t TimeDelta) Mul(rhs int32) TimeDelta {
	r, ok := t.CheckedMul(rhs)
	if !ok {
		panic(errors.AssertionFailedf("duration multiplication overflowed"))
	}
	return r
}

// Div returns t/rhs, truncated toward zero. rhs must be nonzero.
func (t TimeDelta) Div(rhs int32) TimeDelta {
	if rhs == 0 {
		panic(errors.AssertionFailedf("zero passed as divisor"))
	}
	secs := t.secs / int64(rhs)
	carry := t.secs - secs*int64(rhs)
	extraNanos := carry * nanosPerSec / int64(rhs)
	nanos := int64(t.nanos)/int64(rhs) + extraNanos
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		secs++
	}
	if nanos < 0 {
		nanos += nanosPerSec
		secs--
	}
	return TimeDelta{secs: secs, nanos: int32(nanos)}
}

// Neg returns -t. The range is symmetric, so negation is total.
func (t TimeDelta) Neg() TimeDelta {
	if t.nanos == 0 {
		return TimeDelta{secs: -t.secs}
	}
	return TimeDelta{secs: -t.secs - 1, nanos: nanosPerSec - t.nanos}
}

// Abs returns the absolute value of t.
func (t TimeDelta) Abs() TimeDelta {
	if t.secs < 0 {
		return t.Neg()
	}
	return t
}

// Format writes the ISO 8601 representation of t to buf, e.g. "PT1.5S" or
// "-PT86400.000000001S". A negative span carries a leading minus sign even
// though ISO 8601 has no negative durations.
func (t TimeDelta) Format(buf *bytes.Buffer) {
	abs := t
	if t.secs < 0 {
		abs = t.Neg()
		buf.WriteByte('-')
	}
	buf.WriteByte('P')
	// Plenty of ways to encode an empty string. "0D" is short and not too
	// strange.
	if abs.secs == 0 && abs.nanos == 0 {
		buf.WriteString("0D")
		return
	}
	buf.WriteByte('T')
	buf.WriteString(strconv.FormatInt(abs.secs, 10))
	if abs.nanos > 0 {
		// Strip trailing zeroes so the fraction keeps only its
		// significant digits.
		digits := 9
		frac := abs.nanos
		for frac%10 == 0 {
			frac /= 10
			digits--
		}
		fmt.Fprintf(buf, ".%0*d", digits, frac)
	}
	buf.WriteByte('S')
}

func (t TimeDelta) String() string {
	var buf bytes.Buffer
	t.Format(&buf)
	return buf.String()
}

// SafeFormat implements redact.SafeFormatter.
func (t TimeDelta) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(t.String()))
}

var (
	bigNanosPerSec = apd.NewBigInt(nanosPerSec)

	// decimalCtx needs enough precision for the widest span quantized
	// to nanoseconds, which runs to 26 significant digits.
	decimalCtx = apd.BaseContext.WithPrecision(50)
)

// AsDecimalSeconds returns t as an exact decimal number of seconds.
func (t TimeDelta) AsDecimalSeconds() *apd.Decimal {
	var c apd.BigInt
	c.SetInt64(t.secs)
	c.Mul(&c, bigNanosPerSec)
	c.Add(&c, new(apd.BigInt).SetInt64(int64(t.nanos)))
	d := &apd.Decimal{Exponent: -9}
	if c.Sign() < 0 {
		d.Negative = true
		c.Neg(&c)
	}
	d.Coeff.Set(&c)
	return d
}

// FromDecimalSeconds builds a TimeDelta from a decimal number of seconds,
// rounding to the nearest nanosecond. It fails on non-finite inputs and on
// values outside the representable range.
func FromDecimalSeconds(d *apd.Decimal) (TimeDelta, error) {
	if d.Form != apd.Finite {
		return TimeDelta{}, invalidArgumentf("cannot convert %s to a duration", d)
	}
	var q apd.Decimal
	if _, err := decimalCtx.Quantize(&q, d, -9); err != nil {
		return TimeDelta{}, errors.Mark(
			errors.Wrapf(err, "rounding %s to nanoseconds", d), ErrOutOfRange)
	}
	var total apd.BigInt
	total.Set(&q.Coeff)
	if q.Negative {
		total.Neg(&total)
	}
	var secs, nanos apd.BigInt
	secs.DivMod(&total, bigNanosPerSec, &nanos)
	if !secs.IsInt64() {
		return TimeDelta{}, outOfRangef("%s seconds is outside the representable span", d)
	}
	return NewTimeDelta(secs.Int64(), uint32(nanos.Int64()))
}
