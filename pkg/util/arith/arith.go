// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

// Package arith provides overflow-checked integer arithmetic.
package arith

import (
	"math"
	"math/bits"
)

// AddWithOverflow returns a+b. If ok is false, a+b overflowed.
func AddWithOverflow(a, b int64) (r int64, ok bool) {
	r = a + b
	if (r > a) == (b > 0) || b == 0 {
		return r, true
	}
	return 0, false
}

// SubWithOverflow returns a-b. If ok is false, a-b overflowed.
func SubWithOverflow(a, b int64) (r int64, ok bool) {
	r = a - b
	if (r < a) == (b > 0) || b == 0 {
		return r, true
	}
	return 0, false
}

// MulWithOverflow returns a*b. If ok is false, a*b overflowed.
func MulWithOverflow(a, b int64) (r int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	r = a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// FloorDiv returns the quotient of a/b rounded toward negative infinity.
// b must be nonzero.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a-FloorDiv(a,b)*b. The result has the same sign as b.
func FloorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

// AddUint64WithOverflow returns a+b. If ok is false, a+b overflowed.
func AddUint64WithOverflow(a, b uint64) (r uint64, ok bool) {
	r, carry := bits.Add64(a, b, 0)
	return r, carry == 0
}

// MulUint64WithOverflow returns a*b. If ok is false, a*b overflowed.
func MulUint64WithOverflow(a, b uint64) (r uint64, ok bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
