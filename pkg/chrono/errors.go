// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import "github.com/cockroachdb/errors"

// Two failure classes recur throughout the package. Every fallible
// constructor and every Checked* operation returns an error matching one of
// these via errors.Is; the panicking convenience operators are the only place
// a failure escalates.
var (
	// ErrOutOfRange indicates a value or arithmetic result outside the
	// representable domain of its type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidArgument indicates a structurally malformed input, such as a
	// nanosecond fraction of a second or more, or a month number of 13.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDoesNotExist indicates a well-formed date that does not exist on the
	// proleptic Gregorian calendar, such as February 30.
	ErrDoesNotExist = errors.New("date does not exist")
)

func outOfRangef(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrOutOfRange)
}

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

func doesNotExistf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDoesNotExist)
}
