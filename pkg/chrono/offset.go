// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// FixedOffset is a time zone offset with a fixed number of seconds east of
// UTC, strictly between -86400 and 86400. The zero value is UTC itself.
//
// FixedOffset implements TimeZone; the mapping of a local time onto a fixed
// offset is always unique.
type FixedOffset struct {
	secs int32
}

// FixedOffsetEast builds an offset of secs seconds east of UTC. East is
// positive: UTC+05:30 is FixedOffsetEast(5*3600 + 30*60).
func FixedOffsetEast(secs int) (FixedOffset, error) {
	if secs <= -secsPerDay || secs >= secsPerDay {
		return FixedOffset{}, outOfRangef("offset of %d seconds is a day or more", secs)
	}
	return FixedOffset{secs: int32(secs)}, nil
}

// FixedOffsetWest builds an offset of secs seconds west of UTC.
func FixedOffsetWest(secs int) (FixedOffset, error) {
	return FixedOffsetEast(-secs)
}

// LocalMinusUTC returns the number of seconds to add to a UTC time to get
// the local time.
func (o FixedOffset) LocalMinusUTC() int { return int(o.secs) }

// UTCMinusLocal returns the number of seconds to add to a local time to get
// the UTC time.
func (o FixedOffset) UTCMinusLocal() int { return -int(o.secs) }

// IsUTC reports whether the offset is zero.
func (o FixedOffset) IsUTC() bool { return o.secs == 0 }

// OffsetFromLocalDateTime implements TimeZone. Fixed offsets map every local
// time uniquely.
func (o FixedOffset) OffsetFromLocalDateTime(NaiveDateTime) MappedLocal {
	return MappedUnique(o)
}

// OffsetFromUTCDateTime implements TimeZone.
func (o FixedOffset) OffsetFromUTCDateTime(NaiveDateTime) FixedOffset { return o }

// Name implements TimeZone, returning the rendered offset, e.g. "+05:30".
func (o FixedOffset) Name() string { return o.String() }

// String renders the offset as "+05:30" or "-08:00", with a seconds part
// only when the offset is not a whole number of minutes.
func (o FixedOffset) String() string {
	secs := int(o.secs)
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	if secs%60 == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, secs/60%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, secs/3600, secs/60%60, secs%60)
}

// SafeFormat implements redact.SafeFormatter.
func (o FixedOffset) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(o.String()))
}

// TimeZone maps between local and UTC readings of a NaiveDateTime.
type TimeZone interface {
	// OffsetFromLocalDateTime returns the offsets in effect at a local
	// date-time. Around zone transitions a local time can map to zero or
	// two offsets; fixed zones always map to exactly one.
	OffsetFromLocalDateTime(local NaiveDateTime) MappedLocal

	// OffsetFromUTCDateTime returns the offset in effect at a UTC
	// date-time. The UTC reading of an instant always has exactly one
	// offset.
	OffsetFromUTCDateTime(utc NaiveDateTime) FixedOffset

	// Name returns a descriptive zone name.
	Name() string
}

// UTC is the UTC time zone. It behaves like the zero FixedOffset but renders
// as "UTC".
var UTC TimeZone = utcZone{}

type utcZone struct{}

func (utcZone) OffsetFromLocalDateTime(NaiveDateTime) MappedLocal {
	return MappedUnique(FixedOffset{})
}
func (utcZone) OffsetFromUTCDateTime(NaiveDateTime) FixedOffset { return FixedOffset{} }
func (utcZone) Name() string                                    { return "UTC" }

// MappedLocal is the result of mapping a local date-time onto a time zone:
// no offset when the zone skipped the local time, one offset in the common
// case, or two when the local time repeated.
type MappedLocal struct {
	earliest, latest FixedOffset
	count            uint8
}

// MappedNone is the mapping of a local time the zone skipped.
func MappedNone() MappedLocal { return MappedLocal{} }

// MappedUnique is the mapping of a local time with a single offset.
func MappedUnique(off FixedOffset) MappedLocal {
	return MappedLocal{earliest: off, latest: off, count: 1}
}

// MappedAmbiguous is the mapping of a repeated local time. earliest is the
// offset of the earlier instant.
func MappedAmbiguous(earliest, latest FixedOffset) MappedLocal {
	return MappedLocal{earliest: earliest, latest: latest, count: 2}
}

// IsNone reports whether the local time has no offset.
func (m MappedLocal) IsNone() bool { return m.count == 0 }

// IsAmbiguous reports whether the local time maps to two offsets.
func (m MappedLocal) IsAmbiguous() bool { return m.count == 2 }

// Unique returns the single offset of an unambiguous mapping.
func (m MappedLocal) Unique() (FixedOffset, bool) {
	if m.count != 1 {
		return FixedOffset{}, false
	}
	return m.earliest, true
}

// Earliest returns the offset of the earliest instant with the local time.
func (m MappedLocal) Earliest() (FixedOffset, bool) {
	if m.count == 0 {
		return FixedOffset{}, false
	}
	return m.earliest, true
}

// Latest returns the offset of the latest instant with the local time.
func (m MappedLocal) Latest() (FixedOffset, bool) {
	if m.count == 0 {
		return FixedOffset{}, false
	}
	return m.latest, true
}
