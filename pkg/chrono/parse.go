// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// parsed accumulates fields scanned out of an input string before they are
// resolved into a date or time. Setting a field twice with different values
// fails, which is what catches layouts like "%Y-%m-%d %F" disagreeing with
// their input.
type parsed struct {
	year       optInt
	century    optInt
	yearMod100 optInt
	month      optInt
	day        optInt
	ordinal    optInt
	weekday    optInt // days from Monday
	hour       optInt // 24-hour clock
	hour12     optInt // 1..=12
	isPM       optInt // 0 or 1
	minute     optInt
	second     optInt // 0..=60
	nanosecond optInt
	timestamp  optInt64
	offset     optInt // seconds east of UTC
}

type optInt struct {
	v   int
	set bool
}

func (o *optInt) assign(v int, what string) error {
	if o.set && o.v != v {
		return invalidArgumentf("conflicting values for the %s: %d and %d", what, o.v, v)
	}
	o.v, o.set = v, true
	return nil
}

type optInt64 struct {
	v   int64
	set bool
}

func (o *optInt64) assign(v int64, what string) error {
	if o.set && o.v != v {
		return invalidArgumentf("conflicting values for the %s: %d and %d", what, o.v, v)
	}
	o.v, o.set = v, true
	return nil
}

// scanDigits reads min to max decimal digits off the front of s.
func scanDigits(s string, min, max int) (v int64, rest string, err error) {
	n := 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int64(s[n]-'0')
		n++
	}
	if n < min {
		return 0, s, invalidArgumentf("expected at least %d digits at %q", min, s)
	}
	return v, s[n:], nil
}

// scanSignedDigits reads an optional sign followed by digits. maxSigned
// applies when a sign is present, max otherwise.
func scanSignedDigits(s string, min, max, maxSigned int) (v int64, rest string, err error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
		max = maxSigned
	}
	v, rest, err = scanDigits(s, min, max)
	if err != nil {
		return 0, s, err
	}
	if neg {
		v = -v
	}
	return v, rest, nil
}

func scanSpaces(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r') {
		s = s[1:]
	}
	return s
}

// scanMonthName matches a month name off the front of s, case-insensitively.
// The three-letter abbreviation always matches; the full name matches when
// present.
func scanMonthName(s string) (Month, string, error) {
	for m := January; m <= December; m++ {
		if name := m.Name(); len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			return m, s[len(name):], nil
		}
		if len(s) >= 3 && strings.EqualFold(s[:3], m.ShortName()) {
			return m, s[3:], nil
		}
	}
	return 0, s, invalidArgumentf("expected a month name at %q", s)
}

func scanWeekdayName(s string) (Weekday, string, error) {
	for d := Monday; d <= Sunday; d++ {
		if name := d.Name(); len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			return d, s[len(name):], nil
		}
		if len(s) >= 3 && strings.EqualFold(s[:3], d.ShortName()) {
			return d, s[3:], nil
		}
	}
	return 0, s, invalidArgumentf("expected a weekday name at %q", s)
}

// scanOffset matches a UTC offset: "+09:30", "+0930", or "Z" for zero.
func scanOffset(s string) (secs int, rest string, err error) {
	if len(s) == 0 {
		return 0, s, invalidArgumentf("expected a UTC offset")
	}
	if s[0] == 'Z' || s[0] == 'z' {
		return 0, s[1:], nil
	}
	if s[0] != '+' && s[0] != '-' {
		return 0, s, invalidArgumentf("expected a UTC offset at %q", s)
	}
	neg := s[0] == '-'
	h, rest, err := scanDigits(s[1:], 2, 2)
	if err != nil {
		return 0, s, err
	}
	if len(rest) > 0 && rest[0] == ':' {
		rest = rest[1:]
	}
	m, rest, err := scanDigits(rest, 2, 2)
	if err != nil {
		return 0, s, err
	}
	if m >= 60 {
		return 0, s, invalidArgumentf("offset minute %d is not in 0..=59", m)
	}
	secs = int(h)*3600 + int(m)*60
	if neg {
		secs = -secs
	}
	return secs, rest, nil
}

// scanFraction reads 1 to 9 digits and scales them to nanoseconds.
func scanFraction(s string, min, max int) (nanos int, rest string, err error) {
	n := 0
	v := 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int(s[n]-'0')
		n++
	}
	if n < min {
		return 0, s, invalidArgumentf("expected at least %d fraction digits at %q", min, s)
	}
	for i := n; i < 9; i++ {
		v *= 10
	}
	return v, s[n:], nil
}

func parseNumericItem(p *parsed, it formatItem, s string) (string, error) {
	var v int64
	var err error
	if it.pad == padSpace {
		s = scanSpaces(s)
	}
	switch it.num {
	case fieldYear:
		v, s, err = scanSignedDigits(s, 1, 4, 6)
	case fieldTimestamp:
		v, s, err = scanSignedDigits(s, 1, 19, 19)
	case fieldOrdinal:
		v, s, err = scanDigits(s, 1, 3)
	case fieldWeekdayFromSun, fieldWeekdayFromMon1:
		v, s, err = scanDigits(s, 1, 1)
	default:
		v, s, err = scanDigits(s, 1, 2)
	}
	if err != nil {
		return s, err
	}
	switch it.num {
	case fieldYear:
		err = p.year.assign(int(v), "year")
	case fieldCentury:
		err = p.century.assign(int(v), "century")
	case fieldYearMod100:
		err = p.yearMod100.assign(int(v), "two-digit year")
	case fieldMonth:
		if v < 1 || v > 12 {
			return s, invalidArgumentf("month number %d is not in 1..=12", v)
		}
		err = p.month.assign(int(v), "month")
	case fieldDay:
		if v < 1 || v > 31 {
			return s, invalidArgumentf("day number %d is not in 1..=31", v)
		}
		err = p.day.assign(int(v), "day of the month")
	case fieldWeekdayFromSun:
		if v > 6 {
			return s, invalidArgumentf("weekday number %d is not in 0..=6", v)
		}
		err = p.weekday.assign((int(v)+6)%7, "weekday")
	case fieldWeekdayFromMon1:
		if v < 1 || v > 7 {
			return s, invalidArgumentf("weekday number %d is not in 1..=7", v)
		}
		err = p.weekday.assign(int(v)-1, "weekday")
	case fieldOrdinal:
		if v < 1 || v > 366 {
			return s, invalidArgumentf("ordinal day %d is not in 1..=366", v)
		}
		err = p.ordinal.assign(int(v), "day of the year")
	case fieldHour:
		if v > 23 {
			return s, invalidArgumentf("hour number %d is not in 0..=23", v)
		}
		err = p.hour.assign(int(v), "hour")
	case fieldHour12:
		if v < 1 || v > 12 {
			return s, invalidArgumentf("clock hour %d is not in 1..=12", v)
		}
		err = p.hour12.assign(int(v), "clock hour")
	case fieldMinute:
		if v > 59 {
			return s, invalidArgumentf("minute number %d is not in 0..=59", v)
		}
		err = p.minute.assign(int(v), "minute")
	case fieldSecond:
		if v > 60 {
			return s, invalidArgumentf("second number %d is not in 0..=60", v)
		}
		err = p.second.assign(int(v), "second")
	case fieldTimestamp:
		err = p.timestamp.assign(v, "timestamp")
	}
	return s, err
}

func parseFixedItem(p *parsed, it formatItem, s string) (string, error) {
	switch it.fix {
	case fixShortMonthName, fixLongMonthName:
		m, rest, err := scanMonthName(s)
		if err != nil {
			return s, err
		}
		return rest, p.month.assign(int(m), "month")
	case fixShortWeekdayName, fixLongWeekdayName:
		d, rest, err := scanWeekdayName(s)
		if err != nil {
			return s, err
		}
		return rest, p.weekday.assign(d.NumDaysFromMonday(), "weekday")
	case fixUpperAmPm, fixLowerAmPm:
		if len(s) >= 2 {
			half := -1
			switch {
			case strings.EqualFold(s[:2], "AM"):
				half = 0
			case strings.EqualFold(s[:2], "PM"):
				half = 1
			}
			if half >= 0 {
				return s[2:], p.isPM.assign(half, "half of the day")
			}
		}
		return s, invalidArgumentf("expected AM or PM at %q", s)
	case fixNanosecond9:
		nanos, rest, err := scanFraction(s, 1, 9)
		if err != nil {
			return s, err
		}
		return rest, p.nanosecond.assign(nanos, "nanosecond")
	case fixDotNanosecondAuto:
		// The fraction is optional: consume nothing when no dot follows.
		if len(s) == 0 || s[0] != '.' {
			return s, nil
		}
		nanos, rest, err := scanFraction(s[1:], 1, 9)
		if err != nil {
			return s, err
		}
		return rest, p.nanosecond.assign(nanos, "nanosecond")
	case fixDotNanosecond3, fixDotNanosecond6, fixDotNanosecond9:
		if len(s) == 0 || s[0] != '.' {
			return s, invalidArgumentf("expected a fraction at %q", s)
		}
		width := fractionWidth(it.fix)
		nanos, rest, err := scanFraction(s[1:], width, width)
		if err != nil {
			return s, err
		}
		return rest, p.nanosecond.assign(nanos, "nanosecond")
	case fixBareNanosecond3, fixBareNanosecond6, fixBareNanosecond9:
		width := fractionWidth(it.fix)
		nanos, rest, err := scanFraction(s, width, width)
		if err != nil {
			return s, err
		}
		return rest, p.nanosecond.assign(nanos, "nanosecond")
	case fixOffset, fixOffsetColon:
		secs, rest, err := scanOffset(s)
		if err != nil {
			return s, err
		}
		return rest, p.offset.assign(secs, "UTC offset")
	}
	return s, errors.AssertionFailedf("unhandled fixed item %d", it.fix)
}

func fractionWidth(f fixedField) int {
	switch f {
	case fixDotNanosecond3, fixBareNanosecond3:
		return 3
	case fixDotNanosecond6, fixBareNanosecond6:
		return 6
	default:
		return 9
	}
}

func parseItems(p *parsed, value string, items []formatItem) error {
	s := value
	var err error
	for _, it := range items {
		switch it.kind {
		case itemLiteral:
			// A whitespace literal matches any run of whitespace.
			lit := it.lit
			for len(lit) > 0 {
				if lit[0] == ' ' || lit[0] == '\t' || lit[0] == '\n' || lit[0] == '\r' {
					lit = strings.TrimLeft(lit, " \t\n\r")
					trimmed := scanSpaces(s)
					if trimmed == s {
						return invalidArgumentf("expected whitespace at %q", s)
					}
					s = trimmed
					continue
				}
				n := strings.IndexAny(lit, " \t\n\r")
				if n < 0 {
					n = len(lit)
				}
				if !strings.HasPrefix(s, lit[:n]) {
					return invalidArgumentf("input %q does not match %q", s, lit[:n])
				}
				s = s[n:]
				lit = lit[n:]
			}
		case itemNumeric:
			if s, err = parseNumericItem(p, it, s); err != nil {
				return err
			}
		case itemFixed:
			if s, err = parseFixedItem(p, it, s); err != nil {
				return err
			}
		}
	}
	if s != "" {
		return invalidArgumentf("trailing input %q", s)
	}
	return nil
}

// resolveYear combines the year fields. Two-digit years without a century
// fall in 1969 through 2068.
func (p *parsed) resolveYear() (int, bool, error) {
	if p.year.set {
		y := p.year.v
		if p.century.set && p.century.v != y/100 {
			return 0, false, invalidArgumentf(
				"century %d does not match year %d", p.century.v, y)
		}
		if p.yearMod100.set && (y < 0 || p.yearMod100.v != y%100) {
			return 0, false, invalidArgumentf(
				"two-digit year %d does not match year %d", p.yearMod100.v, y)
		}
		return y, true, nil
	}
	if p.yearMod100.set {
		if p.century.set {
			return p.century.v*100 + p.yearMod100.v, true, nil
		}
		if p.yearMod100.v >= 69 {
			return 1900 + p.yearMod100.v, true, nil
		}
		return 2000 + p.yearMod100.v, true, nil
	}
	return 0, false, nil
}

func (p *parsed) toNaiveDate() (NaiveDate, error) {
	year, ok, err := p.resolveYear()
	if err != nil {
		return NaiveDate{}, err
	}
	if !ok {
		return NaiveDate{}, invalidArgumentf("no year in the input")
	}
	var d NaiveDate
	switch {
	case p.month.set && p.day.set:
		d, err = DateFromYMD(year, p.month.v, p.day.v)
		if err != nil {
			return NaiveDate{}, err
		}
		if p.ordinal.set && p.ordinal.v != d.Ordinal() {
			return NaiveDate{}, invalidArgumentf(
				"day of the year %d does not match %v", p.ordinal.v, d)
		}
	case p.ordinal.set:
		d, err = DateFromYO(year, p.ordinal.v)
		if err != nil {
			return NaiveDate{}, err
		}
		if p.month.set && p.month.v != int(d.Month()) {
			return NaiveDate{}, invalidArgumentf("month %d does not match %v", p.month.v, d)
		}
	default:
		return NaiveDate{}, invalidArgumentf("no complete date in the input")
	}
	if p.weekday.set && Weekday(p.weekday.v) != d.Weekday() {
		return NaiveDate{}, doesNotExistf("%v is a %v, not a %v",
			d, d.Weekday(), Weekday(p.weekday.v))
	}
	return d, nil
}

func (p *parsed) toNaiveTime() (NaiveTime, error) {
	hour := 0
	switch {
	case p.hour.set:
		hour = p.hour.v
		if p.hour12.set {
			h12 := hour % 12
			if h12 == 0 {
				h12 = 12
			}
			if p.hour12.v != h12 {
				return NaiveTime{}, invalidArgumentf(
					"clock hour %d does not match hour %d", p.hour12.v, hour)
			}
		}
		if p.isPM.set && p.isPM.v != boolToInt(hour >= 12) {
			return NaiveTime{}, invalidArgumentf("AM/PM does not match hour %d", hour)
		}
	case p.hour12.set:
		if !p.isPM.set {
			return NaiveTime{}, invalidArgumentf("12-hour clock time without AM or PM")
		}
		hour = p.hour12.v % 12
		if p.isPM.v == 1 {
			hour += 12
		}
	default:
		return NaiveTime{}, invalidArgumentf("no hour in the input")
	}
	if !p.minute.set {
		return NaiveTime{}, invalidArgumentf("no minute in the input")
	}
	sec := 0
	if p.second.set {
		sec = p.second.v
	}
	nano := 0
	if p.nanosecond.set {
		nano = p.nanosecond.v
	}
	if sec == 60 {
		// A leap second lives in the subsecond window after second 59.
		sec = 59
		nano += nanosPerSec
	}
	return TimeFromHMSNano(hour, p.minute.v, sec, nano)
}

func (p *parsed) toNaiveDateTime() (NaiveDateTime, error) {
	// A timestamp alone resolves fully; when calendar fields are present
	// too, they must name the same instant.
	hasDate := p.year.set || p.yearMod100.set || p.month.set || p.day.set || p.ordinal.set
	hasTime := p.hour.set || p.hour12.set

	if p.timestamp.set && !(hasDate && hasTime) {
		nano := 0
		if p.nanosecond.set {
			nano = p.nanosecond.v
		}
		if p.second.set && p.second.v == 60 {
			nano += nanosPerSec
		}
		dt, err := FromTimestamp(p.timestamp.v, uint32(nano))
		if err != nil {
			return NaiveDateTime{}, err
		}
		if hasDate || hasTime {
			return NaiveDateTime{}, invalidArgumentf(
				"timestamp with an incomplete date or time")
		}
		return dt, nil
	}

	d, err := p.toNaiveDate()
	if err != nil {
		return NaiveDateTime{}, err
	}
	t, err := p.toNaiveTime()
	if err != nil {
		return NaiveDateTime{}, err
	}
	dt := NaiveDateTime{date: d, time: t}
	if p.timestamp.set && dt.Timestamp() != p.timestamp.v {
		return NaiveDateTime{}, invalidArgumentf(
			"timestamp %d does not match %v", p.timestamp.v, dt)
	}
	return dt, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ParseNaiveDate parses value according to a strftime-style layout. The
// layout must pin down a full date; a weekday in the input is cross-checked
// against the resolved date.
func ParseNaiveDate(value, layout string) (NaiveDate, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return NaiveDate{}, err
	}
	var p parsed
	if err := parseItems(&p, value, items); err != nil {
		return NaiveDate{}, err
	}
	return p.toNaiveDate()
}

// ParseNaiveTime parses value according to a strftime-style layout. Second
// 60 in the input lands inside a leap second.
func ParseNaiveTime(value, layout string) (NaiveTime, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return NaiveTime{}, err
	}
	var p parsed
	if err := parseItems(&p, value, items); err != nil {
		return NaiveTime{}, err
	}
	return p.toNaiveTime()
}

// ParseNaiveDateTime parses value according to a strftime-style layout. A
// "%s" timestamp may stand in for a full date and time; when both are given
// they must agree.
func ParseNaiveDateTime(value, layout string) (NaiveDateTime, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return NaiveDateTime{}, err
	}
	var p parsed
	if err := parseItems(&p, value, items); err != nil {
		return NaiveDateTime{}, err
	}
	return p.toNaiveDateTime()
}

// ParseDateTime parses a zoned date-time according to a strftime-style
// layout, which must include an offset specifier. The date and time fields
// are read as local time at that offset.
func ParseDateTime(value, layout string) (DateTime, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return DateTime{}, err
	}
	var p parsed
	if err := parseItems(&p, value, items); err != nil {
		return DateTime{}, err
	}
	if !p.offset.set {
		return DateTime{}, invalidArgumentf("no UTC offset in the input")
	}
	off, err := FixedOffsetEast(p.offset.v)
	if err != nil {
		return DateTime{}, err
	}
	if p.timestamp.set {
		// A timestamp is absolute; the offset only picks the view.
		dt, err := p.toNaiveDateTime()
		if err != nil {
			return DateTime{}, err
		}
		return dt.AndUTC().WithTimezone(off), nil
	}
	local, err := p.toNaiveDateTime()
	if err != nil {
		return DateTime{}, err
	}
	return local.AndLocalTimezone(off)
}

// ParseRFC3339 parses an RFC 3339 date-time such as
// "2015-09-05T23:56:04.123+05:00" or "2015-09-05 23:56:04Z". Second 60
// lands inside a leap second.
func ParseRFC3339(value string) (DateTime, error) {
	s := value
	year, s, err := scanSignedDigits(s, 4, 4, 6)
	if err != nil {
		return DateTime{}, errors.Wrap(err, "invalid RFC 3339 date-time")
	}
	s, err = expect(s, '-')
	if err != nil {
		return DateTime{}, err
	}
	month, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	s, err = expect(s, '-')
	if err != nil {
		return DateTime{}, err
	}
	day, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	if len(s) == 0 || (s[0] != 'T' && s[0] != 't' && s[0] != ' ') {
		return DateTime{}, invalidArgumentf("expected a date-time separator at %q", s)
	}
	s = s[1:]
	hour, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	s, err = expect(s, ':')
	if err != nil {
		return DateTime{}, err
	}
	min, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	s, err = expect(s, ':')
	if err != nil {
		return DateTime{}, err
	}
	sec, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	nano := 0
	if len(s) > 0 && s[0] == '.' {
		if nano, s, err = scanFraction(s[1:], 1, 9); err != nil {
			return DateTime{}, err
		}
	}
	offSecs, s, err := scanOffset(s)
	if err != nil {
		return DateTime{}, err
	}
	if s != "" {
		return DateTime{}, invalidArgumentf("trailing input %q", s)
	}

	d, err := DateFromYMD(int(year), int(month), int(day))
	if err != nil {
		return DateTime{}, err
	}
	if sec == 60 {
		sec = 59
		nano += nanosPerSec
	}
	if sec > 59 {
		return DateTime{}, invalidArgumentf("second number %d is not in 0..=60", sec)
	}
	t, err := TimeFromHMSNano(int(hour), int(min), int(sec), nano)
	if err != nil {
		return DateTime{}, err
	}
	off, err := FixedOffsetEast(offSecs)
	if err != nil {
		return DateTime{}, err
	}
	return d.AndTime(t).AndLocalTimezone(off)
}

// Obsolete RFC 2822 zone names and their offsets. Unrecognized alphabetic
// zones read as zero offset, as the RFC directs for unknown zones.
var rfc2822Zones = map[string]int{
	"UT": 0, "GMT": 0, "Z": 0,
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
}

// ParseRFC2822 parses an RFC 2822 date-time such as
// "Sat, 05 Sep 2015 23:56:04 +0500". The leading weekday is optional and
// cross-checked when present; two- and three-digit years follow the RFC's
// windowing rules.
func ParseRFC2822(value string) (DateTime, error) {
	s := scanSpaces(value)

	var wd Weekday
	hasWeekday := false
	if len(s) > 0 && !isDigit(s[0]) {
		var err error
		if wd, s, err = scanWeekdayName(s); err != nil {
			return DateTime{}, err
		}
		hasWeekday = true
		s = scanSpaces(s)
		if len(s) > 0 && s[0] == ',' {
			s = s[1:]
		}
		s = scanSpaces(s)
	}

	day, s, err := scanDigits(s, 1, 2)
	if err != nil {
		return DateTime{}, err
	}
	s = scanSpaces(s)
	month, s, err := scanMonthName(s)
	if err != nil {
		return DateTime{}, err
	}
	s = scanSpaces(s)
	year, s, err := scanDigits(s, 2, 4)
	if err != nil {
		return DateTime{}, err
	}
	switch {
	case year < 50:
		year += 2000
	case year < 100:
		year += 1900
	case year < 1000:
		year += 1900
	}
	s = scanSpaces(s)

	hour, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	s, err = expect(s, ':')
	if err != nil {
		return DateTime{}, err
	}
	min, s, err := scanDigits(s, 2, 2)
	if err != nil {
		return DateTime{}, err
	}
	sec := int64(0)
	if len(s) > 0 && s[0] == ':' {
		if sec, s, err = scanDigits(s[1:], 2, 2); err != nil {
			return DateTime{}, err
		}
	}
	s = scanSpaces(s)

	var offSecs int
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if offSecs, s, err = scanOffset(s); err != nil {
			return DateTime{}, err
		}
	} else {
		n := 0
		for n < len(s) && isAlpha(s[n]) {
			n++
		}
		if n == 0 {
			return DateTime{}, invalidArgumentf("expected a zone at %q", s)
		}
		offSecs = rfc2822Zones[strings.ToUpper(s[:n])]
		s = s[n:]
	}
	if s = scanSpaces(s); s != "" {
		return DateTime{}, invalidArgumentf("trailing input %q", s)
	}

	d, err := DateFromYMD(int(year), int(month), int(day))
	if err != nil {
		return DateTime{}, err
	}
	if hasWeekday && wd != d.Weekday() {
		return DateTime{}, doesNotExistf("%v is a %v, not a %v", d, d.Weekday(), wd)
	}
	nano := 0
	if sec == 60 {
		sec = 59
		nano = nanosPerSec
	}
	t, err := TimeFromHMSNano(int(hour), int(min), int(sec), nano)
	if err != nil {
		return DateTime{}, err
	}
	off, err := FixedOffsetEast(offSecs)
	if err != nil {
		return DateTime{}, err
	}
	return d.AndTime(t).AndLocalTimezone(off)
}

func expect(s string, c byte) (string, error) {
	if len(s) == 0 || s[0] != c {
		return s, invalidArgumentf("expected %q at %q", string(c), s)
	}
	return s[1:], nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
