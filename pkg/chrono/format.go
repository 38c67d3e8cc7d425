// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/chrono-go/chrono/pkg/util/arith"
)

// The formatting and parsing layer compiles a strftime-style layout string
// into a sequence of items once, then drives formatting and parsing off the
// compiled form. Supported specifiers:
//
//	%Y %C %y    year, century, year of century
//	%m %b %B %h month number, short name, full name (%h = %b)
//	%d %e       day of month, zero- and space-padded
//	%a %A       short and full weekday name
//	%w %u       weekday number from Sunday (0-6) and from Monday (1-7)
//	%j          day of year
//	%H %k       hour, zero- and space-padded
//	%I %l       hour on the 12-hour clock, zero- and space-padded
//	%p %P       AM/PM and am/pm
//	%M %S       minute, second (60 inside a leap second)
//	%f          nanoseconds, nine digits, no dot
//	%.f         dot and fraction, trailing zeros trimmed to 3/6/9 digits
//	%.3f %.6f %.9f  dot and fixed-width fraction
//	%3f %6f %9f fixed-width fraction without the dot
//	%z %:z      offset "+0930" and "+09:30"
//	%s          Unix timestamp
//	%F %D %T %R composites: %Y-%m-%d, %m/%d/%y, %H:%M:%S, %H:%M
//	%% %n %t    literal percent, newline, tab
type itemKind uint8

const (
	itemLiteral itemKind = iota
	itemNumeric
	itemFixed
)

type numericField uint8

const (
	fieldYear numericField = iota
	fieldCentury
	fieldYearMod100
	fieldMonth
	fieldDay
	fieldWeekdayFromSun
	fieldWeekdayFromMon1
	fieldOrdinal
	fieldHour
	fieldHour12
	fieldMinute
	fieldSecond
	fieldTimestamp
)

type padKind uint8

const (
	padZero padKind = iota
	padSpace
)

type fixedField uint8

const (
	fixShortMonthName fixedField = iota
	fixLongMonthName
	fixShortWeekdayName
	fixLongWeekdayName
	fixUpperAmPm
	fixLowerAmPm
	fixNanosecond9
	fixDotNanosecondAuto
	fixDotNanosecond3
	fixDotNanosecond6
	fixDotNanosecond9
	fixBareNanosecond3
	fixBareNanosecond6
	fixBareNanosecond9
	fixOffset
	fixOffsetColon
)

type formatItem struct {
	kind itemKind
	lit  string
	num  numericField
	pad  padKind
	fix  fixedField
}

func numItem(f numericField, pad padKind) formatItem {
	return formatItem{kind: itemNumeric, num: f, pad: pad}
}

func fixItem(f fixedField) formatItem {
	return formatItem{kind: itemFixed, fix: f}
}

func litItem(s string) formatItem {
	return formatItem{kind: itemLiteral, lit: s}
}

// numericWidth is the formatting pad width and the parsing digit limit of
// each numeric field. The year and timestamp fields take extra digits and an
// optional sign on top of this when parsing.
var numericWidth = [...]int{
	fieldYear:            4,
	fieldCentury:         2,
	fieldYearMod100:      2,
	fieldMonth:           2,
	fieldDay:             2,
	fieldWeekdayFromSun:  1,
	fieldWeekdayFromMon1: 1,
	fieldOrdinal:         3,
	fieldHour:            2,
	fieldHour12:          2,
	fieldMinute:          2,
	fieldSecond:          2,
	fieldTimestamp:       1,
}

func compileLayout(layout string) ([]formatItem, error) {
	var items []formatItem
	lit := func(s string) {
		if n := len(items); n > 0 && items[n-1].kind == itemLiteral {
			items[n-1].lit += s
			return
		}
		items = append(items, litItem(s))
	}
	for i := 0; i < len(layout); {
		c := layout[i]
		if c != '%' {
			j := strings.IndexByte(layout[i:], '%')
			if j < 0 {
				lit(layout[i:])
				break
			}
			lit(layout[i : i+j])
			i += j
			continue
		}
		if i+1 >= len(layout) {
			return nil, invalidArgumentf("layout ends inside a %% specifier")
		}
		spec := layout[i+1]
		i += 2
		switch spec {
		case 'Y':
			items = append(items, numItem(fieldYear, padZero))
		case 'C':
			items = append(items, numItem(fieldCentury, padZero))
		case 'y':
			items = append(items, numItem(fieldYearMod100, padZero))
		case 'm':
			items = append(items, numItem(fieldMonth, padZero))
		case 'b', 'h':
			items = append(items, fixItem(fixShortMonthName))
		case 'B':
			items = append(items, fixItem(fixLongMonthName))
		case 'd':
			items = append(items, numItem(fieldDay, padZero))
		case 'e':
			items = append(items, numItem(fieldDay, padSpace))
		case 'a':
			items = append(items, fixItem(fixShortWeekdayName))
		case 'A':
			items = append(items, fixItem(fixLongWeekdayName))
		case 'w':
			items = append(items, numItem(fieldWeekdayFromSun, padZero))
		case 'u':
			items = append(items, numItem(fieldWeekdayFromMon1, padZero))
		case 'j':
			items = append(items, numItem(fieldOrdinal, padZero))
		case 'H':
			items = append(items, numItem(fieldHour, padZero))
		case 'k':
			items = append(items, numItem(fieldHour, padSpace))
		case 'I':
			items = append(items, numItem(fieldHour12, padZero))
		case 'l':
			items = append(items, numItem(fieldHour12, padSpace))
		case 'M':
			items = append(items, numItem(fieldMinute, padZero))
		case 'S':
			items = append(items, numItem(fieldSecond, padZero))
		case 'f':
			items = append(items, fixItem(fixNanosecond9))
		case 'p':
			items = append(items, fixItem(fixUpperAmPm))
		case 'P':
			items = append(items, fixItem(fixLowerAmPm))
		case 'z':
			items = append(items, fixItem(fixOffset))
		case 's':
			items = append(items, numItem(fieldTimestamp, padZero))
		case 'F':
			items = append(items,
				numItem(fieldYear, padZero), litItem("-"),
				numItem(fieldMonth, padZero), litItem("-"),
				numItem(fieldDay, padZero))
		case 'D':
			items = append(items,
				numItem(fieldMonth, padZero), litItem("/"),
				numItem(fieldDay, padZero), litItem("/"),
				numItem(fieldYearMod100, padZero))
		case 'T':
			items = append(items,
				numItem(fieldHour, padZero), litItem(":"),
				numItem(fieldMinute, padZero), litItem(":"),
				numItem(fieldSecond, padZero))
		case 'R':
			items = append(items,
				numItem(fieldHour, padZero), litItem(":"),
				numItem(fieldMinute, padZero))
		case '%':
			lit("%")
		case 'n':
			lit("\n")
		case 't':
			lit("\t")
		case ':':
			if i < len(layout) && layout[i] == 'z' {
				i++
				items = append(items, fixItem(fixOffsetColon))
				continue
			}
			return nil, invalidArgumentf("unknown specifier after %%:")
		case '.':
			if i < len(layout) {
				switch layout[i] {
				case 'f':
					i++
					items = append(items, fixItem(fixDotNanosecondAuto))
					continue
				case '3', '6', '9':
					if i+1 < len(layout) && layout[i+1] == 'f' {
						d := layout[i]
						i += 2
						switch d {
						case '3':
							items = append(items, fixItem(fixDotNanosecond3))
						case '6':
							items = append(items, fixItem(fixDotNanosecond6))
						case '9':
							items = append(items, fixItem(fixDotNanosecond9))
						}
						continue
					}
				}
			}
			return nil, invalidArgumentf("unknown specifier after %%.")
		case '3', '6', '9':
			if i < len(layout) && layout[i] == 'f' {
				i++
				switch spec {
				case '3':
					items = append(items, fixItem(fixBareNanosecond3))
				case '6':
					items = append(items, fixItem(fixBareNanosecond6))
				case '9':
					items = append(items, fixItem(fixBareNanosecond9))
				}
				continue
			}
			return nil, invalidArgumentf("unknown specifier %%%c", spec)
		default:
			return nil, invalidArgumentf("unknown specifier %%%c", spec)
		}
	}
	return items, nil
}

// formatSource is the view of a value the formatter draws on. Missing
// components are nil: formatting a bare date with a time specifier fails.
type formatSource struct {
	date *NaiveDate
	time *NaiveTime
	off  *FixedOffset
}

// displaySecond folds a leap second into the printed second number: second
// 59 with a fraction of a second or more prints as second 60.
func displaySecond(t NaiveTime) (sec int, frac uint32) {
	sec = t.Second()
	frac = t.frac
	if frac >= nanosPerSec {
		sec++
		frac -= nanosPerSec
	}
	return sec, frac
}

func formatItems(buf *bytes.Buffer, items []formatItem, src formatSource) error {
	for _, it := range items {
		switch it.kind {
		case itemLiteral:
			buf.WriteString(it.lit)
		case itemNumeric:
			if err := formatNumeric(buf, it, src); err != nil {
				return err
			}
		case itemFixed:
			if err := formatFixed(buf, it, src); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatNumeric(buf *bytes.Buffer, it formatItem, src formatSource) error {
	var v int64
	switch it.num {
	case fieldYear, fieldCentury, fieldYearMod100, fieldMonth, fieldDay,
		fieldWeekdayFromSun, fieldWeekdayFromMon1, fieldOrdinal:
		if src.date == nil {
			return invalidArgumentf("layout needs a date component")
		}
	case fieldTimestamp:
		if src.date == nil || src.time == nil {
			return invalidArgumentf("layout needs both date and time components")
		}
	default:
		if src.time == nil {
			return invalidArgumentf("layout needs a time component")
		}
	}
	switch it.num {
	case fieldYear:
		year := src.date.Year()
		if year < 0 || year > 9999 {
			fmt.Fprintf(buf, "%+05d", year)
			return nil
		}
		v = int64(year)
	case fieldCentury:
		v = arith.FloorDiv(int64(src.date.Year()), 100)
	case fieldYearMod100:
		v = arith.FloorMod(int64(src.date.Year()), 100)
	case fieldMonth:
		v = int64(src.date.Month())
	case fieldDay:
		v = int64(src.date.Day())
	case fieldWeekdayFromSun:
		v = int64(src.date.Weekday().NumDaysFromSunday())
	case fieldWeekdayFromMon1:
		v = int64(src.date.Weekday().NumDaysFromMonday() + 1)
	case fieldOrdinal:
		v = int64(src.date.Ordinal())
	case fieldHour:
		v = int64(src.time.Hour())
	case fieldHour12:
		h := src.time.Hour() % 12
		if h == 0 {
			h = 12
		}
		v = int64(h)
	case fieldMinute:
		v = int64(src.time.Minute())
	case fieldSecond:
		sec, _ := displaySecond(*src.time)
		v = int64(sec)
	case fieldTimestamp:
		v = NaiveDateTime{date: *src.date, time: *src.time}.Timestamp()
	}
	width := numericWidth[it.num]
	s := strconv.FormatInt(v, 10)
	pad := byte('0')
	if it.pad == padSpace {
		pad = ' '
	}
	for n := width - len(s); n > 0; n-- {
		buf.WriteByte(pad)
	}
	buf.WriteString(s)
	return nil
}

func formatFixed(buf *bytes.Buffer, it formatItem, src formatSource) error {
	switch it.fix {
	case fixShortMonthName, fixLongMonthName, fixShortWeekdayName, fixLongWeekdayName:
		if src.date == nil {
			return invalidArgumentf("layout needs a date component")
		}
	case fixOffset, fixOffsetColon:
		if src.off == nil {
			return invalidArgumentf("layout needs a time zone offset")
		}
	default:
		if src.time == nil {
			return invalidArgumentf("layout needs a time component")
		}
	}
	switch it.fix {
	case fixShortMonthName:
		buf.WriteString(src.date.Month().ShortName())
	case fixLongMonthName:
		buf.WriteString(src.date.Month().Name())
	case fixShortWeekdayName:
		buf.WriteString(src.date.Weekday().ShortName())
	case fixLongWeekdayName:
		buf.WriteString(src.date.Weekday().Name())
	case fixUpperAmPm:
		if src.time.Hour() < 12 {
			buf.WriteString("AM")
		} else {
			buf.WriteString("PM")
		}
	case fixLowerAmPm:
		if src.time.Hour() < 12 {
			buf.WriteString("am")
		} else {
			buf.WriteString("pm")
		}
	case fixNanosecond9:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, "%09d", frac)
	case fixDotNanosecondAuto:
		_, frac := displaySecond(*src.time)
		switch {
		case frac == 0:
		case frac%nanosPerMilli == 0:
			fmt.Fprintf(buf, ".%03d", frac/nanosPerMilli)
		case frac%nanosPerMicro == 0:
			fmt.Fprintf(buf, ".%06d", frac/nanosPerMicro)
		default:
			fmt.Fprintf(buf, ".%09d", frac)
		}
	case fixDotNanosecond3:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, ".%03d", frac/nanosPerMilli)
	case fixDotNanosecond6:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, ".%06d", frac/nanosPerMicro)
	case fixDotNanosecond9:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, ".%09d", frac)
	case fixBareNanosecond3:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, "%03d", frac/nanosPerMilli)
	case fixBareNanosecond6:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, "%06d", frac/nanosPerMicro)
	case fixBareNanosecond9:
		_, frac := displaySecond(*src.time)
		fmt.Fprintf(buf, "%09d", frac)
	case fixOffset, fixOffsetColon:
		secs := src.off.LocalMinusUTC()
		sign := byte('+')
		if secs < 0 {
			sign = '-'
			secs = -secs
		}
		buf.WriteByte(sign)
		if it.fix == fixOffsetColon {
			fmt.Fprintf(buf, "%02d:%02d", secs/3600, secs/60%60)
		} else {
			fmt.Fprintf(buf, "%02d%02d", secs/3600, secs/60%60)
		}
	}
	return nil
}

// FormatNaiveDateTime renders dt according to a strftime-style layout.
func FormatNaiveDateTime(dt NaiveDateTime, layout string) (string, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatItems(&buf, items, formatSource{date: &dt.date, time: &dt.time}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatNaiveDate renders d according to a strftime-style layout. Layouts
// using time-of-day or offset specifiers fail.
func FormatNaiveDate(d NaiveDate, layout string) (string, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatItems(&buf, items, formatSource{date: &d}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatNaiveTime renders t according to a strftime-style layout. Layouts
// using date or offset specifiers fail.
func FormatNaiveTime(t NaiveTime, layout string) (string, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatItems(&buf, items, formatSource{time: &t}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatDateTime renders a zoned DateTime according to a strftime-style
// layout, drawing the date and time from the local reading.
func FormatDateTime(z DateTime, layout string) (string, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return "", err
	}
	local := z.NaiveLocal()
	off := z.Offset()
	var buf bytes.Buffer
	if err := formatItems(&buf, items, formatSource{
		date: &local.date, time: &local.time, off: &off,
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
