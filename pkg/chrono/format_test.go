// Copyright 2024 The Chrono-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the /LICENSE file.

package chrono

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestFormatDataDriven runs the layout formatter over testdata/format. Each
// directive carries the layout on the first input line and one value per
// following line, rendered through the parser for the value kind named by
// the command.
func TestFormatDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/format", func(t *testing.T, td *datadriven.TestData) string {
		lines := strings.Split(strings.TrimSuffix(td.Input, "\n"), "\n")
		if len(lines) < 2 {
			td.Fatalf(t, "expected a layout line followed by at least one value")
		}
		layout, values := lines[0], lines[1:]
		var out strings.Builder
		for _, v := range values {
			var s string
			var err error
			switch td.Cmd {
			case "format-date":
				var d NaiveDate
				if d, err = ParseNaiveDate(v, "%Y-%m-%d"); err == nil {
					s, err = FormatNaiveDate(d, layout)
				}
			case "format-time":
				var tm NaiveTime
				if tm, err = ParseNaiveTime(v, "%H:%M:%S%.f"); err == nil {
					s, err = FormatNaiveTime(tm, layout)
				}
			case "format-datetime":
				var dt NaiveDateTime
				if dt, err = ParseNaiveDateTime(v, "%Y-%m-%dT%H:%M:%S%.f"); err == nil {
					s, err = FormatNaiveDateTime(dt, layout)
				}
			case "format-zoned":
				var z DateTime
				if z, err = ParseRFC3339(v); err == nil {
					s, err = FormatDateTime(z, layout)
				}
			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
			}
			if err != nil {
				fmt.Fprintf(&out, "error: %v\n", err)
			} else {
				fmt.Fprintf(&out, "%s\n", s)
			}
		}
		return out.String()
	})
}
