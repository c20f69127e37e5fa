// Package datefmt renders stored timestamps in the fixed display format used by
// every API response and parses the date strings accepted in request bodies.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "02-01-2006"
	dateTimeLayout = "02-01-2006 15:04:05"

	invalidDate     = "NaN-NaN-NaN"
	invalidDateTime = "NaN-NaN-NaN NaN:NaN:NaN"
)

// Date formats t as DD-MM-YYYY in the local time zone.
// A zero time has no calendar value and renders as NaN-NaN-NaN.
func Date(t time.Time) string {
	if t.IsZero() {
		return invalidDate
	}
	return t.Local().Format(dateLayout)
}

// DateTime formats t as DD-MM-YYYY HH:mm:ss in the local time zone.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return invalidDateTime
	}
	return t.Local().Format(dateTimeLayout)
}

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse reads a date or date-time sent by a client. Values without a zone are
// interpreted in the local time zone so they format back unchanged.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
