package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"faersview/internal"
)

// CanonicalDateLayout is the display form of every parsed date.
const CanonicalDateLayout = "2006-01-02"

// Layouts seen in FAERS exports and spreadsheets re-saved from them. These are
// tried before format detection so the common cases never depend on it.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02-Jan-2006",
}

// FAERS reports partial dates as YYYY or YYYYMM; spreadsheets sometimes
// re-save them as YYYY-MM or YYYY/MM.
var partialDate = regexp.MustCompile(`^\d{4}([-/]?\d{2})?$`)

var allDigits = regexp.MustCompile(`^\d+$`)

// CanonicalizeDate renders raw as YYYY-MM-DD when it can be parsed. When it
// cannot, raw is returned unchanged: callers cannot tell an unparseable legacy
// format from garbage, and that is accepted for display. Partial dates are
// also returned unchanged rather than given an invented day. The result is
// stable under repeated application.
func CanonicalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == internal.NA || partialDate.MatchString(s) {
		return raw
	}
	if t, ok := ParseDate(s); ok {
		return t.Format(CanonicalDateLayout)
	}
	return raw
}

// ParseDate parses s with the known layouts, falling back to format detection.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil && t.Year() != 0 {
			return t, true
		}
	}
	// Digit runs other than YYYYMMDD would be read as unix timestamps.
	if allDigits.MatchString(s) {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}
