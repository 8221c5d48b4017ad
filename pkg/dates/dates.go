// Package dates parses the assortment of date strings the farm backend sends
// and formats them back for display. Nothing in here returns an error: a value
// that cannot be understood is reported as absent.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	ShortLayout = "Jan 2, 2006"
	DayLayout   = "Jan 2"
)

var (
	isoDateRX  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	longFormRX = regexp.MustCompile(`^([A-Za-z]{3,})\s+(\d{1,2}),\s*(\d{4})$`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// generic layouts tried after the strict calendar-date form.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"January 2, 2006 15:04:05",
	"Jan 2, 2006 15:04:05",
	"01/02/2006 15:04:05",
	"2006/01/02 15:04:05",
}

// date-only layouts land on midday UTC like the strict form.
var dateOnlyLayouts = []string{
	"Mon Jan 2 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"2006/01/02",
}

// Parse accepts a string, a time.Time or a *time.Time. The second result is
// false when nothing usable was found.
func Parse(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		if valid(x) {
			return x, true
		}
		return time.Time{}, false
	case *time.Time:
		if x != nil && valid(*x) {
			return *x, true
		}
		return time.Time{}, false
	case string:
		return ParseString(x)
	case nil:
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// ParseString tries, in order: strict YYYY-MM-DD (midday UTC), the generic
// layouts (date-only ones at midday UTC), and "<Month> <day>, <year>" with any month spelling of three or
// more letters (midday UTC).
func ParseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoDateRX.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return middayUTC(y, time.Month(mon), d)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil && valid(t) {
			return t, true
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.Parse(layout, s); err == nil && valid(t) {
			return middayUTC(t.Year(), t.Month(), t.Day())
		}
	}

	if m := longFormRX.FindStringSubmatch(s); m != nil {
		mon, ok := months[strings.ToLower(m[1][:3])]
		if !ok {
			return time.Time{}, false
		}
		d, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		return middayUTC(y, mon, d)
	}
	return time.Time{}, false
}

// middayUTC rejects dates that would roll over (Feb 30 and friends).
func middayUTC(y int, m time.Month, d int) (time.Time, bool) {
	if m < time.January || m > time.December || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	if t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func valid(t time.Time) bool {
	return !t.IsZero() && t.Year() > 0 && t.Year() < 10000
}

// Format never fails; the zero time formats to "".
func Format(t time.Time, layout string) string {
	if !valid(t) {
		return ""
	}
	return t.Format(layout)
}

func ShortLabel(t time.Time) string { return Format(t, ShortLayout) }

func DayLabel(t time.Time) string { return Format(t, DayLayout) }

// LabelOr formats t or returns fallback when t is absent.
func LabelOr(t time.Time, fallback string) string {
	if s := ShortLabel(t); s != "" {
		return s
	}
	return fallback
}

// AddDays moves by calendar days in t's location.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
