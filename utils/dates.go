package utils

import "time"

// Layouts accepted when parsing backend-supplied date strings. The backend is
// not consistent about precision, so try from most to least specific.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDateValue(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToLocalInputValue converts a date string to a value suitable for a
// datetime-local form input in the given time zone (nil means the server's
// local zone). Returns "" when the value does not parse.
func ToLocalInputValue(value string, loc *time.Location) string {
	t, ok := parseDateValue(value)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02T15:04")
}

// NextDateValue returns the calendar date one day after the given date
// string, formatted as "2006-01-02". Returns "" when the value does not
// parse.
func NextDateValue(value string) string {
	t, ok := parseDateValue(value)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}
