package resume

import (
	"regexp"
	"strconv"
	"time"
)

var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// FormatYearMonth maps a partial date of the form "YYYY-MM" to a short
// display string such as "Mar 2021". Empty or malformed input yields "".
// Out-of-range months are normalized by time.Date the same way the calendar
// rolls over (month 13 becomes January of the following year).
func FormatYearMonth(raw string) string {
	match := yearMonthPattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return ""
	}
	month, err := strconv.Atoi(match[2])
	if err != nil {
		return ""
	}
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.Format("Jan 2006")
}

// FormatDateRange renders "start - end" for an entry, substituting "Present"
// for the end date when current is set, regardless of any stored end value.
func FormatDateRange(start, end string, current bool) string {
	formattedEnd := FormatYearMonth(end)
	if current {
		formattedEnd = "Present"
	}
	return FormatYearMonth(start) + " - " + formattedEnd
}
