package schedule

import "time"

const dateLayout = "2006-01-02"

// parseDate normalizes an ISO date or date-time string to midnight UTC.
// Parsing in UTC avoids the local-timezone day shift that bites when
// "YYYY-MM-DDTHH:mm" strings go through a local-time constructor.
func parseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// ExpandDateRange returns every calendar date from startDate to endDate
// inclusive as "YYYY-MM-DD" strings. An inverted range yields an empty
// sequence rather than an error; callers needing at-least-one-day semantics
// check the length. Malformed inputs also yield an empty sequence — the
// service layer validates before calling.
func ExpandDateRange(startDate, endDate string) []string {
	start, err := parseDate(startDate)
	if err != nil {
		return nil
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}
