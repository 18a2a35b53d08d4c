package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	// MinutesPerDay is the number of minutes in a calendar day.
	MinutesPerDay = 24 * 60

	// FullDayStart and FullDayEnd form the canonical full-day sentinel slot.
	// Legacy records sometimes mark full days as 00:00-24:00; those are
	// normalized to this form at the data-access boundary.
	FullDayStart = 0
	FullDayEnd   = 23*60 + 59
)

// TimeSlot is a half-open time window [Start, End) within a single day,
// expressed in minutes from midnight. All comparisons and arithmetic happen
// on these integers; "HH:MM" strings exist only at the JSON boundary.
type TimeSlot struct {
	Start int `bson:"start"`
	End   int `bson:"end"`
}

// clockTimeSlot is the wire representation of a TimeSlot.
type clockTimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (ts TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(clockTimeSlot{
		StartTime: FormatClock(ts.Start),
		EndTime:   FormatClock(ts.End),
	})
}

func (ts *TimeSlot) UnmarshalJSON(data []byte) error {
	var c clockTimeSlot
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	start, err := ParseClock(c.StartTime)
	if err != nil {
		return fmt.Errorf("invalid startTime: %w", err)
	}
	end, err := ParseClock(c.EndTime)
	if err != nil {
		return fmt.Errorf("invalid endTime: %w", err)
	}
	ts.Start = start
	ts.End = end
	return nil
}

// ParseClock converts a zero-padded 24-hour "HH:MM" string to minutes from
// midnight. "24:00" is rejected; full-day markers use the canonical sentinel.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// FormatClock converts minutes from midnight to a zero-padded "HH:MM" string.
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
