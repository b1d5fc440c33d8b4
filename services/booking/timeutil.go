package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

// ParseDate validates a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, invalid("date", "expected YYYY-MM-DD, got %q", s)
	}
	return d, nil
}

// ParseClock converts "14:00", "2:00 PM", "2 pm" or "12:30 AM" to minutes from midnight.
func ParseClock(s string) (int, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if raw == "" {
		return 0, invalid("time", "time is required")
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(raw, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(raw, "PM"):
		meridiem = "PM"
	}
	clock := strings.TrimSpace(strings.TrimSuffix(raw, meridiem))

	hourPart, minutePart := clock, "0"
	if i := strings.IndexByte(clock, ':'); i >= 0 {
		hourPart, minutePart = clock[:i], clock[i+1:]
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, invalid("time", "unrecognised time %q", s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, invalid("time", "unrecognised time %q", s)
	}

	if meridiem == "" {
		if hour < 0 || hour > 23 {
			return 0, invalid("time", "hour out of range in %q", s)
		}
		return hour*60 + minute, nil
	}
	if hour < 1 || hour > 12 {
		return 0, invalid("time", "hour out of range in %q", s)
	}
	hour %= 12
	if meridiem == "PM" {
		hour += 12
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as a 12-hour label such as "2:00 PM".
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour, minute := minutes/60, minutes%60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}

// OccupiedHours lists the hourly starts covered by a session, stopping at midnight.
// A zero duration occupies its start hour only.
func OccupiedHours(start, hours int) []int {
	if hours < 1 {
		hours = 1
	}
	out := make([]int, 0, hours)
	for m := start; m < start+hours*60 && m < minutesPerDay; m += 60 {
		out = append(out, m)
	}
	return out
}

// sessionEnd returns the end of a session in minutes from midnight, capped at midnight.
// A zero duration occupies one hour.
func sessionEnd(start, hours int) int {
	if hours < 1 {
		hours = 1
	}
	end := start + hours*60
	if end > minutesPerDay {
		end = minutesPerDay
	}
	return end
}

// overlaps reports whether the half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
