package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxReminderOffset bounds relative reminders; larger offsets are treated
// as unresolvable and fall back to now.
const maxReminderOffset = 366 * 24 * time.Hour

var (
	leadingInt  = regexp.MustCompile(`^\s*(\d+)`)
	clockPhrase = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

// ResolveTime turns a reminder time phrase into an instant relative to now.
// Relative durations ("30 minutes", "2 hours") are added to now; clock
// phrases ("3pm", "2:30 pm", "14:05") land on today in now's location.
// Anything else resolves to now and reports false.
func ResolveTime(phrase string, now time.Time) (time.Time, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))

	switch {
	case strings.Contains(p, "minute"):
		return offset(p, now, time.Minute)
	case strings.Contains(p, "hour"):
		return offset(p, now, time.Hour)
	}

	if t, ok := clock(p, now); ok {
		return t, true
	}
	return now, false
}

// offset adds the phrase's leading count of unit to now. The count is checked
// against maxReminderOffset before multiplying so it cannot overflow.
func offset(p string, now time.Time, unit time.Duration) (time.Time, bool) {
	n, ok := leading(p)
	if !ok || int64(n) > int64(maxReminderOffset/unit) {
		return now, false
	}
	return now.Add(time.Duration(n) * unit), true
}

func leading(p string) (int, bool) {
	m := leadingInt.FindStringSubmatch(p)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// clock parses "H[:MM][ ]am|pm" or "H:MM". A bare number is not a clock time.
func clock(p string, now time.Time) (time.Time, bool) {
	m := clockPhrase.FindStringSubmatch(p)
	if m == nil || (m[2] == "" && m[3] == "") {
		return time.Time{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return time.Time{}, false
	}

	switch m[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return time.Time{}, false
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		}
		if m[3] == "pm" && hour < 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return time.Time{}, false
		}
	}

	y, mo, d := now.Date()
	return time.Date(y, mo, d, hour, minute, 0, 0, now.Location()), true
}
