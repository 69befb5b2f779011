package intent

import (
	"regexp"
	"strings"
)

// Placeholders returned when an extractor finds nothing.
const (
	UnknownDestination = "unknown destination"
	UnknownPerson      = "unknown person"
	UnknownActivity    = "unknown activity"
	DefaultTask        = "reminder"
	DefaultTime        = "now"
)

var (
	destinationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`take me (?:to )?(.+)`),
		regexp.MustCompile(`navigate (?:to )?(.+)`),
		regexp.MustCompile(`directions (?:to )?(.+)`),
	}

	personPatterns = []*regexp.Regexp{
		regexp.MustCompile(`who is (.+?)(?:\?|$)`),
		regexp.MustCompile(`tell me about (.+?)(?:\?|$)`),
		regexp.MustCompile(`remember (.+?)(?:\?|$)`),
	}

	activityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`completed (.+?)(?:\?|$)`),
		regexp.MustCompile(`finished (.+?)(?:\?|$)`),
		regexp.MustCompile(`done with (.+?)(?:\?|$)`),
	}

	// Durations are tried before clock times so "in 30 minutes" keeps its unit.
	timePattern = regexp.MustCompile(`\b(?:at|in) (\d+\s*(?:minutes?|hours?)|\d+(?::\d+)?(?:\s*(?:am|pm))?)`)
	taskPattern = regexp.MustCompile(`remind me (?:to )?(.+?)(?:\s+(?:at|in)\s+|$)`)
)

// firstMatch returns the trimmed first capture of the first matching pattern.
func firstMatch(patterns []*regexp.Regexp, text, fallback string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return fallback
}

// ExtractDestination pulls the navigation target out of a lower-cased utterance.
func ExtractDestination(text string) string {
	return firstMatch(destinationPatterns, text, UnknownDestination)
}

// ExtractReminder returns the task and the raw time phrase of a reminder.
func ExtractReminder(text string) (task, when string) {
	task, when = DefaultTask, DefaultTime
	if m := taskPattern.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			task = v
		}
	}
	if m := timePattern.FindStringSubmatch(text); m != nil {
		when = strings.TrimSpace(m[1])
	}
	return task, when
}

// ExtractPerson returns the person asked about.
func ExtractPerson(text string) string {
	return firstMatch(personPatterns, text, UnknownPerson)
}

// ExtractActivity returns the activity reported as done.
func ExtractActivity(text string) string {
	return firstMatch(activityPatterns, text, UnknownActivity)
}
