// Package intent turns a spoken utterance into a classified domain.Intent.
//
// Classification walks an ordered rule table and stops at the first rule
// whose trigger phrase occurs in the lower-cased text. Extraction never
// fails; missing parameters degrade to placeholder values.
package intent

import (
	"strings"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// Handler actions.
const (
	ActionGetDirections   = "get_directions"
	ActionCreateReminder  = "create_reminder"
	ActionRecallPerson    = "recall_person"
	ActionCreateEntry     = "create_entry"
	ActionMarkCompleted   = "mark_completed"
	ActionGeneralResponse = "general_response"
)

// Parameter names.
const (
	ParamDestination = "destination"
	ParamTask        = "task"
	ParamTime        = "time"
	ParamPerson      = "person"
	ParamContent     = "content"
	ParamActivity    = "activity"
	ParamQuery       = "query"
)

// Extractor builds the intent parameters. lower is the lower-cased
// utterance, original the text as spoken.
type Extractor func(lower, original string) map[string]string

// Rule maps trigger phrases to an intent category.
type Rule struct {
	Type     domain.CommandType
	Action   string
	Triggers []string
	Extract  Extractor
}

// Matches reports whether any trigger occurs in the lower-cased text.
func (r Rule) Matches(lower string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// "remember" precedes "remember this", so memory recall wins that overlap.
var rules = []Rule{
	{
		Type:     domain.CommandTypeNavigation,
		Action:   ActionGetDirections,
		Triggers: []string{"take me", "navigate", "directions"},
		Extract: func(lower, _ string) map[string]string {
			return map[string]string{ParamDestination: ExtractDestination(lower)}
		},
	},
	{
		Type:     domain.CommandTypeReminder,
		Action:   ActionCreateReminder,
		Triggers: []string{"remind me", "set reminder"},
		Extract: func(lower, _ string) map[string]string {
			task, when := ExtractReminder(lower)
			return map[string]string{ParamTask: task, ParamTime: when}
		},
	},
	{
		Type:     domain.CommandTypeMemoryRecall,
		Action:   ActionRecallPerson,
		Triggers: []string{"who is", "tell me about", "remember"},
		Extract: func(lower, _ string) map[string]string {
			return map[string]string{ParamPerson: ExtractPerson(lower)}
		},
	},
	{
		Type:     domain.CommandTypeJournalEntry,
		Action:   ActionCreateEntry,
		Triggers: []string{"journal", "note", "remember this"},
		Extract: func(_, original string) map[string]string {
			return map[string]string{ParamContent: original}
		},
	},
	{
		Type:     domain.CommandTypeActivityLog,
		Action:   ActionMarkCompleted,
		Triggers: []string{"completed", "finished", "done with"},
		Extract: func(lower, _ string) map[string]string {
			return map[string]string{ParamActivity: ExtractActivity(lower)}
		},
	},
}

// Rules returns the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify maps an utterance to an intent. Unmatched text becomes a
// general intent carrying the original text as the query.
func Classify(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.Matches(lower) {
			return domain.Intent{Type: r.Type, Action: r.Action, Parameters: r.Extract(lower, text)}
		}
	}
	return domain.Intent{
		Type:       domain.CommandTypeGeneral,
		Action:     ActionGeneralResponse,
		Parameters: map[string]string{ParamQuery: text},
	}
}
