// ABOUTME: Keyword classification: handoff triggers and intents as ordered rule tables.
// ABOUTME: First matching rule wins; adding or reordering categories is a data change.

package router

import "strings"

// Intent is the coarse category assigned to a user message.
type Intent string

const (
	IntentGoal     Intent = "goal"
	IntentMeal     Intent = "meal"
	IntentWorkout  Intent = "workout"
	IntentProgress Intent = "progress"
	IntentSchedule Intent = "schedule"
	IntentGeneral  Intent = "general"
)

// Handoff is a higher-priority override routing to a specialist.
type Handoff string

const (
	HandoffEscalation Handoff = "escalation"
	HandoffNutrition  Handoff = "nutrition"
	HandoffInjury     Handoff = "injury"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

type handoffRule struct {
	handoff  Handoff
	keywords []string
}

// Rule order is the priority order; classification is first-match, not
// best-match, so earlier categories win even when later keywords appear too.
var intentRules = []intentRule{
	{IntentGoal, []string{"goal", "want to", "trying to"}},
	{IntentMeal, []string{"meal", "food", "diet", "eat"}},
	{IntentWorkout, []string{"workout", "exercise", "fitness"}},
	{IntentProgress, []string{"progress", "update", "track"}},
	{IntentSchedule, []string{"schedule", "remind", "checkin"}},
}

var handoffRules = []handoffRule{
	{HandoffEscalation, []string{"human", "coach", "trainer", "person"}},
	{HandoffNutrition, []string{"diabetes", "allergy", "allergic"}},
	{HandoffInjury, []string{"injury", "pain", "hurt"}},
}

// classifyIntent resolves a message to an intent; general is the fallback,
// so classification is total.
func classifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			return rule.intent
		}
	}
	return IntentGeneral
}

// classifyHandoff reports the first matching handoff trigger, if any.
// Handoff checks run before intent classification and win over it.
func classifyHandoff(message string) (Handoff, bool) {
	lower := strings.ToLower(message)
	for _, rule := range handoffRules {
		if containsAny(lower, rule.keywords) {
			return rule.handoff, true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
