// ABOUTME: Projects reply envelopes into markdown for the chat transcript.
// ABOUTME: One formatting branch per envelope kind; unknown kinds degrade gracefully.

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
	"github.com/mauromedda/wellness-planner-go/internal/telemetry"
)

// FormatEnvelope renders a reply envelope as markdown.
func FormatEnvelope(env response.Envelope) string {
	switch c := env.Content.(type) {
	case response.GoalAnalysis:
		return formatGoal(c)
	case response.MealPlan:
		return formatMealPlan(c)
	case response.WorkoutPlan:
		return formatWorkoutPlan(c)
	case response.Schedule:
		return formatSchedule(c)
	case response.ProgressUpdate:
		return formatProgress(c)
	case response.Escalation:
		return formatEscalation(c)
	case response.NutritionConsult:
		return formatNutrition(c)
	case response.InjuryConsult:
		return formatInjury(c)
	case response.Help:
		return formatHelp(c)
	case response.Conversation:
		return formatConversation(c)
	case response.ErrorDetail:
		return "**Sorry, something went wrong:** " + c.Message
	default:
		return "_I didn't quite catch that._"
	}
}

func formatGoal(c response.GoalAnalysis) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	fmt.Fprintf(&b, "- **Category:** %s\n", c.Goal.Category)
	if c.Goal.HasQuantity {
		fmt.Fprintf(&b, "- **Target:** %g %s\n", c.Goal.Quantity, c.Goal.Unit)
	}
	if c.Goal.Duration != "" {
		fmt.Fprintf(&b, "- **Timeframe:** %s\n", c.Goal.Duration)
	}
	fmt.Fprintf(&b, "- **Feasibility:** %s\n", c.Feasibility)
	writeList(&b, "Recommendations", c.Recommendations)
	return b.String()
}

func formatMealPlan(c response.MealPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your **%s** meal plan for the week:\n\n", c.DietType)
	b.WriteString("| Day | Breakfast | Lunch | Dinner | Snack | kcal |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, d := range c.DailyPlans {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d |\n",
			d.Day, d.Breakfast, d.Lunch, d.Dinner, d.Snack, d.Calories)
	}
	writeList(&b, "Tips", c.Tips)
	return b.String()
}

func formatWorkoutPlan(c response.WorkoutPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your **%s** plan (%s level):\n\n", c.Type, c.Experience)
	writeDays(&b, c.Weekly)
	writeList(&b, "Safety tips", c.SafetyTips)
	return b.String()
}

func formatSchedule(c response.Schedule) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	fmt.Fprintf(&b, "Next check-in: **%s** (%s)\n\n", c.NextCheckin.Date, c.NextCheckin.Day)
	b.WriteString("Upcoming:\n")
	for _, ci := range c.Upcoming {
		fmt.Fprintf(&b, "- %s (%s)\n", ci.Date, ci.Day)
	}
	writeList(&b, "We'll ask", c.Questions)
	return b.String()
}

func formatProgress(c response.ProgressUpdate) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	fmt.Fprintf(&b, "- **Overall score:** %d/100\n", c.Analysis.OverallScore)
	if c.Data.Metrics.Weight != nil {
		fmt.Fprintf(&b, "- **Weight:** %g\n", *c.Data.Metrics.Weight)
	}
	if c.Data.Metrics.Workouts != nil {
		fmt.Fprintf(&b, "- **Workouts completed:** %d\n", *c.Data.Metrics.Workouts)
	}
	writeList(&b, "Insights", c.Analysis.Insights)
	writeList(&b, "Recommendations", c.Recommendations)
	return b.String()
}

func formatEscalation(c response.Escalation) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	fmt.Fprintf(&b, "Estimated wait: **%s**\n", c.EstimatedWait)
	writeList(&b, "Next steps", c.NextSteps)
	b.WriteString("\n" + formatSummary(c.UserSummary))
	return b.String()
}

func formatNutrition(c response.NutritionConsult) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	writeRecommendations(&b, c.Recommendations)
	writeList(&b, "Important notes", c.ImportantNotes)
	if len(c.Resources) > 0 {
		b.WriteString("\n**Resources**\n\n")
		for _, r := range c.Resources {
			fmt.Fprintf(&b, "- *%s* (%s): %s\n", r.Title, r.Type, r.Description)
		}
	}
	return b.String()
}

func formatInjury(c response.InjuryConsult) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	fmt.Fprintf(&b, "- **Severity:** %s\n", c.Analysis.Severity)
	fmt.Fprintf(&b, "- **Safe movements:** %s\n", strings.Join(c.Analysis.SafeMovements, ", "))
	fmt.Fprintf(&b, "- **Avoid:** %s\n", strings.Join(c.Analysis.AvoidMovements, ", "))
	writeRecommendations(&b, c.Recommendations)
	if len(c.ModifiedPlan) > 0 {
		b.WriteString("\n**Modified plan**\n\n")
		writeDays(&b, c.ModifiedPlan)
	}
	writeList(&b, "Safety guidelines", c.SafetyGuidelines)
	return b.String()
}

func formatHelp(c response.Help) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n\n")
	for _, capability := range c.Capabilities {
		b.WriteString("- " + capability + "\n")
	}
	return b.String()
}

func formatConversation(c response.Conversation) string {
	var b strings.Builder
	b.WriteString(c.Message + "\n")
	writeList(&b, "Try one of these", c.Suggestions)
	return b.String()
}

// FormatSummary renders the session projection for the /summary command.
func FormatSummary(s session.Summary) string {
	return formatSummary(s)
}

func formatSummary(s session.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Session summary for %s**\n\n", s.Name)
	if s.Goal != nil {
		fmt.Fprintf(&b, "- Goal: %s (%s)\n", s.Goal.RawText, s.Goal.Category)
	}
	if s.DietPreference != "" {
		fmt.Fprintf(&b, "- Diet: %s\n", s.DietPreference)
	}
	if s.WorkoutPlan != nil {
		fmt.Fprintf(&b, "- Workout plan: %s, %s\n", s.WorkoutPlan.Type, s.WorkoutPlan.Experience)
	}
	fmt.Fprintf(&b, "- Progress entries: %d\n", s.ProgressEntries)
	return b.String()
}

// FormatMetrics renders the activity counters for the /metrics command.
func FormatMetrics(m telemetry.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Activity**\n\n- Total interactions: %d\n", m.TotalInteractions)
	if len(m.ModuleUsage) > 0 {
		b.WriteString("\nModule usage:\n")
		for _, k := range sortedKeys(m.ModuleUsage) {
			fmt.Fprintf(&b, "- %s: %d\n", k, m.ModuleUsage[k])
		}
	}
	if len(m.Handoffs) > 0 {
		b.WriteString("\nHandoffs:\n")
		for _, k := range sortedKeys(m.Handoffs) {
			fmt.Fprintf(&b, "- %s: %d\n", k, m.Handoffs[k])
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s**\n\n", title)
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}

func writeRecommendations(b *strings.Builder, recs []catalog.Recommendation) {
	if len(recs) == 0 {
		return
	}
	b.WriteString("\n**Recommendations**\n\n")
	for _, r := range recs {
		fmt.Fprintf(b, "- **%s** (%s priority): %s. %s\n", r.Category, r.Priority, r.Recommendation, r.Reason)
	}
}

func writeDays(b *strings.Builder, days []catalog.WorkoutDay) {
	for _, d := range days {
		fmt.Fprintf(b, "**%s**", d.Day)
		if d.Focus != "" {
			fmt.Fprintf(b, " · %s", d.Focus)
		}
		if d.Activity != "" {
			fmt.Fprintf(b, " · %s", d.Activity)
		}
		if d.Duration != "" {
			fmt.Fprintf(b, " (%s)", d.Duration)
		}
		b.WriteByte('\n')
		for _, ex := range d.Exercises {
			b.WriteString("- " + ex + "\n")
		}
		if d.Notes != "" {
			b.WriteString("_" + d.Notes + "_\n")
		}
		b.WriteByte('\n')
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
