// ABOUTME: Conversation-scoped user context: goal, preferences, plans, audit logs.
// ABOUTME: Named update methods per field; the two logs are append-only by construction.

package session

import (
	"fmt"
	"time"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
)

// MealDay is one day of a generated meal plan.
type MealDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snack     string `json:"snack"`
	Calories  int    `json:"calories"`
}

// WorkoutPlan is the most recently generated weekly workout plan.
type WorkoutPlan struct {
	Type       extract.WorkoutType  `json:"workout_type"`
	Experience extract.Experience   `json:"experience_level"`
	Weekly     []catalog.WorkoutDay `json:"weekly_plan"`
}

// ProgressEntry is one record of the session's mutation audit trail.
type ProgressEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
}

// Context is the mutable per-conversation state. One conversation owns one
// Context; there is no concurrent writer, so no locking discipline here.
type Context struct {
	Name           string
	ID             int
	Goal           *extract.Goal
	DietPreference extract.DietType
	WorkoutPlan    *WorkoutPlan
	MealPlan       []MealDay
	InjuryNotes    string

	handoffLog  []string
	progressLog []ProgressEntry

	now func() time.Time
}

// New creates a context for one user conversation.
func New(name string, id int) *Context {
	return &Context{
		Name: name,
		ID:   id,
		now:  time.Now,
	}
}

// SetGoal replaces the current goal (last write wins).
func (c *Context) SetGoal(g extract.Goal) {
	c.Goal = &g
}

// SetDietPreference replaces the current diet preference.
func (c *Context) SetDietPreference(d extract.DietType) {
	c.DietPreference = d
}

// SetWorkoutPlan replaces the current workout plan.
func (c *Context) SetWorkoutPlan(p WorkoutPlan) {
	c.WorkoutPlan = &p
}

// SetMealPlan replaces the stored meal plan view.
func (c *Context) SetMealPlan(days []MealDay) {
	c.MealPlan = days
}

// SetInjuryNotes replaces the injury consultation summary.
func (c *Context) SetInjuryNotes(notes string) {
	c.InjuryNotes = notes
}

// AddProgressLog appends one audit entry. Entries are never removed.
func (c *Context) AddProgressLog(category, message string) {
	c.progressLog = append(c.progressLog, ProgressEntry{
		Timestamp: c.now(),
		Category:  category,
		Message:   message,
	})
}

// AddHandoffLog appends one timestamped handoff record. Entries are never removed.
func (c *Context) AddHandoffLog(message string) {
	c.handoffLog = append(c.handoffLog, fmt.Sprintf("%s: %s", c.now().Format(time.RFC3339), message))
}

// ProgressLog returns a copy of the audit trail.
func (c *Context) ProgressLog() []ProgressEntry {
	return append([]ProgressEntry(nil), c.progressLog...)
}

// HandoffLog returns a copy of the handoff records.
func (c *Context) HandoffLog() []string {
	return append([]string(nil), c.handoffLog...)
}

// Summary is a read-only projection of the context, used when escalating to
// a human coach and by the chat surface.
type Summary struct {
	Name            string           `json:"user_name"`
	Goal            *extract.Goal    `json:"primary_goal,omitempty"`
	DietPreference  extract.DietType `json:"dietary_preferences,omitempty"`
	WorkoutPlan     *WorkoutPlan     `json:"workout_plan,omitempty"`
	ProgressEntries int              `json:"progress_entries"`
}

// Summarize builds the read-only projection. It never mutates the context.
func (c *Context) Summarize() Summary {
	return Summary{
		Name:            c.Name,
		Goal:            c.Goal,
		DietPreference:  c.DietPreference,
		WorkoutPlan:     c.WorkoutPlan,
		ProgressEntries: len(c.progressLog),
	}
}
