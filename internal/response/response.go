// ABOUTME: Tagged response envelope: one typed payload variant per reply kind.
// ABOUTME: Normalize defaults missing kind/content at the module boundary.

package response

import (
	"time"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// Kind tags the payload variant carried by an envelope.
type Kind string

const (
	KindUnknown          Kind = "unknown"
	KindGoalAnalysis     Kind = "goal_analysis"
	KindMealPlan         Kind = "meal_plan"
	KindWorkoutPlan      Kind = "workout_plan"
	KindSchedule         Kind = "schedule"
	KindProgressUpdate   Kind = "progress_update"
	KindEscalation       Kind = "escalation"
	KindNutritionConsult Kind = "nutrition_consultation"
	KindInjuryConsult    Kind = "injury_consultation"
	KindHelp             Kind = "help"
	KindConversation     Kind = "conversation"
	KindError            Kind = "error"
)

// Content is implemented by every payload variant.
type Content interface {
	Kind() Kind
}

// Envelope is the value every routed message resolves to. Kind and Content
// are always both set once the envelope has crossed Normalize.
type Envelope struct {
	Kind    Kind
	Content Content
}

// Wrap builds an envelope from a payload, deriving the kind tag.
func Wrap(c Content) Envelope {
	return Normalize(Envelope{Content: c})
}

// Errorf builds an error-kind envelope from an error.
func Errorf(err error) Envelope {
	return Wrap(ErrorDetail{Message: err.Error()})
}

// Normalize defaults missing pieces: a nil payload becomes Unknown{}, a
// missing kind is derived from the payload. Idempotent.
func Normalize(e Envelope) Envelope {
	if e.Content == nil {
		e.Content = Unknown{}
	}
	if e.Kind == "" {
		e.Kind = e.Content.Kind()
	}
	return e
}

// Unknown is the defaulted payload for malformed envelopes.
type Unknown struct{}

func (Unknown) Kind() Kind { return KindUnknown }

// ErrorDetail reports a module-internal failure as a normal reply.
type ErrorDetail struct {
	Message string `json:"error"`
}

func (ErrorDetail) Kind() Kind { return KindError }

// GoalAnalysis is the goal module's reply.
type GoalAnalysis struct {
	Message         string       `json:"message"`
	Goal            extract.Goal `json:"goal_data"`
	Feasibility     string       `json:"feasibility"`
	Recommendations []string     `json:"recommendations"`
}

func (GoalAnalysis) Kind() Kind { return KindGoalAnalysis }

// MealPlan is the meal module's reply: a 7-day plan plus diet tips.
type MealPlan struct {
	DietType   extract.DietType  `json:"dietary_type"`
	DailyPlans []session.MealDay `json:"daily_plans"`
	Tips       []string          `json:"tips"`
}

func (MealPlan) Kind() Kind { return KindMealPlan }

// WorkoutPlan is the workout module's reply.
type WorkoutPlan struct {
	Type       extract.WorkoutType  `json:"workout_type"`
	Experience extract.Experience   `json:"experience_level"`
	Weekly     []catalog.WorkoutDay `json:"weekly_plan"`
	SafetyTips []string             `json:"safety_tips"`
}

func (WorkoutPlan) Kind() Kind { return KindWorkoutPlan }

// Checkin is one scheduled check-in occurrence.
type Checkin struct {
	Date string `json:"date"` // calendar date, YYYY-MM-DD
	Day  string `json:"day"`  // weekday name
}

// Schedule is the check-in module's reply.
type Schedule struct {
	Message       string    `json:"message"`
	FrequencyDays int       `json:"frequency_days"`
	NextCheckin   Checkin   `json:"next_checkin"`
	Upcoming      []Checkin `json:"upcoming_checkins"`
	Questions     []string  `json:"questions"`
}

func (Schedule) Kind() Kind { return KindSchedule }

// ProgressData is the validated progress record; absent metrics are omitted.
type ProgressData struct {
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes"`
	Metrics   struct {
		Weight   *float64 `json:"weight,omitempty"`
		Workouts *int     `json:"workouts_completed,omitempty"`
	} `json:"metrics"`
}

// ProgressAnalysis scores the update and carries the insight strings.
type ProgressAnalysis struct {
	OverallScore int      `json:"overall_score"`
	Insights     []string `json:"insights"`
}

// ProgressUpdate is the progress module's reply.
type ProgressUpdate struct {
	Message         string           `json:"message"`
	Data            ProgressData     `json:"progress_data"`
	Analysis        ProgressAnalysis `json:"analysis"`
	Recommendations []string         `json:"recommendations"`
}

func (ProgressUpdate) Kind() Kind { return KindProgressUpdate }

// Escalation is the human-coach handoff reply.
type Escalation struct {
	Message       string          `json:"message"`
	Reason        string          `json:"escalation_reason"`
	UserSummary   session.Summary `json:"user_summary"`
	NextSteps     []string        `json:"next_steps"`
	EstimatedWait string          `json:"estimated_wait_time"`
}

func (Escalation) Kind() Kind { return KindEscalation }

// NutritionConsult is the nutrition specialist's reply.
type NutritionConsult struct {
	Message         string                   `json:"message"`
	Topic           extract.NutritionTopic   `json:"consultation_type"`
	Recommendations []catalog.Recommendation `json:"recommendations"`
	ImportantNotes  []string                 `json:"important_notes"`
	Resources       []catalog.Resource       `json:"resources"`
}

func (NutritionConsult) Kind() Kind { return KindNutritionConsult }

// InjuryConsult is the injury specialist's reply.
type InjuryConsult struct {
	Message          string                   `json:"message"`
	InjuryType       extract.InjuryType       `json:"injury_type"`
	Analysis         catalog.InjuryAnalysis   `json:"injury_analysis"`
	Recommendations  []catalog.Recommendation `json:"recommendations"`
	ModifiedPlan     []catalog.WorkoutDay     `json:"modified_workout_plan"`
	SafetyGuidelines []string                 `json:"safety_guidelines"`
}

func (InjuryConsult) Kind() Kind { return KindInjuryConsult }

// Help lists what the assistant can do.
type Help struct {
	Message      string   `json:"message"`
	Capabilities []string `json:"capabilities"`
}

func (Help) Kind() Kind { return KindHelp }

// Conversation is the greeting-with-suggestions fallback.
type Conversation struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func (Conversation) Kind() Kind { return KindConversation }
