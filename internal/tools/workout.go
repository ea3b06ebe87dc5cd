// ABOUTME: Workout recommender: parses preferences and selects a weekly template.
// ABOUTME: Converts a missing template into an error reply instead of propagating.

package tools

import (
	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// WorkoutRecommenderName identifies this module in telemetry.
const WorkoutRecommenderName = "workout_recommender"

var workoutSafetyTips = []string{
	"Always warm up before exercising",
	"Stay hydrated",
	"Listen to your body",
	"Use proper form",
}

// WorkoutRecommender generates weekly workout plans.
type WorkoutRecommender struct {
	Catalog *catalog.Catalog
}

// Recommend parses the preference text, selects the matching template, and
// stores the plan on the session.
func (w WorkoutRecommender) Recommend(text string, ctx *session.Context) response.Envelope {
	prefs := extract.WorkoutPrefsFromText(text)

	weekly, err := w.Catalog.WorkoutPlan(prefs.Type, prefs.Experience)
	if err != nil {
		return response.Errorf(err)
	}

	ctx.SetWorkoutPlan(session.WorkoutPlan{
		Type:       prefs.Type,
		Experience: prefs.Experience,
		Weekly:     weekly,
	})
	ctx.AddProgressLog("workout_planning", "Generated workout plan")

	return response.Wrap(response.WorkoutPlan{
		Type:       prefs.Type,
		Experience: prefs.Experience,
		Weekly:     weekly,
		SafetyTips: append([]string(nil), workoutSafetyTips...),
	})
}
