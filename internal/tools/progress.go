// ABOUTME: Progress tracker: coerces reported metrics, logs them, and picks an insight.
// ABOUTME: The overall score is a fixed 75; the low-score recommendation branch is kept as-is.

package tools

import (
	"encoding/json"
	"time"

	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// ProgressTrackerName identifies this module in telemetry.
const ProgressTrackerName = "progress_tracker"

const overallScore = 75

var progressRecommendations = []string{
	"Keep tracking your progress regularly",
	"Stay consistent with your plan",
	"Celebrate small wins",
}

// ProgressTracker records progress updates.
type ProgressTracker struct {
	Now func() time.Time // defaults to time.Now
}

// Update coerces the captured metrics, appends a JSON-serialized audit
// entry, and returns the analysis. Coercion failures become error replies.
func (p ProgressTracker) Update(raw extract.RawMetrics, ctx *session.Context) response.Envelope {
	metrics, err := raw.Coerce()
	if err != nil {
		return response.Errorf(err)
	}

	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	data := response.ProgressData{
		Timestamp: now,
		Notes:     metrics.Notes,
	}
	if metrics.HasWeight {
		w := metrics.Weight
		data.Metrics.Weight = &w
	}
	if metrics.HasWorkouts {
		n := metrics.Workouts
		data.Metrics.Workouts = &n
	}

	entry, err := json.Marshal(data)
	if err != nil {
		return response.Errorf(err)
	}
	ctx.AddProgressLog("progress_update", string(entry))

	analysis := analyzeProgress(metrics)

	recs := append([]string(nil), progressRecommendations...)
	if analysis.OverallScore < 50 {
		recs = append(recs, "Consider adjusting your goals to be more achievable")
	}

	return response.Wrap(response.ProgressUpdate{
		Message:         "Progress updated successfully!",
		Data:            data,
		Analysis:        analysis,
		Recommendations: recs,
	})
}

// analyzeProgress selects an insight from the workout count. An absent
// count reads as zero here.
func analyzeProgress(m extract.Metrics) response.ProgressAnalysis {
	a := response.ProgressAnalysis{OverallScore: overallScore}

	switch {
	case m.Workouts >= 3:
		a.Insights = append(a.Insights, "Great job on workout consistency!")
	case m.Workouts >= 1:
		a.Insights = append(a.Insights, "Good start! Try to increase workout frequency.")
	default:
		a.Insights = append(a.Insights, "Let's work on getting more workouts in.")
	}

	return a
}
