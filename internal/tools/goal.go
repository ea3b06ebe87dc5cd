// ABOUTME: Goal analyzer: parses a free-text fitness goal and judges feasibility.
// ABOUTME: Stores the goal on the session and appends one audit entry.

package tools

import (
	"fmt"

	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// GoalAnalyzerName identifies this module in telemetry.
const GoalAnalyzerName = "goal_analyzer"

var goalRecommendations = []string{
	"Start with small, consistent changes",
	"Track your progress regularly",
	"Stay hydrated and get enough sleep",
}

// GoalAnalyzer interprets fitness goals.
type GoalAnalyzer struct{}

// Analyze extracts the goal, updates the session, and rates feasibility.
func (GoalAnalyzer) Analyze(text string, ctx *session.Context) response.Envelope {
	goal := extract.GoalFromText(text)

	ctx.SetGoal(goal)
	ctx.AddProgressLog("goal_analysis", "Set goal: "+text)

	return response.Wrap(response.GoalAnalysis{
		Message:         fmt.Sprintf("Great! I've analyzed your goal: %s", text),
		Goal:            goal,
		Feasibility:     feasibility(goal),
		Recommendations: append([]string(nil), goalRecommendations...),
	})
}

// feasibility rates the goal. Losing more than 2 units is challenging;
// the heuristic is deliberately unit-agnostic.
func feasibility(g extract.Goal) string {
	if g.Category != extract.GoalWeightLoss {
		return "achievable with consistency"
	}
	if g.HasQuantity && g.Quantity > 2 {
		return "challenging but achievable"
	}
	return "very achievable"
}
