// ABOUTME: Meal planner: builds a 7-day plan from diet templates and the session goal.
// ABOUTME: Slot lists cycle by day index, so short lists repeat dishes within the week.

package tools

import (
	"fmt"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// MealPlannerName identifies this module in telemetry.
const MealPlannerName = "meal_planner"

const baseCalories = 2000

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MealPlanner generates weekly meal plans.
type MealPlanner struct {
	Catalog *catalog.Catalog
}

// Generate builds the 7-day plan for the given diet, reading the goal off
// the session for calorie targeting, and stores both diet and plan.
func (m MealPlanner) Generate(diet extract.DietType, ctx *session.Context) response.Envelope {
	slots := m.Catalog.MealTemplates(diet)

	days := make([]session.MealDay, 0, len(weekdays))
	for i, day := range weekdays {
		days = append(days, session.MealDay{
			Day:       day,
			Breakfast: slots.Breakfast[i%len(slots.Breakfast)],
			Lunch:     slots.Lunch[i%len(slots.Lunch)],
			Dinner:    slots.Dinner[i%len(slots.Dinner)],
			Snack:     slots.Snack[i%len(slots.Snack)],
			Calories:  estimateCalories(ctx.Goal),
		})
	}

	ctx.SetDietPreference(diet)
	ctx.SetMealPlan(days)
	ctx.AddProgressLog("meal_planning", fmt.Sprintf("Generated %s meal plan", diet))

	return response.Wrap(response.MealPlan{
		DietType:   diet,
		DailyPlans: days,
		Tips:       m.Catalog.MealTips(diet),
	})
}

// estimateCalories adjusts the daily baseline by goal direction.
func estimateCalories(goal *extract.Goal) int {
	if goal == nil {
		return baseCalories
	}
	switch goal.Category {
	case extract.GoalWeightLoss:
		return baseCalories - 300
	case extract.GoalWeightGain:
		return baseCalories + 300
	default:
		return baseCalories
	}
}
