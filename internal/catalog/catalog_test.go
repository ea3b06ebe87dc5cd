// ABOUTME: Tests for catalog loading, enum coverage, and injury plan safety.
// ABOUTME: Verifies fallbacks (paleo meals, unknown tips) and read-only copies.

package catalog

import (
	"strings"
	"testing"

	"github.com/mauromedda/wellness-planner-go/internal/extract"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestLoad_Validates(t *testing.T) {
	t.Parallel()
	mustLoad(t)
}

func TestMealTemplates_KnownDiet(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	slots := c.MealTemplates(extract.DietVegetarian)

	if got := slots.Breakfast[0]; got != "Oatmeal with berries" {
		t.Errorf("vegetarian breakfast[0] = %q, want %q", got, "Oatmeal with berries")
	}
	if len(slots.Breakfast) != 4 {
		t.Errorf("vegetarian breakfast has %d entries, want 4", len(slots.Breakfast))
	}
}

func TestMealTemplates_PaleoFallsBackToOmnivore(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	paleo := c.MealTemplates(extract.DietPaleo)
	omni := c.MealTemplates(extract.DietOmnivore)

	if paleo.Dinner[0] != omni.Dinner[0] {
		t.Errorf("paleo dinner[0] = %q, want omnivore %q", paleo.Dinner[0], omni.Dinner[0])
	}
}

func TestMealTips_FallbackGeneric(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	tips := c.MealTips(extract.DietPaleo)

	if len(tips) == 0 || tips[0] != "Eat balanced meals" {
		t.Errorf("generic tips = %v", tips)
	}
}

func TestWorkoutPlan_AllCombinations(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	levels := []extract.Experience{extract.ExperienceBeginner, extract.ExperienceIntermediate, extract.ExperienceAdvanced}

	for _, wt := range []extract.WorkoutType{extract.WorkoutStrength, extract.WorkoutCardio} {
		for _, lvl := range levels {
			days, err := c.WorkoutPlan(wt, lvl)
			if err != nil {
				t.Fatalf("WorkoutPlan(%s, %s): %v", wt, lvl, err)
			}
			if len(days) == 0 {
				t.Errorf("WorkoutPlan(%s, %s) is empty", wt, lvl)
			}
		}
	}
}

func TestWorkoutPlan_DayCountsGrowWithLevel(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	beg, _ := c.WorkoutPlan(extract.WorkoutStrength, extract.ExperienceBeginner)
	adv, _ := c.WorkoutPlan(extract.WorkoutStrength, extract.ExperienceAdvanced)

	if len(beg) != 3 || len(adv) != 5 {
		t.Errorf("strength day counts = %d/%d, want 3/5", len(beg), len(adv))
	}
}

func TestInjuryProfile_KneePlanAvoidsImpact(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	p := c.InjuryProfile(extract.InjuryKnee)

	for _, day := range p.RecoveryPlan {
		for _, ex := range day.Exercises {
			lower := strings.ToLower(ex)
			for _, banned := range []string{"running", "jumping", "squat"} {
				if strings.Contains(lower, banned) {
					t.Errorf("knee plan contains %q on %s", ex, day.Day)
				}
			}
		}
	}
	if p.ExtraGuideline != "Avoid deep squats and lunges" {
		t.Errorf("knee extra guideline = %q", p.ExtraGuideline)
	}
	if p.ExtraRecommendation == nil {
		t.Error("knee profile should carry an extra recommendation")
	}
}

func TestInjuryProfile_BackPlanAvoidsForwardBending(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	p := c.InjuryProfile(extract.InjuryBack)

	for _, day := range p.RecoveryPlan {
		for _, ex := range day.Exercises {
			if strings.Contains(strings.ToLower(ex), "deadlift") {
				t.Errorf("back plan contains %q on %s", ex, day.Day)
			}
		}
	}
	if p.ExtraGuideline != "Maintain neutral spine alignment" {
		t.Errorf("back extra guideline = %q", p.ExtraGuideline)
	}
}

func TestInjuryProfile_ShoulderSharesGenericPlan(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	shoulder := c.InjuryProfile(extract.InjuryShoulder)
	general := c.InjuryProfile(extract.InjuryGeneral)

	if len(shoulder.RecoveryPlan) != len(general.RecoveryPlan) {
		t.Fatalf("plan lengths differ: %d vs %d", len(shoulder.RecoveryPlan), len(general.RecoveryPlan))
	}
	for i := range shoulder.RecoveryPlan {
		if shoulder.RecoveryPlan[i].Focus != general.RecoveryPlan[i].Focus {
			t.Errorf("day %d focus differs: %q vs %q", i, shoulder.RecoveryPlan[i].Focus, general.RecoveryPlan[i].Focus)
		}
	}
}

func TestNutritionTopic_ExtrasPerTopic(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)

	if got := c.NutritionTopic(extract.NutritionDiabetes).ExtraNote; got != "Monitor blood glucose levels regularly" {
		t.Errorf("diabetes extra note = %q", got)
	}
	if got := c.NutritionTopic(extract.NutritionGeneral).ExtraNote; got != "" {
		t.Errorf("general extra note = %q, want empty", got)
	}
	if got := len(c.NutritionResources()); got != 2 {
		t.Errorf("resources = %d, want 2", got)
	}
	if got := len(c.NutritionBaseNotes()); got != 3 {
		t.Errorf("base notes = %d, want 3", got)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)

	tips := c.MealTips(extract.DietKeto)
	tips[0] = "mutated"
	if c.MealTips(extract.DietKeto)[0] == "mutated" {
		t.Error("MealTips returned shared backing storage")
	}

	days, _ := c.WorkoutPlan(extract.WorkoutStrength, extract.ExperienceBeginner)
	days[0].Exercises[0] = "mutated"
	fresh, _ := c.WorkoutPlan(extract.WorkoutStrength, extract.ExperienceBeginner)
	if fresh[0].Exercises[0] == "mutated" {
		t.Error("WorkoutPlan returned shared backing storage")
	}
}
