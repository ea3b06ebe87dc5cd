// ABOUTME: Tests for the three handoff responders: escalation, nutrition, injury.
// ABOUTME: Verifies one handoff-log entry per call and the per-type content bundles.

package specialist

import (
	"strings"
	"testing"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return cat
}

func TestEscalation_SummaryAndLog(t *testing.T) {
	t.Parallel()

	ctx := session.New("Ada", 1)
	ctx.SetGoal(extract.Goal{Category: extract.GoalWeightLoss, RawText: "lose 5kg"})
	ctx.AddProgressLog("goal_analysis", "x")
	ctx.AddProgressLog("meal_planning", "y")

	env := Escalation{}.Handle("I want a real trainer", ctx)

	if env.Kind != response.KindEscalation {
		t.Fatalf("Kind = %q", env.Kind)
	}
	esc := env.Content.(response.Escalation)
	if esc.UserSummary.Name != "Ada" || esc.UserSummary.ProgressEntries != 2 {
		t.Errorf("summary = %+v", esc.UserSummary)
	}
	if esc.EstimatedWait != "24 hours" {
		t.Errorf("wait = %q", esc.EstimatedWait)
	}
	if len(esc.NextSteps) != 3 {
		t.Errorf("next steps = %d, want 3", len(esc.NextSteps))
	}

	log := ctx.HandoffLog()
	if len(log) != 1 || !strings.Contains(log[0], "Escalated to human coach: I want a real trainer") {
		t.Errorf("handoff log = %v", log)
	}
	// Escalation reads the session but never writes plans or goals.
	if len(ctx.ProgressLog()) != 2 {
		t.Error("escalation must not append progress entries")
	}
}

func TestNutritionExpert_TopicBundles(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t)

	tests := []struct {
		topic     extract.NutritionTopic
		wantRecs  int
		wantNotes int
	}{
		{extract.NutritionDiabetes, 2, 4},
		{extract.NutritionAllergies, 2, 4},
		{extract.NutritionGeneral, 1, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic), func(t *testing.T) {
			t.Parallel()
			ctx := session.New("Ada", 1)
			env := NutritionExpert{Catalog: cat}.Consult(tt.topic, ctx)

			consult := env.Content.(response.NutritionConsult)
			if len(consult.Recommendations) != tt.wantRecs {
				t.Errorf("recommendations = %d, want %d", len(consult.Recommendations), tt.wantRecs)
			}
			if len(consult.ImportantNotes) != tt.wantNotes {
				t.Errorf("notes = %d, want %d", len(consult.ImportantNotes), tt.wantNotes)
			}
			if len(consult.Resources) != 2 {
				t.Errorf("resources = %d, want 2", len(consult.Resources))
			}
			if len(ctx.HandoffLog()) != 1 {
				t.Errorf("handoff log len = %d, want 1", len(ctx.HandoffLog()))
			}
		})
	}
}

func TestInjurySupport_KneeBundle(t *testing.T) {
	t.Parallel()

	ctx := session.New("Ada", 1)
	env := InjurySupport{Catalog: mustCatalog(t)}.Consult(extract.InjuryKnee, ctx)

	if env.Kind != response.KindInjuryConsult {
		t.Fatalf("Kind = %q", env.Kind)
	}
	consult := env.Content.(response.InjuryConsult)

	if len(consult.Recommendations) != 3 {
		t.Errorf("knee recommendations = %d, want 3 (2 base + knee extra)", len(consult.Recommendations))
	}
	if len(consult.SafetyGuidelines) != 4 {
		t.Errorf("knee guidelines = %d, want 4 (3 base + knee extra)", len(consult.SafetyGuidelines))
	}
	for _, day := range consult.ModifiedPlan {
		for _, ex := range day.Exercises {
			lower := strings.ToLower(ex)
			if strings.Contains(lower, "running") || strings.Contains(lower, "jumping") || strings.Contains(lower, "squat") {
				t.Errorf("knee plan contains %q", ex)
			}
		}
	}

	if ctx.InjuryNotes != "knee: modified plan created" {
		t.Errorf("injury notes = %q", ctx.InjuryNotes)
	}
	if len(ctx.HandoffLog()) != 1 {
		t.Errorf("handoff log len = %d, want 1", len(ctx.HandoffLog()))
	}
}

func TestInjurySupport_BackAvoidsForwardBending(t *testing.T) {
	t.Parallel()

	ctx := session.New("Ada", 1)
	consult := InjurySupport{Catalog: mustCatalog(t)}.Consult(extract.InjuryBack, ctx).Content.(response.InjuryConsult)

	for _, day := range consult.ModifiedPlan {
		for _, ex := range day.Exercises {
			lower := strings.ToLower(ex)
			if strings.Contains(lower, "deadlift") || strings.Contains(lower, "toe touch") || strings.Contains(lower, "forward") {
				t.Errorf("back plan contains forward-bending exercise %q", ex)
			}
		}
	}

	var cautioned bool
	for _, day := range consult.ModifiedPlan {
		if strings.Contains(day.Notes, "Avoid bending forward") {
			cautioned = true
		}
	}
	if !cautioned {
		t.Error("back plan should caution against bending forward")
	}

	var neutralSpine bool
	for _, g := range consult.SafetyGuidelines {
		if strings.Contains(g, "neutral spine") {
			neutralSpine = true
		}
	}
	if !neutralSpine {
		t.Errorf("guidelines missing neutral-spine guidance: %v", consult.SafetyGuidelines)
	}
}

func TestInjurySupport_ShoulderUsesGenericExtras(t *testing.T) {
	t.Parallel()

	ctx := session.New("Ada", 1)
	consult := InjurySupport{Catalog: mustCatalog(t)}.Consult(extract.InjuryShoulder, ctx).Content.(response.InjuryConsult)

	// Shoulder has no extra recommendation or guideline.
	if len(consult.Recommendations) != 2 {
		t.Errorf("shoulder recommendations = %d, want 2", len(consult.Recommendations))
	}
	if len(consult.SafetyGuidelines) != 3 {
		t.Errorf("shoulder guidelines = %d, want 3", len(consult.SafetyGuidelines))
	}
}
