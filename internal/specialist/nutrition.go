// ABOUTME: Nutrition expert responder: canned consultations for dietary conditions.
// ABOUTME: Per-topic recommendations plus shared notes and resources from the catalog.

package specialist

import (
	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// NutritionExpertName identifies this responder in telemetry.
const NutritionExpertName = "nutrition_expert_agent"

// NutritionExpert handles specialized dietary consultations.
type NutritionExpert struct {
	Catalog *catalog.Catalog
}

// Consult logs the handoff and assembles the per-topic bundle.
func (n NutritionExpert) Consult(topic extract.NutritionTopic, ctx *session.Context) response.Envelope {
	ctx.AddHandoffLog("Nutrition consultation: " + string(topic))

	advice := n.Catalog.NutritionTopic(topic)

	notes := n.Catalog.NutritionBaseNotes()
	if advice.ExtraNote != "" {
		notes = append(notes, advice.ExtraNote)
	}

	return response.Wrap(response.NutritionConsult{
		Message:         "I'm here to help with your specialized nutrition needs.",
		Topic:           topic,
		Recommendations: advice.Recommendations,
		ImportantNotes:  notes,
		Resources:       n.Catalog.NutritionResources(),
	})
}
