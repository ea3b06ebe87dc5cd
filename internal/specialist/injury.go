// ABOUTME: Injury support responder: movement analysis and a modified recovery plan.
// ABOUTME: Records the consultation outcome in the session's injury notes.

package specialist

import (
	"fmt"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// InjurySupportName identifies this responder in telemetry.
const InjurySupportName = "injury_support_agent"

// InjurySupport helps the user stay active safely while recovering.
type InjurySupport struct {
	Catalog *catalog.Catalog
}

// Consult logs the handoff, assembles the injury bundle, and notes the
// consultation outcome on the session.
func (i InjurySupport) Consult(injury extract.InjuryType, ctx *session.Context) response.Envelope {
	ctx.AddHandoffLog("Injury consultation: " + string(injury))

	profile := i.Catalog.InjuryProfile(injury)

	recs := i.Catalog.InjuryBaseRecommendations()
	if profile.ExtraRecommendation != nil {
		recs = append(recs, *profile.ExtraRecommendation)
	}

	guidelines := i.Catalog.InjuryBaseGuidelines()
	if profile.ExtraGuideline != "" {
		guidelines = append(guidelines, profile.ExtraGuideline)
	}

	ctx.SetInjuryNotes(fmt.Sprintf("%s: modified plan created", injury))

	return response.Wrap(response.InjuryConsult{
		Message:          "I'll help you stay active safely while you recover.",
		InjuryType:       injury,
		Analysis:         profile.Analysis,
		Recommendations:  recs,
		ModifiedPlan:     profile.RecoveryPlan,
		SafetyGuidelines: guidelines,
	})
}
