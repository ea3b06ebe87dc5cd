// ABOUTME: Escalation responder: connects the user to a human coach.
// ABOUTME: Returns a static playbook plus a read-only snapshot of the session.

package specialist

import (
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// EscalationName identifies this responder in telemetry.
const EscalationName = "escalation_agent"

var escalationNextSteps = []string{
	"Your request has been sent to our coaching team",
	"A certified trainer will contact you within 24 hours",
	"You can continue using the app while you wait",
}

// Escalation hands the conversation to a human coach.
type Escalation struct{}

// Handle logs the handoff and prepares the coach-facing summary. Beyond the
// handoff log the session is only read, never mutated.
func (Escalation) Handle(reason string, ctx *session.Context) response.Envelope {
	ctx.AddHandoffLog("Escalated to human coach: " + reason)

	return response.Wrap(response.Escalation{
		Message:       "I'll connect you with a human coach right away!",
		Reason:        reason,
		UserSummary:   ctx.Summarize(),
		NextSteps:     append([]string(nil), escalationNextSteps...),
		EstimatedWait: "24 hours",
	})
}
