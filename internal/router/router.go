// ABOUTME: The conversational router: classifies a message and dispatches it to
// ABOUTME: a capability module or a specialist, handoffs taking priority.

package router

import (
	"strings"

	"github.com/mauromedda/wellness-planner-go/internal/catalog"
	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
	"github.com/mauromedda/wellness-planner-go/internal/specialist"
	"github.com/mauromedda/wellness-planner-go/internal/tools"
)

// Notifier observes routing decisions. Implementations must tolerate being
// called once per routed message; panics are swallowed so a broken sink
// cannot take down routing.
type Notifier interface {
	NotifyDispatch(module string)
	NotifyHandoff(from, to string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) NotifyDispatch(string) {}

func (NopNotifier) NotifyHandoff(_, _ string) {}

// Router owns the capability modules and specialist responders and routes
// each incoming message to exactly one of them.
type Router struct {
	notifier Notifier

	goals     tools.GoalAnalyzer
	meals     tools.MealPlanner
	workouts  tools.WorkoutRecommender
	checkins  tools.CheckinScheduler
	progress  tools.ProgressTracker
	escalate  specialist.Escalation
	nutrition specialist.NutritionExpert
	injury    specialist.InjurySupport
}

// New builds a router over the given template catalog. A nil notifier
// defaults to NopNotifier.
func New(cat *catalog.Catalog, notifier Notifier) *Router {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Router{
		notifier:  notifier,
		meals:     tools.MealPlanner{Catalog: cat},
		workouts:  tools.WorkoutRecommender{Catalog: cat},
		nutrition: specialist.NutritionExpert{Catalog: cat},
		injury:    specialist.InjurySupport{Catalog: cat},
	}
}

// Route resolves one user message to exactly one reply envelope. Handoff
// triggers are checked before intents, so "I hurt my knee during my workout"
// reaches the injury responder, not the workout module.
func (r *Router) Route(message string, ctx *session.Context) response.Envelope {
	if handoff, ok := classifyHandoff(message); ok {
		return response.Normalize(r.routeHandoff(handoff, message, ctx))
	}
	return response.Normalize(r.routeIntent(classifyIntent(message), message, ctx))
}

func (r *Router) routeHandoff(handoff Handoff, message string, ctx *session.Context) response.Envelope {
	switch handoff {
	case HandoffEscalation:
		r.notifyHandoff(specialist.EscalationName)
		return r.escalate.Handle(message, ctx)
	case HandoffNutrition:
		r.notifyHandoff(specialist.NutritionExpertName)
		return r.nutrition.Consult(extract.NutritionTopicFromText(message), ctx)
	default:
		r.notifyHandoff(specialist.InjurySupportName)
		return r.injury.Consult(extract.InjuryTypeFromText(message), ctx)
	}
}

func (r *Router) routeIntent(intent Intent, message string, ctx *session.Context) response.Envelope {
	switch intent {
	case IntentGoal:
		r.notifyDispatch(tools.GoalAnalyzerName)
		return r.goals.Analyze(message, ctx)
	case IntentMeal:
		r.notifyDispatch(tools.MealPlannerName)
		return r.meals.Generate(extract.DietTypeFromText(message), ctx)
	case IntentWorkout:
		r.notifyDispatch(tools.WorkoutRecommenderName)
		return r.workouts.Recommend(message, ctx)
	case IntentProgress:
		r.notifyDispatch(tools.ProgressTrackerName)
		return r.progress.Update(extract.RawMetricsFromText(message), ctx)
	case IntentSchedule:
		r.notifyDispatch(tools.CheckinSchedulerName)
		return r.checkins.Schedule(extract.FrequencyFromText(message), ctx)
	default:
		// General messages never touch the session or the notifier.
		return general(message)
	}
}

var helpCapabilities = []string{
	"🎯 Set and track fitness goals",
	"🍽️ Create personalized meal plans",
	"💪 Design custom workout routines",
	"📊 Track your progress",
	"📅 Schedule check-ins and reminders",
	"🏥 Provide specialized support for injuries and dietary needs",
}

var conversationSuggestions = []string{
	"Set a fitness goal",
	"Plan my meals",
	"Create a workout routine",
	"Track my progress",
}

func general(message string) response.Envelope {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "help") || strings.Contains(lower, "what can you do") {
		return response.Wrap(response.Help{
			Message:      "I'm your health and wellness assistant! Here's what I can help you with:",
			Capabilities: append([]string(nil), helpCapabilities...),
		})
	}
	return response.Wrap(response.Conversation{
		Message:     "Hi! I can help you with your health and wellness goals. What would you like to work on today?",
		Suggestions: append([]string(nil), conversationSuggestions...),
	})
}

// notifyDispatch and notifyHandoff shield routing from sink failures.

func (r *Router) notifyDispatch(module string) {
	defer func() { _ = recover() }()
	r.notifier.NotifyDispatch(module)
}

func (r *Router) notifyHandoff(to string) {
	defer func() { _ = recover() }()
	r.notifier.NotifyHandoff("router", to)
}
