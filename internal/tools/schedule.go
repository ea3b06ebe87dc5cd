// ABOUTME: Check-in scheduler: generates the next four check-in dates and questions.
// ABOUTME: Adds a weight question when the session goal is weight loss.

package tools

import (
	"fmt"
	"time"

	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// CheckinSchedulerName identifies this module in telemetry.
const CheckinSchedulerName = "checkin_scheduler"

const upcomingCheckins = 4

var baseQuestions = []string{
	"How are you feeling about your progress?",
	"Did you stick to your meal plan?",
	"How many workouts did you complete?",
	"What challenges did you face?",
	"What went well this week?",
}

// CheckinScheduler plans recurring check-ins.
type CheckinScheduler struct {
	Now func() time.Time // defaults to time.Now
}

// Schedule converts the frequency to an interval and lays out the next
// occurrences, each rendered as calendar date plus weekday name.
func (s CheckinScheduler) Schedule(freq extract.Frequency, ctx *session.Context) response.Envelope {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	interval := freq.Days()
	upcoming := make([]response.Checkin, 0, upcomingCheckins)
	for i := 1; i <= upcomingCheckins; i++ {
		d := now.AddDate(0, 0, interval*i)
		upcoming = append(upcoming, response.Checkin{
			Date: d.Format("2006-01-02"),
			Day:  d.Weekday().String(),
		})
	}

	questions := append([]string(nil), baseQuestions...)
	if ctx.Goal != nil && ctx.Goal.Category == extract.GoalWeightLoss {
		questions = append(questions, "Have you recorded your weight?")
	}

	ctx.AddProgressLog("scheduling", fmt.Sprintf("Scheduled %s check-ins", freq))

	return response.Wrap(response.Schedule{
		Message:       fmt.Sprintf("Great! I've scheduled %s check-ins for you.", freq),
		FrequencyDays: interval,
		NextCheckin:   upcoming[0],
		Upcoming:      upcoming,
		Questions:     questions,
	})
}
