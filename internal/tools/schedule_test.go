// ABOUTME: Tests for the check-in scheduler: intervals, dates, and the goal question.
// ABOUTME: Uses an injected clock for deterministic calendar output.

package tools

import (
	"testing"
	"time"

	"github.com/mauromedda/wellness-planner-go/internal/extract"
	"github.com/mauromedda/wellness-planner-go/internal/response"
	"github.com/mauromedda/wellness-planner-go/internal/session"
)

// monday is 2025-06-02, a Monday.
func monday() time.Time {
	return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
}

func TestCheckinScheduler_DailyDates(t *testing.T) {
	t.Parallel()

	s := CheckinScheduler{Now: monday}
	env := s.Schedule(extract.FrequencyDaily, session.New("Ada", 1))

	if env.Kind != response.KindSchedule {
		t.Fatalf("Kind = %q", env.Kind)
	}
	sched := env.Content.(response.Schedule)
	if sched.FrequencyDays != 1 {
		t.Errorf("FrequencyDays = %d, want 1", sched.FrequencyDays)
	}
	if len(sched.Upcoming) != 4 {
		t.Fatalf("upcoming = %d, want 4", len(sched.Upcoming))
	}

	want := []response.Checkin{
		{Date: "2025-06-03", Day: "Tuesday"},
		{Date: "2025-06-04", Day: "Wednesday"},
		{Date: "2025-06-05", Day: "Thursday"},
		{Date: "2025-06-06", Day: "Friday"},
	}
	for i, w := range want {
		if sched.Upcoming[i] != w {
			t.Errorf("upcoming[%d] = %+v, want %+v", i, sched.Upcoming[i], w)
		}
	}
	if sched.NextCheckin != want[0] {
		t.Errorf("NextCheckin = %+v", sched.NextCheckin)
	}
}

func TestCheckinScheduler_WeeklyInterval(t *testing.T) {
	t.Parallel()

	s := CheckinScheduler{Now: monday}
	sched := s.Schedule(extract.FrequencyWeekly, session.New("Ada", 1)).Content.(response.Schedule)

	if sched.FrequencyDays != 7 {
		t.Errorf("FrequencyDays = %d, want 7", sched.FrequencyDays)
	}
	if sched.Upcoming[0].Date != "2025-06-09" || sched.Upcoming[3].Date != "2025-06-30" {
		t.Errorf("upcoming = %+v", sched.Upcoming)
	}
}

func TestCheckinScheduler_QuestionsFollowGoal(t *testing.T) {
	t.Parallel()

	s := CheckinScheduler{Now: monday}

	plain := s.Schedule(extract.FrequencyWeekly, session.New("Ada", 1)).Content.(response.Schedule)
	if len(plain.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(plain.Questions))
	}

	ctx := session.New("Ada", 1)
	ctx.SetGoal(extract.Goal{Category: extract.GoalWeightLoss})
	loss := s.Schedule(extract.FrequencyWeekly, ctx).Content.(response.Schedule)
	if len(loss.Questions) != 6 {
		t.Fatalf("questions = %d, want 6", len(loss.Questions))
	}
	if loss.Questions[5] != "Have you recorded your weight?" {
		t.Errorf("extra question = %q", loss.Questions[5])
	}
}

func TestCheckinScheduler_LogsOnce(t *testing.T) {
	t.Parallel()

	ctx := session.New("Ada", 1)
	CheckinScheduler{Now: monday}.Schedule(extract.FrequencyDaily, ctx)

	log := ctx.ProgressLog()
	if len(log) != 1 || log[0].Category != "scheduling" {
		t.Errorf("progress log = %+v", log)
	}
	if log[0].Message != "Scheduled daily check-ins" {
		t.Errorf("log message = %q", log[0].Message)
	}
}
