package views

import (
	"context"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

type DashboardView struct {
	Goals          aggregate.GoalCounts     `json:"goals"`
	Tasks          aggregate.TaskStats      `json:"tasks"`
	Streak         aggregate.Streak         `json:"streak"`
	WeeklyWorkouts aggregate.WeeklyStats    `json:"weeklyWorkouts"`
	RecentActivity []aggregate.ActivityItem `json:"recentActivity"`
}

type Dashboard struct {
	backend Backend
	limits  Limits
}

func NewDashboard(b Backend, limits Limits) *Dashboard {
	return &Dashboard{
		backend: b,
		limits:  limits,
	}
}

// Load fetches goals, tasks, recent progress and workouts. A failed fetch
// only adds a notice and counts as no data.
func (d *Dashboard) Load(ctx context.Context, pc *PageContext) DashboardView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.dashboard.load")
	defer span.End()

	goals, _ := d.backend.Goals(ctx, pc.Notices)
	tasks, _ := d.backend.Tasks(ctx, pc.Notices)
	progress, progressOK := d.backend.Progress(ctx, pc.Notices, d.limits.DashboardProgress)
	workouts, _ := d.backend.Workouts(ctx, pc.Notices, d.limits.DashboardWorkouts)

	streakProgress := progress
	if progressOK && len(progress) >= d.limits.DashboardProgress && d.limits.StreakProgress > d.limits.DashboardProgress {
		// a full recent window may cut the streak short
		if longer, ok := d.backend.Progress(ctx, pc.Notices, d.limits.StreakProgress); ok {
			streakProgress = longer
		}
	}

	return DashboardView{
		Goals:          aggregate.GoalStatusCounts(goals),
		Tasks:          aggregate.TaskCompletion(tasks),
		Streak:         aggregate.ActivityStreak(aggregate.ActivityDays(streakProgress, workouts), pc.Now),
		WeeklyWorkouts: aggregate.WeeklyWorkouts(workouts, pc.Now),
		RecentActivity: aggregate.RecentActivity(progress, d.limits.ActivityWindow),
	}
}
