package aggregate

import (
	"fmt"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

type Streak struct {
	Days        int  `json:"days"`
	ActiveToday bool `json:"activeToday"`
}

func (s Streak) Label() string {
	if s.Days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", s.Days)
}

// ActivityDays collects the timestamps of all logged activity:
// progress entries and workouts.
func ActivityDays(progress []backend.ProgressEntry, workouts []backend.WorkoutSession) []time.Time {
	days := make([]time.Time, 0, len(progress)+len(workouts))
	for _, p := range progress {
		days = append(days, p.CreatedAt)
	}
	for _, w := range workouts {
		days = append(days, w.CreatedAt)
	}
	return days
}

// ActivityStreak counts consecutive calendar days with activity, ending today,
// or ending yesterday when nothing is logged yet today.
// Days are taken in now's location; zero timestamps are ignored.
func ActivityStreak(days []time.Time, now time.Time) Streak {
	loc := now.Location()
	active := make(map[time.Time]bool, len(days))
	for _, d := range days {
		if d.IsZero() {
			continue
		}
		active[startOfDay(d.In(loc))] = true
	}

	today := startOfDay(now)
	streak := Streak{
		ActiveToday: active[today],
	}

	day := today
	if !streak.ActiveToday {
		day = addDays(today, -1)
	}
	for active[day] {
		streak.Days++
		day = addDays(day, -1)
	}

	return streak
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, day.Location())
}
