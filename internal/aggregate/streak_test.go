package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
)

func daysAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestActivityStreak(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)

	for caseName, tc := range map[string]struct {
		days     []time.Time
		expected aggregate.Streak
	}{
		"no activity": {
			days:     nil,
			expected: aggregate.Streak{},
		},
		"today only": {
			days:     []time.Time{now},
			expected: aggregate.Streak{Days: 1, ActiveToday: true},
		},
		"three days ending today, duplicates": {
			days:     []time.Time{now, now.Add(-time.Hour), daysAgo(now, 1), daysAgo(now, 2)},
			expected: aggregate.Streak{Days: 3, ActiveToday: true},
		},
		"ending yesterday is kept": {
			days:     []time.Time{daysAgo(now, 1), daysAgo(now, 2)},
			expected: aggregate.Streak{Days: 2, ActiveToday: false},
		},
		"gap resets": {
			days:     []time.Time{now, daysAgo(now, 1), daysAgo(now, 3), daysAgo(now, 4)},
			expected: aggregate.Streak{Days: 2, ActiveToday: true},
		},
		"ended two days ago": {
			days:     []time.Time{daysAgo(now, 2), daysAgo(now, 3)},
			expected: aggregate.Streak{},
		},
		"zero timestamps ignored": {
			days:     []time.Time{{}, {}, now},
			expected: aggregate.Streak{Days: 1, ActiveToday: true},
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			assert.Equal(t, tc.expected, aggregate.ActivityStreak(tc.days, now))
		})
	}
}

func TestActivityStreak_UsesNowLocation(t *testing.T) {
	plus5 := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, 6, 15, 2, 0, 0, 0, plus5)
	// 2024-06-14 22:00 UTC is already 2024-06-15 in UTC+5
	activity := time.Date(2024, 6, 14, 22, 0, 0, 0, time.UTC)

	streak := aggregate.ActivityStreak([]time.Time{activity}, now)
	assert.Equal(t, aggregate.Streak{Days: 1, ActiveToday: true}, streak)
}

func TestActivityDays(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	days := aggregate.ActivityDays(
		[]backend.ProgressEntry{{CreatedAt: t1}},
		[]backend.WorkoutSession{{CreatedAt: t2}},
	)
	assert.Equal(t, []time.Time{t1, t2}, days)
}

func TestStreakLabel(t *testing.T) {
	assert.Equal(t, "0 days", aggregate.Streak{}.Label())
	assert.Equal(t, "1 day", aggregate.Streak{Days: 1}.Label())
	assert.Equal(t, "4 days", aggregate.Streak{Days: 4}.Label())
}
