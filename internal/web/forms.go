package web

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/views"
)

var ErrInvalidFormValue = errors.New("invalid form value")

// formReader reads typed values from a submitted form. An empty field yields
// the given default; the first malformed field is kept in err. Numbers must
// be finite, they end up in a JSON payload.
type formReader struct {
	values url.Values
	err    error
}

func newFormReader(values url.Values) *formReader {
	return &formReader{values: values}
}

func (f *formReader) str(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

func (f *formReader) strOr(key, def string) string {
	if v := f.str(key); v != "" {
		return v
	}
	return def
}

func (f *formReader) int(key string, def int) int {
	raw := f.str(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		f.fail(key, raw)
		return def
	}
	return v
}

func (f *formReader) float(key string, def float64) float64 {
	raw := f.str(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.fail(key, raw)
		return def
	}
	return v
}

func (f *formReader) bool(key string) bool {
	v, err := strconv.ParseBool(f.str(key))
	return err == nil && v
}

func (f *formReader) fail(key, raw string) {
	if f.err == nil {
		f.err = fmt.Errorf("%w: %s=%q", ErrInvalidFormValue, key, raw)
	}
}

func parseGoalForm(values url.Values, now time.Time) (backend.NewGoal, error) {
	f := newFormReader(values)
	def := views.DefaultGoalForm()

	goal := backend.NewGoal{
		GoalType:    f.strOr("goalType", def.GoalType),
		TargetValue: f.float("targetValue", def.TargetValue),
		TargetUnit:  f.str("targetUnit"),
		TargetDate:  f.strOr("targetDate", now.Format(backend.DateLayout)),
		Description: f.str("description"),
		Status:      backend.GoalStatusActive,
	}
	if _, err := time.Parse(backend.DateLayout, goal.TargetDate); err != nil {
		f.fail("targetDate", goal.TargetDate)
	}

	return goal, f.err
}

func parseProgressForm(values url.Values, selectedGoalID int) (backend.NewProgress, error) {
	f := newFormReader(values)
	def := views.DefaultProgressForm(selectedGoalID)

	return backend.NewProgress{
		GoalID:      f.int("goalId", def.GoalID),
		MetricValue: f.float("metricValue", def.MetricValue),
		MetricType:  f.strOr("metricType", def.MetricType),
		Notes:       f.str("notes"),
	}, f.err
}

func parseWorkoutForm(values url.Values) (backend.NewWorkout, error) {
	f := newFormReader(values)
	def := views.DefaultWorkoutForm()

	return backend.NewWorkout{
		WorkoutType:    f.strOr("workoutType", def.WorkoutType),
		Duration:       f.int("duration", def.Duration),
		CaloriesBurned: f.int("caloriesBurned", def.CaloriesBurned),
		Notes:          f.str("notes"),
	}, f.err
}

func parseNutritionForm(values url.Values) (backend.NewNutrition, error) {
	f := newFormReader(values)
	def := views.DefaultNutritionForm()

	return backend.NewNutrition{
		MealType:  f.strOr("mealType", def.MealType),
		FoodItems: f.str("foodItems"),
		Calories:  f.int("calories", def.Calories),
		Protein:   f.float("protein", def.Protein),
		Carbs:     f.float("carbs", def.Carbs),
		Fats:      f.float("fats", def.Fats),
		Notes:     f.str("notes"),
	}, f.err
}

// parseTasksForm reads the tasks form: one hidden "id" per task plus
// task_<id>, was_<id> and the completed_<id> checkbox, absent when unchecked.
func parseTasksForm(values url.Values) ([]views.TaskChange, error) {
	f := newFormReader(values)

	changes := make([]views.TaskChange, 0, len(values["id"]))
	seen := make(map[int]bool, len(values["id"]))
	for _, rawID := range values["id"] {
		id, err := strconv.Atoi(strings.TrimSpace(rawID))
		if err != nil {
			f.fail("id", rawID)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		suffix := strconv.Itoa(id)
		changes = append(changes, views.TaskChange{
			ID:   id,
			Task: f.str("task_" + suffix),
			Was:  f.bool("was_" + suffix),
			Now:  f.bool("completed_" + suffix),
		})
	}

	return changes, f.err
}
