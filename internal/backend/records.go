package backend

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

var (
	GoalTypes    = []string{"Weight Loss", "Muscle Gain", "Endurance", "Flexibility", "Mental Health", "Nutrition", "Other"}
	MetricTypes  = []string{"weight", "distance", "time", "reps", "other"}
	WorkoutTypes = []string{"Cardio", "Strength Training", "Flexibility", "HIIT", "Yoga", "Other"}
	MealTypes    = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Other"}
)

type WellnessGoal struct {
	ID          int        `json:"id"`
	GoalType    string     `json:"goalType"`
	TargetValue float64    `json:"targetValue"`
	TargetUnit  string     `json:"targetUnit"`
	TargetDate  time.Time  `json:"targetDate"`
	Description string     `json:"description"`
	Status      GoalStatus `json:"status"`
}

type DailyTask struct {
	ID        int    `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type ProgressEntry struct {
	ID          int       `json:"id"`
	GoalID      int       `json:"goalId"`
	MetricValue float64   `json:"metricValue"`
	MetricType  string    `json:"metricType"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type WorkoutSession struct {
	ID             int       `json:"id"`
	WorkoutType    string    `json:"workoutType"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}

type NutritionEntry struct {
	ID        int       `json:"id"`
	MealType  string    `json:"mealType"`
	FoodItems string    `json:"foodItems"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsightBundle struct {
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Motivation      string   `json:"motivation"`
}

func DecodeGoals(raw json.RawMessage) []WellnessGoal {
	objects := decodeObjects(raw, "wellness goals")
	goals := make([]WellnessGoal, 0, len(objects))
	for _, o := range objects {
		goals = append(goals, WellnessGoal{
			ID:          o.int("id"),
			GoalType:    o.str("goalType", "goal_type"),
			TargetValue: o.float("targetValue", "target_value"),
			TargetUnit:  o.str("targetUnit", "target_unit"),
			TargetDate:  o.time("targetDate", "target_date"),
			Description: o.str("description"),
			Status:      GoalStatus(o.str("status")),
		})
	}
	return goals
}

func DecodeTasks(raw json.RawMessage) []DailyTask {
	objects := decodeObjects(raw, "daily tasks")
	tasks := make([]DailyTask, 0, len(objects))
	for _, o := range objects {
		tasks = append(tasks, DailyTask{
			ID:        o.int("id"),
			Task:      o.str("task"),
			Completed: o.bool("completed"),
		})
	}
	return tasks
}

func DecodeProgress(raw json.RawMessage) []ProgressEntry {
	objects := decodeObjects(raw, "progress entries")
	entries := make([]ProgressEntry, 0, len(objects))
	for _, o := range objects {
		entries = append(entries, ProgressEntry{
			ID:          o.int("id"),
			GoalID:      o.int("goalId", "goal_id"),
			MetricValue: o.float("metricValue", "metric_value"),
			MetricType:  o.str("metricType", "metric_type"),
			Notes:       o.str("notes"),
			CreatedAt:   o.time("createdAt", "created_at"),
		})
	}
	return entries
}

func DecodeWorkouts(raw json.RawMessage) []WorkoutSession {
	objects := decodeObjects(raw, "workouts")
	workouts := make([]WorkoutSession, 0, len(objects))
	for _, o := range objects {
		workouts = append(workouts, WorkoutSession{
			ID:             o.int("id"),
			WorkoutType:    o.str("workoutType", "workout_type"),
			Duration:       o.int("duration"),
			CaloriesBurned: o.int("caloriesBurned", "calories_burned"),
			Notes:          o.str("notes"),
			CreatedAt:      o.time("createdAt", "created_at"),
		})
	}
	return workouts
}

func DecodeNutrition(raw json.RawMessage) []NutritionEntry {
	objects := decodeObjects(raw, "nutrition entries")
	entries := make([]NutritionEntry, 0, len(objects))
	for _, o := range objects {
		entries = append(entries, NutritionEntry{
			ID:        o.int("id"),
			MealType:  o.str("mealType", "meal_type"),
			FoodItems: o.str("foodItems", "food_items"),
			Calories:  o.int("calories"),
			Protein:   o.float("protein"),
			Carbs:     o.float("carbs"),
			Fats:      o.float("fats"),
			Notes:     o.str("notes"),
			CreatedAt: o.time("createdAt", "created_at"),
		})
	}
	return entries
}

// DecodeInsights returns an empty bundle when raw is not a JSON object.
func DecodeInsights(raw json.RawMessage) InsightBundle {
	o, ok := decodeObject(raw)
	if !ok {
		return InsightBundle{}
	}
	return InsightBundle{
		Insights:        o.str("insights"),
		Recommendations: o.strings("recommendations"),
		Motivation:      o.str("motivation"),
	}
}

// NewGoal is the body of POST /wellness-goals.
type NewGoal struct {
	GoalType    string     `json:"goalType"`
	TargetValue float64    `json:"targetValue"`
	TargetUnit  string     `json:"targetUnit"`
	TargetDate  string     `json:"targetDate"`
	Description string     `json:"description"`
	Status      GoalStatus `json:"status"`
}

type TaskUpdate struct {
	Completed bool `json:"completed"`
}

type NewProgress struct {
	GoalID      int     `json:"goalId"`
	MetricValue float64 `json:"metricValue"`
	MetricType  string  `json:"metricType"`
	Notes       string  `json:"notes"`
}

type NewWorkout struct {
	WorkoutType    string `json:"workoutType"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
	Notes          string `json:"notes"`
}

type NewNutrition struct {
	MealType  string  `json:"mealType"`
	FoodItems string  `json:"foodItems"`
	Calories  int     `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Notes     string  `json:"notes"`
}
