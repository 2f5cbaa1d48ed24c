package backend

import (
	"context"
	"fmt"
	"net/http"
)

const (
	EndpointGoals     = "/wellness-goals"
	EndpointTasks     = "/daily-tasks"
	EndpointProgress  = "/progress"
	EndpointWorkouts  = "/workouts"
	EndpointNutrition = "/nutrition"
	EndpointInsights  = "/insights"
)

func withLimit(endpoint string, limit int) string {
	if limit <= 0 {
		return endpoint
	}
	return fmt.Sprintf("%s?limit=%d", endpoint, limit)
}

func (c *Client) Goals(ctx context.Context, n Notifier) ([]WellnessGoal, bool) {
	raw, ok := c.Request(ctx, n, EndpointGoals, http.MethodGet, nil)
	if !ok {
		return nil, false
	}
	return DecodeGoals(raw), true
}

func (c *Client) CreateGoal(ctx context.Context, n Notifier, goal NewGoal) bool {
	if goal.Status == "" {
		goal.Status = GoalStatusActive
	}
	_, ok := c.Request(ctx, n, EndpointGoals, http.MethodPost, goal)
	return ok
}

func (c *Client) Tasks(ctx context.Context, n Notifier) ([]DailyTask, bool) {
	raw, ok := c.Request(ctx, n, EndpointTasks, http.MethodGet, nil)
	if !ok {
		return nil, false
	}
	return DecodeTasks(raw), true
}

func (c *Client) SetTaskCompleted(ctx context.Context, n Notifier, taskID int, completed bool) bool {
	endpoint := fmt.Sprintf("%s/%d", EndpointTasks, taskID)
	_, ok := c.Request(ctx, n, endpoint, http.MethodPatch, TaskUpdate{Completed: completed})
	return ok
}

func (c *Client) Progress(ctx context.Context, n Notifier, limit int) ([]ProgressEntry, bool) {
	raw, ok := c.Request(ctx, n, withLimit(EndpointProgress, limit), http.MethodGet, nil)
	if !ok {
		return nil, false
	}
	return DecodeProgress(raw), true
}

func (c *Client) AddProgress(ctx context.Context, n Notifier, entry NewProgress) bool {
	_, ok := c.Request(ctx, n, EndpointProgress, http.MethodPost, entry)
	return ok
}

func (c *Client) Workouts(ctx context.Context, n Notifier, limit int) ([]WorkoutSession, bool) {
	raw, ok := c.Request(ctx, n, withLimit(EndpointWorkouts, limit), http.MethodGet, nil)
	if !ok {
		return nil, false
	}
	return DecodeWorkouts(raw), true
}

func (c *Client) LogWorkout(ctx context.Context, n Notifier, workout NewWorkout) bool {
	_, ok := c.Request(ctx, n, EndpointWorkouts, http.MethodPost, workout)
	return ok
}

func (c *Client) Nutrition(ctx context.Context, n Notifier, limit int) ([]NutritionEntry, bool) {
	raw, ok := c.Request(ctx, n, withLimit(EndpointNutrition, limit), http.MethodGet, nil)
	if !ok {
		return nil, false
	}
	return DecodeNutrition(raw), true
}

func (c *Client) LogNutrition(ctx context.Context, n Notifier, entry NewNutrition) bool {
	_, ok := c.Request(ctx, n, EndpointNutrition, http.MethodPost, entry)
	return ok
}

func (c *Client) Insights(ctx context.Context, n Notifier) (InsightBundle, bool) {
	raw, ok := c.Request(ctx, n, EndpointInsights, http.MethodGet, nil)
	if !ok {
		return InsightBundle{}, false
	}
	return DecodeInsights(raw), true
}
