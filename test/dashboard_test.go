package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/2beens/wellnessbuddy/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) get(ctx context.Context, path string) (int, string) {
	t := s.T()
	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+path, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	return s.do(req)
}

func (s *IntegrationTestSuite) postForm(ctx context.Context, path string, values url.Values) (int, string) {
	t := s.T()
	req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+path, strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.do(req)
}

func (s *IntegrationTestSuite) do(req *http.Request) (int, string) {
	t := s.T()
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(respBytes)
}

func (s *IntegrationTestSuite) TestDashboardSummary() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/api/summary")
	require.Equal(t, http.StatusOK, status)

	var summary struct {
		Dashboard struct {
			Goals struct {
				Total int `json:"total"`
			} `json:"goals"`
			Tasks struct {
				Completed int     `json:"completed"`
				Total     int     `json:"total"`
				Rate      float64 `json:"rate"`
			} `json:"tasks"`
		} `json:"dashboard"`
		Notices []json.RawMessage `json:"notices"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Equal(t, 0, summary.Dashboard.Goals.Total)
	assert.Equal(t, 1, summary.Dashboard.Tasks.Completed)
	assert.Equal(t, 3, summary.Dashboard.Tasks.Total)
	assert.InDelta(t, 1.0/3.0, summary.Dashboard.Tasks.Rate, 1e-9)
	assert.Empty(t, summary.Notices)

	status, body = s.get(ctx, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Health &amp; Wellness Buddy")
	assert.Contains(t, body, "1/3")
}

func (s *IntegrationTestSuite) TestGoalLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.postForm(ctx, "/goals", url.Values{
		"goalType":    {"Endurance"},
		"targetValue": {"42.2"},
		"targetUnit":  {"km"},
		"targetDate":  {"2030-10-01"},
		"description": {"Run a marathon"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Goal created successfully!")
	assert.Contains(t, body, "Run a marathon")
	assert.Equal(t, []string{"POST /api/wellness-goals", "GET /api/wellness-goals"}, s.backend.Requests())

	// select the goal, the client follows the redirect to the progress page
	status, body = s.postForm(ctx, "/goals/101/select", url.Values{})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Showing progress for goal #101.")
	assert.Contains(t, body, `name="goalId" min="1" value="101"`)

	// the selection lives in redis, under the session cookie
	serverURL, err := url.Parse(serverEndpoint)
	require.NoError(t, err)
	var sessionID string
	for _, cookie := range s.httpClient.Jar.Cookies(serverURL) {
		if cookie.Name == session.CookieName {
			sessionID = cookie.Value
		}
	}
	require.NotEmpty(t, sessionID)

	stored, err := s.redisClient.Get(ctx, "wellness::session::"+sessionID).Result()
	require.NoError(t, err)
	assert.Contains(t, stored, `"selectedGoalId":101`)
	ttl, err := s.redisClient.TTL(ctx, "wellness::session::"+sessionID).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	status, body = s.postForm(ctx, "/progress", url.Values{
		"metricValue": {"12.5"},
		"metricType":  {"distance"},
		"notes":       {"long run"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Progress entry added successfully!")
	assert.Contains(t, body, "long run")
}

func (s *IntegrationTestSuite) TestTasksUpdate() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/tasks")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Drink 8 glasses of water")

	status, body = s.postForm(ctx, "/tasks", url.Values{
		"id":          {"1", "2", "3"},
		"task_1":      {"Drink 8 glasses of water"},
		"was_1":       {"false"},
		"completed_1": {"true"},
		"task_2":      {"Walk 10k steps"},
		"was_2":       {"true"},
		"completed_2": {"true"},
		"task_3":      {"Meditate for 10 minutes"},
		"was_3":       {"false"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Tasks updated successfully!")
	assert.Contains(t, body, "2/3")

	patches := 0
	for _, r := range s.backend.Requests() {
		if strings.HasPrefix(r, "PATCH ") {
			patches++
			assert.Equal(t, "PATCH /api/daily-tasks/1", r)
		}
	}
	assert.Equal(t, 1, patches)
}

func (s *IntegrationTestSuite) TestWorkoutAndNutritionLogs() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/workouts")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No workout sessions found.")

	status, body = s.postForm(ctx, "/workouts", url.Values{"workoutType": {"HIIT"}, "duration": {"25"}})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Workout logged successfully!")
	assert.Contains(t, body, "HIIT")

	status, body = s.postForm(ctx, "/nutrition", url.Values{"mealType": {"Dinner"}, "foodItems": {"salmon, rice"}})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Nutrition entry logged successfully!")
	assert.Contains(t, body, "salmon, rice")
}

func (s *IntegrationTestSuite) TestInsightsGenerateRateLimited() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/insights")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Keep going!")

	var codes []int
	for i := 0; i < insightsGenerateAllowedPerMin+1; i++ {
		status, _ := s.postForm(ctx, "/insights/generate", url.Values{})
		codes = append(codes, status)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func (s *IntegrationTestSuite) TestVersionAndStatic() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/version")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "test-version-info", body)

	status, body = s.get(ctx, "/static/style.css")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body)

	status, _ = s.get(ctx, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestMetrics() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _ := s.get(ctx, "/goals")
	require.Equal(t, http.StatusOK, status)

	req, err := http.NewRequestWithContext(ctx, "GET", metricsEndpoint, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metricsBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	metricsText := string(metricsBytes)
	assert.Contains(t, metricsText, "wellness_main_backend_requests")
	assert.Contains(t, metricsText, fmt.Sprintf(`route="%s"`, "goals"))
	assert.Contains(t, metricsText, "wellness_main_life_signal 1")
	assert.Contains(t, metricsText, "wellness_build_info{version=")
}
