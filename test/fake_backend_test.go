package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
)

// fakeBackend is an in-memory stand-in for the wellness REST backend.
// Records are kept as generic JSON objects, the way the backend returns them.
type fakeBackend struct {
	mu       sync.Mutex
	server   *httptest.Server
	records  map[string][]map[string]any
	nextID   int
	requests []string
}

func newFakeBackend() *fakeBackend {
	fb := &fakeBackend{}
	fb.Reset()

	r := mux.NewRouter().PathPrefix("/api").Subrouter()
	for _, collection := range []string{"wellness-goals", "daily-tasks", "progress", "workouts", "nutrition"} {
		r.HandleFunc("/"+collection, fb.handleList(collection)).Methods("GET")
		r.HandleFunc("/"+collection, fb.handleAdd(collection)).Methods("POST")
	}
	r.HandleFunc("/daily-tasks/{id}", fb.handleTaskPatch).Methods("PATCH")
	r.HandleFunc("/insights", fb.handleInsights).Methods("GET")
	r.Use(fb.recordRequest)

	fb.server = httptest.NewServer(r)
	return fb
}

func (fb *fakeBackend) URL() string {
	return fb.server.URL
}

func (fb *fakeBackend) Close() {
	fb.server.Close()
}

// Reset seeds the backend with three daily tasks and nothing else.
func (fb *fakeBackend) Reset() {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	fb.records = map[string][]map[string]any{
		"daily-tasks": {
			{"id": 1, "task": "Drink 8 glasses of water", "completed": false},
			{"id": 2, "task": "Walk 10k steps", "completed": true},
			{"id": 3, "task": "Meditate for 10 minutes", "completed": false},
		},
	}
	fb.nextID = 100
	fb.requests = nil
}

func (fb *fakeBackend) Requests() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.requests...)
}

func (fb *fakeBackend) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests = append(fb.requests, r.Method+" "+r.URL.Path)
		fb.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (fb *fakeBackend) handleList(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		list := append([]map[string]any{}, fb.records[collection]...)
		fb.mu.Unlock()

		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit < len(list) {
			list = list[len(list)-limit:]
		}
		writeJSON(w, list)
	}
}

func (fb *fakeBackend) handleAdd(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fb.mu.Lock()
		fb.nextID++
		record["id"] = fb.nextID
		record["created_at"] = time.Now().UTC().Format(time.RFC3339)
		fb.records[collection] = append(fb.records[collection], record)
		fb.mu.Unlock()

		writeJSON(w, record)
	}
}

func (fb *fakeBackend) handleTaskPatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var update struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, task := range fb.records["daily-tasks"] {
		if task["id"] == id {
			task["completed"] = update.Completed
			writeJSON(w, task)
			return
		}
	}
	http.Error(w, "task not found", http.StatusNotFound)
}

func (fb *fakeBackend) handleInsights(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"insights":        "You completed **" + strconv.Itoa(gofakeit.Number(1, 3)) + "** tasks today.",
		"recommendations": []string{"Sleep 8 hours", gofakeit.Sentence(5)},
		"motivation":      "Keep going!",
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
