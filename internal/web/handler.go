package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/render"
	"github.com/2beens/wellnessbuddy/internal/session"
	"github.com/2beens/wellnessbuddy/internal/views"
	"github.com/2beens/wellnessbuddy/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Handler serves the dashboard pages. Every request is one interaction:
// load the session, run the page controller, render, save the session.
type Handler struct {
	controllers *views.Controllers
	renderer    *render.Renderer
	sessions    *session.Manager
	now         func() time.Time
}

func NewHandler(
	controllers *views.Controllers,
	renderer *render.Renderer,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		controllers: controllers,
		renderer:    renderer,
		sessions:    sessions,
		now:         time.Now,
	}
}

type interaction struct {
	session *session.Session
	pc      *views.PageContext
}

// begin loads the session and moves its pending flash notices into the
// page context, so they are shown exactly once.
func (handler *Handler) begin(w http.ResponseWriter, r *http.Request) *interaction {
	sess := handler.sessions.Load(w, r)
	flash := sess.State.TakeFlash()
	return &interaction{
		session: sess,
		pc:      views.NewPageContext(sess.State.SelectedGoalID, handler.now(), flash...),
	}
}

func (handler *Handler) finish(w http.ResponseWriter, r *http.Request, in *interaction, page string, view any) {
	if err := handler.sessions.Save(r.Context(), in.session); err != nil {
		log.Errorf("save session, page [%s]: %s", page, err)
	}

	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	if err := handler.renderer.Render(w, render.Page{
		Name:    page,
		Notices: in.pc.Notices.All(),
		View:    view,
	}); err != nil {
		log.Errorf("render page [%s]: %s", page, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (handler *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		log.Errorf("parse form error, path [%s]: %s", r.URL.Path, err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return false
	}
	return true
}

func badFormValue(w http.ResponseWriter, r *http.Request, err error) {
	log.Debugf("bad form submitted to [%s]: %s", r.URL.Path, err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Dashboard.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageDashboard, view)
}

func (handler *Handler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Goals.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageGoals, view)
}

func (handler *Handler) HandleGoalCreate(w http.ResponseWriter, r *http.Request) {
	if !handler.parseForm(w, r) {
		return
	}

	in := handler.begin(w, r)
	goal, err := parseGoalForm(r.PostForm, in.pc.Now)
	if err != nil {
		badFormValue(w, r, err)
		return
	}

	view, _ := handler.controllers.Goals.Create(r.Context(), in.pc, goal)
	handler.finish(w, r, in, views.PageGoals, view)
}

// HandleGoalSelect remembers the goal in the session and continues to the
// progress page, which filters its trend chart by it.
func (handler *Handler) HandleGoalSelect(w http.ResponseWriter, r *http.Request) {
	goalID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || goalID <= 0 {
		http.Error(w, "error, goal id invalid", http.StatusBadRequest)
		return
	}

	sess := handler.sessions.Load(w, r)
	sess.State.SelectedGoalID = goalID
	sess.State.AddFlash(backend.InfoNotice(fmt.Sprintf("Showing progress for goal #%d.", goalID)))
	handler.saveAndRedirect(w, r, sess, "/progress")
}

func (handler *Handler) HandleGoalSelectClear(w http.ResponseWriter, r *http.Request) {
	sess := handler.sessions.Load(w, r)
	sess.State.SelectedGoalID = 0
	sess.State.AddFlash(backend.InfoNotice("Showing progress for all goals."))
	handler.saveAndRedirect(w, r, sess, "/progress")
}

func (handler *Handler) saveAndRedirect(w http.ResponseWriter, r *http.Request, sess *session.Session, to string) {
	if err := handler.sessions.Save(r.Context(), sess); err != nil {
		log.Errorf("save session before redirect to [%s]: %s", to, err)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func (handler *Handler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Tasks.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageTasks, view)
}

func (handler *Handler) HandleTasksUpdate(w http.ResponseWriter, r *http.Request) {
	if !handler.parseForm(w, r) {
		return
	}

	changes, err := parseTasksForm(r.PostForm)
	if err != nil {
		badFormValue(w, r, err)
		return
	}

	in := handler.begin(w, r)
	view, _ := handler.controllers.Tasks.Update(r.Context(), in.pc, changes)
	handler.finish(w, r, in, views.PageTasks, view)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Progress.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageProgress, view)
}

func (handler *Handler) HandleProgressAdd(w http.ResponseWriter, r *http.Request) {
	if !handler.parseForm(w, r) {
		return
	}

	in := handler.begin(w, r)
	entry, err := parseProgressForm(r.PostForm, in.pc.SelectedGoalID)
	if err != nil {
		badFormValue(w, r, err)
		return
	}

	view, _ := handler.controllers.Progress.Add(r.Context(), in.pc, entry)
	handler.finish(w, r, in, views.PageProgress, view)
}

func (handler *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Workouts.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageWorkouts, view)
}

func (handler *Handler) HandleWorkoutLog(w http.ResponseWriter, r *http.Request) {
	if !handler.parseForm(w, r) {
		return
	}

	workout, err := parseWorkoutForm(r.PostForm)
	if err != nil {
		badFormValue(w, r, err)
		return
	}

	in := handler.begin(w, r)
	view, _ := handler.controllers.Workouts.Log(r.Context(), in.pc, workout)
	handler.finish(w, r, in, views.PageWorkouts, view)
}

func (handler *Handler) HandleNutrition(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Nutrition.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageNutrition, view)
}

func (handler *Handler) HandleNutritionLog(w http.ResponseWriter, r *http.Request) {
	if !handler.parseForm(w, r) {
		return
	}

	entry, err := parseNutritionForm(r.PostForm)
	if err != nil {
		badFormValue(w, r, err)
		return
	}

	in := handler.begin(w, r)
	view, _ := handler.controllers.Nutrition.Log(r.Context(), in.pc, entry)
	handler.finish(w, r, in, views.PageNutrition, view)
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view := handler.controllers.Insights.Load(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageInsights, view)
}

func (handler *Handler) HandleInsightsGenerate(w http.ResponseWriter, r *http.Request) {
	in := handler.begin(w, r)
	view, _ := handler.controllers.Insights.Generate(r.Context(), in.pc)
	handler.finish(w, r, in, views.PageInsights, view)
}

type summaryResponse struct {
	Dashboard views.DashboardView `json:"dashboard"`
	Notices   []backend.Notice    `json:"notices"`
}

// HandleSummary serves the dashboard view model as JSON. It is not tied to
// a session, flash notices stay for the next page.
func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	pc := views.NewPageContext(0, handler.now())
	resp := summaryResponse{
		Dashboard: handler.controllers.Dashboard.Load(r.Context(), pc),
		Notices:   []backend.Notice{},
	}
	resp.Notices = append(resp.Notices, pc.Notices.All()...)

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal summary: %s", err)
		http.Error(w, "failed to marshal summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, respJson)
}

func (handler *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "ok")
}
