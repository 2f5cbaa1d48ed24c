package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"

	log "github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const unspecifiedLabel = "Unspecified"

type NavItem struct {
	Page  string
	Title string
	Path  string
}

var Navigation = []NavItem{
	{Page: "dashboard", Title: "Dashboard", Path: "/"},
	{Page: "goals", Title: "Wellness Goals", Path: "/goals"},
	{Page: "tasks", Title: "Daily Tasks", Path: "/tasks"},
	{Page: "progress", Title: "Progress Tracking", Path: "/progress"},
	{Page: "workouts", Title: "Workout Log", Path: "/workouts"},
	{Page: "nutrition", Title: "Nutrition Log", Path: "/nutrition"},
	{Page: "insights", Title: "AI Insights", Path: "/insights"},
}

// Page is everything a page template gets.
type Page struct {
	Name    string
	Notices []backend.Notice
	View    any
}

func (p Page) Title() string {
	for _, item := range Navigation {
		if item.Page == p.Name {
			return item.Title
		}
	}
	return ""
}

func (p Page) Navigation() []NavItem {
	return Navigation
}

type Renderer struct {
	pages    map[string]*template.Template
	markdown goldmark.Markdown
}

func New() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}

	for _, item := range Navigation {
		tmpl, err := template.New("layout.html").
			Funcs(r.funcs()).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+item.Page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", item.Page, err)
		}
		r.pages[item.Page] = tmpl
	}

	return r, nil
}

// Render executes the page into a buffer first, so a failing template
// never leaves a half written response.
func (r *Renderer) Render(w io.Writer, p Page) error {
	tmpl, ok := r.pages[p.Name]
	if !ok {
		return fmt.Errorf("unknown page: %s", p.Name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("execute %s template: %w", p.Name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// Markdown renders trusted layout around untrusted text: raw HTML in the
// source is dropped, not passed through.
func (r *Renderer) Markdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		log.Errorf("render markdown: %s", err)
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the embedded directory is known at compile time
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"dict":         dict,
		"markdown":     r.Markdown,
		"dateTime":     formatDateTime,
		"date":         formatDate,
		"num":          formatNumber,
		"typeLabel":    typeLabel,
		"noticeClass":  noticeClass,
		"trendChart":   TrendChart,
		"pieChart":     DistributionChart,
		"macroChart":   MacroChart,
		"goalTypes":    func() []string { return backend.GoalTypes },
		"metricTypes":  func() []string { return backend.MetricTypes },
		"workoutTypes": func() []string { return backend.WorkoutTypes },
		"mealTypes":    func() []string { return backend.MealTypes },
	}
}

// dict builds a map from key value pairs, used to pass several values
// to a nested template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(backend.DateLayout)
}

// formatNumber prints v with the given decimals; NaN and Inf print as 0.
func formatNumber(decimals int, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func typeLabel(t string) string {
	if strings.TrimSpace(t) == "" {
		return unspecifiedLabel
	}
	return t
}

func noticeClass(kind backend.NoticeKind) string {
	switch kind {
	case backend.KindSuccess:
		return "notice-success"
	case backend.KindInfo:
		return "notice-info"
	default:
		return "notice-error"
	}
}
