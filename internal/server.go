package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/config"
	"github.com/2beens/wellnessbuddy/internal/middleware"
	"github.com/2beens/wellnessbuddy/internal/render"
	"github.com/2beens/wellnessbuddy/internal/session"
	"github.com/2beens/wellnessbuddy/internal/telemetry/metrics"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
	"github.com/2beens/wellnessbuddy/internal/views"
	"github.com/2beens/wellnessbuddy/internal/web"
)

const (
	metricsNamespace = "wellness"
	metricsSubsystem = "main"

	insightsGenerateRateLimitKey = "wellness::ratelimit::insights-generate"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	handler     *web.Handler
	redisClient *redis.Client // nil when redis is not configured
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	sessionStore, sessionCollectors := newSessionStore(cfg, rdb)
	promRegistry := metrics.SetupPrometheus(metricsNamespace, params.VersionInfo, sessionCollectors...)
	metricsManager := metrics.NewManager(metricsNamespace, metricsSubsystem, promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "wellness-buddy", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.BackendTimeout(),
	}
	backendClient := backend.NewClient(cfg.BackendBaseURL, tracedHttpClient, metricsManager)

	renderer, err := render.New()
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	controllers := views.NewControllers(
		backendClient,
		LimitsFromConfig(cfg),
		views.NewMetricsObserver(metricsManager),
		views.LogObserver{},
	)

	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		handler: web.NewHandler(
			controllers,
			renderer,
			session.NewManager(sessionStore, cfg.SessionTTL()),
		),
		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	if rdb != nil {
		s.rateLimiter = redis_rate.NewLimiter(rdb)
	}

	log.Infof("backend API: %s, sessions: %T", cfg.BackendBaseURL, sessionStore)

	return s, nil
}

// newSessionStore keeps sessions in redis when it is configured, in process
// memory otherwise. The memory store comes with a gauge of its entries.
func newSessionStore(cfg *config.Config, rdb *redis.Client) (session.Store, []prometheus.Collector) {
	if rdb != nil {
		return session.NewRedisStore(rdb, cfg.SessionTTL()), nil
	}

	store := session.NewMemoryStore(cfg.SessionCacheSizeMB*1024*1024, cfg.SessionTTL())
	entries := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "memory_sessions",
		Help:      "Number of sessions held in the in-memory store",
	}, func() float64 {
		return float64(store.EntryCount())
	})

	return store, []prometheus.Collector{entries}
}

func LimitsFromConfig(cfg *config.Config) views.Limits {
	return views.Limits{
		DashboardProgress: cfg.DashboardProgressLimit,
		DashboardWorkouts: cfg.DashboardWorkoutsLimit,
		StreakProgress:    cfg.StreakProgressLimit,
		Progress:          cfg.ProgressLimit,
		Workouts:          cfg.WorkoutsLimit,
		Nutrition:         cfg.NutritionLimit,
		ActivityWindow:    cfg.RecentActivityWindow,
		TableRows:         cfg.TableRows,
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	h := s.handler
	r.HandleFunc("/", h.HandleDashboard).Methods("GET").Name("dashboard")
	r.HandleFunc("/goals", h.HandleGoals).Methods("GET").Name("goals")
	r.HandleFunc("/goals", h.HandleGoalCreate).Methods("POST").Name("goal-create")
	r.HandleFunc("/goals/select/clear", h.HandleGoalSelectClear).Methods("POST").Name("goal-select-clear")
	r.HandleFunc("/goals/{id:[0-9]+}/select", h.HandleGoalSelect).Methods("POST").Name("goal-select")
	r.HandleFunc("/tasks", h.HandleTasks).Methods("GET").Name("tasks")
	r.HandleFunc("/tasks", h.HandleTasksUpdate).Methods("POST").Name("tasks-update")
	r.HandleFunc("/progress", h.HandleProgress).Methods("GET").Name("progress")
	r.HandleFunc("/progress", h.HandleProgressAdd).Methods("POST").Name("progress-add")
	r.HandleFunc("/workouts", h.HandleWorkouts).Methods("GET").Name("workouts")
	r.HandleFunc("/workouts", h.HandleWorkoutLog).Methods("POST").Name("workout-log")
	r.HandleFunc("/nutrition", h.HandleNutrition).Methods("GET").Name("nutrition")
	r.HandleFunc("/nutrition", h.HandleNutritionLog).Methods("POST").Name("nutrition-log")
	r.HandleFunc("/insights", h.HandleInsights).Methods("GET").Name("insights")

	var generateInsights http.Handler = http.HandlerFunc(h.HandleInsightsGenerate)
	if s.rateLimiter != nil {
		generateInsights = middleware.RateLimit(
			s.rateLimiter,
			insightsGenerateRateLimitKey,
			s.config.InsightsGenerateAllowedPerMin,
			s.metricsManager,
		)(generateInsights)
	}
	r.Handle("/insights/generate", generateInsights).Methods("POST").Name("insights-generate")

	r.HandleFunc("/api/summary", h.HandleSummary).Methods("GET").Name("summary")
	r.HandleFunc("/healthz", h.HandleHealth).Methods("GET").Name("health")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")
	r.PathPrefix("/static/").Handler(render.StaticHandler()).Methods("GET").Name("static")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(s.versionInfo)); err != nil {
		log.Errorf("failed to write version response: %s", err)
	}
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
