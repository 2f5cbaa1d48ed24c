package main

//// One-shot CLI printing the dashboard, workout and nutrition summaries
//// of the wellness backend, e.g. for a daily cron mail.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/config"
	"github.com/2beens/wellnessbuddy/internal/logging"
	"github.com/2beens/wellnessbuddy/internal/views"

	log "github.com/sirupsen/logrus"
)

func main() {
	defaultBaseURL := config.DefaultBackendBaseURL
	if envBaseURL := os.Getenv(config.BackendBaseURLEnvVar); envBaseURL != "" {
		defaultBaseURL = envBaseURL
	}

	baseURL := flag.String("base-url", defaultBaseURL, "wellness backend API base URL")
	format := flag.String("format", "text", "output format [text | json]")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout for the whole report")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    *logLevel,
		LogToStdout: true,
	})
	log.SetOutput(os.Stderr)

	if *format != "text" && *format != "json" {
		fmt.Printf("Error: unknown format: %s\n", *format)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := backend.NewClient(*baseURL, &http.Client{Timeout: *timeout}, nil)
	r := buildReport(ctx, views.NewControllers(client, views.DefaultLimits()), time.Now())

	switch *format {
	case "json":
		reportJson, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			log.Fatalf("marshal report: %s", err)
		}
		fmt.Println(string(reportJson))
	default:
		if err := r.WriteText(os.Stdout); err != nil {
			log.Fatalf("write report: %s", err)
		}
	}

	if r.HasErrors() {
		os.Exit(1)
	}
}
