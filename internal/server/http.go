package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const (
	readinessTimeout = 2 * time.Second
	fallbackPattern  = "/"
)

// Check is one readiness probe, such as a Postgres or Redis ping.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Routes carries the handlers mounted by NewHandler. Quiz may be nil.
type Routes struct {
	Questions *question.HTTPHandler
	Quiz      http.HandlerFunc
	Checks    []Check
}

// NewHTTPServer wires the API routes and middleware into an http.Server.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, routes Routes) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg, logger, routes),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the routed, instrumented handler tree.
func NewHandler(cfg *config.App, logger zerolog.Logger, routes Routes) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("GET /readyz", readiness(logger, routes.Checks))
	mux.Handle("GET /metrics", promhttp.Handler())

	if routes.Questions != nil {
		routes.Questions.Register(mux)
	}
	if routes.Quiz != nil {
		mux.HandleFunc("GET /ws/quizzes", routes.Quiz)
	}

	mux.HandleFunc(fallbackPattern, fallback(mux))

	var handler http.Handler = withMetrics(mux)
	handler = withRequestLog(logger, handler)
	handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler(handler)
	return otelhttp.NewHandler(handler, cfg.Name)
}

func readiness(logger zerolog.Logger, checks []Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check.Ping(ctx); err != nil {
				logger.Error().Err(err).Str("dependency", check.Name).Msg("dependency ping failed")
				httperrors.RespondError(w, http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}
}

var probeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// fallback answers requests no route claimed: 405 when the path exists
// under another method, 404 otherwise.
func fallback(mux *http.ServeMux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range probeMethods {
			if method == r.Method {
				continue
			}
			probe := r.Clone(r.Context())
			probe.Method = method
			if _, pattern := mux.Handler(probe); pattern != "" && pattern != fallbackPattern {
				allowed = append(allowed, method)
			}
		}
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			httperrors.RespondError(w, http.StatusMethodNotAllowed)
			return
		}
		httperrors.RespondNotFound(w)
	}
}
