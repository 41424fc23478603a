// Package api serves contract state and the browser-wallet write flow as
// JSON over HTTP.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/altuslabsxyz/questline/internal/application"
	"github.com/altuslabsxyz/questline/pkg/network"
)

// RequestIDHeader carries the per-request id on responses.
const RequestIDHeader = "X-Request-ID"

// Pipeline is the split write flow: prepare here, sign in the browser, then
// submit the signed envelope here.
type Pipeline interface {
	Prepare(ctx context.Context, call network.Call) (*network.PreparedEnvelope, error)
	SubmitSigned(ctx context.Context, signed string, call network.Call) (*network.Outcome, error)
	NetworkPassphrase() string
}

// HealthChecker reports ledger node health.
type HealthChecker interface {
	GetHealth(ctx context.Context) (string, error)
}

// Config for the HTTP API handler.
type Config struct {
	Platform *application.PlatformService
	Pipeline Pipeline
	Ledger   HealthChecker
	Logger   log.Logger
	Version  string
}

type requestIDKey struct{}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// New returns an HTTP handler exposing the API.
func New(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	huma.DefaultArrayNullable = false
	huma.NewError = newFrameworkError
	huma.NewErrorWithContext = func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		return newFrameworkError(status, msg, errs...)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestIDMiddleware)
	router.Use(accessLog(logger))

	hcfg := huma.DefaultConfig("Questline API", version)
	hcfg.OpenAPIPath = "/openapi"
	hcfg.DocsPath = ""
	api := humachi.New(router, hcfg)

	registerHealth(api, cfg)
	registerQuests(api, cfg.Platform)
	registerUsers(api, cfg.Platform)
	registerBadges(api, cfg.Platform)
	registerToken(api, cfg.Platform)
	if cfg.Pipeline != nil {
		registerInvocations(api, cfg.Platform, cfg.Pipeline)
	}

	return router, nil
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func accessLog(logger log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"request_id", RequestID(r.Context()))
		})
	}
}

// newFrameworkError renders router and request validation errors in the API
// envelope. Validation failures are reported as 400.
func newFrameworkError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	return newAPIError(status, "", joinErrors(msg, errs))
}

func joinErrors(msg string, errs []error) string {
	if len(errs) == 0 {
		return msg
	}
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			parts = append(parts, err.Error())
		}
	}
	if len(parts) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(parts, "; ")
}
