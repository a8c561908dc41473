// Package logger wraps the Uber zap logging library and provides the
// HTTP middleware the router installs: per-request identifiers and
// structured access logging.
package logger

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Log is the global SugaredLogger used across the application.
// It must be initialized via Init() before first use.
var Log *zap.SugaredLogger

type ctxKey int

// RequestIDKey is the context key under which WithRequestID stores the
// generated request identifier.
const RequestIDKey ctxKey = iota

// RequestIDHeader is the response header carrying the request identifier.
const RequestIDHeader = "X-Request-Id"

// Init builds the global logger with the given level ("debug", "info",
// "warning", "error" or "fatal").
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes buffered log entries. Call it once on shutdown.
func Sync() error {
	if err := Log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}

	return nil
}

// RequestID returns the request identifier stored in ctx by
// WithRequestID, or the empty string when none is present.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID assigns a fresh UUID to every incoming request, stores
// it in the request context and mirrors it into the response headers.
func WithRequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(RequestIDHeader, id)
		h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RequestIDKey, id)))
	})
}

type accessRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (a *accessRecorder) Write(b []byte) (int, error) {
	n, err := a.ResponseWriter.Write(b)
	a.size += n
	return n, err
}

func (a *accessRecorder) WriteHeader(statusCode int) {
	a.ResponseWriter.WriteHeader(statusCode)
	a.status = statusCode
}

// WithAccessLogging logs one line per handled request: method, URI,
// resulting status, response size and handling duration.
func WithAccessLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)

		Log.Infow("request handled",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rec.status,
			"size", rec.size,
			"duration", time.Since(start),
			"request_id", RequestID(r.Context()),
		)
	})
}
