package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
)

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// contextGetLogger returns the application logger annotated with the request
// id, the route and, when the request is traced, the trace id.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With(
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"uri", r.URL.RequestURI(),
	)

	spanContext := trace.SpanContextFromContext(r.Context())
	if spanContext.HasTraceID() {
		logger = logger.With("trace_id", spanContext.TraceID().String())
	}

	return logger
}
