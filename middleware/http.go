package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/authware/idtoken/authctx"
	"github.com/authware/idtoken/errors"
	"github.com/authware/idtoken/logger"
	"github.com/authware/idtoken/strategy"
)

// Authenticate returns net/http middleware that authenticates every request
// with the given strategy. Requests that fail authentication never reach the
// wrapped handler.
func Authenticate(s *strategy.Strategy, log *logger.Logger) func(http.Handler) http.Handler {
	log = log.WithComponent("middleware")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			out := s.Authenticate(r.Context(), strategy.FromHTTP(r))
			if !out.Succeeded() {
				writeOutcome(w, log, s.Name(), out)
				return
			}

			ctx := authctx.Set(r.Context(), authctx.Identity{
				Principal: out.Principal,
				Subject:   out.Subject,
				Claims:    out.Claims,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeOutcome renders a non-success outcome as an RFC 7807 JSON response.
func writeOutcome(w http.ResponseWriter, log *logger.Logger, name string, out strategy.Outcome) {
	var appErr *errors.AppError
	switch {
	case out.Errored():
		log.Error("authentication error", logger.Fields(
			logger.FieldStrategy, name,
			logger.FieldError, out.Err.Error(),
		))
		appErr = errors.Internal(out.Err)
	default:
		appErr = errors.Unauthorized(out.Info.Message)
		appErr.HTTPStatus = out.Status
		if len(out.Info.Extra) > 0 {
			appErr.Details = out.Info.Extra
		}
		log.Debug("authentication failed", logger.Fields(
			logger.FieldStrategy, name,
			logger.FieldStatus, out.Status,
			logger.FieldError, out.Info.Message,
		))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.ToResponse())
}

// RequestID injects a unique X-Request-Id header into every request/response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.New().String()
				r.Header.Set("X-Request-Id", id)
			}
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r)
		})
	}
}

// Recovery returns middleware that recovers from handler panics, logs the
// stack, and responds 500.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	log = log.WithComponent("middleware")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", logger.Fields(
						"panic", rec,
						"stack", string(debug.Stack()),
						"path", r.URL.Path,
						"method", r.Method,
					))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
