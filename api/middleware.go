package api

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog/log"
)

// sessionGuard gates admin routes on an active session. Every admin request
// goes through the one process-wide session manager; missing, expired and
// revoked tokens all produce the same 401.
type sessionGuard struct {
	sessions  *services.SessionManager
	responder Responder
}

func newSessionGuard(sessions *services.SessionManager) sessionGuard {
	logger := log.With().Str("handlerName", "sessionGuard").Logger()
	return sessionGuard{
		sessions:  sessions,
		responder: NewResponder(logger),
	}
}

func (g sessionGuard) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			g.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := g.sessions.Verify(token)
		if err != nil {
			g.responder.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithSession(r.Context(), session)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}
