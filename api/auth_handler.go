package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	sessions  *services.SessionManager
}

func newAuthHandler(sessions *services.SessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sessions:  sessions,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string           `json:"token"`
	Session services.Session `json:"session"`
}

// login exchanges the admin password for a session token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		token, session, err := h.sessions.Login(req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, Session: session})
	}
}

// logout revokes the calling session.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("no active session"))
			return
		}

		h.sessions.Logout(session.ID)

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "signed out",
		})
	}
}

// session returns the calling session's identity.
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("no active session"))
			return
		}

		h.responder.WriteJSON(w, session)
	}
}
