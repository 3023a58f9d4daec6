package api

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-backend/services"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession attaches the authenticated session to the request context.
func ctxWithSession(ctx context.Context, session services.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession retrieves the authenticated session from the context.
func ctxGetSession(ctx context.Context) (services.Session, error) {
	value := ctx.Value(sessionKey)
	if value == nil {
		return services.Session{}, errors.New("no session in context")
	}
	session, ok := value.(services.Session)
	if !ok {
		return services.Session{}, errors.New("context session has wrong type")
	}
	return session, nil
}
