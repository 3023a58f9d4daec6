package services

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Session identifies one authenticated admin login.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionEventType marks a lifecycle transition of the process-wide session
// state: anonymous -> authenticated on sign-in, back to anonymous on
// sign-out.
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "signed_in"
	SessionSignedOut SessionEventType = "signed_out"
)

type SessionEvent struct {
	Type    SessionEventType
	Session Session
	At      time.Time
}

const sessionSubject = "admin"

// SessionManager owns admin authentication for the whole process. It mints
// and verifies JWT session tokens, keeps a registry of live sessions so
// logout revokes a token before its expiry, and broadcasts sign-in/sign-out
// transitions to subscribers. Every admin request consults it through the
// auth middleware; nothing re-queries auth state ad hoc.
type SessionManager struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	logger       zerolog.Logger

	mu      sync.RWMutex
	active  map[uuid.UUID]Session
	subs    map[int]chan SessionEvent
	nextSub int
}

func NewSessionManager(passwordHash, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		logger:       log.With().Str("serviceName", "sessionManager").Logger(),
		active:       make(map[uuid.UUID]Session),
		subs:         make(map[int]chan SessionEvent),
	}
}

// Login checks the admin password and, on success, registers a session and
// returns its signed token. A wrong password and a missing configured hash
// both come back as the same unauthorized error.
func (m *SessionManager) Login(password string) (string, Session, error) {
	if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
		return "", Session{}, errs.NewUnauthorizedError("invalid credentials")
	}

	now := time.Now()
	session := Session{
		ID:        uuid.New(),
		Subject:   sessionSubject,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID.String(),
		Subject:   session.Subject,
		IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", Session{}, errs.NewInternalError("failed to sign session token")
	}

	m.mu.Lock()
	m.active[session.ID] = session
	m.mu.Unlock()

	m.logger.Info().Str("sessionID", session.ID.String()).Msg("Admin signed in")
	m.broadcast(SessionEvent{Type: SessionSignedIn, Session: session, At: now})
	return token, session, nil
}

// Verify parses a session token and checks it against the live registry.
// Expired, revoked, garbled and unsigned tokens all fail the same way; the
// caller gets no distinction to surface.
func (m *SessionManager) Verify(token string) (Session, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrUnauthorized
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, errs.NewUnauthorizedError("invalid session")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return Session{}, errs.NewUnauthorizedError("invalid session")
	}

	m.mu.RLock()
	session, ok := m.active[sessionID]
	m.mu.RUnlock()
	if !ok {
		return Session{}, errs.NewUnauthorizedError("invalid session")
	}

	return session, nil
}

// Logout revokes a session immediately; its token is rejected from then on
// even if it has not yet expired.
func (m *SessionManager) Logout(sessionID uuid.UUID) {
	m.mu.Lock()
	session, ok := m.active[sessionID]
	if ok {
		delete(m.active, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}

	m.logger.Info().Str("sessionID", sessionID.String()).Msg("Admin signed out")
	m.broadcast(SessionEvent{Type: SessionSignedOut, Session: session, At: time.Now()})
}

// Subscribe registers for session lifecycle events. The returned cancel
// function must be called when the subscriber is done. A subscriber that
// stops draining its channel misses events rather than blocking the manager.
func (m *SessionManager) Subscribe() (<-chan SessionEvent, func()) {
	ch := make(chan SessionEvent, 8)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
		m.mu.Unlock()
	}
	return ch, cancel
}

func (m *SessionManager) broadcast(event SessionEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
