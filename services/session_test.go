package services

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse"

func newTestSessionManager(t *testing.T, ttl time.Duration) *SessionManager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewSessionManager(string(hash), "test-secret", ttl)
}

func TestLoginAndVerify(t *testing.T) {
	m := newTestSessionManager(t, time.Hour)

	token, session, err := m.Login(testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	verified, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if verified.ID != session.ID {
		t.Errorf("verified session %s, want %s", verified.ID, session.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	m := newTestSessionManager(t, time.Hour)

	if _, _, err := m.Login("wrong"); err == nil {
		t.Fatal("expected error for wrong password")
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := newTestSessionManager(t, time.Hour)

	if _, err := m.Verify("not-a-token"); err == nil {
		t.Fatal("expected error for garbled token")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	m := newTestSessionManager(t, time.Hour)

	token, session, err := m.Login(testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout(session.ID)

	// The token has not expired, but the session is gone.
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected revoked token to fail verification")
	}
}

func TestExpiredToken(t *testing.T) {
	m := newTestSessionManager(t, -time.Minute)

	token, _, err := m.Login(testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestSessionEvents(t *testing.T) {
	m := newTestSessionManager(t, time.Hour)

	events, cancel := m.Subscribe()
	defer cancel()

	_, session, err := m.Login(testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout(session.ID)

	first := <-events
	if first.Type != SessionSignedIn || first.Session.ID != session.ID {
		t.Errorf("first event = %+v, want signed_in for %s", first, session.ID)
	}

	second := <-events
	if second.Type != SessionSignedOut || second.Session.ID != session.ID {
		t.Errorf("second event = %+v, want signed_out for %s", second, session.ID)
	}
}

func TestLogoutUnknownSessionEmitsNothing(t *testing.T) {
	m := newTestSessionManager(t, time.Hour)

	events, cancel := m.Subscribe()
	defer cancel()

	_, session, err := m.Login(testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout(session.ID)
	m.Logout(session.ID) // second logout is a no-op

	<-events // signed_in
	<-events // signed_out
	select {
	case event := <-events:
		t.Errorf("unexpected extra event %+v", event)
	case <-time.After(20 * time.Millisecond):
	}
}
