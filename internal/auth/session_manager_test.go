package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestManagerIssueAndIdentify(t *testing.T) {
	manager := NewManager(time.Minute, time.Hour, NewInMemorySessionStore())

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected non-empty tokens, got %+v", tokens)
	}
	if tokens.AccessToken == tokens.RefreshToken {
		t.Fatalf("access and refresh tokens must differ")
	}
	if !tokens.RefreshExpiresAt.After(tokens.AccessExpiresAt) {
		t.Fatalf("refresh expiry should be after access expiry")
	}

	userID, err := manager.Identify(context.Background(), tokens.AccessToken)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestManagerIssueRequiresUserID(t *testing.T) {
	manager := NewManager(time.Minute, time.Hour, NewInMemorySessionStore())

	if _, err := manager.Issue(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}

func TestManagerIdentifyUnknownToken(t *testing.T) {
	manager := NewManager(time.Minute, time.Hour, NewInMemorySessionStore())

	if _, err := manager.Identify(context.Background(), "bogus"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := manager.Identify(context.Background(), ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}

func TestManagerIdentifyExpiredToken(t *testing.T) {
	manager := NewManager(-time.Minute, time.Hour, NewInMemorySessionStore())

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := manager.Identify(context.Background(), tokens.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestManagerRefreshRotatesTokens(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(time.Minute, time.Hour, store)

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rotated, err := manager.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Fatalf("expected a new refresh token")
	}
	if store.Has(tokens.RefreshToken) {
		t.Fatalf("expected the consumed refresh token to be removed")
	}

	if _, err := manager.Refresh(context.Background(), tokens.RefreshToken); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected consumed token to be rejected, got %v", err)
	}

	userID, err := manager.Identify(context.Background(), rotated.AccessToken)
	if err != nil || userID != "user-1" {
		t.Fatalf("expected rotated session to identify user-1, got %q, %v", userID, err)
	}
}

func TestManagerRefreshExpiredToken(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(time.Minute, -time.Hour, store)

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := manager.Refresh(context.Background(), tokens.RefreshToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if store.Has(tokens.RefreshToken) {
		t.Fatalf("expected the expired session to be dropped")
	}
}

func TestManagerRevoke(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(time.Minute, time.Hour, store)

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	manager.Revoke(context.Background(), tokens.RefreshToken)

	if store.Has(tokens.RefreshToken) {
		t.Fatalf("expected session to be revoked")
	}
	if _, err := manager.Identify(context.Background(), tokens.AccessToken); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected revoked access token to be rejected, got %v", err)
	}
}

func TestManagerRevokeAll(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(time.Minute, time.Hour, store)

	first, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other, err := manager.Issue(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := manager.RevokeAll(context.Background(), "user-1"); err != nil {
		t.Fatalf("revoke all: %v", err)
	}

	if store.Has(first.RefreshToken) || store.Has(second.RefreshToken) {
		t.Fatalf("expected every session for user-1 to be removed")
	}
	if !store.Has(other.RefreshToken) {
		t.Fatalf("expected sessions of other users to survive")
	}
}

func TestNewManagerPanicsWithoutStore(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil store")
		}
	}()
	NewManager(time.Minute, time.Hour, nil)
}
