package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
)

func newLoginUseCase(store *memory.Store) LoginUseCase {
	return LoginUseCase{
		Verifier:     store,
		Sessions:     store,
		Tokens:       store,
		Clock:        store,
		SessionTTL:   time.Hour,
		StoreTimeout: time.Second,
	}
}

func TestLoginIssuesResolvableSession(t *testing.T) {
	store := memory.NewStore()
	useCase := newLoginUseCase(store)

	session, err := useCase.Execute(context.Background(), "newsdesk@party.example", "newssecret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}
	if session.IdentityID != memory.SeededEditorIdentityID {
		t.Fatalf("expected session for %s, got %s", memory.SeededEditorIdentityID, session.IdentityID)
	}

	resolved, found, err := store.Resolve(context.Background(), session.Token)
	if err != nil || !found {
		t.Fatalf("expected stored session, found=%v err=%v", found, err)
	}
	if resolved.IdentityID != session.IdentityID {
		t.Fatalf("stored session mismatch: %+v", resolved)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	store := memory.NewStore()
	useCase := newLoginUseCase(store)

	wrongSecret := useCase
	_, errSecret := wrongSecret.Execute(context.Background(), "newsdesk@party.example", "wrong-secret")
	_, errEmail := wrongSecret.Execute(context.Background(), "nobody@party.example", "newssecret")

	if !errors.Is(errSecret, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong secret, got %v", errSecret)
	}
	if !errors.Is(errEmail, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errEmail)
	}
	if errSecret.Error() != errEmail.Error() {
		t.Fatalf("expected identical failure messages, got %q and %q", errSecret.Error(), errEmail.Error())
	}
}

func TestLoginWithoutVerifierIsNotSupported(t *testing.T) {
	store := memory.NewStore()
	useCase := newLoginUseCase(store)
	useCase.Verifier = nil

	_, err := useCase.Execute(context.Background(), "root@party.example", "rootsecret")
	if !errors.Is(err, domainerrors.ErrLoginNotSupported) {
		t.Fatalf("expected ErrLoginNotSupported, got %v", err)
	}
}
