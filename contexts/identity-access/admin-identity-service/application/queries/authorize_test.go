package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

func newGate(store *memory.Store) AuthorizeUseCase {
	return AuthorizeUseCase{
		Sessions:     store,
		Roles:        store,
		Clock:        store,
		StoreTimeout: time.Second,
	}
}

func TestAuthorizeRejectsMissingOrUnknownToken(t *testing.T) {
	store := memory.NewStore()
	gate := newGate(store)

	for _, token := range []string{"", "   ", "sess_forged_token"} {
		_, err := gate.Execute(context.Background(), token, entities.RoleSuper, entities.RoleContentEditor, entities.RoleActivityEditor)
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Fatalf("token %q: expected ErrUnauthenticated, got %v", token, err)
		}
	}
}

func TestAuthorizeForbiddenWhenRoleNotInRequiredSet(t *testing.T) {
	store := memory.NewStore()
	gate := newGate(store)

	_, err := gate.Execute(context.Background(), memory.SeededEditorToken, entities.RoleSuper)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	_, err = gate.Execute(context.Background(), memory.SeededEditorToken, entities.RoleActivityEditor)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorizeAcceptsMemberRole(t *testing.T) {
	store := memory.NewStore()
	gate := newGate(store)

	result, err := gate.Execute(context.Background(), memory.SeededEditorToken, entities.RoleContentEditor, entities.RoleSuper)
	if err != nil {
		t.Fatalf("authorize returned error: %v", err)
	}
	if result.IdentityID != memory.SeededEditorIdentityID || result.Role != entities.RoleContentEditor {
		t.Fatalf("unexpected auth result: %+v", result)
	}
}

func TestAuthorizeReDerivesRoleOnEveryRequest(t *testing.T) {
	store := memory.NewStore()
	gate := newGate(store)

	if _, err := gate.Execute(context.Background(), memory.SeededEditorToken, entities.RoleContentEditor); err != nil {
		t.Fatalf("first authorize returned error: %v", err)
	}

	// Revoke the role between requests; the gate must pick it up
	// immediately with the same still-valid token.
	if err := store.DeleteRole(context.Background(), memory.SeededEditorIdentityID); err != nil {
		t.Fatalf("delete role returned error: %v", err)
	}
	_, err := gate.Execute(context.Background(), memory.SeededEditorToken, entities.RoleContentEditor)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden after revocation, got %v", err)
	}
}

func TestAuthorizeNoRoleRecordIsForbidden(t *testing.T) {
	store := memory.NewStore()
	gate := newGate(store)

	session := entities.Session{
		Token:      "sess_roleless",
		IdentityID: "adm_roleless",
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	}
	if err := store.Create(context.Background(), session); err != nil {
		t.Fatalf("seed session returned error: %v", err)
	}

	_, err := gate.Execute(context.Background(), "sess_roleless", entities.RoleContentEditor)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for identity without a role record, got %v", err)
	}
}

func TestAuthorizeExpiredSessionIsUnauthenticatedAndDropped(t *testing.T) {
	store := memory.NewStore()
	gate := newGate(store)
	gate.Clock = fixedClock{at: time.Now().UTC().Add(72 * time.Hour)}

	_, err := gate.Execute(context.Background(), memory.SeededEditorToken, entities.RoleContentEditor)
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired session, got %v", err)
	}

	// The expired session is removed, so even a non-expired clock no
	// longer resolves it.
	if _, found, _ := store.Resolve(context.Background(), memory.SeededEditorToken); found {
		t.Fatal("expected expired session to be deleted")
	}
}
