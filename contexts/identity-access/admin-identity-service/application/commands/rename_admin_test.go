package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
)

func newRenameUseCase(store *memory.Store) RenameAdminUseCase {
	return RenameAdminUseCase{
		Directory:    store,
		StoreTimeout: time.Second,
	}
}

func TestRenameAdminUpdatesDirectoryEntry(t *testing.T) {
	store := memory.NewStore()
	useCase := newRenameUseCase(store)

	if err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID, "press.desk"); err != nil {
		t.Fatalf("rename returned error: %v", err)
	}

	entry, found, err := store.FindByUsername(context.Background(), "press.desk")
	if err != nil || !found {
		t.Fatalf("expected renamed entry, found=%v err=%v", found, err)
	}
	if entry.IdentityID != memory.SeededEditorIdentityID {
		t.Fatalf("expected entry for %s, got %s", memory.SeededEditorIdentityID, entry.IdentityID)
	}
	if _, found, _ := store.FindByUsername(context.Background(), "news.desk"); found {
		t.Fatal("expected old username to be released")
	}
}

func TestRenameAdminToOwnNameIsNotAConflict(t *testing.T) {
	store := memory.NewStore()
	useCase := newRenameUseCase(store)

	if err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID, "news.desk"); err != nil {
		t.Fatalf("rename to current username returned error: %v", err)
	}
}

func TestRenameAdminConflictsWithOtherEntry(t *testing.T) {
	store := memory.NewStore()
	useCase := newRenameUseCase(store)

	err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID, "root.admin")
	if !errors.Is(err, domainerrors.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestRenameAdminRejectsShortUsername(t *testing.T) {
	store := memory.NewStore()
	useCase := newRenameUseCase(store)

	err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID, "ab")
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestRenameAdminUnknownIdentity(t *testing.T) {
	store := memory.NewStore()
	useCase := newRenameUseCase(store)

	err := useCase.Execute(context.Background(), "adm_never_existed", "fresh.name")
	if !errors.Is(err, domainerrors.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}
