package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

func newDeleteUseCase(store *memory.Store) DeleteAdminUseCase {
	return DeleteAdminUseCase{
		Provider:     store,
		Roles:        store,
		Directory:    store,
		StoreTimeout: time.Second,
	}
}

func TestDeleteAdminRemovesAllThreeRecords(t *testing.T) {
	store := memory.NewStore()
	useCase := newDeleteUseCase(store)

	if err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	_, found, err := store.GetRole(context.Background(), memory.SeededEditorIdentityID)
	if err != nil {
		t.Fatalf("role lookup returned error: %v", err)
	}
	if found {
		t.Fatal("expected role record removed")
	}
	_, found, err = store.FindByUsername(context.Background(), "news.desk")
	if err != nil {
		t.Fatalf("directory lookup returned error: %v", err)
	}
	if found {
		t.Fatal("expected directory entry removed")
	}
}

func TestDeleteAdminIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	useCase := newDeleteUseCase(store)

	if err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	if err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID); err != nil {
		t.Fatalf("second delete of same admin returned error: %v", err)
	}
}

func TestDeleteAdminNeverProvisionedSucceeds(t *testing.T) {
	store := memory.NewStore()
	useCase := newDeleteUseCase(store)

	if err := useCase.Execute(context.Background(), "adm_never_existed"); err != nil {
		t.Fatalf("delete of unknown admin returned error: %v", err)
	}
}

type failingProvider struct {
	err error
}

func (f failingProvider) CreateIdentity(context.Context, string, string, ports.IdentityAttributes) (string, error) {
	return "", f.err
}

func (f failingProvider) DeleteIdentity(context.Context, string) error {
	return f.err
}

func (f failingProvider) UpdateCredential(context.Context, string, string) error {
	return f.err
}

func TestDeleteAdminProviderFailureStopsBeforeRoleStep(t *testing.T) {
	store := memory.NewStore()
	useCase := newDeleteUseCase(store)
	useCase.Provider = failingProvider{err: errors.New("identity provider unreachable")}

	err := useCase.Execute(context.Background(), memory.SeededEditorIdentityID)
	failure, ok := domainerrors.AsStepFailure(err)
	if !ok {
		t.Fatalf("expected StepFailure, got %v", err)
	}
	if failure.Step != domainerrors.StepIdentity {
		t.Fatalf("expected failure at identity step, got %q", failure.Step)
	}

	// Fail-fast: the later steps must not have run.
	_, found, err := store.GetRole(context.Background(), memory.SeededEditorIdentityID)
	if err != nil {
		t.Fatalf("role lookup returned error: %v", err)
	}
	if !found {
		t.Fatal("expected role record untouched after identity-step failure")
	}
	_, found, err = store.FindByUsername(context.Background(), "news.desk")
	if err != nil {
		t.Fatalf("directory lookup returned error: %v", err)
	}
	if !found {
		t.Fatal("expected directory entry untouched after identity-step failure")
	}
}

var _ ports.IdentityProvider = failingProvider{}
