package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

func newCreateUseCase(store *memory.Store) CreateAdminUseCase {
	return CreateAdminUseCase{
		Provider:     store,
		Roles:        store,
		Directory:    store,
		Clock:        store,
		StoreTimeout: time.Second,
	}
}

func validCreateCommand() CreateAdminCommand {
	return CreateAdminCommand{
		Username:      "press.office",
		Password:      "strong-secret",
		FullName:      "Press Office",
		Email:         "press@party.example",
		RequestedRole: "news_admin",
	}
}

func TestCreateAdminMapsNewsAdminToContentEditor(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)

	entry, err := useCase.Execute(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if entry.Role != entities.RoleContentEditor {
		t.Fatalf("expected content-editor role, got %q", entry.Role)
	}

	role, found, err := store.GetRole(context.Background(), entry.IdentityID)
	if err != nil || !found {
		t.Fatalf("expected role record for %s, found=%v err=%v", entry.IdentityID, found, err)
	}
	if role != entities.RoleContentEditor {
		t.Fatalf("expected stored content-editor role, got %q", role)
	}
}

func TestCreateAdminShortPasswordLeavesStoresUntouched(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)
	before := store.IdentityCount()

	cmd := validCreateCommand()
	cmd.Password = "12345"

	_, err := useCase.Execute(context.Background(), cmd)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if store.IdentityCount() != before {
		t.Fatalf("expected no identity created, count went from %d to %d", before, store.IdentityCount())
	}
}

func TestCreateAdminShortUsernameRejected(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)

	cmd := validCreateCommand()
	cmd.Username = "ab"

	_, err := useCase.Execute(context.Background(), cmd)
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestCreateAdminUnknownRequestedRole(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)
	before := store.IdentityCount()

	cmd := validCreateCommand()
	cmd.RequestedRole = "treasurer"

	_, err := useCase.Execute(context.Background(), cmd)
	if !errors.Is(err, domainerrors.ErrUnsupportedRole) {
		t.Fatalf("expected ErrUnsupportedRole, got %v", err)
	}
	if store.IdentityCount() != before {
		t.Fatal("expected no identity created for unsupported role")
	}
}

func TestCreateAdminDuplicateUsernamePreCheck(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)
	before := store.IdentityCount()

	cmd := validCreateCommand()
	cmd.Username = "root.admin" // seeded

	_, err := useCase.Execute(context.Background(), cmd)
	if !errors.Is(err, domainerrors.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if store.IdentityCount() != before {
		t.Fatal("expected no identity created for duplicate username")
	}
}

func TestConcurrentCreateSameUsernameExactlyOneWins(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)

	const attempts = 2
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cmd := validCreateCommand()
			cmd.Email = fmt.Sprintf("press-%d@party.example", n)
			_, results[n] = useCase.Execute(context.Background(), cmd)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domainerrors.ErrDuplicateUsername):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one success and one conflict, got %d and %d", successes, conflicts)
	}
}

type failingRoles struct {
	err error
}

func (f failingRoles) GetRole(context.Context, string) (entities.Role, bool, error) {
	return "", false, nil
}

func (f failingRoles) UpsertRole(context.Context, string, entities.Role) error {
	return f.err
}

func (f failingRoles) DeleteRole(context.Context, string) error {
	return f.err
}

func (f failingRoles) ListRoleRecords(context.Context) ([]entities.RoleRecord, error) {
	return nil, f.err
}

func TestCreateAdminRoleFailureDisclosesPartialState(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)
	useCase.Roles = failingRoles{err: errors.New("role directory down")}
	before := store.IdentityCount()

	_, err := useCase.Execute(context.Background(), validCreateCommand())
	failure, ok := domainerrors.AsStepFailure(err)
	if !ok {
		t.Fatalf("expected StepFailure, got %v", err)
	}
	if failure.Step != domainerrors.StepRole {
		t.Fatalf("expected failure at role-record step, got %q", failure.Step)
	}
	// The identity was persisted before the role step failed; partial
	// state is disclosed, not rolled back.
	if store.IdentityCount() != before+1 {
		t.Fatalf("expected identity persisted, count went from %d to %d", before, store.IdentityCount())
	}
}

type stalledRoles struct{}

func (stalledRoles) GetRole(context.Context, string) (entities.Role, bool, error) {
	return "", false, nil
}

func (stalledRoles) UpsertRole(ctx context.Context, _ string, _ entities.Role) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledRoles) DeleteRole(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledRoles) ListRoleRecords(context.Context) ([]entities.RoleRecord, error) {
	return nil, nil
}

func TestCreateAdminStoreCallTimeoutSurfacesAsStepError(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)
	useCase.Roles = stalledRoles{}
	useCase.StoreTimeout = 5 * time.Millisecond

	_, err := useCase.Execute(context.Background(), validCreateCommand())
	failure, ok := domainerrors.AsStepFailure(err)
	if !ok {
		t.Fatalf("expected StepFailure, got %v", err)
	}
	if failure.Step != domainerrors.StepRole {
		t.Fatalf("expected timeout at role-record step, got %q", failure.Step)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped deadline error, got %v", err)
	}
}

type laggingDirectory struct {
	*memory.Store
}

func (laggingDirectory) InsertOrSyncEntry(context.Context, entities.DirectoryEntry) (entities.DirectoryEntry, bool, error) {
	return entities.DirectoryEntry{}, false, nil
}

func TestCreateAdminSynthesizesEntryWhenReadBackLags(t *testing.T) {
	store := memory.NewStore()
	useCase := newCreateUseCase(store)
	useCase.Directory = laggingDirectory{Store: store}

	cmd := validCreateCommand()
	entry, err := useCase.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if entry.Username != cmd.Username || entry.Role != entities.RoleContentEditor {
		t.Fatalf("expected entry synthesized from the request, got %+v", entry)
	}
	if entry.IdentityID == "" || entry.CreatedAt.IsZero() {
		t.Fatalf("expected synthesized entry with identity id and timestamp, got %+v", entry)
	}
}

var _ ports.RoleDirectory = failingRoles{}
var _ ports.RoleDirectory = stalledRoles{}
var _ ports.AdminDirectory = laggingDirectory{}
