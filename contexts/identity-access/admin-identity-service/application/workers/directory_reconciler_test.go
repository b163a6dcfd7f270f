package workers

import (
	"context"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
)

func TestRunOnceRemovesEntriesWithoutRoleRecords(t *testing.T) {
	store := memory.NewStore()
	reconciler := DirectoryReconciler{Roles: store, Directory: store}

	orphan := entities.DirectoryEntry{
		IdentityID: "adm_orphan",
		Username:   "ghost.admin",
		FullName:   "Ghost Admin",
		Email:      "ghost@party.example",
		Role:       entities.RoleContentEditor,
		CreatedAt:  time.Now().UTC(),
	}
	if _, _, err := store.InsertOrSyncEntry(context.Background(), orphan); err != nil {
		t.Fatalf("seed entry returned error: %v", err)
	}

	if err := reconciler.RunOnce(context.Background()); err != nil {
		t.Fatalf("reconcile returned error: %v", err)
	}

	if _, found, _ := store.FindByUsername(context.Background(), "ghost.admin"); found {
		t.Fatal("expected orphaned entry to be removed")
	}
	// Seeded admins have role records and must survive the sweep.
	if _, found, _ := store.FindByUsername(context.Background(), "root.admin"); !found {
		t.Fatal("expected entries backed by role records to be kept")
	}
}

func TestRunOnceLeavesRoleRecordsWithoutEntriesAlone(t *testing.T) {
	store := memory.NewStore()
	reconciler := DirectoryReconciler{Roles: store, Directory: store}

	if err := store.UpsertRole(context.Background(), "adm_halfway", entities.RoleActivityEditor); err != nil {
		t.Fatalf("seed role returned error: %v", err)
	}

	if err := reconciler.RunOnce(context.Background()); err != nil {
		t.Fatalf("reconcile returned error: %v", err)
	}

	role, found, err := store.GetRole(context.Background(), "adm_halfway")
	if err != nil || !found {
		t.Fatalf("expected role record kept, found=%v err=%v", found, err)
	}
	if role != entities.RoleActivityEditor {
		t.Fatalf("unexpected role after reconcile: %q", role)
	}
}
