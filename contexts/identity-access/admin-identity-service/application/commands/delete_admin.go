package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "tribune/contexts/identity-access/admin-identity-service/application"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// DeleteAdminUseCase removes an administrator from all three stores in
// order: identity, role record, directory entry. "Already absent" counts
// as success at every step so the whole operation is idempotent; a genuine
// store error stops the sequence and is disclosed as a partial failure.
type DeleteAdminUseCase struct {
	Provider     ports.IdentityProvider
	Roles        ports.RoleDirectory
	Directory    ports.AdminDirectory
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u DeleteAdminUseCase) Execute(ctx context.Context, identityID string) error {
	logger := application.ResolveLogger(u.Logger)

	identityID = strings.TrimSpace(identityID)
	if identityID == "" {
		return domainerrors.ErrInvalidRequest
	}

	providerCtx, cancel := storeCall(ctx, u.StoreTimeout)
	err := u.Provider.DeleteIdentity(providerCtx, identityID)
	cancel()
	if err != nil && !errors.Is(err, domainerrors.ErrIdentityNotFound) {
		// Do not touch the role record for an identity whose auth-side
		// deletion failed for a real reason.
		return &domainerrors.StepFailure{
			Op:    "delete admin",
			Step:  domainerrors.StepIdentity,
			State: "nothing deleted",
			Err:   err,
		}
	}

	roleCtx, cancel := storeCall(ctx, u.StoreTimeout)
	err = u.Roles.DeleteRole(roleCtx, identityID)
	cancel()
	if err != nil && !errors.Is(err, domainerrors.ErrRoleRecordNotFound) {
		return &domainerrors.StepFailure{
			Op:    "delete admin",
			Step:  domainerrors.StepRole,
			State: "identity deleted, role record orphaned",
			Err:   err,
		}
	}

	entryCtx, cancel := storeCall(ctx, u.StoreTimeout)
	err = u.Directory.DeleteEntry(entryCtx, identityID)
	cancel()
	if err != nil && !errors.Is(err, domainerrors.ErrEntryNotFound) {
		return &domainerrors.StepFailure{
			Op:    "delete admin",
			Step:  domainerrors.StepDirectory,
			State: "identity and role record deleted, directory entry orphaned",
			Err:   err,
		}
	}

	logger.Info("admin deleted",
		"event", "admin_deleted",
		"module", "identity-access/admin-identity-service",
		"layer", "application",
		"identity_id", identityID,
	)
	return nil
}
