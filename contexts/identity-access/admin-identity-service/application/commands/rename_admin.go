package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "tribune/contexts/identity-access/admin-identity-service/application"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// RenameAdminUseCase changes the directory username of an administrator.
// The identity provider's own profile is not authoritative for usernames,
// so only the directory layer is touched.
type RenameAdminUseCase struct {
	Directory    ports.AdminDirectory
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u RenameAdminUseCase) Execute(ctx context.Context, identityID string, newUsername string) error {
	logger := application.ResolveLogger(u.Logger)

	identityID = strings.TrimSpace(identityID)
	newUsername = strings.TrimSpace(newUsername)
	if identityID == "" || len(newUsername) < minUsernameLength {
		return domainerrors.ErrInvalidRequest
	}

	// Uniqueness check excludes the identity's own entry so renaming to
	// the current value is a no-op, not a conflict.
	findCtx, cancel := storeCall(ctx, u.StoreTimeout)
	existing, found, err := u.Directory.FindByUsername(findCtx, newUsername)
	cancel()
	if err != nil {
		return err
	}
	if found && existing.IdentityID != identityID {
		return domainerrors.ErrDuplicateUsername
	}

	updateCtx, cancel := storeCall(ctx, u.StoreTimeout)
	defer cancel()
	if err := u.Directory.UpdateUsername(updateCtx, identityID, newUsername); err != nil {
		return err
	}

	logger.Info("admin renamed",
		"event", "admin_renamed",
		"module", "identity-access/admin-identity-service",
		"layer", "application",
		"identity_id", identityID,
		"username", newUsername,
	)
	return nil
}
