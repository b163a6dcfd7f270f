package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "tribune/contexts/identity-access/admin-identity-service/application"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// CreateAdminCommand is the transport-agnostic input for provisioning a
// new administrator across the identity provider, the role directory, and
// the admin directory.
type CreateAdminCommand struct {
	Username      string
	Password      string
	FullName      string
	Email         string
	RequestedRole string
}

// CreateAdminUseCase executes the ordered create sequence. The three
// stores do not share a transaction, so each step is a hard stop on error
// and a failure after the identity step is disclosed as a partial failure
// rather than rolled back.
type CreateAdminUseCase struct {
	Provider     ports.IdentityProvider
	Roles        ports.RoleDirectory
	Directory    ports.AdminDirectory
	Clock        ports.Clock
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (entities.DirectoryEntry, error) {
	logger := application.ResolveLogger(u.Logger)

	cmd.Username = strings.TrimSpace(cmd.Username)
	cmd.FullName = strings.TrimSpace(cmd.FullName)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.RequestedRole = strings.TrimSpace(cmd.RequestedRole)

	if len(cmd.Username) < minUsernameLength ||
		len(cmd.Password) < minSecretLength ||
		cmd.FullName == "" ||
		cmd.Email == "" {
		return entities.DirectoryEntry{}, domainerrors.ErrInvalidRequest
	}

	role, ok := entities.MapRequestedRole(cmd.RequestedRole)
	if !ok {
		return entities.DirectoryEntry{}, domainerrors.ErrUnsupportedRole
	}

	// Best-effort pre-check; the directory's uniqueness constraint is the
	// actual guarantee under concurrent creates.
	findCtx, cancel := storeCall(ctx, u.StoreTimeout)
	_, exists, err := u.Directory.FindByUsername(findCtx, cmd.Username)
	cancel()
	if err != nil {
		return entities.DirectoryEntry{}, err
	}
	if exists {
		return entities.DirectoryEntry{}, domainerrors.ErrDuplicateUsername
	}

	createCtx, cancel := storeCall(ctx, u.StoreTimeout)
	identityID, err := u.Provider.CreateIdentity(createCtx, cmd.Email, cmd.Password, ports.IdentityAttributes{
		Username: cmd.Username,
		FullName: cmd.FullName,
	})
	cancel()
	if err != nil {
		logger.Error("admin identity creation failed",
			"event", "admin_create_identity_failed",
			"module", "identity-access/admin-identity-service",
			"layer", "application",
			"username", cmd.Username,
			"error", err.Error(),
		)
		return entities.DirectoryEntry{}, &domainerrors.StepFailure{
			Op:    "create admin",
			Step:  domainerrors.StepIdentity,
			State: "nothing persisted",
			Err:   err,
		}
	}

	roleCtx, cancel := storeCall(ctx, u.StoreTimeout)
	err = u.Roles.UpsertRole(roleCtx, identityID, role)
	cancel()
	if err != nil {
		// The identity now exists without a role. Disclose instead of
		// rolling back: the provider has no cross-store transaction.
		logger.Error("admin role assignment failed",
			"event", "admin_create_role_failed",
			"module", "identity-access/admin-identity-service",
			"layer", "application",
			"identity_id", identityID,
			"error", err.Error(),
		)
		return entities.DirectoryEntry{}, &domainerrors.StepFailure{
			Op:    "create admin",
			Step:  domainerrors.StepRole,
			State: "identity " + identityID + " created without a role",
			Err:   err,
		}
	}

	entry := entities.DirectoryEntry{
		IdentityID: identityID,
		Username:   cmd.Username,
		FullName:   cmd.FullName,
		Email:      cmd.Email,
		Role:       role,
		CreatedAt:  u.now(),
	}

	syncCtx, cancel := storeCall(ctx, u.StoreTimeout)
	synced, visible, err := u.Directory.InsertOrSyncEntry(syncCtx, entry)
	cancel()
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUsername) {
			// Lost a race on the unique index; the pre-check above was
			// only advisory.
			return entities.DirectoryEntry{}, domainerrors.ErrDuplicateUsername
		}
		return entities.DirectoryEntry{}, &domainerrors.StepFailure{
			Op:    "create admin",
			Step:  domainerrors.StepDirectory,
			State: "identity " + identityID + " created with role but no directory entry",
			Err:   err,
		}
	}
	if visible {
		entry = synced
	}

	logger.Info("admin created",
		"event", "admin_created",
		"module", "identity-access/admin-identity-service",
		"layer", "application",
		"identity_id", entry.IdentityID,
		"username", entry.Username,
		"role", string(entry.Role),
		"directory_synced", visible,
	)
	return entry, nil
}

func (u CreateAdminUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
