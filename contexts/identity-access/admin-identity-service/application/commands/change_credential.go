package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "tribune/contexts/identity-access/admin-identity-service/application"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// ChangeCredentialUseCase replaces an administrator's secret at the
// identity provider. Single-store operation; no partial state.
type ChangeCredentialUseCase struct {
	Provider     ports.IdentityProvider
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u ChangeCredentialUseCase) Execute(ctx context.Context, identityID string, newSecret string) error {
	logger := application.ResolveLogger(u.Logger)

	identityID = strings.TrimSpace(identityID)
	if identityID == "" || len(newSecret) < minSecretLength {
		return domainerrors.ErrInvalidRequest
	}

	callCtx, cancel := storeCall(ctx, u.StoreTimeout)
	defer cancel()
	if err := u.Provider.UpdateCredential(callCtx, identityID, newSecret); err != nil {
		logger.Error("credential update failed",
			"event", "admin_credential_update_failed",
			"module", "identity-access/admin-identity-service",
			"layer", "application",
			"identity_id", identityID,
			"error", err.Error(),
		)
		return fmt.Errorf("credential update failed: %w", err)
	}

	logger.Info("admin credential updated",
		"event", "admin_credential_updated",
		"module", "identity-access/admin-identity-service",
		"layer", "application",
		"identity_id", identityID,
	)
	return nil
}
