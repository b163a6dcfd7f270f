package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "tribune/contexts/identity-access/admin-identity-service/application"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

const defaultStoreTimeout = 5 * time.Second

// AuthResult is the resolved caller returned by a successful authorization.
type AuthResult struct {
	IdentityID string
	Role       entities.Role
}

// AuthorizeUseCase gates privileged operations: it resolves the caller's
// identity from a bearer token, re-derives the role from the role
// directory, and accepts iff that role is in the required set. Pure read;
// never memoized, because role records change between requests.
type AuthorizeUseCase struct {
	Sessions     ports.SessionStore
	Roles        ports.RoleDirectory
	Clock        ports.Clock
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u AuthorizeUseCase) Execute(ctx context.Context, token string, required ...entities.Role) (AuthResult, error) {
	logger := application.ResolveLogger(u.Logger)

	token = strings.TrimSpace(token)
	if token == "" {
		return AuthResult{}, domainerrors.ErrUnauthenticated
	}

	resolveCtx, cancel := u.storeCall(ctx)
	session, found, err := u.Sessions.Resolve(resolveCtx, token)
	cancel()
	if err != nil {
		return AuthResult{}, err
	}
	if !found {
		return AuthResult{}, domainerrors.ErrUnauthenticated
	}
	if u.now().After(session.ExpiresAt) {
		deleteCtx, cancel := u.storeCall(ctx)
		_ = u.Sessions.Delete(deleteCtx, token)
		cancel()
		return AuthResult{}, domainerrors.ErrUnauthenticated
	}

	roleCtx, cancel := u.storeCall(ctx)
	role, hasRole, err := u.Roles.GetRole(roleCtx, session.IdentityID)
	cancel()
	if err != nil {
		return AuthResult{}, err
	}
	// Absence of a role record is not an error; it means no elevated
	// privileges. The caller sees the same forbidden either way.
	if !hasRole || !entities.RoleIn(role, required) {
		logger.Debug("authorization refused",
			"event", "admin_authorize_refused",
			"module", "identity-access/admin-identity-service",
			"layer", "application",
			"identity_id", session.IdentityID,
		)
		return AuthResult{}, domainerrors.ErrForbidden
	}

	return AuthResult{IdentityID: session.IdentityID, Role: role}, nil
}

func (u AuthorizeUseCase) storeCall(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := u.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (u AuthorizeUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
