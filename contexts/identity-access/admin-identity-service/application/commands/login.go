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

const defaultSessionTTL = 12 * time.Hour

// LoginUseCase verifies an email/secret pair against the self-hosted
// identity provider and issues a bearer session. In hosted-provider mode
// Verifier is nil and login is not served here.
type LoginUseCase struct {
	Verifier     ports.CredentialVerifier
	Sessions     ports.SessionStore
	Tokens       ports.IDGenerator
	Clock        ports.Clock
	SessionTTL   time.Duration
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u LoginUseCase) Execute(ctx context.Context, email string, secret string) (entities.Session, error) {
	logger := application.ResolveLogger(u.Logger)

	if u.Verifier == nil {
		return entities.Session{}, domainerrors.ErrLoginNotSupported
	}

	email = strings.TrimSpace(email)
	if email == "" || secret == "" {
		return entities.Session{}, domainerrors.ErrInvalidRequest
	}

	verifyCtx, cancel := storeCall(ctx, u.StoreTimeout)
	identityID, err := u.Verifier.VerifyCredential(verifyCtx, email, secret)
	cancel()
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			// Uniform failure: do not reveal whether the email exists.
			return entities.Session{}, domainerrors.ErrInvalidCredentials
		}
		return entities.Session{}, err
	}

	token, err := u.Tokens.NewID(ctx)
	if err != nil {
		return entities.Session{}, err
	}

	session := entities.Session{
		Token:      token,
		IdentityID: identityID,
		ExpiresAt:  u.now().Add(u.sessionTTL()),
	}

	createCtx, cancel := storeCall(ctx, u.StoreTimeout)
	defer cancel()
	if err := u.Sessions.Create(createCtx, session); err != nil {
		return entities.Session{}, err
	}

	logger.Info("admin session issued",
		"event", "admin_session_issued",
		"module", "identity-access/admin-identity-service",
		"layer", "application",
		"identity_id", identityID,
	)
	return session, nil
}

func (u LoginUseCase) sessionTTL() time.Duration {
	if u.SessionTTL <= 0 {
		return defaultSessionTTL
	}
	return u.SessionTTL
}

func (u LoginUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
