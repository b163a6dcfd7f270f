package ports

import (
	"context"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts identity/session token generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// IdentityAttributes travels with identity creation so the provider can
// keep a display profile. The credential hash stays inside the provider
// and is never read back.
type IdentityAttributes struct {
	Username string
	FullName string
}

// IdentityProvider is the external authentication provider boundary.
// Created identities are pre-confirmed. DeleteIdentity returns
// ErrIdentityNotFound when the identity is already absent; any other error
// is a genuine provider failure.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email string, secret string, attrs IdentityAttributes) (string, error)
	DeleteIdentity(ctx context.Context, identityID string) error
	UpdateCredential(ctx context.Context, identityID string, secret string) error
}

// CredentialVerifier checks an email/secret pair and returns the identity
// id it belongs to. Only self-hosted provider adapters implement it; in
// hosted mode login happens at the provider and this port is left nil.
type CredentialVerifier interface {
	VerifyCredential(ctx context.Context, email string, secret string) (string, error)
}

// RoleDirectory is the source of truth mapping identities to roles.
// UpsertRole is idempotent per identity id. DeleteRole returns
// ErrRoleRecordNotFound for an already-absent record.
type RoleDirectory interface {
	GetRole(ctx context.Context, identityID string) (entities.Role, bool, error)
	UpsertRole(ctx context.Context, identityID string, role entities.Role) error
	DeleteRole(ctx context.Context, identityID string) error
	ListRoleRecords(ctx context.Context) ([]entities.RoleRecord, error)
}

// AdminDirectory is the denormalized read model of administrative
// identities. InsertOrSyncEntry returns the synchronized entry when the
// projection is visible; synced=false signals read-after-write lag and the
// caller synthesizes a response instead. A username collision surfaces as
// ErrDuplicateUsername from the storage layer's uniqueness constraint.
type AdminDirectory interface {
	FindByUsername(ctx context.Context, username string) (entities.DirectoryEntry, bool, error)
	InsertOrSyncEntry(ctx context.Context, entry entities.DirectoryEntry) (entities.DirectoryEntry, bool, error)
	UpdateUsername(ctx context.Context, identityID string, username string) error
	DeleteEntry(ctx context.Context, identityID string) error
	ListEntries(ctx context.Context) ([]entities.DirectoryEntry, error)
}

// SessionStore resolves bearer tokens to identities. Resolve reports
// found=false for unknown tokens; expiry is enforced by the caller.
type SessionStore interface {
	Create(ctx context.Context, session entities.Session) error
	Resolve(ctx context.Context, token string) (entities.Session, bool, error)
	Delete(ctx context.Context, token string) error
}
