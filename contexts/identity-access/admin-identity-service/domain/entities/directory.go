package entities

import "time"

// RoleRecord maps one identity to at most one role. It is the source of
// truth for authorization lookups.
type RoleRecord struct {
	IdentityID string `json:"identity_id"`
	Role       Role   `json:"role"`
}

// DirectoryEntry is the denormalized admin-directory row derived from an
// identity and its role record. It exists only for identities holding a
// role in the administrative set.
type DirectoryEntry struct {
	IdentityID string    `json:"identity_id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session is an authenticated bearer credential resolved by the gate.
type Session struct {
	Token      string    `json:"token"`
	IdentityID string    `json:"identity_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}
