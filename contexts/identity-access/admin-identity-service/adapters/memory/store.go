package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"

	"github.com/google/uuid"
)

// Seeded fixtures used by development wiring and platform tests.
const (
	SeededSuperIdentityID  = "adm_root"
	SeededSuperToken       = "sess_root_token"
	SeededEditorIdentityID = "adm_newsdesk"
	SeededEditorToken      = "sess_newsdesk_token"
)

type identityRecord struct {
	IdentityID string
	Email      string
	Secret     string
	Username   string
	FullName   string
}

// Store is an in-memory adapter implementing every port of the service:
// identity provider, role directory, admin directory, session store,
// credential verifier, clock, and id generator. Intended for tests and
// local development wiring.
type Store struct {
	mu sync.RWMutex

	identities map[string]identityRecord
	roles      map[string]entities.Role
	entries    map[string]entities.DirectoryEntry
	sessions   map[string]entities.Session
}

// NewStore builds a deterministic in-memory adapter seeded with one super
// admin and one content editor, each holding an open session.
func NewStore() *Store {
	now := time.Now().UTC()
	s := &Store{
		identities: make(map[string]identityRecord),
		roles:      make(map[string]entities.Role),
		entries:    make(map[string]entities.DirectoryEntry),
		sessions:   make(map[string]entities.Session),
	}

	s.identities[SeededSuperIdentityID] = identityRecord{
		IdentityID: SeededSuperIdentityID,
		Email:      "root@party.example",
		Secret:     "rootsecret",
		Username:   "root.admin",
		FullName:   "Root Admin",
	}
	s.roles[SeededSuperIdentityID] = entities.RoleSuper
	s.entries[SeededSuperIdentityID] = entities.DirectoryEntry{
		IdentityID: SeededSuperIdentityID,
		Username:   "root.admin",
		FullName:   "Root Admin",
		Email:      "root@party.example",
		Role:       entities.RoleSuper,
		CreatedAt:  now.Add(-48 * time.Hour),
	}
	s.sessions[SeededSuperToken] = entities.Session{
		Token:      SeededSuperToken,
		IdentityID: SeededSuperIdentityID,
		ExpiresAt:  now.Add(24 * time.Hour),
	}

	s.identities[SeededEditorIdentityID] = identityRecord{
		IdentityID: SeededEditorIdentityID,
		Email:      "newsdesk@party.example",
		Secret:     "newssecret",
		Username:   "news.desk",
		FullName:   "News Desk",
	}
	s.roles[SeededEditorIdentityID] = entities.RoleContentEditor
	s.entries[SeededEditorIdentityID] = entities.DirectoryEntry{
		IdentityID: SeededEditorIdentityID,
		Username:   "news.desk",
		FullName:   "News Desk",
		Email:      "newsdesk@party.example",
		Role:       entities.RoleContentEditor,
		CreatedAt:  now.Add(-24 * time.Hour),
	}
	s.sessions[SeededEditorToken] = entities.Session{
		Token:      SeededEditorToken,
		IdentityID: SeededEditorIdentityID,
		ExpiresAt:  now.Add(24 * time.Hour),
	}

	return s
}

// --- ports.IdentityProvider (fake) ---

func (s *Store) CreateIdentity(_ context.Context, email string, secret string, attrs ports.IdentityAttributes) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, identity := range s.identities {
		if strings.EqualFold(identity.Email, email) {
			return "", domainerrors.ErrInvalidRequest
		}
	}

	identityID := "adm_" + uuid.NewString()
	s.identities[identityID] = identityRecord{
		IdentityID: identityID,
		Email:      email,
		Secret:     secret,
		Username:   attrs.Username,
		FullName:   attrs.FullName,
	}
	return identityID, nil
}

func (s *Store) DeleteIdentity(_ context.Context, identityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.identities[identityID]; !ok {
		return domainerrors.ErrIdentityNotFound
	}
	delete(s.identities, identityID)
	return nil
}

func (s *Store) UpdateCredential(_ context.Context, identityID string, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.identities[identityID]
	if !ok {
		return domainerrors.ErrIdentityNotFound
	}
	identity.Secret = secret
	s.identities[identityID] = identity
	return nil
}

// --- ports.CredentialVerifier ---

func (s *Store) VerifyCredential(_ context.Context, email string, secret string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, identity := range s.identities {
		if strings.EqualFold(identity.Email, email) && identity.Secret == secret {
			return identity.IdentityID, nil
		}
	}
	return "", domainerrors.ErrInvalidCredentials
}

// IdentityCount reports how many provider identities exist; used by tests
// asserting that failed validation never reached the provider.
func (s *Store) IdentityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.identities)
}

// --- ports.RoleDirectory ---

func (s *Store) GetRole(_ context.Context, identityID string) (entities.Role, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.roles[identityID]
	return role, ok, nil
}

func (s *Store) UpsertRole(_ context.Context, identityID string, role entities.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !entities.IsValidRole(role) {
		return domainerrors.ErrUnsupportedRole
	}
	s.roles[identityID] = role
	return nil
}

func (s *Store) DeleteRole(_ context.Context, identityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[identityID]; !ok {
		return domainerrors.ErrRoleRecordNotFound
	}
	delete(s.roles, identityID)
	return nil
}

func (s *Store) ListRoleRecords(_ context.Context) ([]entities.RoleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]entities.RoleRecord, 0, len(s.roles))
	for identityID, role := range s.roles {
		records = append(records, entities.RoleRecord{IdentityID: identityID, Role: role})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].IdentityID < records[j].IdentityID
	})
	return records, nil
}

// --- ports.AdminDirectory ---

func (s *Store) FindByUsername(_ context.Context, username string) (entities.DirectoryEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.Username == username {
			return entry, true, nil
		}
	}
	return entities.DirectoryEntry{}, false, nil
}

func (s *Store) InsertOrSyncEntry(_ context.Context, entry entities.DirectoryEntry) (entities.DirectoryEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.entries {
		if existing.Username == entry.Username && existing.IdentityID != entry.IdentityID {
			return entities.DirectoryEntry{}, false, domainerrors.ErrDuplicateUsername
		}
	}
	s.entries[entry.IdentityID] = entry
	return entry, true, nil
}

func (s *Store) UpdateUsername(_ context.Context, identityID string, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[identityID]
	if !ok {
		return domainerrors.ErrEntryNotFound
	}
	for _, existing := range s.entries {
		if existing.Username == username && existing.IdentityID != identityID {
			return domainerrors.ErrDuplicateUsername
		}
	}
	entry.Username = username
	s.entries[identityID] = entry
	return nil
}

func (s *Store) DeleteEntry(_ context.Context, identityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[identityID]; !ok {
		return domainerrors.ErrEntryNotFound
	}
	delete(s.entries, identityID)
	return nil
}

func (s *Store) ListEntries(_ context.Context) ([]entities.DirectoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]entities.DirectoryEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].IdentityID < entries[j].IdentityID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// --- ports.SessionStore ---

func (s *Store) Create(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.Token == "" || session.IdentityID == "" {
		return domainerrors.ErrInvalidRequest
	}
	s.sessions[session.Token] = session
	return nil
}

func (s *Store) Resolve(_ context.Context, token string) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	return session, ok, nil
}

func (s *Store) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// --- ports.Clock / ports.IDGenerator ---

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
