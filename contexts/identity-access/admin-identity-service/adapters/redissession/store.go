package redissession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/domain/entities"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "admin_session:"

// Store implements ports.SessionStore on Redis. Sessions expire twice:
// Redis evicts the key at the TTL, and the authorize query still checks
// ExpiresAt so clock skew between app and Redis cannot extend a session.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) key(token string) string {
	return keyPrefix + token
}

func (s *Store) Create(ctx context.Context, session entities.Session) error {
	if session.Token == "" || session.IdentityID == "" {
		return fmt.Errorf("session: missing token or identity id")
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	return s.client.Set(ctx, s.key(session.Token), data, ttl).Err()
}

func (s *Store) Resolve(ctx context.Context, token string) (entities.Session, bool, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return entities.Session{}, false, nil
	}
	if err != nil {
		return entities.Session{}, false, err
	}

	var session entities.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return entities.Session{}, false, fmt.Errorf("session: unmarshal: %w", err)
	}
	return session, true, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
