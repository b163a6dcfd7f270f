package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainerrors "tribune/contexts/party-content/publication-service/domain/errors"
	"tribune/contexts/party-content/publication-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory repository for tests and local development.
type Store struct {
	mu           sync.RWMutex
	publications map[string]ports.Publication
}

func NewStore() *Store {
	return &Store{
		publications: make(map[string]ports.Publication),
	}
}

func (s *Store) CreatePublication(_ context.Context, publication ports.Publication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publications[publication.PublicationID] = publication
	return nil
}

func (s *Store) UpdatePublication(_ context.Context, publication ports.Publication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.publications[publication.PublicationID]; !ok {
		return domainerrors.ErrPublicationNotFound
	}
	s.publications[publication.PublicationID] = publication
	return nil
}

func (s *Store) GetPublication(_ context.Context, publicationID string) (ports.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	publication, ok := s.publications[publicationID]
	if !ok {
		return ports.Publication{}, domainerrors.ErrPublicationNotFound
	}
	return publication, nil
}

func (s *Store) DeletePublication(_ context.Context, publicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.publications[publicationID]; !ok {
		return domainerrors.ErrPublicationNotFound
	}
	delete(s.publications, publicationID)
	return nil
}

func (s *Store) ListPublications(_ context.Context, kind string) ([]ports.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Publication, 0, len(s.publications))
	for _, publication := range s.publications {
		if kind != "" && publication.Kind != kind {
			continue
		}
		items = append(items, publication)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].PublicationID < items[j].PublicationID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
