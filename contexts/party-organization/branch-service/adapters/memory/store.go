package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "tribune/contexts/party-organization/branch-service/domain/errors"
	"tribune/contexts/party-organization/branch-service/ports"

	"github.com/google/uuid"
)

// Store keeps branches in memory for tests and local runs.
type Store struct {
	mu       sync.RWMutex
	branches map[string]ports.Branch
}

func NewStore() *Store {
	return &Store{branches: make(map[string]ports.Branch)}
}

func (s *Store) CreateBranch(_ context.Context, branch ports.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branches[branch.BranchID] = branch
	return nil
}

func (s *Store) UpdateBranch(_ context.Context, branch ports.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.branches[branch.BranchID]; !ok {
		return domainerrors.ErrBranchNotFound
	}
	s.branches[branch.BranchID] = branch
	return nil
}

func (s *Store) GetBranch(_ context.Context, branchID string) (ports.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	branch, ok := s.branches[branchID]
	if !ok {
		return ports.Branch{}, domainerrors.ErrBranchNotFound
	}
	return branch, nil
}

func (s *Store) DeleteBranch(_ context.Context, branchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.branches[branchID]; !ok {
		return domainerrors.ErrBranchNotFound
	}
	delete(s.branches, branchID)
	return nil
}

func (s *Store) ListBranches(_ context.Context, city string) ([]ports.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Branch, 0, len(s.branches))
	for _, branch := range s.branches {
		if city != "" && !strings.EqualFold(branch.City, city) {
			continue
		}
		items = append(items, branch)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name == items[j].Name {
			return items[i].BranchID < items[j].BranchID
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
