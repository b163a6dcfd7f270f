package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "tribune/contexts/party-organization/branch-service/domain/errors"
	"tribune/contexts/party-organization/branch-service/ports"
)

// Service manages the public branch directory.
type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) CreateBranch(ctx context.Context, input ports.CreateBranchInput) (ports.Branch, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.City = strings.TrimSpace(input.City)
	input.Address = strings.TrimSpace(input.Address)

	if input.Name == "" || input.City == "" || input.Address == "" {
		return ports.Branch{}, domainerrors.ErrInvalidRequest
	}

	branchID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.Branch{}, err
	}

	now := s.now()
	branch := ports.Branch{
		BranchID:  branchID,
		Name:      input.Name,
		City:      input.City,
		Address:   input.Address,
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateBranch(ctx, branch); err != nil {
		return ports.Branch{}, err
	}

	resolveLogger(s.Logger).Info("branch created",
		"event", "branch_created",
		"module", "party-organization/branch-service",
		"layer", "application",
		"branch_id", branchID,
		"city", branch.City,
	)
	return branch, nil
}

func (s Service) UpdateBranch(ctx context.Context, branchID string, input ports.UpdateBranchInput) (ports.Branch, error) {
	branchID = strings.TrimSpace(branchID)
	input.Name = strings.TrimSpace(input.Name)
	input.City = strings.TrimSpace(input.City)
	input.Address = strings.TrimSpace(input.Address)

	if branchID == "" || input.Name == "" || input.City == "" || input.Address == "" {
		return ports.Branch{}, domainerrors.ErrInvalidRequest
	}

	branch, err := s.Repo.GetBranch(ctx, branchID)
	if err != nil {
		return ports.Branch{}, err
	}

	branch.Name = input.Name
	branch.City = input.City
	branch.Address = input.Address
	branch.Phone = strings.TrimSpace(input.Phone)
	branch.Email = strings.TrimSpace(input.Email)
	branch.UpdatedAt = s.now()

	if err := s.Repo.UpdateBranch(ctx, branch); err != nil {
		return ports.Branch{}, err
	}
	return branch, nil
}

func (s Service) GetBranch(ctx context.Context, branchID string) (ports.Branch, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return ports.Branch{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetBranch(ctx, branchID)
}

func (s Service) DeleteBranch(ctx context.Context, branchID string) error {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.DeleteBranch(ctx, branchID)
}

func (s Service) ListBranches(ctx context.Context, city string) ([]ports.Branch, error) {
	return s.Repo.ListBranches(ctx, strings.TrimSpace(city))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
