// Package ports defines the branch registry contracts: local party branch
// records with public reads and role-gated mutations.
package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Branch is a local party office listed in the public directory.
type Branch struct {
	BranchID  string
	Name      string
	City      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateBranchInput struct {
	Name    string
	City    string
	Address string
	Phone   string
	Email   string
}

type UpdateBranchInput struct {
	Name    string
	City    string
	Address string
	Phone   string
	Email   string
}

type Repository interface {
	CreateBranch(ctx context.Context, branch Branch) error
	UpdateBranch(ctx context.Context, branch Branch) error
	GetBranch(ctx context.Context, branchID string) (Branch, error)
	DeleteBranch(ctx context.Context, branchID string) error
	ListBranches(ctx context.Context, city string) ([]Branch, error)
}
