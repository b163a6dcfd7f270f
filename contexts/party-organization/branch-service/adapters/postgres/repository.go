package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "tribune/contexts/party-organization/branch-service/domain/errors"
	"tribune/contexts/party-organization/branch-service/ports"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateBranch(ctx context.Context, branch ports.Branch) error {
	row := branchModelFromEntity(branch)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateBranch(ctx context.Context, branch ports.Branch) error {
	result := r.db.WithContext(ctx).
		Model(&branchModel{}).
		Where("branch_id = ?", strings.TrimSpace(branch.BranchID)).
		Updates(map[string]any{
			"name":       branch.Name,
			"city":       branch.City,
			"address":    branch.Address,
			"phone":      branch.Phone,
			"email":      branch.Email,
			"updated_at": branch.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBranchNotFound
	}
	return nil
}

func (r *Repository) GetBranch(ctx context.Context, branchID string) (ports.Branch, error) {
	var row branchModel
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", strings.TrimSpace(branchID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Branch{}, domainerrors.ErrBranchNotFound
		}
		return ports.Branch{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteBranch(ctx context.Context, branchID string) error {
	result := r.db.WithContext(ctx).
		Where("branch_id = ?", strings.TrimSpace(branchID)).
		Delete(&branchModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBranchNotFound
	}
	return nil
}

func (r *Repository) ListBranches(ctx context.Context, city string) ([]ports.Branch, error) {
	tx := r.db.WithContext(ctx).Model(&branchModel{})
	if city != "" {
		tx = tx.Where("LOWER(city) = LOWER(?)", city)
	}

	var rows []branchModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.Branch, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type branchModel struct {
	BranchID  string    `gorm:"column:branch_id;primaryKey"`
	Name      string    `gorm:"column:name"`
	City      string    `gorm:"column:city;index"`
	Address   string    `gorm:"column:address"`
	Phone     string    `gorm:"column:phone"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (branchModel) TableName() string {
	return "party_branches"
}

func (m branchModel) toEntity() ports.Branch {
	return ports.Branch{
		BranchID:  m.BranchID,
		Name:      m.Name,
		City:      m.City,
		Address:   m.Address,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func branchModelFromEntity(branch ports.Branch) branchModel {
	return branchModel{
		BranchID:  strings.TrimSpace(branch.BranchID),
		Name:      branch.Name,
		City:      branch.City,
		Address:   branch.Address,
		Phone:     branch.Phone,
		Email:     branch.Email,
		CreatedAt: branch.CreatedAt.UTC(),
		UpdatedAt: branch.UpdatedAt.UTC(),
	}
}
