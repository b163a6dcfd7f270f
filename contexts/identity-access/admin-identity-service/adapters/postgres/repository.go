package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository implements the role directory and admin directory ports on
// PostgreSQL. Username uniqueness is enforced by the unique index on
// admin_directory.username; a violation maps to ErrDuplicateUsername.
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

// --- ports.RoleDirectory ---

func (r *Repository) GetRole(ctx context.Context, identityID string) (entities.Role, bool, error) {
	var row roleRecordModel
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entities.Role(row.Role), true, nil
}

func (r *Repository) UpsertRole(ctx context.Context, identityID string, role entities.Role) error {
	row := roleRecordModel{
		IdentityID: strings.TrimSpace(identityID),
		Role:       string(role),
		UpdatedAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) DeleteRole(ctx context.Context, identityID string) error {
	result := r.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		Delete(&roleRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRoleRecordNotFound
	}
	return nil
}

func (r *Repository) ListRoleRecords(ctx context.Context) ([]entities.RoleRecord, error) {
	var rows []roleRecordModel
	if err := r.db.WithContext(ctx).Order("identity_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]entities.RoleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entities.RoleRecord{
			IdentityID: row.IdentityID,
			Role:       entities.Role(row.Role),
		})
	}
	return records, nil
}

// --- ports.AdminDirectory ---

func (r *Repository) FindByUsername(ctx context.Context, username string) (entities.DirectoryEntry, bool, error) {
	var row directoryEntryModel
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DirectoryEntry{}, false, nil
		}
		return entities.DirectoryEntry{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) InsertOrSyncEntry(ctx context.Context, entry entities.DirectoryEntry) (entities.DirectoryEntry, bool, error) {
	row := directoryEntryModelFromEntity(entry)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "full_name", "email", "role"}),
		}).
		Create(&row).
		Error
	if err != nil {
		if isUniqueViolation(err) {
			return entities.DirectoryEntry{}, false, domainerrors.ErrDuplicateUsername
		}
		return entities.DirectoryEntry{}, false, err
	}

	var synced directoryEntryModel
	err = r.db.WithContext(ctx).
		Where("identity_id = ?", row.IdentityID).
		First(&synced).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Read-after-write lag; caller synthesizes the response.
			return entities.DirectoryEntry{}, false, nil
		}
		return entities.DirectoryEntry{}, false, err
	}
	return synced.toEntity(), true, nil
}

func (r *Repository) UpdateUsername(ctx context.Context, identityID string, username string) error {
	result := r.db.WithContext(ctx).
		Model(&directoryEntryModel{}).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		Update("username", strings.TrimSpace(username))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateUsername
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEntryNotFound
	}
	return nil
}

func (r *Repository) DeleteEntry(ctx context.Context, identityID string) error {
	result := r.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		Delete(&directoryEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEntryNotFound
	}
	return nil
}

func (r *Repository) ListEntries(ctx context.Context) ([]entities.DirectoryEntry, error) {
	var rows []directoryEntryModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]entities.DirectoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntity())
	}
	return entries, nil
}

type roleRecordModel struct {
	IdentityID string    `gorm:"column:identity_id;primaryKey"`
	Role       string    `gorm:"column:role"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (roleRecordModel) TableName() string {
	return "admin_role_records"
}

type directoryEntryModel struct {
	IdentityID string    `gorm:"column:identity_id;primaryKey"`
	Username   string    `gorm:"column:username;uniqueIndex"`
	FullName   string    `gorm:"column:full_name"`
	Email      string    `gorm:"column:email"`
	Role       string    `gorm:"column:role"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (directoryEntryModel) TableName() string {
	return "admin_directory"
}

func (m directoryEntryModel) toEntity() entities.DirectoryEntry {
	return entities.DirectoryEntry{
		IdentityID: m.IdentityID,
		Username:   m.Username,
		FullName:   m.FullName,
		Email:      m.Email,
		Role:       entities.Role(m.Role),
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

func directoryEntryModelFromEntity(entry entities.DirectoryEntry) directoryEntryModel {
	return directoryEntryModel{
		IdentityID: strings.TrimSpace(entry.IdentityID),
		Username:   strings.TrimSpace(entry.Username),
		FullName:   strings.TrimSpace(entry.FullName),
		Email:      strings.TrimSpace(entry.Email),
		Role:       string(entry.Role),
		CreatedAt:  entry.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
