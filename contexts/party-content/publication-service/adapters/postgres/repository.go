package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "tribune/contexts/party-content/publication-service/domain/errors"
	"tribune/contexts/party-content/publication-service/ports"

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

func (r *Repository) CreatePublication(ctx context.Context, publication ports.Publication) error {
	row := publicationModelFromEntity(publication)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdatePublication(ctx context.Context, publication ports.Publication) error {
	result := r.db.WithContext(ctx).
		Model(&publicationModel{}).
		Where("publication_id = ?", strings.TrimSpace(publication.PublicationID)).
		Updates(map[string]any{
			"title":      publication.Title,
			"body":       publication.Body,
			"image_url":  publication.ImageURL,
			"updated_at": publication.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPublicationNotFound
	}
	return nil
}

func (r *Repository) GetPublication(ctx context.Context, publicationID string) (ports.Publication, error) {
	var row publicationModel
	err := r.db.WithContext(ctx).
		Where("publication_id = ?", strings.TrimSpace(publicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Publication{}, domainerrors.ErrPublicationNotFound
		}
		return ports.Publication{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeletePublication(ctx context.Context, publicationID string) error {
	result := r.db.WithContext(ctx).
		Where("publication_id = ?", strings.TrimSpace(publicationID)).
		Delete(&publicationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPublicationNotFound
	}
	return nil
}

func (r *Repository) ListPublications(ctx context.Context, kind string) ([]ports.Publication, error) {
	tx := r.db.WithContext(ctx).Model(&publicationModel{})
	if kind != "" {
		tx = tx.Where("kind = ?", kind)
	}

	var rows []publicationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.Publication, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type publicationModel struct {
	PublicationID string    `gorm:"column:publication_id;primaryKey"`
	Kind          string    `gorm:"column:kind;index"`
	Title         string    `gorm:"column:title"`
	Body          string    `gorm:"column:body"`
	ImageURL      string    `gorm:"column:image_url"`
	AuthorID      string    `gorm:"column:author_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (publicationModel) TableName() string {
	return "publications"
}

func (m publicationModel) toEntity() ports.Publication {
	return ports.Publication{
		PublicationID: m.PublicationID,
		Kind:          m.Kind,
		Title:         m.Title,
		Body:          m.Body,
		ImageURL:      m.ImageURL,
		AuthorID:      m.AuthorID,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func publicationModelFromEntity(publication ports.Publication) publicationModel {
	return publicationModel{
		PublicationID: strings.TrimSpace(publication.PublicationID),
		Kind:          publication.Kind,
		Title:         publication.Title,
		Body:          publication.Body,
		ImageURL:      publication.ImageURL,
		AuthorID:      publication.AuthorID,
		CreatedAt:     publication.CreatedAt.UTC(),
		UpdatedAt:     publication.UpdatedAt.UTC(),
	}
}
