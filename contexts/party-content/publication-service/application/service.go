package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "tribune/contexts/party-content/publication-service/domain/errors"
	"tribune/contexts/party-content/publication-service/ports"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) CreatePublication(ctx context.Context, input ports.CreatePublicationInput) (ports.Publication, error) {
	input.Kind = strings.TrimSpace(input.Kind)
	input.Title = strings.TrimSpace(input.Title)
	input.Body = strings.TrimSpace(input.Body)

	if !ports.IsValidKind(input.Kind) {
		return ports.Publication{}, domainerrors.ErrInvalidKind
	}
	if input.Title == "" || input.Body == "" || strings.TrimSpace(input.AuthorID) == "" {
		return ports.Publication{}, domainerrors.ErrInvalidRequest
	}

	publicationID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.Publication{}, err
	}

	now := s.now()
	publication := ports.Publication{
		PublicationID: publicationID,
		Kind:          input.Kind,
		Title:         input.Title,
		Body:          input.Body,
		ImageURL:      strings.TrimSpace(input.ImageURL),
		AuthorID:      strings.TrimSpace(input.AuthorID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.CreatePublication(ctx, publication); err != nil {
		return ports.Publication{}, err
	}

	resolveLogger(s.Logger).Info("publication created",
		"event", "publication_created",
		"module", "party-content/publication-service",
		"layer", "application",
		"publication_id", publicationID,
		"kind", publication.Kind,
	)
	return publication, nil
}

func (s Service) UpdatePublication(ctx context.Context, publicationID string, input ports.UpdatePublicationInput) (ports.Publication, error) {
	publicationID = strings.TrimSpace(publicationID)
	input.Title = strings.TrimSpace(input.Title)
	input.Body = strings.TrimSpace(input.Body)

	if publicationID == "" || input.Title == "" || input.Body == "" {
		return ports.Publication{}, domainerrors.ErrInvalidRequest
	}

	publication, err := s.Repo.GetPublication(ctx, publicationID)
	if err != nil {
		return ports.Publication{}, err
	}

	publication.Title = input.Title
	publication.Body = input.Body
	publication.ImageURL = strings.TrimSpace(input.ImageURL)
	publication.UpdatedAt = s.now()

	if err := s.Repo.UpdatePublication(ctx, publication); err != nil {
		return ports.Publication{}, err
	}
	return publication, nil
}

func (s Service) GetPublication(ctx context.Context, publicationID string) (ports.Publication, error) {
	publicationID = strings.TrimSpace(publicationID)
	if publicationID == "" {
		return ports.Publication{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetPublication(ctx, publicationID)
}

func (s Service) DeletePublication(ctx context.Context, publicationID string) error {
	publicationID = strings.TrimSpace(publicationID)
	if publicationID == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Repo.DeletePublication(ctx, publicationID)
}

func (s Service) ListPublications(ctx context.Context, kind string) ([]ports.Publication, error) {
	kind = strings.TrimSpace(kind)
	if kind != "" && !ports.IsValidKind(kind) {
		return nil, domainerrors.ErrInvalidKind
	}
	return s.Repo.ListPublications(ctx, kind)
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
