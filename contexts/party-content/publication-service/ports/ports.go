package ports

import (
	"context"
	"time"
)

const (
	KindNews      = "news"
	KindStatement = "statement"
)

func IsValidKind(kind string) bool {
	switch kind {
	case KindNews, KindStatement:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Publication is a published news article or official statement.
type Publication struct {
	PublicationID string
	Kind          string
	Title         string
	Body          string
	ImageURL      string
	AuthorID      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreatePublicationInput struct {
	Kind     string
	Title    string
	Body     string
	ImageURL string
	AuthorID string
}

type UpdatePublicationInput struct {
	Title    string
	Body     string
	ImageURL string
}

type Repository interface {
	CreatePublication(ctx context.Context, publication Publication) error
	UpdatePublication(ctx context.Context, publication Publication) error
	GetPublication(ctx context.Context, publicationID string) (Publication, error)
	DeletePublication(ctx context.Context, publicationID string) error
	ListPublications(ctx context.Context, kind string) ([]Publication, error)
}
