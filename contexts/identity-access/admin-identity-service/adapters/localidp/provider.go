package localidp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Provider is the self-hosted identity provider: identities live in the
// local database with bcrypt credential hashes. It implements both
// ports.IdentityProvider and ports.CredentialVerifier, which is what makes
// the built-in login endpoint possible.
type Provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

func (p *Provider) CreateIdentity(ctx context.Context, email string, secret string, attrs ports.IdentityAttributes) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("localidp: hash secret: %w", err)
	}

	row := identityModel{
		IdentityID: "adm_" + uuid.NewString(),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		SecretHash: string(hash),
		Username:   attrs.Username,
		FullName:   attrs.FullName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := p.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("localidp: identity for %s already exists", row.Email)
		}
		return "", fmt.Errorf("localidp: create identity: %w", err)
	}
	return row.IdentityID, nil
}

func (p *Provider) DeleteIdentity(ctx context.Context, identityID string) error {
	result := p.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		Delete(&identityModel{})
	if result.Error != nil {
		return fmt.Errorf("localidp: delete identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIdentityNotFound
	}
	return nil
}

func (p *Provider) UpdateCredential(ctx context.Context, identityID string, secret string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("localidp: hash secret: %w", err)
	}

	result := p.db.WithContext(ctx).
		Model(&identityModel{}).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		Update("secret_hash", string(hash))
	if result.Error != nil {
		return fmt.Errorf("localidp: update credential: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIdentityNotFound
	}
	return nil
}

func (p *Provider) VerifyCredential(ctx context.Context, email string, secret string) (string, error) {
	var row identityModel
	err := p.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&row).
		Error
	if err != nil {
		// Uniform failure: do not reveal whether the email exists.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(row.SecretHash), []byte(secret)) != nil {
		return "", domainerrors.ErrInvalidCredentials
	}
	return row.IdentityID, nil
}

type identityModel struct {
	IdentityID string    `gorm:"column:identity_id;primaryKey"`
	Email      string    `gorm:"column:email;uniqueIndex"`
	SecretHash string    `gorm:"column:secret_hash"`
	Username   string    `gorm:"column:username"`
	FullName   string    `gorm:"column:full_name"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (identityModel) TableName() string {
	return "local_identities"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
