package identityapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	domainerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	"tribune/contexts/identity-access/admin-identity-service/ports"

	"github.com/go-resty/resty/v2"
)

// Provider implements ports.IdentityProvider against the admin REST API of
// a hosted authentication provider. Identities are created pre-confirmed;
// the credential hash never leaves the provider.
type Provider struct {
	client *resty.Client
}

func New(baseURL string, apiToken string, timeout time.Duration) (*Provider, error) {
	if baseURL == "" || apiToken == "" {
		return nil, fmt.Errorf("identityapi: base url and api token are required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiToken).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Provider{client: client}, nil
}

type createIdentityRequest struct {
	Email     string `json:"email"`
	Secret    string `json:"secret"`
	Username  string `json:"username,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Confirmed bool   `json:"confirmed"`
}

type createIdentityResponse struct {
	IdentityID string `json:"identity_id"`
}

func (p *Provider) CreateIdentity(ctx context.Context, email string, secret string, attrs ports.IdentityAttributes) (string, error) {
	var result createIdentityResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(createIdentityRequest{
			Email:     email,
			Secret:    secret,
			Username:  attrs.Username,
			FullName:  attrs.FullName,
			Confirmed: true,
		}).
		SetResult(&result).
		Post("/v1/identities")
	if err != nil {
		return "", fmt.Errorf("identityapi: create identity: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("identityapi: create identity: provider returned %d", resp.StatusCode())
	}
	if result.IdentityID == "" {
		return "", fmt.Errorf("identityapi: create identity: provider returned no identity id")
	}
	return result.IdentityID, nil
}

func (p *Provider) DeleteIdentity(ctx context.Context, identityID string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("identity_id", identityID).
		Delete("/v1/identities/{identity_id}")
	if err != nil {
		return fmt.Errorf("identityapi: delete identity: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domainerrors.ErrIdentityNotFound
	}
	if resp.IsError() {
		return fmt.Errorf("identityapi: delete identity: provider returned %d", resp.StatusCode())
	}
	return nil
}

type updateCredentialRequest struct {
	Secret string `json:"secret"`
}

func (p *Provider) UpdateCredential(ctx context.Context, identityID string, secret string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("identity_id", identityID).
		SetBody(updateCredentialRequest{Secret: secret}).
		Put("/v1/identities/{identity_id}/credential")
	if err != nil {
		return fmt.Errorf("identityapi: update credential: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domainerrors.ErrIdentityNotFound
	}
	if resp.IsError() {
		return fmt.Errorf("identityapi: update credential: provider returned %d", resp.StatusCode())
	}
	return nil
}
