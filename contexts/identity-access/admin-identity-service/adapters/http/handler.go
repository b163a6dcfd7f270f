package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/application/commands"
	"tribune/contexts/identity-access/admin-identity-service/application/queries"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	httptransport "tribune/contexts/identity-access/admin-identity-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Login            commands.LoginUseCase
	CreateAdmin      commands.CreateAdminUseCase
	DeleteAdmin      commands.DeleteAdminUseCase
	ChangeCredential commands.ChangeCredentialUseCase
	RenameAdmin      commands.RenameAdminUseCase
	ListAdmins       queries.ListAdminsUseCase
	Logger           *slog.Logger
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	session, err := h.Login.Execute(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	resp := httptransport.LoginResponse{Status: "success"}
	resp.Data.Token = session.Token
	resp.Data.ExpiresAt = session.ExpiresAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func (h Handler) CreateAdminHandler(ctx context.Context, req httptransport.CreateAdminRequest) (httptransport.CreateAdminResponse, error) {
	entry, err := h.CreateAdmin.Execute(ctx, commands.CreateAdminCommand{
		Username:      strings.TrimSpace(req.Username),
		Password:      req.Password,
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		RequestedRole: strings.TrimSpace(req.Role),
	})
	if err != nil {
		return httptransport.CreateAdminResponse{}, err
	}
	return httptransport.CreateAdminResponse{
		Status: "success",
		Data:   adminEntryFromDirectory(entry),
	}, nil
}

func (h Handler) DeleteAdminHandler(ctx context.Context, identityID string) (httptransport.StatusResponse, error) {
	if err := h.DeleteAdmin.Execute(ctx, strings.TrimSpace(identityID)); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) ChangeCredentialHandler(ctx context.Context, identityID string, req httptransport.ChangeCredentialRequest) (httptransport.StatusResponse, error) {
	if err := h.ChangeCredential.Execute(ctx, strings.TrimSpace(identityID), req.Password); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) RenameAdminHandler(ctx context.Context, identityID string, req httptransport.RenameAdminRequest) (httptransport.StatusResponse, error) {
	if err := h.RenameAdmin.Execute(ctx, strings.TrimSpace(identityID), strings.TrimSpace(req.Username)); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) ListAdminsHandler(ctx context.Context) (httptransport.ListAdminsResponse, error) {
	entries, err := h.ListAdmins.Execute(ctx)
	if err != nil {
		return httptransport.ListAdminsResponse{}, err
	}
	resp := httptransport.ListAdminsResponse{Status: "success"}
	for _, entry := range entries {
		resp.Data.Items = append(resp.Data.Items, adminEntryFromDirectory(entry))
	}
	return resp, nil
}

func adminEntryFromDirectory(entry entities.DirectoryEntry) httptransport.AdminEntry {
	return httptransport.AdminEntry{
		IdentityID: entry.IdentityID,
		Username:   entry.Username,
		FullName:   entry.FullName,
		Email:      entry.Email,
		Role:       string(entry.Role),
		CreatedAt:  entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
