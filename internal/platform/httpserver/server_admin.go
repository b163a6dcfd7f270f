package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"tribune/contexts/identity-access/admin-identity-service/application/queries"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	adminerrors "tribune/contexts/identity-access/admin-identity-service/domain/errors"
	adminhttp "tribune/contexts/identity-access/admin-identity-service/transport/http"
)

func writeAdminError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, adminhttp.ErrorResponse{Code: code, Message: message})
}

func writeAdminDomainError(w http.ResponseWriter, err error) {
	if failure, ok := adminerrors.AsStepFailure(err); ok {
		// Partial state across the identity stores is disclosed, not
		// hidden behind a generic message.
		writeAdminError(w, http.StatusInternalServerError, "partial_failure",
			fmt.Sprintf("%s stopped at %s step: %s", failure.Op, failure.Step, failure.State))
		return
	}

	switch {
	case errors.Is(err, adminerrors.ErrInvalidRequest):
		writeAdminError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, adminerrors.ErrUnsupportedRole):
		writeAdminError(w, http.StatusBadRequest, "unsupported_role", err.Error())
	case errors.Is(err, adminerrors.ErrUnauthenticated),
		errors.Is(err, adminerrors.ErrInvalidCredentials):
		writeAdminError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, adminerrors.ErrForbidden):
		writeAdminError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, adminerrors.ErrIdentityNotFound),
		errors.Is(err, adminerrors.ErrRoleRecordNotFound),
		errors.Is(err, adminerrors.ErrEntryNotFound):
		writeAdminError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, adminerrors.ErrDuplicateUsername):
		writeAdminError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, adminerrors.ErrLoginNotSupported):
		writeAdminError(w, http.StatusNotImplemented, "not_implemented", err.Error())
	default:
		writeAdminError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// requireRole authorizes the request's bearer token against the required
// role set. The role is re-derived from the role directory on every call.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, required ...entities.Role) (queries.AuthResult, bool) {
	result, err := s.admin.Gate.Execute(r.Context(), bearerToken(r), required...)
	if err != nil {
		writeAdminDomainError(w, err)
		return queries.AuthResult{}, false
	}
	return result, true
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminhttp.LoginRequest
	if !s.decodeJSON(w, r, &req, writeAdminError) {
		return
	}
	resp, err := s.admin.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminMe(w http.ResponseWriter, r *http.Request) {
	result, ok := s.requireRole(w, r, entities.RoleSuper, entities.RoleContentEditor, entities.RoleActivityEditor)
	if !ok {
		return
	}
	resp := adminhttp.MeResponse{Status: "success"}
	resp.Data.IdentityID = result.IdentityID
	resp.Data.Role = string(result.Role)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, entities.RoleSuper); !ok {
		return
	}
	resp, err := s.admin.Handler.ListAdminsHandler(r.Context())
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, entities.RoleSuper); !ok {
		return
	}
	var req adminhttp.CreateAdminRequest
	if !s.decodeJSON(w, r, &req, writeAdminError) {
		return
	}
	resp, err := s.admin.Handler.CreateAdminHandler(r.Context(), req)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, entities.RoleSuper); !ok {
		return
	}
	resp, err := s.admin.Handler.DeleteAdminHandler(r.Context(), r.PathValue("identity_id"))
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeAdminCredential(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, entities.RoleSuper); !ok {
		return
	}
	var req adminhttp.ChangeCredentialRequest
	if !s.decodeJSON(w, r, &req, writeAdminError) {
		return
	}
	resp, err := s.admin.Handler.ChangeCredentialHandler(r.Context(), r.PathValue("identity_id"), req)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRenameAdmin(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, entities.RoleSuper); !ok {
		return
	}
	var req adminhttp.RenameAdminRequest
	if !s.decodeJSON(w, r, &req, writeAdminError) {
		return
	}
	resp, err := s.admin.Handler.RenameAdminHandler(r.Context(), r.PathValue("identity_id"), req)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
