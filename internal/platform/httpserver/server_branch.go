package httpserver

import (
	"errors"
	"net/http"

	adminentities "tribune/contexts/identity-access/admin-identity-service/domain/entities"
	brancherrors "tribune/contexts/party-organization/branch-service/domain/errors"
	branchhttp "tribune/contexts/party-organization/branch-service/transport/http"
)

func writeBranchError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, branchhttp.ErrorResponse{Code: code, Message: message})
}

func writeBranchDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, brancherrors.ErrBranchNotFound):
		writeBranchError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, brancherrors.ErrInvalidRequest):
		writeBranchError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBranchError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListBranches(w http.ResponseWriter, r *http.Request) {
	resp, err := s.branches.Handler.ListBranchesHandler(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeBranchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBranch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.branches.Handler.GetBranchHandler(r.Context(), r.PathValue("branch_id"))
	if err != nil {
		writeBranchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBranch(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, adminentities.RoleActivityEditor, adminentities.RoleSuper); !ok {
		return
	}
	var req branchhttp.CreateBranchRequest
	if !s.decodeJSON(w, r, &req, writeBranchError) {
		return
	}
	resp, err := s.branches.Handler.CreateBranchHandler(r.Context(), req)
	if err != nil {
		writeBranchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateBranch(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, adminentities.RoleActivityEditor, adminentities.RoleSuper); !ok {
		return
	}
	var req branchhttp.UpdateBranchRequest
	if !s.decodeJSON(w, r, &req, writeBranchError) {
		return
	}
	resp, err := s.branches.Handler.UpdateBranchHandler(r.Context(), r.PathValue("branch_id"), req)
	if err != nil {
		writeBranchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteBranch(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, adminentities.RoleActivityEditor, adminentities.RoleSuper); !ok {
		return
	}
	resp, err := s.branches.Handler.DeleteBranchHandler(r.Context(), r.PathValue("branch_id"))
	if err != nil {
		writeBranchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
