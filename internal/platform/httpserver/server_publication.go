package httpserver

import (
	"errors"
	"net/http"

	adminentities "tribune/contexts/identity-access/admin-identity-service/domain/entities"
	publicationerrors "tribune/contexts/party-content/publication-service/domain/errors"
	publicationhttp "tribune/contexts/party-content/publication-service/transport/http"
)

func writePublicationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, publicationhttp.ErrorResponse{Code: code, Message: message})
}

func writePublicationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, publicationerrors.ErrPublicationNotFound):
		writePublicationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, publicationerrors.ErrInvalidRequest),
		errors.Is(err, publicationerrors.ErrInvalidKind):
		writePublicationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePublicationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListPublications(w http.ResponseWriter, r *http.Request) {
	resp, err := s.publications.Handler.ListPublicationsHandler(r.Context(), r.URL.Query().Get("kind"))
	if err != nil {
		writePublicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPublication(w http.ResponseWriter, r *http.Request) {
	resp, err := s.publications.Handler.GetPublicationHandler(r.Context(), r.PathValue("publication_id"))
	if err != nil {
		writePublicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePublication(w http.ResponseWriter, r *http.Request) {
	result, ok := s.requireRole(w, r, adminentities.RoleContentEditor, adminentities.RoleSuper)
	if !ok {
		return
	}
	var req publicationhttp.CreatePublicationRequest
	if !s.decodeJSON(w, r, &req, writePublicationError) {
		return
	}
	resp, err := s.publications.Handler.CreatePublicationHandler(r.Context(), result.IdentityID, req)
	if err != nil {
		writePublicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdatePublication(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, adminentities.RoleContentEditor, adminentities.RoleSuper); !ok {
		return
	}
	var req publicationhttp.UpdatePublicationRequest
	if !s.decodeJSON(w, r, &req, writePublicationError) {
		return
	}
	resp, err := s.publications.Handler.UpdatePublicationHandler(r.Context(), r.PathValue("publication_id"), req)
	if err != nil {
		writePublicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePublication(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, adminentities.RoleContentEditor, adminentities.RoleSuper); !ok {
		return
	}
	resp, err := s.publications.Handler.DeletePublicationHandler(r.Context(), r.PathValue("publication_id"))
	if err != nil {
		writePublicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
