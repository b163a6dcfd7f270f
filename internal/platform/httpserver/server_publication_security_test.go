package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
)

func TestPublicationListIsPublic(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/content/v1/publications", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPublicationCreateRequiresAuthentication(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"kind":"news","title":"Congress announced","body":"The congress convenes in October."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/publications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPublicationCreateAllowedForContentEditor(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"kind":"statement","title":"Budget statement","body":"The party supports the revised draft."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/publications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+memory.SeededEditorToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPublicationCreateRejectsUnknownKind(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"kind":"broadcast","title":"Title","body":"Body"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/publications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+memory.SeededSuperToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPublicationUpdateMissingIsNotFound(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Edited","body":"Edited body"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/content/v1/publications/pub_missing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+memory.SeededSuperToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPublicationCreateForbiddenAfterRoleRevocation(t *testing.T) {
	server := newTestServer()

	// Revoking the role record takes effect on the very next request,
	// even though the session token is still valid.
	if err := server.admin.Store.DeleteRole(context.Background(), memory.SeededEditorIdentityID); err != nil {
		t.Fatalf("revoke role returned error: %v", err)
	}

	body := []byte(`{"kind":"news","title":"After revocation","body":"Should not land."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/publications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+memory.SeededEditorToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after revocation, got %d body=%s", rr.Code, rr.Body.String())
	}
}
