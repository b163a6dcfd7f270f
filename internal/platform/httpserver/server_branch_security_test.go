package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
)

func TestBranchListIsPublic(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/content/v1/branches", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBranchCreateForbiddenForContentEditor(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Central Office","city":"Tbilisi","address":"12 Rustaveli Ave"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/branches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+memory.SeededEditorToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBranchCreateAllowedForActivityEditor(t *testing.T) {
	server := newTestServer()

	// The fixtures seed no activity editor, so provision one directly in
	// the backing store.
	store := server.admin.Store
	if err := store.UpsertRole(context.Background(), "adm_field", entities.RoleActivityEditor); err != nil {
		t.Fatalf("seed role returned error: %v", err)
	}
	session := entities.Session{
		Token:      "sess_field_token",
		IdentityID: "adm_field",
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	}
	if err := store.Create(context.Background(), session); err != nil {
		t.Fatalf("seed session returned error: %v", err)
	}

	body := []byte(`{"name":"Central Office","city":"Tbilisi","address":"12 Rustaveli Ave"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/branches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer sess_field_token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBranchCreateAllowedForSuper(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Seaside Office","city":"Batumi","address":"1 Seaside Blvd"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/content/v1/branches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+memory.SeededSuperToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBranchGetMissingIsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/content/v1/branches/br_missing", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
