package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	adminidentityservice "tribune/contexts/identity-access/admin-identity-service"
	publicationservice "tribune/contexts/party-content/publication-service"
	branchservice "tribune/contexts/party-organization/branch-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "tribune/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	admin        adminidentityservice.Module
	publications publicationservice.Module
	branches     branchservice.Module
}

func New(
	admin adminidentityservice.Module,
	publications publicationservice.Module,
	branches branchservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		admin:        admin,
		publications: publications,
		branches:     branches,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /api/admin/v1/session", s.handleAdminLogin)
	s.mux.HandleFunc("GET /api/admin/v1/me", s.handleAdminMe)
	s.mux.HandleFunc("GET /api/admin/v1/admins", s.handleListAdmins)
	s.mux.HandleFunc("POST /api/admin/v1/admins", s.handleCreateAdmin)
	s.mux.HandleFunc("DELETE /api/admin/v1/admins/{identity_id}", s.handleDeleteAdmin)
	s.mux.HandleFunc("PUT /api/admin/v1/admins/{identity_id}/credential", s.handleChangeAdminCredential)
	s.mux.HandleFunc("PUT /api/admin/v1/admins/{identity_id}/username", s.handleRenameAdmin)

	s.mux.HandleFunc("GET /api/content/v1/publications", s.handleListPublications)
	s.mux.HandleFunc("GET /api/content/v1/publications/{publication_id}", s.handleGetPublication)
	s.mux.HandleFunc("POST /api/content/v1/publications", s.handleCreatePublication)
	s.mux.HandleFunc("PUT /api/content/v1/publications/{publication_id}", s.handleUpdatePublication)
	s.mux.HandleFunc("DELETE /api/content/v1/publications/{publication_id}", s.handleDeletePublication)

	s.mux.HandleFunc("GET /api/content/v1/branches", s.handleListBranches)
	s.mux.HandleFunc("GET /api/content/v1/branches/{branch_id}", s.handleGetBranch)
	s.mux.HandleFunc("POST /api/content/v1/branches", s.handleCreateBranch)
	s.mux.HandleFunc("PUT /api/content/v1/branches/{branch_id}", s.handleUpdateBranch)
	s.mux.HandleFunc("DELETE /api/content/v1/branches/{branch_id}", s.handleDeleteBranch)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}

// bearerToken extracts the token from an Authorization: Bearer header.
// Empty string means no usable credential was presented.
func bearerToken(r *http.Request) string {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any, writeError func(http.ResponseWriter, int, string, string)) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
