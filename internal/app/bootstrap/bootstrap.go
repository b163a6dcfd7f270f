// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	adminidentityservice "tribune/contexts/identity-access/admin-identity-service"
	"tribune/contexts/identity-access/admin-identity-service/adapters/identityapi"
	"tribune/contexts/identity-access/admin-identity-service/adapters/localidp"
	adminpostgres "tribune/contexts/identity-access/admin-identity-service/adapters/postgres"
	"tribune/contexts/identity-access/admin-identity-service/adapters/redissession"
	"tribune/contexts/identity-access/admin-identity-service/application/workers"
	"tribune/contexts/identity-access/admin-identity-service/ports"
	publicationservice "tribune/contexts/party-content/publication-service"
	publicationpostgres "tribune/contexts/party-content/publication-service/adapters/postgres"
	branchservice "tribune/contexts/party-organization/branch-service"
	branchpostgres "tribune/contexts/party-organization/branch-service/adapters/postgres"
	"tribune/internal/platform/config"
	"tribune/internal/platform/db"
	"tribune/internal/platform/httpserver"
	"tribune/internal/platform/redisconn"
)

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	reconciler   workers.DirectoryReconciler
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	redisClient, err := redisconn.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	provider, verifier, err := buildIdentityProvider(cfg, pg)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	adminRepo := adminpostgres.NewRepository(pg.DB, logger)
	adminModule := adminidentityservice.NewModule(adminidentityservice.Dependencies{
		Provider:     provider,
		Verifier:     verifier,
		Roles:        adminRepo,
		Directory:    adminRepo,
		Sessions:     redissession.NewStore(redisClient),
		Tokens:       redissession.TokenGenerator{},
		Clock:        adminpostgres.SystemClock{},
		StoreTimeout: cfg.StoreTimeout,
		SessionTTL:   cfg.SessionTTL,
		Logger:       logger,
	})

	publicationModule := publicationservice.NewModule(publicationservice.Dependencies{
		Repo:        publicationpostgres.NewRepository(pg.DB, logger),
		Clock:       adminpostgres.SystemClock{},
		IDGenerator: adminpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	branchModule := branchservice.NewModule(branchservice.Dependencies{
		Repo:        branchpostgres.NewRepository(pg.DB, logger),
		Clock:       adminpostgres.SystemClock{},
		IDGenerator: adminpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(adminModule, publicationModule, branchModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	adminRepo := adminpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		reconciler: workers.DirectoryReconciler{
			Roles:     adminRepo,
			Directory: adminRepo,
			Logger:    logger,
		},
		pollInterval: cfg.ReconcileInterval,
		logger:       logger,
	}, nil
}

// buildIdentityProvider selects where admin credentials live. Local mode
// also yields a credential verifier so login can be served in-process;
// hosted mode leaves it nil and login reports not-supported.
func buildIdentityProvider(cfg config.Config, pg *db.Postgres) (ports.IdentityProvider, ports.CredentialVerifier, error) {
	if cfg.IdentityProvider == config.ProviderHosted {
		hosted, err := identityapi.New(cfg.IdentityAPIURL, cfg.IdentityAPIToken, cfg.StoreTimeout)
		if err != nil {
			return nil, nil, err
		}
		return hosted, nil, nil
	}
	local := localidp.NewProvider(pg.DB)
	return local, local, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.reconciler.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
