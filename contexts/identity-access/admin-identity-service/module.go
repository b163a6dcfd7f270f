package adminidentityservice

import (
	"log/slog"
	"time"

	httpadapter "tribune/contexts/identity-access/admin-identity-service/adapters/http"
	"tribune/contexts/identity-access/admin-identity-service/adapters/memory"
	"tribune/contexts/identity-access/admin-identity-service/application/commands"
	"tribune/contexts/identity-access/admin-identity-service/application/queries"
	"tribune/contexts/identity-access/admin-identity-service/application/workers"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// Module is the admin-identity-service composition root exposed to runtime
// wiring. Gate is used directly by the platform HTTP layer to guard every
// privileged route, including routes of other contexts.
type Module struct {
	Handler    httpadapter.Handler
	Gate       queries.AuthorizeUseCase
	Reconciler workers.DirectoryReconciler
	Store      *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
// Verifier may be nil in hosted-provider mode; login then returns an
// explicit "not supported here" error.
type Dependencies struct {
	Provider     ports.IdentityProvider
	Verifier     ports.CredentialVerifier
	Roles        ports.RoleDirectory
	Directory    ports.AdminDirectory
	Sessions     ports.SessionStore
	Tokens       ports.IDGenerator
	Clock        ports.Clock
	StoreTimeout time.Duration
	SessionTTL   time.Duration
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	gate := queries.AuthorizeUseCase{
		Sessions:     deps.Sessions,
		Roles:        deps.Roles,
		Clock:        deps.Clock,
		StoreTimeout: deps.StoreTimeout,
		Logger:       deps.Logger,
	}

	handler := httpadapter.Handler{
		Login: commands.LoginUseCase{
			Verifier:     deps.Verifier,
			Sessions:     deps.Sessions,
			Tokens:       deps.Tokens,
			Clock:        deps.Clock,
			SessionTTL:   deps.SessionTTL,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		CreateAdmin: commands.CreateAdminUseCase{
			Provider:     deps.Provider,
			Roles:        deps.Roles,
			Directory:    deps.Directory,
			Clock:        deps.Clock,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		DeleteAdmin: commands.DeleteAdminUseCase{
			Provider:     deps.Provider,
			Roles:        deps.Roles,
			Directory:    deps.Directory,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		ChangeCredential: commands.ChangeCredentialUseCase{
			Provider:     deps.Provider,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		RenameAdmin: commands.RenameAdminUseCase{
			Directory:    deps.Directory,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		ListAdmins: queries.ListAdminsUseCase{
			Directory:    deps.Directory,
			StoreTimeout: deps.StoreTimeout,
			Logger:       deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler: handler,
		Gate:    gate,
		Reconciler: workers.DirectoryReconciler{
			Roles:     deps.Roles,
			Directory: deps.Directory,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters for every port.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Provider:     store,
		Verifier:     store,
		Roles:        store,
		Directory:    store,
		Sessions:     store,
		Tokens:       store,
		Clock:        store,
		StoreTimeout: 5 * time.Second,
		SessionTTL:   12 * time.Hour,
		Logger:       logger,
	})
	module.Store = store
	return module
}
