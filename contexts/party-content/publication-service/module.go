// Package publicationservice wires the party publication bounded context:
// news articles and official statements with public reads and role-gated
// mutations.
package publicationservice

import (
	"log/slog"

	httpadapter "tribune/contexts/party-content/publication-service/adapters/http"
	"tribune/contexts/party-content/publication-service/adapters/memory"
	"tribune/contexts/party-content/publication-service/application"
	"tribune/contexts/party-content/publication-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:        deps.Repo,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:        store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
