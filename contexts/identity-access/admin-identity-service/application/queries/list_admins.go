package queries

import (
	"context"
	"log/slog"
	"time"

	"tribune/contexts/identity-access/admin-identity-service/domain/entities"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// ListAdminsUseCase returns the admin directory ordered by creation time,
// newest first.
type ListAdminsUseCase struct {
	Directory    ports.AdminDirectory
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u ListAdminsUseCase) Execute(ctx context.Context) ([]entities.DirectoryEntry, error) {
	timeout := u.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	listCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return u.Directory.ListEntries(listCtx)
}
