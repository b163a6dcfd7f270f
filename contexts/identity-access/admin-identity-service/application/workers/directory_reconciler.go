package workers

import (
	"context"
	"log/slog"

	application "tribune/contexts/identity-access/admin-identity-service/application"
	"tribune/contexts/identity-access/admin-identity-service/ports"
)

// DirectoryReconciler repairs drift between the role directory and the
// admin directory left behind by partial lifecycle failures. The directory
// is a derived projection, so an entry without a role record is removed.
// A role record without an entry cannot be repaired here (the profile data
// needed to synthesize an entry lives only in the identity provider), so
// it is surfaced in the log for manual reconciliation.
type DirectoryReconciler struct {
	Roles     ports.RoleDirectory
	Directory ports.AdminDirectory
	Logger    *slog.Logger
}

func (w DirectoryReconciler) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(w.Logger)

	records, err := w.Roles.ListRoleRecords(ctx)
	if err != nil {
		return err
	}
	entries, err := w.Directory.ListEntries(ctx)
	if err != nil {
		return err
	}

	roleByIdentity := make(map[string]struct{}, len(records))
	for _, record := range records {
		roleByIdentity[record.IdentityID] = struct{}{}
	}
	entryByIdentity := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entryByIdentity[entry.IdentityID] = struct{}{}
	}

	for _, entry := range entries {
		if _, ok := roleByIdentity[entry.IdentityID]; ok {
			continue
		}
		if err := w.Directory.DeleteEntry(ctx, entry.IdentityID); err != nil {
			return err
		}
		logger.Info("removed orphaned directory entry",
			"event", "admin_directory_orphan_removed",
			"module", "identity-access/admin-identity-service",
			"layer", "worker",
			"identity_id", entry.IdentityID,
			"username", entry.Username,
		)
	}

	for _, record := range records {
		if _, ok := entryByIdentity[record.IdentityID]; ok {
			continue
		}
		logger.Warn("role record without directory entry",
			"event", "admin_directory_entry_missing",
			"module", "identity-access/admin-identity-service",
			"layer", "worker",
			"identity_id", record.IdentityID,
			"role", string(record.Role),
		)
	}

	return nil
}
