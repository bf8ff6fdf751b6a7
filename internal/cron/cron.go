package cron

import (
	"context"
	"log/slog"
	"time"
)

const cleanupInterval = 24 * time.Hour

type auditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// StartCleanupTask purges audit entries older than retentionDays once at
// startup and then daily until ctx is cancelled.
func StartCleanupTask(ctx context.Context, auditService auditCleaner, retentionDays int) {
	go runCleanup(ctx, auditService, retentionDays, cleanupInterval)
}

func runCleanup(ctx context.Context, auditService auditCleaner, retentionDays int, interval time.Duration) {
	slog.Info("starting background cleanup task", "retention_days", retentionDays)

	cleanupOnce(auditService, retentionDays)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanupOnce(auditService, retentionDays)
		}
	}
}

func cleanupOnce(auditService auditCleaner, retentionDays int) {
	deleted, err := auditService.CleanupOldLogs(retentionDays)
	if err != nil {
		slog.Error("failed to cleanup old audit logs", "error", err)
		return
	}
	slog.Info("audit log cleanup completed", "deleted", deleted)
}
