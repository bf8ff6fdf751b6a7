package application

import (
	"time"

	"github.com/linskybing/residence-hub/internal/domain/audit"
	"github.com/linskybing/residence-hub/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs removes entries older than the retention window.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	if days <= 0 {
		days = 30
	}
	return s.Repos.Audit.DeleteOlderThan(time.Now().AddDate(0, 0, -days))
}
