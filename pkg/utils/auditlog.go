package utils

import (
	"encoding/json"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/domain/audit"
	"github.com/linskybing/residence-hub/internal/repository"
)

var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	// Extract data synchronously to avoid race conditions
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			slog.Error("Failed to write audit log", "action", action, "resource_type", resourceType, "error", err)
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) error {
	auditLog := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      marshalAuditData(before),
		NewData:      marshalAuditData(after),
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}
	return repos.CreateAuditLog(auditLog)
}

func marshalAuditData(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Audit marshal error", "error", err)
		return nil
	}
	return data
}
