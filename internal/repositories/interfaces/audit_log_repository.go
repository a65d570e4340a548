package interfaces

import (
	"context"

	"livelink/internal/models"
	"livelink/internal/utils"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *models.AuditLog) error
	GetResourceHistory(ctx context.Context, resource, resourceID string, params *utils.PaginationParams) ([]*models.AuditLog, int64, error)
	GetByOperator(ctx context.Context, operator string, params *utils.PaginationParams) ([]*models.AuditLog, int64, error)
}
