package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"livelink/internal/models"
	"livelink/internal/repositories/interfaces"
	"livelink/internal/utils"
)

type auditLogRepository struct {
	collection *mongo.Collection
}

func NewAuditLogRepository(db *mongo.Database) interfaces.AuditLogRepository {
	return &auditLogRepository{
		collection: db.Collection(utils.AuditCollection),
	}
}

// Create fills in ID and CreatedAt when the caller left them empty.
func (r *auditLogRepository) Create(ctx context.Context, auditLog *models.AuditLog) error {
	if auditLog.ID == "" {
		auditLog.ID = uuid.NewString()
	}
	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, auditLog); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (r *auditLogRepository) GetResourceHistory(ctx context.Context, resource, resourceID string, params *utils.PaginationParams) ([]*models.AuditLog, int64, error) {
	filter := bson.M{
		"resource":    resource,
		"resource_id": resourceID,
	}
	return r.findAuditLogsWithFilter(ctx, filter, params)
}

func (r *auditLogRepository) GetByOperator(ctx context.Context, operator string, params *utils.PaginationParams) ([]*models.AuditLog, int64, error) {
	return r.findAuditLogsWithFilter(ctx, bson.M{"operator": operator}, params)
}

func (r *auditLogRepository) findAuditLogsWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.AuditLog, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(params.GetSkip())).
		SetLimit(int64(params.GetLimit())).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find audit logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []*models.AuditLog
	for cursor.Next(ctx) {
		var log models.AuditLog
		if err := cursor.Decode(&log); err != nil {
			return nil, 0, fmt.Errorf("failed to decode audit log: %w", err)
		}
		logs = append(logs, &log)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate audit logs: %w", err)
	}

	return logs, total, nil
}
