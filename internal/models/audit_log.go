package models

import (
	"time"
)

// AuditLog is the persisted form of an admin action.
type AuditLog struct {
	ID         string            `json:"id" bson:"_id"`
	Operator   string            `json:"operator" bson:"operator" validate:"required"`
	Action     string            `json:"action" bson:"action" validate:"required"`
	Resource   string            `json:"resource" bson:"resource" validate:"required"`
	ResourceID string            `json:"resource_id" bson:"resource_id"`
	Params     map[string]string `json:"params,omitempty" bson:"params"`
	Status     string            `json:"status" bson:"status"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
}
