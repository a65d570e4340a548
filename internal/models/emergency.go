package models

import (
	"time"
)

type EmergencyType string
type EmergencyStatus string

const (
	EmergencyTypeSOS           EmergencyType = "sos"
	EmergencyTypeAccident      EmergencyType = "accident"
	EmergencyTypeHarassment    EmergencyType = "harassment"
	EmergencyTypeMedical       EmergencyType = "medical"
	EmergencyTypeBreakdown     EmergencyType = "breakdown"
	EmergencyTypeSafetyConcern EmergencyType = "safety_concern"
	EmergencyTypeOther         EmergencyType = "other"

	EmergencyStatusActive     EmergencyStatus = "active"
	EmergencyStatusResolved   EmergencyStatus = "resolved"
	EmergencyStatusFalseAlarm EmergencyStatus = "false_alarm"
	EmergencyStatusForwarded  EmergencyStatus = "forwarded"
)

var EmergencyTypes = []EmergencyType{
	EmergencyTypeSOS,
	EmergencyTypeAccident,
	EmergencyTypeHarassment,
	EmergencyTypeMedical,
	EmergencyTypeBreakdown,
	EmergencyTypeSafetyConcern,
	EmergencyTypeOther,
}

var EmergencyStatuses = []EmergencyStatus{
	EmergencyStatusActive,
	EmergencyStatusResolved,
	EmergencyStatusFalseAlarm,
	EmergencyStatusForwarded,
}

type EmergencyContacts struct {
	Police    string `json:"police,omitempty" bson:"police"`
	Ambulance string `json:"ambulance,omitempty" bson:"ambulance"`
	Emergency string `json:"emergency,omitempty" bson:"emergency"`
}

type EmergencyAlert struct {
	ID          string            `json:"id" bson:"_id"`
	RideID      string            `json:"ride_id,omitempty" bson:"ride_id"`
	UserID      string            `json:"user_id,omitempty" bson:"user_id"`
	DriverID    string            `json:"driver_id,omitempty" bson:"driver_id"`
	Type        EmergencyType     `json:"type" bson:"type" validate:"required"`
	Status      EmergencyStatus   `json:"status" bson:"status"`
	Location    Location          `json:"location" bson:"location"`
	Description string            `json:"description" bson:"description"`
	ReportedAt  time.Time         `json:"reported_at" bson:"reported_at"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty" bson:"resolved_at"`
	ResolvedBy  string            `json:"resolved_by,omitempty" bson:"resolved_by"`
	Actions     []string          `json:"actions" bson:"actions"`
	Contacts    EmergencyContacts `json:"contacts" bson:"contacts"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
