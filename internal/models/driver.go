package models

import (
	"time"
)

type DriverStatus string

const (
	DriverStatusActive              DriverStatus = "active"
	DriverStatusInactive            DriverStatus = "inactive"
	DriverStatusSuspended           DriverStatus = "suspended"
	DriverStatusBanned              DriverStatus = "banned"
	DriverStatusPendingVerification DriverStatus = "pending_verification"
	DriverStatusRejected            DriverStatus = "rejected"
)

var DriverStatuses = []DriverStatus{
	DriverStatusActive,
	DriverStatusInactive,
	DriverStatusSuspended,
	DriverStatusBanned,
	DriverStatusPendingVerification,
	DriverStatusRejected,
}

type Driver struct {
	ID                 string             `json:"id" bson:"_id"`
	FirstName          string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName           string             `json:"last_name" bson:"last_name" validate:"required"`
	Email              string             `json:"email" bson:"email" validate:"required,email"`
	Phone              string             `json:"phone" bson:"phone" validate:"required"`
	Avatar             string             `json:"avatar,omitempty" bson:"avatar"`
	Status             DriverStatus       `json:"status" bson:"status"`
	LicenseNumber      string             `json:"license_number" bson:"license_number" validate:"required"`
	LicenseExpiry      time.Time          `json:"license_expiry" bson:"license_expiry"`
	IsVerified         bool               `json:"is_verified" bson:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status" bson:"verification_status"`
	Vehicle            Vehicle            `json:"vehicle" bson:"vehicle"`
	TotalRides         int                `json:"total_rides" bson:"total_rides"`
	Rating             float64            `json:"rating" bson:"rating"`
	Earnings           float64            `json:"earnings" bson:"earnings"`
	JoinedDate         time.Time          `json:"joined_date" bson:"joined_date"`
	LastActiveDate     *time.Time         `json:"last_active_date,omitempty" bson:"last_active_date"`
	Documents          []Document         `json:"documents" bson:"documents"`
	BankDetails        *BankDetails       `json:"bank_details,omitempty" bson:"bank_details"`
	Address            Address            `json:"address" bson:"address"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

type BankDetails struct {
	AccountNumber string `json:"account_number" bson:"account_number"`
	RoutingNumber string `json:"routing_number" bson:"routing_number"`
	BankName      string `json:"bank_name" bson:"bank_name"`
}

func (d Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
