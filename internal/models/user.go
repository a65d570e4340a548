package models

import (
	"time"
)

type UserStatus string
type VerificationStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBlocked   UserStatus = "blocked"
	UserStatusPending   UserStatus = "pending"

	VerificationStatusPending     VerificationStatus = "pending"
	VerificationStatusApproved    VerificationStatus = "approved"
	VerificationStatusRejected    VerificationStatus = "rejected"
	VerificationStatusResubmitted VerificationStatus = "resubmitted"
)

var UserStatuses = []UserStatus{
	UserStatusActive,
	UserStatusSuspended,
	UserStatusBlocked,
	UserStatusPending,
}

var VerificationStatuses = []VerificationStatus{
	VerificationStatusPending,
	VerificationStatusApproved,
	VerificationStatusRejected,
	VerificationStatusResubmitted,
}

type User struct {
	ID               string             `json:"id" bson:"_id"`
	FirstName        string             `json:"first_name" bson:"first_name" validate:"required,min=2,max=50"`
	LastName         string             `json:"last_name" bson:"last_name" validate:"required,min=2,max=50"`
	Email            string             `json:"email" bson:"email" validate:"required,email"`
	Phone            string             `json:"phone" bson:"phone" validate:"required"`
	Avatar           string             `json:"avatar,omitempty" bson:"avatar"`
	Status           UserStatus         `json:"status" bson:"status"`
	IsVerified       bool               `json:"is_verified" bson:"is_verified"`
	KYCStatus        VerificationStatus `json:"kyc_status,omitempty" bson:"kyc_status"`
	TotalRides       int                `json:"total_rides" bson:"total_rides"`
	Rating           float64            `json:"rating" bson:"rating"`
	JoinedDate       time.Time          `json:"joined_date" bson:"joined_date"`
	LastActiveDate   *time.Time         `json:"last_active_date,omitempty" bson:"last_active_date"`
	Address          *Address           `json:"address,omitempty" bson:"address"`
	EmergencyContact *EmergencyContact  `json:"emergency_contact,omitempty" bson:"emergency_contact"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RiskLevel grades a rider from rating history. Riders with few rides are
// always low risk.
func (u User) RiskLevel() string {
	switch {
	case u.Rating < 3.0 && u.TotalRides > 5:
		return "high"
	case u.Rating < 4.0 && u.TotalRides > 10:
		return "medium"
	default:
		return "low"
	}
}
