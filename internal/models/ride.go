package models

import (
	"time"
)

type RideStatus string
type PaymentStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusOngoing   RideStatus = "ongoing"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusDisputed  RideStatus = "disputed"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

var RideStatuses = []RideStatus{
	RideStatusRequested,
	RideStatusAccepted,
	RideStatusOngoing,
	RideStatusCompleted,
	RideStatusCancelled,
	RideStatusDisputed,
}

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

type Ride struct {
	ID                 string        `json:"id" bson:"_id"`
	RideNumber         string        `json:"ride_number" bson:"ride_number" validate:"required"`
	DriverID           string        `json:"driver_id" bson:"driver_id"`
	PassengerID        string        `json:"passenger_id" bson:"passenger_id" validate:"required"`
	Status             RideStatus    `json:"status" bson:"status"`
	Pickup             Location      `json:"pickup" bson:"pickup"`
	Destination        Location      `json:"destination" bson:"destination"`
	RequestedAt        time.Time     `json:"requested_at" bson:"requested_at"`
	AcceptedAt         *time.Time    `json:"accepted_at,omitempty" bson:"accepted_at"`
	StartedAt          *time.Time    `json:"started_at,omitempty" bson:"started_at"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty" bson:"completed_at"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty" bson:"cancelled_at"`
	Distance           float64       `json:"distance" bson:"distance"` // kilometers
	Duration           int           `json:"duration" bson:"duration"` // minutes
	Fare               FareBreakdown `json:"fare" bson:"fare"`
	PaymentStatus      PaymentStatus `json:"payment_status" bson:"payment_status"`
	DriverRating       *float64      `json:"driver_rating,omitempty" bson:"driver_rating"`
	PassengerRating    *float64      `json:"passenger_rating,omitempty" bson:"passenger_rating"`
	Notes              string        `json:"notes,omitempty" bson:"notes"`
	CancellationReason string        `json:"cancellation_reason,omitempty" bson:"cancellation_reason"`
	CreatedAt          time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" bson:"updated_at"`
}

// IsSettled reports whether the ride counts toward revenue.
func (r Ride) IsSettled() bool {
	return r.Status == RideStatusCompleted && r.PaymentStatus == PaymentStatusCompleted
}
