package models

import (
	"time"
)

type TicketStatus string
type TicketPriority string
type TicketCategory string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"

	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"

	TicketCategoryPayment TicketCategory = "payment"
	TicketCategoryRide    TicketCategory = "ride"
	TicketCategoryDriver  TicketCategory = "driver"
	TicketCategoryApp     TicketCategory = "app"
	TicketCategoryOther   TicketCategory = "other"
)

var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

// TicketPriorities is ordered from least to most severe.
var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
	TicketPriorityUrgent,
}

var TicketCategories = []TicketCategory{
	TicketCategoryPayment,
	TicketCategoryRide,
	TicketCategoryDriver,
	TicketCategoryApp,
	TicketCategoryOther,
}

// Next returns the priority one step above p. Urgent and unknown values stay put.
func (p TicketPriority) Next() TicketPriority {
	switch p {
	case TicketPriorityLow:
		return TicketPriorityMedium
	case TicketPriorityMedium:
		return TicketPriorityHigh
	case TicketPriorityHigh:
		return TicketPriorityUrgent
	default:
		return p
	}
}

type ResponderType string

const (
	ResponderAdmin  ResponderType = "admin"
	ResponderUser   ResponderType = "user"
	ResponderDriver ResponderType = "driver"
)

type TicketResponse struct {
	ID              string        `json:"id" bson:"_id"`
	Message         string        `json:"message" bson:"message"`
	IsInternal      bool          `json:"is_internal" bson:"is_internal"`
	RespondedBy     string        `json:"responded_by" bson:"responded_by"`
	RespondedByType ResponderType `json:"responded_by_type" bson:"responded_by_type"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}

type SupportTicket struct {
	ID            string           `json:"id" bson:"_id"`
	TicketNumber  string           `json:"ticket_number" bson:"ticket_number"`
	Subject       string           `json:"subject" bson:"subject" validate:"required"`
	Description   string           `json:"description" bson:"description"`
	Status        TicketStatus     `json:"status" bson:"status"`
	Priority      TicketPriority   `json:"priority" bson:"priority"`
	Category      TicketCategory   `json:"category" bson:"category"`
	CreatedBy     string           `json:"created_by" bson:"created_by"`
	CreatedByType ResponderType    `json:"created_by_type" bson:"created_by_type"`
	AssignedTo    string           `json:"assigned_to,omitempty" bson:"assigned_to"`
	Responses     []TicketResponse `json:"responses" bson:"responses"`
	Resolution    string           `json:"resolution,omitempty" bson:"resolution"`
	ResolvedAt    *time.Time       `json:"resolved_at,omitempty" bson:"resolved_at"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`
}
