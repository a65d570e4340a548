package models

import (
	"time"
)

type DocumentType string
type OwnerType string

const (
	DocumentTypeDriversLicense      DocumentType = "drivers_license"
	DocumentTypeVehicleRegistration DocumentType = "vehicle_registration"
	DocumentTypeInsurance           DocumentType = "insurance"
	DocumentTypePassport            DocumentType = "passport"
	DocumentTypeNationalID          DocumentType = "national_id"

	OwnerTypeDriver OwnerType = "driver"
	OwnerTypeUser   OwnerType = "user"
)

var DocumentTypes = []DocumentType{
	DocumentTypeDriversLicense,
	DocumentTypeVehicleRegistration,
	DocumentTypeInsurance,
	DocumentTypePassport,
	DocumentTypeNationalID,
}

// Document is a verification upload. Owner name and email are copied from
// the owning record so the verification queue can search without a join.
type Document struct {
	ID              string             `json:"id" bson:"_id"`
	Type            DocumentType       `json:"type" bson:"type" validate:"required"`
	URL             string             `json:"url" bson:"url"`
	Status          VerificationStatus `json:"status" bson:"status"`
	UploadedAt      time.Time          `json:"uploaded_at" bson:"uploaded_at"`
	VerifiedAt      *time.Time         `json:"verified_at,omitempty" bson:"verified_at"`
	VerifiedBy      string             `json:"verified_by,omitempty" bson:"verified_by"`
	RejectionReason string             `json:"rejection_reason,omitempty" bson:"rejection_reason"`
	ExpiryDate      *time.Time         `json:"expiry_date,omitempty" bson:"expiry_date"`
	OwnerID         string             `json:"owner_id" bson:"owner_id"`
	OwnerType       OwnerType          `json:"owner_type" bson:"owner_type"`
	OwnerFirstName  string             `json:"owner_first_name" bson:"owner_first_name"`
	OwnerLastName   string             `json:"owner_last_name" bson:"owner_last_name"`
	OwnerEmail      string             `json:"owner_email" bson:"owner_email"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ExpiresWithin reports whether the document has an expiry date no later than now+window.
func (d Document) ExpiresWithin(now time.Time, window time.Duration) bool {
	if d.ExpiryDate == nil {
		return false
	}
	return !d.ExpiryDate.After(now.Add(window))
}
