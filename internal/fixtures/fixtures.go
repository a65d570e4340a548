// Package fixtures provides the seed records the console starts with.
// Every call returns freshly allocated records so callers never share state.
package fixtures

import (
	"fmt"
	"time"

	"livelink/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, d, hour, min int) time.Time {
	return time.Date(year, month, d, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func floatPtr(f float64) *float64 {
	return &f
}

func Users() []models.User {
	return []models.User{
		{
			ID:             "usr-1001",
			FirstName:      "John",
			LastName:       "Doe",
			Email:          "john.doe@email.com",
			Phone:          "+1234567890",
			Avatar:         "https://via.placeholder.com/150",
			Status:         models.UserStatusActive,
			IsVerified:     true,
			KYCStatus:      models.VerificationStatusApproved,
			TotalRides:     45,
			Rating:         4.8,
			JoinedDate:     day(2024, time.January, 15),
			LastActiveDate: timePtr(day(2024, time.September, 10)),
			Address: &models.Address{
				Street:  "123 Main St",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Country: "USA",
			},
			EmergencyContact: &models.EmergencyContact{
				Name:         "Mary Doe",
				Phone:        "+1234567800",
				Relationship: "spouse",
			},
			CreatedAt: day(2024, time.January, 15),
			UpdatedAt: day(2024, time.September, 10),
		},
		{
			ID:             "usr-1002",
			FirstName:      "Jane",
			LastName:       "Smith",
			Email:          "jane.smith@email.com",
			Phone:          "+1234567891",
			Status:         models.UserStatusActive,
			IsVerified:     true,
			KYCStatus:      models.VerificationStatusApproved,
			TotalRides:     32,
			Rating:         4.6,
			JoinedDate:     day(2024, time.February, 20),
			LastActiveDate: timePtr(day(2024, time.September, 11)),
			CreatedAt:      day(2024, time.February, 20),
			UpdatedAt:      day(2024, time.September, 11),
		},
		{
			ID:             "usr-1003",
			FirstName:      "Mike",
			LastName:       "Johnson",
			Email:          "mike.johnson@email.com",
			Phone:          "+1234567892",
			Status:         models.UserStatusSuspended,
			IsVerified:     false,
			KYCStatus:      models.VerificationStatusPending,
			TotalRides:     8,
			Rating:         3.2,
			JoinedDate:     day(2024, time.August, 1),
			LastActiveDate: timePtr(day(2024, time.August, 15)),
			CreatedAt:      day(2024, time.August, 1),
			UpdatedAt:      day(2024, time.August, 15),
		},
	}
}

func Drivers() []models.Driver {
	return []models.Driver{
		{
			ID:                 "drv-2001",
			FirstName:          "Robert",
			LastName:           "Wilson",
			Email:              "robert.wilson@email.com",
			Phone:              "+1234567893",
			Avatar:             "https://via.placeholder.com/150",
			Status:             models.DriverStatusActive,
			LicenseNumber:      "DL123456789",
			LicenseExpiry:      day(2026, time.December, 31),
			IsVerified:         true,
			VerificationStatus: models.VerificationStatusApproved,
			Vehicle: models.Vehicle{
				ID:           "veh-1",
				Make:         "Toyota",
				Model:        "Camry",
				Year:         2022,
				Color:        "Silver",
				LicensePlate: "ABC123",
				Capacity:     4,
				Type:         models.VehicleTypeSedan,
			},
			TotalRides:     234,
			Rating:         4.9,
			Earnings:       12450.50,
			JoinedDate:     day(2023, time.November, 10),
			LastActiveDate: timePtr(day(2024, time.September, 11)),
			Address: models.Address{
				Street:  "456 Oak Ave",
				City:    "Los Angeles",
				State:   "CA",
				ZipCode: "90210",
				Country: "USA",
			},
			BankDetails: &models.BankDetails{
				AccountNumber: "****4821",
				RoutingNumber: "021000021",
				BankName:      "First National",
			},
			CreatedAt: day(2023, time.November, 10),
			UpdatedAt: day(2024, time.September, 11),
		},
		{
			ID:                 "drv-2002",
			FirstName:          "Sarah",
			LastName:           "Davis",
			Email:              "sarah.davis@email.com",
			Phone:              "+1234567894",
			Status:             models.DriverStatusPendingVerification,
			LicenseNumber:      "DL987654321",
			LicenseExpiry:      day(2025, time.August, 15),
			IsVerified:         false,
			VerificationStatus: models.VerificationStatusPending,
			Vehicle: models.Vehicle{
				ID:           "veh-2",
				Make:         "Honda",
				Model:        "Civic",
				Year:         2021,
				Color:        "Blue",
				LicensePlate: "XYZ789",
				Capacity:     4,
				Type:         models.VehicleTypeSedan,
			},
			JoinedDate: day(2024, time.September, 5),
			Address: models.Address{
				Street:  "789 Pine St",
				City:    "Chicago",
				State:   "IL",
				ZipCode: "60601",
				Country: "USA",
			},
			CreatedAt: day(2024, time.September, 5),
			UpdatedAt: day(2024, time.September, 5),
		},
	}
}

func Rides() []models.Ride {
	return []models.Ride{
		{
			ID:          "rid-3001",
			RideNumber:  "RIDE001",
			DriverID:    "drv-2001",
			PassengerID: "usr-1001",
			Status:      models.RideStatusCompleted,
			Pickup: models.Location{
				Latitude: 40.7128, Longitude: -74.0060,
				Address: "123 Main St", City: "New York", State: "NY",
			},
			Destination: models.Location{
				Latitude: 40.7589, Longitude: -73.9851,
				Address: "456 Broadway", City: "New York", State: "NY",
			},
			RequestedAt: at(2024, time.September, 11, 10, 0),
			AcceptedAt:  timePtr(at(2024, time.September, 11, 10, 2)),
			StartedAt:   timePtr(at(2024, time.September, 11, 10, 15)),
			CompletedAt: timePtr(at(2024, time.September, 11, 10, 45)),
			Distance:    5.2,
			Duration:    30,
			Fare: models.FareBreakdown{
				BaseFare:     3.50,
				DistanceFare: 10.40,
				TimeFare:     4.50,
				Total:        18.40,
			},
			PaymentStatus:   models.PaymentStatusCompleted,
			DriverRating:    floatPtr(5),
			PassengerRating: floatPtr(5),
			CreatedAt:       at(2024, time.September, 11, 10, 0),
			UpdatedAt:       at(2024, time.September, 11, 10, 45),
		},
		{
			ID:          "rid-3002",
			RideNumber:  "RIDE002",
			DriverID:    "drv-2001",
			PassengerID: "usr-1002",
			Status:      models.RideStatusOngoing,
			Pickup: models.Location{
				Latitude: 34.0522, Longitude: -118.2437,
				Address: "789 Sunset Blvd", City: "Los Angeles", State: "CA",
			},
			Destination: models.Location{
				Latitude: 34.0928, Longitude: -118.3287,
				Address: "321 Hollywood Blvd", City: "Los Angeles", State: "CA",
			},
			RequestedAt: at(2024, time.September, 11, 14, 0),
			AcceptedAt:  timePtr(at(2024, time.September, 11, 14, 3)),
			StartedAt:   timePtr(at(2024, time.September, 11, 14, 15)),
			Distance:    8.1,
			Duration:    25,
			Fare: models.FareBreakdown{
				BaseFare:     3.50,
				DistanceFare: 16.20,
				TimeFare:     3.75,
				Total:        23.45,
			},
			PaymentStatus: models.PaymentStatusPending,
			CreatedAt:     at(2024, time.September, 11, 14, 0),
			UpdatedAt:     at(2024, time.September, 11, 14, 15),
		},
	}
}

func Tickets() []models.SupportTicket {
	return []models.SupportTicket{
		{
			ID:            "tkt-4001",
			TicketNumber:  "TKT001",
			Subject:       "Payment Issue",
			Description:   "I was charged twice for the same ride",
			Status:        models.TicketStatusOpen,
			Priority:      models.TicketPriorityHigh,
			Category:      models.TicketCategoryPayment,
			CreatedBy:     "usr-1001",
			CreatedByType: models.ResponderUser,
			Responses:     []models.TicketResponse{},
			CreatedAt:     at(2024, time.September, 10, 15, 30),
			UpdatedAt:     at(2024, time.September, 10, 15, 30),
		},
		{
			ID:            "tkt-4002",
			TicketNumber:  "TKT002",
			Subject:       "Driver was rude",
			Description:   "The driver was unprofessional during the ride",
			Status:        models.TicketStatusInProgress,
			Priority:      models.TicketPriorityMedium,
			Category:      models.TicketCategoryDriver,
			CreatedBy:     "usr-1002",
			CreatedByType: models.ResponderUser,
			AssignedTo:    "admin1",
			Responses:     []models.TicketResponse{},
			CreatedAt:     at(2024, time.September, 9, 12, 15),
			UpdatedAt:     at(2024, time.September, 10, 9, 0),
		},
		{
			ID:            "tkt-4003",
			TicketNumber:  "TKT003",
			Subject:       "App crashes on login",
			Description:   "The app closes right after entering my password",
			Status:        models.TicketStatusOpen,
			Priority:      models.TicketPriorityLow,
			Category:      models.TicketCategoryApp,
			CreatedBy:     "drv-2002",
			CreatedByType: models.ResponderDriver,
			Responses:     []models.TicketResponse{},
			CreatedAt:     at(2024, time.September, 11, 8, 5),
			UpdatedAt:     at(2024, time.September, 11, 8, 5),
		},
	}
}

func Alerts() []models.EmergencyAlert {
	return []models.EmergencyAlert{
		{
			ID:     "alr-5001",
			RideID: "rid-3001",
			UserID: "usr-1001",
			Type:   models.EmergencyTypeSOS,
			Status: models.EmergencyStatusResolved,
			Location: models.Location{
				Latitude: 40.7128, Longitude: -74.0060,
				Address: "123 Emergency St", City: "New York", State: "NY",
			},
			Description: "Passenger pressed SOS button",
			ReportedAt:  at(2024, time.September, 10, 20, 30),
			ResolvedAt:  timePtr(at(2024, time.September, 10, 21, 0)),
			ResolvedBy:  "admin1",
			Actions: []string{
				"Contacted emergency services",
				"Called passenger",
				"Incident resolved",
			},
			Contacts:  models.EmergencyContacts{Police: "911", Emergency: "911"},
			CreatedAt: at(2024, time.September, 10, 20, 30),
			UpdatedAt: at(2024, time.September, 10, 21, 0),
		},
		{
			ID:       "alr-5002",
			RideID:   "rid-3002",
			UserID:   "usr-1002",
			DriverID: "drv-2001",
			Type:     models.EmergencyTypeBreakdown,
			Status:   models.EmergencyStatusActive,
			Location: models.Location{
				Latitude: 34.0700, Longitude: -118.2900,
				Address: "Sunset Blvd & Vermont Ave", City: "Los Angeles", State: "CA",
			},
			Description: "Vehicle broke down mid-ride",
			ReportedAt:  at(2024, time.September, 11, 14, 30),
			Actions:     []string{},
			Contacts:    models.EmergencyContacts{Emergency: "911"},
			CreatedAt:   at(2024, time.September, 11, 14, 30),
			UpdatedAt:   at(2024, time.September, 11, 14, 30),
		},
	}
}

var driverDocumentTypes = []models.DocumentType{
	models.DocumentTypeDriversLicense,
	models.DocumentTypeVehicleRegistration,
	models.DocumentTypeInsurance,
}

// Documents derives the verification queue from drivers. Drivers carrying
// their own documents contribute those; the rest get one document per
// required type whose status follows the driver's verification state.
func Documents(drivers []models.Driver) []models.Document {
	var docs []models.Document
	for _, d := range drivers {
		if len(d.Documents) > 0 {
			docs = append(docs, d.Documents...)
			continue
		}
		for i, typ := range driverDocumentTypes {
			doc := models.Document{
				ID:             fmt.Sprintf("doc-%s-%d", d.ID, i),
				Type:           typ,
				URL:            fmt.Sprintf("https://example.com/documents/%s_%s.pdf", d.ID, typ),
				Status:         models.VerificationStatusPending,
				UploadedAt:     d.CreatedAt,
				OwnerID:        d.ID,
				OwnerType:      models.OwnerTypeDriver,
				OwnerFirstName: d.FirstName,
				OwnerLastName:  d.LastName,
				OwnerEmail:     d.Email,
				CreatedAt:      d.CreatedAt,
				UpdatedAt:      d.UpdatedAt,
			}
			switch d.VerificationStatus {
			case models.VerificationStatusApproved:
				doc.Status = models.VerificationStatusApproved
				doc.VerifiedAt = timePtr(d.UpdatedAt)
				doc.VerifiedBy = "admin1"
			case models.VerificationStatusRejected:
				doc.Status = models.VerificationStatusRejected
				doc.RejectionReason = "Document quality is poor, please resubmit"
			}
			if typ == models.DocumentTypeDriversLicense {
				doc.ExpiryDate = timePtr(d.LicenseExpiry)
			}
			docs = append(docs, doc)
		}
	}
	return docs
}
