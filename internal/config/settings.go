package config

import "livelink/internal/models"

func defaultSettings() models.SystemSettings {
	return models.SystemSettings{
		Fare: models.FareSettings{
			BaseFare:           getEnvAsFloat64("FARE_BASE", 2.50),
			PerKmRate:          getEnvAsFloat64("FARE_PER_KM", 1.20),
			PerMinuteRate:      getEnvAsFloat64("FARE_PER_MINUTE", 0.15),
			MinimumFare:        getEnvAsFloat64("FARE_MINIMUM", 5.00),
			MaximumFare:        getEnvAsFloat64("FARE_MAXIMUM", 150.00),
			PeakHourMultiplier: getEnvAsFloat64("FARE_PEAK_MULTIPLIER", 1.5),
			SurgeMultiplier:    getEnvAsFloat64("FARE_SURGE_MULTIPLIER", 2.0),
			CancellationFee:    getEnvAsFloat64("FARE_CANCELLATION_FEE", 3.00),
		},
		Commission: models.CommissionSettings{
			DriverCommission:     getEnvAsFloat64("COMMISSION_DRIVER", 75),
			PlatformCommission:   getEnvAsFloat64("COMMISSION_PLATFORM", 25),
			PaymentProcessingFee: getEnvAsFloat64("COMMISSION_PAYMENT_FEE", 2.9),
			ReferralBonus:        getEnvAsFloat64("COMMISSION_REFERRAL_BONUS", 10),
		},
		Safety: models.SafetySettings{
			EnableSOS:               getEnvAsBool("SAFETY_ENABLE_SOS", true),
			EmergencyContacts:       getEnvAsSlice("SAFETY_EMERGENCY_CONTACTS", []string{"911"}),
			MaxRideDistance:         getEnvAsInt("SAFETY_MAX_RIDE_DISTANCE", 500),
			MaxRideDuration:         getEnvAsInt("SAFETY_MAX_RIDE_DURATION", 480),
			EmergencyResponseTime:   getEnvAsInt("SAFETY_EMERGENCY_RESPONSE_TIME", 5),
			BackgroundCheckRequired: getEnvAsBool("SAFETY_BACKGROUND_CHECK_REQUIRED", true),
			NightRideRestrictions:   getEnvAsBool("SAFETY_NIGHT_RIDE_RESTRICTIONS", true),
		},
		Verification: models.VerificationSettings{
			AutoApprovalEnabled:       getEnvAsBool("VERIFICATION_AUTO_APPROVAL", false),
			DocumentExpiryWarningDays: getEnvAsInt("VERIFICATION_EXPIRY_WARNING_DAYS", 30),
			RequiredDocuments: []models.DocumentType{
				models.DocumentTypeDriversLicense,
				models.DocumentTypeVehicleRegistration,
				models.DocumentTypeInsurance,
			},
		},
	}
}
