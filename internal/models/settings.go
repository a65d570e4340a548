package models

type FareSettings struct {
	BaseFare           float64 `json:"base_fare" yaml:"base_fare"`
	PerKmRate          float64 `json:"per_km_rate" yaml:"per_km_rate"`
	PerMinuteRate      float64 `json:"per_minute_rate" yaml:"per_minute_rate"`
	MinimumFare        float64 `json:"minimum_fare" yaml:"minimum_fare"`
	MaximumFare        float64 `json:"maximum_fare" yaml:"maximum_fare"`
	PeakHourMultiplier float64 `json:"peak_hour_multiplier" yaml:"peak_hour_multiplier"`
	SurgeMultiplier    float64 `json:"surge_multiplier" yaml:"surge_multiplier"`
	CancellationFee    float64 `json:"cancellation_fee" yaml:"cancellation_fee"`
}

type CommissionSettings struct {
	DriverCommission     float64 `json:"driver_commission" yaml:"driver_commission"`
	PlatformCommission   float64 `json:"platform_commission" yaml:"platform_commission"`
	PaymentProcessingFee float64 `json:"payment_processing_fee" yaml:"payment_processing_fee"`
	ReferralBonus        float64 `json:"referral_bonus" yaml:"referral_bonus"`
}

type SafetySettings struct {
	EnableSOS               bool     `json:"enable_sos" yaml:"enable_sos"`
	EmergencyContacts       []string `json:"emergency_contacts" yaml:"emergency_contacts"`
	MaxRideDistance         int      `json:"max_ride_distance" yaml:"max_ride_distance"`
	MaxRideDuration         int      `json:"max_ride_duration" yaml:"max_ride_duration"`
	EmergencyResponseTime   int      `json:"emergency_response_time" yaml:"emergency_response_time"`
	BackgroundCheckRequired bool     `json:"background_check_required" yaml:"background_check_required"`
	NightRideRestrictions   bool     `json:"night_ride_restrictions" yaml:"night_ride_restrictions"`
}

type VerificationSettings struct {
	AutoApprovalEnabled       bool           `json:"auto_approval_enabled" yaml:"auto_approval_enabled"`
	DocumentExpiryWarningDays int            `json:"document_expiry_warning_days" yaml:"document_expiry_warning_days"`
	RequiredDocuments         []DocumentType `json:"required_documents" yaml:"required_documents"`
}

// SystemSettings are platform defaults shown on the settings page.
type SystemSettings struct {
	Fare         FareSettings         `json:"fare" yaml:"fare"`
	Commission   CommissionSettings   `json:"commission" yaml:"commission"`
	Safety       SafetySettings       `json:"safety" yaml:"safety"`
	Verification VerificationSettings `json:"verification" yaml:"verification"`
}
