package models

type DashboardMetrics struct {
	TotalRides           int     `json:"total_rides"`
	TotalEarnings        float64 `json:"total_earnings"`
	ActiveDrivers        int     `json:"active_drivers"`
	ActiveUsers          int     `json:"active_users"`
	PendingVerifications int     `json:"pending_verifications"`
	OpenTickets          int     `json:"open_tickets"`
	EmergencyAlerts      int     `json:"emergency_alerts"`
	TodayRides           int     `json:"today_rides"`
}
