package entities

import (
	"fmt"

	"livelink/internal/collection"
	"livelink/internal/models"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

func Drivers() Config[models.Driver] {
	return Config[models.Driver]{
		Kind:     KindDrivers,
		Title:    "Driver Management",
		Singular: "driver",
		Icon:     ui.IconCar,
		ID:       func(d *models.Driver) string { return d.ID },
		Status:   func(d *models.Driver) string { return string(d.Status) },
		Matcher: collection.Matcher[models.Driver]{
			SearchFields: []func(*models.Driver) string{
				func(d *models.Driver) string { return d.FirstName },
				func(d *models.Driver) string { return d.LastName },
				func(d *models.Driver) string { return d.Email },
				func(d *models.Driver) string { return d.ID },
			},
			FilterFields: []collection.FilterField[models.Driver]{
				{
					Key:      "status",
					Label:    "Status",
					Options:  options(models.DriverStatuses),
					Accessor: func(d *models.Driver) string { return string(d.Status) },
				},
			},
		},
		StatusVariant: driverVariant,
		Columns: []Column[models.Driver]{
			{Header: "ID", Width: 10, Value: func(d *models.Driver) string { return d.ID }},
			{Header: "Name", Width: 18, Value: func(d *models.Driver) string { return d.FullName() }},
			{Header: "Email", Width: 26, Value: func(d *models.Driver) string { return d.Email }},
			{Header: "Vehicle", Width: 16, Value: func(d *models.Driver) string {
				return d.Vehicle.Make + " " + d.Vehicle.Model
			}},
			{Header: "Verification", Width: 12, Value: func(d *models.Driver) string { return string(d.VerificationStatus) }},
			{Header: "Rating", Width: 6, Value: func(d *models.Driver) string { return fmt.Sprintf("%.1f", d.Rating) }},
			{Header: "Rides", Width: 6, Value: func(d *models.Driver) string { return fmt.Sprint(d.TotalRides) }},
		},
		Details: func(d *models.Driver) []Field {
			return []Field{
				{"Name", d.FullName()},
				{"Email", d.Email},
				{"Phone", d.Phone},
				{"License", d.LicenseNumber + " (expires " + d.LicenseExpiry.Format("2006-01-02") + ")"},
				{"Vehicle", d.Vehicle.Describe() + " " + d.Vehicle.LicensePlate},
				{"Verification", utils.Humanize(string(d.VerificationStatus))},
				{"Earnings", utils.FormatCurrency(d.Earnings, utils.DefaultCurrency)},
				{"City", d.Address.City},
				{"Joined", d.JoinedDate.Format("2006-01-02")},
			}
		},
		Actions: []Action[models.Driver]{
			{
				Name:    "approve",
				Label:   "Approve",
				Variant: ui.ButtonPrimary,
				Available: func(d *models.Driver) bool {
					return d.VerificationStatus == models.VerificationStatusPending
				},
				Apply: approveDriver,
			},
			{
				Name:    "reject",
				Label:   "Reject",
				Variant: ui.ButtonDanger,
				Available: func(d *models.Driver) bool {
					return d.VerificationStatus == models.VerificationStatusPending
				},
				Apply: rejectDriver,
			},
			{
				Name:    "suspend",
				Label:   "Suspend",
				Variant: ui.ButtonOutline,
				Available: func(d *models.Driver) bool {
					return d.Status == models.DriverStatusActive
				},
				Apply: suspendDriver,
			},
		},
		Counters: []Counter[models.Driver]{
			{Key: "total", Label: "Total Drivers", Variant: ui.BadgeInfo, Match: all[models.Driver]},
			{Key: "active", Label: "Active", Variant: ui.BadgeSuccess, Match: func(d *models.Driver) bool {
				return d.Status == models.DriverStatusActive
			}},
			{Key: "pending", Label: "Pending Verification", Variant: ui.BadgeWarning, Match: func(d *models.Driver) bool {
				return d.VerificationStatus == models.VerificationStatusPending
			}},
			{Key: "suspended", Label: "Suspended", Variant: ui.BadgeDanger, Match: func(d *models.Driver) bool {
				return d.Status == models.DriverStatusSuspended
			}},
		},
	}
}

func approveDriver(d models.Driver, _ Params, env Env) (models.Driver, bool) {
	if d.Status == models.DriverStatusActive &&
		d.VerificationStatus == models.VerificationStatusApproved && d.IsVerified {
		return d, false
	}
	d.Status = models.DriverStatusActive
	d.VerificationStatus = models.VerificationStatusApproved
	d.IsVerified = true
	d.UpdatedAt = env.Now
	return d, true
}

func rejectDriver(d models.Driver, _ Params, env Env) (models.Driver, bool) {
	if d.Status == models.DriverStatusRejected && d.VerificationStatus == models.VerificationStatusRejected {
		return d, false
	}
	d.Status = models.DriverStatusRejected
	d.VerificationStatus = models.VerificationStatusRejected
	d.UpdatedAt = env.Now
	return d, true
}

func suspendDriver(d models.Driver, _ Params, env Env) (models.Driver, bool) {
	if d.Status == models.DriverStatusSuspended {
		return d, false
	}
	d.Status = models.DriverStatusSuspended
	d.UpdatedAt = env.Now
	return d, true
}

func driverVariant(status string) ui.BadgeVariant {
	switch models.DriverStatus(status) {
	case models.DriverStatusActive:
		return ui.BadgeSuccess
	case models.DriverStatusInactive:
		return ui.BadgeNeutral
	case models.DriverStatusSuspended:
		return ui.BadgeWarning
	case models.DriverStatusBanned, models.DriverStatusRejected:
		return ui.BadgeDanger
	case models.DriverStatusPendingVerification:
		return ui.BadgeInfo
	}
	return ui.BadgeNeutral
}
