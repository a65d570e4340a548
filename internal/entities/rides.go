package entities

import (
	"fmt"

	"livelink/internal/collection"
	"livelink/internal/models"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

func Rides() Config[models.Ride] {
	return Config[models.Ride]{
		Kind:     KindRides,
		Title:    "Ride Management",
		Singular: "ride",
		Icon:     ui.IconTaxi,
		ID:       func(r *models.Ride) string { return r.ID },
		Status:   func(r *models.Ride) string { return string(r.Status) },
		Matcher: collection.Matcher[models.Ride]{
			SearchFields: []func(*models.Ride) string{
				func(r *models.Ride) string { return r.RideNumber },
				func(r *models.Ride) string { return r.ID },
				func(r *models.Ride) string { return r.DriverID },
				func(r *models.Ride) string { return r.PassengerID },
			},
			FilterFields: []collection.FilterField[models.Ride]{
				{
					Key:      "status",
					Label:    "Status",
					Options:  options(models.RideStatuses),
					Accessor: func(r *models.Ride) string { return string(r.Status) },
				},
				{
					Key:      "payment",
					Label:    "Payment",
					Options:  options(models.PaymentStatuses),
					Accessor: func(r *models.Ride) string { return string(r.PaymentStatus) },
				},
			},
		},
		StatusVariant: rideVariant,
		Columns: []Column[models.Ride]{
			{Header: "Ride", Width: 9, Value: func(r *models.Ride) string { return r.RideNumber }},
			{Header: "Passenger", Width: 10, Value: func(r *models.Ride) string { return r.PassengerID }},
			{Header: "Driver", Width: 10, Value: func(r *models.Ride) string { return r.DriverID }},
			{Header: "Route", Width: 30, Value: func(r *models.Ride) string {
				return r.Pickup.Address + " → " + r.Destination.Address
			}},
			{Header: "Fare", Width: 8, Value: func(r *models.Ride) string {
				return utils.FormatCurrency(r.Fare.Total, utils.DefaultCurrency)
			}},
			{Header: "Payment", Width: 9, Value: func(r *models.Ride) string { return string(r.PaymentStatus) }},
		},
		Details: func(r *models.Ride) []Field {
			fields := []Field{
				{"Ride", r.RideNumber},
				{"Passenger", r.PassengerID},
				{"Driver", r.DriverID},
				{"Pickup", r.Pickup.String()},
				{"Destination", r.Destination.String()},
				{"Requested", r.RequestedAt.Format("2006-01-02 15:04")},
				{"Distance", fmt.Sprintf("%.1f km", r.Distance)},
				{"Duration", fmt.Sprintf("%d min", r.Duration)},
				{"Fare", fmt.Sprintf("%s (base %s, distance %s, time %s)",
					utils.FormatCurrency(r.Fare.Total, utils.DefaultCurrency),
					utils.FormatCurrency(r.Fare.BaseFare, utils.DefaultCurrency),
					utils.FormatCurrency(r.Fare.DistanceFare, utils.DefaultCurrency),
					utils.FormatCurrency(r.Fare.TimeFare, utils.DefaultCurrency))},
				{"Payment", utils.Humanize(string(r.PaymentStatus))},
			}
			if r.CancellationReason != "" {
				fields = append(fields, Field{"Cancellation reason", r.CancellationReason})
			}
			return fields
		},
		Actions: []Action[models.Ride]{
			{
				Name:    "cancel",
				Label:   "Cancel Ride",
				Variant: ui.ButtonDanger,
				Available: func(r *models.Ride) bool {
					switch r.Status {
					case models.RideStatusRequested, models.RideStatusAccepted, models.RideStatusOngoing:
						return true
					default:
						return false
					}
				},
				Apply: cancelRide,
			},
			{
				Name:    "refund",
				Label:   "Refund",
				Variant: ui.ButtonOutline,
				Available: func(r *models.Ride) bool {
					return r.PaymentStatus == models.PaymentStatusCompleted
				},
				Apply: refundRide,
			},
			{
				Name:    "resolve_dispute",
				Label:   "Resolve Dispute",
				Variant: ui.ButtonPrimary,
				Available: func(r *models.Ride) bool {
					return r.Status == models.RideStatusDisputed
				},
				Apply: resolveRideDispute,
			},
		},
		Counters: []Counter[models.Ride]{
			{Key: "total", Label: "Total Rides", Variant: ui.BadgeInfo, Match: all[models.Ride]},
			{Key: "completed", Label: "Completed", Variant: ui.BadgeSuccess, Match: rideIn(models.RideStatusCompleted)},
			{Key: "ongoing", Label: "Ongoing", Variant: ui.BadgeWarning, Match: rideIn(models.RideStatusOngoing)},
			{Key: "disputed", Label: "Disputed", Variant: ui.BadgeDanger, Match: rideIn(models.RideStatusDisputed)},
			{Key: "cancelled", Label: "Cancelled", Variant: ui.BadgeNeutral, Match: rideIn(models.RideStatusCancelled)},
		},
		Aggregates: []Aggregate[models.Ride]{
			{
				Key:   "revenue",
				Label: "Revenue",
				Match: func(r *models.Ride) bool { return r.IsSettled() },
				Value: func(r *models.Ride) float64 { return r.Fare.Total },
			},
		},
	}
}

func rideIn(status models.RideStatus) func(*models.Ride) bool {
	return func(r *models.Ride) bool { return r.Status == status }
}

// cancelRide cancels and refunds. An optional reason is recorded.
func cancelRide(r models.Ride, params Params, env Env) (models.Ride, bool) {
	if r.Status == models.RideStatusCancelled && r.PaymentStatus == models.PaymentStatusRefunded {
		return r, false
	}
	r.Status = models.RideStatusCancelled
	r.PaymentStatus = models.PaymentStatusRefunded
	if r.CancelledAt == nil {
		now := env.Now
		r.CancelledAt = &now
	}
	if reason := params[ParamReason]; reason != "" {
		r.CancellationReason = reason
	}
	r.UpdatedAt = env.Now
	return r, true
}

func refundRide(r models.Ride, _ Params, env Env) (models.Ride, bool) {
	if r.PaymentStatus == models.PaymentStatusRefunded {
		return r, false
	}
	r.PaymentStatus = models.PaymentStatusRefunded
	r.UpdatedAt = env.Now
	return r, true
}

func resolveRideDispute(r models.Ride, _ Params, env Env) (models.Ride, bool) {
	if r.Status == models.RideStatusCompleted {
		return r, false
	}
	r.Status = models.RideStatusCompleted
	r.UpdatedAt = env.Now
	return r, true
}

func rideVariant(status string) ui.BadgeVariant {
	switch models.RideStatus(status) {
	case models.RideStatusRequested, models.RideStatusAccepted:
		return ui.BadgeInfo
	case models.RideStatusOngoing:
		return ui.BadgeWarning
	case models.RideStatusCompleted:
		return ui.BadgeSuccess
	case models.RideStatusCancelled:
		return ui.BadgeNeutral
	case models.RideStatusDisputed:
		return ui.BadgeDanger
	}
	return ui.BadgeNeutral
}
