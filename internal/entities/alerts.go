package entities

import (
	"livelink/internal/collection"
	"livelink/internal/models"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

const forwardedAction = "Forwarded to emergency services"

func Alerts() Config[models.EmergencyAlert] {
	return Config[models.EmergencyAlert]{
		Kind:     KindAlerts,
		Title:    "Emergency & Safety",
		Singular: "alert",
		Icon:     ui.IconEmergency,
		ID:       func(a *models.EmergencyAlert) string { return a.ID },
		Status:   func(a *models.EmergencyAlert) string { return string(a.Status) },
		Matcher: collection.Matcher[models.EmergencyAlert]{
			SearchFields: []func(*models.EmergencyAlert) string{
				func(a *models.EmergencyAlert) string { return a.ID },
				func(a *models.EmergencyAlert) string { return a.UserID },
				func(a *models.EmergencyAlert) string { return a.RideID },
				func(a *models.EmergencyAlert) string { return a.Description },
			},
			FilterFields: []collection.FilterField[models.EmergencyAlert]{
				{
					Key:      "status",
					Label:    "Status",
					Options:  options(models.EmergencyStatuses),
					Default:  string(models.EmergencyStatusActive),
					Accessor: func(a *models.EmergencyAlert) string { return string(a.Status) },
				},
				{
					Key:      "type",
					Label:    "Type",
					Options:  options(models.EmergencyTypes),
					Accessor: func(a *models.EmergencyAlert) string { return string(a.Type) },
				},
			},
		},
		StatusVariant: alertVariant,
		Columns: []Column[models.EmergencyAlert]{
			{Header: "Alert", Width: 9, Value: func(a *models.EmergencyAlert) string { return a.ID }},
			{Header: "Type", Width: 14, Value: func(a *models.EmergencyAlert) string {
				return ui.Glyph(ui.IconName(a.Type)) + " " + string(a.Type)
			}},
			{Header: "User", Width: 10, Value: func(a *models.EmergencyAlert) string { return utils.CoalesceString(a.UserID, "-") }},
			{Header: "Ride", Width: 10, Value: func(a *models.EmergencyAlert) string { return utils.CoalesceString(a.RideID, "-") }},
			{Header: "Location", Width: 24, Value: func(a *models.EmergencyAlert) string { return a.Location.String() }},
			{Header: "Reported", Width: 16, Value: func(a *models.EmergencyAlert) string {
				return a.ReportedAt.Format("2006-01-02 15:04")
			}},
		},
		Details: func(a *models.EmergencyAlert) []Field {
			fields := []Field{
				{"Type", utils.Humanize(string(a.Type))},
				{"Description", a.Description},
				{"Location", a.Location.String()},
				{"Reported", a.ReportedAt.Format("2006-01-02 15:04")},
			}
			if a.ResolvedBy != "" {
				fields = append(fields, Field{"Resolved by", a.ResolvedBy + " at " + utils.FormatDate(a.ResolvedAt)})
			}
			if a.Contacts.Police != "" {
				fields = append(fields, Field{"Police", a.Contacts.Police})
			}
			if a.Contacts.Ambulance != "" {
				fields = append(fields, Field{"Ambulance", a.Contacts.Ambulance})
			}
			for _, action := range a.Actions {
				fields = append(fields, Field{"Action", action})
			}
			return fields
		},
		Actions: []Action[models.EmergencyAlert]{
			{
				Name:    "resolve",
				Label:   "Resolve",
				Variant: ui.ButtonPrimary,
				Params:  []string{ParamResolution},
				Available: func(a *models.EmergencyAlert) bool {
					return a.Status == models.EmergencyStatusActive || a.Status == models.EmergencyStatusForwarded
				},
				Apply: resolveAlert,
			},
			{
				Name:    "escalate",
				Label:   "Forward to Emergency Services",
				Variant: ui.ButtonDanger,
				Available: func(a *models.EmergencyAlert) bool {
					return a.Status == models.EmergencyStatusActive
				},
				Apply: escalateAlert,
			},
			{
				Name:    "false_alarm",
				Label:   "Mark False Alarm",
				Variant: ui.ButtonGhost,
				Available: func(a *models.EmergencyAlert) bool {
					return a.Status == models.EmergencyStatusActive
				},
				Apply: falseAlarm,
			},
		},
		Counters: []Counter[models.EmergencyAlert]{
			{Key: "active", Label: "Active", Variant: ui.BadgeDanger, Match: alertIn(models.EmergencyStatusActive)},
			{Key: "forwarded", Label: "Forwarded", Variant: ui.BadgeWarning, Match: alertIn(models.EmergencyStatusForwarded)},
			{Key: "false_alarm", Label: "False Alarms", Variant: ui.BadgeNeutral, Match: alertIn(models.EmergencyStatusFalseAlarm)},
			{Key: "resolved", Label: "Resolved", Variant: ui.BadgeSuccess, Match: alertIn(models.EmergencyStatusResolved)},
		},
	}
}

func alertIn(status models.EmergencyStatus) func(*models.EmergencyAlert) bool {
	return func(a *models.EmergencyAlert) bool { return a.Status == status }
}

func appendAction(actions []string, action string) []string {
	out := make([]string, len(actions), len(actions)+1)
	copy(out, actions)
	return append(out, action)
}

func resolveAlert(a models.EmergencyAlert, params Params, env Env) (models.EmergencyAlert, bool) {
	if a.Status == models.EmergencyStatusResolved {
		return a, false
	}
	now := env.Now
	a.Status = models.EmergencyStatusResolved
	a.ResolvedAt = &now
	a.ResolvedBy = env.Operator
	a.Actions = appendAction(a.Actions, "Resolved: "+params[ParamResolution])
	a.UpdatedAt = now
	return a, true
}

func escalateAlert(a models.EmergencyAlert, _ Params, env Env) (models.EmergencyAlert, bool) {
	if a.Status == models.EmergencyStatusForwarded {
		return a, false
	}
	a.Status = models.EmergencyStatusForwarded
	a.Actions = appendAction(a.Actions, forwardedAction)
	a.UpdatedAt = env.Now
	return a, true
}

func falseAlarm(a models.EmergencyAlert, _ Params, env Env) (models.EmergencyAlert, bool) {
	if a.Status == models.EmergencyStatusFalseAlarm {
		return a, false
	}
	a.Status = models.EmergencyStatusFalseAlarm
	a.UpdatedAt = env.Now
	return a, true
}

func alertVariant(status string) ui.BadgeVariant {
	switch models.EmergencyStatus(status) {
	case models.EmergencyStatusActive:
		return ui.BadgeDanger
	case models.EmergencyStatusForwarded:
		return ui.BadgeWarning
	case models.EmergencyStatusResolved:
		return ui.BadgeSuccess
	case models.EmergencyStatusFalseAlarm:
		return ui.BadgeNeutral
	}
	return ui.BadgeNeutral
}
