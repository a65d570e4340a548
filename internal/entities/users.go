package entities

import (
	"fmt"

	"livelink/internal/collection"
	"livelink/internal/models"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

const (
	verified   = "verified"
	unverified = "unverified"
)

func verificationLabel(u *models.User) string {
	if u.IsVerified {
		return verified
	}
	return unverified
}

func Users() Config[models.User] {
	return Config[models.User]{
		Kind:     KindUsers,
		Title:    "User Management",
		Singular: "user",
		Icon:     ui.IconUsers,
		ID:       func(u *models.User) string { return u.ID },
		Status:   func(u *models.User) string { return string(u.Status) },
		Matcher: collection.Matcher[models.User]{
			SearchFields: []func(*models.User) string{
				func(u *models.User) string { return u.FirstName },
				func(u *models.User) string { return u.LastName },
				func(u *models.User) string { return u.Email },
				func(u *models.User) string { return u.ID },
			},
			FilterFields: []collection.FilterField[models.User]{
				{
					Key:      "status",
					Label:    "Status",
					Options:  options(models.UserStatuses),
					Accessor: func(u *models.User) string { return string(u.Status) },
				},
				{
					Key:      "verification",
					Label:    "Verification",
					Options:  []string{verified, unverified},
					Accessor: verificationLabel,
				},
			},
		},
		StatusVariant: userVariant,
		Columns: []Column[models.User]{
			{Header: "ID", Width: 10, Value: func(u *models.User) string { return u.ID }},
			{Header: "Name", Width: 18, Value: func(u *models.User) string { return u.FullName() }},
			{Header: "Email", Width: 26, Value: func(u *models.User) string { return u.Email }},
			{Header: "Verified", Width: 10, Value: verificationLabel},
			{Header: "Rating", Width: 6, Value: func(u *models.User) string { return fmt.Sprintf("%.1f", u.Rating) }},
			{Header: "Rides", Width: 6, Value: func(u *models.User) string { return fmt.Sprint(u.TotalRides) }},
			{Header: "Risk", Width: 6, Value: func(u *models.User) string { return u.RiskLevel() }},
		},
		Details: func(u *models.User) []Field {
			fields := []Field{
				{"Name", u.FullName()},
				{"Email", u.Email},
				{"Phone", u.Phone},
				{"Verification", verificationLabel(u)},
				{"Joined", u.JoinedDate.Format("2006-01-02")},
				{"Last active", utils.FormatDate(u.LastActiveDate)},
			}
			if u.Address != nil {
				fields = append(fields, Field{"City", u.Address.City + ", " + u.Address.State})
			}
			if u.EmergencyContact != nil {
				fields = append(fields, Field{"Emergency contact", u.EmergencyContact.Name + " " + u.EmergencyContact.Phone})
			}
			return fields
		},
		Actions: []Action[models.User]{
			{
				Name:    "suspend",
				Label:   "Suspend",
				Variant: ui.ButtonOutline,
				Available: func(u *models.User) bool {
					return u.Status == models.UserStatusActive
				},
				Apply: setUserStatus(models.UserStatusSuspended),
			},
			{
				Name:    "activate",
				Label:   "Activate",
				Variant: ui.ButtonPrimary,
				Available: func(u *models.User) bool {
					return u.Status != models.UserStatusActive
				},
				Apply: setUserStatus(models.UserStatusActive),
			},
			{
				Name:    "block",
				Label:   "Block",
				Variant: ui.ButtonDanger,
				Available: func(u *models.User) bool {
					return u.Status != models.UserStatusBlocked
				},
				Apply: setUserStatus(models.UserStatusBlocked),
			},
			{
				Name:    "verify",
				Label:   "Verify",
				Variant: ui.ButtonSecondary,
				Available: func(u *models.User) bool {
					return !u.IsVerified
				},
				Apply: verifyUser,
			},
		},
		Counters: []Counter[models.User]{
			{Key: "total", Label: "Total Users", Variant: ui.BadgeInfo, Match: all[models.User]},
			{Key: "active", Label: "Active", Variant: ui.BadgeSuccess, Match: func(u *models.User) bool {
				return u.Status == models.UserStatusActive
			}},
			{Key: "unverified", Label: "Unverified", Variant: ui.BadgeWarning, Match: func(u *models.User) bool {
				return !u.IsVerified
			}},
			{Key: "flagged", Label: "Suspended/Blocked", Variant: ui.BadgeDanger, Match: func(u *models.User) bool {
				return u.Status == models.UserStatusSuspended || u.Status == models.UserStatusBlocked
			}},
		},
	}
}

func setUserStatus(status models.UserStatus) func(models.User, Params, Env) (models.User, bool) {
	return func(u models.User, _ Params, env Env) (models.User, bool) {
		if u.Status == status {
			return u, false
		}
		u.Status = status
		u.UpdatedAt = env.Now
		return u, true
	}
}

func verifyUser(u models.User, _ Params, env Env) (models.User, bool) {
	if u.IsVerified {
		return u, false
	}
	u.IsVerified = true
	u.UpdatedAt = env.Now
	return u, true
}

func userVariant(status string) ui.BadgeVariant {
	switch models.UserStatus(status) {
	case models.UserStatusActive:
		return ui.BadgeSuccess
	case models.UserStatusSuspended:
		return ui.BadgeWarning
	case models.UserStatusBlocked:
		return ui.BadgeDanger
	case models.UserStatusPending:
		return ui.BadgeInfo
	}
	return ui.BadgeNeutral
}
