package entities

import (
	"time"

	"livelink/internal/collection"
	"livelink/internal/models"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

// Documents configures the verification queue. Documents whose expiry
// falls within window of clock() count as expiring.
func Documents(clock func() time.Time, window time.Duration) Config[models.Document] {
	if clock == nil {
		clock = time.Now
	}
	return Config[models.Document]{
		Kind:     KindDocuments,
		Title:    "Verification Queue",
		Singular: "document",
		Icon:     ui.IconVerification,
		ID:       func(d *models.Document) string { return d.ID },
		Status:   func(d *models.Document) string { return string(d.Status) },
		Matcher: collection.Matcher[models.Document]{
			SearchFields: []func(*models.Document) string{
				func(d *models.Document) string { return d.OwnerFirstName },
				func(d *models.Document) string { return d.OwnerLastName },
				func(d *models.Document) string { return d.OwnerEmail },
				func(d *models.Document) string { return d.ID },
			},
			FilterFields: []collection.FilterField[models.Document]{
				{
					Key:      "status",
					Label:    "Status",
					Options:  options(models.VerificationStatuses),
					Default:  string(models.VerificationStatusPending),
					Accessor: func(d *models.Document) string { return string(d.Status) },
				},
				{
					Key:      "type",
					Label:    "Type",
					Options:  options(models.DocumentTypes),
					Accessor: func(d *models.Document) string { return string(d.Type) },
				},
			},
		},
		StatusVariant: documentVariant,
		Columns: []Column[models.Document]{
			{Header: "Document", Width: 14, Value: func(d *models.Document) string { return d.ID }},
			{Header: "Type", Width: 20, Value: func(d *models.Document) string { return utils.Humanize(string(d.Type)) }},
			{Header: "Owner", Width: 18, Value: func(d *models.Document) string {
				return d.OwnerFirstName + " " + d.OwnerLastName
			}},
			{Header: "Uploaded", Width: 10, Value: func(d *models.Document) string { return d.UploadedAt.Format("2006-01-02") }},
			{Header: "Expires", Width: 12, Value: func(d *models.Document) string {
				if d.ExpiresWithin(clock(), window) {
					return utils.FormatDate(d.ExpiryDate) + " " + ui.Glyph(ui.IconWarning)
				}
				return utils.FormatDate(d.ExpiryDate)
			}},
		},
		Details: func(d *models.Document) []Field {
			fields := []Field{
				{"Type", utils.Humanize(string(d.Type))},
				{"Owner", d.OwnerFirstName + " " + d.OwnerLastName + " <" + d.OwnerEmail + ">"},
				{"Owner ID", d.OwnerID},
				{"URL", d.URL},
				{"Uploaded", d.UploadedAt.Format("2006-01-02")},
				{"Expires", utils.FormatDate(d.ExpiryDate)},
			}
			if d.VerifiedBy != "" {
				fields = append(fields, Field{"Verified by", d.VerifiedBy + " on " + utils.FormatDate(d.VerifiedAt)})
			}
			if d.RejectionReason != "" {
				fields = append(fields, Field{"Rejection reason", d.RejectionReason})
			}
			return fields
		},
		Actions: []Action[models.Document]{
			{
				Name:      "approve",
				Label:     "Approve",
				Variant:   ui.ButtonPrimary,
				Available: documentAwaitingReview,
				Apply:     approveDocument,
			},
			{
				Name:      "reject",
				Label:     "Reject",
				Variant:   ui.ButtonDanger,
				Params:    []string{ParamReason},
				Available: documentAwaitingReview,
				Apply:     rejectDocument,
			},
		},
		Counters: []Counter[models.Document]{
			{Key: "pending", Label: "Pending Review", Variant: ui.BadgeWarning, Match: documentIn(models.VerificationStatusPending)},
			{Key: "approved", Label: "Approved", Variant: ui.BadgeSuccess, Match: documentIn(models.VerificationStatusApproved)},
			{Key: "rejected", Label: "Rejected", Variant: ui.BadgeDanger, Match: documentIn(models.VerificationStatusRejected)},
			{Key: "expiring", Label: "Expiring Soon", Variant: ui.BadgeInfo, Match: func(d *models.Document) bool {
				return d.ExpiresWithin(clock(), window)
			}},
		},
	}
}

func documentAwaitingReview(d *models.Document) bool {
	return d.Status == models.VerificationStatusPending || d.Status == models.VerificationStatusResubmitted
}

func documentIn(status models.VerificationStatus) func(*models.Document) bool {
	return func(d *models.Document) bool { return d.Status == status }
}

func approveDocument(d models.Document, _ Params, env Env) (models.Document, bool) {
	if d.Status == models.VerificationStatusApproved {
		return d, false
	}
	now := env.Now
	d.Status = models.VerificationStatusApproved
	d.VerifiedAt = &now
	d.VerifiedBy = env.Operator
	d.RejectionReason = ""
	d.UpdatedAt = now
	return d, true
}

func rejectDocument(d models.Document, params Params, env Env) (models.Document, bool) {
	reason := params[ParamReason]
	if d.Status == models.VerificationStatusRejected && d.RejectionReason == reason {
		return d, false
	}
	d.Status = models.VerificationStatusRejected
	d.RejectionReason = reason
	d.VerifiedAt = nil
	d.VerifiedBy = ""
	d.UpdatedAt = env.Now
	return d, true
}

func documentVariant(status string) ui.BadgeVariant {
	switch models.VerificationStatus(status) {
	case models.VerificationStatusPending:
		return ui.BadgeWarning
	case models.VerificationStatusApproved:
		return ui.BadgeSuccess
	case models.VerificationStatusRejected:
		return ui.BadgeDanger
	case models.VerificationStatusResubmitted:
		return ui.BadgeInfo
	}
	return ui.BadgeNeutral
}
