package entities

import (
	"fmt"

	"github.com/google/uuid"

	"livelink/internal/collection"
	"livelink/internal/models"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

func Tickets() Config[models.SupportTicket] {
	return Config[models.SupportTicket]{
		Kind:     KindTickets,
		Title:    "Customer Support",
		Singular: "ticket",
		Icon:     ui.IconSupport,
		ID:       func(t *models.SupportTicket) string { return t.ID },
		Status:   func(t *models.SupportTicket) string { return string(t.Status) },
		Matcher: collection.Matcher[models.SupportTicket]{
			SearchFields: []func(*models.SupportTicket) string{
				func(t *models.SupportTicket) string { return t.TicketNumber },
				func(t *models.SupportTicket) string { return t.Subject },
				func(t *models.SupportTicket) string { return t.Description },
				func(t *models.SupportTicket) string { return t.CreatedBy },
			},
			FilterFields: []collection.FilterField[models.SupportTicket]{
				{
					Key:      "status",
					Label:    "Status",
					Options:  options(models.TicketStatuses),
					Default:  string(models.TicketStatusOpen),
					Accessor: func(t *models.SupportTicket) string { return string(t.Status) },
				},
				{
					Key:      "priority",
					Label:    "Priority",
					Options:  options(models.TicketPriorities),
					Accessor: func(t *models.SupportTicket) string { return string(t.Priority) },
				},
				{
					Key:      "category",
					Label:    "Category",
					Options:  options(models.TicketCategories),
					Accessor: func(t *models.SupportTicket) string { return string(t.Category) },
				},
			},
		},
		StatusVariant: ticketVariant,
		Columns: []Column[models.SupportTicket]{
			{Header: "Ticket", Width: 8, Value: func(t *models.SupportTicket) string { return t.TicketNumber }},
			{Header: "Subject", Width: 24, Value: func(t *models.SupportTicket) string { return t.Subject }},
			{Header: "Priority", Width: 8, Value: func(t *models.SupportTicket) string { return string(t.Priority) }},
			{Header: "Category", Width: 8, Value: func(t *models.SupportTicket) string { return string(t.Category) }},
			{Header: "From", Width: 10, Value: func(t *models.SupportTicket) string { return t.CreatedBy }},
			{Header: "Assignee", Width: 10, Value: func(t *models.SupportTicket) string {
				return utils.CoalesceString(t.AssignedTo, "-")
			}},
		},
		Details: func(t *models.SupportTicket) []Field {
			fields := []Field{
				{"Ticket", t.TicketNumber},
				{"Subject", t.Subject},
				{"Description", t.Description},
				{"Priority", utils.Humanize(string(t.Priority))},
				{"Category", utils.Humanize(string(t.Category))},
				{"Created by", fmt.Sprintf("%s (%s)", t.CreatedBy, t.CreatedByType)},
				{"Assigned to", utils.CoalesceString(t.AssignedTo, "unassigned")},
				{"Opened", t.CreatedAt.Format("2006-01-02 15:04")},
			}
			if t.Resolution != "" {
				fields = append(fields, Field{"Resolution", t.Resolution})
			}
			for _, r := range t.Responses {
				fields = append(fields, Field{"Response from " + r.RespondedBy, r.Message})
			}
			return fields
		},
		Actions: []Action[models.SupportTicket]{
			{
				Name:    "assign",
				Label:   "Assign",
				Variant: ui.ButtonSecondary,
				Params:  []string{ParamAssignee},
				Available: func(t *models.SupportTicket) bool {
					return t.Status == models.TicketStatusOpen || t.Status == models.TicketStatusInProgress
				},
				Apply: assignTicket,
			},
			{
				Name:    "resolve",
				Label:   "Resolve",
				Variant: ui.ButtonPrimary,
				Params:  []string{ParamResolution},
				Available: func(t *models.SupportTicket) bool {
					return t.Status == models.TicketStatusOpen || t.Status == models.TicketStatusInProgress
				},
				Apply: resolveTicket,
			},
			{
				Name:    "escalate",
				Label:   "Escalate",
				Variant: ui.ButtonDanger,
				Available: func(t *models.SupportTicket) bool {
					return t.Priority != models.TicketPriorityUrgent &&
						t.Status != models.TicketStatusResolved && t.Status != models.TicketStatusClosed
				},
				Apply: escalateTicket,
			},
		},
		Counters: []Counter[models.SupportTicket]{
			{Key: "open", Label: "Open", Variant: ui.BadgeWarning, Match: ticketIn(models.TicketStatusOpen)},
			{Key: "in_progress", Label: "In Progress", Variant: ui.BadgeInfo, Match: ticketIn(models.TicketStatusInProgress)},
			{Key: "resolved", Label: "Resolved", Variant: ui.BadgeSuccess, Match: ticketIn(models.TicketStatusResolved)},
			{Key: "urgent", Label: "Urgent", Variant: ui.BadgeDanger, Match: func(t *models.SupportTicket) bool {
				return t.Priority == models.TicketPriorityUrgent
			}},
		},
	}
}

func ticketIn(status models.TicketStatus) func(*models.SupportTicket) bool {
	return func(t *models.SupportTicket) bool { return t.Status == status }
}

func assignTicket(t models.SupportTicket, params Params, env Env) (models.SupportTicket, bool) {
	assignee := params[ParamAssignee]
	if t.AssignedTo == assignee && t.Status == models.TicketStatusInProgress {
		return t, false
	}
	t.AssignedTo = assignee
	t.Status = models.TicketStatusInProgress
	t.UpdatedAt = env.Now
	return t, true
}

// resolveTicket records the resolution and a public admin response. A
// resolved ticket is left as is.
func resolveTicket(t models.SupportTicket, params Params, env Env) (models.SupportTicket, bool) {
	if t.Status == models.TicketStatusResolved {
		return t, false
	}
	resolution := params[ParamResolution]
	now := env.Now

	responses := make([]models.TicketResponse, len(t.Responses), len(t.Responses)+1)
	copy(responses, t.Responses)
	t.Responses = append(responses, models.TicketResponse{
		ID:              uuid.NewString(),
		Message:         "Resolved: " + resolution,
		IsInternal:      false,
		RespondedBy:     env.Operator,
		RespondedByType: models.ResponderAdmin,
		CreatedAt:       now,
	})
	t.Status = models.TicketStatusResolved
	t.Resolution = resolution
	t.ResolvedAt = &now
	t.UpdatedAt = now
	return t, true
}

func escalateTicket(t models.SupportTicket, _ Params, env Env) (models.SupportTicket, bool) {
	next := t.Priority.Next()
	if next == t.Priority {
		return t, false
	}
	t.Priority = next
	t.UpdatedAt = env.Now
	return t, true
}

func ticketVariant(status string) ui.BadgeVariant {
	switch models.TicketStatus(status) {
	case models.TicketStatusOpen:
		return ui.BadgeWarning
	case models.TicketStatusInProgress:
		return ui.BadgeInfo
	case models.TicketStatusResolved:
		return ui.BadgeSuccess
	case models.TicketStatusClosed:
		return ui.BadgeNeutral
	}
	return ui.BadgeNeutral
}
