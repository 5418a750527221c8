package converter

import (
	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
)

// NormalizeTicketStatus maps the seed-data vocabulary onto the live one:
// new -> open, completed -> resolved, everything else passes through.
// Idempotent, applied on the read path only.
func NormalizeTicketStatus(status string) string {
	switch status {
	case "new":
		return "open"
	case "completed":
		return "resolved"
	case "":
		return "open"
	default:
		return status
	}
}

// SupportTicketToResponse reconciles the two historical ticket schemas into
// the canonical shape.
func SupportTicketToResponse(ticket *entity.SupportTicket) *model.SupportTicketResponse {
	subject := ticket.Subject
	if subject == "" {
		subject = ticket.Title
	}
	if subject == "" {
		subject = "بدون عنوان"
	}

	message := ticket.Message
	if message == "" {
		message = ticket.Description
	}

	userName := ticket.UserName
	if userName == "" {
		userName = ticket.LegacyUserName
	}
	if userName == "" {
		userName = "غير محدد"
	}

	userEmail := ticket.UserEmail
	if userEmail == "" {
		userEmail = ticket.LegacyUserEmail
	}

	priority := ticket.Priority
	if priority == "" {
		priority = "medium"
	}

	category := ticket.Category
	if category == "" {
		category = "other"
	}

	updatedAt := ticket.CreatedAt
	if ticket.UpdatedAt != nil {
		updatedAt = *ticket.UpdatedAt
	}

	return &model.SupportTicketResponse{
		ID:         ticket.ID,
		UserID:     ticket.UserID,
		UserName:   userName,
		UserEmail:  userEmail,
		Subject:    subject,
		Message:    message,
		Status:     NormalizeTicketStatus(ticket.Status),
		Priority:   priority,
		Category:   category,
		AdminReply: ticket.AdminReply,
		RepliedBy:  ticket.RepliedBy,
		RepliedAt:  ticket.RepliedAt,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  updatedAt,
		ResolvedAt: ticket.ResolvedAt,
	}
}

func SupportTicketsToResponse(tickets []entity.SupportTicket) []*model.SupportTicketResponse {
	responses := make([]*model.SupportTicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, SupportTicketToResponse(&tickets[i]))
	}
	return responses
}
