package model

import "time"

// SupportTicketResponse is the canonical ticket shape, regardless of which
// schema generation the underlying document was written with.
type SupportTicketResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	UserEmail  string     `json:"userEmail"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	Category   string     `json:"category"`
	AdminReply string     `json:"adminReply,omitempty"`
	RepliedBy  string     `json:"repliedBy,omitempty"`
	RepliedAt  *time.Time `json:"repliedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

type UpdateSupportTicketRequest struct {
	ID         string `json:"-" validate:"required,max=100"`
	Status     string `json:"status" validate:"required,max=50"`
	AdminReply string `json:"adminReply"`
}
