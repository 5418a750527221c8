package entity

import "time"

// SupportTicket carries both generations of the ticket schema. The seed data
// wrote {title, description, user_name, user_email, status: new|completed},
// the live mobile schema writes {subject, message, userName, userEmail,
// status: open|resolved}. Reads normalize, writes use the live vocabulary.
type SupportTicket struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	UserID          string     `bson:"userId,omitempty" json:"userId"`
	UserName        string     `bson:"userName,omitempty" json:"userName"`
	UserEmail       string     `bson:"userEmail,omitempty" json:"userEmail"`
	LegacyUserName  string     `bson:"user_name,omitempty" json:"-"`
	LegacyUserEmail string     `bson:"user_email,omitempty" json:"-"`
	Subject         string     `bson:"subject,omitempty" json:"subject"`
	Title           string     `bson:"title,omitempty" json:"-"`
	Message         string     `bson:"message,omitempty" json:"message"`
	Description     string     `bson:"description,omitempty" json:"-"`
	Status          string     `bson:"status,omitempty" json:"status"`
	Priority        string     `bson:"priority,omitempty" json:"priority"`
	Category        string     `bson:"category,omitempty" json:"category"`
	AdminReply      string     `bson:"adminReply,omitempty" json:"adminReply"`
	RepliedBy       string     `bson:"repliedBy,omitempty" json:"repliedBy"`
	RepliedAt       *time.Time `bson:"repliedAt,omitempty" json:"repliedAt,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt       *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ResolvedAt      *time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}
